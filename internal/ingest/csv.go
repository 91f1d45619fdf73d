// Package ingest decodes raw sources into the row maps the normalizer
// consumes. Decoding is deliberately dumb: no typing, no validation, just
// column name to cell value, in source order.
package ingest

import (
	"encoding/csv"
	"fmt"
	"io"

	"github.com/shopmetrics/retailpulse/internal/common"
	"github.com/shopmetrics/retailpulse/internal/normalize"
)

// CSVReader reads a CSV stream with a header row.
type CSVReader struct{}

// NewCSVReader creates a new CSV reader.
func NewCSVReader() *CSVReader {
	return &CSVReader{}
}

// Read decodes the stream into its header and one row map per record.
// Records shorter than the header are padded with missing cells omitted;
// longer records have their extra cells ignored.
func (r *CSVReader) Read(reader io.Reader) ([]string, []normalize.Row, error) {
	cr := csv.NewReader(reader)
	cr.FieldsPerRecord = -1
	cr.TrimLeadingSpace = true

	header, err := cr.Read()
	if err == io.EOF {
		return nil, nil, common.ErrMissingHeader
	}
	if err != nil {
		return nil, nil, fmt.Errorf("failed to read CSV header: %w", err)
	}

	var rows []normalize.Row
	for {
		record, err := cr.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, nil, fmt.Errorf("failed to read CSV record: %w", err)
		}

		row := make(normalize.Row, len(header))
		for i, column := range header {
			if i >= len(record) {
				break
			}
			row[column] = record[i]
		}
		rows = append(rows, row)
	}

	common.LogInfo("Read CSV source", common.Fields{"columns": len(header), "rows": len(rows)})

	return header, rows, nil
}
