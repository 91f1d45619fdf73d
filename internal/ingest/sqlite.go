package ingest

import (
	"context"
	"database/sql"
	"fmt"
	"regexp"

	// SQLite driver registration.
	_ "github.com/mattn/go-sqlite3"

	"github.com/shopmetrics/retailpulse/internal/common"
	"github.com/shopmetrics/retailpulse/internal/normalize"
)

// identifier restricts table names to plain identifiers since they cannot be
// bound as query parameters.
var identifier = regexp.MustCompile(`^[A-Za-z_][A-Za-z0-9_]*$`)

// SQLiteSource reads every row of one table from a SQLite database. The
// database is only ever read; analysis state is never written back.
type SQLiteSource struct {
	path  string
	table string
}

// NewSQLiteSource creates a source for the given database file and table.
func NewSQLiteSource(path, table string) *SQLiteSource {
	return &SQLiteSource{path: path, table: table}
}

// Read loads the table into its column list and one row map per record.
func (s *SQLiteSource) Read(ctx context.Context) ([]string, []normalize.Row, error) {
	if !identifier.MatchString(s.table) {
		return nil, nil, fmt.Errorf("invalid table name %q", s.table)
	}

	db, err := sql.Open("sqlite3", s.path)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to open database: %w", err)
	}
	defer func() {
		if closeErr := db.Close(); closeErr != nil {
			common.LogError(closeErr, "Failed to close database", common.Fields{"path": s.path})
		}
	}()

	result, err := db.QueryContext(ctx, fmt.Sprintf("SELECT * FROM %s", s.table))
	if err != nil {
		return nil, nil, fmt.Errorf("failed to query table %s: %w", s.table, err)
	}
	defer func() {
		if closeErr := result.Close(); closeErr != nil {
			common.LogError(closeErr, "Failed to close result set", common.Fields{"table": s.table})
		}
	}()

	columns, err := result.Columns()
	if err != nil {
		return nil, nil, fmt.Errorf("failed to read columns: %w", err)
	}

	var rows []normalize.Row
	for result.Next() {
		values := make([]any, len(columns))
		pointers := make([]any, len(columns))
		for i := range values {
			pointers[i] = &values[i]
		}
		if err := result.Scan(pointers...); err != nil {
			return nil, nil, fmt.Errorf("failed to scan row: %w", err)
		}

		row := make(normalize.Row, len(columns))
		for i, column := range columns {
			// The driver hands text columns back as []byte.
			if b, ok := values[i].([]byte); ok {
				row[column] = string(b)
				continue
			}
			row[column] = values[i]
		}
		rows = append(rows, row)
	}
	if err := result.Err(); err != nil {
		return nil, nil, fmt.Errorf("failed to iterate rows: %w", err)
	}

	common.LogInfo("Read SQLite source", common.Fields{
		"table":   s.table,
		"columns": len(columns),
		"rows":    len(rows),
	})

	return columns, rows, nil
}
