// Package export writes analysis results to local CSV and JSON files for
// downstream reporting tools.
package export

import (
	"encoding/csv"
	"encoding/json"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strconv"

	"github.com/shopmetrics/retailpulse/internal/engine"
)

// Exporter writes result files into one directory.
type Exporter struct {
	dir string
}

// New creates an exporter targeting the given directory. The directory is
// created on demand.
func New(dir string) *Exporter {
	return &Exporter{dir: dir}
}

// WriteAll writes customer, holiday, and monthly CSV files plus the full
// result as JSON. It returns the paths written.
func (e *Exporter) WriteAll(result *engine.Result) ([]string, error) {
	if err := os.MkdirAll(e.dir, 0o755); err != nil {
		return nil, fmt.Errorf("failed to create export directory: %w", err)
	}

	writers := []struct {
		name  string
		write func(string) error
	}{
		{"customers.csv", func(p string) error { return e.writeCustomers(p, result) }},
		{"holidays.csv", func(p string) error { return e.writeHolidays(p, result) }},
		{"monthly.csv", func(p string) error { return e.writeMonthly(p, result) }},
		{"result.json", func(p string) error { return e.writeJSON(p, result) }},
	}

	paths := make([]string, 0, len(writers))
	for _, w := range writers {
		path := filepath.Join(e.dir, w.name)
		if err := w.write(path); err != nil {
			return nil, err
		}
		paths = append(paths, path)
	}

	slog.Info("Exported analysis", "dir", e.dir, "files", len(paths))

	return paths, nil
}

func (e *Exporter) writeCustomers(path string, result *engine.Result) error {
	records := [][]string{
		{"customer_id", "country", "recency_days", "frequency", "monetary",
			"r_score", "f_score", "m_score", "segment", "cluster"},
	}
	for _, c := range result.Customers {
		records = append(records, []string{
			c.ID,
			c.Country,
			strconv.Itoa(c.Recency),
			strconv.Itoa(c.Frequency),
			formatAmount(c.Monetary),
			strconv.Itoa(c.RScore),
			strconv.Itoa(c.FScore),
			strconv.Itoa(c.MScore),
			string(c.Segment),
			string(c.Cluster),
		})
	}
	return writeCSV(path, records)
}

func (e *Exporter) writeHolidays(path string, result *engine.Result) error {
	records := [][]string{
		{"holiday", "anchor_date", "window_revenue", "orders", "avg_daily_revenue", "lift_percent"},
	}
	for _, h := range result.Holidays {
		records = append(records, []string{
			h.Name,
			h.AnchorDate.Format("2006-01-02"),
			formatAmount(h.WindowRevenue),
			strconv.Itoa(h.OrderCount),
			formatAmount(h.AvgDailyRevenue),
			formatAmount(h.LiftPercent),
		})
	}
	return writeCSV(path, records)
}

func (e *Exporter) writeMonthly(path string, result *engine.Result) error {
	records := [][]string{{"month", "revenue"}}
	for _, m := range result.Temporal.Monthly {
		records = append(records, []string{m.Month, formatAmount(m.Revenue)})
	}
	return writeCSV(path, records)
}

func (e *Exporter) writeJSON(path string, result *engine.Result) error {
	data, err := json.MarshalIndent(result, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal result: %w", err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("failed to write %s: %w", path, err)
	}
	return nil
}

func writeCSV(path string, records [][]string) error {
	file, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create %s: %w", path, err)
	}

	w := csv.NewWriter(file)
	if err := w.WriteAll(records); err != nil {
		_ = file.Close()
		return fmt.Errorf("failed to write %s: %w", path, err)
	}

	if err := file.Close(); err != nil {
		return fmt.Errorf("failed to close %s: %w", path, err)
	}
	return nil
}

func formatAmount(v float64) string {
	return strconv.FormatFloat(v, 'f', 2, 64)
}
