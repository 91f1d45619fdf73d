package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"time"

	"github.com/schollz/progressbar/v3"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/shopmetrics/retailpulse/internal/common"
	"github.com/shopmetrics/retailpulse/internal/config"
	"github.com/shopmetrics/retailpulse/internal/engine"
	"github.com/shopmetrics/retailpulse/internal/export"
	"github.com/shopmetrics/retailpulse/internal/ingest"
	"github.com/shopmetrics/retailpulse/internal/normalize"
	"github.com/shopmetrics/retailpulse/internal/report"
)

func analyzeCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "analyze [file.csv]",
		Short: "Run the full RFM analysis over a transaction export",
		Long: `Analyze ingests a CSV file (or a SQLite table), normalizes rows into
canonical transactions, and derives customer profiles, segments, clusters,
temporal revenue buckets, and holiday lift.

Column mapping is auto-detected from headers and can be overridden with
--map, e.g. --map CustomerID=client_ref --map Amount=order_total.`,
		Args: cobra.MaximumNArgs(1),
		RunE: runAnalyze,
	}

	cmd.Flags().String("sqlite", "", "read rows from this SQLite database instead of a CSV file")
	cmd.Flags().String("table", "transactions", "table to read when using --sqlite")
	cmd.Flags().StringToString("map", nil, "canonical-field to source-column overrides")
	cmd.Flags().String("amount-mode", "", "what the amount column holds: unit_price or line_total")
	cmd.Flags().String("now", "", "reference instant for recency (RFC3339 or 2006-01-02, default: wall clock)")
	cmd.Flags().StringP("export", "o", "", "directory to export CSV/JSON results into")

	_ = viper.BindPFlag("analysis.amount_mode", cmd.Flags().Lookup("amount-mode"))

	return cmd
}

func runAnalyze(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()

	cfg, err := config.Load()
	if err != nil {
		return err
	}

	headers, rows, err := readRows(ctx, cmd, args)
	if err != nil {
		return err
	}
	if len(rows) == 0 {
		return common.NewUserError("source contains no data rows", common.ErrNoRows)
	}

	mapping := normalize.DetectMapping(headers)
	overrides, _ := cmd.Flags().GetStringToString("map")
	mapping = applyOverrides(mapping, overrides)

	now, err := parseNow(cmd)
	if err != nil {
		return err
	}

	eng := engine.New(engine.Options{
		Now:        now,
		AmountMode: cfg.AmountMode(),
		Anchors:    cfg.Anchors(),
	})

	result, err := eng.Analyze(rows, mapping)
	if err != nil {
		return err
	}
	if len(result.Transactions) == 0 {
		return common.NewUserError("no rows survived normalization; check the column mapping", common.ErrNoTransactions)
	}

	fmt.Println(report.NewFormatter().FormatSummary(result))

	if dir, _ := cmd.Flags().GetString("export"); dir != "" {
		paths, err := export.New(dir).WriteAll(result)
		if err != nil {
			return fmt.Errorf("failed to export results: %w", err)
		}
		for _, path := range paths {
			common.LogInfo("Wrote export", common.Fields{"path": path})
		}
	}

	return nil
}

// readRows loads raw rows from the CSV argument or the --sqlite flag.
func readRows(ctx context.Context, cmd *cobra.Command, args []string) ([]string, []normalize.Row, error) {
	dbPath, _ := cmd.Flags().GetString("sqlite")
	if dbPath != "" {
		table, _ := cmd.Flags().GetString("table")
		return ingest.NewSQLiteSource(dbPath, table).Read(ctx)
	}

	if len(args) == 0 {
		return nil, nil, fmt.Errorf("provide a CSV file or --sqlite database")
	}

	file, err := os.Open(args[0])
	if err != nil {
		return nil, nil, fmt.Errorf("failed to open %s: %w", args[0], err)
	}
	defer func() {
		if closeErr := file.Close(); closeErr != nil {
			slog.Warn("Failed to close input file", "error", closeErr)
		}
	}()

	info, err := file.Stat()
	if err != nil {
		return nil, nil, fmt.Errorf("failed to stat %s: %w", args[0], err)
	}

	bar := progressbar.DefaultBytes(info.Size(), "reading")
	reader := io.TeeReader(file, bar)

	return ingest.NewCSVReader().Read(reader)
}

// applyOverrides merges user-supplied column overrides into the detected
// mapping.
func applyOverrides(mapping normalize.FieldMapping, overrides map[string]string) normalize.FieldMapping {
	for field, column := range overrides {
		switch field {
		case normalize.FieldCustomerID:
			mapping.CustomerID = column
		case normalize.FieldInvoiceDate:
			mapping.InvoiceDate = column
		case normalize.FieldAmount:
			mapping.Amount = column
		case normalize.FieldQuantity:
			mapping.Quantity = column
		case normalize.FieldCountry:
			mapping.Country = column
		case normalize.FieldProductName:
			mapping.ProductName = column
		default:
			slog.Warn("Ignoring unknown mapping field", "field", field)
		}
	}
	return mapping
}

func parseNow(cmd *cobra.Command) (time.Time, error) {
	raw, _ := cmd.Flags().GetString("now")
	if raw == "" {
		return time.Time{}, nil
	}
	if t, err := time.Parse(time.RFC3339, raw); err == nil {
		return t, nil
	}
	if t, err := time.Parse("2006-01-02", raw); err == nil {
		return t, nil
	}
	return time.Time{}, fmt.Errorf("invalid --now value %q", raw)
}
