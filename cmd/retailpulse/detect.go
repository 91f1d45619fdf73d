package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/shopmetrics/retailpulse/internal/ingest"
	"github.com/shopmetrics/retailpulse/internal/normalize"
)

func detectCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "detect <file.csv>",
		Short: "Show the auto-detected column mapping for a file",
		Long: `Detect reads a file's header row and prints which source column each
canonical field would be mapped to, so overrides can be prepared before a
full analyze run.`,
		Args: cobra.ExactArgs(1),
		RunE: runDetect,
	}
}

func runDetect(_ *cobra.Command, args []string) error {
	file, err := os.Open(args[0])
	if err != nil {
		return fmt.Errorf("failed to open %s: %w", args[0], err)
	}
	defer func() { _ = file.Close() }()

	headers, _, err := ingest.NewCSVReader().Read(file)
	if err != nil {
		return err
	}

	mapping := normalize.DetectMapping(headers)

	fields := []struct {
		name   string
		column string
	}{
		{normalize.FieldCustomerID, mapping.CustomerID},
		{normalize.FieldInvoiceDate, mapping.InvoiceDate},
		{normalize.FieldAmount, mapping.Amount},
		{normalize.FieldQuantity, mapping.Quantity},
		{normalize.FieldCountry, mapping.Country},
		{normalize.FieldProductName, mapping.ProductName},
	}

	for _, f := range fields {
		column := f.column
		if column == "" {
			column = "(unmapped)"
		}
		fmt.Printf("%-12s -> %s\n", f.name, column)
	}

	if err := mapping.Validate(); err != nil {
		fmt.Println("\nMapping is incomplete; supply --map overrides to analyze.")
	}

	return nil
}
