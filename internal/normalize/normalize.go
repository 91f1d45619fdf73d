// Package normalize maps heterogeneous source rows onto canonical
// transactions. Row-level defects are never surfaced as errors: defective
// rows are silently dropped and defective optional values fall back to
// documented defaults.
package normalize

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/shopmetrics/retailpulse/internal/common"
	"github.com/shopmetrics/retailpulse/internal/model"
)

// Row is one raw record from an ingestion source, keyed by source column name.
type Row map[string]any

// Canonical field names a source column can be mapped to.
const (
	FieldCustomerID  = "CustomerID"
	FieldInvoiceDate = "InvoiceDate"
	FieldAmount      = "Amount"
	FieldQuantity    = "Quantity"
	FieldCountry     = "Country"
	FieldProductName = "ProductName"
)

// requiredFields must all be mapped before normalization can run.
var requiredFields = []string{FieldCustomerID, FieldInvoiceDate, FieldAmount}

// FieldMapping associates each canonical field with a source column name.
// Optional fields may be left empty.
type FieldMapping struct {
	CustomerID  string
	InvoiceDate string
	Amount      string
	Quantity    string
	Country     string
	ProductName string
}

// Column returns the source column mapped to the given canonical field.
func (m FieldMapping) Column(field string) string {
	switch field {
	case FieldCustomerID:
		return m.CustomerID
	case FieldInvoiceDate:
		return m.InvoiceDate
	case FieldAmount:
		return m.Amount
	case FieldQuantity:
		return m.Quantity
	case FieldCountry:
		return m.Country
	case FieldProductName:
		return m.ProductName
	default:
		return ""
	}
}

// Validate checks that every required canonical field has a source column.
func (m FieldMapping) Validate() error {
	for _, field := range requiredFields {
		if m.Column(field) == "" {
			return common.NewUserError(
				fmt.Sprintf("column for %q must be mapped", field),
				common.ErrMissingMapping,
			)
		}
	}
	return nil
}

// AmountMode declares what the mapped Amount column contains.
type AmountMode string

// Amount interpretation modes.
const (
	// AmountUnitPrice treats the mapped amount as a per-unit price;
	// revenue is quantity times amount.
	AmountUnitPrice AmountMode = "unit_price"
	// AmountLineTotal treats the mapped amount as the full line revenue
	// regardless of quantity.
	AmountLineTotal AmountMode = "line_total"
)

// Normalizer converts raw rows into canonical transactions.
type Normalizer struct {
	mapping FieldMapping
	mode    AmountMode
}

// New creates a Normalizer for the given mapping. The mapping must be valid.
func New(mapping FieldMapping, mode AmountMode) (*Normalizer, error) {
	if err := mapping.Validate(); err != nil {
		return nil, err
	}
	if mode == "" {
		mode = AmountUnitPrice
	}
	return &Normalizer{mapping: mapping, mode: mode}, nil
}

// Normalize converts rows into canonical transactions, preserving source
// order. Rows with an empty customer id, no resolvable non-negative amount,
// or an unparseable timestamp are dropped. The operation always succeeds;
// the result may be empty.
func (n *Normalizer) Normalize(rows []Row) []model.Transaction {
	transactions := make([]model.Transaction, 0, len(rows))
	dropped := 0

	for i, row := range rows {
		tx, ok := n.normalizeRow(row)
		if !ok {
			dropped++
			common.LogDebug("Dropped row", common.Fields{"row": i})
			continue
		}
		transactions = append(transactions, tx)
	}

	common.LogInfo("Normalized rows", common.Fields{
		"total":   len(rows),
		"kept":    len(transactions),
		"dropped": dropped,
	})

	return transactions
}

func (n *Normalizer) normalizeRow(row Row) (model.Transaction, bool) {
	customerID := strings.TrimSpace(stringValue(row[n.mapping.CustomerID]))
	if customerID == "" {
		return model.Transaction{}, false
	}

	timestamp, ok := ResolveTimestamp(row[n.mapping.InvoiceDate])
	if !ok {
		return model.Transaction{}, false
	}

	rawAmount, present := row[n.mapping.Amount]
	if !present || rawAmount == nil {
		return model.Transaction{}, false
	}
	// Unparseable amounts coerce to zero rather than dropping the row.
	amount, parsed := floatValue(rawAmount)
	if !parsed {
		amount = 0
	}
	if amount < 0 {
		return model.Transaction{}, false
	}

	quantity := 1.0
	if n.mapping.Quantity != "" {
		if q, ok := floatValue(row[n.mapping.Quantity]); ok && q >= 0 {
			quantity = q
		}
	}

	unitPrice := amount
	if n.mode == AmountLineTotal && quantity > 0 {
		unitPrice = amount / quantity
	}

	country := strings.TrimSpace(stringValue(row[n.mapping.Country]))
	if country == "" {
		country = "Unknown"
	}

	return model.Transaction{
		Timestamp:   timestamp,
		CustomerID:  customerID,
		Country:     country,
		ProductName: strings.TrimSpace(stringValue(row[n.mapping.ProductName])),
		Quantity:    quantity,
		UnitPrice:   unitPrice,
	}, true
}

// stringValue renders a raw cell as a string. Nil becomes the empty string.
func stringValue(v any) string {
	switch s := v.(type) {
	case nil:
		return ""
	case string:
		return s
	case fmt.Stringer:
		return s.String()
	default:
		return fmt.Sprintf("%v", v)
	}
}

// floatValue parses a raw cell as a number. The second return reports
// whether parsing succeeded.
func floatValue(v any) (float64, bool) {
	switch x := v.(type) {
	case nil:
		return 0, false
	case float64:
		return x, true
	case float32:
		return float64(x), true
	case int:
		return float64(x), true
	case int64:
		return float64(x), true
	case string:
		s := strings.TrimSpace(x)
		if s == "" {
			return 0, false
		}
		f, err := strconv.ParseFloat(s, 64)
		if err != nil {
			return 0, false
		}
		return f, true
	default:
		return 0, false
	}
}
