package normalize

import (
	"regexp"
	"strings"
)

var nonAlnum = regexp.MustCompile(`[^a-z0-9]`)

// detectors pair each canonical field with the header fragments that
// suggest it. Evaluated in order; the first header containing any fragment
// claims the field.
var detectors = []struct {
	field     string
	fragments []string
}{
	{FieldCustomerID, []string{"customer", "client", "user"}},
	{FieldInvoiceDate, []string{"date", "time"}},
	{FieldAmount, []string{"amount", "price", "revenue", "total"}},
	{FieldQuantity, []string{"quantity", "qty"}},
	{FieldCountry, []string{"country"}},
	{FieldProductName, []string{"product", "description"}},
}

// DetectMapping guesses a field mapping from source headers. Fields with no
// plausible header are left unmapped; the caller decides whether the result
// is usable via FieldMapping.Validate.
func DetectMapping(headers []string) FieldMapping {
	var mapping FieldMapping

	claimed := make(map[string]bool, len(headers))
	for _, d := range detectors {
		for _, header := range headers {
			if claimed[header] {
				continue
			}
			folded := nonAlnum.ReplaceAllString(strings.ToLower(header), "")
			if !matchesAny(folded, d.fragments) {
				continue
			}
			claimed[header] = true
			switch d.field {
			case FieldCustomerID:
				mapping.CustomerID = header
			case FieldInvoiceDate:
				mapping.InvoiceDate = header
			case FieldAmount:
				mapping.Amount = header
			case FieldQuantity:
				mapping.Quantity = header
			case FieldCountry:
				mapping.Country = header
			case FieldProductName:
				mapping.ProductName = header
			}
			break
		}
	}

	return mapping
}

func matchesAny(folded string, fragments []string) bool {
	for _, fragment := range fragments {
		if strings.Contains(folded, fragment) {
			return true
		}
	}
	return false
}
