// Package model defines the core domain models used throughout the application.
package model

import "time"

// Transaction is a single canonical sales transaction produced by
// normalization. Instances are immutable once created and live only for the
// duration of one analysis run.
type Transaction struct {
	Timestamp   time.Time
	CustomerID  string
	Country     string
	ProductName string
	Quantity    float64
	UnitPrice   float64
}

// Revenue returns the monetary value of the transaction.
func (t Transaction) Revenue() float64 {
	return t.Quantity * t.UnitPrice
}
