package engine

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/shopmetrics/retailpulse/internal/common"
	"github.com/shopmetrics/retailpulse/internal/model"
	"github.com/shopmetrics/retailpulse/internal/normalize"
)

func testMapping() normalize.FieldMapping {
	return normalize.FieldMapping{
		CustomerID:  "customer",
		InvoiceDate: "date",
		Amount:      "price",
		Quantity:    "qty",
		Country:     "country",
	}
}

func row(customer, date, price, qty string) normalize.Row {
	return normalize.Row{
		"customer": customer,
		"date":     date,
		"price":    price,
		"qty":      qty,
		"country":  "UK",
	}
}

func TestAnalyze_EndToEnd(t *testing.T) {
	now := time.Date(2023, 7, 1, 0, 0, 0, 0, time.UTC)
	eng := New(Options{Now: now})

	rows := []normalize.Row{
		row("C1", "2023-06-28 10:00", "50", "1"),
		row("C1", "2023-06-20 15:00", "100", "1"),
		row("C2", "2023-03-01 09:00", "2500", "1"),
		row("C3", "2023-06-29 12:00", "10", "2"),
		row("", "2023-06-29", "99", "1"), // dropped: no customer id
	}

	result, err := eng.Analyze(rows, testMapping())
	require.NoError(t, err)

	assert.Len(t, result.Transactions, 4)
	require.Len(t, result.Customers, 3)
	assert.Equal(t, now, result.GeneratedAt)

	totalFrequency := 0
	for _, c := range result.Customers {
		totalFrequency += c.Frequency
		assert.GreaterOrEqual(t, c.RScore, 1)
		assert.LessOrEqual(t, c.RScore, 5)
		assert.NotEmpty(t, c.Segment)
		assert.NotEmpty(t, c.Cluster)
	}
	assert.Equal(t, len(result.Transactions), totalFrequency,
		"every transaction attributed to exactly one profile")

	byID := make(map[string]model.CustomerProfile)
	for _, c := range result.Customers {
		byID[c.ID] = c
	}
	assert.InDelta(t, 150.0, byID["C1"].Monetary, 1e-9)
	assert.Equal(t, 2, byID["C1"].Frequency)
	assert.Equal(t, 2, byID["C1"].Recency)
	assert.Equal(t, model.ClusterVIP, byID["C2"].Cluster)

	assert.InDelta(t, 2670.0, result.TotalRevenue(), 1e-9)
	require.Len(t, result.Clusters, 5)
	assert.NotEmpty(t, result.Temporal.Monthly)
	assert.NotEmpty(t, result.Holidays)
}

func TestAnalyze_EmptyInput(t *testing.T) {
	now := time.Date(2023, 7, 1, 0, 0, 0, 0, time.UTC)
	eng := New(Options{Now: now})

	result, err := eng.Analyze(nil, testMapping())
	require.NoError(t, err)

	assert.Empty(t, result.Transactions)
	assert.Empty(t, result.Customers)
	assert.Empty(t, result.Temporal.Monthly)
	for _, revenue := range result.Temporal.Weekday {
		assert.Zero(t, revenue)
	}
	for _, revenue := range result.Temporal.Hourly {
		assert.Zero(t, revenue)
	}
	for _, h := range result.Holidays {
		assert.Zero(t, h.LiftPercent)
	}
	require.Len(t, result.Clusters, 5)
}

func TestAnalyze_InvalidMapping(t *testing.T) {
	eng := New(Options{})
	_, err := eng.Analyze(nil, normalize.FieldMapping{CustomerID: "customer"})
	require.Error(t, err)
	assert.ErrorIs(t, err, common.ErrMissingMapping)
}

func TestAnalyze_Idempotent(t *testing.T) {
	now := time.Date(2023, 7, 1, 0, 0, 0, 0, time.UTC)
	eng := New(Options{Now: now})

	rows := []normalize.Row{
		row("C1", "2023-06-28 10:00", "50", "1"),
		row("C2", "2023-06-20 15:00", "100", "3"),
	}

	first, err := eng.Analyze(rows, testMapping())
	require.NoError(t, err)
	second, err := eng.Analyze(rows, testMapping())
	require.NoError(t, err)

	assert.Equal(t, first, second, "same rows and same now must reproduce identical results")
}

func TestAnalyze_CustomAnchors(t *testing.T) {
	now := time.Date(2023, 7, 1, 0, 0, 0, 0, time.UTC)
	eng := New(Options{
		Now: now,
		Anchors: []model.HolidayAnchor{
			{Name: "Singles' Day", Month: time.November, Day: 11},
		},
	})

	result, err := eng.Analyze([]normalize.Row{row("C1", "2023-06-28", "10", "1")}, testMapping())
	require.NoError(t, err)
	require.Len(t, result.Holidays, 1)
	assert.Equal(t, "Singles' Day", result.Holidays[0].Name)
}

func TestAnalyze_LineTotalMode(t *testing.T) {
	now := time.Date(2023, 7, 1, 0, 0, 0, 0, time.UTC)
	eng := New(Options{Now: now, AmountMode: normalize.AmountLineTotal})

	result, err := eng.Analyze([]normalize.Row{row("C1", "2023-06-28", "100", "4")}, testMapping())
	require.NoError(t, err)
	assert.InDelta(t, 100.0, result.TotalRevenue(), 1e-9)
}
