package temporal

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/shopmetrics/retailpulse/internal/model"
)

func TestAggregate(t *testing.T) {
	// 2023-06-05 was a Monday.
	transactions := []model.Transaction{
		{Timestamp: time.Date(2023, 6, 5, 9, 0, 0, 0, time.UTC), Quantity: 2, UnitPrice: 10},
		{Timestamp: time.Date(2023, 6, 5, 14, 0, 0, 0, time.UTC), Quantity: 1, UnitPrice: 5},
		{Timestamp: time.Date(2023, 7, 2, 9, 0, 0, 0, time.UTC), Quantity: 1, UnitPrice: 100},
	}

	buckets := Aggregate(transactions)

	require.Len(t, buckets.Monthly, 2)
	assert.Equal(t, model.MonthRevenue{Month: "2023-06", Revenue: 25}, buckets.Monthly[0])
	assert.Equal(t, model.MonthRevenue{Month: "2023-07", Revenue: 100}, buckets.Monthly[1])

	assert.InDelta(t, 25.0, buckets.Weekday[int(time.Monday)], 1e-9)
	assert.InDelta(t, 100.0, buckets.Weekday[int(time.Sunday)], 1e-9)
	assert.Zero(t, buckets.Weekday[int(time.Friday)])

	assert.InDelta(t, 120.0, buckets.Hourly[9], 1e-9)
	assert.InDelta(t, 5.0, buckets.Hourly[14], 1e-9)
	assert.Zero(t, buckets.Hourly[0])
}

func TestAggregate_EmptyInput(t *testing.T) {
	buckets := Aggregate(nil)

	assert.Empty(t, buckets.Monthly)
	for _, revenue := range buckets.Weekday {
		assert.Zero(t, revenue)
	}
	for _, revenue := range buckets.Hourly {
		assert.Zero(t, revenue)
	}
}

func TestAggregate_MonthsSortedAcrossYears(t *testing.T) {
	transactions := []model.Transaction{
		{Timestamp: time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC), Quantity: 1, UnitPrice: 1},
		{Timestamp: time.Date(2023, 12, 1, 0, 0, 0, 0, time.UTC), Quantity: 1, UnitPrice: 1},
		{Timestamp: time.Date(2023, 2, 1, 0, 0, 0, 0, time.UTC), Quantity: 1, UnitPrice: 1},
	}

	buckets := Aggregate(transactions)
	require.Len(t, buckets.Monthly, 3)
	assert.Equal(t, "2023-02", buckets.Monthly[0].Month)
	assert.Equal(t, "2023-12", buckets.Monthly[1].Month)
	assert.Equal(t, "2024-01", buckets.Monthly[2].Month)
}
