// Package temporal buckets transaction revenue by calendar month, weekday,
// and hour of day.
package temporal

import (
	"sort"

	"github.com/shopmetrics/retailpulse/internal/model"
)

// Aggregate folds the transaction set into the three independent bucket
// sets. Every transaction contributes to all three. The weekday and hour
// domains are always fully materialized with zero values; the month list
// only covers months present in the data, sorted ascending.
func Aggregate(transactions []model.Transaction) model.TemporalBuckets {
	var buckets model.TemporalBuckets

	monthly := make(map[string]float64)
	for _, tx := range transactions {
		revenue := tx.Revenue()
		monthly[tx.Timestamp.Format("2006-01")] += revenue
		buckets.Weekday[int(tx.Timestamp.Weekday())] += revenue
		buckets.Hourly[tx.Timestamp.Hour()] += revenue
	}

	months := make([]string, 0, len(monthly))
	for month := range monthly {
		months = append(months, month)
	}
	sort.Strings(months)

	buckets.Monthly = make([]model.MonthRevenue, 0, len(months))
	for _, month := range months {
		buckets.Monthly = append(buckets.Monthly, model.MonthRevenue{
			Month:   month,
			Revenue: monthly[month],
		})
	}

	return buckets
}
