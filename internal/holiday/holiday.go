// Package holiday measures revenue lift around fixed calendar anchor dates
// against the dataset-wide daily average.
package holiday

import (
	"sort"
	"time"

	"github.com/shopmetrics/retailpulse/internal/model"
)

// windowDays is the size of each holiday window: the anchor date plus three
// days on either side.
const windowDays = 7

// DefaultAnchors is the built-in holiday calendar. Callers may supply their
// own list instead.
var DefaultAnchors = []model.HolidayAnchor{
	{Name: "New Year", Month: time.January, Day: 1},
	{Name: "Valentine's Day", Month: time.February, Day: 14},
	{Name: "Women's Day", Month: time.March, Day: 8},
	{Name: "Labor Day", Month: time.May, Day: 1},
	{Name: "Knowledge Day", Month: time.September, Day: 1},
	{Name: "Halloween", Month: time.October, Day: 31},
	{Name: "Black Friday", Month: time.November, Day: 29},
	{Name: "Christmas", Month: time.December, Day: 25},
}

// Analyze computes a HolidayStat per anchor. Anchors are evaluated against
// the year of the most recent transaction; datasets spanning several years
// use that single year. Lift degenerates to 0 rather than failing when the
// dataset has no revenue. Results are sorted descending by window revenue,
// ties keeping anchor order. now supplies the anchor year when the
// transaction set is empty.
func Analyze(transactions []model.Transaction, anchors []model.HolidayAnchor, now time.Time) []model.HolidayStat {
	dailyRevenue := make(map[string]float64)
	totalRevenue := 0.0
	var maxTimestamp time.Time

	for _, tx := range transactions {
		revenue := tx.Revenue()
		dailyRevenue[tx.Timestamp.Format("2006-01-02")] += revenue
		totalRevenue += revenue
		if tx.Timestamp.After(maxTimestamp) {
			maxTimestamp = tx.Timestamp
		}
	}

	avgDailyRevenue := 0.0
	if len(dailyRevenue) > 0 {
		avgDailyRevenue = totalRevenue / float64(len(dailyRevenue))
	}

	anchorYear := now.Year()
	if !maxTimestamp.IsZero() {
		anchorYear = maxTimestamp.Year()
	}

	stats := make([]model.HolidayStat, 0, len(anchors))
	for _, anchor := range anchors {
		anchorDate := time.Date(anchorYear, anchor.Month, anchor.Day, 0, 0, 0, 0, time.UTC)
		windowStart := anchorDate.AddDate(0, 0, -3)
		windowEnd := anchorDate.AddDate(0, 0, 4) // exclusive, covers the full +3 day

		windowRevenue := 0.0
		orders := 0
		for _, tx := range transactions {
			if tx.Timestamp.Before(windowStart) || !tx.Timestamp.Before(windowEnd) {
				continue
			}
			windowRevenue += tx.Revenue()
			orders++
		}

		windowDailyAvg := windowRevenue / windowDays
		lift := 0.0
		if avgDailyRevenue > 0 {
			lift = (windowDailyAvg - avgDailyRevenue) / avgDailyRevenue * 100
		}

		stats = append(stats, model.HolidayStat{
			Name:            anchor.Name,
			AnchorDate:      anchorDate,
			WindowRevenue:   windowRevenue,
			OrderCount:      orders,
			AvgDailyRevenue: windowDailyAvg,
			LiftPercent:     lift,
		})
	}

	sort.SliceStable(stats, func(i, j int) bool {
		return stats[i].WindowRevenue > stats[j].WindowRevenue
	})

	return stats
}
