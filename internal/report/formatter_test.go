package report

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/shopmetrics/retailpulse/internal/engine"
	"github.com/shopmetrics/retailpulse/internal/model"
)

func TestFormatSummary_NilResult(t *testing.T) {
	out := NewFormatter().FormatSummary(nil)
	assert.Contains(t, out, "No analysis available")
}

func TestFormatSummary_EmptyResult(t *testing.T) {
	out := NewFormatter().FormatSummary(&engine.Result{
		GeneratedAt: time.Date(2023, 7, 1, 0, 0, 0, 0, time.UTC),
	})
	assert.Contains(t, out, "No data to display")
}

func TestFormatSummary_FullResult(t *testing.T) {
	result := &engine.Result{
		GeneratedAt: time.Date(2023, 7, 1, 0, 0, 0, 0, time.UTC),
		Transactions: []model.Transaction{
			{CustomerID: "C1", Timestamp: time.Date(2023, 6, 5, 9, 0, 0, 0, time.UTC), Quantity: 1, UnitPrice: 100},
		},
		Customers: []model.CustomerProfile{
			{ID: "C1", Recency: 26, Frequency: 1, Monetary: 100,
				RScore: 5, FScore: 5, MScore: 5,
				Segment: model.SegmentChampions, Cluster: model.ClusterNewLow},
		},
		Clusters: []model.ClusterSummary{
			{Cluster: model.ClusterNewLow, Count: 1, AvgMonetary: 100, AvgFrequency: 1, AvgRecency: 26},
		},
		Temporal: model.TemporalBuckets{
			Monthly: []model.MonthRevenue{{Month: "2023-06", Revenue: 100}},
			Weekday: [7]float64{0, 100},
			Hourly: func() [24]float64 {
				var h [24]float64
				h[9] = 100
				return h
			}(),
		},
		Holidays: []model.HolidayStat{
			{Name: "New Year", AnchorDate: time.Date(2023, 1, 1, 0, 0, 0, 0, time.UTC), LiftPercent: -100},
		},
	}

	out := NewFormatter().FormatSummary(result)

	assert.Contains(t, out, "Customer RFM Analysis")
	assert.Contains(t, out, "Generated: 2023-07-01T00:00:00Z")
	assert.Contains(t, out, "Champions")
	assert.Contains(t, out, "New/Low-spend")
	assert.Contains(t, out, "Mon")
	assert.Contains(t, out, "09:00")
	assert.Contains(t, out, "2023-06")
	assert.Contains(t, out, "New Year")
}

func TestFormatSummary_HolidayLift(t *testing.T) {
	result := &engine.Result{
		GeneratedAt: time.Date(2023, 7, 1, 0, 0, 0, 0, time.UTC),
		Transactions: []model.Transaction{
			{CustomerID: "C1", Timestamp: time.Date(2023, 12, 25, 12, 0, 0, 0, time.UTC), Quantity: 1, UnitPrice: 700},
		},
		Holidays: []model.HolidayStat{
			{Name: "Christmas", AnchorDate: time.Date(2023, 12, 25, 0, 0, 0, 0, time.UTC),
				WindowRevenue: 700, OrderCount: 1, LiftPercent: 25},
			{Name: "Halloween", AnchorDate: time.Date(2023, 10, 31, 0, 0, 0, 0, time.UTC),
				LiftPercent: -100},
			{Name: "Valentine's Day", AnchorDate: time.Date(2023, 2, 14, 0, 0, 0, 0, time.UTC)},
		},
	}

	out := NewFormatter().FormatSummary(result)

	assert.Contains(t, out, "+25%")
	assert.Contains(t, out, "-100%")
	assert.Contains(t, out, "+0%")
}
