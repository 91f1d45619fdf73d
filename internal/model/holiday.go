package model

import "time"

// HolidayAnchor is a fixed (name, month, day) calendar anchor. The year is
// chosen per analysis run from the data itself.
type HolidayAnchor struct {
	Name  string
	Month time.Month
	Day   int
}

// HolidayStat is the revenue picture of one holiday's 7-day window
// (anchor date ±3 days). Recomputed fully on each analysis run.
type HolidayStat struct {
	Name            string
	AnchorDate      time.Time
	WindowRevenue   float64
	OrderCount      int
	AvgDailyRevenue float64 // WindowRevenue / 7
	LiftPercent     float64 // vs the dataset-wide average daily revenue
}
