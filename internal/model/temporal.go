package model

// MonthRevenue is summed revenue for one calendar month present in the data.
type MonthRevenue struct {
	Month   string // YYYY-MM
	Revenue float64
}

// TemporalBuckets holds the three independent revenue breakdowns. A
// transaction contributes to all three simultaneously. Weekday and hour
// domains are always fully materialized; Monthly only contains months that
// actually appear in the data, sorted ascending.
type TemporalBuckets struct {
	Monthly []MonthRevenue
	Weekday [7]float64  // Sunday = 0
	Hourly  [24]float64 // 0-23
}
