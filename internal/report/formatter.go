package report

import (
	"fmt"
	"sort"
	"strings"
	"time"

	"github.com/shopmetrics/retailpulse/internal/engine"
	"github.com/shopmetrics/retailpulse/internal/model"
)

// weekdayNames is indexed by time.Weekday.
var weekdayNames = [7]string{"Sun", "Mon", "Tue", "Wed", "Thu", "Fri", "Sat"}

// Formatter renders analysis results for the terminal.
type Formatter struct {
	styles *Styles
}

// NewFormatter creates a formatter with default styles.
func NewFormatter() *Formatter {
	return &Formatter{styles: NewStyles()}
}

// FormatSummary renders the full analysis summary.
func (f *Formatter) FormatSummary(result *engine.Result) string {
	if result == nil {
		return f.styles.Negative.Render("No analysis available")
	}

	sections := []string{
		f.formatHeader(result),
		f.formatOverview(result),
	}

	if len(result.Customers) > 0 {
		sections = append(sections, f.formatSegments(result))
		sections = append(sections, f.formatClusters(result.Clusters))
	}
	if len(result.Transactions) > 0 {
		sections = append(sections, f.formatTemporal(result.Temporal))
		sections = append(sections, f.formatHolidays(result.Holidays))
	}

	return strings.Join(sections, "\n\n")
}

func (f *Formatter) formatHeader(result *engine.Result) string {
	title := f.styles.Title.Render("Customer RFM Analysis")
	generated := f.styles.Subtitle.Render(
		fmt.Sprintf("Generated: %s", result.GeneratedAt.Format(time.RFC3339)))
	return title + "\n" + generated
}

func (f *Formatter) formatOverview(result *engine.Result) string {
	if len(result.Transactions) == 0 {
		return f.styles.Subtle.Render("No data to display.")
	}

	lines := []string{
		fmt.Sprintf("Transactions:  %s", f.styles.Value.Render(fmt.Sprintf("%d", len(result.Transactions)))),
		fmt.Sprintf("Customers:     %s", f.styles.Value.Render(fmt.Sprintf("%d", len(result.Customers)))),
		fmt.Sprintf("Total revenue: %s", f.styles.Value.Render(fmt.Sprintf("$%.2f", result.TotalRevenue()))),
	}
	return f.styles.Box.Render(strings.Join(lines, "\n"))
}

func (f *Formatter) formatSegments(result *engine.Result) string {
	counts := result.SegmentCounts()

	segments := make([]model.Segment, 0, len(counts))
	for segment := range counts {
		segments = append(segments, segment)
	}
	sort.Slice(segments, func(i, j int) bool {
		if counts[segments[i]] != counts[segments[j]] {
			return counts[segments[i]] > counts[segments[j]]
		}
		return segments[i] < segments[j]
	})

	var b strings.Builder
	b.WriteString(f.styles.Header.Render(fmt.Sprintf("%-22s %8s %8s", "Segment", "Count", "Share")))
	b.WriteString("\n")
	total := len(result.Customers)
	for _, segment := range segments {
		share := float64(counts[segment]) / float64(total) * 100
		b.WriteString(fmt.Sprintf("%-22s %8d %7.1f%%\n", segment, counts[segment], share))
	}

	return f.styles.Title.Render("Segments") + "\n" + b.String()
}

func (f *Formatter) formatClusters(clusters []model.ClusterSummary) string {
	var b strings.Builder
	b.WriteString(f.styles.Header.Render(
		fmt.Sprintf("%-15s %7s %12s %8s %8s", "Cluster", "Count", "Avg Value", "Freq", "Recency")))
	b.WriteString("\n")
	for _, c := range clusters {
		b.WriteString(fmt.Sprintf("%-15s %7d %11s %8.1f %8.0f\n",
			c.Cluster, c.Count, fmt.Sprintf("$%.0f", c.AvgMonetary), c.AvgFrequency, c.AvgRecency))
	}

	return f.styles.Title.Render("Clusters") + "\n" + b.String()
}

func (f *Formatter) formatTemporal(buckets model.TemporalBuckets) string {
	bestWeekday := 0
	for i, revenue := range buckets.Weekday {
		if revenue > buckets.Weekday[bestWeekday] {
			bestWeekday = i
		}
	}
	bestHour := 0
	for i, revenue := range buckets.Hourly {
		if revenue > buckets.Hourly[bestHour] {
			bestHour = i
		}
	}

	lines := []string{
		fmt.Sprintf("Busiest weekday: %s ($%.2f)",
			f.styles.Value.Render(weekdayNames[bestWeekday]), buckets.Weekday[bestWeekday]),
		fmt.Sprintf("Peak hour:       %s ($%.2f)",
			f.styles.Value.Render(fmt.Sprintf("%02d:00", bestHour)), buckets.Hourly[bestHour]),
	}
	if n := len(buckets.Monthly); n > 0 {
		best := buckets.Monthly[0]
		for _, m := range buckets.Monthly[1:] {
			if m.Revenue > best.Revenue {
				best = m
			}
		}
		lines = append(lines, fmt.Sprintf("Best month:      %s ($%.2f) across %d months",
			f.styles.Value.Render(best.Month), best.Revenue, n))
	}

	return f.styles.Title.Render("Temporal Trends") + "\n" + strings.Join(lines, "\n")
}

func (f *Formatter) formatHolidays(stats []model.HolidayStat) string {
	var b strings.Builder
	b.WriteString(f.styles.Header.Render(
		fmt.Sprintf("%-16s %12s %12s %8s %8s", "Holiday", "Date", "Revenue", "Orders", "Lift")))
	b.WriteString("\n")
	for _, s := range stats {
		lift := fmt.Sprintf("%+.0f%%", s.LiftPercent)
		switch {
		case s.WindowRevenue == 0:
			// No sales in the window at all; not a lift signal either way.
			lift = f.styles.Warning.Render(lift)
		case s.LiftPercent >= 0:
			lift = f.styles.Positive.Render(lift)
		default:
			lift = f.styles.Negative.Render(lift)
		}
		b.WriteString(fmt.Sprintf("%-16s %12s %11s %8d %8s\n",
			s.Name, s.AnchorDate.Format("2006-01-02"),
			fmt.Sprintf("$%.0f", s.WindowRevenue), s.OrderCount, lift))
	}

	return f.styles.Title.Render("Holiday Lift") + "\n" + b.String()
}
