// Package engine orchestrates one analysis run: normalization, RFM
// profiling and scoring, cluster summaries, temporal buckets, and holiday
// lift. Every component sees the same reference instant, so re-running the
// pipeline over the same rows produces identical output.
package engine

import (
	"time"

	"github.com/shopmetrics/retailpulse/internal/cluster"
	"github.com/shopmetrics/retailpulse/internal/common"
	"github.com/shopmetrics/retailpulse/internal/holiday"
	"github.com/shopmetrics/retailpulse/internal/model"
	"github.com/shopmetrics/retailpulse/internal/normalize"
	"github.com/shopmetrics/retailpulse/internal/rfm"
	"github.com/shopmetrics/retailpulse/internal/temporal"
)

// Options configures an analysis run.
type Options struct {
	// Now is the reference instant for recency and holiday-year inference.
	// Zero means the wall clock at Analyze time.
	Now time.Time
	// AmountMode declares what the mapped amount column contains.
	AmountMode normalize.AmountMode
	// Anchors overrides the built-in holiday calendar when non-nil.
	Anchors []model.HolidayAnchor
}

// Result is the immutable output of one analysis run. Empty inputs produce
// empty (not nil-error) results.
type Result struct {
	GeneratedAt  time.Time
	Transactions []model.Transaction
	Customers    []model.CustomerProfile
	Clusters     []model.ClusterSummary
	Temporal     model.TemporalBuckets
	Holidays     []model.HolidayStat
}

// Engine runs the analysis pipeline. It holds no per-run state; the same
// engine can serve any number of runs.
type Engine struct {
	opts Options
}

// New creates an analysis engine.
func New(opts Options) *Engine {
	return &Engine{opts: opts}
}

// Analyze normalizes raw rows under the given mapping and derives the full
// analysis result. The only error condition is an unusable mapping; defective
// rows are dropped silently and empty inputs yield empty results.
func (e *Engine) Analyze(rows []normalize.Row, mapping normalize.FieldMapping) (*Result, error) {
	normalizer, err := normalize.New(mapping, e.opts.AmountMode)
	if err != nil {
		return nil, err
	}

	now := e.opts.Now
	if now.IsZero() {
		now = time.Now()
	}

	anchors := e.opts.Anchors
	if anchors == nil {
		anchors = holiday.DefaultAnchors
	}

	transactions := normalizer.Normalize(rows)

	profiles := rfm.BuildProfiles(transactions, now)
	// Quintile scoring requires a non-empty population.
	if len(profiles) > 0 {
		profiles = rfm.ScoreProfiles(profiles)
		for i := range profiles {
			profiles[i].Cluster = cluster.Classify(profiles[i])
		}
	}

	result := &Result{
		GeneratedAt:  now,
		Transactions: transactions,
		Customers:    profiles,
		Clusters:     cluster.Summarize(profiles),
		Temporal:     temporal.Aggregate(transactions),
		Holidays:     holiday.Analyze(transactions, anchors, now),
	}

	common.LogInfo("Analysis complete", common.Fields{
		"transactions": len(result.Transactions),
		"customers":    len(result.Customers),
		"months":       len(result.Temporal.Monthly),
		"holidays":     len(result.Holidays),
	})

	return result, nil
}

// TotalRevenue sums revenue across all transactions in the result.
func (r *Result) TotalRevenue() float64 {
	total := 0.0
	for _, tx := range r.Transactions {
		total += tx.Revenue()
	}
	return total
}

// SegmentCounts tallies customers per segment.
func (r *Result) SegmentCounts() map[model.Segment]int {
	counts := make(map[model.Segment]int)
	for _, c := range r.Customers {
		counts[c.Segment]++
	}
	return counts
}
