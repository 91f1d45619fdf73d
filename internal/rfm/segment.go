package rfm

import "github.com/shopmetrics/retailpulse/internal/model"

// segmentRule pairs a predicate over the score pair with the segment it
// assigns.
type segmentRule struct {
	matches func(r, f int) bool
	label   model.Segment
}

// segmentRules is evaluated top to bottom with first-match semantics. The
// ordering is load-bearing: r=4,f=4 satisfies both the Champions and
// Potential Loyalists predicates and must resolve to Champions.
var segmentRules = []segmentRule{
	{func(r, f int) bool { return r >= 4 && f >= 4 }, model.SegmentChampions},
	{func(r, f int) bool { return r >= 3 && f >= 3 }, model.SegmentLoyalCustomers},
	{func(r, f int) bool { return r >= 4 && f >= 2 }, model.SegmentPotentialLoyalists},
	{func(r, f int) bool { return r >= 3 && f <= 2 }, model.SegmentPromising},
	{func(r, f int) bool { return r <= 2 && f >= 4 }, model.SegmentCantLoseThem},
	{func(r, f int) bool { return r <= 2 && f >= 2 }, model.SegmentAtRisk},
	{func(r, f int) bool { return r <= 2 && f <= 1 }, model.SegmentLost},
}

// ClassifySegment maps an (rScore, fScore) pair to its segment. Monetary
// score never participates in segment assignment.
func ClassifySegment(rScore, fScore int) model.Segment {
	for _, rule := range segmentRules {
		if rule.matches(rScore, fScore) {
			return rule.label
		}
	}
	return model.SegmentNeedsAttention
}
