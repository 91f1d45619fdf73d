// Package cluster groups customers into five marketing-facing buckets using
// fixed thresholds over raw RFM values. It is an independent view over the
// same customers as RFM-score segmentation and shares no state with it.
package cluster

import "github.com/shopmetrics/retailpulse/internal/model"

// clusterRule pairs a predicate over raw RFM values with the cluster it
// assigns.
type clusterRule struct {
	matches func(p model.CustomerProfile) bool
	label   model.Cluster
}

// clusterRules is evaluated top to bottom with first-match semantics: a
// customer with monetary 2500 and frequency 1 is VIP, not New/Low-spend.
var clusterRules = []clusterRule{
	{func(p model.CustomerProfile) bool { return p.Monetary > 2000 }, model.ClusterVIP},
	{func(p model.CustomerProfile) bool { return p.Frequency > 10 }, model.ClusterRegular},
	{func(p model.CustomerProfile) bool { return p.Recency < 30 && p.Frequency <= 2 }, model.ClusterNewLow},
	{func(p model.CustomerProfile) bool { return p.Recency > 90 }, model.ClusterSleeping},
}

// allClusters fixes the reporting order; every cluster appears in summaries
// even when empty.
var allClusters = []model.Cluster{
	model.ClusterVIP,
	model.ClusterRegular,
	model.ClusterOccasional,
	model.ClusterNewLow,
	model.ClusterSleeping,
}

// Classify maps one profile's raw RFM values to a cluster.
func Classify(p model.CustomerProfile) model.Cluster {
	for _, rule := range clusterRules {
		if rule.matches(p) {
			return rule.label
		}
	}
	return model.ClusterOccasional
}

// Summarize classifies every profile and accumulates per-cluster aggregates
// in a single pass. All five clusters are always present in the result, in
// fixed order.
func Summarize(profiles []model.CustomerProfile) []model.ClusterSummary {
	type totals struct {
		count     int
		monetary  float64
		frequency int
		recency   int
	}

	byCluster := make(map[model.Cluster]*totals, len(allClusters))
	for _, c := range allClusters {
		byCluster[c] = &totals{}
	}

	for _, p := range profiles {
		t := byCluster[Classify(p)]
		t.count++
		t.monetary += p.Monetary
		t.frequency += p.Frequency
		t.recency += p.Recency
	}

	summaries := make([]model.ClusterSummary, 0, len(allClusters))
	for _, c := range allClusters {
		t := byCluster[c]
		summary := model.ClusterSummary{Cluster: c, Count: t.count}
		if t.count > 0 {
			summary.AvgMonetary = t.monetary / float64(t.count)
			summary.AvgFrequency = float64(t.frequency) / float64(t.count)
			summary.AvgRecency = float64(t.recency) / float64(t.count)
		}
		summaries = append(summaries, summary)
	}

	return summaries
}
