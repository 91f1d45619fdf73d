package cluster

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/shopmetrics/retailpulse/internal/model"
)

func TestClassify(t *testing.T) {
	tests := []struct {
		want    model.Cluster
		name    string
		profile model.CustomerProfile
	}{
		{model.ClusterVIP, "big spender", model.CustomerProfile{Monetary: 2500, Frequency: 5, Recency: 40}},
		{model.ClusterVIP, "vip wins over new/low-spend", model.CustomerProfile{Monetary: 2500, Frequency: 1, Recency: 10}},
		{model.ClusterRegular, "frequent buyer", model.CustomerProfile{Monetary: 500, Frequency: 11, Recency: 40}},
		{model.ClusterNewLow, "recent low spender", model.CustomerProfile{Monetary: 50, Frequency: 2, Recency: 10}},
		{model.ClusterSleeping, "long gone", model.CustomerProfile{Monetary: 500, Frequency: 5, Recency: 120}},
		{model.ClusterOccasional, "everything else", model.CustomerProfile{Monetary: 500, Frequency: 5, Recency: 60}},
		{model.ClusterOccasional, "recent but too frequent for new", model.CustomerProfile{Monetary: 100, Frequency: 3, Recency: 10}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Classify(tt.profile))
		})
	}
}

func TestSummarize(t *testing.T) {
	profiles := []model.CustomerProfile{
		{ID: "v1", Monetary: 3000, Frequency: 4, Recency: 20},
		{ID: "v2", Monetary: 5000, Frequency: 8, Recency: 40},
		{ID: "o1", Monetary: 300, Frequency: 5, Recency: 60},
	}

	summaries := Summarize(profiles)
	require.Len(t, summaries, 5, "all five clusters are always reported")

	byCluster := make(map[model.Cluster]model.ClusterSummary, len(summaries))
	for _, s := range summaries {
		byCluster[s.Cluster] = s
	}

	vip := byCluster[model.ClusterVIP]
	assert.Equal(t, 2, vip.Count)
	assert.InDelta(t, 4000.0, vip.AvgMonetary, 1e-9)
	assert.InDelta(t, 6.0, vip.AvgFrequency, 1e-9)
	assert.InDelta(t, 30.0, vip.AvgRecency, 1e-9)

	occasional := byCluster[model.ClusterOccasional]
	assert.Equal(t, 1, occasional.Count)
	assert.InDelta(t, 300.0, occasional.AvgMonetary, 1e-9)

	for _, c := range []model.Cluster{model.ClusterRegular, model.ClusterNewLow, model.ClusterSleeping} {
		empty := byCluster[c]
		assert.Zero(t, empty.Count)
		assert.Zero(t, empty.AvgMonetary, "empty clusters report zero, not NaN")
	}
}

func TestSummarize_EmptyInput(t *testing.T) {
	summaries := Summarize(nil)
	require.Len(t, summaries, 5)
	for _, s := range summaries {
		assert.Zero(t, s.Count)
	}
}

func TestSummarize_FixedOrder(t *testing.T) {
	summaries := Summarize(nil)
	want := []model.Cluster{
		model.ClusterVIP,
		model.ClusterRegular,
		model.ClusterOccasional,
		model.ClusterNewLow,
		model.ClusterSleeping,
	}
	for i, s := range summaries {
		assert.Equal(t, want[i], s.Cluster)
	}
}
