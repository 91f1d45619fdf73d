package model

// Segment is a label from the eight-way RFM-score taxonomy.
type Segment string

// Segment labels, assigned from (rScore, fScore) pairs.
const (
	SegmentChampions          Segment = "Champions"
	SegmentLoyalCustomers     Segment = "Loyal Customers"
	SegmentPotentialLoyalists Segment = "Potential Loyalists"
	SegmentPromising          Segment = "Promising"
	SegmentNeedsAttention     Segment = "Needs Attention"
	SegmentAtRisk             Segment = "At Risk"
	SegmentCantLoseThem       Segment = "Can't Lose Them"
	SegmentLost               Segment = "Lost"
)

// Cluster is a label from the five-way raw-threshold taxonomy. It is an
// independent view over the same customers as Segment and shares no state
// with it.
type Cluster string

// Cluster labels, assigned from raw (unscored) RFM values.
const (
	ClusterVIP        Cluster = "VIP"
	ClusterRegular    Cluster = "Regular"
	ClusterNewLow     Cluster = "New/Low-spend"
	ClusterSleeping   Cluster = "Sleeping"
	ClusterOccasional Cluster = "Occasional"
)

// CustomerProfile is the per-customer RFM profile derived from the full
// transaction set. Exactly one profile exists per distinct customer id.
// Immutable once scoring completes.
type CustomerProfile struct {
	ID        string
	Country   string
	Recency   int // days since the most recent transaction
	Frequency int // transaction count
	Monetary  float64
	RScore    int // 1-5
	FScore    int // 1-5
	MScore    int // 1-5
	Segment   Segment
	Cluster   Cluster
}

// ClusterSummary holds single-pass aggregates for one cluster.
type ClusterSummary struct {
	Cluster      Cluster
	Count        int
	AvgMonetary  float64
	AvgFrequency float64
	AvgRecency   float64
}
