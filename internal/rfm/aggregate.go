// Package rfm derives per-customer Recency/Frequency/Monetary profiles from
// a transaction set, scores each dimension against the customer population,
// and assigns segments from the score pair.
package rfm

import (
	"sort"
	"time"

	"github.com/shopmetrics/retailpulse/internal/model"
)

// accumulator collects one customer's running totals during the fold. It is
// discarded once profiles are finalized.
type accumulator struct {
	country   string
	recency   int
	frequency int
	monetary  float64
}

// BuildProfiles folds transactions into one unscored profile per distinct
// customer. Recency is the smallest day-gap between now and any of the
// customer's transactions. Callers must hold now constant across all
// components of one analysis run. The result is sorted by customer id and
// is empty when the input is empty.
func BuildProfiles(transactions []model.Transaction, now time.Time) []model.CustomerProfile {
	accumulators := make(map[string]*accumulator)
	order := make([]string, 0)

	for _, tx := range transactions {
		acc, ok := accumulators[tx.CustomerID]
		if !ok {
			acc = &accumulator{recency: daysBetween(now, tx.Timestamp)}
			accumulators[tx.CustomerID] = acc
			order = append(order, tx.CustomerID)
		}
		acc.frequency++
		acc.monetary += tx.Revenue()
		// Last-seen country wins when a customer spans several.
		acc.country = tx.Country

		if gap := daysBetween(now, tx.Timestamp); gap < acc.recency {
			acc.recency = gap
		}
	}

	sort.Strings(order)

	profiles := make([]model.CustomerProfile, 0, len(order))
	for _, id := range order {
		acc := accumulators[id]
		profiles = append(profiles, model.CustomerProfile{
			ID:        id,
			Country:   acc.country,
			Recency:   acc.recency,
			Frequency: acc.frequency,
			Monetary:  acc.monetary,
		})
	}

	return profiles
}

// daysBetween returns the number of whole days from ts to now.
func daysBetween(now, ts time.Time) int {
	return int(now.Sub(ts) / (24 * time.Hour))
}
