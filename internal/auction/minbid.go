package auction

import model "kemazon-client/internal/models"

// Bid increments enforced by the backend: a plain bid must beat the highest
// simple bid by 100, or by 200 when an automatic bid is also in play. The
// first bid on an auction must beat the base price by 100.
const (
	SimpleIncrement  = 100
	AutobidIncrement = 200
)

// MinimumNextBid derives the smallest amount a new bid must meet. A zero
// result means bidding is not open (no base price and no bids); callers must
// not submit in that case.
func MinimumNextBid(base, latestSimple, latestAutomatic float64) float64 {
	if latestSimple > 0 {
		if latestAutomatic > 0 {
			return latestSimple + AutobidIncrement
		}
		return latestSimple + SimpleIncrement
	}
	if base > 0 {
		return base + SimpleIncrement
	}
	return 0
}

// MinimumFromLatest applies MinimumNextBid to a latest-amounts response.
func MinimumFromLatest(base model.Amount, latest model.LatestBidAmounts) float64 {
	if !latest.HasBids() {
		return MinimumNextBid(float64(base), 0, 0)
	}
	return MinimumNextBid(float64(base), float64(latest.MaxSimple), float64(latest.MaxAutomatic))
}
