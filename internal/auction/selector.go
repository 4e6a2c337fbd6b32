package auction

import (
	"time"

	model "kemazon-client/internal/models"
)

// Phase describes where the selected auction sits relative to now.
type Phase int

const (
	PhaseNone Phase = iota
	PhaseLive
	PhaseUpcoming
	PhaseFinished
)

func (p Phase) String() string {
	switch p {
	case PhaseLive:
		return "live"
	case PhaseUpcoming:
		return "upcoming"
	case PhaseFinished:
		return "finished"
	default:
		return "none"
	}
}

// SelectCurrent picks the one auction of a product to display and act on:
// a live auction wins, else the upcoming auction with the earliest start,
// else the most recently finished one. The result is a copy; ok is false
// when no auction matches any bucket.
//
// Selection depends on wall-clock time, not the stored status flag alone,
// so callers must re-run it on every tick boundary while displaying a live
// auction. The earliest-start rule for upcoming auctions makes the result
// independent of slice order.
func SelectCurrent(auctions []model.Auction, now time.Time) (model.Auction, Phase, bool) {
	for _, a := range auctions {
		if a.IsLiveAt(now) {
			return a, PhaseLive, true
		}
	}

	var upcoming model.Auction
	var upcomingFound bool
	for _, a := range auctions {
		start := a.StartsAt()
		if start.IsZero() || !now.Before(start) {
			continue
		}
		if !upcomingFound || start.Before(upcoming.StartsAt()) {
			upcoming = a
			upcomingFound = true
		}
	}
	if upcomingFound {
		return upcoming, PhaseUpcoming, true
	}

	var finished model.Auction
	var finishedFound bool
	for _, a := range auctions {
		end := a.EndsAt()
		if end.IsZero() || end.After(now) {
			continue
		}
		if !finishedFound || end.After(finished.EndsAt()) {
			finished = a
			finishedFound = true
		}
	}
	if finishedFound {
		return finished, PhaseFinished, true
	}

	return model.Auction{}, PhaseNone, false
}
