// Package push delivers "new bid" events over a per-auction topic. The core
// uses an event purely as a refresh trigger: payload fields are shown to the
// user but never written into local state, which is always re-fetched from
// the REST API.
package push

import "fmt"

// BidEvent announces a bid placed on an auction.
type BidEvent struct {
	AuctionID  int     `json:"auction_id"`
	Amount     float64 `json:"amount"`
	BidderName string  `json:"bidder_name"`
}

// Topic returns the per-auction subject bid events are published on.
func Topic(auctionID int) string {
	return fmt.Sprintf("auction.%d", auctionID)
}

// Subscriber attaches handlers to a topic. Subscribe returns a cancel func
// that fully detaches the handler; after it returns, the handler is never
// invoked again. Viewing code pairs every Subscribe with a deferred cancel.
type Subscriber interface {
	Subscribe(topic string, handler func(BidEvent)) (cancel func(), err error)
}

// Publisher emits bid events. Implemented by the same buses that subscribe;
// the client itself never publishes, only the stub backend does.
type Publisher interface {
	Publish(topic string, event BidEvent) error
}
