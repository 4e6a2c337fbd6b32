// Package view ties the auction core together for one viewed product: it
// selects the auction to display, runs its countdown, keeps the bid history
// and minimum-next-bid in sync with the push channel, and submits bids.
package view

import (
	"context"
	"fmt"
	"sync"
	"time"

	"kemazon-client/internal/api"
	"kemazon-client/internal/auction"
	"kemazon-client/internal/bidding"
	"kemazon-client/internal/clienterrors"
	"kemazon-client/internal/countdown"
	"kemazon-client/internal/history"
	model "kemazon-client/internal/models"
	"kemazon-client/internal/push"
	"kemazon-client/internal/session"
	"kemazon-client/utils"
)

// refreshTimeout bounds the background re-fetches triggered by push events
// and countdown expiry, which run outside any caller's context.
const refreshTimeout = 10 * time.Second

// Options configures a ProductView.
type Options struct {
	// PerPage is the bid-history page size; zero means the default.
	PerPage int
	// OnTick, when set, observes each countdown state.
	OnTick func(countdown.State)
	// OnBidEvent, when set, observes each live bid event. Display only;
	// state always comes from the REST re-fetch.
	OnBidEvent func(push.BidEvent)
}

// ProductView is the live client state for one product page. Open it to
// start countdown and push subscription, Close it when navigating away;
// async completions that land after Close are discarded.
type ProductView struct {
	backend api.Backend
	bus     push.Subscriber
	session *session.Session
	bids    *bidding.Service
	opts    Options

	mu          sync.Mutex
	closed      bool
	product     model.Product
	current     model.Auction
	phase       auction.Phase
	hasAuction  bool
	minimum     float64
	history     *history.View
	ticker      *countdown.Countdown
	unsubscribe func()

	wg sync.WaitGroup
}

// Open fetches the product and brings the view live: auction selection,
// history page 1, minimum next bid, countdown, push subscription.
func Open(ctx context.Context, backend api.Backend, bus push.Subscriber, sess *session.Session, productID int, opts Options) (*ProductView, error) {
	if opts.PerPage == 0 {
		opts.PerPage = history.DefaultPageSize
	}

	v := &ProductView{
		backend: backend,
		bus:     bus,
		session: sess,
		bids:    bidding.NewService(backend),
		opts:    opts,
		history: history.NewView(backend, 0, opts.PerPage),
	}

	product, err := backend.GetProduct(ctx, productID)
	if err != nil {
		return nil, fmt.Errorf("view: open product %d: %w", productID, err)
	}
	if err := v.apply(ctx, product); err != nil {
		v.Close()
		return nil, err
	}
	return v, nil
}

// apply installs a (re)fetched product: re-selects the auction, switches the
// history view and subscription when the selected auction changed, and
// retargets the countdown whenever the phase changed. The countdown always
// points at the next phase boundary (start while upcoming, end while live),
// so its expiry re-runs selection exactly when the phase flips.
func (v *ProductView) apply(ctx context.Context, product model.Product) error {
	selected, phase, ok := auction.SelectCurrent(product.Auctions, time.Now())

	v.mu.Lock()
	if v.closed {
		v.mu.Unlock()
		return clienterrors.ErrStaleContext
	}
	v.product = product
	previousID := 0
	previousPhase := v.phase
	if v.hasAuction {
		previousID = v.current.ID
	}
	v.current, v.phase, v.hasAuction = selected, phase, ok
	auctionChanged := !ok && previousID != 0 || ok && selected.ID != previousID
	phaseChanged := auctionChanged || phase != previousPhase

	if auctionChanged {
		// Old channel first, then the new one; never two live subscriptions.
		if v.unsubscribe != nil {
			v.unsubscribe()
			v.unsubscribe = nil
		}
		auctionID := 0
		if ok {
			auctionID = selected.ID
		}
		v.history = history.NewView(v.backend, auctionID, v.opts.PerPage)
	}
	var oldTicker *countdown.Countdown
	if phaseChanged && v.ticker != nil {
		oldTicker = v.ticker
		v.ticker = nil
	}
	hist := v.history
	v.mu.Unlock()

	if oldTicker != nil {
		oldTicker.Stop()
	}

	if !ok {
		utils.Info("view: product has no displayable auction", map[string]any{"product_id": product.ID})
		return nil
	}

	if err := hist.LoadPage(ctx, 1); err != nil {
		utils.Warn("view: initial history load failed", map[string]any{
			"auction_id": selected.ID,
			"error":      err.Error(),
		})
	}
	v.refreshMinimum(ctx)

	if auctionChanged {
		if err := v.subscribe(selected.ID); err != nil {
			return err
		}
	}
	if phaseChanged {
		switch phase {
		case auction.PhaseUpcoming:
			v.startCountdown(selected.StartsAt())
		case auction.PhaseLive:
			v.startCountdown(selected.EndsAt())
		}
	}

	utils.Info("view: auction selected", map[string]any{
		"product_id": product.ID,
		"auction_id": selected.ID,
		"phase":      phase.String(),
		"minimum":    v.Minimum(),
	})
	return nil
}

func (v *ProductView) subscribe(auctionID int) error {
	cancel, err := v.bus.Subscribe(push.Topic(auctionID), v.onBidEvent)
	if err != nil {
		return fmt.Errorf("view: subscribe to auction %d: %w", auctionID, err)
	}

	v.mu.Lock()
	if v.closed {
		v.mu.Unlock()
		cancel()
		return clienterrors.ErrStaleContext
	}
	v.unsubscribe = cancel
	v.mu.Unlock()
	return nil
}

// startCountdown ticks toward the next phase boundary of the displayed
// auction: its start while upcoming, its end while live.
func (v *ProductView) startCountdown(boundary time.Time) {
	ticker := countdown.Start(boundary)

	v.mu.Lock()
	if v.closed {
		v.mu.Unlock()
		ticker.Stop()
		return
	}
	v.ticker = ticker
	v.mu.Unlock()

	v.wg.Add(1)
	go func() {
		defer v.wg.Done()
		for state := range ticker.C {
			if v.isClosed() {
				return
			}
			if v.opts.OnTick != nil {
				v.opts.OnTick(state)
			}
			if state.Expired {
				// A phase boundary just passed; re-fetch so selection moves
				// to the now-live (or finished, or next) auction.
				v.reload()
				return
			}
		}
	}()
}

// onBidEvent is the push-channel continuation: another bidder placed a bid,
// so page 1 and the minimum are re-fetched. Runs detached from any caller
// context and is a no-op once the view is closed.
func (v *ProductView) onBidEvent(event push.BidEvent) {
	if v.isClosed() {
		return
	}
	if v.opts.OnBidEvent != nil {
		v.opts.OnBidEvent(event)
	}

	v.wg.Add(1)
	go func() {
		defer v.wg.Done()
		ctx, cancel := context.WithTimeout(context.Background(), refreshTimeout)
		defer cancel()
		if v.isClosed() {
			return
		}
		if err := v.History().HandleBidEvent(ctx); err != nil && !v.isClosed() {
			utils.Warn("view: history refresh after bid event failed", map[string]any{
				"auction_id": event.AuctionID,
				"error":      err.Error(),
			})
		}
		v.refreshMinimum(ctx)
	}()
}

// reload re-fetches the product after a countdown boundary passes.
func (v *ProductView) reload() {
	v.wg.Add(1)
	go func() {
		defer v.wg.Done()
		ctx, cancel := context.WithTimeout(context.Background(), refreshTimeout)
		defer cancel()

		v.mu.Lock()
		productID := v.product.ID
		closed := v.closed
		v.mu.Unlock()
		if closed {
			return
		}

		product, err := v.backend.GetProduct(ctx, productID)
		if err != nil {
			if !v.isClosed() {
				utils.Warn("view: product reload failed", map[string]any{
					"product_id": productID,
					"error":      err.Error(),
				})
			}
			return
		}
		if err := v.apply(ctx, product); err != nil && err != clienterrors.ErrStaleContext {
			utils.Warn("view: reapply after reload failed", map[string]any{
				"product_id": productID,
				"error":      err.Error(),
			})
		}
	}()
}

// refreshMinimum re-fetches the latest bid amounts and recomputes the
// minimum next bid. On failure the previous value stands.
func (v *ProductView) refreshMinimum(ctx context.Context) {
	v.mu.Lock()
	if v.closed || !v.hasAuction {
		v.mu.Unlock()
		return
	}
	auctionID := v.current.ID
	base := v.current.Base
	v.mu.Unlock()

	latest, err := v.backend.GetLatestBidAmounts(ctx, auctionID)
	if err != nil {
		if !v.isClosed() {
			utils.Warn("view: latest bid amounts fetch failed", map[string]any{
				"auction_id": auctionID,
				"error":      err.Error(),
			})
		}
		return
	}

	minimum := auction.MinimumFromLatest(base, latest)

	v.mu.Lock()
	if !v.closed && v.hasAuction && v.current.ID == auctionID {
		v.minimum = minimum
	}
	v.mu.Unlock()
}

// PlaceBid validates and submits a bid on the displayed auction, then
// refreshes history and minimum when the bid was accepted.
func (v *ProductView) PlaceBid(ctx context.Context, amount float64, autobid bool) (bidding.Outcome, error) {
	v.mu.Lock()
	if v.closed {
		v.mu.Unlock()
		return bidding.Outcome{}, clienterrors.ErrStaleContext
	}
	if !v.hasAuction || v.phase != auction.PhaseLive {
		v.mu.Unlock()
		return bidding.Outcome{}, fmt.Errorf("view: %w", clienterrors.ErrBiddingClosed)
	}
	if v.product.User != nil && v.session.UserID() == v.product.User.ID {
		v.mu.Unlock()
		return bidding.Outcome{}, fmt.Errorf("view: %w", clienterrors.ErrOwnProduct)
	}
	auctionID := v.current.ID
	minimum := v.minimum
	v.mu.Unlock()

	outcome, err := v.bids.Submit(ctx, auctionID, v.session.UserID(), amount, minimum, autobid)
	if err != nil {
		return bidding.Outcome{}, err
	}

	if outcome.Accepted() && !v.isClosed() {
		if err := v.History().Refresh(ctx); err != nil && !v.isClosed() {
			utils.Warn("view: history refresh after accepted bid failed", map[string]any{
				"auction_id": auctionID,
				"error":      err.Error(),
			})
		}
		v.refreshMinimum(ctx)
	}
	return outcome, nil
}

// CurrentAuction returns the displayed auction and its phase; ok is false
// when the product has no displayable auction.
func (v *ProductView) CurrentAuction() (model.Auction, auction.Phase, bool) {
	v.mu.Lock()
	defer v.mu.Unlock()
	return v.current, v.phase, v.hasAuction
}

// Product returns the viewed product.
func (v *ProductView) Product() model.Product {
	v.mu.Lock()
	defer v.mu.Unlock()
	return v.product
}

// Minimum returns the current minimum next bid. Zero means bidding is not
// open.
func (v *ProductView) Minimum() float64 {
	v.mu.Lock()
	defer v.mu.Unlock()
	return v.minimum
}

// History returns the bid-history view for the displayed auction.
func (v *ProductView) History() *history.View {
	v.mu.Lock()
	defer v.mu.Unlock()
	return v.history
}

// Close tears the view down: countdown stopped, push channel unsubscribed,
// in-flight continuations drained. Idempotent; it must run on every exit
// path of the viewing context.
func (v *ProductView) Close() {
	v.mu.Lock()
	if v.closed {
		v.mu.Unlock()
		return
	}
	v.closed = true
	ticker := v.ticker
	unsubscribe := v.unsubscribe
	v.ticker = nil
	v.unsubscribe = nil
	v.mu.Unlock()

	if unsubscribe != nil {
		unsubscribe()
	}
	if ticker != nil {
		ticker.Stop()
	}
	v.wg.Wait()
}

func (v *ProductView) isClosed() bool {
	v.mu.Lock()
	defer v.mu.Unlock()
	return v.closed
}
