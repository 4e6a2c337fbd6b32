// Package history maintains the paginated bid history of one auction and
// keeps it consistent with the live bid-event stream.
package history

import (
	"context"
	"fmt"
	"sync"

	"kemazon-client/internal/api"
	model "kemazon-client/internal/models"
	"kemazon-client/utils"
)

// PageSizes are the per-page choices the history view offers.
var PageSizes = []int{5, 10, 20, 50, 100}

// DefaultPageSize is used when no (or an unsupported) size is configured.
const DefaultPageSize = 5

// normalizePageSize snaps an arbitrary value onto the supported set.
func normalizePageSize(n int) int {
	for _, size := range PageSizes {
		if n == size {
			return n
		}
	}
	return DefaultPageSize
}

// View is the client-side state of one auction's bid history: the current
// page window plus the count of live bids the viewer has not acknowledged.
type View struct {
	backend api.Backend

	mu        sync.RWMutex
	auctionID int
	perPage   int
	page      model.BidPage
	unread    int
}

// NewView builds a history view for an auction. A zero auctionID is allowed
// and yields empty pages without network calls, matching the web client's
// behavior while no auction is selected.
func NewView(backend api.Backend, auctionID, perPage int) *View {
	return &View{
		backend:   backend,
		auctionID: auctionID,
		perPage:   normalizePageSize(perPage),
		page:      model.EmptyBidPage(),
	}
}

// LoadPage fetches one page of the history and replaces the local window.
// State is fetch-and-replace only; pages are never merged.
func (v *View) LoadPage(ctx context.Context, page int) error {
	v.mu.RLock()
	auctionID, perPage := v.auctionID, v.perPage
	v.mu.RUnlock()

	if auctionID == 0 {
		v.mu.Lock()
		v.page = model.EmptyBidPage()
		v.mu.Unlock()
		return nil
	}
	if page < 1 {
		page = 1
	}

	fetched, err := v.backend.GetBidHistory(ctx, auctionID, perPage, page)
	if err != nil {
		return fmt.Errorf("history: load page %d: %w", page, err)
	}
	if fetched.Data == nil {
		fetched.Data = []model.Bid{}
	}

	v.mu.Lock()
	v.page = fetched
	v.mu.Unlock()
	return nil
}

// Refresh re-fetches page 1. New bids shift every row, so live updates
// always restart from the first page.
func (v *View) Refresh(ctx context.Context) error {
	return v.LoadPage(ctx, 1)
}

// HandleBidEvent records a live bid notification and refreshes page 1. The
// unread count grows even if the refresh fails; the bid did happen.
func (v *View) HandleBidEvent(ctx context.Context) error {
	v.mu.Lock()
	v.unread++
	unread := v.unread
	auctionID := v.auctionID
	v.mu.Unlock()

	utils.Debug("history: live bid event", map[string]any{
		"auction_id": auctionID,
		"unread":     unread,
	})
	return v.Refresh(ctx)
}

// Acknowledge resets the unread counter, e.g. when the viewer dismisses the
// notification indicator. The page total is untouched.
func (v *View) Acknowledge() {
	v.mu.Lock()
	v.unread = 0
	v.mu.Unlock()
}

// NotificationCount returns the number of live bids since the viewer last
// acknowledged. Independent of Page().Total.
func (v *View) NotificationCount() int {
	v.mu.RLock()
	defer v.mu.RUnlock()
	return v.unread
}

// Page returns the current history window.
func (v *View) Page() model.BidPage {
	v.mu.RLock()
	defer v.mu.RUnlock()
	page := v.page
	page.Data = append([]model.Bid(nil), v.page.Data...)
	return page
}

// PerPage returns the active page size.
func (v *View) PerPage() int {
	v.mu.RLock()
	defer v.mu.RUnlock()
	return v.perPage
}

// SetPerPage switches the page size and reloads from page 1. Unsupported
// sizes fall back to the default.
func (v *View) SetPerPage(ctx context.Context, perPage int) error {
	v.mu.Lock()
	v.perPage = normalizePageSize(perPage)
	v.mu.Unlock()
	return v.LoadPage(ctx, 1)
}

// IsLeader reports whether the row at index holds the winning bid. Only the
// top row of page 1 can lead; paging away never carries the marker along.
func (v *View) IsLeader(index int) bool {
	v.mu.RLock()
	defer v.mu.RUnlock()
	return v.page.CurrentPage == 1 && index == 0 && len(v.page.Data) > 0
}
