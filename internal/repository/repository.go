// Package repository backs the stub marketplace server with an in-memory
// store of products, auctions and bids.
package repository

import (
	"errors"
	"fmt"
	"sort"
	"sync"

	model "kemazon-client/internal/models"
)

var (
	ErrProductNotFound = errors.New("product not found")
	ErrAuctionNotFound = errors.New("auction not found")
)

// MarketplaceDB is the storage interface of the stub server.
type MarketplaceDB interface {
	GetProduct(productID int) (model.Product, error)
	ListAuctions() []model.Auction
	GetAuction(auctionID int) (model.Auction, error)
	RecordBid(bid model.Bid) (model.Bid, error)
	LatestAmounts(auctionID int) (model.LatestBidAmounts, error)
	BidHistory(auctionID, perPage, page int) (model.BidPage, error)
	CountBids(auctionID int) int
}

// MemoryRepo is a concurrency-safe in-memory implementation of MarketplaceDB.
type MemoryRepo struct {
	mu        sync.RWMutex
	products  map[int]model.Product
	auctions  map[int]model.Auction
	bids      map[int][]model.Bid // key: auctionID -> bids in placement order
	users     map[int]model.User
	nextBidID int
}

// NewMemoryRepo creates a new in-memory repository instance
func NewMemoryRepo() *MemoryRepo {
	return &MemoryRepo{
		products:  make(map[int]model.Product),
		auctions:  make(map[int]model.Auction),
		bids:      make(map[int][]model.Bid),
		users:     make(map[int]model.User),
		nextBidID: 1,
	}
}

// AddProduct seeds a product and its nested auctions.
func (r *MemoryRepo) AddProduct(product model.Product) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.products[product.ID] = product
	for _, a := range product.Auctions {
		r.auctions[a.ID] = a
	}
}

// AddUser seeds a user so bid rows can carry bidder names.
func (r *MemoryRepo) AddUser(user model.User) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.users[user.ID] = user
}

// GetProduct returns a product with its auctions.
func (r *MemoryRepo) GetProduct(productID int) (model.Product, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	product, ok := r.products[productID]
	if !ok {
		return model.Product{}, fmt.Errorf("get product %d: %w", productID, ErrProductNotFound)
	}
	return product, nil
}

// ListAuctions returns every stored auction.
func (r *MemoryRepo) ListAuctions() []model.Auction {
	r.mu.RLock()
	defer r.mu.RUnlock()

	auctions := make([]model.Auction, 0, len(r.auctions))
	for _, a := range r.auctions {
		auctions = append(auctions, a)
	}
	sort.Slice(auctions, func(i, j int) bool { return auctions[i].ID < auctions[j].ID })
	return auctions
}

// GetAuction returns one auction.
func (r *MemoryRepo) GetAuction(auctionID int) (model.Auction, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	a, ok := r.auctions[auctionID]
	if !ok {
		return model.Auction{}, fmt.Errorf("get auction %d: %w", auctionID, ErrAuctionNotFound)
	}
	return a, nil
}

// RecordBid stores a bid, assigning its id and attaching the bidder.
func (r *MemoryRepo) RecordBid(bid model.Bid) (model.Bid, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.auctions[bid.AuctionID]; !ok {
		return model.Bid{}, fmt.Errorf("record bid for auction %d: %w", bid.AuctionID, ErrAuctionNotFound)
	}

	bid.ID = r.nextBidID
	r.nextBidID++
	if user, ok := r.users[bid.UserID]; ok {
		bid.User = &user
	}
	r.bids[bid.AuctionID] = append(r.bids[bid.AuctionID], bid)
	return bid, nil
}

// LatestAmounts returns the highest simple and automatic bid amounts for an
// auction, with the "full"/"empty" status convention of the real backend.
func (r *MemoryRepo) LatestAmounts(auctionID int) (model.LatestBidAmounts, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	if _, ok := r.auctions[auctionID]; !ok {
		return model.LatestBidAmounts{}, fmt.Errorf("latest amounts for auction %d: %w", auctionID, ErrAuctionNotFound)
	}

	bids := r.bids[auctionID]
	if len(bids) == 0 {
		return model.LatestBidAmounts{Status: "empty"}, nil
	}

	// Simple and automatic maxima are tracked separately; an automatic bid
	// never raises the simple maximum.
	latest := model.LatestBidAmounts{Status: model.LatestAmountsStatusFull}
	for _, b := range bids {
		if b.Autobid == 1 {
			if b.Amount > latest.MaxAutomatic {
				latest.MaxAutomatic = b.Amount
			}
		} else if b.Amount > latest.MaxSimple {
			latest.MaxSimple = b.Amount
		}
	}
	return latest, nil
}

// BidHistory returns one page of an auction's bids, newest first. The page
// number is clamped into [1, last_page].
func (r *MemoryRepo) BidHistory(auctionID, perPage, page int) (model.BidPage, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	if _, ok := r.auctions[auctionID]; !ok {
		return model.BidPage{}, fmt.Errorf("bid history for auction %d: %w", auctionID, ErrAuctionNotFound)
	}
	if perPage < 1 {
		perPage = 1
	}

	stored := r.bids[auctionID]
	total := len(stored)
	lastPage := (total + perPage - 1) / perPage
	if lastPage < 1 {
		lastPage = 1
	}
	if page < 1 {
		page = 1
	}
	if page > lastPage {
		page = lastPage
	}

	// Newest first: reverse of placement order.
	newest := make([]model.Bid, 0, total)
	for i := total - 1; i >= 0; i-- {
		newest = append(newest, stored[i])
	}

	start := (page - 1) * perPage
	end := start + perPage
	if start > total {
		start = total
	}
	if end > total {
		end = total
	}

	return model.BidPage{
		Data:        newest[start:end],
		CurrentPage: page,
		LastPage:    lastPage,
		Total:       total,
		PerPage:     perPage,
	}, nil
}

// CountBids returns the number of bids recorded for an auction.
func (r *MemoryRepo) CountBids(auctionID int) int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.bids[auctionID])
}
