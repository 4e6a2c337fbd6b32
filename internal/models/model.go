package models

import (
	"bytes"
	"encoding/json"
	"strconv"
	"time"
)

// Auction status codes as stored by the backend.
const (
	AuctionStatusPending  = 0
	AuctionStatusActive   = 1
	AuctionStatusFinished = 2
)

// DateTimeLayout is the combined layout of the split date/time columns the
// backend returns ("2025-07-01" + "18:30:00").
const DateTimeLayout = "2006-01-02 15:04:05"

// Amount is a monetary value. The backend emits amounts inconsistently as
// JSON numbers or as strings, so decoding accepts both.
type Amount float64

func (a *Amount) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if len(data) == 0 || bytes.Equal(data, []byte("null")) {
		*a = 0
		return nil
	}
	if data[0] == '"' {
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return err
		}
		if s == "" {
			*a = 0
			return nil
		}
		f, err := strconv.ParseFloat(s, 64)
		if err != nil {
			return err
		}
		*a = Amount(f)
		return nil
	}
	var f float64
	if err := json.Unmarshal(data, &f); err != nil {
		return err
	}
	*a = Amount(f)
	return nil
}

// User represents a marketplace account referenced by products and bids.
type User struct {
	ID    int    `json:"id"`
	Name  string `json:"name"`
	Phone string `json:"phone,omitempty"`
}

// Image is a product gallery entry. Only the file name matters to the client.
type Image struct {
	ID       int    `json:"id"`
	FileName string `json:"fullName_image_product"`
}

// Product is a sellable item carrying its auctions.
type Product struct {
	ID          int       `json:"id"`
	Name        string    `json:"name"`
	Description string    `json:"description_product"`
	User        *User     `json:"user,omitempty"`
	Auctions    []Auction `json:"auctions"`
	Images      []Image   `json:"images,omitempty"`
}

// Auction is a time-boxed sale event attached to a product. The backend
// stores start/end as separate date and time columns; StartsAt/EndsAt
// combine them.
type Auction struct {
	ID          int    `json:"id"`
	ProductID   int    `json:"product_id"`
	Title       string `json:"title"`
	Description string `json:"description"`
	Base        Amount `json:"base"`
	Status      int    `json:"status"`
	DateStart   string `json:"date_start"`
	TimeStart   string `json:"time_start"`
	DateEnd     string `json:"date_end"`
	TimeEnd     string `json:"time_end"`
}

// StartsAt returns the auction start instant, or the zero time if the stored
// date/time does not parse.
func (a Auction) StartsAt() time.Time {
	return combineDateTime(a.DateStart, a.TimeStart)
}

// EndsAt returns the auction end instant, or the zero time if the stored
// date/time does not parse.
func (a Auction) EndsAt() time.Time {
	return combineDateTime(a.DateEnd, a.TimeEnd)
}

// IsLiveAt reports whether the auction is running at the given instant. The
// stored status flag can lag reality, so both the flag and the time window
// are checked.
func (a Auction) IsLiveAt(now time.Time) bool {
	start, end := a.StartsAt(), a.EndsAt()
	if start.IsZero() || end.IsZero() {
		return false
	}
	return a.Status == AuctionStatusActive && !now.Before(start) && now.Before(end)
}

func combineDateTime(date, clock string) time.Time {
	if date == "" {
		return time.Time{}
	}
	if clock == "" {
		clock = "00:00:00"
	}
	t, err := time.ParseInLocation(DateTimeLayout, date+" "+clock, time.Local)
	if err != nil {
		return time.Time{}
	}
	return t
}

// Bid is an immutable offer placed against an auction.
type Bid struct {
	ID        int    `json:"id"`
	AuctionID int    `json:"auction_id"`
	UserID    int    `json:"user_id"`
	Amount    Amount `json:"amount"`
	DateBid   string `json:"date_bid"`
	Autobid   int    `json:"autobid"`
	Status    int    `json:"status"`
	User      *User  `json:"user,omitempty"`
}

// PlacedAt returns the instant the bid was placed, or the zero time if the
// stored timestamp does not parse.
func (b Bid) PlacedAt() time.Time {
	t, err := time.ParseInLocation(DateTimeLayout, b.DateBid, time.Local)
	if err != nil {
		return time.Time{}
	}
	return t
}

// BidderName returns the bidder display name, with the same fallback the web
// client shows for bids missing user data.
func (b Bid) BidderName() string {
	if b.User != nil && b.User.Name != "" {
		return b.User.Name
	}
	return "Usuario Desconocido"
}

// IsMine reports whether the bid belongs to the given viewer. A zero viewer
// id (logged out) owns nothing.
func (b Bid) IsMine(userID int) bool {
	return userID != 0 && b.UserID == userID
}

// BidPage is one pagination window of an auction's bid history, in the
// server-assigned order (newest first).
type BidPage struct {
	Data        []Bid `json:"data"`
	CurrentPage int   `json:"current_page"`
	LastPage    int   `json:"last_page"`
	Total       int   `json:"total"`
	PerPage     int   `json:"per_page"`
}

// EmptyBidPage is the placeholder window used before any fetch or when no
// auction is selected.
func EmptyBidPage() BidPage {
	return BidPage{Data: []Bid{}, CurrentPage: 1, LastPage: 1}
}

// LatestAmountsStatusFull marks a latest-amounts response that actually
// carries bid data; any other status means no bids exist yet.
const LatestAmountsStatusFull = "full"

// LatestBidAmounts is the response of GET /bids/{auctionId}: the highest
// simple and automatic bid amounts currently on the auction. The misspelled
// JSON field names are the backend's.
type LatestBidAmounts struct {
	Status       string `json:"status"`
	MaxSimple    Amount `json:"amounMaximoSimple"`
	MaxAutomatic Amount `json:"amounMaximoAutom"`
}

// HasBids reports whether the auction has at least one recorded bid.
func (l LatestBidAmounts) HasBids() bool {
	return l.Status == LatestAmountsStatusFull && l.MaxSimple > 0
}

// PlaceBidRequest is the POST /bids payload.
type PlaceBidRequest struct {
	AuctionID int     `json:"auction_id"`
	UserID    int     `json:"user_id"`
	Amount    float64 `json:"amount"`
	DateBid   string  `json:"date_bid"`
	Autobid   int     `json:"autobid"`
	Status    int     `json:"status"`
}

// BidReceipt is the backend's answer to a bid placement. The HTTP status is
// carried alongside the message because for this endpoint the message
// content, not the status code, decides the outcome (see package bidding).
type BidReceipt struct {
	StatusCode int
	Message    string
}
