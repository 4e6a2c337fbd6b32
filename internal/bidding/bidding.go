// Package bidding implements the client side of bid placement: fail-fast
// validation against the current minimum, submission, and classification of
// the backend's answer into an outcome the caller can act on.
package bidding

import (
	"context"
	"fmt"
	"math"
	"strconv"
	"strings"
	"time"

	"kemazon-client/internal/api"
	"kemazon-client/internal/clienterrors"
	model "kemazon-client/internal/models"
	"kemazon-client/utils"
)

// Message fragments the backend embeds in bid-placement responses. The
// endpoint answers 200 even for the two rejection cases, so these fragments,
// not the HTTP status, are the authoritative outcome signal.
const (
	msgNoCompetingBids = "Muy Bien, por ahora no hay otras ofertas"
	msgLeadingAuction  = "Muy Bien!, por ahora vas ganando este REMATE"
	msgBidTooLow       = "Tu oferta no puede ser menor"
	msgOutbidByAutobid = "Ups!!, Alguien con OFERTA AUTOMATICA te sigue GANADO!"
)

// OutcomeKind buckets the backend's answer to a bid.
type OutcomeKind int

const (
	// OutcomeUnknown is the zero value: no classification happened yet. It
	// reports neither accepted nor rejected.
	OutcomeUnknown OutcomeKind = iota
	// AcceptedLeading: the bid stands and currently leads the auction.
	AcceptedLeading
	// AcceptedUnknown: 200 with an unrecognized message; treated as success
	// but without a leadership claim.
	AcceptedUnknown
	// RejectedTooLow: someone bid in the meantime and the amount no longer
	// meets the minimum.
	RejectedTooLow
	// RejectedAutobid: an automatic bid outbid this one.
	RejectedAutobid
	// RejectedServer: the backend refused the bid outright (HTTP 203).
	RejectedServer
)

// Outcome is the classified result of a submitted bid.
type Outcome struct {
	Kind    OutcomeKind
	Message string
}

// Accepted reports whether the bid was recorded. An accepted outcome closes
// the submission flow and triggers a history/minimum refresh.
func (o Outcome) Accepted() bool {
	return o.Kind == AcceptedLeading || o.Kind == AcceptedUnknown
}

// Rejected reports whether the bidder should correct the amount and retry;
// the submission flow stays open.
func (o Outcome) Rejected() bool {
	return o.Kind == RejectedTooLow || o.Kind == RejectedAutobid || o.Kind == RejectedServer
}

// Err maps a rejected outcome onto the clienterrors sentinels so callers can
// branch with errors.Is instead of switching on Kind. Accepted outcomes
// return nil.
func (o Outcome) Err() error {
	switch o.Kind {
	case RejectedAutobid:
		return fmt.Errorf("bidding: %w - %s", clienterrors.ErrOutbidByAutobid, o.Message)
	case RejectedTooLow, RejectedServer:
		return fmt.Errorf("bidding: %w - %s", clienterrors.ErrBidRejected, o.Message)
	default:
		return nil
	}
}

// Classify maps a bid receipt to an outcome. Only 200 and 203 receipts reach
// this point; anything else already failed as a transport error.
func Classify(receipt model.BidReceipt) Outcome {
	if receipt.StatusCode == 203 {
		return Outcome{Kind: RejectedServer, Message: receipt.Message}
	}

	switch {
	case strings.Contains(receipt.Message, msgNoCompetingBids),
		strings.Contains(receipt.Message, msgLeadingAuction):
		return Outcome{Kind: AcceptedLeading, Message: receipt.Message}
	case strings.Contains(receipt.Message, msgBidTooLow):
		return Outcome{Kind: RejectedTooLow, Message: receipt.Message}
	case strings.Contains(receipt.Message, msgOutbidByAutobid):
		return Outcome{Kind: RejectedAutobid, Message: receipt.Message}
	default:
		return Outcome{Kind: AcceptedUnknown, Message: receipt.Message}
	}
}

// ParseAmount converts a user-entered amount into a number, rejecting
// non-numeric and non-finite input before any other validation runs.
func ParseAmount(raw string) (float64, error) {
	amount, err := strconv.ParseFloat(strings.TrimSpace(raw), 64)
	if err != nil || math.IsNaN(amount) || math.IsInf(amount, 0) {
		return 0, fmt.Errorf("bidding: %w - amount %q is not numeric", clienterrors.ErrInvalidBid, raw)
	}
	return amount, nil
}

// Service submits bids for an authenticated user.
type Service struct {
	backend api.Backend
}

func NewService(backend api.Backend) *Service {
	return &Service{backend: backend}
}

// Validate applies the pre-submit checks. It never touches the network;
// a returned error is one of the clienterrors validation sentinels.
func (s *Service) Validate(auctionID, bidderID int, amount, minimum float64) error {
	if auctionID == 0 {
		return fmt.Errorf("bidding: %w", clienterrors.ErrMissingAuction)
	}
	if bidderID == 0 {
		return fmt.Errorf("bidding: %w", clienterrors.ErrMissingBidder)
	}
	if minimum <= 0 {
		return fmt.Errorf("bidding: %w - no base price and no prior bids", clienterrors.ErrBiddingClosed)
	}
	if amount <= 0 || math.IsNaN(amount) {
		return fmt.Errorf("bidding: %w - non-positive amount", clienterrors.ErrInvalidBid)
	}
	if amount < minimum {
		return fmt.Errorf("bidding: %w - minimum is %.2f, got %.2f", clienterrors.ErrBidBelowMinimum, minimum, amount)
	}
	return nil
}

// Submit validates and places a bid, returning the classified outcome.
// Validation failures and transport errors surface as errors; server-side
// rejections are successful calls with a Rejected outcome.
func (s *Service) Submit(ctx context.Context, auctionID, bidderID int, amount, minimum float64, autobid bool) (Outcome, error) {
	if err := s.Validate(auctionID, bidderID, amount, minimum); err != nil {
		return Outcome{}, err
	}

	req := model.PlaceBidRequest{
		AuctionID: auctionID,
		UserID:    bidderID,
		Amount:    amount,
		DateBid:   time.Now().Format(model.DateTimeLayout),
		Autobid:   0,
		Status:    1,
	}
	if autobid {
		req.Autobid = 1
	}

	receipt, err := s.backend.PlaceBid(ctx, req)
	if err != nil {
		return Outcome{}, fmt.Errorf("bidding: submit for auction %d: %w", auctionID, err)
	}

	outcome := Classify(receipt)
	utils.Info("bid submitted", map[string]any{
		"auction_id": auctionID,
		"user_id":    bidderID,
		"amount":     amount,
		"autobid":    autobid,
		"accepted":   outcome.Accepted(),
		"message":    outcome.Message,
	})
	return outcome, nil
}
