// Package marketplace implements the business rules of the stub backend:
// the same bid acceptance logic and response messages the production Laravel
// API uses, so the client can be developed and tested against it.
package marketplace

import (
	"fmt"
	"net/http"
	"time"

	"kemazon-client/internal/auction"
	model "kemazon-client/internal/models"
	"kemazon-client/internal/push"
	"kemazon-client/internal/repository"
	"kemazon-client/utils"
)

// Response messages of the bid-placement endpoint. Rejections for a running
// auction still ship with HTTP 200; clients classify by message content.
const (
	MsgFirstBid        = "Muy Bien, por ahora no hay otras ofertas. Sos el primero!"
	MsgLeading         = "Muy Bien!, por ahora vas ganando este REMATE"
	MsgTooLowFormat    = "Tu oferta no puede ser menor a $%.2f"
	MsgOutbidByAutobid = "Ups!!, Alguien con OFERTA AUTOMATICA te sigue GANADO!"
	MsgNotActive       = "La subasta no se encuentra activa en este momento."
	MsgNotOpen         = "Este remate no esta habilitado para recibir ofertas."
)

// Service applies the marketplace bid rules over a repository and announces
// accepted bids on the push bus.
type Service struct {
	repo repository.MarketplaceDB
	bus  push.Publisher
}

// NewService creates a new marketplace Service instance
func NewService(repo repository.MarketplaceDB, bus push.Publisher) *Service {
	return &Service{repo: repo, bus: bus}
}

// GetProduct returns a product with its nested auctions.
func (s *Service) GetProduct(productID int) (model.Product, error) {
	product, err := s.repo.GetProduct(productID)
	if err != nil {
		return model.Product{}, fmt.Errorf("service: failed to get product %d: %w", productID, err)
	}
	return product, nil
}

// ListAuctions returns all stored auctions.
func (s *Service) ListAuctions() []model.Auction {
	return s.repo.ListAuctions()
}

// LatestAmounts returns the highest simple/automatic bid amounts for an
// auction.
func (s *Service) LatestAmounts(auctionID int) (model.LatestBidAmounts, error) {
	latest, err := s.repo.LatestAmounts(auctionID)
	if err != nil {
		return model.LatestBidAmounts{}, fmt.Errorf("service: failed to get latest amounts for auction %d: %w", auctionID, err)
	}
	return latest, nil
}

// BidHistory returns one page of an auction's bids, newest first.
func (s *Service) BidHistory(auctionID, perPage, page int) (model.BidPage, error) {
	bidPage, err := s.repo.BidHistory(auctionID, perPage, page)
	if err != nil {
		return model.BidPage{}, fmt.Errorf("service: failed to get bid history for auction %d: %w", auctionID, err)
	}
	return bidPage, nil
}

// PlaceBid applies the bid rules and returns the HTTP status and message the
// real endpoint would answer with. A non-nil error means a hard failure
// (unknown auction, storage), not a rejected bid.
func (s *Service) PlaceBid(req model.PlaceBidRequest) (int, string, error) {
	target, err := s.repo.GetAuction(req.AuctionID)
	if err != nil {
		return 0, "", fmt.Errorf("service: place bid: %w", err)
	}

	now := time.Now()
	if !target.IsLiveAt(now) {
		return http.StatusNonAuthoritativeInfo, MsgNotActive, nil
	}

	latest, err := s.repo.LatestAmounts(req.AuctionID)
	if err != nil {
		return 0, "", fmt.Errorf("service: place bid: %w", err)
	}

	minimum := auction.MinimumFromLatest(target.Base, latest)
	if minimum <= 0 {
		return http.StatusNonAuthoritativeInfo, MsgNotOpen, nil
	}
	if req.Amount < minimum {
		return http.StatusOK, fmt.Sprintf(MsgTooLowFormat, minimum), nil
	}

	firstBid := s.repo.CountBids(req.AuctionID) == 0

	dateBid := req.DateBid
	if dateBid == "" {
		dateBid = now.Format(model.DateTimeLayout)
	}
	recorded, err := s.repo.RecordBid(model.Bid{
		AuctionID: req.AuctionID,
		UserID:    req.UserID,
		Amount:    model.Amount(req.Amount),
		DateBid:   dateBid,
		Autobid:   req.Autobid,
		Status:    1,
	})
	if err != nil {
		return 0, "", fmt.Errorf("service: failed to record bid for auction %d by user %d: %w", req.AuctionID, req.UserID, err)
	}

	if err := s.bus.Publish(push.Topic(req.AuctionID), push.BidEvent{
		AuctionID:  req.AuctionID,
		Amount:     req.Amount,
		BidderName: recorded.BidderName(),
	}); err != nil {
		utils.Warn("service: failed to publish bid event", map[string]any{
			"auction_id": req.AuctionID,
			"error":      err.Error(),
		})
	}

	// A standing automatic bid at or above the new amount keeps the lead.
	if latest.MaxAutomatic > 0 && float64(latest.MaxAutomatic) >= req.Amount {
		return http.StatusOK, MsgOutbidByAutobid, nil
	}
	if firstBid {
		return http.StatusOK, MsgFirstBid, nil
	}
	return http.StatusOK, MsgLeading, nil
}
