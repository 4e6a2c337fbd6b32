package handler

import (
	"fmt"
	"net/http"
	"strconv"

	model "kemazon-client/internal/models"
	"kemazon-client/services/bidding/helpers"
	"kemazon-client/utils"

	"github.com/gin-gonic/gin"
)

type MarketplaceServiceInterface interface {
	GetProduct(productID int) (model.Product, error)
	ListAuctions() []model.Auction
	PlaceBid(req model.PlaceBidRequest) (int, string, error)
	LatestAmounts(auctionID int) (model.LatestBidAmounts, error)
	BidHistory(auctionID, perPage, page int) (model.BidPage, error)
}

type MarketplaceHandler struct {
	service MarketplaceServiceInterface
}

func NewMarketplaceHandler(service MarketplaceServiceInterface) *MarketplaceHandler {
	return &MarketplaceHandler{service: service}
}

// GetProductHandler handles GET /api/products/:product_id
func (h *MarketplaceHandler) GetProductHandler(c *gin.Context) {
	productID, err := strconv.Atoi(c.Param("product_id"))
	if err != nil {
		helpers.HandleBindError(c, "GetProductHandler", err)
		return
	}

	product, err := h.service.GetProduct(productID)
	if err != nil {
		status, message := helpers.MapErrorToHTTP(err)
		utils.JSONError(c, status, fmt.Errorf("%s: %w", message, err), message)
		utils.Warn("GetProductHandler: error retrieving product", map[string]any{
			"product_id": productID,
			"error":      err.Error(),
		})
		return
	}

	c.JSON(http.StatusOK, product)
}

// GetAuctionsHandler handles GET /api/auctions
func (h *MarketplaceHandler) GetAuctionsHandler(c *gin.Context) {
	auctions := h.service.ListAuctions()
	if auctions == nil {
		auctions = []model.Auction{}
	}
	c.JSON(http.StatusOK, auctions)
}

// PlaceBidHandler handles POST /api/bids. Accepted and message-rejected bids
// both answer 200 with a message body; hard refusals answer 203. This
// mirrors the production endpoint the client is written against.
func (h *MarketplaceHandler) PlaceBidHandler(c *gin.Context) {
	var req helpers.PlaceBidRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		helpers.HandleBindError(c, "PlaceBidHandler", err)
		return
	}

	status, message, err := h.service.PlaceBid(model.PlaceBidRequest{
		AuctionID: req.AuctionID,
		UserID:    req.UserID,
		Amount:    req.Amount,
		DateBid:   req.DateBid,
		Autobid:   req.Autobid,
		Status:    req.Status,
	})
	if err != nil {
		httpStatus, mapped := helpers.MapErrorToHTTP(err)
		utils.JSONError(c, httpStatus, fmt.Errorf("%s: %w", mapped, err), mapped)
		utils.Error("PlaceBidHandler: failed to place bid", map[string]any{
			"auction_id": req.AuctionID,
			"user_id":    req.UserID,
			"error":      err.Error(),
		})
		return
	}

	utils.BidMessage(c, status, message)
	helpers.LogSuccess("PlaceBidHandler", "bid processed", map[string]any{
		"auction_id": req.AuctionID,
		"user_id":    req.UserID,
		"amount":     req.Amount,
		"status":     status,
		"message":    message,
	})
}

// GetLatestBidHandler handles GET /api/bids/:auction_id
func (h *MarketplaceHandler) GetLatestBidHandler(c *gin.Context) {
	auctionID, err := strconv.Atoi(c.Param("auction_id"))
	if err != nil {
		helpers.HandleBindError(c, "GetLatestBidHandler", err)
		return
	}

	latest, err := h.service.LatestAmounts(auctionID)
	if err != nil {
		status, message := helpers.MapErrorToHTTP(err)
		utils.JSONError(c, status, fmt.Errorf("%s: %w", message, err), message)
		utils.Warn("GetLatestBidHandler: error retrieving latest amounts", map[string]any{
			"auction_id": auctionID,
			"error":      err.Error(),
		})
		return
	}

	c.JSON(http.StatusOK, latest)
}

// GetBidHistoryHandler handles GET /api/get_history_bids/:auction_id/:cant?page=n
func (h *MarketplaceHandler) GetBidHistoryHandler(c *gin.Context) {
	auctionID, err := strconv.Atoi(c.Param("auction_id"))
	if err != nil {
		helpers.HandleBindError(c, "GetBidHistoryHandler", err)
		return
	}
	perPage, err := strconv.Atoi(c.Param("cant"))
	if err != nil {
		helpers.HandleBindError(c, "GetBidHistoryHandler", err)
		return
	}
	page, err := strconv.Atoi(c.DefaultQuery("page", "1"))
	if err != nil {
		page = 1
	}

	bidPage, err := h.service.BidHistory(auctionID, perPage, page)
	if err != nil {
		status, message := helpers.MapErrorToHTTP(err)
		utils.JSONError(c, status, fmt.Errorf("%s: %w", message, err), message)
		utils.Warn("GetBidHistoryHandler: error retrieving bid history", map[string]any{
			"auction_id": auctionID,
			"error":      err.Error(),
		})
		return
	}

	c.JSON(http.StatusOK, bidPage)
	helpers.LogSuccess("GetBidHistoryHandler", "bid history retrieved", map[string]any{
		"auction_id": auctionID,
		"page":       bidPage.CurrentPage,
		"count":      len(bidPage.Data),
	})
}
