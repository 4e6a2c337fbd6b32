package server

import (
	marketplace "kemazon-client/internal/marketplaceService"
	handler "kemazon-client/services/bidding/handler"

	"github.com/gin-gonic/gin"
)

// SetupRouter configures the stub marketplace API routes
func SetupRouter(marketplaceService *marketplace.Service) *gin.Engine {
	router := gin.New() // New router without default middleware for full control over middleware and logging

	router.Use(gin.Recovery())          // recover from panics
	router.Use(RequestLoggerMiddleware) // custom request logging

	marketplaceHandler := handler.NewMarketplaceHandler(marketplaceService)

	api := router.Group("/api")
	{
		api.GET("/products/:product_id", marketplaceHandler.GetProductHandler)
		api.GET("/auctions", marketplaceHandler.GetAuctionsHandler)
		api.POST("/bids", marketplaceHandler.PlaceBidHandler)
		api.GET("/bids/:auction_id", marketplaceHandler.GetLatestBidHandler)
		api.GET("/get_history_bids/:auction_id/:cant", marketplaceHandler.GetBidHistoryHandler)
	}

	return router
}
