package main

import (
	"fmt"
	"os"
	"time"

	"kemazon-client/internal/config"
	marketplace "kemazon-client/internal/marketplaceService"
	model "kemazon-client/internal/models"
	"kemazon-client/internal/push"
	"kemazon-client/internal/repository"
	"kemazon-client/internal/server"
	"kemazon-client/utils"
)

func main() {
	cfg := config.MustLoad()
	utils.SetLevel(cfg.Logger.Level)

	repo := repository.NewMemoryRepo()
	prepopulate(repo)

	var bus push.Publisher
	if natsBus, err := push.ConnectNATS(cfg.NATS.URL); err == nil {
		defer natsBus.Close()
		bus = natsBus
	} else {
		utils.Warn("NATS unavailable, bid events stay in-process", map[string]any{
			"url":   cfg.NATS.URL,
			"error": err.Error(),
		})
		bus = push.NewMemoryBus()
	}

	marketplaceSvc := marketplace.NewService(repo, bus)
	router := server.SetupRouter(marketplaceSvc)

	port := getPort()
	fmt.Printf("Starting stub marketplace server on %s...\n", port)
	if err := router.Run(port); err != nil {
		fmt.Fprintf(os.Stderr, "Failed to start server: %v\n", err)
		os.Exit(1)
	}
}

// prepopulate seeds the store with a product whose auction is live for the
// next day, so a freshly started client has something to bid on.
func prepopulate(repo *repository.MemoryRepo) {
	now := time.Now()
	seller := model.User{ID: 1, Name: "Vendedor Demo", Phone: "59899000111"}
	bidder := model.User{ID: 2, Name: "Oferente Demo"}
	repo.AddUser(seller)
	repo.AddUser(bidder)

	repo.AddProduct(model.Product{
		ID:          1,
		Name:        "Bicicleta de carrera",
		Description: "Cuadro de aluminio, 21 cambios",
		User:        &seller,
		Auctions: []model.Auction{
			{
				ID:        1,
				ProductID: 1,
				Title:     "Remate bicicleta",
				Base:      1000,
				Status:    model.AuctionStatusActive,
				DateStart: now.Add(-time.Hour).Format("2006-01-02"),
				TimeStart: now.Add(-time.Hour).Format("15:04:05"),
				DateEnd:   now.Add(24 * time.Hour).Format("2006-01-02"),
				TimeEnd:   now.Add(24 * time.Hour).Format("15:04:05"),
			},
		},
	})
}

// getPort returns the server port from env or defaults to ":8080"
func getPort() string {
	if p := os.Getenv("PORT"); p != "" {
		return fmt.Sprintf(":%s", p)
	}
	return ":8080"
}
