package main

import (
	"context"
	"os/signal"
	"syscall"

	"kemazon-client/internal/api"
	"kemazon-client/internal/config"
	"kemazon-client/internal/countdown"
	model "kemazon-client/internal/models"
	"kemazon-client/internal/push"
	"kemazon-client/internal/session"
	"kemazon-client/internal/view"
	"kemazon-client/utils"
)

func main() {
	cfg := config.MustLoad()
	utils.SetLevel(cfg.Logger.Level)

	if cfg.Watch.ProductID == 0 {
		utils.Fatal("no product to watch, set KEMAZON_PRODUCT_ID", nil)
	}

	sess := session.New()
	sess.Load(cfg.Auth.Token, model.User{ID: cfg.Auth.UserID, Name: cfg.Auth.UserName})

	client := api.NewClient(cfg.API.BaseURL, cfg.API.Timeout, sess)

	bus, err := push.ConnectNATS(cfg.NATS.URL)
	if err != nil {
		utils.Fatal("failed to connect to push channel", map[string]any{
			"url":   cfg.NATS.URL,
			"error": err.Error(),
		})
	}
	defer bus.Close()

	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	productView, err := view.Open(ctx, client, bus, sess, cfg.Watch.ProductID, view.Options{
		PerPage: cfg.History.PerPage,
		OnTick: func(state countdown.State) {
			if state.Expired {
				utils.Info("countdown finished", nil)
				return
			}
			utils.Info("time remaining", map[string]any{
				"days":    state.Days,
				"hours":   state.Hours,
				"minutes": state.Minutes,
				"seconds": state.Seconds,
			})
		},
		OnBidEvent: func(event push.BidEvent) {
			utils.Info("new bid", map[string]any{
				"auction_id": event.AuctionID,
				"amount":     event.Amount,
				"bidder":     event.BidderName,
			})
		},
	})
	if err != nil {
		utils.Fatal("failed to open product view", map[string]any{
			"product_id": cfg.Watch.ProductID,
			"error":      err.Error(),
		})
	}
	defer productView.Close()

	if current, phase, ok := productView.CurrentAuction(); ok {
		utils.Info("watching auction", map[string]any{
			"auction_id": current.ID,
			"title":      current.Title,
			"phase":      phase.String(),
			"minimum":    productView.Minimum(),
		})
	}

	<-ctx.Done()
	utils.Info("shutting down", nil)
}
