package integrationtests

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"kemazon-client/internal/api"
	"kemazon-client/internal/auction"
	"kemazon-client/internal/bidding"
	"kemazon-client/internal/clienterrors"
	marketplace "kemazon-client/internal/marketplaceService"
	model "kemazon-client/internal/models"
	"kemazon-client/internal/push"
	"kemazon-client/internal/session"
	"kemazon-client/internal/view"
)

func newClientSession(env *testEnv, userID int, name string) (*api.Client, *session.Session) {
	sess := session.New()
	sess.Login("token-"+name, model.User{ID: userID, Name: name})
	return api.NewClient(env.apiURL(), 5*time.Second, sess), sess
}

// Read endpoints, exercised through the real HTTP client against the stub.
func TestReadEndpoints(t *testing.T) {
	env := newTestEnv(t)
	client, _ := newClientSession(env, 2, "Ana")
	ctx := context.Background()

	product, err := client.GetProduct(ctx, 1)
	require.NoError(t, err)
	require.Equal(t, "Bicicleta de carrera", product.Name)
	require.Len(t, product.Auctions, 1)
	require.Equal(t, model.Amount(1000), product.Auctions[0].Base)

	auctions, err := client.GetAuctions(ctx)
	require.NoError(t, err)
	require.Len(t, auctions, 1)
	require.Equal(t, 7, auctions[0].ID)

	latest, err := client.GetLatestBidAmounts(ctx, 7)
	require.NoError(t, err)
	require.False(t, latest.HasBids())

	page, err := client.GetBidHistory(ctx, 7, 5, 1)
	require.NoError(t, err)
	require.Equal(t, 0, page.Total)

	_, err = client.GetProduct(ctx, 99)
	require.ErrorIs(t, err, clienterrors.ErrTransport)
}

// A bid placed through the raw client comes back as a receipt whose message,
// not HTTP status, decides the outcome.
func TestPlaceBidReceipts(t *testing.T) {
	env := newTestEnv(t)
	client, _ := newClientSession(env, 2, "Ana")
	ctx := context.Background()

	// First bid on the auction.
	receipt, err := client.PlaceBid(ctx, model.PlaceBidRequest{
		AuctionID: 7, UserID: 2, Amount: 1100, Status: 1,
	})
	require.NoError(t, err)
	require.Equal(t, 200, receipt.StatusCode)
	require.Equal(t, marketplace.MsgFirstBid, receipt.Message)
	require.True(t, bidding.Classify(receipt).Accepted())

	// Too low for the new minimum, still HTTP 200.
	receipt, err = client.PlaceBid(ctx, model.PlaceBidRequest{
		AuctionID: 7, UserID: 3, Amount: 1150, Status: 1,
	})
	require.NoError(t, err)
	require.Equal(t, 200, receipt.StatusCode)
	require.Equal(t, bidding.RejectedTooLow, bidding.Classify(receipt).Kind)

	// Outbidding takes the lead.
	receipt, err = client.PlaceBid(ctx, model.PlaceBidRequest{
		AuctionID: 7, UserID: 3, Amount: 1200, Status: 1,
	})
	require.NoError(t, err)
	require.Equal(t, marketplace.MsgLeading, receipt.Message)
	require.Equal(t, bidding.AcceptedLeading, bidding.Classify(receipt).Kind)

	require.Equal(t, 2, env.repo.CountBids(7))
}

// Full client flow: one user watches the product while another bids. The
// watcher sees the bid arrive over the push channel, its history and minimum
// follow, and it can then outbid through the view.
func TestLiveBiddingFlow(t *testing.T) {
	env := newTestEnv(t)
	anaClient, anaSession := newClientSession(env, 2, "Ana")
	brunoClient, _ := newClientSession(env, 3, "Bruno")
	ctx := context.Background()

	events := make(chan push.BidEvent, 4)
	v, err := view.Open(ctx, anaClient, env.bus, anaSession, 1, view.Options{
		OnBidEvent: func(e push.BidEvent) { events <- e },
	})
	require.NoError(t, err)
	defer v.Close()

	current, phase, ok := v.CurrentAuction()
	require.True(t, ok)
	require.Equal(t, 7, current.ID)
	require.Equal(t, auction.PhaseLive, phase)
	require.Equal(t, 1100.0, v.Minimum())

	// Bruno bids from another client.
	receipt, err := brunoClient.PlaceBid(ctx, model.PlaceBidRequest{
		AuctionID: 7, UserID: 3, Amount: 1100, Status: 1,
	})
	require.NoError(t, err)
	require.True(t, bidding.Classify(receipt).Accepted())

	select {
	case e := <-events:
		require.Equal(t, 7, e.AuctionID)
		require.Equal(t, 1100.0, e.Amount)
		require.Equal(t, "Bruno", e.BidderName)
	case <-time.After(2 * time.Second):
		t.Fatal("push event never arrived")
	}

	// Ana's view catches up on its own.
	require.Eventually(t, func() bool {
		return v.Minimum() == 1200 && v.History().NotificationCount() == 1
	}, 2*time.Second, 10*time.Millisecond)

	page := v.History().Page()
	require.Equal(t, 1, page.Total)
	require.Equal(t, "Bruno", page.Data[0].BidderName())
	require.True(t, v.History().IsLeader(0))

	// Ana outbids through the view.
	outcome, err := v.PlaceBid(ctx, v.Minimum(), false)
	require.NoError(t, err)
	require.Equal(t, bidding.AcceptedLeading, outcome.Kind)

	require.Eventually(t, func() bool {
		return v.History().Page().Total == 2
	}, 2*time.Second, 10*time.Millisecond)
	top := v.History().Page().Data[0]
	require.Equal(t, "Ana", top.BidderName())
	require.True(t, top.IsMine(anaSession.UserID()))
	require.Equal(t, 1400.0, v.Minimum())
}

// Bidding on a product whose auction already ended is refused before any
// request leaves the client.
func TestFinishedAuctionRefusesBids(t *testing.T) {
	env := newTestEnv(t)

	now := time.Now()
	env.repo.AddProduct(model.Product{
		ID:   2,
		Name: "Remate terminado",
		Auctions: []model.Auction{
			{
				ID:        8,
				ProductID: 2,
				Base:      500,
				Status:    model.AuctionStatusFinished,
				DateStart: now.Add(-48 * time.Hour).Format("2006-01-02"),
				TimeStart: now.Add(-48 * time.Hour).Format("15:04:05"),
				DateEnd:   now.Add(-24 * time.Hour).Format("2006-01-02"),
				TimeEnd:   now.Add(-24 * time.Hour).Format("15:04:05"),
			},
		},
	})

	client, sess := newClientSession(env, 2, "Ana")
	v, err := view.Open(context.Background(), client, env.bus, sess, 2, view.Options{})
	require.NoError(t, err)
	defer v.Close()

	_, phase, ok := v.CurrentAuction()
	require.True(t, ok)
	require.Equal(t, auction.PhaseFinished, phase)

	_, err = v.PlaceBid(context.Background(), 600, false)
	require.ErrorIs(t, err, clienterrors.ErrBiddingClosed)

	// The stub refuses it server-side too.
	receipt, err := client.PlaceBid(context.Background(), model.PlaceBidRequest{
		AuctionID: 8, UserID: 2, Amount: 600, Status: 1,
	})
	require.NoError(t, err)
	require.Equal(t, 203, receipt.StatusCode)
	require.Equal(t, bidding.RejectedServer, bidding.Classify(receipt).Kind)
}
