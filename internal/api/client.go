package api

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"kemazon-client/internal/clienterrors"
	model "kemazon-client/internal/models"
)

// Backend is the slice of the marketplace REST API the bidding core
// consumes. api.Client is the production implementation; tests use the
// generated mock.
type Backend interface {
	GetProduct(ctx context.Context, productID int) (model.Product, error)
	GetAuctions(ctx context.Context) ([]model.Auction, error)
	PlaceBid(ctx context.Context, req model.PlaceBidRequest) (model.BidReceipt, error)
	GetLatestBidAmounts(ctx context.Context, auctionID int) (model.LatestBidAmounts, error)
	GetBidHistory(ctx context.Context, auctionID, perPage, page int) (model.BidPage, error)
}

// TokenSource supplies the bearer token attached to every request. An empty
// token sends the request unauthenticated.
type TokenSource interface {
	Token() string
}

// Client talks JSON over HTTP to the marketplace backend.
type Client struct {
	baseURL string
	http    *http.Client
	tokens  TokenSource
}

// NewClient builds a Client for the given base URL ("https://host/api").
// tokens may be nil for anonymous access.
func NewClient(baseURL string, timeout time.Duration, tokens TokenSource) *Client {
	return &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		http:    &http.Client{Timeout: timeout},
		tokens:  tokens,
	}
}

// GetProduct fetches a product with its nested auctions and images.
func (c *Client) GetProduct(ctx context.Context, productID int) (model.Product, error) {
	var product model.Product
	if err := c.getJSON(ctx, fmt.Sprintf("/products/%d", productID), &product); err != nil {
		return model.Product{}, fmt.Errorf("api: get product %d: %w", productID, err)
	}
	return product, nil
}

// GetAuctions fetches the visible-auction listing.
func (c *Client) GetAuctions(ctx context.Context) ([]model.Auction, error) {
	var auctions []model.Auction
	if err := c.getJSON(ctx, "/auctions", &auctions); err != nil {
		return nil, fmt.Errorf("api: get auctions: %w", err)
	}
	return auctions, nil
}

// PlaceBid posts a bid. Both 200 and 203 are valid receipts here: the
// endpoint reports rejections inside a 200 body and uses 203 for hard
// refusals, so the caller classifies the outcome from the receipt rather
// than this method returning an error for them.
func (c *Client) PlaceBid(ctx context.Context, req model.PlaceBidRequest) (model.BidReceipt, error) {
	body, err := json.Marshal(req)
	if err != nil {
		return model.BidReceipt{}, fmt.Errorf("api: encode bid: %w", err)
	}

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/bids", bytes.NewReader(body))
	if err != nil {
		return model.BidReceipt{}, fmt.Errorf("api: build bid request: %w", err)
	}
	c.setHeaders(httpReq)

	resp, err := c.http.Do(httpReq)
	if err != nil {
		return model.BidReceipt{}, fmt.Errorf("api: place bid: %w: %v", clienterrors.ErrTransport, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK && resp.StatusCode != http.StatusNonAuthoritativeInfo {
		return model.BidReceipt{}, fmt.Errorf("api: place bid: %w: unexpected status %d", clienterrors.ErrTransport, resp.StatusCode)
	}

	var payload struct {
		Message string `json:"message"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&payload); err != nil && err != io.EOF {
		return model.BidReceipt{}, fmt.Errorf("api: decode bid receipt: %w: %v", clienterrors.ErrTransport, err)
	}

	return model.BidReceipt{StatusCode: resp.StatusCode, Message: payload.Message}, nil
}

// GetLatestBidAmounts fetches the highest simple/automatic bid amounts for
// an auction.
func (c *Client) GetLatestBidAmounts(ctx context.Context, auctionID int) (model.LatestBidAmounts, error) {
	var latest model.LatestBidAmounts
	if err := c.getJSON(ctx, fmt.Sprintf("/bids/%d", auctionID), &latest); err != nil {
		return model.LatestBidAmounts{}, fmt.Errorf("api: get latest bid amounts for auction %d: %w", auctionID, err)
	}
	return latest, nil
}

// GetBidHistory fetches one page of an auction's bid history.
func (c *Client) GetBidHistory(ctx context.Context, auctionID, perPage, page int) (model.BidPage, error) {
	var bidPage model.BidPage
	path := fmt.Sprintf("/get_history_bids/%d/%d?page=%d", auctionID, perPage, page)
	if err := c.getJSON(ctx, path, &bidPage); err != nil {
		return model.BidPage{}, fmt.Errorf("api: get bid history for auction %d: %w", auctionID, err)
	}
	return bidPage, nil
}

func (c *Client) getJSON(ctx context.Context, path string, out any) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+path, nil)
	if err != nil {
		return err
	}
	c.setHeaders(req)

	resp, err := c.http.Do(req)
	if err != nil {
		return fmt.Errorf("%w: %v", clienterrors.ErrTransport, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("%w: unexpected status %d", clienterrors.ErrTransport, resp.StatusCode)
	}

	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("%w: decode response: %v", clienterrors.ErrTransport, err)
	}
	return nil
}

func (c *Client) setHeaders(req *http.Request) {
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Accept", "application/json")
	if c.tokens != nil {
		if token := c.tokens.Token(); token != "" {
			req.Header.Set("Authorization", "Bearer "+token)
		}
	}
}
