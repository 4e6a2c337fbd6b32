package helpers

// PlaceBidRequest is the POST /bids binding DTO. The autobid flag is 0/1 and
// status is always 1 from the web client; neither is required.
type PlaceBidRequest struct {
	AuctionID int     `json:"auction_id" binding:"required"`
	UserID    int     `json:"user_id" binding:"required"`
	Amount    float64 `json:"amount" binding:"required,gt=0"`
	DateBid   string  `json:"date_bid"`
	Autobid   int     `json:"autobid" binding:"oneof=0 1"`
	Status    int     `json:"status"`
}
