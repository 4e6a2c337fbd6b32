package clienterrors

import "errors"

// Local validation errors: never sent over the network.
var (
	ErrInvalidBid      = errors.New("invalid bid")
	ErrBidBelowMinimum = errors.New("bid amount below minimum")
	ErrMissingBidder   = errors.New("missing bidder identity")
	ErrMissingAuction  = errors.New("missing auction identity")
	ErrBiddingClosed   = errors.New("bidding is not open for this auction")
	ErrOwnProduct      = errors.New("cannot bid on own product")
)

// Server-classified rejections: the auction moved underneath the bidder.
var (
	ErrBidRejected     = errors.New("bid rejected by server")
	ErrOutbidByAutobid = errors.New("outbid by an automatic bid")
)

// Transport and lifecycle errors.
var (
	ErrTransport    = errors.New("connection or server error")
	ErrStaleContext = errors.New("view context is closed")
)
