package auctionerrors

import "errors"

// Repository-level errors
var (
	ErrAuctionNotFound = errors.New("auction not found")
	ErrItemNotFound    = errors.New("item not found")
	ErrNoBids          = errors.New("no bids found for item")
	ErrUserNoBids      = errors.New("user has not placed any bids")
	ErrStaleHighest    = errors.New("highest bid changed since read")
	ErrAutoBidNotFound = errors.New("auto-bid not found")
	ErrNotifNotFound   = errors.New("notification not found")
)

// business logic errors
var (
	ErrInvalidBid        = errors.New("invalid bid")
	ErrInvalidAuction    = errors.New("invalid auction details")
	ErrBidTooLow         = errors.New("bid amount too low")
	ErrInvalidAutoBid    = errors.New("invalid auto-bid")
	ErrIllegalTransition = errors.New("illegal auction status transition")
	ErrForbidden         = errors.New("operation not permitted for caller")
	ErrConflict          = errors.New("concurrent bid conflict")
)
