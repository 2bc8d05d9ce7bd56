package helpers

// Request/Response DTOs
type PlaceBidRequest struct {
	ItemID string  `json:"item_id" binding:"required"`
	Amount float64 `json:"amount" binding:"required,gt=0"`
}

type RegisterAutoBidRequest struct {
	ItemID    string  `json:"item_id" binding:"required"`
	MaxAmount float64 `json:"max_amount" binding:"required,gt=0"`
}

type BidResponse struct {
	BidID     string  `json:"bid_id"`
	ItemID    string  `json:"item_id"`
	BidderID  string  `json:"bidder_id"`
	Amount    float64 `json:"amount"`
	CreatedAt string  `json:"created_at"`
}

type LedgerStateResponse struct {
	AcceptedBid   BidResponse `json:"accepted_bid"`
	CurrentPrice  float64     `json:"current_price"`
	HighestBidder string      `json:"highest_bidder"`
	BidCount      int         `json:"bid_count"`
	Reserve       string      `json:"reserve"`
}

type AutoBidResponse struct {
	ItemID    string  `json:"item_id"`
	BidderID  string  `json:"bidder_id"`
	MaxAmount float64 `json:"max_amount"`
	IsActive  bool    `json:"is_active"`
	CreatedAt string  `json:"created_at"`
}

type QuoteResponse struct {
	BaseBid    string `json:"base_bid"`
	VATOnBid   string `json:"vat_on_bid"`
	AuctionFee string `json:"auction_fee"`
	VATOnFees  string `json:"vat_on_fees"`
	Total      string `json:"total"`
}
