package helpers

// Request/Response DTOs
type CreateAuctionRequest struct {
	Title        string `json:"title" binding:"required"`
	Description  string `json:"description"`
	StartDate    string `json:"start_date" binding:"required"`
	EndDate      string `json:"end_date" binding:"required"`
	ContactEmail string `json:"contact_email"`
	ContactPhone string `json:"contact_phone"`
	Location     string `json:"location"`
	Terms        string `json:"terms_and_conditions"`
}

type UpdateAuctionRequest struct {
	Title        string `json:"title" binding:"required"`
	Description  string `json:"description"`
	StartDate    string `json:"start_date" binding:"required"`
	EndDate      string `json:"end_date" binding:"required"`
	ContactEmail string `json:"contact_email"`
	ContactPhone string `json:"contact_phone"`
	Location     string `json:"location"`
	Terms        string `json:"terms_and_conditions"`
}

type CreateItemRequest struct {
	AuctionID    string   `json:"auction_id" binding:"required"`
	Title        string   `json:"title" binding:"required"`
	Description  string   `json:"description"`
	StartPrice   float64  `json:"start_price" binding:"required,gt=0"`
	MinSellPrice float64  `json:"min_sell_price"`
	Images       []string `json:"images"`
	Weight       float64  `json:"weight"`
	Length       float64  `json:"length"`
	Bloodline    string   `json:"bloodline"`
	Species      string   `json:"species"`
	Age          string   `json:"age"`
	Gender       string   `json:"gender"`
}
