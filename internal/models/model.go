package models

import "time"

// Role identifies what a user is allowed to do in the marketplace.
type Role string

const (
	RoleAdmin  Role = "admin"
	RoleSeller Role = "seller"
	RoleBuyer  Role = "buyer"
)

// Identity is the authenticated caller of an operation, supplied by the
// identity provider and trusted as given.
type Identity struct {
	UserID string `json:"user_id"`
	Role   Role   `json:"role"`
}

// IsAdmin reports whether the identity carries the admin role.
func (id Identity) IsAdmin() bool {
	return id.Role == RoleAdmin
}

// AuctionStatus is the lifecycle state of an auction.
type AuctionStatus string

const (
	StatusDraft    AuctionStatus = "draft"
	StatusUpcoming AuctionStatus = "upcoming"
	StatusActive   AuctionStatus = "active"
	StatusEnded    AuctionStatus = "ended"
)

// CarpSpecies enumerates the species a lot can be listed as.
type CarpSpecies string

const (
	SpeciesCommon  CarpSpecies = "common"
	SpeciesMirror  CarpSpecies = "mirror"
	SpeciesKoi     CarpSpecies = "koi"
	SpeciesLeather CarpSpecies = "leather"
)

// Auction represents a timed auction event containing lots.
type Auction struct {
	AuctionID    string        `json:"auction_id"`
	OrganizerID  string        `json:"organizer_id"`
	Title        string        `json:"title"`
	Description  string        `json:"description"`
	StartDate    time.Time     `json:"start_date"`
	EndDate      time.Time     `json:"end_date"`
	Status       AuctionStatus `json:"status"`
	ContactEmail string        `json:"contact_email"`
	ContactPhone string        `json:"contact_phone"`
	Location     string        `json:"location"`
	Terms        string        `json:"terms_and_conditions,omitempty"`
	CreatedAt    time.Time     `json:"created_at"`
}

// Item represents a single lot (one fish) inside an auction.
// HighestBid and LastBidAt are a cache maintained by the bid ledger on every
// write; they are never an independent source of truth.
type Item struct {
	ItemID       string      `json:"item_id"`
	AuctionID    string      `json:"auction_id"`
	SellerID     string      `json:"seller_id"`
	Title        string      `json:"title"`
	Description  string      `json:"description"`
	StartPrice   float64     `json:"start_price"`
	MinSellPrice float64     `json:"min_sell_price"`
	Images       []string    `json:"images,omitempty"`
	Weight       float64     `json:"weight"`
	Length       float64     `json:"length"`
	Bloodline    string      `json:"bloodline"`
	Species      CarpSpecies `json:"species"`
	Age          string      `json:"age"`
	Gender       string      `json:"gender"`
	HighestBid   float64     `json:"highest_bid"`
	LastBidAt    *time.Time  `json:"last_bid_at,omitempty"`
	CreatedAt    time.Time   `json:"created_at"`
}

// Bid represents a user's bid on an item. Bids are immutable once recorded.
type Bid struct {
	BidID     string    `json:"bid_id"`
	ItemID    string    `json:"item_id"`
	BidderID  string    `json:"bidder_id"`
	Amount    float64   `json:"amount"`
	CreatedAt time.Time `json:"created_at"`
}

// AutoBid is a standing instruction to bid on an item on a user's behalf up
// to MaxAmount. At most one active AutoBid exists per (item, bidder) pair.
type AutoBid struct {
	ItemID    string    `json:"item_id"`
	BidderID  string    `json:"bidder_id"`
	MaxAmount float64   `json:"max_amount"`
	IsActive  bool      `json:"is_active"`
	CreatedAt time.Time `json:"created_at"`
}

// NotificationType classifies an auto-bid notification.
type NotificationType string

const (
	NotifyAutoBidPlaced       NotificationType = "auto_bid_placed"
	NotifyAutoBidOutbid       NotificationType = "auto_bid_outbid"
	NotifyAutoBidLimitReached NotificationType = "auto_bid_limit_reached"
)

// Notification is a message delivered to a user as a side effect of auto-bid
// resolution.
type Notification struct {
	NotificationID string           `json:"notification_id"`
	UserID         string           `json:"user_id"`
	Type           NotificationType `json:"type"`
	Title          string           `json:"title"`
	Message        string           `json:"message"`
	ItemID         string           `json:"item_id,omitempty"`
	AuctionID      string           `json:"auction_id,omitempty"`
	IsRead         bool             `json:"is_read"`
	CreatedAt      time.Time        `json:"created_at"`
}

// ReserveStatus classifies an item's current price against its reserve.
type ReserveStatus string

const (
	NoReserve     ReserveStatus = "no_reserve"
	ReserveMet    ReserveStatus = "reserve_met"
	ReserveNotMet ReserveStatus = "reserve_not_met"
)
