package repository

import (
	"fmt"
	"sort"
	"sync"

	"github.com/Insightz/carpauctions/internal/auctionerrors"
	model "github.com/Insightz/carpauctions/internal/models"
)

// AuctionDB defines the persistence contract for the auction marketplace.
// Implementations must support conditional bid appends so the bid ledger can
// detect a write that raced past its increment check.
type AuctionDB interface {
	// Auctions
	CreateAuction(a model.Auction) error
	GetAuction(auctionID string) (model.Auction, error)
	UpdateAuction(a model.Auction) error
	ListAuctions() ([]model.Auction, error)

	// Items (lots)
	CreateItem(item model.Item) error
	GetItem(itemID string) (model.Item, error)
	DeleteItem(itemID string) error
	GetItemsByAuction(auctionID string) ([]model.Item, error)

	// Bids
	RecordBidForItem(bid model.Bid, priorHighest float64) error
	GetBidsByItem(itemID string) ([]model.Bid, error)
	GetWinningBid(itemID string) (model.Bid, error)
	CountBidsByItem(itemID string) (int, error)
	GetItemsByUser(userID string) ([]model.Item, error)

	// Auto-bids
	SaveAutoBid(ab model.AutoBid) error
	GetAutoBid(itemID, bidderID string) (model.AutoBid, error)
	GetActiveAutoBids(itemID string) ([]model.AutoBid, error)

	// Notifications
	SaveNotification(n model.Notification) error
	GetNotificationsByUser(userID string) ([]model.Notification, error)
	MarkNotificationRead(notificationID string) error
}

// MemoryRepo is a concurrency-safe in-memory implementation of AuctionDB
type MemoryRepo struct {
	mu            sync.RWMutex
	auctions      map[string]model.Auction            // key: auctionID
	items         map[string]model.Item               // key: itemID
	bids          map[string][]model.Bid              // key: itemID -> append-only bid list
	autoBids      map[string]map[string]model.AutoBid // key: itemID -> bidderID -> auto-bid
	notifications map[string][]model.Notification     // key: userID -> notifications, newest last
	notifIndex    map[string]string                   // key: notificationID -> userID
	userItems     map[string][]string                 // key: userID -> itemIDs the user has bid on
}

// NewMemoryRepo creates a new in-memory repository instance
func NewMemoryRepo() *MemoryRepo {
	return &MemoryRepo{
		auctions:      make(map[string]model.Auction),
		items:         make(map[string]model.Item),
		bids:          make(map[string][]model.Bid),
		autoBids:      make(map[string]map[string]model.AutoBid),
		notifications: make(map[string][]model.Notification),
		notifIndex:    make(map[string]string),
		userItems:     make(map[string][]string),
	}
}

// CreateAuction stores a new auction record
func (r *MemoryRepo) CreateAuction(a model.Auction) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.auctions[a.AuctionID] = a
	return nil
}

// GetAuction returns an auction by ID
func (r *MemoryRepo) GetAuction(auctionID string) (model.Auction, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	a, ok := r.auctions[auctionID]
	if !ok {
		return model.Auction{}, fmt.Errorf("get auction %s: %w", auctionID, auctionerrors.ErrAuctionNotFound)
	}
	return a, nil
}

// UpdateAuction replaces an existing auction record
func (r *MemoryRepo) UpdateAuction(a model.Auction) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.auctions[a.AuctionID]; !ok {
		return fmt.Errorf("update auction %s: %w", a.AuctionID, auctionerrors.ErrAuctionNotFound)
	}
	r.auctions[a.AuctionID] = a
	return nil
}

// ListAuctions returns all auctions sorted by creation time
func (r *MemoryRepo) ListAuctions() ([]model.Auction, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	auctions := make([]model.Auction, 0, len(r.auctions))
	for _, a := range r.auctions {
		auctions = append(auctions, a)
	}
	sort.Slice(auctions, func(i, j int) bool {
		return auctions[i].CreatedAt.Before(auctions[j].CreatedAt)
	})
	return auctions, nil
}

// CreateItem stores a new lot under its parent auction
func (r *MemoryRepo) CreateItem(item model.Item) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.auctions[item.AuctionID]; !ok {
		return fmt.Errorf("create item %s: %w", item.ItemID, auctionerrors.ErrAuctionNotFound)
	}
	r.items[item.ItemID] = item
	return nil
}

// GetItem returns a lot by ID
func (r *MemoryRepo) GetItem(itemID string) (model.Item, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	item, ok := r.items[itemID]
	if !ok {
		return model.Item{}, fmt.Errorf("get item %s: %w", itemID, auctionerrors.ErrItemNotFound)
	}
	return item, nil
}

// DeleteItem removes a lot. The caller is responsible for checking the lot
// has no bids; the repository only refuses to delete what it cannot find.
func (r *MemoryRepo) DeleteItem(itemID string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.items[itemID]; !ok {
		return fmt.Errorf("delete item %s: %w", itemID, auctionerrors.ErrItemNotFound)
	}
	delete(r.items, itemID)
	delete(r.autoBids, itemID)
	return nil
}

// GetItemsByAuction returns all lots belonging to an auction
func (r *MemoryRepo) GetItemsByAuction(auctionID string) ([]model.Item, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	if _, ok := r.auctions[auctionID]; !ok {
		return nil, fmt.Errorf("get items for auction %s: %w", auctionID, auctionerrors.ErrAuctionNotFound)
	}

	items := make([]model.Item, 0)
	for _, item := range r.items {
		if item.AuctionID == auctionID {
			items = append(items, item)
		}
	}
	sort.Slice(items, func(i, j int) bool {
		return items[i].CreatedAt.Before(items[j].CreatedAt)
	})
	return items, nil
}

// RecordBidForItem appends a bid conditionally: the write succeeds only when
// the item's cached highest bid still equals priorHighest. On success the
// item's highest_bid/last_bid_at cache is refreshed in the same critical
// section, so the cache and the ledger never diverge.
func (r *MemoryRepo) RecordBidForItem(bid model.Bid, priorHighest float64) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	item, ok := r.items[bid.ItemID]
	if !ok {
		return fmt.Errorf("record bid for item %s: %w", bid.ItemID, auctionerrors.ErrItemNotFound)
	}
	if item.HighestBid != priorHighest {
		return fmt.Errorf("record bid for item %s: expected highest %.2f, have %.2f: %w",
			bid.ItemID, priorHighest, item.HighestBid, auctionerrors.ErrStaleHighest)
	}

	r.bids[bid.ItemID] = append(r.bids[bid.ItemID], bid)

	createdAt := bid.CreatedAt
	item.HighestBid = bid.Amount
	item.LastBidAt = &createdAt
	r.items[bid.ItemID] = item

	for _, id := range r.userItems[bid.BidderID] {
		if id == bid.ItemID {
			return nil
		}
	}
	r.userItems[bid.BidderID] = append(r.userItems[bid.BidderID], bid.ItemID)

	return nil
}

// GetBidsByItem returns all bids for an item
func (r *MemoryRepo) GetBidsByItem(itemID string) ([]model.Bid, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	bids, ok := r.bids[itemID]
	if !ok || len(bids) == 0 {
		return nil, fmt.Errorf("get bids for item %s: %w", itemID, auctionerrors.ErrNoBids)
	}
	return append([]model.Bid(nil), bids...), nil
}

// GetWinningBid returns the highest bid for an item. Ties on amount go to the
// earliest bid, so the first bidder to reach an amount keeps the lead.
func (r *MemoryRepo) GetWinningBid(itemID string) (model.Bid, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	bids, ok := r.bids[itemID]
	if !ok || len(bids) == 0 {
		return model.Bid{}, fmt.Errorf("get winning bid for item %s: %w", itemID, auctionerrors.ErrNoBids)
	}

	winning := bids[0]
	for _, b := range bids[1:] {
		if b.Amount > winning.Amount || (b.Amount == winning.Amount && b.CreatedAt.Before(winning.CreatedAt)) {
			winning = b
		}
	}
	return winning, nil
}

// CountBidsByItem returns the number of bids recorded for an item
func (r *MemoryRepo) CountBidsByItem(itemID string) (int, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	if _, ok := r.items[itemID]; !ok {
		return 0, fmt.Errorf("count bids for item %s: %w", itemID, auctionerrors.ErrItemNotFound)
	}
	return len(r.bids[itemID]), nil
}

// GetItemsByUser returns all items a user has bid on
func (r *MemoryRepo) GetItemsByUser(userID string) ([]model.Item, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	itemIDs, ok := r.userItems[userID]
	if !ok || len(itemIDs) == 0 {
		return nil, fmt.Errorf("get items for user %s: %w", userID, auctionerrors.ErrUserNoBids)
	}

	items := make([]model.Item, 0, len(itemIDs))
	for _, id := range itemIDs {
		if item, exists := r.items[id]; exists {
			items = append(items, item)
		}
	}
	return items, nil
}

// SaveAutoBid inserts or replaces the auto-bid for a (item, bidder) pair
func (r *MemoryRepo) SaveAutoBid(ab model.AutoBid) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.items[ab.ItemID]; !ok {
		return fmt.Errorf("save auto-bid for item %s: %w", ab.ItemID, auctionerrors.ErrItemNotFound)
	}

	byBidder, ok := r.autoBids[ab.ItemID]
	if !ok {
		byBidder = make(map[string]model.AutoBid)
		r.autoBids[ab.ItemID] = byBidder
	}
	byBidder[ab.BidderID] = ab
	return nil
}

// GetAutoBid returns the auto-bid a bidder holds on an item, active or not
func (r *MemoryRepo) GetAutoBid(itemID, bidderID string) (model.AutoBid, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	ab, ok := r.autoBids[itemID][bidderID]
	if !ok {
		return model.AutoBid{}, fmt.Errorf("get auto-bid for item %s bidder %s: %w",
			itemID, bidderID, auctionerrors.ErrAutoBidNotFound)
	}
	return ab, nil
}

// GetActiveAutoBids returns the active auto-bids on an item sorted by
// registration time, oldest first. The resolver relies on that order for its
// tie-break between equal ceilings.
func (r *MemoryRepo) GetActiveAutoBids(itemID string) ([]model.AutoBid, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	if _, ok := r.items[itemID]; !ok {
		return nil, fmt.Errorf("get active auto-bids for item %s: %w", itemID, auctionerrors.ErrItemNotFound)
	}

	active := make([]model.AutoBid, 0)
	for _, ab := range r.autoBids[itemID] {
		if ab.IsActive {
			active = append(active, ab)
		}
	}
	sort.Slice(active, func(i, j int) bool {
		return active[i].CreatedAt.Before(active[j].CreatedAt)
	})
	return active, nil
}

// SaveNotification appends a notification to the target user's inbox
func (r *MemoryRepo) SaveNotification(n model.Notification) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.notifications[n.UserID] = append(r.notifications[n.UserID], n)
	r.notifIndex[n.NotificationID] = n.UserID
	return nil
}

// GetNotificationsByUser returns a user's notifications, oldest first
func (r *MemoryRepo) GetNotificationsByUser(userID string) ([]model.Notification, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	return append([]model.Notification(nil), r.notifications[userID]...), nil
}

// AddAuction inserts an auction directly. This method is intended for tests only.
func (r *MemoryRepo) AddAuction(a model.Auction) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.auctions[a.AuctionID] = a
}

// AddItem inserts an item directly. This method is intended for tests only.
func (r *MemoryRepo) AddItem(item model.Item) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.items[item.ItemID] = item
}

// MarkNotificationRead flips a notification's read flag
func (r *MemoryRepo) MarkNotificationRead(notificationID string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	userID, ok := r.notifIndex[notificationID]
	if !ok {
		return fmt.Errorf("mark notification %s read: %w", notificationID, auctionerrors.ErrNotifNotFound)
	}
	inbox := r.notifications[userID]
	for i := range inbox {
		if inbox[i].NotificationID == notificationID {
			inbox[i].IsRead = true
			return nil
		}
	}
	return fmt.Errorf("mark notification %s read: %w", notificationID, auctionerrors.ErrNotifNotFound)
}
