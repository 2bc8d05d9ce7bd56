package bidding

import (
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/Insightz/carpauctions/internal/auctionerrors"
	"github.com/Insightz/carpauctions/internal/feed"
	model "github.com/Insightz/carpauctions/internal/models"
	"github.com/Insightz/carpauctions/internal/money"
	"github.com/Insightz/carpauctions/internal/repository"
	"github.com/Insightz/carpauctions/utils"
)

// maxPlaceAttempts bounds how often a bid is retried after losing a
// conditional-write race before the conflict is surfaced to the caller.
const maxPlaceAttempts = 3

// Notifier receives the notification side effects of auto-bid resolution.
type Notifier interface {
	AutoBidPlaced(userID, itemID string, maxAmount float64)
	AutoBidOutbid(userID, itemID string, newAmount float64)
	AutoBidLimitReached(userID, itemID string, maxAmount float64)
}

// LedgerState is the state of one lot's ledger after an operation.
type LedgerState struct {
	Item          model.Item          `json:"item"`
	AcceptedBid   model.Bid           `json:"accepted_bid"`
	CurrentPrice  float64             `json:"current_price"`
	HighestBidder string              `json:"highest_bidder"`
	BidCount      int                 `json:"bid_count"`
	Reserve       model.ReserveStatus `json:"reserve"`
}

// BiddingService implements the bid ledger and the auto-bid resolver. All
// mutations on one lot run inside that lot's critical section: accept bid,
// run the proxy cascade, persist. Notifications and feed events go out after
// the section releases, so a slow or failing delivery never holds the lot.
type BiddingService struct {
	repo     repository.AuctionDB
	notifier Notifier
	hub      *feed.Hub
	cfg      money.Config

	lotLocks sync.Map // itemID -> *sync.Mutex
}

// NewBiddingService creates a new BiddingService instance
func NewBiddingService(repo repository.AuctionDB, notifier Notifier, hub *feed.Hub, cfg money.Config) *BiddingService {
	return &BiddingService{
		repo:     repo,
		notifier: notifier,
		hub:      hub,
		cfg:      cfg,
	}
}

func (s *BiddingService) lotLock(itemID string) *sync.Mutex {
	lock, _ := s.lotLocks.LoadOrStore(itemID, &sync.Mutex{})
	return lock.(*sync.Mutex)
}

// PlaceBid validates and records a user's bid for an item, then runs the
// auto-bid cascade so every other active auto-bid gets to counter. The
// returned state reflects where the lot settled after resolution.
func (s *BiddingService) PlaceBid(caller model.Identity, itemID string, amount float64) (LedgerState, error) {
	if itemID == "" || caller.UserID == "" {
		return LedgerState{}, fmt.Errorf("service: %w - missing itemID or caller", auctionerrors.ErrInvalidBid)
	}
	if amount <= 0 {
		return LedgerState{}, fmt.Errorf("service: %w - non-positive bid amount", auctionerrors.ErrInvalidBid)
	}

	lock := s.lotLock(itemID)
	lock.Lock()
	state, pending, err := s.acceptAndResolve(caller.UserID, itemID, amount)
	lock.Unlock()

	if err != nil {
		return LedgerState{}, err
	}

	s.deliver(itemID, pending)
	s.hub.Broadcast(feed.Event{
		Kind:      feed.LotPriceChanged,
		AuctionID: state.Item.AuctionID,
		ItemID:    itemID,
		Amount:    state.CurrentPrice,
		At:        time.Now().UTC(),
	})

	return state, nil
}

// acceptAndResolve runs under the lot lock: validate the bid, append it with
// a conditional write, cascade the auto-bids, and assemble the final state.
// The conditional append is retried a bounded number of times in case another
// writer on the shared store slipped between read and write.
func (s *BiddingService) acceptAndResolve(bidderID, itemID string, amount float64) (LedgerState, []notice, error) {
	var trigger model.Bid
	var prevLeader string
	var item model.Item

	for attempt := 0; ; attempt++ {
		var err error
		item, err = s.repo.GetItem(itemID)
		if err != nil {
			return LedgerState{}, nil, fmt.Errorf("service: failed to load item %s: %w", itemID, err)
		}

		auction, err := s.repo.GetAuction(item.AuctionID)
		if err != nil {
			return LedgerState{}, nil, fmt.Errorf("service: failed to load auction %s: %w", item.AuctionID, err)
		}
		if auction.Status != model.StatusActive {
			return LedgerState{}, nil, fmt.Errorf("service: %w - auction %s is %s, not active",
				auctionerrors.ErrInvalidBid, auction.AuctionID, auction.Status)
		}
		if bidderID == item.SellerID {
			return LedgerState{}, nil, fmt.Errorf("service: %w - seller cannot bid on own item", auctionerrors.ErrInvalidBid)
		}

		minimum := money.MinimumNextBid(item.HighestBid, item.StartPrice, s.cfg)
		if !money.MeetsMinimum(amount, minimum) {
			return LedgerState{}, nil, fmt.Errorf("service: %w - minimum acceptable bid is %s",
				auctionerrors.ErrBidTooLow, minimum.StringFixed(2))
		}

		prevLeader = ""
		if winning, werr := s.repo.GetWinningBid(itemID); werr == nil {
			prevLeader = winning.BidderID
		} else if !errors.Is(werr, auctionerrors.ErrNoBids) {
			return LedgerState{}, nil, fmt.Errorf("service: failed to read winning bid: %w", werr)
		}

		trigger = model.Bid{
			BidID:     utils.GenerateID(),
			ItemID:    itemID,
			BidderID:  bidderID,
			Amount:    amount,
			CreatedAt: time.Now().UTC(),
		}

		err = s.repo.RecordBidForItem(trigger, item.HighestBid)
		if err == nil {
			break
		}
		if !errors.Is(err, auctionerrors.ErrStaleHighest) {
			return LedgerState{}, nil, fmt.Errorf("service: failed to record bid for item %s: %w", itemID, err)
		}
		if attempt+1 >= maxPlaceAttempts {
			return LedgerState{}, nil, fmt.Errorf("service: %w - item %s", auctionerrors.ErrConflict, itemID)
		}
	}

	pending, err := s.resolveAutoBids(itemID, trigger, prevLeader)
	if err != nil {
		return LedgerState{}, nil, err
	}

	state, err := s.ledgerState(itemID)
	if err != nil {
		return LedgerState{}, nil, err
	}
	state.AcceptedBid = trigger
	return state, pending, nil
}

// RegisterAutoBid installs a standing auto-bid for the caller on an item.
// Registration alone never places a bid; the ceiling only takes part in
// resolution passes triggered by later bids.
func (s *BiddingService) RegisterAutoBid(caller model.Identity, itemID string, maxAmount float64) (model.AutoBid, error) {
	if itemID == "" || caller.UserID == "" {
		return model.AutoBid{}, fmt.Errorf("service: %w - missing itemID or caller", auctionerrors.ErrInvalidAutoBid)
	}
	if maxAmount <= 0 {
		return model.AutoBid{}, fmt.Errorf("service: %w - non-positive ceiling", auctionerrors.ErrInvalidAutoBid)
	}

	lock := s.lotLock(itemID)
	lock.Lock()
	defer lock.Unlock()

	item, err := s.repo.GetItem(itemID)
	if err != nil {
		return model.AutoBid{}, fmt.Errorf("service: failed to load item %s: %w", itemID, err)
	}
	auction, err := s.repo.GetAuction(item.AuctionID)
	if err != nil {
		return model.AutoBid{}, fmt.Errorf("service: failed to load auction %s: %w", item.AuctionID, err)
	}
	if auction.Status != model.StatusActive {
		return model.AutoBid{}, fmt.Errorf("service: %w - auction %s is %s, not active",
			auctionerrors.ErrInvalidAutoBid, auction.AuctionID, auction.Status)
	}
	if caller.UserID == item.SellerID {
		return model.AutoBid{}, fmt.Errorf("service: %w - seller cannot auto-bid on own item", auctionerrors.ErrInvalidAutoBid)
	}

	existing, err := s.repo.GetAutoBid(itemID, caller.UserID)
	if err == nil && existing.IsActive {
		return model.AutoBid{}, fmt.Errorf("service: %w - active auto-bid already exists", auctionerrors.ErrInvalidAutoBid)
	}
	if err != nil && !errors.Is(err, auctionerrors.ErrAutoBidNotFound) {
		return model.AutoBid{}, fmt.Errorf("service: failed to check existing auto-bid: %w", err)
	}

	// The ceiling must cover every bid the caller has already placed here.
	if bids, berr := s.repo.GetBidsByItem(itemID); berr == nil {
		for _, b := range bids {
			if b.BidderID == caller.UserID && b.Amount > maxAmount {
				return model.AutoBid{}, fmt.Errorf("service: %w - ceiling %.2f below own bid %.2f",
					auctionerrors.ErrInvalidAutoBid, maxAmount, b.Amount)
			}
		}
	} else if !errors.Is(berr, auctionerrors.ErrNoBids) {
		return model.AutoBid{}, fmt.Errorf("service: failed to read bids: %w", berr)
	}

	ab := model.AutoBid{
		ItemID:    itemID,
		BidderID:  caller.UserID,
		MaxAmount: maxAmount,
		IsActive:  true,
		CreatedAt: time.Now().UTC(),
	}
	if err := s.repo.SaveAutoBid(ab); err != nil {
		return model.AutoBid{}, fmt.Errorf("service: failed to save auto-bid: %w", err)
	}

	s.notifier.AutoBidPlaced(caller.UserID, itemID, maxAmount)
	return ab, nil
}

// DisableAutoBid turns the caller's auto-bid off. Past proxy bids stand; the
// ceiling simply stops contesting future resolution passes.
func (s *BiddingService) DisableAutoBid(caller model.Identity, itemID string) error {
	if itemID == "" || caller.UserID == "" {
		return fmt.Errorf("service: %w - missing itemID or caller", auctionerrors.ErrInvalidAutoBid)
	}

	lock := s.lotLock(itemID)
	lock.Lock()
	defer lock.Unlock()

	ab, err := s.repo.GetAutoBid(itemID, caller.UserID)
	if err != nil {
		return fmt.Errorf("service: failed to load auto-bid: %w", err)
	}
	ab.IsActive = false
	if err := s.repo.SaveAutoBid(ab); err != nil {
		return fmt.Errorf("service: failed to disable auto-bid: %w", err)
	}
	return nil
}

// CurrentPrice returns the lot's highest bid amount, or its start price when
// no bids have been placed.
func (s *BiddingService) CurrentPrice(itemID string) (float64, error) {
	if itemID == "" {
		return 0, fmt.Errorf("service: %w - empty item ID", auctionerrors.ErrInvalidBid)
	}
	item, err := s.repo.GetItem(itemID)
	if err != nil {
		return 0, fmt.Errorf("service: failed to load item %s: %w", itemID, err)
	}
	if item.HighestBid > 0 {
		return item.HighestBid, nil
	}
	return item.StartPrice, nil
}

// HighestBidder returns the bidder currently holding the winning bid.
func (s *BiddingService) HighestBidder(itemID string) (string, error) {
	if itemID == "" {
		return "", fmt.Errorf("service: %w - empty item ID", auctionerrors.ErrInvalidBid)
	}
	winning, err := s.repo.GetWinningBid(itemID)
	if err != nil {
		return "", fmt.Errorf("service: failed to get winning bid for item %s: %w", itemID, err)
	}
	return winning.BidderID, nil
}

// GetWinningBid returns the highest bid for a specific item
func (s *BiddingService) GetWinningBid(itemID string) (model.Bid, error) {
	if itemID == "" {
		return model.Bid{}, fmt.Errorf("service: %w - empty item ID", auctionerrors.ErrInvalidBid)
	}
	winningBid, err := s.repo.GetWinningBid(itemID)
	if err != nil {
		return model.Bid{}, fmt.Errorf("service: failed to get winning bid for item %s: %w", itemID, err)
	}
	return winningBid, nil
}

// BidCount returns the number of bids recorded on a lot.
func (s *BiddingService) BidCount(itemID string) (int, error) {
	if itemID == "" {
		return 0, fmt.Errorf("service: %w - empty item ID", auctionerrors.ErrInvalidBid)
	}
	count, err := s.repo.CountBidsByItem(itemID)
	if err != nil {
		return 0, fmt.Errorf("service: failed to count bids for item %s: %w", itemID, err)
	}
	return count, nil
}

// GetBidsForItem returns all bids for a specific item
func (s *BiddingService) GetBidsForItem(itemID string) ([]model.Bid, error) {
	if itemID == "" {
		return nil, fmt.Errorf("service: %w - empty item ID", auctionerrors.ErrInvalidBid)
	}
	bids, err := s.repo.GetBidsByItem(itemID)
	if err != nil {
		return nil, fmt.Errorf("service: failed to get bids for item %s: %w", itemID, err)
	}
	return bids, nil
}

// GetItemsByUser returns all items a user has placed bids on
func (s *BiddingService) GetItemsByUser(userID string) ([]model.Item, error) {
	if userID == "" {
		return nil, fmt.Errorf("service: %w - empty user ID", auctionerrors.ErrInvalidBid)
	}
	items, err := s.repo.GetItemsByUser(userID)
	if err != nil {
		return nil, fmt.Errorf("service: failed to get items for user %s: %w", userID, err)
	}
	return items, nil
}

// ReserveStatus classifies the lot's current price against its reserve.
func (s *BiddingService) ReserveStatus(itemID string) (model.ReserveStatus, error) {
	if itemID == "" {
		return "", fmt.Errorf("service: %w - empty item ID", auctionerrors.ErrInvalidBid)
	}
	item, err := s.repo.GetItem(itemID)
	if err != nil {
		return "", fmt.Errorf("service: failed to load item %s: %w", itemID, err)
	}
	price := item.StartPrice
	if item.HighestBid > 0 {
		price = item.HighestBid
	}
	return ReserveOf(item, price), nil
}

// ComputeTotal returns the full charge breakdown for a bid amount under the
// marketplace's fee and VAT configuration.
func (s *BiddingService) ComputeTotal(amount float64) (money.Breakdown, error) {
	return money.ComputeTotal(amount, s.cfg)
}

// ledgerState assembles the post-resolution view of a lot.
func (s *BiddingService) ledgerState(itemID string) (LedgerState, error) {
	item, err := s.repo.GetItem(itemID)
	if err != nil {
		return LedgerState{}, fmt.Errorf("service: failed to load item %s: %w", itemID, err)
	}

	leader := ""
	if winning, werr := s.repo.GetWinningBid(itemID); werr == nil {
		leader = winning.BidderID
	} else if !errors.Is(werr, auctionerrors.ErrNoBids) {
		return LedgerState{}, fmt.Errorf("service: failed to read winning bid: %w", werr)
	}

	count, err := s.repo.CountBidsByItem(itemID)
	if err != nil {
		return LedgerState{}, fmt.Errorf("service: failed to count bids: %w", err)
	}

	price := item.StartPrice
	if item.HighestBid > 0 {
		price = item.HighestBid
	}

	return LedgerState{
		Item:          item,
		CurrentPrice:  price,
		HighestBidder: leader,
		BidCount:      count,
		Reserve:       ReserveOf(item, price),
	}, nil
}
