package auction

import (
	"errors"
	"fmt"
	"time"

	"github.com/Insightz/carpauctions/internal/auctionerrors"
	"github.com/Insightz/carpauctions/internal/feed"
	model "github.com/Insightz/carpauctions/internal/models"
	"github.com/Insightz/carpauctions/internal/repository"
	"github.com/Insightz/carpauctions/utils"
)

// AuctionService governs the auction and lot lifecycle: which status
// transitions are legal, who may trigger them, and which mutations each
// status permits. Statuses only move forward; nothing leaves ended.
type AuctionService struct {
	repo repository.AuctionDB
	hub  *feed.Hub
}

// NewAuctionService creates a new AuctionService instance
func NewAuctionService(repo repository.AuctionDB, hub *feed.Hub) *AuctionService {
	return &AuctionService{repo: repo, hub: hub}
}

// editable reports whether auction fields may change and lots may be deleted
// in the given status.
func editable(status model.AuctionStatus) bool {
	return status == model.StatusDraft || status == model.StatusUpcoming
}

func canTransition(from, to model.AuctionStatus) bool {
	switch from {
	case model.StatusDraft:
		return to == model.StatusUpcoming
	case model.StatusUpcoming:
		return to == model.StatusActive
	case model.StatusActive:
		return to == model.StatusEnded
	default:
		return false
	}
}

func (s *AuctionService) authorize(caller model.Identity, a model.Auction) error {
	if caller.UserID == a.OrganizerID || caller.IsAdmin() {
		return nil
	}
	return fmt.Errorf("service: %w - only the organizer or an admin may manage auction %s",
		auctionerrors.ErrForbidden, a.AuctionID)
}

// CreateAuction registers a new auction in draft status with the caller as
// organizer.
func (s *AuctionService) CreateAuction(caller model.Identity, a model.Auction) (model.Auction, error) {
	if caller.UserID == "" {
		return model.Auction{}, fmt.Errorf("service: %w - missing caller", auctionerrors.ErrForbidden)
	}
	if a.Title == "" {
		return model.Auction{}, fmt.Errorf("service: %w - missing title", auctionerrors.ErrInvalidAuction)
	}
	if !a.StartDate.Before(a.EndDate) {
		return model.Auction{}, fmt.Errorf("service: %w - start date must precede end date", auctionerrors.ErrInvalidAuction)
	}

	a.AuctionID = utils.GenerateID()
	a.OrganizerID = caller.UserID
	a.Status = model.StatusDraft
	a.CreatedAt = time.Now().UTC()

	if err := s.repo.CreateAuction(a); err != nil {
		return model.Auction{}, fmt.Errorf("service: failed to create auction: %w", err)
	}
	return a, nil
}

// UpdateAuction mutates auction fields. Permitted only while the auction is
// in draft or upcoming, and only by its organizer or an admin. Status is not
// changed here; transitions go through Publish/Start/End.
func (s *AuctionService) UpdateAuction(caller model.Identity, updated model.Auction) (model.Auction, error) {
	current, err := s.repo.GetAuction(updated.AuctionID)
	if err != nil {
		return model.Auction{}, fmt.Errorf("service: failed to load auction %s: %w", updated.AuctionID, err)
	}
	if err := s.authorize(caller, current); err != nil {
		return model.Auction{}, err
	}
	if !editable(current.Status) {
		return model.Auction{}, fmt.Errorf("service: %w - auction %s is %s and no longer editable",
			auctionerrors.ErrIllegalTransition, current.AuctionID, current.Status)
	}
	if !updated.StartDate.Before(updated.EndDate) {
		return model.Auction{}, fmt.Errorf("service: %w - start date must precede end date", auctionerrors.ErrInvalidAuction)
	}

	updated.OrganizerID = current.OrganizerID
	updated.Status = current.Status
	updated.CreatedAt = current.CreatedAt

	if err := s.repo.UpdateAuction(updated); err != nil {
		return model.Auction{}, fmt.Errorf("service: failed to update auction %s: %w", updated.AuctionID, err)
	}
	return updated, nil
}

// Publish moves a draft auction to upcoming.
func (s *AuctionService) Publish(caller model.Identity, auctionID string) (model.Auction, error) {
	return s.transition(caller, auctionID, model.StatusUpcoming)
}

// Start moves an upcoming auction to active. Time-triggered starts are the
// job of an external scheduler, which calls this with an admin identity.
func (s *AuctionService) Start(caller model.Identity, auctionID string) (model.Auction, error) {
	return s.transition(caller, auctionID, model.StatusActive)
}

// End moves an active auction to ended. There is no way back out.
func (s *AuctionService) End(caller model.Identity, auctionID string) (model.Auction, error) {
	return s.transition(caller, auctionID, model.StatusEnded)
}

func (s *AuctionService) transition(caller model.Identity, auctionID string, to model.AuctionStatus) (model.Auction, error) {
	a, err := s.repo.GetAuction(auctionID)
	if err != nil {
		return model.Auction{}, fmt.Errorf("service: failed to load auction %s: %w", auctionID, err)
	}
	if err := s.authorize(caller, a); err != nil {
		return model.Auction{}, err
	}
	if !canTransition(a.Status, to) {
		return model.Auction{}, fmt.Errorf("service: %w - cannot move auction %s from %s to %s",
			auctionerrors.ErrIllegalTransition, auctionID, a.Status, to)
	}

	a.Status = to
	if err := s.repo.UpdateAuction(a); err != nil {
		return model.Auction{}, fmt.Errorf("service: failed to update auction %s: %w", auctionID, err)
	}

	s.hub.Broadcast(feed.Event{
		Kind:      feed.AuctionStatusChanged,
		AuctionID: auctionID,
		At:        time.Now().UTC(),
	})
	return a, nil
}

// AddItem lists a new lot under an auction. Sellers may list while the
// auction has not ended; the reserve, when set, must be at least the start
// price.
func (s *AuctionService) AddItem(caller model.Identity, item model.Item) (model.Item, error) {
	if caller.UserID == "" {
		return model.Item{}, fmt.Errorf("service: %w - missing caller", auctionerrors.ErrForbidden)
	}

	a, err := s.repo.GetAuction(item.AuctionID)
	if err != nil {
		return model.Item{}, fmt.Errorf("service: failed to load auction %s: %w", item.AuctionID, err)
	}
	if a.Status == model.StatusEnded {
		return model.Item{}, fmt.Errorf("service: %w - auction %s has ended", auctionerrors.ErrIllegalTransition, a.AuctionID)
	}
	if item.StartPrice <= 0 {
		return model.Item{}, fmt.Errorf("service: %w - non-positive start price", auctionerrors.ErrInvalidAuction)
	}
	if item.MinSellPrice != 0 && item.MinSellPrice < item.StartPrice {
		return model.Item{}, fmt.Errorf("service: %w - reserve below start price", auctionerrors.ErrInvalidAuction)
	}

	item.ItemID = utils.GenerateID()
	item.SellerID = caller.UserID
	item.HighestBid = 0
	item.LastBidAt = nil
	item.CreatedAt = time.Now().UTC()

	if err := s.repo.CreateItem(item); err != nil {
		return model.Item{}, fmt.Errorf("service: failed to create item: %w", err)
	}
	return item, nil
}

// DeleteItem removes a lot. Only the lot's seller, the organizer, or an
// admin may delete, only while the auction is in draft or upcoming, and only
// when the lot has no bids.
func (s *AuctionService) DeleteItem(caller model.Identity, itemID string) error {
	item, err := s.repo.GetItem(itemID)
	if err != nil {
		return fmt.Errorf("service: failed to load item %s: %w", itemID, err)
	}
	a, err := s.repo.GetAuction(item.AuctionID)
	if err != nil {
		return fmt.Errorf("service: failed to load auction %s: %w", item.AuctionID, err)
	}
	if caller.UserID != item.SellerID && caller.UserID != a.OrganizerID && !caller.IsAdmin() {
		return fmt.Errorf("service: %w - only the seller, organizer or an admin may delete item %s",
			auctionerrors.ErrForbidden, itemID)
	}
	if !editable(a.Status) {
		return fmt.Errorf("service: %w - auction %s is %s, items can no longer be deleted",
			auctionerrors.ErrIllegalTransition, a.AuctionID, a.Status)
	}

	count, err := s.repo.CountBidsByItem(itemID)
	if err != nil && !errors.Is(err, auctionerrors.ErrNoBids) {
		return fmt.Errorf("service: failed to count bids for item %s: %w", itemID, err)
	}
	if count > 0 {
		return fmt.Errorf("service: %w - item %s already has %d bid(s)", auctionerrors.ErrIllegalTransition, itemID, count)
	}

	if err := s.repo.DeleteItem(itemID); err != nil {
		return fmt.Errorf("service: failed to delete item %s: %w", itemID, err)
	}
	return nil
}

// GetAuction returns an auction by ID.
func (s *AuctionService) GetAuction(auctionID string) (model.Auction, error) {
	a, err := s.repo.GetAuction(auctionID)
	if err != nil {
		return model.Auction{}, fmt.Errorf("service: failed to load auction %s: %w", auctionID, err)
	}
	return a, nil
}

// ListAuctions returns all auctions.
func (s *AuctionService) ListAuctions() ([]model.Auction, error) {
	auctions, err := s.repo.ListAuctions()
	if err != nil {
		return nil, fmt.Errorf("service: failed to list auctions: %w", err)
	}
	return auctions, nil
}

// GetItemsByAuction returns an auction's lots.
func (s *AuctionService) GetItemsByAuction(auctionID string) ([]model.Item, error) {
	items, err := s.repo.GetItemsByAuction(auctionID)
	if err != nil {
		return nil, fmt.Errorf("service: failed to list items for auction %s: %w", auctionID, err)
	}
	return items, nil
}
