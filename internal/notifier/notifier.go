package notifier

import (
	"fmt"
	"time"

	"github.com/Insightz/carpauctions/internal/feed"
	model "github.com/Insightz/carpauctions/internal/models"
	"github.com/Insightz/carpauctions/utils"
)

// Store is the slice of persistence the emitter needs.
type Store interface {
	SaveNotification(n model.Notification) error
	GetNotificationsByUser(userID string) ([]model.Notification, error)
	MarkNotificationRead(notificationID string) error
}

// Emitter persists auto-bid notifications and announces them on the change
// feed. Delivery is best-effort: a failed save is logged and swallowed so a
// notification problem can never fail the bid that caused it.
type Emitter struct {
	store Store
	hub   *feed.Hub
}

// NewEmitter creates an Emitter writing through the given store and hub.
func NewEmitter(store Store, hub *feed.Hub) *Emitter {
	return &Emitter{store: store, hub: hub}
}

// AutoBidPlaced notifies a bidder that their auto-bid was registered.
func (e *Emitter) AutoBidPlaced(userID, itemID string, maxAmount float64) {
	e.emit(model.Notification{
		UserID:  userID,
		Type:    model.NotifyAutoBidPlaced,
		Title:   "Auto-bidding Enabled",
		Message: fmt.Sprintf("Auto-bidding has been set up with a maximum bid of €%.2f", maxAmount),
		ItemID:  itemID,
	})
}

// AutoBidOutbid notifies a bidder that a higher bid from someone else took
// their leading position.
func (e *Emitter) AutoBidOutbid(userID, itemID string, newAmount float64) {
	e.emit(model.Notification{
		UserID:  userID,
		Type:    model.NotifyAutoBidOutbid,
		Title:   "You Have Been Outbid",
		Message: fmt.Sprintf("A higher bid of €%.2f has been placed on an item you were winning", newAmount),
		ItemID:  itemID,
	})
}

// AutoBidLimitReached notifies a bidder that their auto-bid ceiling could not
// clear the current amount.
func (e *Emitter) AutoBidLimitReached(userID, itemID string, maxAmount float64) {
	e.emit(model.Notification{
		UserID:  userID,
		Type:    model.NotifyAutoBidLimitReached,
		Title:   "Auto-bid Limit Reached",
		Message: fmt.Sprintf("Bidding has passed your maximum auto-bid of €%.2f", maxAmount),
		ItemID:  itemID,
	})
}

// Inbox returns a user's notifications, oldest first.
func (e *Emitter) Inbox(userID string) ([]model.Notification, error) {
	if userID == "" {
		return nil, fmt.Errorf("notifier: empty user ID")
	}
	inbox, err := e.store.GetNotificationsByUser(userID)
	if err != nil {
		return nil, fmt.Errorf("notifier: failed to load inbox for user %s: %w", userID, err)
	}
	return inbox, nil
}

// MarkRead flips a notification's read flag.
func (e *Emitter) MarkRead(notificationID string) error {
	if err := e.store.MarkNotificationRead(notificationID); err != nil {
		return fmt.Errorf("notifier: failed to mark notification %s read: %w", notificationID, err)
	}
	return nil
}

func (e *Emitter) emit(n model.Notification) {
	n.NotificationID = utils.GenerateID()
	n.CreatedAt = time.Now().UTC()

	if err := e.store.SaveNotification(n); err != nil {
		utils.Error("notifier: failed to save notification", map[string]any{
			"user_id": n.UserID,
			"type":    string(n.Type),
			"error":   err.Error(),
		})
		return
	}

	e.hub.Broadcast(feed.Event{
		Kind:   feed.NotificationCreated,
		ItemID: n.ItemID,
		UserID: n.UserID,
		At:     n.CreatedAt,
	})
}
