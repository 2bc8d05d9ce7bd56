package bidding

import (
	"errors"
	"fmt"
	"time"

	"github.com/Insightz/carpauctions/internal/auctionerrors"
	model "github.com/Insightz/carpauctions/internal/models"
	"github.com/Insightz/carpauctions/utils"
)

// noticeKind distinguishes the notification side effects collected during a
// resolution pass.
type noticeKind int

const (
	noticeOutbid noticeKind = iota
	noticeLimitReached
)

// notice is a pending notification, collected inside the lot critical section
// and delivered after it releases.
type notice struct {
	kind   noticeKind
	userID string
	amount float64
}

// resolveAutoBids runs the proxy-bid cascade after an accepted bid. Every
// other active auto-bid on the lot gets the opportunity to counter up to its
// ceiling, and the lot settles at the lowest amount that defeats all lower
// ceilings. Each counter is a normal immutable bid record appended to the
// same ledger.
//
// The loop terminates: every iteration either strictly raises the ledger's
// highest amount or permanently retires one auto-bid for the pass, and the
// set of active auto-bids is finite.
func (s *BiddingService) resolveAutoBids(itemID string, trigger model.Bid, prevLeader string) ([]notice, error) {
	cur := trigger
	// bidders whose leading position was taken during this pass, mapped to
	// the amount that superseded them
	superseded := make(map[string]float64)
	// auto-bids retired for the remainder of this pass (ceiling exhausted or
	// tie lost); is_active is untouched so they contest future passes
	spent := make(map[string]bool)
	limitNotices := make([]notice, 0)

	for {
		active, err := s.repo.GetActiveAutoBids(itemID)
		if err != nil {
			return nil, fmt.Errorf("service: failed to load auto-bids for item %s: %w", itemID, err)
		}

		challenger, ok := pickChallenger(active, cur.BidderID, spent)
		if !ok {
			break
		}

		if challenger.MaxAmount <= cur.Amount {
			// Highest remaining ceiling cannot respond; resolution ends.
			spent[challenger.BidderID] = true
			limitNotices = append(limitNotices, notice{noticeLimitReached, challenger.BidderID, challenger.MaxAmount})
			break
		}

		if curAB, held := holderAutoBid(active, cur.BidderID); held &&
			curAB.MaxAmount == challenger.MaxAmount && curAB.CreatedAt.Before(challenger.CreatedAt) {
			// Equal ceilings: the earlier registrant keeps the lead and the
			// challenger is done at its ceiling.
			spent[challenger.BidderID] = true
			limitNotices = append(limitNotices, notice{noticeLimitReached, challenger.BidderID, challenger.MaxAmount})
			continue
		}

		counterAmount := cur.Amount + s.cfg.MinIncrement
		if challenger.MaxAmount < counterAmount {
			counterAmount = challenger.MaxAmount
		}

		counter := model.Bid{
			BidID:     utils.GenerateID(),
			ItemID:    itemID,
			BidderID:  challenger.BidderID,
			Amount:    counterAmount,
			CreatedAt: time.Now().UTC(),
		}
		if err := s.repo.RecordBidForItem(counter, cur.Amount); err != nil {
			if errors.Is(err, auctionerrors.ErrStaleHighest) {
				return nil, fmt.Errorf("service: %w - auto-bid cascade on item %s", auctionerrors.ErrConflict, itemID)
			}
			return nil, fmt.Errorf("service: failed to record proxy bid for item %s: %w", itemID, err)
		}

		superseded[cur.BidderID] = counter.Amount
		cur = counter
	}

	// The trigger bid itself may have displaced a previous leader. That only
	// warrants a notification when the displaced bidder had an auto-bid in
	// the fight; purely manual displacement is visible on the lot itself.
	if prevLeader != "" && prevLeader != trigger.BidderID {
		if ab, err := s.repo.GetAutoBid(itemID, prevLeader); err == nil && ab.IsActive {
			if _, already := superseded[prevLeader]; !already {
				superseded[prevLeader] = trigger.Amount
			}
		}
	}

	pending := make([]notice, 0, len(superseded)+len(limitNotices))
	for bidderID, amount := range superseded {
		if bidderID == cur.BidderID {
			// Retook the lead later in the same pass.
			continue
		}
		pending = append(pending, notice{noticeOutbid, bidderID, amount})
	}
	pending = append(pending, limitNotices...)
	return pending, nil
}

// pickChallenger selects the eligible auto-bid with the greatest ceiling.
// The input is sorted by registration time, so on a tie the earlier
// registrant is chosen. The current leader's own auto-bid never contests its
// holder's bid.
func pickChallenger(active []model.AutoBid, currentBidder string, spent map[string]bool) (model.AutoBid, bool) {
	var best model.AutoBid
	found := false
	for _, ab := range active {
		if ab.BidderID == currentBidder || spent[ab.BidderID] {
			continue
		}
		if !found || ab.MaxAmount > best.MaxAmount {
			best = ab
			found = true
		}
	}
	return best, found
}

// holderAutoBid returns the active auto-bid held by the given bidder, if any.
func holderAutoBid(active []model.AutoBid, bidderID string) (model.AutoBid, bool) {
	for _, ab := range active {
		if ab.BidderID == bidderID {
			return ab, true
		}
	}
	return model.AutoBid{}, false
}

// deliver sends the pass's collected notifications. Runs outside the lot
// critical section; the notifier swallows its own failures.
func (s *BiddingService) deliver(itemID string, pending []notice) {
	for _, n := range pending {
		switch n.kind {
		case noticeOutbid:
			s.notifier.AutoBidOutbid(n.userID, itemID, n.amount)
		case noticeLimitReached:
			s.notifier.AutoBidLimitReached(n.userID, itemID, n.amount)
		}
	}
}
