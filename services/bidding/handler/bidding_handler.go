package handler

import (
	"errors"
	"fmt"
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/Insightz/carpauctions/internal/auctionerrors"
	bidding "github.com/Insightz/carpauctions/internal/biddingService"
	model "github.com/Insightz/carpauctions/internal/models"
	"github.com/Insightz/carpauctions/internal/money"
	"github.com/Insightz/carpauctions/services/bidding/helpers"
	"github.com/Insightz/carpauctions/utils"
)

type BiddingServiceInterface interface {
	PlaceBid(caller model.Identity, itemID string, amount float64) (bidding.LedgerState, error)
	RegisterAutoBid(caller model.Identity, itemID string, maxAmount float64) (model.AutoBid, error)
	DisableAutoBid(caller model.Identity, itemID string) error
	CurrentPrice(itemID string) (float64, error)
	HighestBidder(itemID string) (string, error)
	ReserveStatus(itemID string) (model.ReserveStatus, error)
	ComputeTotal(amount float64) (money.Breakdown, error)
	GetBidsForItem(itemID string) ([]model.Bid, error)
	GetWinningBid(itemID string) (model.Bid, error)
	GetItemsByUser(userID string) ([]model.Item, error)
}

type NotificationReader interface {
	Inbox(userID string) ([]model.Notification, error)
	MarkRead(notificationID string) error
}

type BiddingHandler struct {
	service       BiddingServiceInterface
	notifications NotificationReader
}

func NewBiddingHandler(service BiddingServiceInterface, notifications NotificationReader) *BiddingHandler {
	return &BiddingHandler{service: service, notifications: notifications}
}

// PlaceBidHandler handles POST /bids
func (h *BiddingHandler) PlaceBidHandler(c *gin.Context) {
	var req helpers.PlaceBidRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		helpers.HandleBindError(c, "PlaceBidHandler", err)
		return
	}

	caller := helpers.CallerIdentity(c)
	state, err := h.service.PlaceBid(caller, req.ItemID, req.Amount)
	if err != nil {
		status, message := helpers.MapErrorToHTTP(err)
		utils.JSONError(c, status, fmt.Errorf("%s: %w", message, err), message)
		utils.Error("PlaceBidHandler: failed to place bid", map[string]any{
			"handler": "PlaceBidHandler",
			"item_id": req.ItemID,
			"user_id": caller.UserID,
			"error":   err.Error(),
		})
		return
	}

	resp := helpers.LedgerStateResponse{
		AcceptedBid:   toBidResponse(state.AcceptedBid),
		CurrentPrice:  state.CurrentPrice,
		HighestBidder: state.HighestBidder,
		BidCount:      state.BidCount,
		Reserve:       string(state.Reserve),
	}

	utils.JSONResponse(c, http.StatusCreated, resp, "bid recorded successfully")
	helpers.LogSuccess("PlaceBidHandler", "bid recorded successfully", map[string]any{
		"bid_id":         state.AcceptedBid.BidID,
		"item_id":        req.ItemID,
		"user_id":        caller.UserID,
		"amount":         req.Amount,
		"current_price":  state.CurrentPrice,
		"highest_bidder": state.HighestBidder,
	})
}

// RegisterAutoBidHandler handles POST /autobids
func (h *BiddingHandler) RegisterAutoBidHandler(c *gin.Context) {
	var req helpers.RegisterAutoBidRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		helpers.HandleBindError(c, "RegisterAutoBidHandler", err)
		return
	}

	caller := helpers.CallerIdentity(c)
	ab, err := h.service.RegisterAutoBid(caller, req.ItemID, req.MaxAmount)
	if err != nil {
		status, message := helpers.MapErrorToHTTP(err)
		utils.JSONError(c, status, fmt.Errorf("%s: %w", message, err), message)
		utils.Warn("RegisterAutoBidHandler: failed to register auto-bid", map[string]any{
			"item_id": req.ItemID,
			"user_id": caller.UserID,
			"error":   err.Error(),
		})
		return
	}

	resp := helpers.AutoBidResponse{
		ItemID:    ab.ItemID,
		BidderID:  ab.BidderID,
		MaxAmount: ab.MaxAmount,
		IsActive:  ab.IsActive,
		CreatedAt: ab.CreatedAt.UTC().Format(time.RFC3339),
	}

	utils.JSONResponse(c, http.StatusCreated, resp, "auto-bid registered successfully")
	helpers.LogSuccess("RegisterAutoBidHandler", "auto-bid registered successfully", map[string]any{
		"item_id":    ab.ItemID,
		"user_id":    ab.BidderID,
		"max_amount": ab.MaxAmount,
	})
}

// DisableAutoBidHandler handles DELETE /items/:item_id/autobid
func (h *BiddingHandler) DisableAutoBidHandler(c *gin.Context) {
	itemID := c.Param("item_id")
	caller := helpers.CallerIdentity(c)

	if err := h.service.DisableAutoBid(caller, itemID); err != nil {
		status, message := helpers.MapErrorToHTTP(err)
		utils.JSONError(c, status, fmt.Errorf("%s: %w", message, err), message)
		utils.Warn("DisableAutoBidHandler: failed to disable auto-bid", map[string]any{
			"item_id": itemID,
			"user_id": caller.UserID,
			"error":   err.Error(),
		})
		return
	}

	utils.JSONResponse(c, http.StatusOK, nil, "auto-bid disabled successfully")
	helpers.LogSuccess("DisableAutoBidHandler", "auto-bid disabled successfully", map[string]any{
		"item_id": itemID,
		"user_id": caller.UserID,
	})
}

// GetBidsByItemHandler handles GET /items/:item_id/bids
func (h *BiddingHandler) GetBidsByItemHandler(c *gin.Context) {
	itemID := c.Param("item_id")
	bids, err := h.service.GetBidsForItem(itemID)
	if err != nil && !errors.Is(err, auctionerrors.ErrNoBids) {
		status, message := helpers.MapErrorToHTTP(err)
		utils.JSONError(c, status, fmt.Errorf("%s: %w", message, err), message)
		utils.Warn("GetBidsByItemHandler: error retrieving bids", map[string]any{"item_id": itemID, "error": err.Error()})
		return
	}

	if bids == nil {
		bids = []model.Bid{}
	}

	utils.JSONResponse(c, http.StatusOK, bids, "bids retrieved successfully")
	helpers.LogSuccess("GetBidsByItemHandler", "bids retrieved successfully", map[string]any{
		"item_id": itemID,
		"count":   len(bids),
	})
}

// GetWinningBidHandler handles GET /items/:item_id/winning
func (h *BiddingHandler) GetWinningBidHandler(c *gin.Context) {
	itemID := c.Param("item_id")
	bid, err := h.service.GetWinningBid(itemID)
	if err != nil {
		status, message := helpers.MapErrorToHTTP(err)
		// For auction, winning bid not found -> 404
		if errors.Is(err, auctionerrors.ErrNoBids) {
			utils.JSONError(c, http.StatusNotFound, err, "no winning bid found")
			utils.Info("GetWinningBidHandler: no winning bid found", map[string]any{"item_id": itemID})
			return
		}
		utils.JSONError(c, status, fmt.Errorf("%s: %w", message, err), message)
		utils.Warn("GetWinningBidHandler: winning bid error", map[string]any{"item_id": itemID, "error": err.Error()})
		return
	}

	utils.JSONResponse(c, http.StatusOK, toBidResponse(bid), "winning bid retrieved successfully")
	helpers.LogSuccess("GetWinningBidHandler", "winning bid retrieved successfully", map[string]any{
		"bid_id":  bid.BidID,
		"item_id": bid.ItemID,
		"user_id": bid.BidderID,
		"amount":  bid.Amount,
	})
}

// GetPriceHandler handles GET /items/:item_id/price
func (h *BiddingHandler) GetPriceHandler(c *gin.Context) {
	itemID := c.Param("item_id")

	price, err := h.service.CurrentPrice(itemID)
	if err != nil {
		status, message := helpers.MapErrorToHTTP(err)
		utils.JSONError(c, status, fmt.Errorf("%s: %w", message, err), message)
		utils.Warn("GetPriceHandler: error retrieving price", map[string]any{"item_id": itemID, "error": err.Error()})
		return
	}

	reserve, err := h.service.ReserveStatus(itemID)
	if err != nil {
		status, message := helpers.MapErrorToHTTP(err)
		utils.JSONError(c, status, fmt.Errorf("%s: %w", message, err), message)
		return
	}

	utils.JSONResponse(c, http.StatusOK, gin.H{
		"item_id":       itemID,
		"current_price": price,
		"reserve":       string(reserve),
	}, "price retrieved successfully")
}

// QuoteHandler handles GET /pricing/quote?amount=
func (h *BiddingHandler) QuoteHandler(c *gin.Context) {
	amount, err := strconv.ParseFloat(c.Query("amount"), 64)
	if err != nil {
		utils.JSONError(c, http.StatusBadRequest, fmt.Errorf("invalid amount: %w", err), "invalid amount")
		return
	}

	breakdown, err := h.service.ComputeTotal(amount)
	if err != nil {
		status, message := helpers.MapErrorToHTTP(err)
		utils.JSONError(c, status, fmt.Errorf("%s: %w", message, err), message)
		return
	}

	rounded := breakdown.Rounded()
	resp := helpers.QuoteResponse{
		BaseBid:    rounded.BaseBid.StringFixed(2),
		VATOnBid:   rounded.VATOnBid.StringFixed(2),
		AuctionFee: rounded.AuctionFee.StringFixed(2),
		VATOnFees:  rounded.VATOnFees.StringFixed(2),
		Total:      rounded.Total.StringFixed(2),
	}
	utils.JSONResponse(c, http.StatusOK, resp, "quote computed successfully")
}

// GetItemsByUserHandler handles GET /users/:user_id/items
func (h *BiddingHandler) GetItemsByUserHandler(c *gin.Context) {
	userID := c.Param("user_id")
	items, err := h.service.GetItemsByUser(userID)
	if err != nil && !errors.Is(err, auctionerrors.ErrUserNoBids) {
		status, message := helpers.MapErrorToHTTP(err)
		utils.JSONError(c, status, fmt.Errorf("%s: %w", message, err), message)
		utils.Warn("GetItemsByUserHandler: error retrieving items", map[string]any{"user_id": userID, "error": err.Error()})
		return
	}

	if items == nil {
		items = []model.Item{}
	}

	utils.JSONResponse(c, http.StatusOK, items, "items retrieved successfully")
	helpers.LogSuccess("GetItemsByUserHandler", "items retrieved successfully", map[string]any{
		"user_id":     userID,
		"items_count": len(items),
	})
}

// GetNotificationsHandler handles GET /notifications
func (h *BiddingHandler) GetNotificationsHandler(c *gin.Context) {
	caller := helpers.CallerIdentity(c)
	if caller.UserID == "" {
		utils.JSONError(c, http.StatusForbidden, auctionerrors.ErrForbidden, "missing caller identity")
		return
	}

	inbox, err := h.notifications.Inbox(caller.UserID)
	if err != nil {
		status, message := helpers.MapErrorToHTTP(err)
		utils.JSONError(c, status, fmt.Errorf("%s: %w", message, err), message)
		return
	}
	if inbox == nil {
		inbox = []model.Notification{}
	}

	utils.JSONResponse(c, http.StatusOK, inbox, "notifications retrieved successfully")
}

// MarkNotificationReadHandler handles POST /notifications/:notification_id/read
func (h *BiddingHandler) MarkNotificationReadHandler(c *gin.Context) {
	notificationID := c.Param("notification_id")
	if err := h.notifications.MarkRead(notificationID); err != nil {
		status, message := helpers.MapErrorToHTTP(err)
		utils.JSONError(c, status, fmt.Errorf("%s: %w", message, err), message)
		return
	}
	utils.JSONResponse(c, http.StatusOK, nil, "notification marked read")
}

func toBidResponse(bid model.Bid) helpers.BidResponse {
	return helpers.BidResponse{
		BidID:     bid.BidID,
		ItemID:    bid.ItemID,
		BidderID:  bid.BidderID,
		Amount:    bid.Amount,
		CreatedAt: bid.CreatedAt.UTC().Format(time.RFC3339),
	}
}
