package handler

import (
	"fmt"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	model "github.com/Insightz/carpauctions/internal/models"
	auctionhelpers "github.com/Insightz/carpauctions/services/auction/helpers"
	"github.com/Insightz/carpauctions/services/bidding/helpers"
	"github.com/Insightz/carpauctions/utils"
)

type AuctionServiceInterface interface {
	CreateAuction(caller model.Identity, a model.Auction) (model.Auction, error)
	UpdateAuction(caller model.Identity, a model.Auction) (model.Auction, error)
	Publish(caller model.Identity, auctionID string) (model.Auction, error)
	Start(caller model.Identity, auctionID string) (model.Auction, error)
	End(caller model.Identity, auctionID string) (model.Auction, error)
	AddItem(caller model.Identity, item model.Item) (model.Item, error)
	DeleteItem(caller model.Identity, itemID string) error
	GetAuction(auctionID string) (model.Auction, error)
	ListAuctions() ([]model.Auction, error)
	GetItemsByAuction(auctionID string) ([]model.Item, error)
}

type AuctionHandler struct {
	service AuctionServiceInterface
}

func NewAuctionHandler(service AuctionServiceInterface) *AuctionHandler {
	return &AuctionHandler{service: service}
}

// CreateAuctionHandler handles POST /auctions
func (h *AuctionHandler) CreateAuctionHandler(c *gin.Context) {
	var req auctionhelpers.CreateAuctionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		helpers.HandleBindError(c, "CreateAuctionHandler", err)
		return
	}

	a, ok := auctionFromRequest(c, req.Title, req.Description, req.StartDate, req.EndDate,
		req.ContactEmail, req.ContactPhone, req.Location, req.Terms)
	if !ok {
		return
	}

	caller := helpers.CallerIdentity(c)
	created, err := h.service.CreateAuction(caller, a)
	if err != nil {
		status, message := helpers.MapErrorToHTTP(err)
		utils.JSONError(c, status, fmt.Errorf("%s: %w", message, err), message)
		utils.Warn("CreateAuctionHandler: failed to create auction", map[string]any{
			"user_id": caller.UserID,
			"error":   err.Error(),
		})
		return
	}

	utils.JSONResponse(c, http.StatusCreated, created, "auction created successfully")
	helpers.LogSuccess("CreateAuctionHandler", "auction created successfully", map[string]any{
		"auction_id": created.AuctionID,
		"user_id":    caller.UserID,
	})
}

// UpdateAuctionHandler handles PUT /auctions/:auction_id
func (h *AuctionHandler) UpdateAuctionHandler(c *gin.Context) {
	var req auctionhelpers.UpdateAuctionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		helpers.HandleBindError(c, "UpdateAuctionHandler", err)
		return
	}

	a, ok := auctionFromRequest(c, req.Title, req.Description, req.StartDate, req.EndDate,
		req.ContactEmail, req.ContactPhone, req.Location, req.Terms)
	if !ok {
		return
	}
	a.AuctionID = c.Param("auction_id")

	caller := helpers.CallerIdentity(c)
	updated, err := h.service.UpdateAuction(caller, a)
	if err != nil {
		status, message := helpers.MapErrorToHTTP(err)
		utils.JSONError(c, status, fmt.Errorf("%s: %w", message, err), message)
		utils.Warn("UpdateAuctionHandler: failed to update auction", map[string]any{
			"auction_id": a.AuctionID,
			"user_id":    caller.UserID,
			"error":      err.Error(),
		})
		return
	}

	utils.JSONResponse(c, http.StatusOK, updated, "auction updated successfully")
}

// TransitionHandler handles POST /auctions/:auction_id/{publish,start,end}
func (h *AuctionHandler) TransitionHandler(transition string) gin.HandlerFunc {
	return func(c *gin.Context) {
		auctionID := c.Param("auction_id")
		caller := helpers.CallerIdentity(c)

		var (
			a   model.Auction
			err error
		)
		switch transition {
		case "publish":
			a, err = h.service.Publish(caller, auctionID)
		case "start":
			a, err = h.service.Start(caller, auctionID)
		case "end":
			a, err = h.service.End(caller, auctionID)
		default:
			utils.JSONError(c, http.StatusNotFound, fmt.Errorf("unknown transition %s", transition), "unknown transition")
			return
		}

		if err != nil {
			status, message := helpers.MapErrorToHTTP(err)
			utils.JSONError(c, status, fmt.Errorf("%s: %w", message, err), message)
			utils.Warn("TransitionHandler: failed to transition auction", map[string]any{
				"auction_id": auctionID,
				"transition": transition,
				"user_id":    caller.UserID,
				"error":      err.Error(),
			})
			return
		}

		utils.JSONResponse(c, http.StatusOK, a, "auction "+string(a.Status))
		helpers.LogSuccess("TransitionHandler", "auction transitioned successfully", map[string]any{
			"auction_id": auctionID,
			"status":     string(a.Status),
			"user_id":    caller.UserID,
		})
	}
}

// GetAuctionHandler handles GET /auctions/:auction_id
func (h *AuctionHandler) GetAuctionHandler(c *gin.Context) {
	auctionID := c.Param("auction_id")
	a, err := h.service.GetAuction(auctionID)
	if err != nil {
		status, message := helpers.MapErrorToHTTP(err)
		utils.JSONError(c, status, fmt.Errorf("%s: %w", message, err), message)
		return
	}
	utils.JSONResponse(c, http.StatusOK, a, "auction retrieved successfully")
}

// ListAuctionsHandler handles GET /auctions
func (h *AuctionHandler) ListAuctionsHandler(c *gin.Context) {
	auctions, err := h.service.ListAuctions()
	if err != nil {
		status, message := helpers.MapErrorToHTTP(err)
		utils.JSONError(c, status, fmt.Errorf("%s: %w", message, err), message)
		return
	}
	if auctions == nil {
		auctions = []model.Auction{}
	}
	utils.JSONResponse(c, http.StatusOK, auctions, "auctions retrieved successfully")
}

// GetAuctionItemsHandler handles GET /auctions/:auction_id/items
func (h *AuctionHandler) GetAuctionItemsHandler(c *gin.Context) {
	auctionID := c.Param("auction_id")
	items, err := h.service.GetItemsByAuction(auctionID)
	if err != nil {
		status, message := helpers.MapErrorToHTTP(err)
		utils.JSONError(c, status, fmt.Errorf("%s: %w", message, err), message)
		return
	}
	if items == nil {
		items = []model.Item{}
	}
	utils.JSONResponse(c, http.StatusOK, items, "items retrieved successfully")
}

// CreateItemHandler handles POST /items
func (h *AuctionHandler) CreateItemHandler(c *gin.Context) {
	var req auctionhelpers.CreateItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		helpers.HandleBindError(c, "CreateItemHandler", err)
		return
	}

	caller := helpers.CallerIdentity(c)
	item := model.Item{
		AuctionID:    req.AuctionID,
		Title:        req.Title,
		Description:  req.Description,
		StartPrice:   req.StartPrice,
		MinSellPrice: req.MinSellPrice,
		Images:       req.Images,
		Weight:       req.Weight,
		Length:       req.Length,
		Bloodline:    req.Bloodline,
		Species:      model.CarpSpecies(req.Species),
		Age:          req.Age,
		Gender:       req.Gender,
	}

	created, err := h.service.AddItem(caller, item)
	if err != nil {
		status, message := helpers.MapErrorToHTTP(err)
		utils.JSONError(c, status, fmt.Errorf("%s: %w", message, err), message)
		utils.Warn("CreateItemHandler: failed to create item", map[string]any{
			"auction_id": req.AuctionID,
			"user_id":    caller.UserID,
			"error":      err.Error(),
		})
		return
	}

	utils.JSONResponse(c, http.StatusCreated, created, "item created successfully")
	helpers.LogSuccess("CreateItemHandler", "item created successfully", map[string]any{
		"item_id":    created.ItemID,
		"auction_id": created.AuctionID,
		"user_id":    caller.UserID,
	})
}

// DeleteItemHandler handles DELETE /items/:item_id
func (h *AuctionHandler) DeleteItemHandler(c *gin.Context) {
	itemID := c.Param("item_id")
	caller := helpers.CallerIdentity(c)

	if err := h.service.DeleteItem(caller, itemID); err != nil {
		status, message := helpers.MapErrorToHTTP(err)
		utils.JSONError(c, status, fmt.Errorf("%s: %w", message, err), message)
		utils.Warn("DeleteItemHandler: failed to delete item", map[string]any{
			"item_id": itemID,
			"user_id": caller.UserID,
			"error":   err.Error(),
		})
		return
	}

	utils.JSONResponse(c, http.StatusOK, nil, "item deleted successfully")
}

// auctionFromRequest parses the shared auction payload fields, answering the
// request itself on a date-parse failure.
func auctionFromRequest(c *gin.Context, title, description, startDate, endDate, email, phone, location, terms string) (model.Auction, bool) {
	start, err := time.Parse(time.RFC3339, startDate)
	if err != nil {
		utils.JSONError(c, http.StatusBadRequest, fmt.Errorf("invalid start_date: %w", err), "invalid start_date")
		return model.Auction{}, false
	}
	end, err := time.Parse(time.RFC3339, endDate)
	if err != nil {
		utils.JSONError(c, http.StatusBadRequest, fmt.Errorf("invalid end_date: %w", err), "invalid end_date")
		return model.Auction{}, false
	}

	return model.Auction{
		Title:        title,
		Description:  description,
		StartDate:    start,
		EndDate:      end,
		ContactEmail: email,
		ContactPhone: phone,
		Location:     location,
		Terms:        terms,
	}, true
}
