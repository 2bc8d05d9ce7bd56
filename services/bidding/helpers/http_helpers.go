package helpers

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/Insightz/carpauctions/internal/auctionerrors"
	model "github.com/Insightz/carpauctions/internal/models"
	"github.com/Insightz/carpauctions/utils"
)

// HandleBindError sends a standardized JSON error for binding failures
func HandleBindError(c *gin.Context, handlerName string, err error) {
	wrappedErr := fmt.Errorf("invalid request payload: %w", err)
	utils.JSONError(c, http.StatusBadRequest, wrappedErr, "invalid request payload")
	utils.Warn(handlerName+": binding error", map[string]any{"error": err.Error()})
}

// MapErrorToHTTP maps domain/service errors to HTTP status code and message
func MapErrorToHTTP(err error) (int, string) {
	switch {
	case errors.Is(err, auctionerrors.ErrAuctionNotFound):
		return http.StatusNotFound, "auction not found"
	case errors.Is(err, auctionerrors.ErrItemNotFound):
		return http.StatusNotFound, "item not found"
	case errors.Is(err, auctionerrors.ErrAutoBidNotFound):
		return http.StatusNotFound, "auto-bid not found"
	case errors.Is(err, auctionerrors.ErrNotifNotFound):
		return http.StatusNotFound, "notification not found"
	case errors.Is(err, auctionerrors.ErrInvalidBid):
		return http.StatusBadRequest, "invalid bid details"
	case errors.Is(err, auctionerrors.ErrInvalidAutoBid):
		return http.StatusBadRequest, "invalid auto-bid details"
	case errors.Is(err, auctionerrors.ErrInvalidAuction):
		return http.StatusBadRequest, "invalid auction details"
	case errors.Is(err, auctionerrors.ErrBidTooLow):
		return http.StatusConflict, "bid amount too low"
	case errors.Is(err, auctionerrors.ErrIllegalTransition):
		return http.StatusConflict, "operation not allowed in current auction status"
	case errors.Is(err, auctionerrors.ErrConflict):
		return http.StatusConflict, "bid lost a concurrent update race"
	case errors.Is(err, auctionerrors.ErrForbidden):
		return http.StatusForbidden, "caller may not perform this operation"
	case errors.Is(err, auctionerrors.ErrNoBids):
		return http.StatusOK, "no bids found for item"
	case errors.Is(err, auctionerrors.ErrUserNoBids):
		return http.StatusOK, "no items found for user"
	default:
		return http.StatusInternalServerError, "internal server error"
	}
}

// LogSuccess is a small helper to standardize logging of successful operations
func LogSuccess(handlerName, message string, ctx map[string]any) {
	utils.Info(handlerName+": "+message, ctx)
}

// CallerIdentity extracts the identity the middleware attached to the request.
func CallerIdentity(c *gin.Context) model.Identity {
	v, ok := c.Get("identity")
	if !ok {
		return model.Identity{}
	}
	ident, _ := v.(model.Identity)
	return ident
}
