package integrationtests

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"

	auction "github.com/Insightz/carpauctions/internal/auctionService"
	bidding "github.com/Insightz/carpauctions/internal/biddingService"
	"github.com/Insightz/carpauctions/internal/feed"
	"github.com/Insightz/carpauctions/internal/money"
	"github.com/Insightz/carpauctions/internal/notifier"
	"github.com/Insightz/carpauctions/internal/repository"
	"github.com/Insightz/carpauctions/internal/server"
	auctionhelpers "github.com/Insightz/carpauctions/services/auction/helpers"
)

// SetupTestRouter wires the full stack on an in-memory repository for
// integration testing.
func SetupTestRouter() *gin.Engine {
	gin.SetMode(gin.TestMode)

	repo := repository.NewMemoryRepo()
	hub := feed.NewHub()
	emitter := notifier.NewEmitter(repo, hub)
	biddingService := bidding.NewBiddingService(repo, emitter, hub, money.DefaultConfig())
	auctionService := auction.NewAuctionService(repo, hub)

	return server.SetupRouter(biddingService, auctionService, emitter, hub)
}

// ExecuteRequestAndParse runs an HTTP request as the given caller and parses
// the JSON response. On 201 the data payload is returned directly.
func ExecuteRequestAndParse(t *testing.T, router *gin.Engine, method, url string, body any, userID, role string) (map[string]any, *httptest.ResponseRecorder) {
	t.Helper()

	var reqBody []byte
	var err error

	switch v := body.(type) {
	case nil:
	case []byte:
		reqBody = v
	case string:
		reqBody = []byte(v)
	default:
		reqBody, err = json.Marshal(v)
		require.NoError(t, err, "failed to marshal body")
	}

	w := httptest.NewRecorder()
	req := httptest.NewRequest(method, url, bytes.NewReader(reqBody))
	req.Header.Set("Content-Type", "application/json")
	if userID != "" {
		req.Header.Set("X-User-ID", userID)
		req.Header.Set("X-User-Role", role)
	}
	router.ServeHTTP(w, req)

	var resp map[string]any
	if len(w.Body.Bytes()) > 0 {
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp), "failed to unmarshal response")

		if w.Code == http.StatusCreated {
			resp = resp["data"].(map[string]any)
		}
	}

	return resp, w
}

// SeedAuction drives the API as an organizer to create an auction in the
// given status, returning its ID.
func SeedAuction(t *testing.T, router *gin.Engine, status string) string {
	t.Helper()

	now := time.Now().UTC()
	req := auctionhelpers.CreateAuctionRequest{
		Title:     "Autumn Carp Sale",
		StartDate: now.Add(24 * time.Hour).Format(time.RFC3339),
		EndDate:   now.Add(48 * time.Hour).Format(time.RFC3339),
	}

	data, w := ExecuteRequestAndParse(t, router, http.MethodPost, "/auctions", req, "org1", "seller")
	require.Equal(t, http.StatusCreated, w.Code)
	auctionID := data["auction_id"].(string)

	for _, transition := range transitionsTo(status) {
		_, w := ExecuteRequestAndParse(t, router, http.MethodPost, "/auctions/"+auctionID+"/"+transition, nil, "org1", "seller")
		require.Equal(t, http.StatusOK, w.Code)
	}
	return auctionID
}

func transitionsTo(status string) []string {
	switch status {
	case "upcoming":
		return []string{"publish"}
	case "active":
		return []string{"publish", "start"}
	case "ended":
		return []string{"publish", "start", "end"}
	default:
		return nil
	}
}

// SeedItem lists a lot under the auction as seller1 and returns its ID.
func SeedItem(t *testing.T, router *gin.Engine, auctionID string, startPrice, minSellPrice float64) string {
	t.Helper()

	req := auctionhelpers.CreateItemRequest{
		AuctionID:    auctionID,
		Title:        "Mirror Carp 24lb",
		StartPrice:   startPrice,
		MinSellPrice: minSellPrice,
		Species:      "mirror",
		Weight:       10.9,
	}

	data, w := ExecuteRequestAndParse(t, router, http.MethodPost, "/items", req, "seller1", "seller")
	require.Equal(t, http.StatusCreated, w.Code)
	return data["item_id"].(string)
}
