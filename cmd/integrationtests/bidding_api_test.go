package integrationtests

import (
	"net/http"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/Insightz/carpauctions/services/bidding/helpers"
)

func TestPlaceBidFlow(t *testing.T) {
	router := SetupTestRouter()
	auctionID := SeedAuction(t, router, "active")
	itemID := SeedItem(t, router, auctionID, 100, 0)

	// The opening bid must clear the start price by one increment.
	data, w := ExecuteRequestAndParse(t, router, http.MethodPost, "/bids",
		helpers.PlaceBidRequest{ItemID: itemID, Amount: 105}, "buyerA", "buyer")
	require.Equal(t, http.StatusCreated, w.Code)

	accepted := data["accepted_bid"].(map[string]any)
	require.Equal(t, itemID, accepted["item_id"])
	require.Equal(t, "buyerA", accepted["bidder_id"])
	require.Equal(t, 105.0, accepted["amount"])
	require.Equal(t, 105.0, data["current_price"])
	require.Equal(t, "buyerA", data["highest_bidder"])
	require.Equal(t, 1.0, data["bid_count"])

	// A bid below the minimum increment over the standing price is rejected.
	_, w = ExecuteRequestAndParse(t, router, http.MethodPost, "/bids",
		helpers.PlaceBidRequest{ItemID: itemID, Amount: 109}, "buyerB", "buyer")
	require.Equal(t, http.StatusConflict, w.Code)

	// A bid meeting the increment takes the lead.
	data, w = ExecuteRequestAndParse(t, router, http.MethodPost, "/bids",
		helpers.PlaceBidRequest{ItemID: itemID, Amount: 110}, "buyerB", "buyer")
	require.Equal(t, http.StatusCreated, w.Code)
	require.Equal(t, "buyerB", data["highest_bidder"])
	require.Equal(t, 110.0, data["current_price"])

	// The ledger lists both bids newest-last.
	resp, w := ExecuteRequestAndParse(t, router, http.MethodGet, "/items/"+itemID+"/bids", nil, "buyerA", "buyer")
	require.Equal(t, http.StatusOK, w.Code)
	bids := resp["data"].([]any)
	require.Len(t, bids, 2)

	// The winning bid is buyerB's.
	resp, w = ExecuteRequestAndParse(t, router, http.MethodGet, "/items/"+itemID+"/winning", nil, "buyerA", "buyer")
	require.Equal(t, http.StatusOK, w.Code)
	winning := resp["data"].(map[string]any)
	require.Equal(t, "buyerB", winning["bidder_id"])
	require.Equal(t, 110.0, winning["amount"])
}

func TestPlaceBidRejectedOutsideActiveWindow(t *testing.T) {
	router := SetupTestRouter()

	auctionID := SeedAuction(t, router, "upcoming")
	itemID := SeedItem(t, router, auctionID, 100, 0)

	_, w := ExecuteRequestAndParse(t, router, http.MethodPost, "/bids",
		helpers.PlaceBidRequest{ItemID: itemID, Amount: 105}, "buyerA", "buyer")
	require.Equal(t, http.StatusBadRequest, w.Code)
}

func TestSellerCannotBidOnOwnItem(t *testing.T) {
	router := SetupTestRouter()
	auctionID := SeedAuction(t, router, "active")
	itemID := SeedItem(t, router, auctionID, 100, 0)

	_, w := ExecuteRequestAndParse(t, router, http.MethodPost, "/bids",
		helpers.PlaceBidRequest{ItemID: itemID, Amount: 105}, "seller1", "seller")
	require.Equal(t, http.StatusBadRequest, w.Code)
}

func TestAuctionLifecycleTransitions(t *testing.T) {
	router := SetupTestRouter()
	auctionID := SeedAuction(t, router, "draft")

	// Ending a draft auction skips states and is rejected.
	_, w := ExecuteRequestAndParse(t, router, http.MethodPost, "/auctions/"+auctionID+"/end", nil, "org1", "seller")
	require.Equal(t, http.StatusConflict, w.Code)

	// Only the organizer or an admin may transition.
	_, w = ExecuteRequestAndParse(t, router, http.MethodPost, "/auctions/"+auctionID+"/publish", nil, "stranger", "buyer")
	require.Equal(t, http.StatusForbidden, w.Code)

	// The full forward path succeeds.
	for _, transition := range []string{"publish", "start", "end"} {
		_, w = ExecuteRequestAndParse(t, router, http.MethodPost, "/auctions/"+auctionID+"/"+transition, nil, "org1", "seller")
		require.Equal(t, http.StatusOK, w.Code)
	}

	// Ended is terminal.
	_, w = ExecuteRequestAndParse(t, router, http.MethodPost, "/auctions/"+auctionID+"/start", nil, "org1", "seller")
	require.Equal(t, http.StatusConflict, w.Code)
}

func TestAutoBidCascadeOverAPI(t *testing.T) {
	router := SetupTestRouter()
	auctionID := SeedAuction(t, router, "active")
	itemID := SeedItem(t, router, auctionID, 100, 0)

	// Registration alone never places a bid.
	data, w := ExecuteRequestAndParse(t, router, http.MethodPost, "/autobids",
		helpers.RegisterAutoBidRequest{ItemID: itemID, MaxAmount: 150}, "proxyB", "buyer")
	require.Equal(t, http.StatusCreated, w.Code)
	require.Equal(t, "proxyB", data["bidder_id"])
	require.Equal(t, 150.0, data["max_amount"])

	resp, w := ExecuteRequestAndParse(t, router, http.MethodGet, "/items/"+itemID+"/price", nil, "buyerA", "buyer")
	require.Equal(t, http.StatusOK, w.Code)
	require.Equal(t, 100.0, resp["data"].(map[string]any)["current_price"])

	// A manual bid triggers the proxy counter one increment above it.
	data, w = ExecuteRequestAndParse(t, router, http.MethodPost, "/bids",
		helpers.PlaceBidRequest{ItemID: itemID, Amount: 110}, "buyerA", "buyer")
	require.Equal(t, http.StatusCreated, w.Code)
	require.Equal(t, "proxyB", data["highest_bidder"])
	require.Equal(t, 115.0, data["current_price"])
	require.Equal(t, 2.0, data["bid_count"])

	// The displaced bidder finds an outbid notice in their inbox.
	resp, w = ExecuteRequestAndParse(t, router, http.MethodGet, "/notifications", nil, "buyerA", "buyer")
	require.Equal(t, http.StatusOK, w.Code)
	notices := resp["data"].([]any)
	require.NotEmpty(t, notices)
	notice := notices[0].(map[string]any)
	require.Equal(t, "auto_bid_outbid", notice["type"])
	require.Equal(t, itemID, notice["item_id"])
	require.Equal(t, false, notice["is_read"])

	// Marking it read sticks.
	noticeID := notice["notification_id"].(string)
	_, w = ExecuteRequestAndParse(t, router, http.MethodPost, "/notifications/"+noticeID+"/read", nil, "buyerA", "buyer")
	require.Equal(t, http.StatusOK, w.Code)

	resp, _ = ExecuteRequestAndParse(t, router, http.MethodGet, "/notifications", nil, "buyerA", "buyer")
	require.Equal(t, true, resp["data"].([]any)[0].(map[string]any)["is_read"])

	// Disabling the auto-bid stops future counters.
	_, w = ExecuteRequestAndParse(t, router, http.MethodDelete, "/items/"+itemID+"/autobid", nil, "proxyB", "buyer")
	require.Equal(t, http.StatusOK, w.Code)

	data, w = ExecuteRequestAndParse(t, router, http.MethodPost, "/bids",
		helpers.PlaceBidRequest{ItemID: itemID, Amount: 120}, "buyerA", "buyer")
	require.Equal(t, http.StatusCreated, w.Code)
	require.Equal(t, "buyerA", data["highest_bidder"])
	require.Equal(t, 120.0, data["current_price"])
}

func TestReserveStatusOverAPI(t *testing.T) {
	router := SetupTestRouter()
	auctionID := SeedAuction(t, router, "active")
	itemID := SeedItem(t, router, auctionID, 100, 200)

	resp, w := ExecuteRequestAndParse(t, router, http.MethodGet, "/items/"+itemID+"/price", nil, "buyerA", "buyer")
	require.Equal(t, http.StatusOK, w.Code)
	require.Equal(t, "reserve_not_met", resp["data"].(map[string]any)["reserve"])

	data, w := ExecuteRequestAndParse(t, router, http.MethodPost, "/bids",
		helpers.PlaceBidRequest{ItemID: itemID, Amount: 200}, "buyerA", "buyer")
	require.Equal(t, http.StatusCreated, w.Code)
	require.Equal(t, "reserve_met", data["reserve"])
}

func TestPricingQuoteOverAPI(t *testing.T) {
	router := SetupTestRouter()

	resp, w := ExecuteRequestAndParse(t, router, http.MethodGet, "/pricing/quote?amount=100", nil, "buyerA", "buyer")
	require.Equal(t, http.StatusOK, w.Code)

	quote := resp["data"].(map[string]any)
	require.Equal(t, "100.00", quote["base_bid"])
	require.Equal(t, "21.00", quote["vat_on_bid"])
	require.Equal(t, "10.00", quote["auction_fee"])
	require.Equal(t, "2.10", quote["vat_on_fees"])
	require.Equal(t, "133.10", quote["total"])

	_, w = ExecuteRequestAndParse(t, router, http.MethodGet, "/pricing/quote?amount=-5", nil, "buyerA", "buyer")
	require.Equal(t, http.StatusBadRequest, w.Code)
}

func TestItemsByUserOverAPI(t *testing.T) {
	router := SetupTestRouter()
	auctionID := SeedAuction(t, router, "active")
	itemA := SeedItem(t, router, auctionID, 100, 0)
	itemB := SeedItem(t, router, auctionID, 100, 0)

	for _, itemID := range []string{itemA, itemB} {
		_, w := ExecuteRequestAndParse(t, router, http.MethodPost, "/bids",
			helpers.PlaceBidRequest{ItemID: itemID, Amount: 105}, "buyerA", "buyer")
		require.Equal(t, http.StatusCreated, w.Code)
	}

	resp, w := ExecuteRequestAndParse(t, router, http.MethodGet, "/users/buyerA/items", nil, "buyerA", "buyer")
	require.Equal(t, http.StatusOK, w.Code)
	require.Len(t, resp["data"].([]any), 2)

	// A user with no bids gets an empty but successful response.
	resp, w = ExecuteRequestAndParse(t, router, http.MethodGet, "/users/ghost/items", nil, "buyerA", "buyer")
	require.Equal(t, http.StatusOK, w.Code)
}

func TestDeleteItemRules(t *testing.T) {
	router := SetupTestRouter()
	auctionID := SeedAuction(t, router, "draft")
	itemID := SeedItem(t, router, auctionID, 100, 0)

	// A stranger cannot delete the lot.
	_, w := ExecuteRequestAndParse(t, router, http.MethodDelete, "/items/"+itemID, nil, "stranger", "buyer")
	require.Equal(t, http.StatusForbidden, w.Code)

	// The seller can while the auction is still editable.
	_, w = ExecuteRequestAndParse(t, router, http.MethodDelete, "/items/"+itemID, nil, "seller1", "seller")
	require.Equal(t, http.StatusOK, w.Code)

	_, w = ExecuteRequestAndParse(t, router, http.MethodGet, "/items/"+itemID+"/price", nil, "buyerA", "buyer")
	require.Equal(t, http.StatusNotFound, w.Code)
}
