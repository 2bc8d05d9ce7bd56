package bidding

import (
	"errors"
	"testing"
	"time"

	"github.com/golang/mock/gomock"
	"github.com/google/uuid"
	"github.com/stretchr/testify/require"

	"github.com/Insightz/carpauctions/internal/auctionerrors"
	"github.com/Insightz/carpauctions/internal/feed"
	model "github.com/Insightz/carpauctions/internal/models"
	"github.com/Insightz/carpauctions/internal/money"
	"github.com/Insightz/carpauctions/internal/repository"
)

func activeItem() model.Item {
	return model.Item{
		ItemID:     "item1",
		AuctionID:  "auction1",
		SellerID:   "seller1",
		Title:      "Mirror Carp 24lb",
		StartPrice: 100,
	}
}

func activeAuction() model.Auction {
	return model.Auction{AuctionID: "auction1", OrganizerID: "org1", Status: model.StatusActive}
}

// Tests PlaceBid validation and error paths against a mocked store
func TestBiddingService_PlaceBid(t *testing.T) {
	now := time.Now().UTC()

	tests := []struct {
		name          string
		itemID        string
		userID        string
		amount        float64
		mockSetup     func(mockRepo *repository.MockAuctionDB)
		expectError   bool
		expectedError error
	}{
		{
			name:   "valid_first_bid",
			itemID: "item1",
			userID: "user1",
			amount: 105,
			mockSetup: func(mockRepo *repository.MockAuctionDB) {
				mockRepo.EXPECT().GetItem("item1").Return(activeItem(), nil).AnyTimes()
				mockRepo.EXPECT().GetAuction("auction1").Return(activeAuction(), nil)
				mockRepo.EXPECT().GetWinningBid("item1").Return(model.Bid{}, auctionerrors.ErrNoBids).AnyTimes()
				mockRepo.EXPECT().RecordBidForItem(gomock.Any(), float64(0)).Return(nil)
				mockRepo.EXPECT().GetActiveAutoBids("item1").Return(nil, nil)
				mockRepo.EXPECT().CountBidsByItem("item1").Return(1, nil)
			},
			expectError: false,
		},
		{
			name:          "empty_itemID",
			itemID:        "",
			userID:        "user1",
			amount:        50,
			mockSetup:     func(mockRepo *repository.MockAuctionDB) {},
			expectError:   true,
			expectedError: auctionerrors.ErrInvalidBid,
		},
		{
			name:          "empty_userID",
			itemID:        "item1",
			userID:        "",
			amount:        50,
			mockSetup:     func(mockRepo *repository.MockAuctionDB) {},
			expectError:   true,
			expectedError: auctionerrors.ErrInvalidBid,
		},
		{
			name:          "zero_amount",
			itemID:        "item1",
			userID:        "user1",
			amount:        0,
			mockSetup:     func(mockRepo *repository.MockAuctionDB) {},
			expectError:   true,
			expectedError: auctionerrors.ErrInvalidBid,
		},
		{
			name:          "negative_amount",
			itemID:        "item1",
			userID:        "user1",
			amount:        -50,
			mockSetup:     func(mockRepo *repository.MockAuctionDB) {},
			expectError:   true,
			expectedError: auctionerrors.ErrInvalidBid,
		},
		{
			name:   "item_not_found",
			itemID: "missing",
			userID: "user1",
			amount: 105,
			mockSetup: func(mockRepo *repository.MockAuctionDB) {
				mockRepo.EXPECT().GetItem("missing").Return(model.Item{}, auctionerrors.ErrItemNotFound)
			},
			expectError:   true,
			expectedError: auctionerrors.ErrItemNotFound,
		},
		{
			name:   "auction_not_active",
			itemID: "item1",
			userID: "user1",
			amount: 105,
			mockSetup: func(mockRepo *repository.MockAuctionDB) {
				mockRepo.EXPECT().GetItem("item1").Return(activeItem(), nil)
				upcoming := activeAuction()
				upcoming.Status = model.StatusUpcoming
				mockRepo.EXPECT().GetAuction("auction1").Return(upcoming, nil)
			},
			expectError:   true,
			expectedError: auctionerrors.ErrInvalidBid,
		},
		{
			name:   "seller_bids_on_own_item",
			itemID: "item1",
			userID: "seller1",
			amount: 105,
			mockSetup: func(mockRepo *repository.MockAuctionDB) {
				mockRepo.EXPECT().GetItem("item1").Return(activeItem(), nil)
				mockRepo.EXPECT().GetAuction("auction1").Return(activeAuction(), nil)
			},
			expectError:   true,
			expectedError: auctionerrors.ErrInvalidBid,
		},
		{
			name:   "bid_below_increment",
			itemID: "item1",
			userID: "user2",
			amount: 104,
			mockSetup: func(mockRepo *repository.MockAuctionDB) {
				item := activeItem()
				item.HighestBid = 0
				mockRepo.EXPECT().GetItem("item1").Return(item, nil)
				mockRepo.EXPECT().GetAuction("auction1").Return(activeAuction(), nil)
			},
			expectError:   true,
			expectedError: auctionerrors.ErrBidTooLow,
		},
		{
			name:   "conflict_after_bounded_retries",
			itemID: "item1",
			userID: "user3",
			amount: 120,
			mockSetup: func(mockRepo *repository.MockAuctionDB) {
				mockRepo.EXPECT().GetItem("item1").Return(activeItem(), nil).Times(maxPlaceAttempts)
				mockRepo.EXPECT().GetAuction("auction1").Return(activeAuction(), nil).Times(maxPlaceAttempts)
				mockRepo.EXPECT().GetWinningBid("item1").Return(model.Bid{}, auctionerrors.ErrNoBids).Times(maxPlaceAttempts)
				mockRepo.EXPECT().RecordBidForItem(gomock.Any(), float64(0)).
					Return(auctionerrors.ErrStaleHighest).Times(maxPlaceAttempts)
			},
			expectError:   true,
			expectedError: auctionerrors.ErrConflict,
		},
		{
			name:   "repo_write_fails",
			itemID: "item1",
			userID: "user3",
			amount: 120,
			mockSetup: func(mockRepo *repository.MockAuctionDB) {
				mockRepo.EXPECT().GetItem("item1").Return(activeItem(), nil)
				mockRepo.EXPECT().GetAuction("auction1").Return(activeAuction(), nil)
				mockRepo.EXPECT().GetWinningBid("item1").Return(model.Bid{}, auctionerrors.ErrNoBids)
				mockRepo.EXPECT().RecordBidForItem(gomock.Any(), float64(0)).Return(errors.New("repo write failed"))
			},
			expectError:   true,
			expectedError: nil, // Service wraps repo error, we don't match specific error here
		},
	}

	for _, tc := range tests {
		tc := tc

		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			mockRepo := repository.NewMockAuctionDB(ctrl)
			tc.mockSetup(mockRepo)

			service := NewBiddingService(mockRepo, &recordingNotifier{}, feed.NewHub(), money.DefaultConfig())
			state, err := service.PlaceBid(model.Identity{UserID: tc.userID, Role: model.RoleBuyer}, tc.itemID, tc.amount)

			if tc.expectError {
				require.Error(t, err)
				if tc.expectedError != nil {
					require.True(t, errors.Is(err, tc.expectedError), "expected error: %v, got: %v", tc.expectedError, err)
				}
				return
			}
			require.NoError(t, err)

			// Validate generated BidID
			require.NotEmpty(t, state.AcceptedBid.BidID)
			_, parseErr := uuid.Parse(state.AcceptedBid.BidID)
			require.NoError(t, parseErr, "BidID should be a valid UUID")

			// Validate accepted bid fields
			require.Equal(t, tc.itemID, state.AcceptedBid.ItemID)
			require.Equal(t, tc.userID, state.AcceptedBid.BidderID)
			require.Equal(t, tc.amount, state.AcceptedBid.Amount)
			require.WithinDuration(t, now, state.AcceptedBid.CreatedAt, 2*time.Second)
		})
	}
}

// Tests GetBidsForItem
func TestBiddingService_GetBidsForItem(t *testing.T) {
	now := time.Now().UTC()

	bidsExample := []model.Bid{
		{BidID: "bid1", ItemID: "item1", BidderID: "user1", Amount: 105, CreatedAt: now},
		{BidID: "bid2", ItemID: "item1", BidderID: "user2", Amount: 110, CreatedAt: now.Add(1 * time.Second)},
	}

	tests := []struct {
		name          string
		itemID        string
		mockSetup     func(mockRepo *repository.MockAuctionDB)
		expectError   bool
		expectedError error
		expectedBids  []model.Bid
	}{
		{
			name:   "valid_item_with_bids",
			itemID: "item1",
			mockSetup: func(mockRepo *repository.MockAuctionDB) {
				mockRepo.EXPECT().GetBidsByItem("item1").Return(bidsExample, nil)
			},
			expectError:  false,
			expectedBids: bidsExample,
		},
		{
			name:          "empty_itemID",
			itemID:        "",
			mockSetup:     func(mockRepo *repository.MockAuctionDB) {},
			expectError:   true,
			expectedError: auctionerrors.ErrInvalidBid,
		},
		{
			name:   "repo_error",
			itemID: "item3",
			mockSetup: func(mockRepo *repository.MockAuctionDB) {
				mockRepo.EXPECT().GetBidsByItem("item3").Return(nil, errors.New("db failure"))
			},
			expectError:   true,
			expectedError: nil, // Service wraps repo error
		},
	}

	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			mockRepo := repository.NewMockAuctionDB(ctrl)
			tc.mockSetup(mockRepo)

			service := NewBiddingService(mockRepo, &recordingNotifier{}, feed.NewHub(), money.DefaultConfig())
			bids, err := service.GetBidsForItem(tc.itemID)

			if tc.expectError {
				require.Error(t, err)
				if tc.expectedError != nil {
					require.True(t, errors.Is(err, tc.expectedError), "expected error: %v, got: %v", tc.expectedError, err)
				}
			} else {
				require.NoError(t, err)
				require.Equal(t, tc.expectedBids, bids)
			}
		})
	}
}

// Tests CurrentPrice
func TestBiddingService_CurrentPrice(t *testing.T) {
	tests := []struct {
		name          string
		itemID        string
		mockSetup     func(mockRepo *repository.MockAuctionDB)
		expectError   bool
		expectedPrice float64
	}{
		{
			name:   "no_bids_returns_start_price",
			itemID: "item1",
			mockSetup: func(mockRepo *repository.MockAuctionDB) {
				mockRepo.EXPECT().GetItem("item1").Return(activeItem(), nil)
			},
			expectedPrice: 100,
		},
		{
			name:   "with_bids_returns_highest",
			itemID: "item1",
			mockSetup: func(mockRepo *repository.MockAuctionDB) {
				item := activeItem()
				item.HighestBid = 135
				mockRepo.EXPECT().GetItem("item1").Return(item, nil)
			},
			expectedPrice: 135,
		},
		{
			name:        "empty_itemID",
			itemID:      "",
			mockSetup:   func(mockRepo *repository.MockAuctionDB) {},
			expectError: true,
		},
		{
			name:   "item_not_found",
			itemID: "missing",
			mockSetup: func(mockRepo *repository.MockAuctionDB) {
				mockRepo.EXPECT().GetItem("missing").Return(model.Item{}, auctionerrors.ErrItemNotFound)
			},
			expectError: true,
		},
	}

	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			mockRepo := repository.NewMockAuctionDB(ctrl)
			tc.mockSetup(mockRepo)

			service := NewBiddingService(mockRepo, &recordingNotifier{}, feed.NewHub(), money.DefaultConfig())
			price, err := service.CurrentPrice(tc.itemID)

			if tc.expectError {
				require.Error(t, err)
			} else {
				require.NoError(t, err)
				require.Equal(t, tc.expectedPrice, price)
			}
		})
	}
}

// Tests HighestBidder and GetWinningBid
func TestBiddingService_HighestBidder(t *testing.T) {
	now := time.Now().UTC()

	tests := []struct {
		name           string
		itemID         string
		mockSetup      func(mockRepo *repository.MockAuctionDB)
		expectError    bool
		expectedBidder string
	}{
		{
			name:   "winning_bidder",
			itemID: "item1",
			mockSetup: func(mockRepo *repository.MockAuctionDB) {
				mockRepo.EXPECT().GetWinningBid("item1").Return(model.Bid{
					BidID: uuid.NewString(), ItemID: "item1", BidderID: "user1", Amount: 110, CreatedAt: now,
				}, nil)
			},
			expectedBidder: "user1",
		},
		{
			name:        "empty_itemID",
			itemID:      "",
			mockSetup:   func(mockRepo *repository.MockAuctionDB) {},
			expectError: true,
		},
		{
			name:   "no_bids",
			itemID: "item2",
			mockSetup: func(mockRepo *repository.MockAuctionDB) {
				mockRepo.EXPECT().GetWinningBid("item2").Return(model.Bid{}, auctionerrors.ErrNoBids)
			},
			expectError: true,
		},
	}

	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			mockRepo := repository.NewMockAuctionDB(ctrl)
			tc.mockSetup(mockRepo)

			service := NewBiddingService(mockRepo, &recordingNotifier{}, feed.NewHub(), money.DefaultConfig())
			bidder, err := service.HighestBidder(tc.itemID)

			if tc.expectError {
				require.Error(t, err)
			} else {
				require.NoError(t, err)
				require.Equal(t, tc.expectedBidder, bidder)
			}
		})
	}
}

// Tests GetItemsByUser
func TestBiddingService_GetItemsByUser(t *testing.T) {
	itemsExample := []model.Item{
		{ItemID: "item1", Title: "Mirror Carp 24lb", StartPrice: 1000.0},
		{ItemID: "item2", Title: "Koi 8lb", StartPrice: 500.0},
	}

	tests := []struct {
		name          string
		userID        string
		mockSetup     func(mockRepo *repository.MockAuctionDB)
		expectError   bool
		expectedError error
		expectedItems []model.Item
	}{
		{
			name:   "valid_user_with_items",
			userID: "user1",
			mockSetup: func(mockRepo *repository.MockAuctionDB) {
				mockRepo.EXPECT().GetItemsByUser("user1").Return(itemsExample, nil)
			},
			expectedItems: itemsExample,
		},
		{
			name:          "empty_userID",
			userID:        "",
			mockSetup:     func(mockRepo *repository.MockAuctionDB) {},
			expectError:   true,
			expectedError: auctionerrors.ErrInvalidBid,
		},
		{
			name:   "repo_error",
			userID: "user3",
			mockSetup: func(mockRepo *repository.MockAuctionDB) {
				mockRepo.EXPECT().GetItemsByUser("user3").Return(nil, errors.New("db failure"))
			},
			expectError:   true,
			expectedError: nil, // Service wraps repo error
		},
	}

	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			mockRepo := repository.NewMockAuctionDB(ctrl)
			tc.mockSetup(mockRepo)

			service := NewBiddingService(mockRepo, &recordingNotifier{}, feed.NewHub(), money.DefaultConfig())
			items, err := service.GetItemsByUser(tc.userID)

			if tc.expectError {
				require.Error(t, err)
				if tc.expectedError != nil {
					require.True(t, errors.Is(err, tc.expectedError),
						"expected error: %v, got: %v", tc.expectedError, err)
				}
			} else {
				require.NoError(t, err)
				require.Equal(t, tc.expectedItems, items)
			}
		})
	}
}

// Tests ReserveStatus through the service
func TestBiddingService_ReserveStatus(t *testing.T) {
	tests := []struct {
		name     string
		item     model.Item
		expected model.ReserveStatus
	}{
		{
			name:     "no_reserve_set",
			item:     model.Item{ItemID: "item1", AuctionID: "auction1", StartPrice: 100, MinSellPrice: 0},
			expected: model.NoReserve,
		},
		{
			name:     "reserve_equals_start_price",
			item:     model.Item{ItemID: "item1", AuctionID: "auction1", StartPrice: 100, MinSellPrice: 100},
			expected: model.NoReserve,
		},
		{
			name:     "reserve_not_met",
			item:     model.Item{ItemID: "item1", AuctionID: "auction1", StartPrice: 100, MinSellPrice: 250, HighestBid: 150},
			expected: model.ReserveNotMet,
		},
		{
			name:     "reserve_met",
			item:     model.Item{ItemID: "item1", AuctionID: "auction1", StartPrice: 100, MinSellPrice: 250, HighestBid: 250},
			expected: model.ReserveMet,
		},
	}

	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			mockRepo := repository.NewMockAuctionDB(ctrl)
			mockRepo.EXPECT().GetItem("item1").Return(tc.item, nil)

			service := NewBiddingService(mockRepo, &recordingNotifier{}, feed.NewHub(), money.DefaultConfig())
			status, err := service.ReserveStatus("item1")
			require.NoError(t, err)
			require.Equal(t, tc.expected, status)
		})
	}
}

// Tests ComputeTotal through the service
func TestBiddingService_ComputeTotal(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	service := NewBiddingService(repository.NewMockAuctionDB(ctrl), &recordingNotifier{}, feed.NewHub(), money.DefaultConfig())

	b, err := service.ComputeTotal(100)
	require.NoError(t, err)
	require.Equal(t, "133.10", b.Total.Round(2).StringFixed(2))

	_, err = service.ComputeTotal(-5)
	require.Error(t, err)
	require.True(t, errors.Is(err, auctionerrors.ErrInvalidBid))
}
