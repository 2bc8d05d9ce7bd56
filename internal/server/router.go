package server

import (
	"github.com/gin-gonic/gin"

	auction "github.com/Insightz/carpauctions/internal/auctionService"
	bidding "github.com/Insightz/carpauctions/internal/biddingService"
	"github.com/Insightz/carpauctions/internal/feed"
	"github.com/Insightz/carpauctions/internal/notifier"
	auctionhandler "github.com/Insightz/carpauctions/services/auction/handler"
	handler "github.com/Insightz/carpauctions/services/bidding/handler"
)

// SetupRouter configures all Gin routes for the application
func SetupRouter(biddingService *bidding.BiddingService, auctionService *auction.AuctionService, emitter *notifier.Emitter, hub *feed.Hub) *gin.Engine {
	router := gin.New() // New router without default middleware for full control over middleware and logging

	router.Use(gin.Recovery())          // recover from panics
	router.Use(RequestLoggerMiddleware) // custom request logging
	router.Use(IdentityMiddleware)      // explicit caller identity on every request

	biddingHandler := handler.NewBiddingHandler(biddingService, emitter)
	auctionHandler := auctionhandler.NewAuctionHandler(auctionService)
	feedHandler := NewFeedHandler(hub)

	bids := router.Group("/bids")
	{
		bids.POST("", biddingHandler.PlaceBidHandler)
	}

	autobids := router.Group("/autobids")
	{
		autobids.POST("", biddingHandler.RegisterAutoBidHandler)
	}

	items := router.Group("/items")
	{
		items.POST("", auctionHandler.CreateItemHandler)
		items.DELETE("/:item_id", auctionHandler.DeleteItemHandler)
		items.GET("/:item_id/bids", biddingHandler.GetBidsByItemHandler)
		items.GET("/:item_id/winning", biddingHandler.GetWinningBidHandler)
		items.GET("/:item_id/price", biddingHandler.GetPriceHandler)
		items.DELETE("/:item_id/autobid", biddingHandler.DisableAutoBidHandler)
	}

	auctions := router.Group("/auctions")
	{
		auctions.GET("", auctionHandler.ListAuctionsHandler)
		auctions.POST("", auctionHandler.CreateAuctionHandler)
		auctions.GET("/:auction_id", auctionHandler.GetAuctionHandler)
		auctions.PUT("/:auction_id", auctionHandler.UpdateAuctionHandler)
		auctions.GET("/:auction_id/items", auctionHandler.GetAuctionItemsHandler)
		auctions.POST("/:auction_id/publish", auctionHandler.TransitionHandler("publish"))
		auctions.POST("/:auction_id/start", auctionHandler.TransitionHandler("start"))
		auctions.POST("/:auction_id/end", auctionHandler.TransitionHandler("end"))
	}

	users := router.Group("/users")
	{
		users.GET("/:user_id/items", biddingHandler.GetItemsByUserHandler)
	}

	notifications := router.Group("/notifications")
	{
		notifications.GET("", biddingHandler.GetNotificationsHandler)
		notifications.POST("/:notification_id/read", biddingHandler.MarkNotificationReadHandler)
	}

	pricing := router.Group("/pricing")
	{
		pricing.GET("/quote", biddingHandler.QuoteHandler)
	}

	router.GET("/ws", feedHandler.StreamHandler)

	return router
}
