package main

import (
	"fmt"
	"os"
	"time"

	auction "github.com/Insightz/carpauctions/internal/auctionService"
	bidding "github.com/Insightz/carpauctions/internal/biddingService"
	"github.com/Insightz/carpauctions/internal/feed"
	model "github.com/Insightz/carpauctions/internal/models"
	"github.com/Insightz/carpauctions/internal/money"
	"github.com/Insightz/carpauctions/internal/notifier"
	"github.com/Insightz/carpauctions/internal/repository"
	"github.com/Insightz/carpauctions/internal/server"
	"github.com/Insightz/carpauctions/utils"
)

func main() {

	repo := repository.NewMemoryRepo()
	hub := feed.NewHub()
	emitter := notifier.NewEmitter(repo, hub)

	biddingSvc := bidding.NewBiddingService(repo, emitter, hub, money.DefaultConfig())
	auctionSvc := auction.NewAuctionService(repo, hub)

	prepopulate(auctionSvc)

	router := server.SetupRouter(biddingSvc, auctionSvc, emitter, hub)

	port := getPort()
	fmt.Printf("Starting auction server on %s...\n", port)
	if err := router.Run(port); err != nil {
		fmt.Fprintf(os.Stderr, "Failed to start server: %v\n", err)
		os.Exit(1)
	}
}

// prepopulate seeds a sample active auction with a few lots so the API is
// usable out of the box.
func prepopulate(svc *auction.AuctionService) {
	organizer := model.Identity{UserID: "organizer1", Role: model.RoleSeller}
	admin := model.Identity{UserID: "admin1", Role: model.RoleAdmin}

	a, err := svc.CreateAuction(organizer, model.Auction{
		Title:        "Spring Carp Auction",
		Description:  "Opening auction of the season",
		StartDate:    time.Now().UTC(),
		EndDate:      time.Now().UTC().Add(72 * time.Hour),
		ContactEmail: "organizer@example.com",
		Location:     "Valkenswaard",
	})
	if err != nil {
		utils.Fatal("failed to seed auction", map[string]any{"error": err.Error()})
	}

	items := []model.Item{
		{AuctionID: a.AuctionID, Title: "Mirror Carp 68cm", StartPrice: 100, MinSellPrice: 250, Species: model.SpeciesMirror, Weight: 7.2, Length: 68, Gender: "female"},
		{AuctionID: a.AuctionID, Title: "Koi C3", StartPrice: 200, Species: model.SpeciesKoi, Weight: 4.5, Length: 55, Gender: "male"},
		{AuctionID: a.AuctionID, Title: "Common Carp 74cm", StartPrice: 150, MinSellPrice: 150, Species: model.SpeciesCommon, Weight: 9.1, Length: 74, Gender: "female"},
	}
	seller := model.Identity{UserID: "seller1", Role: model.RoleSeller}
	for _, item := range items {
		if _, err := svc.AddItem(seller, item); err != nil {
			utils.Fatal("failed to seed item", map[string]any{"error": err.Error()})
		}
	}

	if _, err := svc.Publish(admin, a.AuctionID); err != nil {
		utils.Fatal("failed to publish seeded auction", map[string]any{"error": err.Error()})
	}
	if _, err := svc.Start(admin, a.AuctionID); err != nil {
		utils.Fatal("failed to start seeded auction", map[string]any{"error": err.Error()})
	}
}

// getPort returns the server port from env or defaults to ":8080"
func getPort() string {
	if p := os.Getenv("PORT"); p != "" {
		return fmt.Sprintf(":%s", p)
	}
	return ":8080"
}
