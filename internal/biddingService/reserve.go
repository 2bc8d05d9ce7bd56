package bidding

import (
	model "github.com/Insightz/carpauctions/internal/models"
)

// ReserveOf classifies a lot's current price against its minimum sell price.
// A lot with no reserve, or a reserve equal to its start price, is always
// considered sellable. The result is recomputed on every price change and
// never persisted.
func ReserveOf(item model.Item, currentPrice float64) model.ReserveStatus {
	if item.MinSellPrice == 0 || item.MinSellPrice == item.StartPrice {
		return model.NoReserve
	}
	if currentPrice >= item.MinSellPrice {
		return model.ReserveMet
	}
	return model.ReserveNotMet
}
