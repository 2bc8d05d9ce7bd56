package money

import (
	"fmt"

	"github.com/shopspring/decimal"

	"github.com/Insightz/carpauctions/internal/auctionerrors"
)

// displayPrecision is the scale used when rounding amounts for presentation.
// Internal arithmetic keeps full precision so repeated recalculation does not
// compound rounding error.
const displayPrecision int32 = 2

// Config carries the marketplace pricing constants. They are supplied by the
// caller rather than hard-coded so different auctions can run with different
// terms.
type Config struct {
	MinIncrement  float64 // smallest allowed step between successive bids
	AuctionFeePct float64 // auction fee as a percentage of the bid
	VATPct        float64 // VAT as a percentage, applied to bid and fee
}

// DefaultConfig returns the marketplace defaults: 5.00 increment, 10% fee,
// 21% VAT.
func DefaultConfig() Config {
	return Config{MinIncrement: 5.0, AuctionFeePct: 10, VATPct: 21}
}

// Breakdown is the full charge decomposition for a bid amount.
type Breakdown struct {
	BaseBid    decimal.Decimal `json:"base_bid"`
	VATOnBid   decimal.Decimal `json:"vat_on_bid"`
	AuctionFee decimal.Decimal `json:"auction_fee"`
	VATOnFees  decimal.Decimal `json:"vat_on_fees"`
	Total      decimal.Decimal `json:"total"`
}

// Rounded returns the breakdown rounded to display precision. Only the
// presentation layer should use this; arithmetic stays on the unrounded values.
func (b Breakdown) Rounded() Breakdown {
	return Breakdown{
		BaseBid:    b.BaseBid.Round(displayPrecision),
		VATOnBid:   b.VATOnBid.Round(displayPrecision),
		AuctionFee: b.AuctionFee.Round(displayPrecision),
		VATOnFees:  b.VATOnFees.Round(displayPrecision),
		Total:      b.Total.Round(displayPrecision),
	}
}

// ComputeTotal turns a bid amount into the total charge breakdown:
// VAT on the bid, the auction fee, and VAT on the fee. Rejects negative input.
func ComputeTotal(amount float64, cfg Config) (Breakdown, error) {
	if amount < 0 {
		return Breakdown{}, fmt.Errorf("money: %w - negative amount %.2f", auctionerrors.ErrInvalidBid, amount)
	}

	base := decimal.NewFromFloat(amount)
	hundred := decimal.NewFromInt(100)
	vatRate := decimal.NewFromFloat(cfg.VATPct).Div(hundred)
	feeRate := decimal.NewFromFloat(cfg.AuctionFeePct).Div(hundred)

	vatOnBid := base.Mul(vatRate)
	auctionFee := base.Mul(feeRate)
	vatOnFees := auctionFee.Mul(vatRate)

	return Breakdown{
		BaseBid:    base,
		VATOnBid:   vatOnBid,
		AuctionFee: auctionFee,
		VATOnFees:  vatOnFees,
		Total:      base.Add(vatOnBid).Add(auctionFee).Add(vatOnFees),
	}, nil
}

// MinimumNextBid returns the lowest acceptable bid given the current highest
// amount (or the start price when the item has no bids yet).
func MinimumNextBid(currentHighest, startPrice float64, cfg Config) decimal.Decimal {
	increment := decimal.NewFromFloat(cfg.MinIncrement)
	if currentHighest > 0 {
		return decimal.NewFromFloat(currentHighest).Add(increment)
	}
	return decimal.NewFromFloat(startPrice).Add(increment)
}

// MeetsMinimum reports whether amount clears the minimum acceptable bid.
// Comparison runs on decimals to avoid float equality surprises at the
// increment boundary.
func MeetsMinimum(amount float64, minimum decimal.Decimal) bool {
	return decimal.NewFromFloat(amount).GreaterThanOrEqual(minimum)
}
