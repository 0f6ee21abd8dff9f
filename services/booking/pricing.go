package booking

import (
	"math"
	"time"

	"weddify/models"
)

// Quote is the computed price breakdown for a booking attempt.
// All amounts are integer minor units; intermediate math never touches
// floating point except for the percentage conversion, which is rounded
// half-up immediately.
type Quote struct {
	BasePrice  int64 // after discounts
	Discounts  []models.Discount
	TaxRateBps int
	TaxAmount  int64
	FinalPrice int64
	Currency   string
}

// ComputeQuote derives the final price from package pricing and the
// platform tax rate (basis points). An explicit discountedPrice on the
// package wins over the percentage; either way the reduction is recorded
// as an audit entry.
func ComputeQuote(pricing models.PackagePricing, taxRateBps int, now time.Time) Quote {
	base := pricing.BasePrice
	var discounts []models.Discount

	switch {
	case pricing.DiscountedPrice > 0 && pricing.DiscountedPrice < base:
		discounts = append(discounts, models.Discount{
			Type:      "package_discount",
			Amount:    base - pricing.DiscountedPrice,
			Reason:    "vendor preset discounted price",
			AppliedAt: now,
		})
		base = pricing.DiscountedPrice
	case pricing.DiscountPercentage > 0:
		// Percentage is converted to basis points once so the cut itself
		// is pure integer math.
		pctBps := int64(math.Round(pricing.DiscountPercentage * 100))
		cut := roundHalfUp(pctBps*base, 10000)
		if cut > 0 {
			discounts = append(discounts, models.Discount{
				Type:      "package_discount",
				Amount:    cut,
				Reason:    "vendor preset percentage discount",
				AppliedAt: now,
			})
			base -= cut
		}
	}

	tax := roundHalfUp(base*int64(taxRateBps), 10000)

	return Quote{
		BasePrice:  base,
		Discounts:  discounts,
		TaxRateBps: taxRateBps,
		TaxAmount:  tax,
		FinalPrice: base + tax,
		Currency:   pricing.Currency,
	}
}

// roundHalfUp divides n by d, rounding half away from zero.
// n is expected to be non-negative.
func roundHalfUp(n, d int64) int64 {
	return (n + d/2) / d
}
