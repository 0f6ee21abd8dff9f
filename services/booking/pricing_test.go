package booking

import (
	"testing"

	"weddify/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestComputeQuotePercentageDiscount(t *testing.T) {
	pricing := models.PackagePricing{
		BasePrice:          10000000, // 100,000.00
		DiscountPercentage: 10,
		Currency:           "LKR",
	}

	quote := ComputeQuote(pricing, 1500, testNow)

	assert.Equal(t, int64(9000000), quote.BasePrice)
	assert.Equal(t, int64(1350000), quote.TaxAmount)
	assert.Equal(t, int64(10350000), quote.FinalPrice)
	assert.Equal(t, "LKR", quote.Currency)

	require.Len(t, quote.Discounts, 1)
	assert.Equal(t, "package_discount", quote.Discounts[0].Type)
	assert.Equal(t, int64(1000000), quote.Discounts[0].Amount)
	assert.Equal(t, testNow, quote.Discounts[0].AppliedAt)
}

func TestComputeQuoteExplicitDiscountedPriceWins(t *testing.T) {
	pricing := models.PackagePricing{
		BasePrice:          10000000,
		DiscountedPrice:    8500000,
		DiscountPercentage: 10, // ignored
		Currency:           "LKR",
	}

	quote := ComputeQuote(pricing, 1500, testNow)

	assert.Equal(t, int64(8500000), quote.BasePrice)
	require.Len(t, quote.Discounts, 1)
	assert.Equal(t, int64(1500000), quote.Discounts[0].Amount)
	assert.Equal(t, int64(8500000+1275000), quote.FinalPrice)
}

func TestComputeQuoteNoDiscount(t *testing.T) {
	pricing := models.PackagePricing{BasePrice: 500000, Currency: "LKR"}

	quote := ComputeQuote(pricing, 1500, testNow)

	assert.Equal(t, int64(500000), quote.BasePrice)
	assert.Empty(t, quote.Discounts)
	assert.Equal(t, int64(75000), quote.TaxAmount)
	assert.Equal(t, int64(575000), quote.FinalPrice)
}

func TestComputeQuoteDiscountedPriceAboveBaseIgnored(t *testing.T) {
	pricing := models.PackagePricing{
		BasePrice:       500000,
		DiscountedPrice: 600000,
		Currency:        "LKR",
	}

	quote := ComputeQuote(pricing, 1500, testNow)
	assert.Equal(t, int64(500000), quote.BasePrice)
	assert.Empty(t, quote.Discounts)
}

func TestComputeQuoteZeroTaxRate(t *testing.T) {
	pricing := models.PackagePricing{BasePrice: 123456, Currency: "LKR"}

	quote := ComputeQuote(pricing, 0, testNow)
	assert.Equal(t, int64(0), quote.TaxAmount)
	assert.Equal(t, int64(123456), quote.FinalPrice)
}

func TestComputeQuoteRoundsHalfUp(t *testing.T) {
	// 333 * 15% = 49.95 -> 50
	quote := ComputeQuote(models.PackagePricing{BasePrice: 333, Currency: "LKR"}, 1500, testNow)
	assert.Equal(t, int64(50), quote.TaxAmount)

	// 303 * 15% = 45.45 -> 45
	quote = ComputeQuote(models.PackagePricing{BasePrice: 303, Currency: "LKR"}, 1500, testNow)
	assert.Equal(t, int64(45), quote.TaxAmount)

	// 10 * 15% = 1.5 -> 2 (half rounds up)
	quote = ComputeQuote(models.PackagePricing{BasePrice: 10, Currency: "LKR"}, 1500, testNow)
	assert.Equal(t, int64(2), quote.TaxAmount)
}

func TestComputeQuoteFractionalPercentage(t *testing.T) {
	// 10.5% of 999 = 104.895 -> 105
	pricing := models.PackagePricing{
		BasePrice:          999,
		DiscountPercentage: 10.5,
		Currency:           "LKR",
	}
	quote := ComputeQuote(pricing, 0, testNow)
	require.Len(t, quote.Discounts, 1)
	assert.Equal(t, int64(105), quote.Discounts[0].Amount)
	assert.Equal(t, int64(894), quote.BasePrice)
}

func TestComputeQuoteInvariantFinalEqualsBasePlusTax(t *testing.T) {
	cases := []models.PackagePricing{
		{BasePrice: 1, Currency: "LKR"},
		{BasePrice: 999999937, DiscountPercentage: 3.33, Currency: "LKR"},
		{BasePrice: 10000000, DiscountedPrice: 1, Currency: "LKR"},
	}
	for _, pricing := range cases {
		quote := ComputeQuote(pricing, 1500, testNow)
		assert.Equal(t, quote.BasePrice+quote.TaxAmount, quote.FinalPrice)
	}
}
