package pricing

import "github.com/shopspring/decimal"

// serviceTier charges Fee for subtotals up to and including Upper.
type serviceTier struct {
	Upper decimal.Decimal
	Fee   decimal.Decimal
}

var (
	serviceFeeTiers     = buildServiceTiers()
	serviceFeeBase      = decimal.NewFromInt(300)
	serviceFeeFirstStep = decimal.NewFromInt(7500)
	serviceFeeStep      = decimal.NewFromInt(2500)
	serviceFeeIncrement = decimal.NewFromInt(25)
	serviceFeeCeiling   = decimal.NewFromInt(50000)
	serviceFeeTopRate   = decimal.RequireFromString("0.015")
)

// $300 up to $7,500, then +$25 per $2,500 up to $725 at $50,000.
func buildServiceTiers() []serviceTier {
	var tiers []serviceTier
	fee := serviceFeeBase
	for upper := serviceFeeFirstStep; upper.LessThanOrEqual(serviceFeeCeiling); upper = upper.Add(serviceFeeStep) {
		tiers = append(tiers, serviceTier{Upper: upper, Fee: fee})
		fee = fee.Add(serviceFeeIncrement)
	}
	return tiers
}

// ComputeServiceFee returns the brokerage fee for a pre-service subtotal.
// Subtotals above $50,000 pay 1.5%.
func ComputeServiceFee(subtotal decimal.Decimal) decimal.Decimal {
	if !subtotal.IsPositive() {
		return decimal.Zero
	}
	if subtotal.GreaterThan(serviceFeeCeiling) {
		return subtotal.Mul(serviceFeeTopRate)
	}
	for _, tier := range serviceFeeTiers {
		if subtotal.LessThanOrEqual(tier.Upper) {
			return tier.Fee
		}
	}
	return subtotal.Mul(serviceFeeTopRate)
}
