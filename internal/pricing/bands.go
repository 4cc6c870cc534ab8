package pricing

import (
	"sort"

	"github.com/shopspring/decimal"
)

// Band is one half-open price interval [Lower, next band's Lower) with a flat fee.
type Band struct {
	Lower decimal.Decimal
	Fee   decimal.Decimal
}

// Schedule is a piecewise fee function. Bands are sorted by Lower and start at
// zero, so they are contiguous by construction. Prices at or above
// PercentFrom (when set) pay PercentRate of the price instead of a band fee.
type Schedule struct {
	Bands       []Band
	PercentFrom *decimal.Decimal
	PercentRate decimal.Decimal
}

// Fee looks up the fee for a non-negative price.
func (s Schedule) Fee(price decimal.Decimal) decimal.Decimal {
	if s.PercentFrom != nil && price.GreaterThanOrEqual(*s.PercentFrom) {
		return price.Mul(s.PercentRate)
	}
	// first band whose lower bound is above price, minus one
	idx := sort.Search(len(s.Bands), func(i int) bool {
		return s.Bands[i].Lower.GreaterThan(price)
	}) - 1
	if idx < 0 {
		return decimal.Zero
	}
	return s.Bands[idx].Fee
}

// Boundaries returns every published edge of the schedule, percent tail included.
func (s Schedule) Boundaries() []decimal.Decimal {
	out := make([]decimal.Decimal, 0, len(s.Bands)+1)
	for _, b := range s.Bands {
		out = append(out, b.Lower)
	}
	if s.PercentFrom != nil {
		out = append(out, *s.PercentFrom)
	}
	return out
}

func bands(pairs ...int64) []Band {
	out := make([]Band, 0, len(pairs)/2)
	for i := 0; i+1 < len(pairs); i += 2 {
		out = append(out, Band{Lower: decimal.NewFromInt(pairs[i]), Fee: decimal.NewFromInt(pairs[i+1])})
	}
	return out
}

func ptr(d decimal.Decimal) *decimal.Decimal {
	return &d
}
