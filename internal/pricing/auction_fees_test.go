package pricing

import (
	"errors"
	"fmt"
	"testing"

	"carimport/internal/model"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var cent = decimal.RequireFromString("0.01")

func d(s string) decimal.Decimal {
	return decimal.RequireFromString(s)
}

func assertDecimal(t *testing.T, want string, got decimal.Decimal, msgAndArgs ...interface{}) {
	t.Helper()
	label := ""
	if len(msgAndArgs) > 0 {
		if format, ok := msgAndArgs[0].(string); ok {
			label = fmt.Sprintf(format, msgAndArgs[1:]...) + ": "
		}
	}
	assert.True(t, d(want).Equal(got), "%swant %s, got %s", label, want, got.String())
}

func TestSchedules_BandsAreSortedAndStartAtZero(t *testing.T) {
	for house, schedule := range AuctionSchedules {
		for name, s := range map[string]Schedule{"virtual": schedule.VirtualBid, "live": schedule.LiveBid} {
			require.NotEmpty(t, s.Bands, "%s %s", house, name)
			assert.True(t, s.Bands[0].Lower.IsZero(), "%s %s must start at 0", house, name)
			for i := 1; i < len(s.Bands); i++ {
				assert.True(t, s.Bands[i].Lower.GreaterThan(s.Bands[i-1].Lower),
					"%s %s band %d lower %s not above %s", house, name, i, s.Bands[i].Lower, s.Bands[i-1].Lower)
			}
			if s.PercentFrom != nil {
				last := s.Bands[len(s.Bands)-1].Lower
				assert.True(t, s.PercentFrom.GreaterThan(last), "%s %s percent tail overlaps last band", house, name)
			}
		}
	}
}

func TestSchedules_EveryBoundaryMatchesPublishedFee(t *testing.T) {
	for house, schedule := range AuctionSchedules {
		for name, s := range map[string]Schedule{"virtual": schedule.VirtualBid, "live": schedule.LiveBid} {
			for i, band := range s.Bands {
				assertDecimal(t, band.Fee.String(), s.Fee(band.Lower), "%s %s at %s", house, name, band.Lower)
				assertDecimal(t, band.Fee.String(), s.Fee(band.Lower.Add(cent)), "%s %s above %s", house, name, band.Lower)
				if i > 0 {
					below := band.Lower.Sub(cent)
					assertDecimal(t, s.Bands[i-1].Fee.String(), s.Fee(below), "%s %s below %s", house, name, band.Lower)
				}
			}
			if s.PercentFrom != nil {
				edge := *s.PercentFrom
				assertDecimal(t, edge.Mul(s.PercentRate).String(), s.Fee(edge), "%s %s at percent edge", house, name)
				last := s.Bands[len(s.Bands)-1]
				assertDecimal(t, last.Fee.String(), s.Fee(edge.Sub(cent)), "%s %s below percent edge", house, name)
			}
		}
	}
}

func TestCopartVirtualBidFee_PublishedPoints(t *testing.T) {
	s := AuctionSchedules[model.AuctionCopart].VirtualBid
	tests := []struct {
		price string
		fee   string
	}{
		{"0", "1"},
		{"49.99", "1"},
		{"50", "1"},
		{"99.99", "1"},
		{"100", "25"},
		{"199.99", "25"},
		{"200", "60"},
		{"9999.99", "820"},
		{"10000", "850"},
		{"12000", "875"},
		{"14999.99", "890"},
		{"15000", "900"},
		{"20000", "1200"},
	}
	for _, tt := range tests {
		t.Run(tt.price, func(t *testing.T) {
			assertDecimal(t, tt.fee, s.Fee(d(tt.price)))
		})
	}
}

func TestComputeAuctionFees_CopartScenario(t *testing.T) {
	fees, err := ComputeAuctionFees(model.AuctionCopart, d("12000"), false)
	require.NoError(t, err)

	assertDecimal(t, "95", fees.GateFee)
	assertDecimal(t, "875", fees.BidFee)
	assertDecimal(t, "20", fees.TitleShippingFee)
	assertDecimal(t, "15", fees.EnvironmentalFee)
	assertDecimal(t, "180", fees.SecuredPaymentFee)
	assertDecimal(t, "1185", fees.TotalFees)
}

func TestComputeAuctionFees_LiveBid(t *testing.T) {
	fees, err := ComputeAuctionFees(model.AuctionCopart, d("12000"), true)
	require.NoError(t, err)
	assertDecimal(t, "160", fees.BidFee)
	assertDecimal(t, "470", fees.TotalFees)

	fees, err = ComputeAuctionFees(model.AuctionIAAI, d("999.99"), true)
	require.NoError(t, err)
	assertDecimal(t, "59", fees.BidFee)
	assertDecimal(t, "0", fees.SecuredPaymentFee)
	assertDecimal(t, "189", fees.TotalFees)
}

func TestComputeAuctionFees_IAAIHasNoSecuredPaymentFee(t *testing.T) {
	fees, err := ComputeAuctionFees(model.AuctionIAAI, d("12000"), false)
	require.NoError(t, err)
	assertDecimal(t, "885", fees.BidFee)
	assertDecimal(t, "0", fees.SecuredPaymentFee)
	assertDecimal(t, "1015", fees.TotalFees)
}

func TestComputeAuctionFees_HouseNameIsNormalized(t *testing.T) {
	fees, err := ComputeAuctionFees(" Copart ", d("12000"), false)
	require.NoError(t, err)
	assertDecimal(t, "1185", fees.TotalFees)
}

func TestComputeAuctionFees_UnscheduledHousesAreFree(t *testing.T) {
	for _, house := range []string{model.AuctionManheim, model.AuctionOther, "adesa"} {
		t.Run(house, func(t *testing.T) {
			fees, err := ComputeAuctionFees(house, d("12000"), false)
			require.NoError(t, err)
			assertDecimal(t, "0", fees.GateFee)
			assertDecimal(t, "0", fees.BidFee)
			assertDecimal(t, "0", fees.SecuredPaymentFee)
			assertDecimal(t, "0", fees.TotalFees)
		})
	}
}

func TestComputeAuctionFees_NegativePriceIsRejected(t *testing.T) {
	_, err := ComputeAuctionFees(model.AuctionCopart, d("-0.01"), false)
	require.Error(t, err)
	assert.True(t, errors.Is(err, model.ErrInvalidQuoteInput))
}
