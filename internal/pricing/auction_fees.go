package pricing

import (
	"fmt"
	"strings"

	"carimport/internal/model"

	"github.com/shopspring/decimal"
)

// AuctionSchedule is the full buyer-fee sheet of one auction house.
type AuctionSchedule struct {
	GateFee            decimal.Decimal
	TitleShippingFee   decimal.Decimal
	EnvironmentalFee   decimal.Decimal
	SecuredPaymentFlat decimal.Decimal
	SecuredPaymentRate decimal.Decimal
	VirtualBid         Schedule
	LiveBid            Schedule
}

// SecuredPaymentFee is flat or a share of the price, whichever the house defines.
func (a AuctionSchedule) SecuredPaymentFee(price decimal.Decimal) decimal.Decimal {
	if !a.SecuredPaymentRate.IsZero() {
		return price.Mul(a.SecuredPaymentRate)
	}
	return a.SecuredPaymentFlat
}

var fifteenThousand = decimal.NewFromInt(15000)

// AuctionSchedules holds the fee sheets for every house with a published schedule.
var AuctionSchedules = map[string]AuctionSchedule{
	model.AuctionCopart: {
		GateFee:            decimal.NewFromInt(95),
		TitleShippingFee:   decimal.NewFromInt(20),
		EnvironmentalFee:   decimal.NewFromInt(15),
		SecuredPaymentRate: decimal.RequireFromString("0.015"),
		VirtualBid: Schedule{
			Bands: bands(
				0, 1,
				50, 1,
				100, 25,
				200, 60,
				300, 85,
				350, 100,
				400, 125,
				450, 135,
				500, 145,
				550, 155,
				600, 170,
				700, 195,
				800, 215,
				900, 230,
				1000, 250,
				1200, 270,
				1300, 285,
				1400, 300,
				1500, 315,
				1600, 330,
				1700, 350,
				1800, 370,
				2000, 390,
				2400, 425,
				2500, 460,
				3000, 505,
				3500, 555,
				4000, 600,
				4500, 625,
				5000, 650,
				5500, 675,
				6000, 700,
				6500, 720,
				7000, 755,
				7500, 775,
				8000, 800,
				8500, 820,
				10000, 850,
				11500, 860,
				12000, 875,
				12500, 890,
			),
			PercentFrom: ptr(fifteenThousand),
			PercentRate: decimal.RequireFromString("0.06"),
		},
		LiveBid: Schedule{
			Bands: bands(
				0, 0,
				100, 50,
				500, 65,
				1000, 85,
				1500, 95,
				2000, 110,
				4000, 125,
				6000, 145,
				8000, 160,
			),
		},
	},
	model.AuctionIAAI: {
		GateFee:            decimal.NewFromInt(95),
		TitleShippingFee:   decimal.NewFromInt(20),
		EnvironmentalFee:   decimal.NewFromInt(15),
		SecuredPaymentFlat: decimal.Zero,
		VirtualBid: Schedule{
			Bands: bands(
				0, 1,
				100, 25,
				200, 80,
				300, 90,
				350, 120,
				400, 130,
				450, 140,
				500, 155,
				550, 170,
				600, 190,
				700, 210,
				800, 230,
				900, 250,
				1000, 290,
				1200, 305,
				1300, 315,
				1400, 330,
				1500, 345,
				1600, 360,
				1700, 370,
				1800, 390,
				2000, 420,
				2400, 440,
				2500, 470,
				3000, 520,
				3500, 570,
				4000, 610,
				4500, 635,
				5000, 660,
				5500, 685,
				6000, 710,
				6500, 730,
				7000, 760,
				7500, 780,
				8000, 810,
				8500, 830,
				9000, 850,
				10000, 860,
				11500, 870,
				12000, 885,
				12500, 900,
			),
			PercentFrom: ptr(fifteenThousand),
			PercentRate: decimal.RequireFromString("0.06"),
		},
		LiveBid: Schedule{
			Bands: bands(
				0, 0,
				100, 49,
				500, 59,
				1000, 79,
				1500, 89,
				2000, 99,
				4000, 109,
				6000, 139,
				8000, 149,
			),
		},
	},
}

// ComputeAuctionFees itemizes the auction-side charges for a vehicle price.
// Houses without a schedule (manheim, other) cost nothing yet.
func ComputeAuctionFees(auctionHouse string, price decimal.Decimal, useLiveBid bool) (model.AuctionFeeBreakdown, error) {
	if price.IsNegative() {
		return model.AuctionFeeBreakdown{}, fmt.Errorf("%w: negative price %s", model.ErrInvalidQuoteInput, price.String())
	}

	schedule, ok := AuctionSchedules[strings.ToLower(strings.TrimSpace(auctionHouse))]
	if !ok {
		return zeroFees(), nil
	}

	bidFee := schedule.VirtualBid.Fee(price)
	if useLiveBid {
		bidFee = schedule.LiveBid.Fee(price)
	}

	fees := model.AuctionFeeBreakdown{
		GateFee:           schedule.GateFee,
		BidFee:            bidFee,
		TitleShippingFee:  schedule.TitleShippingFee,
		EnvironmentalFee:  schedule.EnvironmentalFee,
		SecuredPaymentFee: schedule.SecuredPaymentFee(price),
	}
	fees.TotalFees = fees.GateFee.
		Add(fees.BidFee).
		Add(fees.TitleShippingFee).
		Add(fees.EnvironmentalFee).
		Add(fees.SecuredPaymentFee)

	return fees, nil
}

func zeroFees() model.AuctionFeeBreakdown {
	return model.AuctionFeeBreakdown{
		GateFee:           decimal.Zero,
		BidFee:            decimal.Zero,
		TitleShippingFee:  decimal.Zero,
		EnvironmentalFee:  decimal.Zero,
		SecuredPaymentFee: decimal.Zero,
		TotalFees:         decimal.Zero,
	}
}
