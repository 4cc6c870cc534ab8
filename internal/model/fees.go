package model

import "github.com/shopspring/decimal"

// AuctionFeeBreakdown itemizes the buyer-side charges of an auction house, in USD.
type AuctionFeeBreakdown struct {
	GateFee           decimal.Decimal `json:"gate_fee" swaggertype:"string"`
	BidFee            decimal.Decimal `json:"bid_fee" swaggertype:"string"`
	TitleShippingFee  decimal.Decimal `json:"title_shipping_fee" swaggertype:"string"`
	EnvironmentalFee  decimal.Decimal `json:"environmental_fee" swaggertype:"string"`
	SecuredPaymentFee decimal.Decimal `json:"secured_payment_fee" swaggertype:"string"`
	TotalFees         decimal.Decimal `json:"total_fees" swaggertype:"string"`
}
