package model

import (
	"encoding/json"
	"fmt"

	"github.com/shopspring/decimal"
)

// RedactedMarker is what a withheld amount serializes to.
const RedactedMarker = "unavailable"

// Shipping price sources
const (
	ShippingSourceLive     = "live"
	ShippingSourceFallback = "fallback"
)

// Amount is a whole-dollar line item that may be withheld from the caller.
// The zero value is a present 0, not a redacted amount.
type Amount struct {
	value    decimal.Decimal
	redacted bool
}

// NewAmount rounds v to whole dollars.
func NewAmount(v decimal.Decimal) Amount {
	return Amount{value: v.Round(0)}
}

// Redacted returns an amount that is deliberately not disclosed.
func Redacted() Amount {
	return Amount{redacted: true}
}

func (a Amount) IsRedacted() bool { return a.redacted }

// Value returns the amount and false when it is redacted.
func (a Amount) Value() (decimal.Decimal, bool) {
	if a.redacted {
		return decimal.Zero, false
	}
	return a.value, true
}

func (a Amount) String() string {
	if a.redacted {
		return RedactedMarker
	}
	return a.value.String()
}

func (a Amount) MarshalJSON() ([]byte, error) {
	if a.redacted {
		return json.Marshal(RedactedMarker)
	}
	return []byte(a.value.String()), nil
}

func (a *Amount) UnmarshalJSON(data []byte) error {
	var marker string
	if err := json.Unmarshal(data, &marker); err == nil {
		if marker != RedactedMarker {
			return fmt.Errorf("unexpected amount marker %q", marker)
		}
		*a = Redacted()
		return nil
	}
	var v decimal.Decimal
	if err := v.UnmarshalJSON(data); err != nil {
		return err
	}
	*a = NewAmount(v)
	return nil
}

// CostBreakdown is the itemized import cost of a vehicle in USD.
// TotalUSD always equals the sum of the other line items.
type CostBreakdown struct {
	VehiclePrice        Amount              `json:"vehicle_price" swaggertype:"string"`
	AuctionFees         Amount              `json:"auction_fees" swaggertype:"string"`
	ShippingPrice       Amount              `json:"shipping_price" swaggertype:"string"`
	InsuranceFee        Amount              `json:"insurance_fee" swaggertype:"string"`
	CustomsDutyUSD      Amount              `json:"customs_duty_usd" swaggertype:"string"`
	VATUSD              Amount              `json:"vat_usd" swaggertype:"string"`
	EnvironmentalTaxUSD Amount              `json:"environmental_tax_usd" swaggertype:"string"`
	ServiceFee          Amount              `json:"service_fee" swaggertype:"string"`
	TotalUSD            Amount              `json:"total_usd" swaggertype:"string"`
	AuctionFeeDetail    AuctionFeeBreakdown `json:"auction_fee_detail"`
	ExchangeRates       ExchangeRates       `json:"exchange_rates"`
	TaxRegime           string              `json:"tax_regime,omitempty"`
	ShippingSource      string              `json:"shipping_source,omitempty"`
	Redacted            bool                `json:"redacted"`
}

// LineItems returns the addends of TotalUSD in display order.
func (b CostBreakdown) LineItems() []Amount {
	return []Amount{
		b.VehiclePrice,
		b.AuctionFees,
		b.ShippingPrice,
		b.InsuranceFee,
		b.CustomsDutyUSD,
		b.VATUSD,
		b.EnvironmentalTaxUSD,
		b.ServiceFee,
	}
}
