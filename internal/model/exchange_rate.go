package model

import (
	"time"

	"github.com/shopspring/decimal"
)

// ExchangeRates holds the AMD cost of one USD and one EUR together with the
// derived EUR/USD cross-rate. A value is always replaced as a whole.
type ExchangeRates struct {
	AMDPerUSD    decimal.Decimal `json:"amd_per_usd" swaggertype:"string"`
	AMDPerEUR    decimal.Decimal `json:"amd_per_eur" swaggertype:"string"`
	EURPerUSD    decimal.Decimal `json:"eur_per_usd" swaggertype:"string"`
	USDFetchedAt time.Time       `json:"usd_fetched_at"`
	EURFetchedAt time.Time       `json:"eur_fetched_at"`
	Fallback     bool            `json:"fallback"`
}
