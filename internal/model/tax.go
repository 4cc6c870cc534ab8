package model

import "github.com/shopspring/decimal"

// TaxResult is the customs authority's answer, denominated in its local unit.
type TaxResult struct {
	CustomsDutyLocal      decimal.Decimal `json:"customs_duty_local"`
	VATLocal              decimal.Decimal `json:"vat_local"`
	EnvironmentalTaxLocal decimal.Decimal `json:"environmental_tax_local"`
	TotalLocal            decimal.Decimal `json:"total_local"`
	RegimeLabel           string          `json:"regime_label"`
}
