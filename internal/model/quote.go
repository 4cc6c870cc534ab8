package model

import (
	"github.com/shopspring/decimal"
)

// BuyerType enum constants
const (
	BuyerIndividual  = "individual"
	BuyerLegalEntity = "legal_entity"
)

// AuctionHouse enum constants
const (
	AuctionCopart  = "copart"
	AuctionIAAI    = "iaai"
	AuctionManheim = "manheim"
	AuctionOther   = "other"
)

// EngineType enum constants
const (
	EngineGasoline = "gasoline"
	EngineDiesel   = "diesel"
	EngineElectric = "electric"
	EngineHybrid   = "hybrid"
)

// VehicleCategory enum constants
const (
	CategorySedan      = "sedan"
	CategoryCrossover  = "crossover"
	CategorySUV        = "suv"
	CategoryPickup     = "pickup"
	CategoryMotorcycle = "motorcycle"
)

// VehicleQuote is the input of a single cost calculation. It is built once
// per request and never mutated.
type VehicleQuote struct {
	BuyerType          string           `json:"buyer_type" validate:"required,oneof=individual legal_entity"`
	VehicleCategory    string           `json:"vehicle_category" validate:"required,oneof=sedan crossover suv pickup motorcycle"`
	PriceUSD           decimal.Decimal  `json:"price_usd" swaggertype:"string"`
	AuctionHouse       string           `json:"auction_house" validate:"required,oneof=copart iaai manheim other"`
	AuctionCity        string           `json:"auction_city" validate:"required"`
	PurchaseDate       Date             `json:"purchase_date" swaggertype:"string" format:"date"`
	EngineType         string           `json:"engine_type" validate:"required,oneof=gasoline diesel electric hybrid"`
	EngineVolumeLiters decimal.Decimal  `json:"engine_volume_liters" swaggertype:"string"`
	EnginePowerKW      *decimal.Decimal `json:"engine_power_kw,omitempty" swaggertype:"string"`
	UseLiveBid         bool             `json:"use_live_bid"`
	IsOffRoad          bool             `json:"is_off_road"`
	Insured            bool             `json:"insured"`
}

// IsLegalEntity reports whether customs should apply the legal-entity regime.
func (q VehicleQuote) IsLegalEntity() bool {
	return q.BuyerType == BuyerLegalEntity
}

// AccessPolicy is the caller-supplied visibility capability.
type AccessPolicy struct {
	HasFullAccess bool
}
