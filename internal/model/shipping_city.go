package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// Export port constants
const (
	PortHouston    = "houston"
	PortLosAngeles = "los_angeles"
	PortNewYork    = "new_york"
	PortSavannah   = "savannah"
	PortSeattle    = "seattle"
	PortToronto    = "toronto"
)

// ShippingCity is one row of the admin-managed shipping tariff directory.
// The effective price is the base tariff plus every admin adjustment.
type ShippingCity struct {
	ID                       uuid.UUID       `gorm:"type:uuid;default:gen_random_uuid();primaryKey" json:"id"`
	City                     string          `gorm:"type:varchar(120);not null;index:idx_shipping_lookup" json:"city"`
	State                    string          `gorm:"type:varchar(10)" json:"state"`
	Auction                  string          `gorm:"type:varchar(20);not null;index:idx_shipping_lookup" json:"auction"`   // copart, iaai, ...
	Category                 string          `gorm:"type:varchar(20);not null;index:idx_shipping_lookup" json:"category"` // sedan, suv, ...
	Port                     string          `gorm:"type:varchar(20)" json:"port"`
	BasePrice                decimal.Decimal `gorm:"type:decimal(12,2);not null" json:"base_price"`
	BaseLastAdjustmentAmount decimal.Decimal `gorm:"type:decimal(12,2);not null;default:0" json:"base_last_adjustment_amount"`
	TotalAdjustmentAmount    decimal.Decimal `gorm:"type:decimal(12,2);not null;default:0" json:"total_adjustment_amount"`
	CreatedAt                time.Time       `json:"created_at"`
	UpdatedAt                time.Time       `json:"updated_at"`
	DeletedAt                gorm.DeletedAt  `gorm:"index" json:"-"`
}

func (c *ShippingCity) BeforeCreate(tx *gorm.DB) error {
	if c.ID == uuid.Nil {
		c.ID = uuid.New()
	}
	return nil
}

// EffectivePrice is additive: base + last base adjustment + cumulative adjustments.
func (c ShippingCity) EffectivePrice() decimal.Decimal {
	return c.BasePrice.Add(c.BaseLastAdjustmentAmount).Add(c.TotalAdjustmentAmount)
}

// ShippingPrice is a resolved transport cost in USD.
type ShippingPrice struct {
	City     string          `json:"city"`
	Auction  string          `json:"auction"`
	Category string          `json:"category"`
	Port     string          `json:"port,omitempty"`
	PriceUSD decimal.Decimal `json:"price_usd" swaggertype:"string"`
	Source   string          `json:"source"`
}
