package entity

import "github.com/shopspring/decimal"

// prices go out as JSON numbers, not quoted strings
func init() {
	decimal.MarshalJSONWithoutQuotes = true
}

// Item is a catalog entry; its Price is the authoritative one for every order.
// Price is kept as text so every digit the client sent survives the round trip.
type Item struct {
	ID    uint            `gorm:"primaryKey" json:"id"`
	Name  string          `gorm:"size:191;uniqueIndex;not null" json:"name"`
	Price decimal.Decimal `gorm:"type:text;not null" json:"price"`

	OrderItems []OrderItem `gorm:"constraint:OnUpdate:CASCADE,OnDelete:RESTRICT" json:"-"`
}
