package entity

type Order struct {
	ID         uint    `gorm:"primaryKey" json:"id"`
	CustomerID uint    `gorm:"not null;index" json:"customer_id"`
	Timestamp  int64   `gorm:"not null" json:"timestamp"` // unix seconds, set once at creation
	Notes      *string `gorm:"type:text" json:"notes"`

	Customer   Customer    `json:"-"`
	OrderItems []OrderItem `gorm:"constraint:OnUpdate:CASCADE,OnDelete:CASCADE" json:"-"`
}
