package entity

// OrderItem links an order to a catalog item. There is no quantity column:
// ordering the same item twice stores two rows.
type OrderItem struct {
	ID      uint `gorm:"primaryKey" json:"id"`
	OrderID uint `gorm:"not null;index" json:"order_id"`
	ItemID  uint `gorm:"not null;index" json:"item_id"`

	Order Order `json:"-"`
	Item  Item  `json:"-"`
}
