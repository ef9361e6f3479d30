package repository

import (
	"orderapi/entity"

	"github.com/pkg/errors"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type OrderRepository struct {
	Gateway[entity.Order]
}

func NewOrderRepository(db *gorm.DB) *OrderRepository {
	return &OrderRepository{Gateway: NewGateway[entity.Order](db, "order")}
}

func (r *OrderRepository) WithTx(tx *gorm.DB) *OrderRepository {
	return NewOrderRepository(tx)
}

// ---------------- Order Items ----------------

func (r *OrderRepository) CreateOrderItem(oi *entity.OrderItem) error {
	if err := r.DB.Omit(clause.Associations).Create(oi).Error; err != nil {
		return errors.Wrapf(constraintError(err), "insert line of order %d", oi.OrderID)
	}
	return nil
}

// DeleteOrderItems drops every line of the order.
func (r *OrderRepository) DeleteOrderItems(orderID uint) error {
	if err := r.DB.Where("order_id = ?", orderID).Delete(&entity.OrderItem{}).Error; err != nil {
		return errors.Wrapf(constraintError(err), "delete lines of order %d", orderID)
	}
	return nil
}

// OrderLine is one line item as shown to clients, priced from the catalog as it
// is now, not as it was when the order was placed.
type OrderLine struct {
	Name  string          `json:"name"`
	Price decimal.Decimal `json:"price"`
}

// ListLines joins the order's lines with the catalog, in insertion order.
func (r *OrderRepository) ListLines(orderID uint) ([]OrderLine, error) {
	out := []OrderLine{}
	err := r.DB.Table("order_items AS oi").
		Select("i.name, i.price").
		Joins("JOIN items i ON i.id = oi.item_id").
		Where("oi.order_id = ?", orderID).
		Order("oi.id").
		Scan(&out).Error
	if err != nil {
		return nil, errors.Wrapf(err, "list lines of order %d", orderID)
	}
	return out, nil
}
