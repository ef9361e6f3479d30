package repository

import (
	"orderapi/entity"

	"github.com/pkg/errors"
	"gorm.io/gorm"
)

type CustomerRepository struct {
	Gateway[entity.Customer]
}

func NewCustomerRepository(db *gorm.DB) *CustomerRepository {
	return &CustomerRepository{Gateway: NewGateway[entity.Customer](db, "customer")}
}

// WithTx returns a copy of the repository that runs on tx.
func (r *CustomerRepository) WithTx(tx *gorm.DB) *CustomerRepository {
	return NewCustomerRepository(tx)
}

// HasOrders reports whether any order still points at the customer.
func (r *CustomerRepository) HasOrders(id uint) (bool, error) {
	var cnt int64
	if err := r.DB.Model(&entity.Order{}).Where("customer_id = ?", id).Count(&cnt).Error; err != nil {
		return false, errors.Wrapf(err, "count orders of customer %d", id)
	}
	return cnt > 0, nil
}
