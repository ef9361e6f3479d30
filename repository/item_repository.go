package repository

import (
	"orderapi/entity"

	"github.com/pkg/errors"
	"gorm.io/gorm"
)

type ItemRepository struct {
	Gateway[entity.Item]
}

func NewItemRepository(db *gorm.DB) *ItemRepository {
	return &ItemRepository{Gateway: NewGateway[entity.Item](db, "item")}
}

func (r *ItemRepository) WithTx(tx *gorm.DB) *ItemRepository {
	return NewItemRepository(tx)
}

// FindByName looks an item up by its unique name.
func (r *ItemRepository) FindByName(name string) (*entity.Item, error) {
	var it entity.Item
	if err := r.DB.Select("id, name, price").Where("name = ?", name).First(&it).Error; err != nil {
		return nil, errors.Wrapf(err, "find item %q", name)
	}
	return &it, nil
}

// IsReferenced reports whether any order line still points at the item.
func (r *ItemRepository) IsReferenced(id uint) (bool, error) {
	var cnt int64
	if err := r.DB.Model(&entity.OrderItem{}).Where("item_id = ?", id).Count(&cnt).Error; err != nil {
		return false, errors.Wrapf(err, "count order lines of item %d", id)
	}
	return cnt > 0, nil
}
