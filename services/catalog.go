package services

import (
	"orderapi/repository"

	"github.com/pkg/errors"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// CatalogEntry is what the catalog knows about an item name.
type CatalogEntry struct {
	ItemID uint
	Price  decimal.Decimal
}

// Catalog resolves item names to ids and authoritative prices.
type Catalog struct {
	Items *repository.ItemRepository
}

func NewCatalog(items *repository.ItemRepository) *Catalog {
	return &Catalog{Items: items}
}

func (c *Catalog) WithTx(tx *gorm.DB) *Catalog {
	return NewCatalog(c.Items.WithTx(tx))
}

// Resolve returns an error matching ErrItemNotFound when no item has that name.
func (c *Catalog) Resolve(name string) (CatalogEntry, error) {
	it, err := c.Items.FindByName(name)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return CatalogEntry{}, missingItemError{name: name}
		}
		return CatalogEntry{}, err
	}
	return CatalogEntry{ItemID: it.ID, Price: it.Price}, nil
}
