package configs

import (
	"os"

	"orderapi/entity"

	"github.com/pkg/errors"
	"github.com/shopspring/decimal"
	log "github.com/sirupsen/logrus"
	"gopkg.in/yaml.v3"
	"gorm.io/gorm"
)

// SeedFile is the layout of a catalog seed file:
//
//	customers:
//	  - name: Alice
//	    phone: "555-0100"
//	items:
//	  - name: Coffee
//	    price: 3.50
type SeedFile struct {
	Customers []SeedCustomer `yaml:"customers"`
	Items     []SeedItem     `yaml:"items"`
}

type SeedCustomer struct {
	Name  string `yaml:"name"`
	Phone string `yaml:"phone"`
}

type SeedItem struct {
	Name  string    `yaml:"name"`
	Price seedPrice `yaml:"price"`
}

type seedPrice struct{ decimal.Decimal }

func (p *seedPrice) UnmarshalYAML(node *yaml.Node) error {
	d, err := decimal.NewFromString(node.Value)
	if err != nil {
		return errors.Wrapf(err, "line %d: invalid price %q", node.Line, node.Value)
	}
	p.Decimal = d
	return nil
}

type SeedResult struct {
	Customers int
	Items     int
}

// LoadSeedFile parses and validates a seed file without touching the database.
func LoadSeedFile(path string) (*SeedFile, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.Wrap(err, "read seed file")
	}

	var f SeedFile
	if err := yaml.Unmarshal(data, &f); err != nil {
		return nil, errors.Wrapf(err, "parsing %s", path)
	}

	for i, c := range f.Customers {
		if c.Name == "" || c.Phone == "" {
			return nil, errors.Errorf("customer #%d: name and phone are required", i+1)
		}
	}
	for i, it := range f.Items {
		if it.Name == "" {
			return nil, errors.Errorf("item #%d: name is required", i+1)
		}
		if it.Price.IsNegative() {
			return nil, errors.Errorf("item %q: price must not be negative", it.Name)
		}
	}
	return &f, nil
}

// Seed inserts customers and items that are not there yet. Rows are matched by
// phone and by item name, existing rows are left untouched.
func Seed(db *gorm.DB, f *SeedFile) (SeedResult, error) {
	var res SeedResult
	err := db.Transaction(func(tx *gorm.DB) error {
		for _, c := range f.Customers {
			created, err := createMissing(tx, &entity.Customer{Name: c.Name, Phone: c.Phone}, "phone = ?", c.Phone)
			if err != nil {
				return errors.Wrapf(err, "seed customer %s", c.Phone)
			}
			if created {
				res.Customers++
			}
		}

		for _, it := range f.Items {
			created, err := createMissing(tx, &entity.Item{Name: it.Name, Price: it.Price.Decimal}, "name = ?", it.Name)
			if err != nil {
				return errors.Wrapf(err, "seed item %s", it.Name)
			}
			if created {
				res.Items++
			}
		}
		return nil
	})
	if err != nil {
		return SeedResult{}, err
	}

	log.WithFields(log.Fields{"customers": res.Customers, "items": res.Items}).Info("seed applied")
	return res, nil
}

func createMissing[T any](tx *gorm.DB, row *T, query string, args ...interface{}) (bool, error) {
	var cnt int64
	if err := tx.Model(new(T)).Where(query, args...).Count(&cnt).Error; err != nil {
		return false, err
	}
	if cnt > 0 {
		return false, nil
	}
	return true, tx.Create(row).Error
}
