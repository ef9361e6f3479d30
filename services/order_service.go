package services

import (
	"fmt"
	"time"

	"orderapi/entity"
	"orderapi/repository"

	"github.com/pkg/errors"
	"github.com/shopspring/decimal"
	log "github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

type OrderService struct {
	DB        *gorm.DB
	Repo      *repository.OrderRepository
	Customers *repository.CustomerRepository
	Catalog   *Catalog

	Now func() time.Time
}

func NewOrderService(
	db *gorm.DB,
	repo *repository.OrderRepository,
	customers *repository.CustomerRepository,
	catalog *Catalog,
) *OrderService {
	return &OrderService{DB: db, Repo: repo, Customers: customers, Catalog: catalog, Now: time.Now}
}

// ----- DTOs from Controller -----
type OrderLineIn struct {
	Name  string           `json:"name" binding:"required"`
	Price *decimal.Decimal `json:"price" binding:"required"`
}

// OrderIn is the body of create and update. Notes stays nil when the client
// leaves it out; an explicit "" is kept as an empty string.
type OrderIn struct {
	CustomerID uint          `json:"customer_id" binding:"required"`
	Items      []OrderLineIn `json:"items" binding:"required,dive"`
	Notes      *string       `json:"notes"`
}

type OrderResult struct {
	ID          uint     `json:"id"`
	Adjustments []string `json:"adjustments,omitempty"`
}

type OrderDetail struct {
	ID         uint                   `json:"id"`
	CustomerID uint                   `json:"customer_id"`
	Notes      *string                `json:"notes"`
	Timestamp  int64                  `json:"timestamp"`
	Items      []repository.OrderLine `json:"items"`
}

// orderTx groups the repositories bound to one transaction.
type orderTx struct {
	orders    *repository.OrderRepository
	customers *repository.CustomerRepository
	catalog   *Catalog
}

func (s *OrderService) bind(tx *gorm.DB) orderTx {
	return orderTx{
		orders:    s.Repo.WithTx(tx),
		customers: s.Customers.WithTx(tx),
		catalog:   s.Catalog.WithTx(tx),
	}
}

// ----- Create -----

// Create inserts the order and one line per submitted item. Prices that differ
// from the catalog are replaced and reported. Nothing is persisted unless every
// line resolves.
func (s *OrderService) Create(in *OrderIn) (*OrderResult, error) {
	var out OrderResult
	err := s.DB.Transaction(func(tx *gorm.DB) error {
		t := s.bind(tx)

		if err := t.requireCustomer(in.CustomerID); err != nil {
			return err
		}

		order := entity.Order{
			CustomerID: in.CustomerID,
			Timestamp:  s.Now().Unix(),
			Notes:      in.Notes,
		}
		if err := t.orders.Insert(&order); err != nil {
			return err
		}

		adjustments, err := t.reconcile(order.ID, in.Items)
		if err != nil {
			return err
		}

		out = OrderResult{ID: order.ID, Adjustments: adjustments}
		return nil
	})
	if err != nil {
		return nil, err
	}

	log.WithFields(log.Fields{"order": out.ID, "lines": len(in.Items), "adjusted": len(out.Adjustments)}).Info("order created")
	return &out, nil
}

// ----- Update -----

// Update rewrites customer and notes and replaces the whole set of lines.
func (s *OrderService) Update(id uint, in *OrderIn) (*OrderResult, error) {
	var out OrderResult
	err := s.DB.Transaction(func(tx *gorm.DB) error {
		t := s.bind(tx)

		ok, err := t.orders.Exists(id)
		if err != nil {
			return err
		}
		if !ok {
			return ErrOrderNotFound
		}
		if err := t.requireCustomer(in.CustomerID); err != nil {
			return err
		}

		if err := t.orders.Update(id, map[string]interface{}{
			"customer_id": in.CustomerID,
			"notes":       in.Notes,
		}); err != nil {
			return err
		}

		if err := t.orders.DeleteOrderItems(id); err != nil {
			return err
		}

		adjustments, err := t.reconcile(id, in.Items)
		if err != nil {
			return err
		}

		out = OrderResult{ID: id, Adjustments: adjustments}
		return nil
	})
	if err != nil {
		return nil, err
	}

	log.WithFields(log.Fields{"order": id, "lines": len(in.Items), "adjusted": len(out.Adjustments)}).Info("order updated")
	return &out, nil
}

// ----- Detail -----
func (s *OrderService) Get(id uint) (*OrderDetail, error) {
	o, err := s.Repo.Get(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrOrderNotFound
		}
		return nil, err
	}

	lines, err := s.Repo.ListLines(o.ID)
	if err != nil {
		return nil, err
	}

	return &OrderDetail{
		ID: o.ID, CustomerID: o.CustomerID, Notes: o.Notes, Timestamp: o.Timestamp, Items: lines,
	}, nil
}

// ----- Delete -----
func (s *OrderService) Delete(id uint) error {
	return s.DB.Transaction(func(tx *gorm.DB) error {
		t := s.bind(tx)

		ok, err := t.orders.Exists(id)
		if err != nil {
			return err
		}
		if !ok {
			return ErrOrderNotFound
		}

		if err := t.orders.DeleteOrderItems(id); err != nil {
			return err
		}
		_, err = t.orders.Delete(id)
		return err
	})
}

// ---------------- Helpers ----------------

func (t orderTx) requireCustomer(id uint) error {
	ok, err := t.customers.Exists(id)
	if err != nil {
		return err
	}
	if !ok {
		return ErrCustomerNotFound
	}
	return nil
}

// reconcile resolves every submitted line against the catalog, in submission
// order, and links the resolved item to the order. The submitted price is only
// compared, never stored.
func (t orderTx) reconcile(orderID uint, lines []OrderLineIn) ([]string, error) {
	adjustments := []string{}
	for _, line := range lines {
		entry, err := t.catalog.Resolve(line.Name)
		if err != nil {
			return nil, err
		}

		if !line.Price.Equal(entry.Price) {
			adjustments = append(adjustments, PriceAdjustment(line.Name, *line.Price, entry.Price))
			log.WithFields(log.Fields{
				"order":     orderID,
				"item":      line.Name,
				"submitted": line.Price.String(),
				"catalog":   entry.Price.String(),
			}).Debug("price adjusted")
		}

		if err := t.orders.CreateOrderItem(&entity.OrderItem{OrderID: orderID, ItemID: entry.ItemID}); err != nil {
			return nil, err
		}
	}
	return adjustments, nil
}

// PriceAdjustment is the notice returned to the client for one corrected line.
func PriceAdjustment(name string, submitted, authoritative decimal.Decimal) string {
	return fmt.Sprintf("Item '%s' price adjusted from %s to %s.", name, submitted.String(), authoritative.String())
}
