package repository_test

import (
	"path/filepath"
	"testing"

	"orderapi/configs"
	"orderapi/entity"
	"orderapi/repository"

	"github.com/pkg/errors"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := configs.ConnectionDB(configs.DriverSQLite, filepath.Join(t.TempDir(), "test.db"))
	require.NoError(t, err)
	require.NoError(t, configs.SetupDatabase(db))
	t.Cleanup(func() {
		if sqlDB, err := db.DB(); err == nil {
			sqlDB.Close()
		}
	})
	return db
}

func TestGateway_CRUD(t *testing.T) {
	db := newTestDB(t)
	repo := repository.NewCustomerRepository(db)

	c := entity.Customer{Name: "Alice", Phone: "555-0100"}
	require.NoError(t, repo.Insert(&c))
	require.NotZero(t, c.ID)

	got, err := repo.Get(c.ID)
	require.NoError(t, err)
	assert.Equal(t, "Alice", got.Name)
	assert.Equal(t, "555-0100", got.Phone)

	require.NoError(t, repo.Update(c.ID, map[string]interface{}{"name": "Alicia"}))
	got, err = repo.Get(c.ID)
	require.NoError(t, err)
	assert.Equal(t, "Alicia", got.Name)

	ok, err := repo.Exists(c.ID)
	require.NoError(t, err)
	assert.True(t, ok)

	deleted, err := repo.Delete(c.ID)
	require.NoError(t, err)
	assert.True(t, deleted)

	_, err = repo.Get(c.ID)
	assert.True(t, errors.Is(err, gorm.ErrRecordNotFound))

	deleted, err = repo.Delete(c.ID)
	require.NoError(t, err)
	assert.False(t, deleted)
}

func TestGateway_DuplicatePhoneIsUniqueViolation(t *testing.T) {
	db := newTestDB(t)
	repo := repository.NewCustomerRepository(db)

	require.NoError(t, repo.Insert(&entity.Customer{Name: "Alice", Phone: "555-0100"}))
	err := repo.Insert(&entity.Customer{Name: "Bob", Phone: "555-0100"})
	require.Error(t, err)
	assert.True(t, errors.Is(err, gorm.ErrDuplicatedKey))

	var cnt int64
	require.NoError(t, db.Model(&entity.Customer{}).Count(&cnt).Error)
	assert.EqualValues(t, 1, cnt)
}

func TestItemRepository_FindByName(t *testing.T) {
	db := newTestDB(t)
	repo := repository.NewItemRepository(db)

	require.NoError(t, repo.Insert(&entity.Item{Name: "Coffee", Price: decimal.RequireFromString("3.5")}))

	it, err := repo.FindByName("Coffee")
	require.NoError(t, err)
	assert.True(t, it.Price.Equal(decimal.RequireFromString("3.5")), "price %s", it.Price)

	_, err = repo.FindByName("Tea")
	assert.True(t, errors.Is(err, gorm.ErrRecordNotFound))

	err = repo.Insert(&entity.Item{Name: "Coffee", Price: decimal.NewFromInt(1)})
	assert.True(t, errors.Is(err, gorm.ErrDuplicatedKey))
}

func TestOrderRepository_ListLinesUsesCurrentCatalogPrice(t *testing.T) {
	db := newTestDB(t)
	customers := repository.NewCustomerRepository(db)
	items := repository.NewItemRepository(db)
	orders := repository.NewOrderRepository(db)

	c := entity.Customer{Name: "Alice", Phone: "555-0100"}
	require.NoError(t, customers.Insert(&c))
	a := entity.Item{Name: "A", Price: decimal.NewFromInt(10)}
	b := entity.Item{Name: "B", Price: decimal.NewFromInt(20)}
	require.NoError(t, items.Insert(&a))
	require.NoError(t, items.Insert(&b))

	o := entity.Order{CustomerID: c.ID, Timestamp: 1700000000}
	require.NoError(t, orders.Insert(&o))
	for _, id := range []uint{b.ID, a.ID, b.ID} {
		require.NoError(t, orders.CreateOrderItem(&entity.OrderItem{OrderID: o.ID, ItemID: id}))
	}

	require.NoError(t, items.Update(b.ID, map[string]interface{}{"price": decimal.NewFromInt(25)}))

	lines, err := orders.ListLines(o.ID)
	require.NoError(t, err)
	require.Len(t, lines, 3)
	assert.Equal(t, []string{"B", "A", "B"}, []string{lines[0].Name, lines[1].Name, lines[2].Name})
	assert.Equal(t, "25", lines[0].Price.String())
	assert.Equal(t, "10", lines[1].Price.String())

	require.NoError(t, orders.DeleteOrderItems(o.ID))
	lines, err = orders.ListLines(o.ID)
	require.NoError(t, err)
	assert.Empty(t, lines)
}

func TestOrderRepository_LineNeedsExistingItem(t *testing.T) {
	db := newTestDB(t)
	customers := repository.NewCustomerRepository(db)
	orders := repository.NewOrderRepository(db)

	c := entity.Customer{Name: "Alice", Phone: "555-0100"}
	require.NoError(t, customers.Insert(&c))
	o := entity.Order{CustomerID: c.ID, Timestamp: 1}
	require.NoError(t, orders.Insert(&o))

	err := orders.CreateOrderItem(&entity.OrderItem{OrderID: o.ID, ItemID: 999})
	require.Error(t, err)
	assert.True(t, errors.Is(err, gorm.ErrForeignKeyViolated))
}

func TestRepositories_ReferenceChecks(t *testing.T) {
	db := newTestDB(t)
	customers := repository.NewCustomerRepository(db)
	items := repository.NewItemRepository(db)
	orders := repository.NewOrderRepository(db)

	c := entity.Customer{Name: "Alice", Phone: "555-0100"}
	require.NoError(t, customers.Insert(&c))
	it := entity.Item{Name: "A", Price: decimal.NewFromInt(1)}
	require.NoError(t, items.Insert(&it))

	busy, err := customers.HasOrders(c.ID)
	require.NoError(t, err)
	assert.False(t, busy)
	used, err := items.IsReferenced(it.ID)
	require.NoError(t, err)
	assert.False(t, used)

	o := entity.Order{CustomerID: c.ID, Timestamp: 1}
	require.NoError(t, orders.Insert(&o))
	require.NoError(t, orders.CreateOrderItem(&entity.OrderItem{OrderID: o.ID, ItemID: it.ID}))

	busy, err = customers.HasOrders(c.ID)
	require.NoError(t, err)
	assert.True(t, busy)
	used, err = items.IsReferenced(it.ID)
	require.NoError(t, err)
	assert.True(t, used)

	_, err = items.Delete(it.ID)
	assert.True(t, errors.Is(err, gorm.ErrForeignKeyViolated))
}
