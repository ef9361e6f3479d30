package services_test

import (
	"testing"

	"orderapi/entity"
	"orderapi/services"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCustomerService_CRUD(t *testing.T) {
	f := setup(t)

	id, err := f.customers.Create(&services.CustomerIn{Name: "Alice", Phone: "555-0100"})
	require.NoError(t, err)

	c, err := f.customers.Get(id)
	require.NoError(t, err)
	assert.Equal(t, "Alice", c.Name)

	require.NoError(t, f.customers.Update(id, &services.CustomerIn{Name: "Alicia", Phone: "555-0101"}))
	c, err = f.customers.Get(id)
	require.NoError(t, err)
	assert.Equal(t, "Alicia", c.Name)
	assert.Equal(t, "555-0101", c.Phone)

	require.NoError(t, f.customers.Delete(id))
	_, err = f.customers.Get(id)
	assert.ErrorIs(t, err, services.ErrCustomerNotFound)
}

func TestCustomerService_PhoneIsUnique(t *testing.T) {
	f := setup(t)

	first := f.customer(t, "555-0100")
	_, err := f.customers.Create(&services.CustomerIn{Name: "Bob", Phone: "555-0100"})
	assert.ErrorIs(t, err, services.ErrPhoneTaken)
	assert.EqualValues(t, 1, f.count(t, &entity.Customer{}))

	second := f.customer(t, "555-0200")
	err = f.customers.Update(second, &services.CustomerIn{Name: "Bob", Phone: "555-0100"})
	assert.ErrorIs(t, err, services.ErrPhoneTaken)

	// same phone on the same row is not a conflict
	require.NoError(t, f.customers.Update(first, &services.CustomerIn{Name: "Alice B", Phone: "555-0100"}))
}

func TestCustomerService_MissingAndInUse(t *testing.T) {
	f := setup(t)

	assert.ErrorIs(t, f.customers.Update(7, &services.CustomerIn{Name: "x", Phone: "y"}), services.ErrCustomerNotFound)
	assert.ErrorIs(t, f.customers.Delete(7), services.ErrCustomerNotFound)

	cust := f.customer(t, "555-0100")
	_, err := f.orders.Create(&services.OrderIn{CustomerID: cust})
	require.NoError(t, err)

	assert.ErrorIs(t, f.customers.Delete(cust), services.ErrCustomerInUse)
	assert.EqualValues(t, 1, f.count(t, &entity.Customer{}))
}

func TestItemService_CRUD(t *testing.T) {
	f := setup(t)

	id, err := f.items.Create(&services.ItemIn{Name: "Latte", Price: dec("4.2")})
	require.NoError(t, err)

	it, err := f.items.Get(id)
	require.NoError(t, err)
	assert.Equal(t, "Latte", it.Name)
	assert.Equal(t, "4.2", it.Price.String())

	require.NoError(t, f.items.Update(id, &services.ItemIn{Name: "Flat White", Price: dec("0")}))
	it, err = f.items.Get(id)
	require.NoError(t, err)
	assert.Equal(t, "Flat White", it.Name)
	assert.True(t, it.Price.IsZero())

	require.NoError(t, f.items.Delete(id))
	_, err = f.items.Get(id)
	assert.ErrorIs(t, err, services.ErrItemNotFound)
	assert.ErrorIs(t, f.items.Delete(id), services.ErrItemNotFound)
}

func TestItemService_Validation(t *testing.T) {
	f := setup(t)

	_, err := f.items.Create(&services.ItemIn{Name: "Bad", Price: dec("-1")})
	assert.ErrorIs(t, err, services.ErrInvalidPrice)

	id := f.item(t, "A", "1")
	f.item(t, "B", "2")

	_, err = f.items.Create(&services.ItemIn{Name: "A", Price: dec("3")})
	assert.ErrorIs(t, err, services.ErrItemNameTaken)
	assert.ErrorIs(t, f.items.Update(id, &services.ItemIn{Name: "B", Price: dec("1")}), services.ErrItemNameTaken)
	assert.ErrorIs(t, f.items.Update(id, &services.ItemIn{Name: "A", Price: dec("-0.01")}), services.ErrInvalidPrice)
	assert.ErrorIs(t, f.items.Update(99, &services.ItemIn{Name: "Z", Price: dec("1")}), services.ErrItemNotFound)
}

func TestItemService_DeleteReferencedItem(t *testing.T) {
	f := setup(t)
	cust := f.customer(t, "555-0100")
	id := f.item(t, "A", "10")

	_, err := f.orders.Create(&services.OrderIn{
		CustomerID: cust,
		Items:      []services.OrderLineIn{{Name: "A", Price: dec("10")}},
	})
	require.NoError(t, err)

	assert.ErrorIs(t, f.items.Delete(id), services.ErrItemInUse)
	assert.EqualValues(t, 1, f.count(t, &entity.Item{}))
}

func TestItemService_PriceKeepsEveryDigit(t *testing.T) {
	f := setup(t)
	cust := f.customer(t, "555-0100")
	id := f.item(t, "X", "12345678.123456789")

	it, err := f.items.Get(id)
	require.NoError(t, err)
	assert.Equal(t, "12345678.123456789", it.Price.String())

	out, err := f.orders.Create(&services.OrderIn{
		CustomerID: cust,
		Items:      []services.OrderLineIn{{Name: "X", Price: dec("12345678.123456789")}},
	})
	require.NoError(t, err)
	assert.Empty(t, out.Adjustments)

	out, err = f.orders.Create(&services.OrderIn{
		CustomerID: cust,
		Items:      []services.OrderLineIn{{Name: "X", Price: dec("12345678.12345679")}},
	})
	require.NoError(t, err)
	assert.Equal(t, []string{"Item 'X' price adjusted from 12345678.12345679 to 12345678.123456789."}, out.Adjustments)

	detail, err := f.orders.Get(out.ID)
	require.NoError(t, err)
	require.Len(t, detail.Items, 1)
	assert.Equal(t, "12345678.123456789", detail.Items[0].Price.String())
}
