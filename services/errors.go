package services

import (
	"fmt"

	"github.com/pkg/errors"
)

// errors the controllers switch on
var (
	ErrCustomerNotFound = errors.New("customer not found")
	ErrItemNotFound     = errors.New("item not found")
	ErrOrderNotFound    = errors.New("order not found")

	ErrPhoneTaken    = errors.New("customer with this phone already exists")
	ErrItemNameTaken = errors.New("item with this name already exists")

	ErrCustomerInUse = errors.New("customer still has orders")
	ErrItemInUse     = errors.New("item is still part of an order")

	ErrInvalidPrice = errors.New("price must not be negative")
)

// missingItemError names the catalog item an order referred to.
type missingItemError struct{ name string }

func (e missingItemError) Error() string { return fmt.Sprintf("item '%s' not found", e.name) }

func (e missingItemError) Is(target error) bool { return target == ErrItemNotFound }
