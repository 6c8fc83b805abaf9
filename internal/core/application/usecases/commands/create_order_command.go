package commands

import (
	"errors"
	"fmt"
	"slices"

	"orders/internal/core/domain/model/kernel"
	"orders/internal/core/domain/model/order"
	"orders/internal/pkg/errs"
	"orders/internal/pkg/guard"
)

var (
	ErrCreateOrderCommandIsNotConstructed = errors.New(
		"CreateOrderCommand must be created via NewCreateOrderCommand constructor",
	)
)

// CreateOrderCommand represents a request to place a new order.
//
// Example:
//
//	entry, _ := order.NewEntry("P1", "Product 1", 1, decimal.NewFromInt(100))
//	cmd, err := NewCreateOrderCommand("birthday gift", kernel.Date{}, []order.Entry{entry})
//	if err != nil {
//	    return fmt.Errorf("invalid order data: %w", err)
//	}
//
//	created, err := handler.Handle(ctx, cmd)
type CreateOrderCommand struct { //nolint:recvcheck //using for validation
	description string
	orderDate   kernel.Date
	entries     []order.Entry

	guard guard.ConstructorGuard
}

// NewCreateOrderCommand creates a command to place an order. A zero orderDate means
// "today" and is resolved by the handler's clock. Fails with ValueIsRequiredError
// when entries are absent or empty.
func NewCreateOrderCommand(description string, orderDate kernel.Date, entries []order.Entry) (CreateOrderCommand, error) {
	cmd := CreateOrderCommand{
		description: description,
		orderDate:   orderDate,
		guard:       guard.NewConstructorGuard(),
	}

	if err := cmd.setEntries(entries); err != nil {
		return CreateOrderCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c CreateOrderCommand) Validate() error {
	return c.guard.Validate(ErrCreateOrderCommandIsNotConstructed)
}

func (c CreateOrderCommand) Description() string {
	return c.description
}

// OrderDate returns the requested date; zero when none was supplied.
func (c CreateOrderCommand) OrderDate() kernel.Date {
	return c.orderDate
}

// Entries returns a copy of the line items.
func (c CreateOrderCommand) Entries() []order.Entry {
	return slices.Clone(c.entries)
}

func (c *CreateOrderCommand) setEntries(entries []order.Entry) error {
	if len(entries) == 0 {
		return errs.NewValueIsRequiredErrorWithCause("entries", errors.New("order must have at least one entry"))
	}
	if err := validateEntries(entries); err != nil {
		return err
	}

	c.entries = slices.Clone(entries)
	return nil
}

func validateEntries(entries []order.Entry) error {
	for i, e := range entries {
		if err := e.Validate(); err != nil {
			return errs.NewValueIsInvalidErrorWithCause(fmt.Sprintf("entries[%d]", i), err)
		}
	}
	return nil
}
