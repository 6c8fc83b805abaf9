package commands

import (
	"errors"
	"slices"

	"orders/internal/core/domain/model/kernel"
	"orders/internal/core/domain/model/order"
	"orders/internal/pkg/guard"
)

var (
	ErrUpdateOrderCommandIsNotConstructed = errors.New(
		"UpdateOrderCommand must be created via NewUpdateOrderCommand constructor",
	)
)

// UpdateOrderCommand is a partial patch of an order. Description, entries and status
// are each optional; nil means "leave unchanged". An empty entries slice is treated
// the same as nil.
//
// Example:
//
//	processing := order.Processing
//	cmd, err := NewUpdateOrderCommand(id, nil, nil, &processing)
//	if err != nil {
//	    return err
//	}
//	updated, err := handler.Handle(ctx, cmd)
type UpdateOrderCommand struct { //nolint:recvcheck //using for validation
	orderID     kernel.ID
	description *string
	entries     []order.Entry
	status      *order.Status

	guard guard.ConstructorGuard
}

// NewUpdateOrderCommand creates a patch for the order with the given id.
func NewUpdateOrderCommand(
	orderID kernel.ID,
	description *string,
	entries []order.Entry,
	status *order.Status,
) (UpdateOrderCommand, error) {
	cmd := UpdateOrderCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setOrderID(orderID),
		cmd.setDescription(description),
		cmd.setEntries(entries),
		cmd.setStatus(status),
	); err != nil {
		return UpdateOrderCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c UpdateOrderCommand) Validate() error {
	return c.guard.Validate(ErrUpdateOrderCommandIsNotConstructed)
}

func (c UpdateOrderCommand) OrderID() kernel.ID {
	return c.orderID
}

// Description returns the new description and whether one was supplied.
func (c UpdateOrderCommand) Description() (string, bool) {
	if c.description == nil {
		return "", false
	}
	return *c.description, true
}

// Entries returns the replacement line items and whether any were supplied.
func (c UpdateOrderCommand) Entries() ([]order.Entry, bool) {
	if len(c.entries) == 0 {
		return nil, false
	}
	return slices.Clone(c.entries), true
}

// Status returns the requested status and whether one was supplied.
func (c UpdateOrderCommand) Status() (order.Status, bool) {
	if c.status == nil {
		return order.Unknown, false
	}
	return *c.status, true
}

func (c *UpdateOrderCommand) setOrderID(orderID kernel.ID) error {
	if err := orderID.Validate(); err != nil {
		return err
	}
	c.orderID = orderID
	return nil
}

func (c *UpdateOrderCommand) setDescription(description *string) error {
	if description != nil {
		d := *description
		c.description = &d
	}
	return nil
}

func (c *UpdateOrderCommand) setEntries(entries []order.Entry) error {
	if err := validateEntries(entries); err != nil {
		return err
	}
	c.entries = slices.Clone(entries)
	return nil
}

func (c *UpdateOrderCommand) setStatus(status *order.Status) error {
	if status == nil {
		return nil
	}
	if err := status.Validate(); err != nil {
		return err
	}
	s := *status
	c.status = &s
	return nil
}
