package order

import (
	"errors"
	"fmt"
	"slices"

	"orders/internal/core/domain/model/kernel"
	"orders/internal/pkg/errs"

	"github.com/shopspring/decimal"
)

var (
	// ErrOrderIsNotConstructed is returned when an Order instance was not created through
	// NewOrder or RestoreOrder. This ensures all orders are properly validated.
	ErrOrderIsNotConstructed = errors.New("Order must be created via NewOrder constructor")
)

// Order represents a customer purchase: line items, a derived total and a lifecycle
// status. It is the aggregate root of the order model.
//
// Order follows these invariants:
//   - Must have a store-assigned identifier that never changes
//   - Must have at least one entry when created
//   - Amount always equals the sum of quantity × price over the entries
//   - Order date is set once and never changes
//   - Status only moves along the graph defined by Status
//   - Nothing changes once the status is terminal
//
// Order is a mutable aggregate; the store keeps its own copy (see Clone) so callers
// never share an instance with it.
type Order struct {
	// id is the store-assigned identifier
	id kernel.ID

	// description is optional free text
	description string

	// amount is derived from entries
	amount decimal.Decimal

	// orderDate is the calendar date the order was placed
	orderDate kernel.Date

	// status represents the current state in the order lifecycle
	status Status

	// entries are the line items, in the order they were supplied
	entries []Entry

	// isConstructed ensures the order was created via NewOrder or RestoreOrder
	isConstructed bool
}

// NewOrder creates a new Order in Created status.
//
// Parameters:
//   - id: identifier allocated by the order store
//   - description: optional free text
//   - orderDate: the date the order was placed (must be set)
//   - entries: line items (at least one)
//
// Example:
//
//	entry, _ := order.NewEntry("P1", "Product 1", 1, decimal.NewFromInt(100))
//	date, _ := kernel.NewDate(2024, time.January, 1)
//	o, err := order.NewOrder(store.NextID(), "first order", date, []order.Entry{entry})
//	if err != nil {
//	    // Handle validation error
//	}
//	fmt.Println(o.Amount()) // 100
func NewOrder(id kernel.ID, description string, orderDate kernel.Date, entries []Entry) (*Order, error) {
	order := &Order{
		description:   description,
		status:        Created,
		isConstructed: true,
	}

	if err := errors.Join(
		order.setID(id),
		order.setOrderDate(orderDate),
		order.setEntries(entries),
	); err != nil {
		return nil, err
	}

	return order, nil
}

// RestoreOrder rebuilds an order from previously stored fields. Unlike NewOrder it
// accepts any valid status. The amount is recomputed from the entries.
func RestoreOrder(
	id kernel.ID,
	description string,
	orderDate kernel.Date,
	status Status,
	entries []Entry,
) (*Order, error) {
	order := &Order{
		description:   description,
		isConstructed: true,
	}

	if err := errors.Join(
		order.setID(id),
		order.setOrderDate(orderDate),
		order.setStatus(status),
		order.setEntries(entries),
	); err != nil {
		return nil, err
	}

	return order, nil
}

// Validate ensures the Order instance was properly constructed.
func (o *Order) Validate() error {
	if o == nil || !o.isConstructed {
		return ErrOrderIsNotConstructed
	}

	return nil
}

// IsEqual compares two orders by their identifiers.
func (o *Order) IsEqual(other *Order) bool {
	return other != nil && o.id == other.id
}

func (o *Order) ID() kernel.ID {
	return o.id
}

func (o *Order) Description() string {
	return o.description
}

func (o *Order) Amount() decimal.Decimal {
	return o.amount
}

func (o *Order) OrderDate() kernel.Date {
	return o.orderDate
}

func (o *Order) Status() Status {
	return o.status
}

// Entries returns a copy of the line items.
func (o *Order) Entries() []Entry {
	return slices.Clone(o.entries)
}

// Clone returns an independent copy of the order.
func (o *Order) Clone() *Order {
	if o == nil {
		return nil
	}
	c := *o
	c.entries = slices.Clone(o.entries)
	return &c
}

// ValidateUpdate fails with StateIsTerminalError when the order is Completed or
// Cancelled: no field of a terminal order may change.
func (o *Order) ValidateUpdate() error {
	if o.status.IsTerminal() {
		return errs.NewStateIsTerminalErrorWithCause(
			o.label(),
			o.status.String(),
			errors.New("cannot update completed or cancelled order"),
		)
	}
	return nil
}

// ValidateDelete fails with StateIsTerminalError when the order is Completed.
// Cancelled orders stay deletable.
func (o *Order) ValidateDelete() error {
	if o.status == Completed {
		return errs.NewStateIsTerminalErrorWithCause(
			o.label(),
			o.status.String(),
			errors.New("cannot delete completed order"),
		)
	}
	return nil
}

// ChangeDescription replaces the description.
func (o *Order) ChangeDescription(description string) error {
	if err := o.ValidateUpdate(); err != nil {
		return err
	}
	o.description = description
	return nil
}

// ReplaceEntries swaps the line items and recomputes the amount in the same step.
func (o *Order) ReplaceEntries(entries []Entry) error {
	if err := o.ValidateUpdate(); err != nil {
		return err
	}
	return o.setEntries(entries)
}

// ChangeStatus moves the order to status. Requesting the current status is a no-op;
// anything else must be an edge of the status graph.
//
// Example:
//
//	if err := o.ChangeStatus(order.Processing); err != nil {
//	    // errs.ErrTransitionIsInvalid
//	}
func (o *Order) ChangeStatus(status Status) error {
	if status == o.status {
		return nil
	}

	next, err := o.status.TransitionTo(status)
	if err != nil {
		return err
	}

	o.status = next
	return nil
}

func (o *Order) String() string {
	return fmt.Sprintf("Order{id=%s, description=%q, amount=%s, orderDate=%s, status=%s, entries=%v}",
		o.id, o.description, o.amount.String(), o.orderDate, o.status, o.entries)
}

func (o *Order) label() string {
	return "order " + o.id.String()
}

func (o *Order) setID(id kernel.ID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	o.id = id
	return nil
}

func (o *Order) setOrderDate(orderDate kernel.Date) error {
	if orderDate.IsZero() {
		return errs.NewValueIsRequiredError("orderDate")
	}
	o.orderDate = orderDate
	return nil
}

func (o *Order) setStatus(status Status) error {
	if err := status.Validate(); err != nil {
		return err
	}
	o.status = status
	return nil
}

// setEntries validates and stores a copy of entries together with their amount.
func (o *Order) setEntries(entries []Entry) error {
	if len(entries) == 0 {
		return errs.NewValueIsRequiredErrorWithCause("entries", errors.New("order must have at least one entry"))
	}

	for i, e := range entries {
		if err := e.Validate(); err != nil {
			return errs.NewValueIsInvalidErrorWithCause(fmt.Sprintf("entries[%d]", i), err)
		}
	}

	o.entries = slices.Clone(entries)
	o.amount = CalculateAmount(o.entries)
	return nil
}
