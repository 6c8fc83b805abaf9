package order

import (
	"errors"
	"fmt"

	"orders/internal/pkg/errs"
	"orders/internal/pkg/guard"

	"github.com/shopspring/decimal"
)

var (
	// ErrEntryIsNotConstructed is returned when an Entry was not created through NewEntry.
	ErrEntryIsNotConstructed = errors.New("Entry must be created via NewEntry constructor")
)

// Entry is one line item of an order: a product, how many units, and the unit price.
// Entry is an immutable value object.
type Entry struct { //nolint:recvcheck //setters are only used during construction
	productCode string
	productName string
	quantity    int
	price       decimal.Decimal

	guard guard.ConstructorGuard
}

// NewEntry creates a validated line item.
//
// Rules:
//   - productCode must not be empty
//   - quantity must be greater than 0
//   - price must not be negative
//
// Example:
//
//	entry, err := order.NewEntry("P1", "Product 1", 2, decimal.NewFromInt(50))
//	if err != nil {
//	    // Handle validation error
//	}
func NewEntry(productCode, productName string, quantity int, price decimal.Decimal) (Entry, error) {
	entry := Entry{
		productName: productName,
		guard:       guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		entry.setProductCode(productCode),
		entry.setQuantity(quantity),
		entry.setPrice(price),
	); err != nil {
		return Entry{}, err
	}

	return entry, nil
}

// Validate ensures the entry was created through NewEntry.
func (e Entry) Validate() error {
	return e.guard.Validate(ErrEntryIsNotConstructed)
}

func (e Entry) ProductCode() string {
	return e.productCode
}

func (e Entry) ProductName() string {
	return e.productName
}

func (e Entry) Quantity() int {
	return e.quantity
}

func (e Entry) Price() decimal.Decimal {
	return e.price
}

// Total returns quantity × price.
func (e Entry) Total() decimal.Decimal {
	return e.price.Mul(decimal.NewFromInt(int64(e.quantity)))
}

func (e Entry) String() string {
	return fmt.Sprintf("%s x%d @ %s", e.productCode, e.quantity, e.price.String())
}

func (e *Entry) setProductCode(productCode string) error {
	if productCode == "" {
		return errs.NewValueIsRequiredError("productCode")
	}
	e.productCode = productCode
	return nil
}

func (e *Entry) setQuantity(quantity int) error {
	if quantity <= 0 {
		return errs.NewValueIsInvalidErrorWithCause("quantity", fmt.Errorf("%d is not greater than 0", quantity))
	}
	e.quantity = quantity
	return nil
}

func (e *Entry) setPrice(price decimal.Decimal) error {
	if price.IsNegative() {
		return errs.NewValueIsInvalidErrorWithCause("price", fmt.Errorf("%s is negative", price.String()))
	}
	e.price = price
	return nil
}

// CalculateAmount sums quantity × price over entries. The amount of an order is
// always recomputed with this function, never adjusted incrementally.
func CalculateAmount(entries []Entry) decimal.Decimal {
	total := decimal.Zero
	for _, e := range entries {
		total = total.Add(e.Total())
	}
	return total
}
