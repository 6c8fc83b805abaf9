package http

import (
	"orders/internal/core/domain/model/kernel"
	"orders/internal/core/domain/model/order"

	"github.com/shopspring/decimal"
)

// Entry is a line item as it travels over the wire. Price accepts a JSON number
// or a decimal string and is always written back as a string.
type Entry struct {
	ProductCode string          `json:"productCode"`
	ProductName string          `json:"productName"`
	Quantity    int             `json:"quantity"`
	Price       decimal.Decimal `json:"price"`
}

// NewOrder is the body of POST /api/v1/orders.
type NewOrder struct {
	Description string       `json:"description"`
	OrderDate   *kernel.Date `json:"orderDate,omitempty"`
	Entries     []Entry      `json:"entries"`
}

// OrderPatch is the body of PUT /api/v1/orders/{id}. Nil fields are left unchanged.
type OrderPatch struct {
	Description *string       `json:"description,omitempty"`
	Entries     []Entry       `json:"entries,omitempty"`
	Status      *order.Status `json:"status,omitempty"`
}

type Order struct {
	ID          int64           `json:"id"`
	Description string          `json:"description"`
	Amount      decimal.Decimal `json:"amount"`
	OrderDate   kernel.Date     `json:"orderDate"`
	Status      order.Status    `json:"status"`
	Entries     []Entry         `json:"entries"`
}

type Error struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}

func toOrder(o *order.Order) Order {
	entries := o.Entries()
	response := Order{
		ID:          o.ID().Int64(),
		Description: o.Description(),
		Amount:      o.Amount(),
		OrderDate:   o.OrderDate(),
		Status:      o.Status(),
		Entries:     make([]Entry, len(entries)),
	}
	for i, e := range entries {
		response.Entries[i] = Entry{
			ProductCode: e.ProductCode(),
			ProductName: e.ProductName(),
			Quantity:    e.Quantity(),
			Price:       e.Price(),
		}
	}
	return response
}

func toEntries(in []Entry) ([]order.Entry, error) {
	entries := make([]order.Entry, 0, len(in))
	for _, e := range in {
		entry, err := order.NewEntry(e.ProductCode, e.ProductName, e.Quantity, e.Price)
		if err != nil {
			return nil, err
		}
		entries = append(entries, entry)
	}
	return entries, nil
}
