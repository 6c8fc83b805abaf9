package queries

import (
	"cmp"
	"context"
	"log/slog"
	"slices"

	"orders/internal/core/domain/model/order"
	"orders/internal/core/ports"
)

// ListOrdersQueryHandler returns a snapshot of all orders.
//
// Example:
//
//	handler := NewListOrdersQueryHandler(store, logger)
//
//	orders, err := handler.Handle(ctx, NewListOrdersQuery())
//	if err != nil {
//	    return err
//	}
//	fmt.Printf("%d orders\n", len(orders))
type ListOrdersQueryHandler struct {
	store  ports.OrderStore
	logger *slog.Logger
}

// NewListOrdersQueryHandler creates a handler for listing orders.
func NewListOrdersQueryHandler(store ports.OrderStore, logger *slog.Logger) ListOrdersQueryHandler {
	return ListOrdersQueryHandler{
		store:  store,
		logger: logger.With("component", "list_orders_query_handler"),
	}
}

// Handle returns copies of all stored orders sorted by id. The result is never nil.
// Orders written concurrently with the call may or may not be included.
func (h ListOrdersQueryHandler) Handle(ctx context.Context, query ListOrdersQuery) ([]*order.Order, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	orders := h.store.List()
	if orders == nil {
		orders = make([]*order.Order, 0)
	}
	slices.SortFunc(orders, func(a, b *order.Order) int {
		return cmp.Compare(a.ID(), b.ID())
	})

	h.logger.DebugContext(ctx, "Listing orders", "count", len(orders))

	return orders, nil
}
