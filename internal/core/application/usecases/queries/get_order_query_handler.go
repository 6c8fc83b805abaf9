package queries

import (
	"context"
	"log/slog"

	"orders/internal/core/domain/model/order"
	"orders/internal/core/ports"
)

// GetOrderQueryHandler looks orders up in the store. An unknown id is reported
// through the found flag, not as an error.
type GetOrderQueryHandler struct {
	store  ports.OrderStore
	logger *slog.Logger
}

// NewGetOrderQueryHandler creates a handler for single order lookups.
func NewGetOrderQueryHandler(store ports.OrderStore, logger *slog.Logger) GetOrderQueryHandler {
	return GetOrderQueryHandler{
		store:  store,
		logger: logger.With("component", "get_order_query_handler"),
	}
}

// Handle returns a copy of the order and true, or nil and false when the id is unknown.
func (h GetOrderQueryHandler) Handle(ctx context.Context, query GetOrderQuery) (*order.Order, bool, error) {
	if err := query.Validate(); err != nil {
		return nil, false, err
	}

	h.logger.InfoContext(ctx, "Fetching order", "order_id", query.OrderID().Int64())

	o, ok := h.store.Get(query.OrderID())
	if !ok {
		return nil, false, nil
	}

	return o, true, nil
}
