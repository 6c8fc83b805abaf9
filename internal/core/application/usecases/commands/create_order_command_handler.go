package commands

import (
	"context"
	"log/slog"

	"orders/internal/core/domain/model/kernel"
	"orders/internal/core/domain/model/order"
	"orders/internal/core/ports"
	"orders/internal/pkg/clock"
)

// CreateOrderCommandHandler places new orders: it computes the amount, defaults the
// order date from the clock, forces CREATED status, allocates the identifier and
// stores the record.
//
// Example:
//
//	handler := NewCreateOrderCommandHandler(store, clock.System{}, logger)
//	created, err := handler.Handle(ctx, cmd)
//	if err != nil {
//	    return fmt.Errorf("order creation failed: %w", err)
//	}
//	fmt.Println(created.ID(), created.Amount())
type CreateOrderCommandHandler struct {
	store  ports.OrderStore
	clock  clock.Clock
	logger *slog.Logger
}

// NewCreateOrderCommandHandler creates a handler for order creation.
func NewCreateOrderCommandHandler(
	store ports.OrderStore,
	clk clock.Clock,
	logger *slog.Logger,
) CreateOrderCommandHandler {
	return CreateOrderCommandHandler{
		store:  store,
		clock:  clk,
		logger: logger.With("component", "create_order_command_handler"),
	}
}

// Handle builds a fresh record from the command and stores it. The returned order is
// the caller's own copy.
func (h *CreateOrderCommandHandler) Handle(ctx context.Context, cmd CreateOrderCommand) (*order.Order, error) {
	if err := cmd.Validate(); err != nil {
		return nil, err
	}

	orderDate := cmd.OrderDate()
	if orderDate.IsZero() {
		orderDate = kernel.DateOf(h.clock.Now())
	}

	created, err := order.NewOrder(h.store.NextID(), cmd.Description(), orderDate, cmd.Entries())
	if err != nil {
		h.logger.ErrorContext(ctx, "Order rejected", "error", err)
		return nil, err
	}

	h.store.Put(created)
	h.logger.InfoContext(ctx, "Order created",
		"order_id", created.ID().Int64(),
		"amount", created.Amount().String(),
		"entries", len(cmd.Entries()),
	)

	return created, nil
}
