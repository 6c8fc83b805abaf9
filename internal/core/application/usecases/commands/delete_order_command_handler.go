package commands

import (
	"context"
	"log/slog"

	"orders/internal/core/domain/model/order"
	"orders/internal/core/ports"
)

// DeleteOrderCommandHandler removes orders. Deleting an absent order succeeds, so the
// operation is idempotent. COMPLETED orders cannot be deleted; CANCELLED ones can.
type DeleteOrderCommandHandler struct {
	store  ports.OrderStore
	logger *slog.Logger
}

// NewDeleteOrderCommandHandler creates a handler for order removal.
func NewDeleteOrderCommandHandler(store ports.OrderStore, logger *slog.Logger) DeleteOrderCommandHandler {
	return DeleteOrderCommandHandler{
		store:  store,
		logger: logger.With("component", "delete_order_command_handler"),
	}
}

// Handle removes the order if it exists and its status allows it.
func (h *DeleteOrderCommandHandler) Handle(ctx context.Context, cmd DeleteOrderCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	h.logger.InfoContext(ctx, "Deleting order", "order_id", cmd.OrderID().Int64())

	err := h.store.RemoveIf(cmd.OrderID(), func(o *order.Order) error {
		return o.ValidateDelete()
	})
	if err != nil {
		h.logger.ErrorContext(ctx, "Cannot delete order",
			"order_id", cmd.OrderID().Int64(),
			"error", err,
		)
		return err
	}

	return nil
}
