package commands

import (
	"context"
	"log/slog"

	"orders/internal/core/domain/model/order"
	"orders/internal/core/ports"
	"orders/internal/pkg/errs"
)

// UpdateOrderCommandHandler applies partial patches to stored orders.
//
// Rules, in order:
//   - the order must exist (ObjectNotFoundError)
//   - the order must not be COMPLETED or CANCELLED (StateIsTerminalError)
//   - a supplied description replaces the old one
//   - supplied, non-empty entries replace the old ones and the amount is recomputed
//   - a supplied status different from the current one must be an allowed
//     transition (TransitionIsInvalidError)
//
// The id and order date of the stored order are always preserved. When any step
// fails nothing is written. The whole patch runs inside OrderStore.Update, so two
// concurrent updates of one order never overwrite each other with stale copies.
type UpdateOrderCommandHandler struct {
	store  ports.OrderStore
	logger *slog.Logger
}

// NewUpdateOrderCommandHandler creates a handler for order updates.
func NewUpdateOrderCommandHandler(store ports.OrderStore, logger *slog.Logger) UpdateOrderCommandHandler {
	return UpdateOrderCommandHandler{
		store:  store,
		logger: logger.With("component", "update_order_command_handler"),
	}
}

// Handle applies the patch and returns the updated order.
func (h *UpdateOrderCommandHandler) Handle(ctx context.Context, cmd UpdateOrderCommand) (*order.Order, error) {
	if err := cmd.Validate(); err != nil {
		return nil, err
	}

	h.logger.InfoContext(ctx, "Updating order", "order_id", cmd.OrderID().Int64())

	updated, ok, err := h.store.Update(cmd.OrderID(), func(o *order.Order) error {
		return h.apply(o, cmd)
	})
	if !ok {
		h.logger.ErrorContext(ctx, "Order not found", "order_id", cmd.OrderID().Int64())
		return nil, errs.NewObjectNotFoundError("orderId", cmd.OrderID())
	}
	if err != nil {
		h.logger.ErrorContext(ctx, "Order update rejected",
			"order_id", cmd.OrderID().Int64(),
			"error", err,
		)
		return nil, err
	}

	h.logger.InfoContext(ctx, "Order updated",
		"order_id", updated.ID().Int64(),
		"status", updated.Status().String(),
		"amount", updated.Amount().String(),
	)

	return updated, nil
}

func (h *UpdateOrderCommandHandler) apply(o *order.Order, cmd UpdateOrderCommand) error {
	if err := o.ValidateUpdate(); err != nil {
		return err
	}

	if description, ok := cmd.Description(); ok {
		if err := o.ChangeDescription(description); err != nil {
			return err
		}
	}

	if entries, ok := cmd.Entries(); ok {
		if err := o.ReplaceEntries(entries); err != nil {
			return err
		}
	}

	if status, ok := cmd.Status(); ok {
		if err := o.ChangeStatus(status); err != nil {
			return err
		}
	}

	return nil
}
