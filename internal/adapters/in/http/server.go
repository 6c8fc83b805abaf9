package http

import (
	"errors"
	"net/http"

	"orders/internal/core/application/usecases/commands"
	"orders/internal/core/application/usecases/queries"
	"orders/internal/core/domain/model/kernel"
	"orders/internal/core/domain/model/order"
	"orders/internal/pkg/errs"

	"github.com/labstack/echo/v4"
)

var _ ServerInterface = (*Server)(nil)

// Server implements the ServerInterface for handling HTTP requests.
// It coordinates between HTTP handlers and application use cases.
type Server struct {
	// Command handlers
	createOrderHandler commands.CreateOrderCommandHandler
	updateOrderHandler commands.UpdateOrderCommandHandler
	deleteOrderHandler commands.DeleteOrderCommandHandler

	// Query handlers
	getOrderHandler   queries.GetOrderQueryHandler
	listOrdersHandler queries.ListOrdersQueryHandler
}

// NewServer creates a new HTTP server with the required command and query handlers.
func NewServer(
	createOrderHandler commands.CreateOrderCommandHandler,
	updateOrderHandler commands.UpdateOrderCommandHandler,
	deleteOrderHandler commands.DeleteOrderCommandHandler,
	getOrderHandler queries.GetOrderQueryHandler,
	listOrdersHandler queries.ListOrdersQueryHandler,
) *Server {
	return &Server{
		createOrderHandler: createOrderHandler,
		updateOrderHandler: updateOrderHandler,
		deleteOrderHandler: deleteOrderHandler,
		getOrderHandler:    getOrderHandler,
		listOrdersHandler:  listOrdersHandler,
	}
}

// ListOrders handles GET /api/v1/orders - retrieves all orders.
func (s *Server) ListOrders(ctx echo.Context) error {
	orders, err := s.listOrdersHandler.Handle(ctx.Request().Context(), queries.NewListOrdersQuery())
	if err != nil {
		return errorResponse(ctx, err)
	}

	response := make([]Order, len(orders))
	for i, o := range orders {
		response[i] = toOrder(o)
	}

	return ctx.JSON(http.StatusOK, response)
}

// CreateOrder handles POST /api/v1/orders - creates a new order.
func (s *Server) CreateOrder(ctx echo.Context) error {
	var newOrder NewOrder
	if err := ctx.Bind(&newOrder); err != nil {
		return ctx.JSON(http.StatusBadRequest, Error{
			Code:    http.StatusBadRequest,
			Message: "Invalid request body",
		})
	}

	entries, err := toEntries(newOrder.Entries)
	if err != nil {
		return errorResponse(ctx, err)
	}

	var orderDate kernel.Date
	if newOrder.OrderDate != nil {
		orderDate = *newOrder.OrderDate
	}

	cmd, err := commands.NewCreateOrderCommand(newOrder.Description, orderDate, entries)
	if err != nil {
		return errorResponse(ctx, err)
	}

	created, err := s.createOrderHandler.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return errorResponse(ctx, err)
	}

	return ctx.JSON(http.StatusCreated, toOrder(created))
}

// GetOrder handles GET /api/v1/orders/{id} - retrieves a single order.
func (s *Server) GetOrder(ctx echo.Context, id int64) error {
	query, err := queries.NewGetOrderQuery(kernel.ID(id))
	if err != nil {
		return errorResponse(ctx, err)
	}

	o, found, err := s.getOrderHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return errorResponse(ctx, err)
	}
	if !found {
		return errorResponse(ctx, errs.NewObjectNotFoundError("orderId", id))
	}

	return ctx.JSON(http.StatusOK, toOrder(o))
}

// UpdateOrder handles PUT /api/v1/orders/{id} - patches an order.
func (s *Server) UpdateOrder(ctx echo.Context, id int64) error {
	var patch OrderPatch
	if err := ctx.Bind(&patch); err != nil {
		return ctx.JSON(http.StatusBadRequest, Error{
			Code:    http.StatusBadRequest,
			Message: "Invalid request body",
		})
	}

	var entries []order.Entry
	if len(patch.Entries) > 0 {
		var err error
		if entries, err = toEntries(patch.Entries); err != nil {
			return errorResponse(ctx, err)
		}
	}

	cmd, err := commands.NewUpdateOrderCommand(kernel.ID(id), patch.Description, entries, patch.Status)
	if err != nil {
		return errorResponse(ctx, err)
	}

	updated, err := s.updateOrderHandler.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return errorResponse(ctx, err)
	}

	return ctx.JSON(http.StatusOK, toOrder(updated))
}

// DeleteOrder handles DELETE /api/v1/orders/{id} - removes an order.
func (s *Server) DeleteOrder(ctx echo.Context, id int64) error {
	cmd, err := commands.NewDeleteOrderCommand(kernel.ID(id))
	if err != nil {
		return errorResponse(ctx, err)
	}

	if err = s.deleteOrderHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return errorResponse(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}

func errorResponse(ctx echo.Context, err error) error {
	code := statusCode(err)
	message := err.Error()
	if code == http.StatusInternalServerError {
		message = http.StatusText(code)
	}

	return ctx.JSON(code, Error{
		Code:    code,
		Message: message,
	})
}

func statusCode(err error) int {
	switch {
	case errors.Is(err, errs.ErrObjectNotFound):
		return http.StatusNotFound
	case errors.Is(err, errs.ErrStateIsTerminal),
		errors.Is(err, errs.ErrTransitionIsInvalid):
		return http.StatusConflict
	case errors.Is(err, errs.ErrValueIsRequired),
		errors.Is(err, errs.ErrValueIsInvalid):
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}
