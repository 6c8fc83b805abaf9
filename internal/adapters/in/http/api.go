package http

import (
	"fmt"
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/oapi-codegen/runtime"
)

// ServerInterface represents all server handlers of openapi.yaml.
type ServerInterface interface {
	// List all orders sorted by id
	// (GET /api/v1/orders)
	ListOrders(ctx echo.Context) error
	// Create an order
	// (POST /api/v1/orders)
	CreateOrder(ctx echo.Context) error
	// Get an order by id
	// (GET /api/v1/orders/{id})
	GetOrder(ctx echo.Context, id int64) error
	// Patch description, entries or status of an order
	// (PUT /api/v1/orders/{id})
	UpdateOrder(ctx echo.Context, id int64) error
	// Delete an order; unknown ids are accepted
	// (DELETE /api/v1/orders/{id})
	DeleteOrder(ctx echo.Context, id int64) error
}

// ServerInterfaceWrapper converts echo contexts to parameters.
type ServerInterfaceWrapper struct {
	Handler ServerInterface
}

func (w *ServerInterfaceWrapper) ListOrders(ctx echo.Context) error {
	return w.Handler.ListOrders(ctx)
}

func (w *ServerInterfaceWrapper) CreateOrder(ctx echo.Context) error {
	return w.Handler.CreateOrder(ctx)
}

func (w *ServerInterfaceWrapper) GetOrder(ctx echo.Context) error {
	id, err := bindOrderID(ctx)
	if err != nil {
		return err
	}
	return w.Handler.GetOrder(ctx, id)
}

func (w *ServerInterfaceWrapper) UpdateOrder(ctx echo.Context) error {
	id, err := bindOrderID(ctx)
	if err != nil {
		return err
	}
	return w.Handler.UpdateOrder(ctx, id)
}

func (w *ServerInterfaceWrapper) DeleteOrder(ctx echo.Context) error {
	id, err := bindOrderID(ctx)
	if err != nil {
		return err
	}
	return w.Handler.DeleteOrder(ctx, id)
}

func bindOrderID(ctx echo.Context) (int64, error) {
	var id int64

	err := runtime.BindStyledParameterWithOptions("simple", "id", ctx.Param("id"), &id, runtime.BindStyledParameterOptions{
		ParamLocation: runtime.ParamLocationPath,
		Explode:       false,
		Required:      true,
	})
	if err != nil {
		return 0, echo.NewHTTPError(http.StatusBadRequest, fmt.Sprintf("Invalid format for parameter id: %s", err))
	}

	return id, nil
}

// EchoRouter is the subset of *echo.Echo and *echo.Group used for registration.
type EchoRouter interface {
	DELETE(path string, h echo.HandlerFunc, m ...echo.MiddlewareFunc) *echo.Route
	GET(path string, h echo.HandlerFunc, m ...echo.MiddlewareFunc) *echo.Route
	POST(path string, h echo.HandlerFunc, m ...echo.MiddlewareFunc) *echo.Route
	PUT(path string, h echo.HandlerFunc, m ...echo.MiddlewareFunc) *echo.Route
}

// RegisterHandlers adds each server route to the router. The middlewares run for
// the API routes only.
func RegisterHandlers(router EchoRouter, si ServerInterface, m ...echo.MiddlewareFunc) {
	wrapper := ServerInterfaceWrapper{
		Handler: si,
	}

	router.GET("/api/v1/orders", wrapper.ListOrders, m...)
	router.POST("/api/v1/orders", wrapper.CreateOrder, m...)
	router.GET("/api/v1/orders/:id", wrapper.GetOrder, m...)
	router.PUT("/api/v1/orders/:id", wrapper.UpdateOrder, m...)
	router.DELETE("/api/v1/orders/:id", wrapper.DeleteOrder, m...)
}
