package http

import (
	"context"
	"log/slog"
	"net/http"

	"orders/internal/pkg/metrics"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	echoSwagger "github.com/swaggo/echo-swagger"
)

// NewRouter builds the echo instance serving the orders API, the health check,
// the metrics endpoint and the API documentation.
//
// Example:
//
//	e, err := http.NewRouter(ctx, server, metrics.New("orders"), logger)
//	if err != nil {
//	    return err
//	}
//	e.Logger.Fatal(e.Start(":8080"))
func NewRouter(ctx context.Context, server ServerInterface, m *metrics.Metrics, logger *slog.Logger) (*echo.Echo, error) {
	logger = logger.With("component", "http_server")

	doc, err := LoadOpenAPI(ctx)
	if err != nil {
		return nil, err
	}

	docJSON, err := marshalOpenAPI(doc)
	if err != nil {
		return nil, err
	}
	registerSwagger(docJSON)

	validator, err := OpenAPIValidator(doc)
	if err != nil {
		return nil, err
	}

	e := echo.New()
	e.HideBanner = true
	e.HidePort = true
	e.HTTPErrorHandler = errorHandler(logger)

	e.Use(requestID())
	e.Use(middleware.Recover())
	e.Use(requestLogger(logger))
	e.Use(recordMetrics(m))

	e.GET("/health", func(c echo.Context) error {
		return c.String(http.StatusOK, "Healthy")
	})
	e.GET("/metrics", echo.WrapHandler(m.Handler()))
	e.GET("/openapi.json", func(c echo.Context) error {
		return c.JSONBlob(http.StatusOK, docJSON)
	})
	e.GET("/swagger/*", echoSwagger.WrapHandler)

	RegisterHandlers(e, server, validator)

	return e, nil
}
