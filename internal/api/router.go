package api

import (
	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/rs/zerolog"
	echoSwagger "github.com/swaggo/echo-swagger"

	_ "github.com/aismap/position-api/docs"
	"github.com/aismap/position-api/internal/api/handler"
	"github.com/aismap/position-api/internal/api/middleware"
	"github.com/aismap/position-api/internal/core/ports"
)

// Dependencies are the process-wide handles the HTTP layer is built from.
type Dependencies struct {
	Reports ports.ReportService
	// Checks are pinged by the readiness endpoint, keyed by dependency name.
	Checks map[string]handler.Pinger
	Logger zerolog.Logger
}

// NewRouter builds and returns the Echo instance with all routes registered.
func NewRouter(deps Dependencies) *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.HidePort = true
	e.HTTPErrorHandler = NewHTTPErrorHandler(e, deps.Logger)

	// --- Global middleware ---
	e.Use(echomiddleware.Recover())
	e.Use(echomiddleware.RequestID())
	e.Use(middleware.RequestLogger(deps.Logger))
	e.Use(middleware.Metrics())

	// --- Position reports ---
	reportHandler := handler.NewReportHandler(deps.Reports)
	e.GET("/hello", reportHandler.Hello)
	e.GET("/ship/:id", reportHandler.Get)
	e.GET("/ships", reportHandler.List)

	// --- Health probes ---
	healthHandler := handler.NewHealthHandler()
	healthDepsHandler := handler.NewHealthDependenciesHandler(deps.Checks)

	e.GET("/health", healthHandler.Liveness)            // liveness  – is the process alive?
	e.GET("/health/ready", healthDepsHandler.Readiness) // readiness – are dependencies up?

	// --- Operations ---
	e.GET("/metrics", echo.WrapHandler(promhttp.Handler()))
	e.GET("/swagger/*", echoSwagger.WrapHandler)

	return e
}
