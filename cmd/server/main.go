// @title        AIS Map Position API
// @version      1.0
// @description  Read-only access to vessel position reports.
// @BasePath     /
package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"

	"github.com/aismap/position-api/internal/api"
	"github.com/aismap/position-api/internal/api/handler"
	"github.com/aismap/position-api/internal/core/service"
	mongodb "github.com/aismap/position-api/internal/infrastructure/db/mongo"
	"github.com/aismap/position-api/internal/pkg/config"
	"github.com/aismap/position-api/pkg/logger"
)

const shutdownTimeout = 30 * time.Second

func main() {
	ctx := context.Background()

	cfg, err := config.Load(ctx)
	if err != nil {
		// The logger is configured from cfg, so fall back to a bare one.
		bootLog := logger.New(logger.Options{Output: os.Stderr})
		bootLog.Fatal().Err(err).Msg("failed to load configuration")
	}

	log := logger.New(logger.Options{
		Level:   cfg.LogLevel,
		Pretty:  cfg.Development(),
		Service: "ais-map-api",
	})
	log.Info().Msg("starting AIS map position API")

	mcfg := mongodb.Config{
		URI:      cfg.Mongo.URL,
		Database: cfg.Mongo.Database,
		Timeout:  cfg.Mongo.Timeout,
	}
	if logger.Verbose(log) {
		mcfg.LogSink = logger.NewDriverSink(log)
	}
	client, db, err := mongodb.Connect(ctx, mcfg)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to connect to MongoDB")
	}
	disconnect := func() {
		dctx, cancel := context.WithTimeout(context.Background(), cfg.Mongo.Timeout)
		defer cancel()
		if err := client.Disconnect(dctx); err != nil {
			log.Error().Err(err).Msg("mongo disconnect")
		}
	}

	repo := mongodb.NewReportRepository(db, cfg.Mongo.Collection, cfg.Mongo.Timeout)
	e := api.NewRouter(api.Dependencies{
		Reports: service.NewReportService(repo, logger.Component(log, "reports")),
		Checks:  map[string]handler.Pinger{"mongodb": mongodb.NewHealthChecker(db)},
		Logger:  logger.Component(log, "http"),
	})

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	err = serve(e, cfg.Addr(), quit, log)
	disconnect()
	if err != nil {
		os.Exit(1)
	}
}

// serve runs e on addr until a signal arrives on quit or the server fails,
// then shuts it down. It returns the server failure, if any, so the caller
// can release resources before exiting.
func serve(e *echo.Echo, addr string, quit <-chan os.Signal, log zerolog.Logger) error {
	serverErr := make(chan error, 1)
	go func() {
		log.Info().Str("addr", addr).Msg("http server listening")
		if err := e.Start(addr); err != nil && !errors.Is(err, http.ErrServerClosed) {
			serverErr <- err
		}
	}()

	var failure error
	select {
	case sig := <-quit:
		log.Info().Str("signal", sig.String()).Msg("shutting down")
	case failure = <-serverErr:
		log.Error().Err(failure).Msg("http server failed")
	}

	ctx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := e.Shutdown(ctx); err != nil {
		log.Error().Err(err).Msg("server forced to shutdown")
	}
	return failure
}
