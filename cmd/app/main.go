package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"mozdelivery/cmd"
	"mozdelivery/internal/adapters/out/storage"

	"github.com/labstack/gommon/log"
	gormlogger "gorm.io/gorm/logger"
)

const shutdownTimeout = 10 * time.Second

func main() {
	configs, err := cmd.LoadConfig(".env")
	if err != nil {
		log.Fatalf("Error loading configuration: %v", err)
	}

	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: configs.LogLevel}))
	slog.SetDefault(logger)

	db, err := storage.Open(configs.DBDialect, configs.DSN(), gormlogger.Default.LogMode(gormlogger.Warn))
	if err != nil {
		log.Fatalf("Error opening database: %v", err)
	}

	app, err := cmd.NewCompositionRoot(configs, db, logger)
	if err != nil {
		log.Fatalf("Error building application: %v", err)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if configs.SeedReferenceData {
		if err = app.SeedReferenceData(ctx); err != nil {
			log.Fatalf("Error seeding reference data: %v", err)
		}
	}

	jobManager := app.CreateJobManager()
	if err = jobManager.StartAll(); err != nil {
		log.Fatalf("Error starting jobs: %v", err)
	}
	defer jobManager.StopAll()

	if err = startWebServer(ctx, app, configs.HTTPPort, logger); err != nil {
		logger.Error("Web server stopped with error", "error", err)
	}
}

func startWebServer(ctx context.Context, app *cmd.CompositionRoot, port string, logger *slog.Logger) error {
	e, err := app.CreateWebServer()
	if err != nil {
		return err
	}

	errCh := make(chan error, 1)
	go func() {
		logger.Info("Web server starting", "port", port)
		errCh <- e.Start(fmt.Sprintf("0.0.0.0:%s", port))
	}()

	select {
	case err = <-errCh:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return err
	case <-ctx.Done():
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()

	logger.Info("Web server shutting down")
	return e.Shutdown(shutdownCtx)
}
