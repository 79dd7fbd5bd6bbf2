package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"warehouse/cmd"
	apihttp "warehouse/internal/adapters/in/http"
	"warehouse/internal/adapters/in/orderjson"
	"warehouse/internal/adapters/out/postgres"
	"warehouse/internal/core/application/usecases/commands"
	"warehouse/internal/core/domain/model/kernel"

	"github.com/labstack/echo/v4"
	"github.com/labstack/gommon/log"
	postgresdriver "gorm.io/driver/postgres"
	"gorm.io/gorm"
)

const shutdownTimeout = 10 * time.Second

func main() {
	mode := flag.String("mode", "report", "report: one run from a JSON file; serve: HTTP API with scheduled reports")
	input := flag.String("input", "orders.json", "orders JSON file (report mode)")
	envFile := flag.String("env", ".env", "optional .env file")
	flag.Parse()

	config, err := cmd.LoadConfig(*envFile)
	if err != nil {
		log.Fatalf("Error loading config: %v", err)
	}

	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: config.SlogLevel()}))
	slog.SetDefault(logger)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	switch *mode {
	case "report":
		err = runReport(ctx, config, *input, logger)
	case "serve":
		err = serve(ctx, config, logger)
	default:
		err = fmt.Errorf("unknown mode %q", *mode)
	}
	if err != nil {
		log.Fatalf("%s: %v", *mode, err)
	}
}

func runReport(ctx context.Context, config cmd.Config, input string, logger *slog.Logger) error {
	app := cmd.NewCompositionRoot(config, nil, logger)
	handler := app.CreateGenerateReportCommandHandler(orderjson.NewFileReader(input))

	command, err := commands.NewGenerateReportCommand(kernel.NewReportID())
	if err != nil {
		return err
	}

	if err = handler.Handle(ctx, command); err != nil {
		return err
	}

	logger.InfoContext(ctx, "Report written", "dir", config.ResultsDir, "report_id", command.ReportID().String())
	return nil
}

func serve(ctx context.Context, config cmd.Config, logger *slog.Logger) error {
	db, err := gorm.Open(postgresdriver.Open(config.DSN()), &gorm.Config{})
	if err != nil {
		return fmt.Errorf("connect database: %w", err)
	}
	if err = postgres.Migrate(db); err != nil {
		return fmt.Errorf("migrate: %w", err)
	}

	app := cmd.NewCompositionRoot(config, db, logger)

	jobManager := app.CreateJobManager()
	if err = jobManager.StartAll(); err != nil {
		return err
	}
	defer jobManager.StopAll()

	e := echo.New()
	e.HideBanner = true
	server := apihttp.NewServer(
		app.CreateImportOrdersCommandHandler(),
		app.CreateGenerateReportCommandHandler(app.LedgerReader()),
		app.CreateGetReportQueryHandler(),
		app.CreateGetWarehouseCategoriesQueryHandler(),
		app.CreateListWarehousesQueryHandler(),
		app.Metrics().Handler(),
		logger,
	)
	server.Register(e)

	errCh := make(chan error, 1)
	go func() {
		errCh <- e.Start(fmt.Sprintf("0.0.0.0:%s", config.HTTPPort))
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
	return e.Shutdown(shutdownCtx)
}
