package commands

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"warehouse/internal/core/ports"

	"golang.org/x/sync/errgroup"
)

// Stages reported to metrics when a run fails.
const (
	StageRead  = "read"
	StageBuild = "build"
	StageWrite = "write"
)

// GenerateReportCommandHandler reads the ledger, builds the report and hands
// its tables to every configured sink. A failing stage aborts the run; later
// stages do not start.
type GenerateReportCommandHandler struct {
	reader  ports.OrderReader
	builder ReportBuilder
	writers []ports.ReportWriter
	metrics ports.ReportMetrics
	logger  *slog.Logger
}

func NewGenerateReportCommandHandler(
	reader ports.OrderReader,
	builder ReportBuilder,
	writers []ports.ReportWriter,
	metrics ports.ReportMetrics,
	logger *slog.Logger,
) GenerateReportCommandHandler {
	return GenerateReportCommandHandler{
		reader:  reader,
		builder: builder,
		writers: writers,
		metrics: metrics,
		logger:  logger.With("component", "generate_report"),
	}
}

// Handle runs the pipeline. Sinks are written concurrently; the first sink
// error cancels the others and is returned.
func (h GenerateReportCommandHandler) Handle(ctx context.Context, cmd GenerateReportCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	started := time.Now()
	run := cmd.ReportID().Short()
	logger := h.logger.With("report_id", cmd.ReportID().String())

	orders, err := h.reader.GetAll(ctx)
	if err != nil {
		h.metrics.ReportFailed(StageRead)
		return fmt.Errorf("read orders: %w", err)
	}

	rep, err := h.builder.Build(orders)
	if err != nil {
		h.metrics.ReportFailed(StageBuild)
		return fmt.Errorf("build report: %w", err)
	}

	tables := rep.Tables()
	g, gctx := errgroup.WithContext(ctx)
	for _, w := range h.writers {
		g.Go(func() error {
			return w.Write(gctx, run, tables)
		})
	}
	if err = g.Wait(); err != nil {
		h.metrics.ReportFailed(StageWrite)
		return fmt.Errorf("write report: %w", err)
	}

	elapsed := time.Since(started)
	h.metrics.ReportGenerated(len(orders), elapsed)
	logger.InfoContext(ctx, "Report generated",
		"orders", len(orders),
		"tables", len(tables),
		"sinks", len(h.writers),
		"elapsed", elapsed,
	)

	return nil
}
