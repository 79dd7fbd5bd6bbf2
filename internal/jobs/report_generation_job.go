package jobs

import (
	"context"
	"log/slog"

	"warehouse/internal/core/application/usecases/commands"
	"warehouse/internal/core/domain/model/kernel"

	"github.com/robfig/cron/v3"
)

// DefaultReportSchedule runs the report at the top of every hour.
const DefaultReportSchedule = "0 0 * * * *"

// GenerateReportHandler is satisfied by commands.GenerateReportCommandHandler.
type GenerateReportHandler interface {
	Handle(ctx context.Context, cmd commands.GenerateReportCommand) error
}

// ReportGenerationJob regenerates the report on a cron schedule (six fields, seconds first).
type ReportGenerationJob struct {
	handler  GenerateReportHandler
	schedule string
	cron     *cron.Cron
	logger   *slog.Logger
}

// NewReportGenerationJob creates the job. An empty schedule falls back to DefaultReportSchedule.
func NewReportGenerationJob(handler GenerateReportHandler, schedule string, logger *slog.Logger) *ReportGenerationJob {
	if schedule == "" {
		schedule = DefaultReportSchedule
	}

	return &ReportGenerationJob{
		handler:  handler,
		schedule: schedule,
		cron:     cron.New(cron.WithSeconds(), cron.WithChain(cron.SkipIfStillRunning(cron.DiscardLogger))),
		logger:   logger.With("component", "report_generation_job"),
	}
}

// Start registers the run and starts the scheduler. An invalid schedule is returned as error.
func (j *ReportGenerationJob) Start() error {
	if _, err := j.cron.AddFunc(j.schedule, j.Run); err != nil {
		return err
	}

	j.cron.Start()
	j.logger.InfoContext(context.Background(), "Report generation job started", "schedule", j.schedule)
	return nil
}

// Run performs a single report run. Failures are logged; the next tick retries.
func (j *ReportGenerationJob) Run() {
	ctx := context.Background()

	cmd, err := commands.NewGenerateReportCommand(kernel.NewReportID())
	if err != nil {
		j.logger.ErrorContext(ctx, "Report generation job failed", "error", err)
		return
	}

	if err = j.handler.Handle(ctx, cmd); err != nil {
		j.logger.ErrorContext(ctx, "Report generation job failed",
			"report_id", cmd.ReportID().String(),
			"error", err,
		)
	}
}

// Stop stops the scheduler and waits for a running report to finish.
func (j *ReportGenerationJob) Stop() {
	<-j.cron.Stop().Done()
	j.logger.InfoContext(context.Background(), "Report generation job stopped")
}
