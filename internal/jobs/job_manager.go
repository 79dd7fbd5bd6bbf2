package jobs

import (
	"fmt"
	"log/slog"
)

// JobManager coordinates the scheduled jobs of the service.
type JobManager struct {
	reportGenerationJob *ReportGenerationJob
}

func NewJobManager(generateReportHandler GenerateReportHandler, reportSchedule string, logger *slog.Logger) *JobManager {
	return &JobManager{
		reportGenerationJob: NewReportGenerationJob(generateReportHandler, reportSchedule, logger),
	}
}

// StartAll starts all scheduled jobs.
func (jm *JobManager) StartAll() error {
	if err := jm.reportGenerationJob.Start(); err != nil {
		return fmt.Errorf("failed to start report generation job: %w", err)
	}

	return nil
}

// StopAll stops all scheduled jobs gracefully.
func (jm *JobManager) StopAll() {
	jm.reportGenerationJob.Stop()
}
