// Package jobs provides scheduled background tasks for the warehouse service.
//
// Jobs are built on github.com/robfig/cron/v3 with second-resolution schedules.
//
// # Available Jobs
//
// ReportGenerationJob - rebuilds the profitability report from the stored
// ledger and writes it to the configured sinks (CSV files, Excel workbook).
//
// # Usage
//
//	jobManager := jobs.NewJobManager(generateReportHandler, "0 */15 * * * *", logger)
//	if err := jobManager.StartAll(); err != nil {
//		log.Fatal("Failed to start jobs:", err)
//	}
//	defer jobManager.StopAll()
//
// # Error Handling
//
// A failed run is logged and retried on the next tick. Overlapping ticks are
// skipped while a run is still in progress.
package jobs
