package ports

import "time"

// ReportMetrics records report runs and imports. Implementations must be safe
// for concurrent use.
type ReportMetrics interface {
	ReportGenerated(orders int, elapsed time.Duration)
	// ReportFailed counts a run that aborted in the named stage: read, build or write.
	ReportFailed(stage string)
	OrdersImported(count int)
}
