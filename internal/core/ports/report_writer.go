package ports

import (
	"context"

	"warehouse/internal/core/domain/model/report"
)

// ReportWriter is an external sink for report tables (files, spreadsheets).
type ReportWriter interface {
	// Write stores the tables of one run. Table order is the output order.
	Write(ctx context.Context, run string, tables []report.Table) error
}
