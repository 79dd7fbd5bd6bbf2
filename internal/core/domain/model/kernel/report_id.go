package kernel

import (
	"fmt"

	"warehouse/internal/pkg/errs"

	"github.com/google/uuid"
)

// ErrReportIDIsNotConstructed is returned when a zero ReportID is used.
var ErrReportIDIsNotConstructed = errs.NewValueIsRequiredError(
	"report id must be created via NewReportID or ReportIDFromString")

// ReportID identifies a single report generation run. It tags the log lines,
// metrics and output files produced by that run.
type ReportID struct {
	id uuid.UUID
}

// NewReportID returns a fresh random identifier.
func NewReportID() ReportID {
	return ReportID{id: uuid.New()}
}

// ReportIDFromString parses any textual form accepted by uuid.Parse.
func ReportIDFromString(s string) (ReportID, error) {
	id, err := uuid.Parse(s)
	if err != nil {
		return ReportID{}, fmt.Errorf("invalid report id format: %w", err)
	}

	reportID := ReportID{id: id}
	if err = reportID.Validate(); err != nil {
		return ReportID{}, err
	}

	return reportID, nil
}

func (r ReportID) String() string {
	return r.id.String()
}

// Short returns the first block of the identifier, used in file names.
func (r ReportID) Short() string {
	return r.id.String()[:8]
}

func (r ReportID) IsEqual(other ReportID) bool {
	return r.id == other.id
}

func (r ReportID) Validate() error {
	if r.id == uuid.Nil {
		return ErrReportIDIsNotConstructed
	}
	return nil
}
