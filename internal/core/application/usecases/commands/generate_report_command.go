package commands

import (
	"errors"

	"warehouse/internal/core/domain/model/kernel"
	"warehouse/internal/pkg/guard"
)

var ErrGenerateReportCommandIsNotConstructed = errors.New(
	"GenerateReportCommand must be created via NewGenerateReportCommand constructor",
)

// GenerateReportCommand requests one report run. The report id names the
// run in logs and in sink outputs.
//
// Example:
//
//	cmd, _ := NewGenerateReportCommand(kernel.NewReportID())
//	if err := handler.Handle(ctx, cmd); err != nil {
//	    return fmt.Errorf("report run %s: %w", cmd.ReportID().Short(), err)
//	}
type GenerateReportCommand struct { //nolint:recvcheck //using for validation
	reportID kernel.ReportID

	guard guard.ConstructorGuard
}

func NewGenerateReportCommand(reportID kernel.ReportID) (GenerateReportCommand, error) {
	cmd := GenerateReportCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := cmd.setReportID(reportID); err != nil {
		return GenerateReportCommand{}, err
	}

	return cmd, nil
}

func (c GenerateReportCommand) Validate() error {
	return c.guard.Validate(ErrGenerateReportCommandIsNotConstructed)
}

func (c GenerateReportCommand) ReportID() kernel.ReportID {
	return c.reportID
}

func (c *GenerateReportCommand) setReportID(id kernel.ReportID) error {
	if err := id.Validate(); err != nil {
		return err
	}

	c.reportID = id
	return nil
}
