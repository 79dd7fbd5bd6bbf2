// Package queries contains read operations. Report queries rebuild the report
// from the current ledger on every call; the warehouse listing reads the
// ledger tables directly.
package queries

import (
	"errors"

	"warehouse/internal/core/domain/model/order"
	"warehouse/internal/core/domain/model/report"
	"warehouse/internal/pkg/guard"
)

var ErrGetReportQueryIsNotConstructed = errors.New(
	"GetReportQuery must be created via NewGetReportQuery constructor",
)

// ReportBuilder runs the report pipeline over a ledger.
type ReportBuilder interface {
	Build(orders []*order.Order) (report.Report, error)
}

// GetReportQuery asks for the full report over the current ledger.
//
// Example:
//
//	rep, err := handler.Handle(ctx, NewGetReportQuery())
//	if err != nil {
//	    return err
//	}
//	fmt.Println(rep.AverageOrderProfit)
type GetReportQuery struct {
	guard guard.ConstructorGuard
}

func NewGetReportQuery() GetReportQuery {
	return GetReportQuery{guard: guard.NewConstructorGuard()}
}

func (q GetReportQuery) Validate() error {
	return q.guard.Validate(ErrGetReportQueryIsNotConstructed)
}
