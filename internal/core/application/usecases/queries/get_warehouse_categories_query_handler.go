package queries

import (
	"context"

	"warehouse/internal/core/domain/model/report"
	"warehouse/internal/core/ports"
	"warehouse/internal/pkg/errs"
)

// GetWarehouseCategoriesQueryHandler returns a warehouse's ranked products with
// their categories, in descending contribution order.
type GetWarehouseCategoriesQueryHandler struct {
	reports GetReportQueryHandler
}

func NewGetWarehouseCategoriesQueryHandler(
	reader ports.OrderReader,
	builder ReportBuilder,
) GetWarehouseCategoriesQueryHandler {
	return GetWarehouseCategoriesQueryHandler{reports: NewGetReportQueryHandler(reader, builder)}
}

// Handle fails with ObjectNotFoundError when the ledger has no orders for the warehouse.
func (h GetWarehouseCategoriesQueryHandler) Handle(
	ctx context.Context,
	query GetWarehouseCategoriesQuery,
) ([]report.RankedStat, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	rep, err := h.reports.Handle(ctx, NewGetReportQuery())
	if err != nil {
		return nil, err
	}

	rows := rep.CategoriesOf(query.WarehouseName())
	if len(rows) == 0 {
		return nil, errs.NewObjectNotFoundError("warehouse_name", query.WarehouseName())
	}
	return rows, nil
}
