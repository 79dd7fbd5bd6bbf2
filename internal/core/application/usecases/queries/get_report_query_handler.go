package queries

import (
	"context"

	"warehouse/internal/core/domain/model/report"
	"warehouse/internal/core/ports"
)

type GetReportQueryHandler struct {
	reader  ports.OrderReader
	builder ReportBuilder
}

func NewGetReportQueryHandler(reader ports.OrderReader, builder ReportBuilder) GetReportQueryHandler {
	return GetReportQueryHandler{reader: reader, builder: builder}
}

func (h GetReportQueryHandler) Handle(ctx context.Context, query GetReportQuery) (report.Report, error) {
	if err := query.Validate(); err != nil {
		return report.Report{}, err
	}

	orders, err := h.reader.GetAll(ctx)
	if err != nil {
		return report.Report{}, err
	}

	return h.builder.Build(orders)
}
