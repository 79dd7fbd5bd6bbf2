package services

import (
	"fmt"

	"warehouse/internal/core/domain/model/order"
	"warehouse/internal/core/domain/model/report"
)

// ReportBuilder runs the whole analysis over one batch of orders.
//
// Example usage:
//
//	builder := services.NewReportBuilder()
//	r, err := builder.Build(orders)
//	if errors.Is(err, services.ErrZeroWarehouseProfit) {
//	    // some warehouse broke even, percentages are undefined
//	}
type ReportBuilder struct {
	rates      DeliveryRateCalculator
	flattener  Flattener
	aggregator ProfitAggregator
	analyzer   ABCAnalyzer
}

// NewReportBuilder wires the stage services together.
func NewReportBuilder() ReportBuilder {
	rates := NewDeliveryRateCalculator()
	return ReportBuilder{
		rates:      rates,
		flattener:  NewFlattener(rates),
		aggregator: NewProfitAggregator(),
		analyzer:   NewABCAnalyzer(),
	}
}

// Build runs the stages in order. The first failing stage aborts the build and
// no partial report is returned.
func (b ReportBuilder) Build(orders []*order.Order) (report.Report, error) {
	warehouseRates, err := b.rates.WarehouseRates(orders)
	if err != nil {
		return report.Report{}, fmt.Errorf("warehouse rates: %w", err)
	}

	lineItems, err := b.flattener.Flatten(orders)
	if err != nil {
		return report.Report{}, fmt.Errorf("flatten orders: %w", err)
	}

	orderProfits := b.aggregator.OrderProfits(lineItems)
	average, err := b.aggregator.AverageOrderProfit(orderProfits)
	if err != nil {
		return report.Report{}, fmt.Errorf("average order profit: %w", err)
	}

	warehouseStats, err := b.aggregator.WarehouseStats(lineItems)
	if err != nil {
		return report.Report{}, fmt.Errorf("warehouse statistics: %w", err)
	}

	accumulated := b.analyzer.Accumulate(warehouseStats)

	return report.Report{
		WarehouseRates:     warehouseRates,
		LineItems:          lineItems,
		ProductStats:       b.aggregator.ProductStats(lineItems),
		OrderProfits:       orderProfits,
		AverageOrderProfit: average,
		WarehouseStats:     warehouseStats,
		Accumulated:        accumulated,
		Categories:         b.analyzer.Categorize(accumulated),
	}, nil
}
