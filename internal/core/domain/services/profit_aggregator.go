package services

import (
	"cmp"
	"errors"
	"fmt"
	"slices"
	"strings"

	"warehouse/internal/core/domain/model/report"
)

var (
	// ErrNoOrders is returned when an average is requested over an empty ledger.
	ErrNoOrders = errors.New("no orders to average")

	// ErrZeroWarehouseProfit is returned when a warehouse's products sum to zero
	// profit, which leaves their contribution percentages undefined.
	ErrZeroWarehouseProfit = errors.New("warehouse total profit is zero")
)

// ProfitAggregator reduces the line item table into per-product, per-order and
// per-warehouse aggregates. Grouping keys are compared exactly; product and
// warehouse names are never normalized.
type ProfitAggregator struct{}

// NewProfitAggregator creates a new ProfitAggregator instance.
func NewProfitAggregator() ProfitAggregator {
	return ProfitAggregator{}
}

// ProductStats sums quantity, income, expenses and profit per product across all
// orders and warehouses. One row per product seen, sorted by product name.
//
// Expenses use the per-unit delivery rate of each row, so they are zero or
// negative and profit is income plus expenses.
func (a ProfitAggregator) ProductStats(rows []report.LineItem) []report.ProductStats {
	byProduct := make(map[string]*report.ProductStats)

	for _, row := range rows {
		stats, ok := byProduct[row.Product]
		if !ok {
			stats = &report.ProductStats{Product: row.Product}
			byProduct[row.Product] = stats
		}

		income, expenses := row.Income(), row.Expenses()
		stats.Quantity += row.Quantity
		stats.Income += income
		stats.Expenses += expenses
		stats.Profit += income + expenses
	}

	result := make([]report.ProductStats, 0, len(byProduct))
	for _, stats := range byProduct {
		result = append(result, *stats)
	}
	slices.SortFunc(result, func(x, y report.ProductStats) int {
		return strings.Compare(x.Product, y.Product)
	})

	return result
}

// OrderProfits sums line profit per order. One row per distinct order id, sorted by id.
func (a ProfitAggregator) OrderProfits(rows []report.LineItem) []report.OrderProfit {
	byOrder := make(map[int64]int)
	for _, row := range rows {
		byOrder[row.OrderID] += row.Profit()
	}

	result := make([]report.OrderProfit, 0, len(byOrder))
	for id, profit := range byOrder {
		result = append(result, report.OrderProfit{OrderID: id, OrderProfit: profit})
	}
	slices.SortFunc(result, func(x, y report.OrderProfit) int {
		return cmp.Compare(x.OrderID, y.OrderID)
	})

	return result
}

// AverageOrderProfit is the unweighted mean of the per-order profits.
func (a ProfitAggregator) AverageOrderProfit(profits []report.OrderProfit) (float64, error) {
	if len(profits) == 0 {
		return 0, ErrNoOrders
	}

	total := 0
	for _, p := range profits {
		total += p.OrderProfit
	}

	return float64(total) / float64(len(profits)), nil
}

// WarehouseStats computes every product's share of its warehouse profit.
// One row per distinct (warehouse, product) pair, sorted by warehouse then product.
// Fails with ErrZeroWarehouseProfit instead of producing an infinite or NaN percentage.
//
// Example usage:
//
//	stats, err := aggregator.WarehouseStats(rows)
//	if errors.Is(err, ErrZeroWarehouseProfit) {
//	    // The error message names the warehouse whose products cancel out
//	    return
//	}
func (a ProfitAggregator) WarehouseStats(rows []report.LineItem) ([]report.WarehouseProductStat, error) {
	type pairKey struct {
		warehouse string
		product   string
	}

	warehouseProfit := make(map[string]int)
	pairProfit := make(map[pairKey]int)
	for _, row := range rows {
		profit := row.Profit()
		warehouseProfit[row.WarehouseName] += profit
		pairProfit[pairKey{warehouse: row.WarehouseName, product: row.Product}] += profit
	}

	keys := make([]pairKey, 0, len(pairProfit))
	for key := range pairProfit {
		keys = append(keys, key)
	}
	slices.SortFunc(keys, func(x, y pairKey) int {
		return cmp.Or(strings.Compare(x.warehouse, y.warehouse), strings.Compare(x.product, y.product))
	})

	result := make([]report.WarehouseProductStat, 0, len(keys))
	for _, key := range keys {
		total := warehouseProfit[key.warehouse]
		if total == 0 {
			return nil, fmt.Errorf("warehouse %q: %w", key.warehouse, ErrZeroWarehouseProfit)
		}

		profit := pairProfit[key]
		result = append(result, report.WarehouseProductStat{
			WarehouseName:                   key.warehouse,
			Product:                         key.product,
			ProfitProduct:                   profit,
			ProfitWarehouse:                 total,
			PercentProfitProductOfWarehouse: float64(profit) / float64(total) * 100,
		})
	}

	return result, nil
}
