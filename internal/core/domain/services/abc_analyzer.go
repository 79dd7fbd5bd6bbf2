package services

import (
	"cmp"
	"slices"

	"warehouse/internal/core/domain/model/report"
)

// ABCAnalyzer ranks products inside each warehouse by their profit contribution
// and classifies them into A, B and C tiers.
type ABCAnalyzer struct{}

// NewABCAnalyzer creates a new ABCAnalyzer instance.
func NewABCAnalyzer() ABCAnalyzer {
	return ABCAnalyzer{}
}

// Accumulate sorts each warehouse's rows by contribution descending and adds the
// running contribution total, restarting at every warehouse.
//
// Ordering guarantees:
//   - warehouse groups appear in order of their first row in stats
//   - the sort is stable, so equal percentages keep their input order
//
// The returned rows carry no category yet.
//
// Example usage:
//
//	analyzer := NewABCAnalyzer()
//	ranked := analyzer.Categorize(analyzer.Accumulate(stats))
//	for _, row := range ranked {
//	    fmt.Println(row.WarehouseName, row.Product, row.Category)
//	}
func (a ABCAnalyzer) Accumulate(stats []report.WarehouseProductStat) []report.RankedStat {
	groups := make(map[string][]report.WarehouseProductStat)
	warehouses := make([]string, 0)
	for _, s := range stats {
		if _, ok := groups[s.WarehouseName]; !ok {
			warehouses = append(warehouses, s.WarehouseName)
		}
		groups[s.WarehouseName] = append(groups[s.WarehouseName], s)
	}

	result := make([]report.RankedStat, 0, len(stats))
	for _, warehouse := range warehouses {
		group := groups[warehouse]
		slices.SortStableFunc(group, func(x, y report.WarehouseProductStat) int {
			return cmp.Compare(y.PercentProfitProductOfWarehouse, x.PercentProfitProductOfWarehouse)
		})

		accumulated := 0.0
		for _, s := range group {
			accumulated += s.PercentProfitProductOfWarehouse
			result = append(result, report.RankedStat{
				WarehouseProductStat:                       s,
				AccumulatedPercentProfitProductOfWarehouse: accumulated,
			})
		}
	}

	return result
}

// Categorize assigns report.CategoryFor(accumulated) to every row. Rows are
// classified independently and returned in input order.
func (a ABCAnalyzer) Categorize(ranked []report.RankedStat) []report.RankedStat {
	result := make([]report.RankedStat, len(ranked))
	for i, r := range ranked {
		r.Category = report.CategoryFor(r.AccumulatedPercentProfitProductOfWarehouse)
		result[i] = r
	}
	return result
}
