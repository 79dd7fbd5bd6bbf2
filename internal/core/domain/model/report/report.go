package report

// Report bundles every stage output of one profitability run.
type Report struct {
	WarehouseRates     []WarehouseRate        `json:"warehouse_rates"`
	LineItems          []LineItem             `json:"line_items"`
	ProductStats       []ProductStats         `json:"product_stats"`
	OrderProfits       []OrderProfit          `json:"order_profits"`
	AverageOrderProfit float64                `json:"average_order_profit"`
	WarehouseStats     []WarehouseProductStat `json:"warehouse_stats"`
	Accumulated        []RankedStat           `json:"accumulated"`
	Categories         []RankedStat           `json:"categories"`
}

// CategoriesOf returns the categorized rows of one warehouse in ranking order.
func (r Report) CategoriesOf(warehouseName string) []RankedStat {
	rows := make([]RankedStat, 0)
	for _, row := range r.Categories {
		if row.WarehouseName == warehouseName {
			rows = append(rows, row)
		}
	}
	return rows
}
