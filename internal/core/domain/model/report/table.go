package report

// Names of the report tables in output order.
const (
	TableWarehouseRates      = "01_whs_rates"
	TableProductStatistics   = "02_products_statistics"
	TableOrdersProfits       = "03_orders_profits"
	TableAverageOrdersProfit = "04_average_orders_profit"
	TableWarehouseStatistics = "05_wh_statistics"
	TableAccumulatedPercent  = "06_wh_stats_accum_perc"
	TableCategories          = "07_wh_categories"
)

// AverageOrdersProfitParameter labels the single row of the average table.
const AverageOrdersProfitParameter = "Average orders profit"

// Table is a serialization-neutral view of one report stage. Cells hold
// int, int64, float64 or string values.
type Table struct {
	Name    string
	Columns []string
	Rows    [][]any
}

// Tables renders the seven report stages in output order.
func (r Report) Tables() []Table {
	return []Table{
		r.warehouseRatesTable(),
		r.productStatsTable(),
		r.orderProfitsTable(),
		r.averageOrderProfitTable(),
		r.warehouseStatsTable(),
		rankedTable(TableAccumulatedPercent, r.Accumulated, false),
		rankedTable(TableCategories, r.Categories, true),
	}
}

func (r Report) warehouseRatesTable() Table {
	rows := make([][]any, 0, len(r.WarehouseRates))
	for _, w := range r.WarehouseRates {
		rows = append(rows, []any{w.WarehouseName, w.Rate})
	}
	return Table{Name: TableWarehouseRates, Columns: []string{"warehouses", "rates"}, Rows: rows}
}

func (r Report) productStatsTable() Table {
	rows := make([][]any, 0, len(r.ProductStats))
	for _, p := range r.ProductStats {
		rows = append(rows, []any{p.Product, p.Quantity, p.Income, p.Expenses, p.Profit})
	}
	return Table{
		Name:    TableProductStatistics,
		Columns: []string{"product", "quantity", "income", "expenses", "profit"},
		Rows:    rows,
	}
}

func (r Report) orderProfitsTable() Table {
	rows := make([][]any, 0, len(r.OrderProfits))
	for _, o := range r.OrderProfits {
		rows = append(rows, []any{o.OrderID, o.OrderProfit})
	}
	return Table{Name: TableOrdersProfits, Columns: []string{"order_id", "order_profit"}, Rows: rows}
}

func (r Report) averageOrderProfitTable() Table {
	return Table{
		Name:    TableAverageOrdersProfit,
		Columns: []string{"parameter", "value"},
		Rows:    [][]any{{AverageOrdersProfitParameter, r.AverageOrderProfit}},
	}
}

func (r Report) warehouseStatsTable() Table {
	rows := make([][]any, 0, len(r.WarehouseStats))
	for _, s := range r.WarehouseStats {
		rows = append(rows, warehouseStatCells(s))
	}
	return Table{Name: TableWarehouseStatistics, Columns: warehouseStatColumns(), Rows: rows}
}

func rankedTable(name string, ranked []RankedStat, withCategory bool) Table {
	columns := append(warehouseStatColumns(), "accumulated_percent_profit_product_of_warehouse")
	if withCategory {
		columns = append(columns, "category")
	}

	rows := make([][]any, 0, len(ranked))
	for _, s := range ranked {
		cells := append(warehouseStatCells(s.WarehouseProductStat), s.AccumulatedPercentProfitProductOfWarehouse)
		if withCategory {
			cells = append(cells, s.Category.String())
		}
		rows = append(rows, cells)
	}
	return Table{Name: name, Columns: columns, Rows: rows}
}

func warehouseStatColumns() []string {
	return []string{
		"warehouse_name",
		"product",
		"profit_product",
		"profit_warehouse",
		"percent_profit_product_of_warehouse",
	}
}

func warehouseStatCells(s WarehouseProductStat) []any {
	return []any{s.WarehouseName, s.Product, s.ProfitProduct, s.ProfitWarehouse, s.PercentProfitProductOfWarehouse}
}
