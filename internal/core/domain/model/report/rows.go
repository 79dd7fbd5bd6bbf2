package report

// WarehouseRate is the per-unit delivery rate of the first order seen for a warehouse.
type WarehouseRate struct {
	WarehouseName string `json:"warehouse_name"`
	Rate          int    `json:"rate"`
}

// LineItem is one (order, product) pair of the flattened ledger. DeliveryPrice
// is the per-unit delivery cost of the order and repeats on every line of it.
type LineItem struct {
	OrderID       int64  `json:"order_id"`
	WarehouseName string `json:"warehouse_name"`
	Product       string `json:"product"`
	Price         int    `json:"price"`
	DeliveryPrice int    `json:"delivery_price"`
	Quantity      int    `json:"quantity"`
}

// Income is price times quantity.
func (l LineItem) Income() int {
	return l.Price * l.Quantity
}

// Expenses is the delivery cost allocated to the line, non-positive for usual ledgers.
func (l LineItem) Expenses() int {
	return l.Quantity * l.DeliveryPrice
}

// Profit is (price + delivery price) * quantity, equal to Income() + Expenses().
func (l LineItem) Profit() int {
	return (l.Price + l.DeliveryPrice) * l.Quantity
}

// ProductStats sums one product over every order and warehouse.
// Profit always equals Income + Expenses.
type ProductStats struct {
	Product  string `json:"product"`
	Quantity int    `json:"quantity"`
	Income   int    `json:"income"`
	Expenses int    `json:"expenses"`
	Profit   int    `json:"profit"`
}

// OrderProfit is the summed line profit of one order.
type OrderProfit struct {
	OrderID     int64 `json:"order_id"`
	OrderProfit int   `json:"order_profit"`
}

// WarehouseProductStat is the contribution of one product to its warehouse profit.
type WarehouseProductStat struct {
	WarehouseName                   string  `json:"warehouse_name"`
	Product                         string  `json:"product"`
	ProfitProduct                   int     `json:"profit_product"`
	ProfitWarehouse                 int     `json:"profit_warehouse"`
	PercentProfitProductOfWarehouse float64 `json:"percent_profit_product_of_warehouse"`
}

// RankedStat extends WarehouseProductStat with the running contribution total
// inside its warehouse and the ABC category derived from it. Category stays
// UnknownCategory until the categorization stage runs.
type RankedStat struct {
	WarehouseProductStat

	AccumulatedPercentProfitProductOfWarehouse float64  `json:"accumulated_percent_profit_product_of_warehouse"`
	Category                                   Category `json:"category,omitzero"`
}
