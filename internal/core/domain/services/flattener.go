package services

import (
	"warehouse/internal/core/domain/model/order"
	"warehouse/internal/core/domain/model/report"
)

// Flattener expands orders into the line item table every aggregation reads.
type Flattener struct {
	rates DeliveryRateCalculator
}

// NewFlattener creates a Flattener using the given rate calculator.
func NewFlattener(rates DeliveryRateCalculator) Flattener {
	return Flattener{rates: rates}
}

// Flatten emits one row per product line: orders in input order, lines in
// their order within each order. Nothing is merged or dropped, so a product
// sold in several orders yields several rows. The delivery rate is computed
// once per order and repeated on each of its rows.
//
// Example usage:
//
//	flattener := NewFlattener(NewDeliveryRateCalculator())
//	rows, err := flattener.Flatten(orders)
//	if err != nil {
//	    // An order could not carry its delivery cost
//	    return
//	}
//	for _, row := range rows {
//	    fmt.Println(row.OrderID, row.Product, row.Profit())
//	}
func (f Flattener) Flatten(orders []*order.Order) ([]report.LineItem, error) {
	size := 0
	for _, o := range orders {
		if err := o.Validate(); err != nil {
			return nil, err
		}
		size += len(o.Products())
	}

	rows := make([]report.LineItem, 0, size)
	for _, o := range orders {
		rate, err := f.rates.Calculate(o)
		if err != nil {
			return nil, err
		}

		for _, p := range o.Products() {
			rows = append(rows, report.LineItem{
				OrderID:       o.ID(),
				WarehouseName: o.WarehouseName(),
				Product:       p.Product(),
				Price:         p.Price(),
				DeliveryPrice: rate,
				Quantity:      p.Quantity(),
			})
		}
	}

	return rows, nil
}
