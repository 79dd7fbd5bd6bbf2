package queries

import (
	"context"

	"gorm.io/gorm"
)

// ListWarehousesQueryHandler reads warehouse totals straight from the ledger tables.
type ListWarehousesQueryHandler struct {
	db *gorm.DB
}

func NewListWarehousesQueryHandler(db *gorm.DB) ListWarehousesQueryHandler {
	return ListWarehousesQueryHandler{db: db}
}

// Handle returns warehouses sorted by name in byte order, matching the report tables.
func (h ListWarehousesQueryHandler) Handle(
	ctx context.Context,
	query ListWarehousesQuery,
) ([]ListWarehousesQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	warehouses := make([]ListWarehousesQueryResponse, 0)

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			o.warehouse_name,
			COUNT(DISTINCT o.id),
			COALESCE(SUM(pl.quantity), 0)
		FROM orders o
		LEFT JOIN product_lines pl ON pl.order_id = o.id
		GROUP BY o.warehouse_name
		ORDER BY o.warehouse_name COLLATE "C"
	`).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	for rows.Next() {
		var w ListWarehousesQueryResponse
		if err = rows.Scan(&w.WarehouseName, &w.Orders, &w.Units); err != nil {
			return nil, err
		}
		warehouses = append(warehouses, w)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return warehouses, nil
}
