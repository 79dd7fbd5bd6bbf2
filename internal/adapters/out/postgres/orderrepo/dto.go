// Package orderrepo persists the order ledger with GORM. Orders and their
// product lines live in two tables; both keep their original ordering through
// a sequence column and a per-order position.
package orderrepo

import (
	"warehouse/internal/core/domain/model/order"
)

// OrderDTO is the database row of one ledger order. Sequence records insertion
// order so GetAll can return the ledger as it was imported.
type OrderDTO struct {
	ID            int64            `gorm:"primaryKey;autoIncrement:false"`
	Sequence      int64            `gorm:"autoIncrement;uniqueIndex"`
	WarehouseName string           `gorm:"type:varchar(255);not null;index"`
	HighwayCost   int              `gorm:"type:int;not null"`
	Products      []ProductLineDTO `gorm:"foreignKey:OrderID;constraint:OnDelete:CASCADE"`
}

// TableName overrides GORM's default naming convention.
func (OrderDTO) TableName() string {
	return "orders"
}

// ProductLineDTO is one product line. Position is the line's index inside its order.
type ProductLineDTO struct {
	ID       uint   `gorm:"primaryKey"`
	OrderID  int64  `gorm:"not null;uniqueIndex:idx_product_lines_order_position"`
	Position int    `gorm:"not null;uniqueIndex:idx_product_lines_order_position"`
	Product  string `gorm:"type:varchar(255);not null"`
	Price    int    `gorm:"type:int;not null"`
	Quantity int    `gorm:"type:int;not null"`
}

func (ProductLineDTO) TableName() string {
	return "product_lines"
}

func fromDomain(o *order.Order) OrderDTO {
	products := o.Products()
	lines := make([]ProductLineDTO, 0, len(products))
	for i, p := range products {
		lines = append(lines, ProductLineDTO{
			OrderID:  o.ID(),
			Position: i,
			Product:  p.Product(),
			Price:    p.Price(),
			Quantity: p.Quantity(),
		})
	}

	return OrderDTO{
		ID:            o.ID(),
		WarehouseName: o.WarehouseName(),
		HighwayCost:   o.HighwayCost(),
		Products:      lines,
	}
}

// toDomain rebuilds the order through its constructors, so rows that violate
// the domain rules fail here instead of reaching the report.
func toDomain(dto OrderDTO) (*order.Order, error) {
	lines := make([]order.ProductLine, 0, len(dto.Products))
	for _, l := range dto.Products {
		line, err := order.NewProductLine(l.Product, l.Price, l.Quantity)
		if err != nil {
			return nil, err
		}
		lines = append(lines, line)
	}

	return order.NewOrder(dto.ID, dto.WarehouseName, dto.HighwayCost, lines)
}
