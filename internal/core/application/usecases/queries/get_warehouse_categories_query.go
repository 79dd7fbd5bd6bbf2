package queries

import (
	"errors"

	"warehouse/internal/pkg/errs"
	"warehouse/internal/pkg/guard"
)

var ErrGetWarehouseCategoriesQueryIsNotConstructed = errors.New(
	"GetWarehouseCategoriesQuery must be created via NewGetWarehouseCategoriesQuery constructor",
)

// GetWarehouseCategoriesQuery asks for the ABC rows of one warehouse.
type GetWarehouseCategoriesQuery struct { //nolint:recvcheck //using for validation
	warehouseName string

	guard guard.ConstructorGuard
}

func NewGetWarehouseCategoriesQuery(warehouseName string) (GetWarehouseCategoriesQuery, error) {
	if warehouseName == "" {
		return GetWarehouseCategoriesQuery{}, errs.NewValueIsRequiredError("warehouse_name")
	}

	return GetWarehouseCategoriesQuery{
		warehouseName: warehouseName,
		guard:         guard.NewConstructorGuard(),
	}, nil
}

func (q GetWarehouseCategoriesQuery) Validate() error {
	return q.guard.Validate(ErrGetWarehouseCategoriesQueryIsNotConstructed)
}

func (q GetWarehouseCategoriesQuery) WarehouseName() string {
	return q.warehouseName
}
