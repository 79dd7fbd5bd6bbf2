package queries

import (
	"errors"

	"warehouse/internal/pkg/guard"
)

var ErrListWarehousesQueryIsNotConstructed = errors.New(
	"ListWarehousesQuery must be created via NewListWarehousesQuery constructor",
)

// ListWarehousesQuery lists the warehouses present in the stored ledger.
type ListWarehousesQuery struct {
	guard guard.ConstructorGuard
}

func NewListWarehousesQuery() ListWarehousesQuery {
	return ListWarehousesQuery{guard: guard.NewConstructorGuard()}
}

func (q ListWarehousesQuery) Validate() error {
	return q.guard.Validate(ErrListWarehousesQueryIsNotConstructed)
}

// ListWarehousesQueryResponse is one warehouse with its ledger volume.
type ListWarehousesQueryResponse struct {
	WarehouseName string `json:"warehouse_name"`
	Orders        int64  `json:"orders"`
	Units         int64  `json:"units"`
}
