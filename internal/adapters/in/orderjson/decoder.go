// Package orderjson reads the order ledger from its JSON array form:
//
//	[{"order_id": 1, "warehouse_name": "...", "highway_cost": -70,
//	  "products": [{"product": "...", "price": 450, "quantity": 1}]}]
//
// Field presence and numeric types are checked here; business rules are
// left to the order constructors.
package orderjson

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"reflect"
	"strings"

	"warehouse/internal/core/domain/model/order"

	"github.com/go-playground/validator/v10"
)

// ErrMalformedInput marks input that could not be turned into orders.
var ErrMalformedInput = errors.New("malformed orders input")

var validate = newValidator()

// OrderDTO mirrors one element of the input array. Pointers tell a missing
// number apart from a zero one.
type OrderDTO struct {
	OrderID       *int64           `json:"order_id" validate:"required"`
	WarehouseName *string          `json:"warehouse_name" validate:"required"`
	HighwayCost   *int             `json:"highway_cost" validate:"required"`
	Products      []ProductLineDTO `json:"products" validate:"required,dive"`
}

type ProductLineDTO struct {
	Product  *string `json:"product" validate:"required"`
	Price    *int    `json:"price" validate:"required"`
	Quantity *int    `json:"quantity" validate:"required"`
}

// Decode reads a JSON array of orders from r and returns them in input order.
func Decode(r io.Reader) ([]*order.Order, error) {
	dec := json.NewDecoder(r)

	var dtos []OrderDTO
	if err := dec.Decode(&dtos); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrMalformedInput, err)
	}
	if dtos == nil {
		return nil, fmt.Errorf("%w: expected an array of orders", ErrMalformedInput)
	}
	if _, err := dec.Token(); !errors.Is(err, io.EOF) {
		return nil, fmt.Errorf("%w: unexpected data after the orders array", ErrMalformedInput)
	}

	return ToDomain(dtos)
}

// ToDomain validates already decoded DTOs and maps them to orders.
func ToDomain(dtos []OrderDTO) ([]*order.Order, error) {
	orders := make([]*order.Order, 0, len(dtos))
	for i := range dtos {
		if err := validate.Struct(dtos[i]); err != nil {
			return nil, fmt.Errorf("%w: orders[%d]: %s", ErrMalformedInput, i, describe(err))
		}

		o, err := dtos[i].toDomain()
		if err != nil {
			return nil, fmt.Errorf("orders[%d]: %w", i, err)
		}
		orders = append(orders, o)
	}

	return orders, nil
}

func (dto OrderDTO) toDomain() (*order.Order, error) {
	lines := make([]order.ProductLine, 0, len(dto.Products))
	for j, p := range dto.Products {
		line, err := order.NewProductLine(*p.Product, *p.Price, *p.Quantity)
		if err != nil {
			return nil, fmt.Errorf("products[%d]: %w", j, err)
		}
		lines = append(lines, line)
	}

	return order.NewOrder(*dto.OrderID, *dto.WarehouseName, *dto.HighwayCost, lines)
}

func newValidator() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})
	return v
}

// describe turns validator output into "field is required" phrases keyed by JSON path.
func describe(err error) string {
	var fieldErrors validator.ValidationErrors
	if !errors.As(err, &fieldErrors) {
		return err.Error()
	}

	msgs := make([]string, 0, len(fieldErrors))
	for _, fe := range fieldErrors {
		path := fe.Namespace()
		if i := strings.IndexByte(path, '.'); i >= 0 {
			path = path[i+1:]
		}
		switch fe.Tag() {
		case "required":
			msgs = append(msgs, path+" is required")
		default:
			msgs = append(msgs, fmt.Sprintf("%s failed %q", path, fe.Tag()))
		}
	}
	return strings.Join(msgs, "; ")
}
