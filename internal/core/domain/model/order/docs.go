// Package order provides the validated in-memory representation of a ledger order
// and its product lines.
//
// The package includes:
//   - ProductLine: one product with its unit price and ordered quantity
//   - Order: an order shipped from one warehouse, carrying its total delivery
//     (highway) cost and an ordered, non-empty list of product lines
//
// Key business rules:
//   - Product and warehouse names are opaque keys; empty strings are allowed
//   - Quantities are strictly positive
//   - An order carries at least one product line
//   - Both types are immutable once constructed and can only be created
//     through their constructors
package order
