// Package kernel provides shared domain primitives for the warehouse reporting system.
//
// The package includes:
//   - ReportID: the identifier of one report generation run
//
// Primitives are immutable value objects; their zero values fail validation.
package kernel
