// Package report holds the derived tables of the profitability report: the
// flattened line items and every aggregate computed from them.
//
// Rows are plain data with exported fields and JSON tags matching the report
// column names. Each stage produces a fresh slice; no stage mutates its input.
package report
