// Package services implements the profitability analysis as a chain of pure
// domain services over the order ledger.
//
// The package includes:
//   - DeliveryRateCalculator: per-unit delivery cost of an order and per-warehouse rates
//   - Flattener: expands orders into one LineItem per (order, product) pair
//   - ProfitAggregator: product statistics, order profits and warehouse contributions
//   - ABCAnalyzer: per-warehouse ranking, running totals and ABC categories
//   - ReportBuilder: runs every stage in order and bundles the outputs
//
// Every service is stateless. Each stage reads its input without modifying it
// and returns freshly allocated rows, so stages can run from several goroutines
// on disjoint inputs.
package services
