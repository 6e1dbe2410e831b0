// Package tcg provides the functions and types for managing a personal
// trading-card inventory and deriving its financial picture. It is designed
// to be local-first and auditable, keeping the full purchase, sale and
// opening history in a plain-text ledger the user owns.
//
// The core functionalities include:
//   - Ledger Management: Recording product declarations, purchases, sales
//     and openings (sealed product consumed rather than sold) in an
//     immutable, chronological record.
//   - Cost Allocation: Weighted-average unit costs per product, with each
//     purchase's delivery fee spread proportionally across its line items.
//   - Revenue Allocation: Each sale's shipping, platform fees and tax spread
//     across its line items proportionally to gross revenue.
//   - Profitability: Realized profit, ROI, break-even revenue and grouped
//     profit breakdowns derived from the allocated figures.
//   - Inventory Reconciliation: Quantities on hand (received minus sold
//     minus opened) with per-product cost and resale estimates.
//   - Data Persistence: Encoding and decoding the ledger to and from a
//     human-readable, version-controllable JSONL format.
//
// This package serves as the foundational logic for the `trackmytcg`
// command-line tool; every derivation is a pure function of the ledger, so
// results are reproducible from the file alone.
package tcg
