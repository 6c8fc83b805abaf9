// Package order provides the order aggregate and its lifecycle rules.
//
// The package includes:
//   - Order: the aggregate root holding identity, description, line items, the derived
//     amount, the order date and the status
//   - Entry: an immutable line item (product, quantity, unit price)
//   - Status: a state machine that enforces valid order status transitions
//
// Key business rules:
//   - Orders are created in CREATED status with at least one entry
//   - The amount is always the sum of quantity × price and is recomputed whenever
//     the entries change
//   - Status follows CREATED -> PROCESSING -> COMPLETED | CANCELLED
//   - COMPLETED and CANCELLED orders cannot be edited
//   - COMPLETED orders cannot be deleted, CANCELLED ones can
package order
