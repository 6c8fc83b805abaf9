// Package commands contains business operations that modify orders.
// Implements the Command pattern for write operations in the CQRS architecture.
// All commands follow a consistent pattern: construction-time validation, a guarded
// command value, and a handler that applies the lifecycle rules against the order store.
package commands
