// Package queries holds the read side of the order lifecycle: fetching a single
// order and listing all of them. Queries never modify the store.
package queries
