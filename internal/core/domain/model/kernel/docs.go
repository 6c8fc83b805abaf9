// Package kernel provides core domain primitives shared by the order model.
//
// The package includes:
//   - ID: the positive integer identifier the order store allocates
//   - Date: a calendar date without time of day, serialized as YYYY-MM-DD
//
// Both are immutable values and safe for concurrent use.
package kernel
