// Package kernel provides the shared domain primitives used by the order and
// kitchen models.
//
// The package includes:
//   - UUID: an identifier value object whose zero value is invalid
//   - Money: a decimal amount used for prices and order totals
package kernel
