// Package order provides the Order aggregate: a customer's open tab for one
// table session, and the line items tracked through acceptance, preparation
// and serving.
//
// The package includes:
//   - Order: the aggregate root owning its items, totals and payment state
//   - Item: one line item with its menu snapshot and per-stage timestamps
//   - Status, ItemStatus: the order-level and item-level transition tables
//   - PaymentStatus, Type: order metadata enums
//
// Key business rules:
//   - Item status moves only along the item-level table; SERVED, REJECTED
//     and CANCELLED are terminal
//   - Bulk item operations are all-or-nothing
//   - Order status is recomputed from the item set after every item change
//   - COMPLETED requires every item terminal and payment PAID
//   - Rejection requires a reason of at least 5 characters
package order
