// Package kitchen provides the KitchenTicket aggregate: the kitchen-facing work
// unit created from a batch of accepted order items.
//
// A ticket is a back-reference to its order, not part of it. Once created its
// lifecycle is independent:
//
//	PENDING -> IN_PROGRESS -> READY -> COMPLETED (bump)
//
// with CANCELLED reachable from every non-terminal state and READY returning to
// IN_PROGRESS when an item is recalled.
package kitchen
