// Package order provides domain entities and business logic for order management
// in the restaurant system. It implements the Order aggregate root with lifecycle
// management, item ownership and state transitions.
//
// The package includes:
//   - Order: The aggregate root that manages order identity, items, totals, and lifecycle
//   - OrderItem: An owned line item with a price snapshot and quantity
//   - Status: A state machine enforcing the order status workflow
//   - Location: A tagged variant binding an order to exactly one table or address
//
// Key business rules:
//   - An order's total always equals the sum of its items' line totals
//   - Status follows the workflow Placed -> Preparing -> Ready -> Shipped -> Delivered -> Completed,
//     with Cancelled reachable from any non-terminal status
//   - Completed and Cancelled are terminal; no transition leaves them
//   - Items may only change before the order reaches Ready
//   - Merging transfers items between orders, never copies them
//
// The package follows Domain-Driven Design principles, providing rich domain
// behavior, encapsulation, and validation to ensure business rules are enforced.
package order
