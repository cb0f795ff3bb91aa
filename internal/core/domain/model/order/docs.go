// Package order provides domain entities and business logic for order management
// in the storefront. It implements the Order aggregate root with lifecycle
// management and state transitions.
//
// The package includes:
//   - Order: The aggregate root that manages order identity, line items, totals,
//     and lifecycle
//   - Status: A state machine that enforces valid order status transitions
//   - LineItem: An immutable purchased-product entry with quantity and unit price
//   - Customer: The buyer's identity attached to an order
//
// Key business rules:
//   - Orders must have a valid unique identifier, a customer, and at least one line item
//   - Line items and totals are immutable once the order is created
//   - Order status follows a fixed transition graph:
//     pending -> dispatched -> delivered -> received -> returned,
//     with pending -> cancelled as the only other exit
//   - Returned and cancelled are terminal statuses with no outgoing transitions
//   - Cancellation requires pending status and a reason; returns require delivered
//     or received status and a reason
//   - Every successful mutation bumps the aggregate version used for optimistic
//     concurrency control in the persistence layer
//
// The package follows Domain-Driven Design principles, providing rich domain
// behavior, encapsulation, and validation to ensure business rules are enforced.
package order
