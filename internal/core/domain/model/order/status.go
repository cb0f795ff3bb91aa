package order

import (
	"fmt"

	"storefront/internal/pkg/errs"
)

// Status represents the lifecycle state of an order.
// It implements a state machine with defined transitions to ensure
// orders follow the correct business workflow.
//
// State transitions:
//
//	pending ──┬──> dispatched ──> delivered ──┬──> received ──> returned
//	          │                               └─────────────────^
//	          └──> cancelled
//
// returned and cancelled are terminal states with no outgoing transitions.
//
// Status is a value object that validates state transitions and provides
// string representations for persistence and the JSON API.
type Status int

const (
	// Unknown represents an invalid or undefined status.
	// This value (0) helps catch uninitialized Status values.
	Unknown Status = iota

	// Pending is the initial status when an order is placed.
	// Pending orders can be dispatched or cancelled.
	Pending

	// Dispatched indicates the order has been handed to the carrier.
	Dispatched

	// Delivered indicates the carrier has delivered the order.
	Delivered

	// Received indicates the customer confirmed receipt.
	Received

	// Returned indicates the customer returned the order. Terminal.
	Returned

	// Cancelled indicates the order was cancelled before dispatch. Terminal.
	Cancelled
)

// getStatusStrings returns a map of Status values to their string representations.
// All statuses are included for string conversion.
func getStatusStrings() map[Status]string {
	return map[Status]string{
		Unknown:    "unknown",
		Pending:    "pending",
		Dispatched: "dispatched",
		Delivered:  "delivered",
		Received:   "received",
		Returned:   "returned",
		Cancelled:  "cancelled",
	}
}

// getValidStatusStrings returns a map of only valid Status values.
// Only valid statuses are included to support validation and parsing.
func getValidStatusStrings() map[Status]string {
	//nolint:exhaustive // Unknown is intentionally excluded as it's invalid
	return map[Status]string{
		Pending:    "pending",
		Dispatched: "dispatched",
		Delivered:  "delivered",
		Received:   "received",
		Returned:   "returned",
		Cancelled:  "cancelled",
	}
}

// getTransitions returns the fixed transition table: for each status, the set
// of statuses reachable in a single step. Statuses absent from a set are not
// reachable from that status under any circumstances.
func getTransitions() map[Status][]Status {
	return map[Status][]Status{
		Pending:    {Dispatched, Cancelled},
		Dispatched: {Delivered},
		Delivered:  {Received, Returned},
		Received:   {Returned},
		Returned:   {},
		Cancelled:  {},
	}
}

// StatusFromString parses a status from its lowercase string form as used in
// the JSON API and persistence. Returns an error for unrecognized values.
func StatusFromString(s string) (Status, error) {
	for status, str := range getValidStatusStrings() {
		if str == s {
			return status, nil
		}
	}
	return Unknown, errs.NewValueIsInvalidErrorWithCause(
		"status",
		fmt.Errorf("%q is not a valid order status", s),
	)
}

// Validate checks if the Status value is valid.
//
// Valid statuses are: pending, dispatched, delivered, received, returned,
// cancelled. Unknown (0) and any other values are invalid.
func (s Status) Validate() error {
	if _, ok := getValidStatusStrings()[s]; !ok {
		return errs.NewValueIsInvalidErrorWithCause(
			"status",
			fmt.Errorf("%d is not a valid status", s),
		)
	}
	return nil
}

// String returns the lowercase name of the status as used in the JSON API.
// Returns "unknown" for invalid status values.
func (s Status) String() string {
	if str, ok := getStatusStrings()[s]; ok {
		return str
	}
	return "unknown"
}

// IsTerminal reports whether the status has no outgoing transitions.
func (s Status) IsTerminal() bool {
	next, ok := getTransitions()[s]
	return ok && len(next) == 0
}

// CanTransitionTo reports whether target is reachable from s in one step.
// This is a pure membership check against the transition table with no side
// effects; invalid statuses on either side simply yield false.
func (s Status) CanTransitionTo(target Status) bool {
	for _, next := range getTransitions()[s] {
		if next == target {
			return true
		}
	}
	return false
}

// TransitionTo returns target if the transition from s is legal.
//
// Returns an error naming both states when the transition is not in the
// table, so callers can surface a descriptive validation message.
func (s Status) TransitionTo(target Status) (Status, error) {
	if err := target.Validate(); err != nil {
		return Unknown, err
	}

	if !s.CanTransitionTo(target) {
		return Unknown, errs.NewValueIsInvalidErrorWithCause(
			"status transition",
			fmt.Errorf("cannot change order status from %s to %s", s, target),
		)
	}

	return target, nil
}
