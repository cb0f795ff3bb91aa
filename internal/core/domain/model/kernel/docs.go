// Package kernel contains shared value objects used across the domain model.
//
// The kernel holds types that carry no aggregate-specific behavior but enforce
// invariants every aggregate relies on:
//   - UUID: validated entity identifier wrapping github.com/google/uuid
//   - Money: non-negative monetary amount stored as integer cents
//
// All kernel types are immutable. The zero value of each type is invalid and
// fails Validate; instances must be created through the provided constructors.
package kernel
