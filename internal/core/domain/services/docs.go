// Package services provides domain logic that works over many orders at once
// and does not belong to a single aggregate.
//
// The package includes:
//   - OrderFilter: the admin dashboard search and status filter
//   - ComputeStats: the dashboard counters over the same snapshot
//
// Both are pure functions of their input; they never reorder or mutate the
// snapshot they are given.
package services
