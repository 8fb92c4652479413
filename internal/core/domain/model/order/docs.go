// Package order provides the laundry order aggregate and its lifecycle.
//
// The package includes:
//   - Order: the aggregate root tracking a bag of laundry from drop-off to delivery
//   - Status: the linear state machine pending -> picked_up -> washing -> drying -> completed -> delivered
//   - WashType and PickupType: service classification chosen at creation
//   - StatusChange: the audit record produced by every status write
//
// Key business rules:
//   - Staff may only advance an order to the single successor of its current status,
//     stamping the lifecycle timestamp that matches the new status
//   - Admins may set any status directly; overrides never stamp timestamps or write notes
//   - Every status write yields exactly one StatusChange whose previous status equals
//     the status held immediately before the write
//   - The laundry id and owner are immutable once assigned
package order
