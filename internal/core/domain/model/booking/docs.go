// Package booking contains the customer reservation aggregate and the rules
// of the four step booking wizard.
//
// A Booking is created from a Draft once every wizard step passes. Its
// status follows a small lifecycle:
//
//	Pending ──> Confirmed ──> InProgress ──> Completed
//	   │            │
//	   └────────────┴──> Cancelled
//
// Item quantities never go below zero: decrementing an empty clothing type is
// a no-op.
package booking
