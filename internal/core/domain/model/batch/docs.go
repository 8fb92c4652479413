// Package batch groups laundry orders that share a wash programme into one
// machine load.
//
// Lifecycle:
//
//	Created ──> Washing ──> Drying ──> Completed
//
// Every forward step stamps its own timestamp once.
package batch
