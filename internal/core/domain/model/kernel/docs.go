// Package kernel contains the shared value objects used across the laundry
// domain: identifiers, human-facing tokens, money and customer contact data.
//
// Every value object is immutable, validated on construction and carries a
// Validate method so aggregates can reject zero values restored from storage.
package kernel
