// Package counters provides the registry of readability counting strategies.
//
// A strategy is an implementation of driven.Counter. Two are built in:
//
//   - basic: one regular expression per rule (package basic)
//   - efficient: a single byte scan (package efficient)
//
// Strategies differ only in how they scan; for any input they return the
// same counts. The shared suite in package counterstest checks this.
package counters
