// Package domain holds the core vocabulary of holdfast: scenarios, run
// status, lifecycle events and the sentinel errors shared by the owner
// primitives, the runtime and the checker.
package domain
