// Package checker implements a small interpreter for ownership and
// borrowing annotation scripts.
//
// A script is a line-oriented program over named bindings:
//
//	---
//	id: demo
//	title: Move then use
//	---
//	let s1 = "hello"
//	move s2 = s1
//	use s1          # violation: use_after_move
//
// The checker executes every statement against the owner primitives and
// reports each rule breach with its line number. Parse errors abort;
// rule violations are collected so a script is diagnosed in one pass.
package checker
