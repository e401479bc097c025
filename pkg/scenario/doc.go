// Package scenario provides the ordered registry of demonstrations and
// the built-in catalog covering ownership, borrowing and slicing.
package scenario
