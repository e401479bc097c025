// Package owner implements the single-owner value model the scenarios
// and the checker are built on.
//
// Three rules apply to every Text:
//
//  1. Each value has exactly one owner at a time.
//  2. Move transfers ownership and invalidates the source binding.
//  3. Access is either many shared read-only borrows or one exclusive
//     borrow, never both.
//
// Go cannot enforce these statically, so violations surface as runtime
// errors: domain.ErrMoved, domain.ErrBorrowConflict and
// domain.ErrOutOfRange.
package owner
