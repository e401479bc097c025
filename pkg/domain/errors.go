package domain

import "errors"

// ErrMoved is returned when a binding is used after its value has been
// transferred to another owner.
var ErrMoved = errors.New("value moved")

// ErrBorrowConflict is returned when an exclusive borrow would overlap a
// live borrow, or a value is used while exclusively borrowed.
var ErrBorrowConflict = errors.New("borrow conflict")

// ErrOutOfRange is returned when a slice region falls outside the valid
// bounds of its backing sequence.
var ErrOutOfRange = errors.New("slice out of range")

// ErrScenarioNotFound is returned when a scenario name cannot be resolved
// in the registry.
var ErrScenarioNotFound = errors.New("scenario not found")

// ErrAlreadyRunning is returned when a run is requested while another run
// is still in progress on the same engine.
var ErrAlreadyRunning = errors.New("run already in progress")
