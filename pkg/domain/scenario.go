package domain

import (
	"context"
	"io"
)

// Func is the body of a scenario. It writes its narration to w and
// returns an error only on a fatal internal failure (e.g. an
// out-of-range slice). There is no recoverable error path.
type Func func(ctx context.Context, w io.Writer) error

// Scenario is a single named demonstration. Scenarios are independent:
// they share no state, take no parameters and are safe to re-run.
type Scenario struct {
	// Name is the stable identifier used for registration and CLI selection.
	Name string

	// Title is the human-readable heading printed before the scenario body.
	Title string

	// Summary is a one-line description shown by `holdfast list`.
	Summary string

	// Run executes the scenario.
	Run Func
}
