package holdfast

import "context"

// RunAll executes the built-in catalog with default options and returns
// only after every scenario has produced its output. It is the
// programmatic equivalent of invoking the CLI with no arguments.
func RunAll(ctx context.Context, opts ...Option) error {
	return New(opts...).RunAll(ctx)
}

// RunScenarios executes the named scenarios only, in the order given.
func RunScenarios(ctx context.Context, names []string, opts ...Option) error {
	return New(opts...).Run(ctx, names...)
}
