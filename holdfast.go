package holdfast

import (
	"context"
	"io"
	"log/slog"

	"github.com/aretw0/holdfast/internal/runtime"
	"github.com/aretw0/holdfast/pkg/domain"
	"github.com/aretw0/holdfast/pkg/scenario"
)

// Engine is the high-level entry point for the Holdfast library.
// It wraps the internal runtime and provides a simplified API for consumers.
type Engine struct {
	runtime  *runtime.Engine
	registry *scenario.Registry
	hooks    domain.LifecycleHooks
	logger   *slog.Logger
	writer   io.Writer
	renderer ContentRenderer
}

// ContentRenderer transforms a scenario block before it is written.
// This allows for TUI rendering (markdown to ANSI) without coupling the
// core package.
type ContentRenderer = runtime.ContentRenderer

// Option defines a functional option for configuring the Engine.
type Option func(*Engine)

// WithLifecycleHooks registers observability hooks.
func WithLifecycleHooks(hooks domain.LifecycleHooks) Option {
	return func(e *Engine) {
		e.hooks = hooks
	}
}

// WithRegistry injects a custom scenario registry, bypassing the
// built-in catalog.
func WithRegistry(r *scenario.Registry) Option {
	return func(e *Engine) {
		e.registry = r
	}
}

// WithLogger sets a custom structured logger for the engine.
func WithLogger(logger *slog.Logger) Option {
	return func(e *Engine) {
		e.logger = logger
	}
}

// WithWriter sets the destination for scenario narration (default os.Stdout).
func WithWriter(w io.Writer) Option {
	return func(e *Engine) {
		e.writer = w
	}
}

// WithRenderer sets a transformation applied to each scenario block.
func WithRenderer(r ContentRenderer) Option {
	return func(e *Engine) {
		e.renderer = r
	}
}

// New initializes a new Holdfast Engine.
// By default it runs the built-in catalog; use WithRegistry to supply
// your own scenarios.
func New(opts ...Option) *Engine {
	eng := &Engine{}
	for _, opt := range opts {
		opt(eng)
	}

	if eng.registry == nil {
		eng.registry = scenario.Default()
	}

	runtimeOpts := []runtime.EngineOption{
		runtime.WithLifecycleHooks(eng.hooks),
	}
	if eng.logger != nil {
		runtimeOpts = append(runtimeOpts, runtime.WithLogger(eng.logger))
	}
	if eng.writer != nil {
		runtimeOpts = append(runtimeOpts, runtime.WithWriter(eng.writer))
	}
	if eng.renderer != nil {
		runtimeOpts = append(runtimeOpts, runtime.WithRenderer(eng.renderer))
	}

	eng.runtime = runtime.NewEngine(eng.registry, runtimeOpts...)
	return eng
}

// RunAll executes every registered scenario in declaration order and
// returns only after each has produced its output. The first failure
// aborts the run.
func (e *Engine) RunAll(ctx context.Context) error {
	return e.runtime.RunAll(ctx)
}

// Run executes the named scenarios only. With no names it behaves like
// RunAll.
func (e *Engine) Run(ctx context.Context, names ...string) error {
	return e.runtime.Run(ctx, names...)
}

// Scenarios returns the registered scenarios in run order, for
// introspection tools.
func (e *Engine) Scenarios() []domain.Scenario {
	return e.runtime.Scenarios()
}

// Status returns the current run status.
func (e *Engine) Status() domain.RunStatus {
	return e.runtime.Status()
}
