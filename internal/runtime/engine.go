package runtime

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"sync"
	"time"

	"github.com/aretw0/holdfast/internal/logging"
	"github.com/aretw0/holdfast/pkg/domain"
	"github.com/aretw0/holdfast/pkg/scenario"
)

// ContentRenderer transforms a scenario block before it is written.
// This allows TUI rendering (markdown to ANSI) without coupling the core.
type ContentRenderer func(string) (string, error)

// Engine executes scenarios strictly in registration order.
// It holds no state between runs beyond the status, so every run over
// the same registry produces identical output.
type Engine struct {
	registry *scenario.Registry
	hooks    domain.LifecycleHooks
	logger   *slog.Logger
	writer   io.Writer
	renderer ContentRenderer

	mu     sync.Mutex
	status domain.RunStatus
}

// EngineOption defines a functional option for configuring the Engine.
type EngineOption func(*Engine)

// WithLogger sets a custom structured logger for the engine.
func WithLogger(logger *slog.Logger) EngineOption {
	return func(e *Engine) {
		if logger != nil {
			e.logger = logger
		}
	}
}

// WithLifecycleHooks registers observability hooks.
func WithLifecycleHooks(hooks domain.LifecycleHooks) EngineOption {
	return func(e *Engine) {
		e.hooks = hooks
	}
}

// WithWriter sets the destination for scenario narration (default os.Stdout).
func WithWriter(w io.Writer) EngineOption {
	return func(e *Engine) {
		if w != nil {
			e.writer = w
		}
	}
}

// WithRenderer sets a transformation applied to each scenario block.
func WithRenderer(r ContentRenderer) EngineOption {
	return func(e *Engine) {
		e.renderer = r
	}
}

// NewEngine creates a new engine over the given registry.
func NewEngine(reg *scenario.Registry, opts ...EngineOption) *Engine {
	e := &Engine{
		registry: reg,
		logger:   logging.NewNop(),
		writer:   os.Stdout,
		status:   domain.StatusNotStarted,
	}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// Status returns the current run status.
func (e *Engine) Status() domain.RunStatus {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.status
}

// Run executes the named scenarios in the order given, or every
// registered scenario in declaration order when no names are given.
// The first failure aborts the run; there is no partial recovery.
func (e *Engine) Run(ctx context.Context, names ...string) error {
	scenarios, err := e.resolve(names)
	if err != nil {
		return err
	}

	if err := e.begin(); err != nil {
		return err
	}

	for i, sc := range scenarios {
		if err := ctx.Err(); err != nil {
			e.finish(domain.StatusFailed)
			return err
		}
		if err := e.runOne(ctx, i, sc); err != nil {
			e.finish(domain.StatusFailed)
			return fmt.Errorf("scenario %s: %w", sc.Name, err)
		}
	}

	e.finish(domain.StatusCompleted)
	return nil
}

// RunAll executes the full catalog in declaration order.
func (e *Engine) RunAll(ctx context.Context) error {
	return e.Run(ctx)
}

// Scenarios returns the registered scenarios in run order.
func (e *Engine) Scenarios() []domain.Scenario {
	return e.registry.All()
}

func (e *Engine) resolve(names []string) ([]domain.Scenario, error) {
	if len(names) == 0 {
		return e.registry.All(), nil
	}
	out := make([]domain.Scenario, 0, len(names))
	for _, name := range names {
		sc, err := e.registry.Get(name)
		if err != nil {
			return nil, fmt.Errorf("%w: %s", domain.ErrScenarioNotFound, name)
		}
		out = append(out, sc)
	}
	return out, nil
}

// begin transitions to StatusRunning. A run may start from the initial
// state or from any terminal state, never over a run in progress.
func (e *Engine) begin() error {
	e.mu.Lock()
	defer e.mu.Unlock()
	if e.status != domain.StatusNotStarted && !e.status.Terminal() {
		return domain.ErrAlreadyRunning
	}
	e.status = domain.StatusRunning
	return nil
}

func (e *Engine) finish(status domain.RunStatus) {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.status = status
}

func (e *Engine) runOne(ctx context.Context, index int, sc domain.Scenario) error {
	if e.hooks.OnScenarioStart != nil {
		e.hooks.OnScenarioStart(ctx, &domain.ScenarioEvent{
			Type:     domain.EventScenarioStart,
			Scenario: sc.Name,
			Index:    index,
		})
	}

	started := time.Now()
	e.logger.Debug("scenario start", "scenario", sc.Name, "index", index)

	var body bytes.Buffer
	err := sc.Run(ctx, &body)

	if e.hooks.OnScenarioEnd != nil {
		e.hooks.OnScenarioEnd(ctx, &domain.ScenarioEvent{
			Type:     domain.EventScenarioEnd,
			Scenario: sc.Name,
			Index:    index,
			Duration: time.Since(started),
			Err:      err,
		})
	}

	if err != nil {
		e.logger.Error("scenario failed", "scenario", sc.Name, "err", err)
		return err
	}

	return e.write(sc, body.String())
}

// write emits one scenario block: a heading, the narration, and a
// trailing blank line separating it from the next block.
func (e *Engine) write(sc domain.Scenario, body string) error {
	block := fmt.Sprintf("== %s ==\n%s\n", sc.Title, body)
	if e.renderer != nil {
		rendered, err := e.renderer(block)
		if err != nil {
			// Fall back to the raw block rather than losing narration.
			e.logger.Debug("renderer failed", "scenario", sc.Name, "err", err)
		} else {
			block = rendered
		}
	}
	if _, err := io.WriteString(e.writer, block); err != nil {
		return fmt.Errorf("write narration: %w", err)
	}
	return nil
}
