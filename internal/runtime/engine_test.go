package runtime_test

import (
	"bytes"
	"context"
	"errors"
	"io"
	"log/slog"
	"strings"
	"testing"

	"github.com/aretw0/holdfast/internal/runtime"
	"github.com/aretw0/holdfast/pkg/domain"
	"github.com/aretw0/holdfast/pkg/scenario"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func reg(scs ...domain.Scenario) *scenario.Registry {
	r := scenario.NewRegistry()
	for _, sc := range scs {
		r.Register(sc)
	}
	return r
}

func say(line string) domain.Func {
	return func(ctx context.Context, w io.Writer) error {
		_, err := io.WriteString(w, line+"\n")
		return err
	}
}

func TestEngine_RunAllInOrder(t *testing.T) {
	var buf bytes.Buffer
	e := runtime.NewEngine(reg(
		domain.Scenario{Name: "one", Title: "One", Run: say("first")},
		domain.Scenario{Name: "two", Title: "Two", Run: say("second")},
	), runtime.WithWriter(&buf))

	require.NoError(t, e.RunAll(context.Background()))
	assert.Equal(t, "== One ==\nfirst\n\n== Two ==\nsecond\n\n", buf.String())
	assert.Equal(t, domain.StatusCompleted, e.Status())
}

func TestEngine_RunAllTwiceIsByteIdentical(t *testing.T) {
	var first, second bytes.Buffer

	e := runtime.NewEngine(scenario.Default(), runtime.WithWriter(&first))
	require.NoError(t, e.RunAll(context.Background()))

	e = runtime.NewEngine(scenario.Default(), runtime.WithWriter(&second))
	require.NoError(t, e.RunAll(context.Background()))

	assert.NotEmpty(t, first.String())
	assert.Equal(t, first.String(), second.String())
}

func TestEngine_RunSubsetAndUnknown(t *testing.T) {
	var buf bytes.Buffer
	e := runtime.NewEngine(scenario.Default(), runtime.WithWriter(&buf))

	require.NoError(t, e.Run(context.Background(), "copy-simple"))
	assert.Contains(t, buf.String(), "x = 5, y = 5")

	err := e.Run(context.Background(), "does-not-exist")
	assert.ErrorIs(t, err, domain.ErrScenarioNotFound)
}

func TestEngine_FirstFailureAborts(t *testing.T) {
	boom := errors.New("boom")
	var buf bytes.Buffer
	e := runtime.NewEngine(reg(
		domain.Scenario{Name: "ok", Title: "OK", Run: say("fine")},
		domain.Scenario{Name: "bad", Title: "Bad", Run: func(ctx context.Context, w io.Writer) error {
			return boom
		}},
		domain.Scenario{Name: "never", Title: "Never", Run: say("unreached")},
	), runtime.WithWriter(&buf))

	err := e.RunAll(context.Background())
	require.ErrorIs(t, err, boom)
	assert.Contains(t, err.Error(), "scenario bad")
	assert.Equal(t, domain.StatusFailed, e.Status())
	assert.NotContains(t, buf.String(), "unreached")
}

func TestEngine_FailedScenarioEmitsNothing(t *testing.T) {
	// A scenario that errors after partial writes must not leak them:
	// narration is buffered and only committed on success.
	var buf bytes.Buffer
	e := runtime.NewEngine(reg(
		domain.Scenario{Name: "partial", Title: "Partial", Run: func(ctx context.Context, w io.Writer) error {
			io.WriteString(w, "half a line")
			return errors.New("boom")
		}},
	), runtime.WithWriter(&buf))

	require.Error(t, e.RunAll(context.Background()))
	assert.Empty(t, buf.String())
}

func TestEngine_Hooks(t *testing.T) {
	var events []string
	hooks := domain.LifecycleHooks{
		OnScenarioStart: func(ctx context.Context, e *domain.ScenarioEvent) {
			events = append(events, "start:"+e.Scenario)
		},
		OnScenarioEnd: func(ctx context.Context, e *domain.ScenarioEvent) {
			events = append(events, "end:"+e.Scenario)
		},
	}

	e := runtime.NewEngine(reg(
		domain.Scenario{Name: "a", Title: "A", Run: say("a")},
		domain.Scenario{Name: "b", Title: "B", Run: say("b")},
	), runtime.WithWriter(io.Discard), runtime.WithLifecycleHooks(hooks))

	require.NoError(t, e.RunAll(context.Background()))
	assert.Equal(t, []string{"start:a", "end:a", "start:b", "end:b"}, events)
}

func TestEngine_ContextCancellation(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	e := runtime.NewEngine(scenario.Default(), runtime.WithWriter(io.Discard))
	err := e.RunAll(ctx)
	assert.ErrorIs(t, err, context.Canceled)
	assert.Equal(t, domain.StatusFailed, e.Status())
}

func TestEngine_StatusLifecycle(t *testing.T) {
	statusDuringRun := domain.RunStatus("")

	var e *runtime.Engine
	e = runtime.NewEngine(reg(
		domain.Scenario{Name: "peek", Title: "Peek", Run: func(ctx context.Context, w io.Writer) error {
			statusDuringRun = e.Status()
			return nil
		}},
	), runtime.WithWriter(io.Discard))

	assert.Equal(t, domain.StatusNotStarted, e.Status())
	require.NoError(t, e.RunAll(context.Background()))
	assert.Equal(t, domain.StatusRunning, statusDuringRun)
	assert.False(t, statusDuringRun.Terminal())
	assert.Equal(t, domain.StatusCompleted, e.Status())
	assert.True(t, e.Status().Terminal())

	// A terminal status does not block a fresh run.
	require.NoError(t, e.RunAll(context.Background()))
	assert.Equal(t, domain.StatusCompleted, e.Status())
}

func TestEngine_Renderer(t *testing.T) {
	var buf bytes.Buffer
	e := runtime.NewEngine(reg(
		domain.Scenario{Name: "a", Title: "A", Run: say("body")},
	), runtime.WithWriter(&buf), runtime.WithRenderer(func(s string) (string, error) {
		return strings.ToUpper(s), nil
	}))

	require.NoError(t, e.RunAll(context.Background()))
	assert.Equal(t, "== A ==\nBODY\n\n", buf.String())
}

func TestEngine_RendererFailureWritesRawBlock(t *testing.T) {
	var out, logs bytes.Buffer
	logger := slog.New(slog.NewTextHandler(&logs, &slog.HandlerOptions{Level: slog.LevelDebug}))

	e := runtime.NewEngine(reg(
		domain.Scenario{Name: "a", Title: "A", Run: say("body")},
	), runtime.WithWriter(&out),
		runtime.WithLogger(logger),
		runtime.WithRenderer(func(s string) (string, error) {
			return "", errors.New("style unavailable")
		}))

	require.NoError(t, e.RunAll(context.Background()))
	assert.Equal(t, "== A ==\nbody\n\n", out.String())
	assert.Contains(t, logs.String(), "renderer failed")
	assert.Contains(t, logs.String(), "style unavailable")
}
