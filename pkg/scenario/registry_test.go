package scenario_test

import (
	"bytes"
	"context"
	"io"
	"testing"

	"github.com/aretw0/holdfast/pkg/domain"
	"github.com/aretw0/holdfast/pkg/scenario"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func noop(ctx context.Context, w io.Writer) error { return nil }

func TestRegistry_OrderIsStable(t *testing.T) {
	r := scenario.NewRegistry()
	r.Register(domain.Scenario{Name: "c", Run: noop})
	r.Register(domain.Scenario{Name: "a", Run: noop})
	r.Register(domain.Scenario{Name: "b", Run: noop})

	assert.Equal(t, []string{"c", "a", "b"}, r.Names())
	assert.Equal(t, 3, r.Len())
}

func TestRegistry_OverwriteKeepsPosition(t *testing.T) {
	r := scenario.NewRegistry()
	r.Register(domain.Scenario{Name: "a", Title: "old", Run: noop})
	r.Register(domain.Scenario{Name: "b", Run: noop})
	r.Register(domain.Scenario{Name: "a", Title: "new", Run: noop})

	assert.Equal(t, []string{"a", "b"}, r.Names())

	sc, err := r.Get("a")
	require.NoError(t, err)
	assert.Equal(t, "new", sc.Title)
}

func TestRegistry_GetUnknown(t *testing.T) {
	r := scenario.NewRegistry()
	_, err := r.Get("missing")
	assert.ErrorIs(t, err, domain.ErrScenarioNotFound)
}

func TestDefault_CatalogShape(t *testing.T) {
	r := scenario.Default()

	names := r.Names()
	require.Equal(t, 14, len(names))
	assert.Equal(t, "mutable-text", names[0])
	assert.Equal(t, "slice-ints", names[len(names)-1])

	for _, sc := range r.All() {
		assert.NotEmpty(t, sc.Name)
		assert.NotEmpty(t, sc.Title)
		assert.NotEmpty(t, sc.Summary)
		assert.NotNil(t, sc.Run)
	}
}

func TestCatalog_ScenariosAreIdempotent(t *testing.T) {
	for _, sc := range scenario.Default().All() {
		t.Run(sc.Name, func(t *testing.T) {
			var first, second bytes.Buffer
			require.NoError(t, sc.Run(context.Background(), &first))
			require.NoError(t, sc.Run(context.Background(), &second))

			assert.NotEmpty(t, first.String())
			assert.Equal(t, first.String(), second.String())
		})
	}
}

func TestCatalog_KnownOutputs(t *testing.T) {
	cases := []struct {
		name string
		want string
	}{
		{"mutable-text", "hello, world~\n"},
		{"copy-simple", "x = 5, y = 5\n"},
		{"clone-text", "s1 = hello, s2 = hello\n"},
		{"exclusive-borrow", "The final result is: hello, world\n"},
		{"shared-borrow", "The length of 'hello' is 5.\n"},
		{"first-word", "First word is hello\n"},
		{"slice-ints", "2\n3\n"},
		{"slice-text", "Slice 1: hello\nSlice 2: hello\nSlice 3: world\nSlice 4: world\n"},
		{"flexible-slices", "Output: hello hello hello hello hello hello\n"},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			sc, err := scenario.Default().Get(tc.name)
			require.NoError(t, err)

			var buf bytes.Buffer
			require.NoError(t, sc.Run(context.Background(), &buf))
			assert.Equal(t, tc.want, buf.String())
		})
	}
}
