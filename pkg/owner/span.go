package owner

import (
	"fmt"

	"github.com/aretw0/holdfast/pkg/domain"
)

// Span is a non-owning view over a contiguous region of a Text.
// It holds bounds, not bytes: reading through a Span after the backing
// value was moved fails with domain.ErrMoved.
type Span struct {
	t        *Text
	from, to int
}

// Slice returns the view over [from, to). Bounds are validated against
// the current length; an invalid region fails with domain.ErrOutOfRange.
func (t *Text) Slice(from, to int) (Span, error) {
	if err := t.readable(); err != nil {
		return Span{}, err
	}
	if from < 0 || to < from || to > len(t.buf) {
		return Span{}, fmt.Errorf("%w: [%d..%d] of length %d", domain.ErrOutOfRange, from, to, len(t.buf))
	}
	return Span{t: t, from: from, to: to}, nil
}

// Prefix is Slice(0, to).
func (t *Text) Prefix(to int) (Span, error) {
	return t.Slice(0, to)
}

// Suffix is Slice(from, Len()).
func (t *Text) Suffix(from int) (Span, error) {
	if err := t.readable(); err != nil {
		return Span{}, err
	}
	return t.Slice(from, len(t.buf))
}

// All is the view over the whole value.
func (t *Text) All() (Span, error) {
	return t.Suffix(0)
}

// String materializes the viewed region.
func (s Span) String() (string, error) {
	if s.t == nil {
		return "", domain.ErrMoved
	}
	if err := s.t.readable(); err != nil {
		return "", err
	}
	if s.to > len(s.t.buf) {
		return "", fmt.Errorf("%w: [%d..%d] of length %d", domain.ErrOutOfRange, s.from, s.to, len(s.t.buf))
	}
	return string(s.t.buf[s.from:s.to]), nil
}

// Len returns the width of the viewed region.
func (s Span) Len() int {
	return s.to - s.from
}

// FirstWord returns the view over the region before the first space,
// or over the whole value when it contains none.
func (t *Text) FirstWord() (Span, error) {
	if err := t.readable(); err != nil {
		return Span{}, err
	}
	for i, b := range t.buf {
		if b == ' ' {
			return Span{t: t, from: 0, to: i}, nil
		}
	}
	return Span{t: t, from: 0, to: len(t.buf)}, nil
}

// FirstWord is the plain-string variant, usable on literals as well as
// on materialized spans.
func FirstWord(s string) string {
	for i := 0; i < len(s); i++ {
		if s[i] == ' ' {
			return s[:i]
		}
	}
	return s
}

// SliceInts returns a bounds-checked copy of a[from:to]. Fixed integer
// sequences follow the same region rules as text.
func SliceInts(a []int, from, to int) ([]int, error) {
	if from < 0 || to < from || to > len(a) {
		return nil, fmt.Errorf("%w: [%d..%d] of length %d", domain.ErrOutOfRange, from, to, len(a))
	}
	out := make([]int, to-from)
	copy(out, a[from:to])
	return out, nil
}
