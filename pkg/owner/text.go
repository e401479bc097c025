package owner

import (
	"github.com/aretw0/holdfast/pkg/domain"
)

// Text is an owned, growable sequence of bytes with move semantics.
//
// Go copies struct values freely, so ownership transfer cannot be a
// compile-time property here. Instead Text carries a consumed flag:
// Move invalidates the source, and every later use of the source fails
// with domain.ErrMoved. Borrow bookkeeping lives on the owner too, so
// the shared-xor-exclusive rule is enforced at runtime.
type Text struct {
	buf   []byte
	moved bool

	// Live borrow accounting. Many shared refs may coexist; an
	// exclusive ref excludes everything, including the owner.
	shared    int
	exclusive bool
}

// New creates a Text owning a copy of s.
func New(s string) *Text {
	return &Text{buf: []byte(s)}
}

// Valid reports whether the binding still owns its value.
func (t *Text) Valid() bool {
	return !t.moved
}

// Borrowed reports whether any borrow (shared or exclusive) is live.
func (t *Text) Borrowed() bool {
	return t.exclusive || t.shared > 0
}

// String returns the current contents.
// Fails if the value was moved away or is exclusively borrowed.
func (t *Text) String() (string, error) {
	if err := t.readable(); err != nil {
		return "", err
	}
	return string(t.buf), nil
}

// MustString is String for scenario bodies where a failure is fatal
// anyway. It panics on a moved or exclusively borrowed value.
func (t *Text) MustString() string {
	s, err := t.String()
	if err != nil {
		panic(err)
	}
	return s
}

// Len returns the number of bytes owned.
func (t *Text) Len() (int, error) {
	if err := t.readable(); err != nil {
		return 0, err
	}
	return len(t.buf), nil
}

// Push appends s in place. The owner must hold exclusive access: any
// live borrow (shared or exclusive) blocks mutation.
func (t *Text) Push(s string) error {
	if t.moved {
		return domain.ErrMoved
	}
	if t.exclusive || t.shared > 0 {
		return domain.ErrBorrowConflict
	}
	t.buf = append(t.buf, s...)
	return nil
}

// Move transfers ownership to a fresh Text and invalidates the
// receiver. Moving a borrowed value would leave dangling refs, so it is
// rejected while any borrow is live.
func (t *Text) Move() (*Text, error) {
	if t.moved {
		return nil, domain.ErrMoved
	}
	if t.exclusive || t.shared > 0 {
		return nil, domain.ErrBorrowConflict
	}
	dst := &Text{buf: t.buf}
	t.buf = nil
	t.moved = true
	return dst, nil
}

// Clone deep-copies the contents. Both bindings stay independently
// valid; mutating one never affects the other.
func (t *Text) Clone() (*Text, error) {
	if err := t.readable(); err != nil {
		return nil, err
	}
	cp := make([]byte, len(t.buf))
	copy(cp, t.buf)
	return &Text{buf: cp}, nil
}

func (t *Text) readable() error {
	if t.moved {
		return domain.ErrMoved
	}
	if t.exclusive {
		return domain.ErrBorrowConflict
	}
	return nil
}
