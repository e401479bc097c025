package owner

import (
	"github.com/aretw0/holdfast/pkg/domain"
)

// Ref is a shared, read-only borrow of a Text. Any number of Refs may
// be live at once, but none may coexist with a MutRef.
type Ref struct {
	t        *Text
	released bool
}

// Borrow hands out a shared ref. Fails on a moved or exclusively
// borrowed value.
func (t *Text) Borrow() (*Ref, error) {
	if t.moved {
		return nil, domain.ErrMoved
	}
	if t.exclusive {
		return nil, domain.ErrBorrowConflict
	}
	t.shared++
	return &Ref{t: t}, nil
}

// String reads through the borrow.
func (r *Ref) String() (string, error) {
	if err := r.live(); err != nil {
		return "", err
	}
	return string(r.t.buf), nil
}

// Len reads the borrowed length.
func (r *Ref) Len() (int, error) {
	if err := r.live(); err != nil {
		return 0, err
	}
	return len(r.t.buf), nil
}

// Release ends the borrow. Releasing twice is a no-op.
func (r *Ref) Release() {
	if r.released {
		return
	}
	r.released = true
	r.t.shared--
}

func (r *Ref) live() error {
	if r.released || r.t.moved {
		return domain.ErrMoved
	}
	return nil
}

// MutRef is an exclusive borrow of a Text. While it is live, the owner
// and every other path to the value are blocked.
type MutRef struct {
	t        *Text
	released bool
}

// BorrowMut hands out the single exclusive ref. Fails on a moved value
// or while any other borrow (shared or exclusive) is live.
func (t *Text) BorrowMut() (*MutRef, error) {
	if t.moved {
		return nil, domain.ErrMoved
	}
	if t.exclusive || t.shared > 0 {
		return nil, domain.ErrBorrowConflict
	}
	t.exclusive = true
	return &MutRef{t: t}, nil
}

// Push appends through the exclusive borrow.
func (m *MutRef) Push(s string) error {
	if err := m.live(); err != nil {
		return err
	}
	m.t.buf = append(m.t.buf, s...)
	return nil
}

// String reads through the exclusive borrow.
func (m *MutRef) String() (string, error) {
	if err := m.live(); err != nil {
		return "", err
	}
	return string(m.t.buf), nil
}

// Release ends the borrow, unblocking the owner. Idempotent.
func (m *MutRef) Release() {
	if m.released {
		return
	}
	m.released = true
	m.t.exclusive = false
}

func (m *MutRef) live() error {
	if m.released || m.t.moved {
		return domain.ErrMoved
	}
	return nil
}
