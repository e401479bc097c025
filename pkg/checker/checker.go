package checker

import (
	"errors"
	"fmt"

	"github.com/aretw0/holdfast/pkg/domain"
	"github.com/aretw0/holdfast/pkg/owner"
)

// Checker validates a parsed program against the ownership rules.
// It interprets every statement over real owner values, so the rules it
// reports are the ones the primitives actually enforce.
type Checker struct{}

// New creates a new checker.
func New() *Checker {
	return &Checker{}
}

type kind int

const (
	kindText kind = iota
	kindInt
	kindRef
	kindMutRef
	kindSpan
)

func (k kind) String() string {
	switch k {
	case kindText:
		return "text"
	case kindInt:
		return "integer"
	case kindRef:
		return "shared ref"
	case kindMutRef:
		return "mutable ref"
	case kindSpan:
		return "span"
	}
	return "unknown"
}

type binding struct {
	kind  kind
	text  *owner.Text
	ref   *owner.Ref
	mut   *owner.MutRef
	span  owner.Span
	owner string // owning binding for refs and spans
	dead  bool   // moved away, released, or dropped
}

// env is the interpreter state for a single Check pass.
type env struct {
	bindings map[string]*binding
	// spans are views the owner package does not register as borrows;
	// the checker tracks them per owner to reject mutation underneath.
	liveSpans  map[string]int
	violations []Violation
}

// Check interprets the program and returns every violation found, in
// statement order. A clean program yields nil.
func (c *Checker) Check(prog *Program) []Violation {
	e := &env{
		bindings:  make(map[string]*binding),
		liveSpans: make(map[string]int),
	}
	for _, stmt := range prog.Stmts {
		e.exec(stmt)
	}
	return e.violations
}

func (e *env) report(line int, rule Rule, format string, args ...any) {
	e.violations = append(e.violations, Violation{
		Line:    line,
		Rule:    rule,
		Message: fmt.Sprintf(format, args...),
	})
}

// declare binds a new name. Shadowing a live binding is reported, but
// the new binding still takes effect so checking can continue.
func (e *env) declare(line int, name string, b *binding) {
	if old, ok := e.bindings[name]; ok && !old.dead {
		e.report(line, RuleRedeclared, "%s is already bound", name)
	}
	e.bindings[name] = b
}

// lookup resolves a live binding, reporting the appropriate rule when
// the name is unknown or its value is gone.
func (e *env) lookup(line int, name string) (*binding, bool) {
	b, ok := e.bindings[name]
	if !ok {
		e.report(line, RuleUndefined, "%s is not defined", name)
		return nil, false
	}
	if b.dead {
		switch b.kind {
		case kindRef, kindMutRef, kindSpan:
			e.report(line, RuleDanglingRef, "%s was released", name)
		default:
			e.report(line, RuleUseAfterMove, "%s was moved or dropped", name)
		}
		return nil, false
	}
	// A ref or span whose owner binding is gone is dangling even if the
	// backing Text object still exists.
	if b.owner != "" {
		if ob, ok := e.bindings[b.owner]; ok && ob.dead {
			e.report(line, RuleDanglingRef, "%s points into %s, which is gone", name, b.owner)
			return nil, false
		}
	}
	return b, true
}

func (e *env) exec(s Stmt) {
	switch s.Op {
	case OpLet:
		if s.IsInt {
			e.declare(s.Line, s.Dst, &binding{kind: kindInt})
			return
		}
		e.declare(s.Line, s.Dst, &binding{kind: kindText, text: owner.New(s.Str)})

	case OpCopy:
		e.execCopy(s)
	case OpMove:
		e.execMove(s)
	case OpClone:
		e.execClone(s)
	case OpBorrow:
		e.execBorrow(s)
	case OpBorrowMut:
		e.execBorrowMut(s)
	case OpRelease:
		e.execRelease(s)
	case OpUse:
		e.execUse(s)
	case OpPush:
		e.execPush(s)
	case OpSlice:
		e.execSlice(s)
	case OpDrop:
		e.execDrop(s)
	}
}

func (e *env) execCopy(s Stmt) {
	src, ok := e.lookup(s.Line, s.Src)
	if !ok {
		e.declare(s.Line, s.Dst, &binding{kind: kindInt})
		return
	}
	if src.kind != kindInt {
		e.report(s.Line, RuleInvalidTarget, "%s is %s; only simple values copy (use move or clone)", s.Src, src.kind)
	}
	e.declare(s.Line, s.Dst, &binding{kind: kindInt})
}

func (e *env) execMove(s Stmt) {
	// Moving out of a dead binding is its own rule, so resolve the
	// source by hand instead of through lookup.
	src, ok := e.bindings[s.Src]
	if !ok {
		e.report(s.Line, RuleUndefined, "%s is not defined", s.Src)
		e.declare(s.Line, s.Dst, &binding{kind: kindText, text: owner.New("")})
		return
	}
	if src.kind != kindText {
		e.report(s.Line, RuleInvalidTarget, "%s is %s; only owned text moves", s.Src, src.kind)
		e.declare(s.Line, s.Dst, &binding{kind: kindText, text: owner.New("")})
		return
	}
	if src.dead {
		e.report(s.Line, RuleDoubleMove, "%s was already moved or dropped", s.Src)
		e.declare(s.Line, s.Dst, &binding{kind: kindText, text: owner.New("")})
		return
	}
	if e.liveSpans[s.Src] > 0 {
		e.report(s.Line, RuleBorrowConflict, "%s has live spans and cannot move", s.Src)
		e.declare(s.Line, s.Dst, &binding{kind: kindText, text: owner.New("")})
		return
	}

	moved, err := src.text.Move()
	if errors.Is(err, domain.ErrBorrowConflict) {
		e.report(s.Line, RuleBorrowConflict, "%s is borrowed and cannot move", s.Src)
	}
	if err != nil {
		e.declare(s.Line, s.Dst, &binding{kind: kindText, text: owner.New("")})
		return
	}
	src.dead = true
	e.declare(s.Line, s.Dst, &binding{kind: kindText, text: moved})
}

func (e *env) execClone(s Stmt) {
	src, ok := e.lookup(s.Line, s.Src)
	if !ok || src.kind != kindText {
		if ok {
			e.report(s.Line, RuleInvalidTarget, "%s is %s; only owned text clones", s.Src, src.kind)
		}
		e.declare(s.Line, s.Dst, &binding{kind: kindText, text: owner.New("")})
		return
	}

	cp, err := src.text.Clone()
	switch {
	case errors.Is(err, domain.ErrMoved):
		e.report(s.Line, RuleUseAfterMove, "%s was moved and cannot clone", s.Src)
	case errors.Is(err, domain.ErrBorrowConflict):
		e.report(s.Line, RuleBorrowConflict, "%s is exclusively borrowed", s.Src)
	}
	if err != nil {
		cp = owner.New("")
	}
	e.declare(s.Line, s.Dst, &binding{kind: kindText, text: cp})
}

func (e *env) execBorrow(s Stmt) {
	src, ok := e.lookup(s.Line, s.Src)
	if !ok || src.kind != kindText {
		if ok {
			e.report(s.Line, RuleInvalidTarget, "%s is %s; only owned text borrows", s.Src, src.kind)
		}
		e.declarePlaceholderRef(s.Line, s.Dst, s.Src)
		return
	}

	ref, err := src.text.Borrow()
	switch {
	case errors.Is(err, domain.ErrMoved):
		e.report(s.Line, RuleUseAfterMove, "%s was moved and cannot be borrowed", s.Src)
	case errors.Is(err, domain.ErrBorrowConflict):
		e.report(s.Line, RuleBorrowConflict, "%s is exclusively borrowed", s.Src)
	}
	if err != nil {
		e.declarePlaceholderRef(s.Line, s.Dst, s.Src)
		return
	}
	e.declare(s.Line, s.Dst, &binding{kind: kindRef, ref: ref, owner: s.Src})
}

func (e *env) execBorrowMut(s Stmt) {
	src, ok := e.lookup(s.Line, s.Src)
	if !ok || src.kind != kindText {
		if ok {
			e.report(s.Line, RuleInvalidTarget, "%s is %s; only owned text borrows", s.Src, src.kind)
		}
		e.declarePlaceholderMut(s.Line, s.Dst, s.Src)
		return
	}
	if e.liveSpans[s.Src] > 0 {
		e.report(s.Line, RuleBorrowConflict, "%s has live spans; exclusive borrow denied", s.Src)
		e.declarePlaceholderMut(s.Line, s.Dst, s.Src)
		return
	}

	mut, err := src.text.BorrowMut()
	switch {
	case errors.Is(err, domain.ErrMoved):
		e.report(s.Line, RuleUseAfterMove, "%s was moved and cannot be borrowed", s.Src)
	case errors.Is(err, domain.ErrBorrowConflict):
		e.report(s.Line, RuleBorrowConflict, "%s is already borrowed; only one exclusive borrow at a time", s.Src)
	}
	if err != nil {
		e.declarePlaceholderMut(s.Line, s.Dst, s.Src)
		return
	}
	e.declare(s.Line, s.Dst, &binding{kind: kindMutRef, mut: mut, owner: s.Src})
}

func (e *env) execRelease(s Stmt) {
	b, ok := e.lookup(s.Line, s.Dst)
	if !ok {
		return
	}
	switch b.kind {
	case kindRef:
		b.ref.Release()
	case kindMutRef:
		b.mut.Release()
	case kindSpan:
		if e.liveSpans[b.owner] > 0 {
			e.liveSpans[b.owner]--
		}
	default:
		e.report(s.Line, RuleInvalidTarget, "%s is %s; only refs and spans release", s.Dst, b.kind)
		return
	}
	b.dead = true
}

func (e *env) execUse(s Stmt) {
	b, ok := e.lookup(s.Line, s.Dst)
	if !ok {
		return
	}
	switch b.kind {
	case kindInt:
		// Simple values are always readable while bound.
	case kindText:
		_, err := b.text.String()
		switch {
		case errors.Is(err, domain.ErrMoved):
			e.report(s.Line, RuleUseAfterMove, "%s was moved", s.Dst)
		case errors.Is(err, domain.ErrBorrowConflict):
			e.report(s.Line, RuleBorrowConflict, "%s is exclusively borrowed", s.Dst)
		}
	case kindRef:
		if _, err := b.ref.String(); err != nil {
			e.report(s.Line, RuleDanglingRef, "%s no longer reaches a live value", s.Dst)
		}
	case kindMutRef:
		if _, err := b.mut.String(); err != nil {
			e.report(s.Line, RuleDanglingRef, "%s no longer reaches a live value", s.Dst)
		}
	case kindSpan:
		_, err := b.span.String()
		switch {
		case errors.Is(err, domain.ErrOutOfRange):
			e.report(s.Line, RuleOutOfRange, "%s no longer fits its value", s.Dst)
		case err != nil:
			e.report(s.Line, RuleDanglingRef, "%s no longer reaches a live value", s.Dst)
		}
	}
}

func (e *env) execPush(s Stmt) {
	b, ok := e.lookup(s.Line, s.Dst)
	if !ok {
		return
	}
	switch b.kind {
	case kindText:
		if e.liveSpans[s.Dst] > 0 {
			e.report(s.Line, RuleBorrowConflict, "%s has live spans and cannot be mutated", s.Dst)
			return
		}
		err := b.text.Push(s.Str)
		switch {
		case errors.Is(err, domain.ErrMoved):
			e.report(s.Line, RuleUseAfterMove, "%s was moved", s.Dst)
		case errors.Is(err, domain.ErrBorrowConflict):
			e.report(s.Line, RuleBorrowConflict, "%s is borrowed and cannot be mutated", s.Dst)
		}
	case kindMutRef:
		if err := b.mut.Push(s.Str); err != nil {
			e.report(s.Line, RuleDanglingRef, "%s no longer reaches a live value", s.Dst)
		}
	case kindRef:
		e.report(s.Line, RuleBorrowConflict, "%s is a shared ref; mutation needs an exclusive borrow", s.Dst)
	default:
		e.report(s.Line, RuleInvalidTarget, "%s is %s; push applies to text", s.Dst, b.kind)
	}
}

func (e *env) execSlice(s Stmt) {
	src, ok := e.lookup(s.Line, s.Src)
	if !ok || src.kind != kindText {
		if ok {
			e.report(s.Line, RuleInvalidTarget, "%s is %s; only owned text slices", s.Src, src.kind)
		}
		e.declarePlaceholderSpan(s.Line, s.Dst)
		return
	}

	span, err := src.text.Slice(s.From, s.To)
	switch {
	case errors.Is(err, domain.ErrMoved):
		e.report(s.Line, RuleUseAfterMove, "%s was moved and cannot be sliced", s.Src)
	case errors.Is(err, domain.ErrBorrowConflict):
		e.report(s.Line, RuleBorrowConflict, "%s is exclusively borrowed", s.Src)
	case errors.Is(err, domain.ErrOutOfRange):
		e.report(s.Line, RuleOutOfRange, "[%d..%d] is outside %s", s.From, s.To, s.Src)
	}
	if err != nil {
		e.declarePlaceholderSpan(s.Line, s.Dst)
		return
	}
	e.liveSpans[s.Src]++
	e.declare(s.Line, s.Dst, &binding{kind: kindSpan, span: span, owner: s.Src})
}

func (e *env) execDrop(s Stmt) {
	b, ok := e.lookup(s.Line, s.Dst)
	if !ok {
		return
	}
	switch b.kind {
	case kindText:
		if b.text.Borrowed() || e.liveSpans[s.Dst] > 0 {
			e.report(s.Line, RuleDropWhileBorrowed, "%s still has live borrows", s.Dst)
		}
	case kindRef:
		b.ref.Release()
	case kindMutRef:
		b.mut.Release()
	case kindSpan:
		if e.liveSpans[b.owner] > 0 {
			e.liveSpans[b.owner]--
		}
	}
	b.dead = true
}

// Placeholder bindings keep the interpreter going after a failed
// borrow, so one violation does not cascade into follow-on noise.
// They deliberately carry no owner link.
func (e *env) declarePlaceholderRef(line int, name, _ string) {
	ref, _ := owner.New("").Borrow()
	e.declare(line, name, &binding{kind: kindRef, ref: ref})
}

func (e *env) declarePlaceholderMut(line int, name, _ string) {
	mut, _ := owner.New("").BorrowMut()
	e.declare(line, name, &binding{kind: kindMutRef, mut: mut})
}

func (e *env) declarePlaceholderSpan(line int, name string) {
	span, _ := owner.New("").All()
	e.declare(line, name, &binding{kind: kindSpan, span: span})
}
