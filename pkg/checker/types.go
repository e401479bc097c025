package checker

import "fmt"

// Rule identifies the ownership or borrowing rule a statement violated.
type Rule string

const (
	RuleUseAfterMove      Rule = "use_after_move"      // Reading a binding whose value moved away
	RuleDoubleMove        Rule = "double_move"         // Moving out of an already-moved binding
	RuleBorrowConflict    Rule = "borrow_conflict"     // Shared-xor-exclusive violated
	RuleDanglingRef       Rule = "dangling_ref"        // Using a ref or span whose owner is gone
	RuleOutOfRange        Rule = "out_of_range"        // Slice bounds outside the value
	RuleUndefined         Rule = "undefined"           // Unknown binding name
	RuleRedeclared        Rule = "redeclared"          // Re-binding a live name
	RuleDropWhileBorrowed Rule = "drop_while_borrowed" // Dropping an owner with live borrows
	RuleInvalidTarget     Rule = "invalid_target"      // Operation not applicable to the binding kind
)

// Violation is a single rule breach, reported against a source line.
type Violation struct {
	Line    int    `json:"line"`
	Rule    Rule   `json:"rule"`
	Message string `json:"message"`
}

func (v Violation) String() string {
	return fmt.Sprintf("line %d: %s: %s", v.Line, v.Rule, v.Message)
}

// Op identifies a statement kind in the annotation language.
type Op string

const (
	OpLet       Op = "let"
	OpCopy      Op = "copy"
	OpMove      Op = "move"
	OpClone     Op = "clone"
	OpBorrow    Op = "borrow"
	OpBorrowMut Op = "borrowmut"
	OpRelease   Op = "release"
	OpUse       Op = "use"
	OpPush      Op = "push"
	OpSlice     Op = "slice"
	OpDrop      Op = "drop"
)

// Stmt is one parsed statement.
type Stmt struct {
	Line int
	Op   Op

	// Dst is the binding being introduced (let, copy, move, clone,
	// borrow, borrowmut, slice) or acted on (release, use, push, drop).
	Dst string

	// Src is the right-hand binding, where the statement has one.
	Src string

	// Str holds the string literal for `let` and `push`.
	Str string

	// Int holds the integer literal for `let`; IsInt distinguishes the
	// two literal forms.
	Int   int
	IsInt bool

	// From and To hold the region bounds for `slice`.
	From, To int
}

// ProgramMeta is the optional front matter of a script.
// It uses "mapstructure" tags to match standard front matter keys.
type ProgramMeta struct {
	ID          string `mapstructure:"id"`
	Title       string `mapstructure:"title"`
	Description string `mapstructure:"description"`
}

// Program is a parsed annotation script.
type Program struct {
	Meta  ProgramMeta
	Stmts []Stmt
}
