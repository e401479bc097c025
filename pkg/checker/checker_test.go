package checker_test

import (
	"testing"

	"github.com/aretw0/holdfast/pkg/checker"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func check(t *testing.T, src string) []checker.Violation {
	t.Helper()
	prog, err := checker.Parse([]byte(src))
	require.NoError(t, err)
	return checker.New().Check(prog)
}

func TestCheck_CleanPrograms(t *testing.T) {
	cases := []struct {
		name string
		src  string
	}{
		{
			"mutable text",
			"let s = \"hello\"\npush s \", world~\"\nuse s\n",
		},
		{
			"copy leaves both valid",
			"let x = 5\ncopy y = x\nuse x\nuse y\n",
		},
		{
			"move then use new owner",
			"let s1 = \"hello\"\nmove s2 = s1\nuse s2\n",
		},
		{
			"clone leaves both valid",
			"let s1 = \"hello\"\nclone s2 = s1\nuse s1\nuse s2\n",
		},
		{
			"shared borrows coexist",
			"let s = \"hello\"\nborrow r1 = s\nborrow r2 = s\nuse r1\nuse r2\nuse s\n",
		},
		{
			"sequential exclusive borrows",
			"let s = \"hello\"\nborrowmut m1 = s\nuse m1\nrelease m1\nborrowmut m2 = s\npush m2 \", world\"\nrelease m2\nuse s\n",
		},
		{
			"slice released before mutation",
			"let s = \"hello world\"\nslice first = s[0..5]\nuse first\nrelease first\npush s \"!\"\n",
		},
		{
			"drop ends a borrow",
			"let s = \"hello\"\nborrow r = s\ndrop r\nborrowmut m = s\nrelease m\n",
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Empty(t, check(t, tc.src))
		})
	}
}

func TestCheck_Violations(t *testing.T) {
	cases := []struct {
		name string
		src  string
		line int
		rule checker.Rule
	}{
		{
			"use after move",
			"let s1 = \"hello\"\nmove s2 = s1\nuse s1\n",
			3, checker.RuleUseAfterMove,
		},
		{
			"double move",
			"let s = \"hello\"\nmove a = s\nmove b = s\n",
			3, checker.RuleDoubleMove,
		},
		{
			"two exclusive borrows",
			"let s = \"hello\"\nborrowmut r1 = s\nborrowmut r2 = s\n",
			3, checker.RuleBorrowConflict,
		},
		{
			"exclusive alongside shared",
			"let s = \"hello\"\nborrow r1 = s\nborrowmut r2 = s\n",
			3, checker.RuleBorrowConflict,
		},
		{
			"mutation through shared ref",
			"let s = \"hello\"\nborrow r = s\npush r \"!\"\n",
			3, checker.RuleBorrowConflict,
		},
		{
			"owner mutation while borrowed",
			"let s = \"hello\"\nborrow r = s\npush s \"!\"\n",
			3, checker.RuleBorrowConflict,
		},
		{
			"mutation under a live span",
			"let s = \"hello world\"\nslice first = s[0..5]\npush s \"!\"\n",
			3, checker.RuleBorrowConflict,
		},
		{
			"slice out of range",
			"let s = \"hello\"\nslice v = s[0..6]\n",
			2, checker.RuleOutOfRange,
		},
		{
			"inverted slice bounds",
			"let s = \"hello\"\nslice v = s[4..2]\n",
			2, checker.RuleOutOfRange,
		},
		{
			"undefined binding",
			"use ghost\n",
			1, checker.RuleUndefined,
		},
		{
			"redeclared binding",
			"let s = \"hello\"\nlet s = \"again\"\n",
			2, checker.RuleRedeclared,
		},
		{
			"drop while borrowed",
			"let s = \"hello\"\nborrow r = s\ndrop s\n",
			3, checker.RuleDropWhileBorrowed,
		},
		{
			"move under a live span",
			"let s = \"hello world\"\nslice first = s[0..5]\nmove t = s\n",
			3, checker.RuleBorrowConflict,
		},
		{
			"copy of owned text",
			"let s = \"hello\"\ncopy t = s\n",
			2, checker.RuleInvalidTarget,
		},
		{
			"use after release",
			"let s = \"hello\"\nborrow r = s\nrelease r\nuse r\n",
			4, checker.RuleDanglingRef,
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			vs := check(t, tc.src)
			require.NotEmpty(t, vs)
			assert.Equal(t, tc.line, vs[0].Line)
			assert.Equal(t, tc.rule, vs[0].Rule)
			assert.Len(t, vs, 1)
		})
	}
}

func TestCheck_DanglingAfterOwnerGone(t *testing.T) {
	t.Run("ref outlives dropped owner", func(t *testing.T) {
		vs := check(t, "let s = \"hello\"\nborrow r = s\ndrop s\nuse r\n")
		require.Len(t, vs, 2)
		assert.Equal(t, checker.RuleDropWhileBorrowed, vs[0].Rule)
		assert.Equal(t, 3, vs[0].Line)
		assert.Equal(t, checker.RuleDanglingRef, vs[1].Rule)
		assert.Equal(t, 4, vs[1].Line)
	})

	t.Run("span outlives dropped owner", func(t *testing.T) {
		vs := check(t, "let s = \"hello world\"\nslice first = s[0..5]\ndrop s\nuse first\n")
		require.Len(t, vs, 2)
		assert.Equal(t, checker.RuleDropWhileBorrowed, vs[0].Rule)
		assert.Equal(t, checker.RuleDanglingRef, vs[1].Rule)
	})
}

func TestCheck_RecoversAfterViolation(t *testing.T) {
	// The placeholder bindings keep later statements meaningful: only
	// the two real breaches are reported, with no follow-on noise.
	src := `let s = "hello"
move a = s
move b = s
use b
use s
`
	vs := check(t, src)
	require.Len(t, vs, 2)
	assert.Equal(t, checker.RuleDoubleMove, vs[0].Rule)
	assert.Equal(t, 3, vs[0].Line)
	assert.Equal(t, checker.RuleUseAfterMove, vs[1].Rule)
	assert.Equal(t, 5, vs[1].Line)
}

func TestViolation_String(t *testing.T) {
	v := checker.Violation{Line: 3, Rule: checker.RuleUseAfterMove, Message: "s1 was moved"}
	assert.Equal(t, "line 3: use_after_move: s1 was moved", v.String())
}
