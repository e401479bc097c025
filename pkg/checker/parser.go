package checker

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/mitchellh/mapstructure"
	"gopkg.in/yaml.v3"
)

// Parse converts a raw script into a Program.
// Scripts consist of an optional `---` YAML front matter block followed
// by one statement per line. Blank lines and `#` comments are skipped.
// A malformed line is a parse error, not a violation: the script never
// reaches the checker.
func Parse(data []byte) (*Program, error) {
	lines := strings.Split(string(data), "\n")

	prog := &Program{}
	start := 0

	if meta, consumed, err := parseFrontMatter(lines); err != nil {
		return nil, err
	} else if consumed > 0 {
		prog.Meta = meta
		start = consumed
	}

	for i := start; i < len(lines); i++ {
		text := strings.TrimSpace(lines[i])
		if text == "" || strings.HasPrefix(text, "#") {
			continue
		}
		stmt, err := parseStmt(i+1, text)
		if err != nil {
			return nil, err
		}
		prog.Stmts = append(prog.Stmts, stmt)
	}

	return prog, nil
}

// ParseFile reads and parses a script from disk.
func ParseFile(path string) (*Program, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read script: %w", err)
	}
	prog, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return prog, nil
}

// parseFrontMatter returns the decoded metadata and the number of lines
// the block occupies (including both `---` fences), or 0 when the
// script has no front matter.
func parseFrontMatter(lines []string) (ProgramMeta, int, error) {
	var meta ProgramMeta
	if len(lines) == 0 || strings.TrimSpace(lines[0]) != "---" {
		return meta, 0, nil
	}

	end := -1
	for i := 1; i < len(lines); i++ {
		if strings.TrimSpace(lines[i]) == "---" {
			end = i
			break
		}
	}
	if end < 0 {
		return meta, 0, fmt.Errorf("front matter: missing closing ---")
	}

	raw := map[string]any{}
	block := strings.Join(lines[1:end], "\n")
	if err := yaml.Unmarshal([]byte(block), &raw); err != nil {
		return meta, 0, fmt.Errorf("front matter: %w", err)
	}
	if err := mapstructure.Decode(raw, &meta); err != nil {
		return meta, 0, fmt.Errorf("front matter: %w", err)
	}
	return meta, end + 1, nil
}

func parseStmt(line int, text string) (Stmt, error) {
	op, rest, _ := strings.Cut(text, " ")
	rest = strings.TrimSpace(rest)

	stmt := Stmt{Line: line, Op: Op(op)}

	fail := func(format string, args ...any) (Stmt, error) {
		return Stmt{}, fmt.Errorf("line %d: %s", line, fmt.Sprintf(format, args...))
	}

	switch stmt.Op {
	case OpLet:
		name, value, ok := cutAssign(rest)
		if !ok {
			return fail("let expects `let <name> = <literal>`")
		}
		stmt.Dst = name
		if strings.HasPrefix(value, `"`) {
			s, err := strconv.Unquote(value)
			if err != nil {
				return fail("bad string literal %s", value)
			}
			stmt.Str = s
		} else {
			n, err := strconv.Atoi(value)
			if err != nil {
				return fail("bad literal %q (expected string or integer)", value)
			}
			stmt.Int = n
			stmt.IsInt = true
		}

	case OpCopy, OpMove, OpClone, OpBorrow, OpBorrowMut:
		dst, src, ok := cutAssign(rest)
		if !ok {
			return fail("%s expects `%s <dst> = <src>`", op, op)
		}
		if !isIdent(src) {
			return fail("bad source name %q", src)
		}
		stmt.Dst, stmt.Src = dst, src

	case OpRelease, OpUse, OpDrop:
		if !isIdent(rest) {
			return fail("%s expects a binding name, got %q", op, rest)
		}
		stmt.Dst = rest

	case OpPush:
		name, lit, ok := strings.Cut(rest, " ")
		lit = strings.TrimSpace(lit)
		if !ok || !isIdent(name) || !strings.HasPrefix(lit, `"`) {
			return fail("push expects `push <name> \"<text>\"`")
		}
		s, err := strconv.Unquote(lit)
		if err != nil {
			return fail("bad string literal %s", lit)
		}
		stmt.Dst = name
		stmt.Str = s

	case OpSlice:
		dst, src, ok := cutAssign(rest)
		if !ok {
			return fail("slice expects `slice <dst> = <src>[<from>..<to>]`")
		}
		name, region, ok := strings.Cut(src, "[")
		if !ok || !strings.HasSuffix(region, "]") || !isIdent(name) {
			return fail("slice expects `slice <dst> = <src>[<from>..<to>]`")
		}
		region = strings.TrimSuffix(region, "]")
		fromStr, toStr, ok := strings.Cut(region, "..")
		if !ok {
			return fail("bad region %q (expected <from>..<to>)", region)
		}
		from, err := strconv.Atoi(strings.TrimSpace(fromStr))
		if err != nil {
			return fail("bad region start %q", fromStr)
		}
		to, err := strconv.Atoi(strings.TrimSpace(toStr))
		if err != nil {
			return fail("bad region end %q", toStr)
		}
		stmt.Dst, stmt.Src = dst, name
		stmt.From, stmt.To = from, to

	default:
		return fail("unknown statement %q", op)
	}

	if !isIdent(stmt.Dst) {
		return fail("bad binding name %q", stmt.Dst)
	}
	return stmt, nil
}

// cutAssign splits "<dst> = <rhs>" and validates the destination side.
func cutAssign(s string) (dst, rhs string, ok bool) {
	dst, rhs, ok = strings.Cut(s, "=")
	dst = strings.TrimSpace(dst)
	rhs = strings.TrimSpace(rhs)
	if !ok || dst == "" || rhs == "" {
		return "", "", false
	}
	return dst, rhs, true
}

func isIdent(s string) bool {
	if s == "" {
		return false
	}
	for i, r := range s {
		switch {
		case r == '_', r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z':
		case r >= '0' && r <= '9':
			if i == 0 {
				return false
			}
		default:
			return false
		}
	}
	return true
}
