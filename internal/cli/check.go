package cli

import (
	"fmt"
	"io"

	"github.com/aretw0/holdfast/pkg/checker"
)

// Check parses and checks an annotation script, printing one line per
// violation. It returns the number of violations found; a parse error
// is returned as an error instead.
func Check(w io.Writer, path string) (int, error) {
	prog, err := checker.ParseFile(path)
	if err != nil {
		return 0, err
	}

	if prog.Meta.Title != "" {
		fmt.Fprintf(w, "checking %s\n", prog.Meta.Title)
	}

	violations := checker.New().Check(prog)
	for _, v := range violations {
		fmt.Fprintln(w, v.String())
	}
	if len(violations) == 0 {
		fmt.Fprintln(w, "ok: no ownership violations")
	}
	return len(violations), nil
}
