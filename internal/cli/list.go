package cli

import (
	"fmt"
	"io"
	"text/tabwriter"

	"github.com/aretw0/holdfast"
)

// List writes the scenario catalog, one per line, in run order.
func List(w io.Writer) error {
	eng := holdfast.New()

	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
	for _, sc := range eng.Scenarios() {
		fmt.Fprintf(tw, "%s\t%s\n", sc.Name, sc.Summary)
	}
	return tw.Flush()
}
