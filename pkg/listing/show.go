package listing

import (
	"fmt"
	"io"

	"github.com/regression-io/aws-list-all/pkg/sweep"
)

// Show prints a summary of each saved listing file to w.
//
// Each file is processed independently: a malformed file prints a
// readable error for that file and processing continues. Verbose > 0
// adds the full per-operation detail for the non-empty classes.
func Show(paths []string, w io.Writer, verbose int) {
	for i, path := range paths {
		if i > 0 {
			fmt.Fprintln(w)
		}
		g, err := Load(path)
		if err != nil {
			fmt.Fprintf(w, "%s: error: %v\n", path, err)
			continue
		}

		counts := g.Counts()
		fmt.Fprintf(w, "%s:\n", path)
		for _, class := range sweep.Classes {
			fmt.Fprintf(w, "  %-10s %d\n", class, counts[class])
		}

		if verbose > 0 {
			for _, class := range []sweep.ResultClass{sweep.ClassSomething, sweep.ClassNoAccess, sweep.ClassError} {
				rows := g.Rows(class)
				if len(rows) == 0 {
					continue
				}
				fmt.Fprintf(w, "  %s:\n", class)
				for _, row := range rows {
					fmt.Fprintf(w, "    %s\n", row)
				}
			}
		}
	}
}
