package cmd

import (
	"encoding/json"
	"fmt"
	"io"
	"text/tabwriter"
)

func outputJSON(w io.Writer, v interface{}) error {
	encoder := json.NewEncoder(w)
	encoder.SetIndent("", "  ")
	return encoder.Encode(v)
}

// outputTable writes a header, a separator row and one row per entry
func outputTable(w io.Writer, header []string, rows [][]string) error {
	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)

	for i, h := range header {
		if i > 0 {
			fmt.Fprint(tw, "\t")
		}
		fmt.Fprint(tw, h)
	}
	fmt.Fprintln(tw)

	for i, h := range header {
		if i > 0 {
			fmt.Fprint(tw, "\t")
		}
		for range h {
			fmt.Fprint(tw, "-")
		}
	}
	fmt.Fprintln(tw)

	for _, row := range rows {
		for i, col := range row {
			if i > 0 {
				fmt.Fprint(tw, "\t")
			}
			fmt.Fprint(tw, col)
		}
		fmt.Fprintln(tw)
	}

	return tw.Flush()
}
