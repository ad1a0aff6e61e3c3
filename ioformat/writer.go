// File: writer.go
// Role: render mined motif classes as a textual block per class.
package ioformat

import (
	"bufio"
	"fmt"
	"io"

	"github.com/katalvlaran/modit/enumerator"
)

// WriteMotifs renders one block per motif class:
//
//	motif
//	  nodes: (0,1) (1,2)
//	  0 -> (1,0,7)
//	  count: 1
//
// Each node line lists (dest_canonical_index, normalized_timestamp,
// edge_label) triples; nodes without outgoing edges print no edge line.
// Classes are written in the order given - pass Result.Classes() for the
// canonical-key order that makes output stable across runs.
func WriteMotifs(w io.Writer, classes []enumerator.MotifClass) error {
	bw := bufio.NewWriter(w)

	for _, mc := range classes {
		if _, err := fmt.Fprintln(bw, "motif"); err != nil {
			return fmt.Errorf("ioformat: write: %w", err)
		}

		fmt.Fprint(bw, "  nodes:")
		for i, label := range mc.Form.Labels {
			fmt.Fprintf(bw, " (%d,%d)", i, label)
		}
		fmt.Fprintln(bw)

		for i, list := range mc.Form.Edges {
			if len(list) == 0 {
				continue
			}
			fmt.Fprintf(bw, "  %d ->", i)
			for _, e := range list {
				fmt.Fprintf(bw, " (%d,%d,%d)", e.Dest, e.Time, e.Label)
			}
			fmt.Fprintln(bw)
		}

		if _, err := fmt.Fprintf(bw, "  count: %d\n\n", mc.Count); err != nil {
			return fmt.Errorf("ioformat: write: %w", err)
		}
	}

	if err := bw.Flush(); err != nil {
		return fmt.Errorf("ioformat: flush: %w", err)
	}

	return nil
}
