// File: reader.go
// Role: parse the three-section text graph format into a
//       tgraph.TemporalGraph, tracking line numbers for error reporting.
package ioformat

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/katalvlaran/modit/tgraph"
)

// ReadGraph parses the node-count header, the node section, and the edge
// section from r into a fresh TemporalGraph. directed selects the
// adjacency layout of the produced graph.
//
// Blank lines are skipped everywhere; fields may be separated by any run
// of whitespace. Duplicate node declarations are legal when the label
// matches (AddNode idempotence) and an InputFormat error otherwise.
func ReadGraph(r io.Reader, directed bool) (*tgraph.TemporalGraph, error) {
	sc := bufio.NewScanner(r)
	sc.Buffer(make([]byte, 0, 64*1024), 4*1024*1024)
	lineNo := 0

	// nextLine returns the next non-blank line, its fields, and whether
	// one was found.
	nextLine := func() ([]string, bool) {
		for sc.Scan() {
			lineNo++
			fields := strings.Fields(sc.Text())
			if len(fields) > 0 {
				return fields, true
			}
		}

		return nil, false
	}

	// Section 1: node count.
	header, ok := nextLine()
	if !ok || len(header) != 1 {
		return nil, &LineError{Line: lineNo, Err: ErrBadHeader}
	}
	nodeCount, err := strconv.Atoi(header[0])
	if err != nil || nodeCount < 0 {
		return nil, &LineError{Line: lineNo, Err: fmt.Errorf("%w: %q", ErrBadHeader, header[0])}
	}

	g := tgraph.NewTemporalGraph(directed)

	// Section 2: exactly nodeCount node lines.
	for i := 0; i < nodeCount; i++ {
		fields, ok := nextLine()
		if !ok {
			return nil, &LineError{Line: lineNo, Err: fmt.Errorf("%w: got %d of %d", ErrTruncated, i, nodeCount)}
		}
		if len(fields) != 2 {
			return nil, &LineError{Line: lineNo, Err: ErrBadNodeLine}
		}
		id, err1 := strconv.Atoi(fields[0])
		label, err2 := strconv.Atoi(fields[1])
		if err1 != nil || err2 != nil || id < 0 || label < 0 {
			return nil, &LineError{Line: lineNo, Err: fmt.Errorf("%w: %q", ErrBadNodeLine, strings.Join(fields, " "))}
		}
		if existing, declared := g.NodeLabel(id); declared && existing != label {
			return nil, &LineError{Line: lineNo, Err: fmt.Errorf("%w: node %d is %d, redeclared as %d", ErrConflictingLabel, id, existing, label)}
		}
		if err := g.AddNode(id, label); err != nil {
			return nil, &LineError{Line: lineNo, Err: err}
		}
	}

	// Section 3: edge lines until EOF.
	for {
		fields, ok := nextLine()
		if !ok {
			break
		}
		if len(fields) != 4 {
			return nil, &LineError{Line: lineNo, Err: ErrBadEdgeLine}
		}
		vals := make([]int64, 4)
		for i, f := range fields {
			v, err := strconv.ParseInt(f, 10, 64)
			if err != nil || v < 0 {
				return nil, &LineError{Line: lineNo, Err: fmt.Errorf("%w: %q", ErrBadEdgeLine, strings.Join(fields, " "))}
			}
			vals[i] = v
		}
		if _, err := g.AddEdge(int(vals[0]), int(vals[1]), vals[2], int(vals[3])); err != nil {
			return nil, &LineError{Line: lineNo, Err: fmt.Errorf("%w: %v", ErrUnknownEndpoint, err)}
		}
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("ioformat: read: %w", err)
	}

	return g, nil
}
