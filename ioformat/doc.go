// Package ioformat is MODIT's thin IO boundary: parsing the three-section
// text graph format and rendering mined motif classes.
//
// The input format is
//
//	<number of nodes M>
//	M lines: <node_id> <label>
//	until EOF: <src> <dst> <timestamp> <edge_label>
//
// with whitespace-separated non-negative integers; runs of blanks and
// empty lines are tolerated. Every parse failure carries the offending
// 1-based line number via *LineError, so the CLI can point at the exact
// input line.
//
// Output is one block per motif class, in the order the slice arrives;
// pass enumerator.Result.Classes() to get the canonical-key order that
// keeps output stable across runs.
package ioformat
