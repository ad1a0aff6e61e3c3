// Package canonical turns an occurrence into a deterministic motif key.
//
// Two occurrences that represent the same temporal motif - same structure,
// same node and edge labels, same relative timestamp order - must map to
// the same Form; occurrences differing in any of those must not. The
// procedure, in order:
//
//  1. Timestamp normalization: each edge timestamp is replaced by its rank
//     among the occurrence's distinct timestamps, so motifs are invariant
//     under time translation and under gaps between timestamps.
//  2. Per-node signatures: each node's local temporal neighborhood is
//     encoded as a sorted integer sequence (out- and, for directed graphs,
//     in-signature).
//  3. Greedy vertex ordering: canonical indices are assigned by repeatedly
//     picking the maximum node from a frontier, ranked by (out-degree,
//     in-degree, node label, out-signature, in-signature), all compared
//     descending, with the smallest original node id as the final
//     deterministic tiebreaker.
//  4. Canonical edge list: each node's outgoing edges are remapped through
//     the canonical index assignment and sorted.
//
// This is a heuristic canonical form, not a graph-isomorphism algorithm:
// on fully symmetric occurrences the ranking tuple may fail to separate
// genuinely equivalent vertices and split one motif class into several.
// That behavior is part of the contract - substituting a stronger
// canonicalization would change motif counts.
//
// For undirected occurrences every edge contributes to the "out" view of
// both its endpoints and the in-signature is not used at all.
package canonical
