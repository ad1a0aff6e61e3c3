// Package enumerator grows every connected subgraph occurrence of a
// temporal graph within the configured bounds and accumulates motif-class
// counts.
//
// The solver seeds one partial occurrence per edge (in dense-id order),
// then repeatedly extends partials by frontier edges: edges incident to a
// node of the occurrence, not yet part of it, whose timestamp keeps the
// occurrence's span within delta, and whose addition respects the node and
// edge bounds. Each surviving occurrence is identified by its sorted
// edge-id list; a seen-set suppresses the many rediscoveries of one
// occurrence along different extension orders before it is canonicalized
// and counted. Identity is the edge-id set, never the canonical form - two
// distinct occurrences of the same motif are separate data points that both
// raise that motif's count.
//
// The result is order-independent: any traversal order of the work queue
// produces the same motif-class map, so the solver runs a simple FIFO and
// checks the caller's context between seeds for cancellation.
package enumerator
