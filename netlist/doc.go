// Package netlist groups a board's pads into nets and computes each net's
// priority for routing order.
//
// Net extraction is pure bookkeeping: pads sharing a net name (other than
// the reserved "NC" marker) form one net; a net with fewer than two pads
// carries nothing to route and is dropped. For each remaining net this
// package builds a small weighted, undirected graph over its pad centres
// (Manhattan distance as edge weight) and runs Kruskal's algorithm, with
// union-find using path compression and union by rank, to get the net's
// minimum spanning tree weight. The MST itself is not used to route; only
// its total weight feeds the secondary, shorter-distance-first priority
// tie-break. Graph is a trimmed, single-purpose structure: no
// multigraph/loop machinery, no shared-state thread-safety, since a
// netlist Graph lives for exactly one ExtractNets call and is never
// touched concurrently.
package netlist
