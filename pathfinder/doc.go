// Package pathfinder computes minimum-cost orthogonal paths over a
// grid.Grid, either to a single sink cell or to any cell in a "tree" set.
//
// Both entry points share one A* engine: 4-connected neighbours, a
// Manhattan-distance heuristic, a turn penalty added whenever the move
// direction changes, and an optional per-cell cost function for routing
// biases (e.g. power-perimeter routing in package router). The open set is
// a binary min-heap keyed by f = g + h, using lazy deletion (push on
// relax, skip on pop if already closed) instead of decrease-key.
//
// Pathfinder is stateless: every exported function takes a *grid.Grid and
// returns a fresh result, touching no package-level state, so a Grid may be
// queried by many pathfinder calls (serially) without any cross-call
// bookkeeping beyond what the Grid itself encodes.
package pathfinder
