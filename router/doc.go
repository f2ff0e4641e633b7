// Package router is inkroute's orchestrator: it turns a model.RouterInput
// into a model.RoutingResult by placing components onto a grid.Grid,
// extracting nets (package netlist), and routing each net as a sequence of
// pathfinder.FindPathToTree calls, retrying with alternative net orderings
// and a relaxed clearance when the static ordering leaves pads unconnected.
//
// Route is a pure function of its input: every rip-up attempt
// gets its own grid.Grid.Snapshot/Restore cycle, and no package-level state
// survives between calls. Ordering-strategy enumeration is deterministic
// unless the caller opts into a seeded shuffle via WithShuffledOrdering.
package router
