// Package inkroute is an automatic single-layer PCB router for
// conductive-ink 3D printing.
//
// Given a board outline, typed component placements, and the netlist
// implied by shared net names on pins, inkroute produces orthogonal
// (Manhattan) copper traces that connect every pin of every net while
// respecting trace width, inter-conductor clearance, and board-edge
// keep-out — then renders them as polygon geometry and raster masks.
//
// The pipeline, leaves first:
//
//	grid/       — quantized FREE/BLOCKED occupancy map over the board
//	pathfinder/ — A* with turn penalties, single-sink or to-tree search
//	netlist/    — pad grouping, Kruskal MST, net priority
//	router/     — placement, per-net routing, rip-up retry loop
//	output/     — trace/pad polygons + scanline mask rasterization
//	ioadapter/  — JSON documents in/out, PNG mask encoding
//	cmd/        — the inkroute CLI ("route" and "render")
//
// A Route call is synchronous and a pure function of its input: no
// goroutines, no timers, no I/O inside the engine. Multiple routings may
// run in parallel as long as each has its own instances.
package inkroute
