// Package grid implements the quantized occupancy map every other stage of
// inkroute builds on: a rectilinear map over the board area that tracks, per
// cell, whether copper may occupy it (FREE) or not (BLOCKED), plus a
// separate "permanently blocked" flag for cells that can never be freed
// again (board exterior, outline margin, component bodies).
//
// Grid owns no knowledge of pads, nets or traces — it is a reusable,
// domain-agnostic occupancy map. Router layers pad/body/trace semantics on
// top by calling the block/free primitives below.
//
// World↔grid conversion:
//
//	world_to_grid(x,y) = (floor(x/res), floor(y/res))
//	grid_to_world(gx,gy) = ((gx+0.5)*res, (gy+0.5)*res)
//
// Complexity: construction is O(W×H); block/free/query operations are O(1)
// except BlockArea/BlockRectangularBody (O(r²)) and DistToEdge/QuickEdgeDist
// (O(max²) worst case, bounded by the caller's max radius).
package grid
