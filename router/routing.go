package router

import (
	"github.com/inkroute/inkroute/grid"
	"github.com/inkroute/inkroute/model"
	"github.com/inkroute/inkroute/pathfinder"
)

// netRouteResult is one net's routing outcome: either one committed Trace
// per pad-to-tree connection (k pads yield k-1 traces, each a pure
// Manhattan path), or a list of the pads that could not be reached.
type netRouteResult struct {
	Traces   []model.Trace
	Unrouted []model.Pad
	OK       bool
}

// netToRoute is the subset of netlist.Net routeNetDirect needs, kept local
// to router so this file doesn't need to import netlist just for a struct
// literal.
type netToRoute struct {
	Name string
	Pads []model.Pad
}

// routeNetDirect connects one net: grow a tree
// from pads[firstPadIndex], greedily connecting the nearest remaining pad
// (by resulting path length) on each round, treating every other net's pads
// and every already-committed trace as keep-out.
//
// allPads is every pad on the board (used to generate foreign-pad
// keep-out); foreignTraceCells is the set of cells occupied by nets already
// routed in this attempt. cellCost, when non-nil, is passed through to
// pathfinder.FindPathToTree (the power-net perimeter bias).
func routeNetDirect(g *grid.Grid, net netToRoute, allPads []model.Pad, foreignTraceCells map[model.Cell]struct{}, tracePadding, traceBlockPadding int, cellCost pathfinder.CostFunc, firstPadIndex int) netRouteResult {
	pads := net.Pads
	if len(pads) < 2 {
		return netRouteResult{OK: true}
	}

	routedCells := map[model.Cell]struct{}{pads[firstPadIndex].Center: {}}
	connected := map[int]struct{}{firstPadIndex: {}}
	var traces []model.Trace

	ownCenters := make(map[model.Cell]struct{}, len(pads))
	for _, p := range pads {
		ownCenters[p.Center] = struct{}{}
	}
	foreignPadCenters := make(map[model.Cell]struct{})
	for _, p := range allPads {
		if _, own := ownCenters[p.Center]; own {
			continue
		}
		foreignPadCenters[p.Center] = struct{}{}
	}

	// Steps invariant across every candidate and round within this net:
	// block every foreign pad's centre, punch the approach zone back open
	// around this net's own pads, then lay foreign committed traces as
	// keep-out. Undone together when the net is done.
	undoForeignPads := blockForeignPadCenters(g, foreignPadCenters, traceBlockPadding, ownCenters)
	undoApproach := freeApproachZoneForPads(g, pads, tracePadding, foreignPadCenters, traceBlockPadding)
	blockForeignTrace(g, foreignTraceCells, traceBlockPadding)
	defer func() {
		unblockForeignTrace(g, foreignTraceCells, traceBlockPadding)
		undoApproach()
		undoForeignPads()
	}()

	for len(connected) < len(pads) {
		type candidate struct {
			idx  int
			path []model.Cell
		}
		var best *candidate

		undoFree := freeCells(g, routedCells)
		for i := range pads {
			if _, done := connected[i]; done {
				continue
			}

			path, err := pathfinder.FindPathToTree(g, pads[i].Center, routedCells, cellCost)
			if err != nil {
				continue
			}
			if best == nil || len(path) < len(best.path) {
				best = &candidate{idx: i, path: path}
			}
		}
		undoFree()
		reblockRouted(g, routedCells)

		if best == nil {
			var unrouted []model.Pad
			for i := range pads {
				if _, done := connected[i]; !done {
					unrouted = append(unrouted, pads[i])
				}
			}
			return netRouteResult{Unrouted: unrouted, OK: false}
		}

		// The committed path runs candidate -> tree junction; each one is
		// its own Trace so every trace stays a pure Manhattan walk even
		// when the net branches.
		traces = append(traces, model.Trace{Net: net.Name, Path: best.path})
		for _, c := range best.path {
			if _, already := routedCells[c]; !already {
				routedCells[c] = struct{}{}
				g.BlockCell(c.X, c.Y)
			}
		}
		connected[best.idx] = struct{}{}
	}

	return netRouteResult{Traces: traces, OK: true}
}

// blockForeignPadCenters blocks a padding-radius square around every
// foreign pad centre, skipping cells that belong to the current net's own
// pad-centre set, and returns an undo func.
func blockForeignPadCenters(g *grid.Grid, foreign map[model.Cell]struct{}, padding int, own map[model.Cell]struct{}) func() {
	type blocked struct{ x, y int }
	var touched []blocked
	for c := range foreign {
		for y := c.Y - padding; y <= c.Y+padding; y++ {
			for x := c.X - padding; x <= c.X+padding; x++ {
				if _, isOwn := own[model.Cell{X: x, Y: y}]; isOwn {
					continue
				}
				if g.IsFree(x, y) {
					touched = append(touched, blocked{x, y})
				}
				g.BlockCell(x, y)
			}
		}
	}
	return func() {
		for _, b := range touched {
			g.FreeCell(b.x, b.y)
		}
	}
}

// freeApproachZoneForPads frees a tracePadding-radius square around every
// pad in pads, skipping any cell within traceBlockPadding of a foreign pad
// so traces can reach their own pad without hugging foreign pins. The
// returned undo func re-blocks exactly what was freed.
func freeApproachZoneForPads(g *grid.Grid, pads []model.Pad, tracePadding int, foreign map[model.Cell]struct{}, traceBlockPadding int) func() {
	type freed struct{ x, y int }
	var touched []freed
	for _, p := range pads {
		c := p.Center
		for y := c.Y - tracePadding; y <= c.Y+tracePadding; y++ {
			for x := c.X - tracePadding; x <= c.X+tracePadding; x++ {
				if nearAny(foreign, x, y, traceBlockPadding) {
					continue
				}
				if g.IsBlocked(x, y) && !g.IsPermanentlyBlocked(x, y) {
					touched = append(touched, freed{x, y})
				}
				g.FreeCell(x, y)
			}
		}
	}
	return func() {
		for _, f := range touched {
			g.BlockCell(f.x, f.y)
		}
	}
}

func nearAny(cells map[model.Cell]struct{}, x, y, radius int) bool {
	for c := range cells {
		dx, dy := c.X-x, c.Y-y
		if dx < 0 {
			dx = -dx
		}
		if dy < 0 {
			dy = -dy
		}
		if dx <= radius && dy <= radius {
			return true
		}
	}
	return false
}

// freeCells temporarily frees every cell in cells (so the pathfinder can
// approach the existing tree) and returns an undo func.
func freeCells(g *grid.Grid, cells map[model.Cell]struct{}) func() {
	for c := range cells {
		g.FreeCell(c.X, c.Y)
	}
	return func() {
		for c := range cells {
			g.BlockCell(c.X, c.Y)
		}
	}
}

func reblockRouted(g *grid.Grid, cells map[model.Cell]struct{}) {
	for c := range cells {
		g.BlockCell(c.X, c.Y)
	}
}

// blockForeignTrace blocks a padding-radius square around every cell of
// every already-completed net's trace, for the duration of one net's
// routing.
func blockForeignTrace(g *grid.Grid, cells map[model.Cell]struct{}, padding int) {
	for c := range cells {
		g.BlockArea(c.X, c.Y, padding)
	}
}

// unblockForeignTrace undoes blockForeignTrace's padding ring, then
// re-blocks the exact trace cells themselves: those remain committed for
// the rest of this attempt regardless of this net's outcome.
func unblockForeignTrace(g *grid.Grid, cells map[model.Cell]struct{}, padding int) {
	for c := range cells {
		g.FreeArea(c.X, c.Y, padding)
	}
	for c := range cells {
		g.BlockCell(c.X, c.Y)
	}
}

// perimeterCost is the power-net bias: zero near the board edge, ramping
// up to perimeterHugCost toward the interior, so GND/VCC hug the
// perimeter and leave the interior for signals.
func perimeterCost(g *grid.Grid) pathfinder.CostFunc {
	return func(x, y int) float64 {
		d := g.QuickEdgeDist(x, y, perimeterProbeRadius)
		if d <= 1 {
			return 0
		}
		frac := float64(d) / float64(perimeterProbeRadius)
		if frac > 1 {
			frac = 1
		}
		return frac * perimeterHugCost
	}
}

// perimeterAnchorIndex returns the index of the pad with the smallest
// quick_edge_dist, so power-net routing starts from the pad closest to the
// board edge.
func perimeterAnchorIndex(g *grid.Grid, pads []model.Pad) int {
	best := 0
	bestDist := -1
	for i, p := range pads {
		d := g.QuickEdgeDist(p.Center.X, p.Center.Y, perimeterProbeRadius)
		if bestDist < 0 || d < bestDist {
			bestDist = d
			best = i
		}
	}
	return best
}
