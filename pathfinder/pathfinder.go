package pathfinder

import (
	"container/heap"

	"github.com/inkroute/inkroute/grid"
)

// FindPath computes a minimum-cost orthogonal path from source to sink.
//
// It first tries the two L-shaped routes (horizontal-then-vertical and
// vertical-then-horizontal); if either is fully FREE along its length it is
// returned immediately, with no turn-penalty search needed. Otherwise it
// falls back to A* with a point-to-point turn penalty.
func FindPath(g *grid.Grid, source, sink grid.Cell) ([]grid.Cell, error) {
	if source == sink {
		return []grid.Cell{source}, nil
	}
	if path, ok := straightLShapedPath(g, source, sink, true); ok {
		return path, nil
	}
	if path, ok := straightLShapedPath(g, source, sink, false); ok {
		return path, nil
	}

	sinkIdx := encode(g, sink.X, sink.Y)
	return runAStar(g, source, pointToPointTurnPenalty, nil, func(idx int) bool {
		return idx == sinkIdx
	}, func(x, y int) float64 {
		return float64(manhattan(x, y, sink.X, sink.Y))
	})
}

// FindPathToTree returns the least-cost path from source to any cell in
// tree. If source is itself in tree, it returns a single-cell path
//. cellCost, if non-nil, is an additive per-cell bias (used
// by router's perimeter-routing strategy for power nets).
func FindPathToTree(g *grid.Grid, source grid.Cell, tree map[grid.Cell]struct{}, cellCost CostFunc) ([]grid.Cell, error) {
	if _, ok := tree[source]; ok {
		return []grid.Cell{source}, nil
	}

	treeCells := make([]grid.Cell, 0, len(tree))
	for c := range tree {
		treeCells = append(treeCells, c)
	}

	return runAStar(g, source, treeSearchTurnPenalty, cellCost, func(idx int) bool {
		x, y := decode(g, idx)
		_, ok := tree[grid.Cell{X: x, Y: y}]
		return ok
	}, func(x, y int) float64 {
		best := -1
		for _, c := range treeCells {
			d := manhattan(x, y, c.X, c.Y)
			if best < 0 || d < best {
				best = d
			}
		}
		if best < 0 {
			return 0
		}
		return float64(best)
	})
}

// ValidatePath checks that path is a pure Manhattan walk: every consecutive
// pair of cells differs by exactly one in exactly one axis, and every cell
// is in bounds. It returns
// ErrBrokenPath rather than panicking, so callers can surface an internal
// failure as a value.
func ValidatePath(g *grid.Grid, path []grid.Cell) error {
	for i, c := range path {
		if !g.IsInBounds(c.X, c.Y) {
			return ErrBrokenPath
		}
		if i == 0 {
			continue
		}
		dx := abs(c.X - path[i-1].X)
		dy := abs(c.Y - path[i-1].Y)
		if dx+dy != 1 {
			return ErrBrokenPath
		}
	}
	return nil
}

// runAStar is the shared A* engine behind both entry points: 4-connected
// neighbours, binary min-heap open set with lazy deletion, a turn penalty,
// and an optional per-cell cost.
func runAStar(g *grid.Grid, source grid.Cell, turnPenalty float64, cellCost CostFunc, isGoal func(idx int) bool, heuristic func(x, y int) float64) ([]grid.Cell, error) {
	startIdx := encode(g, source.X, source.Y)

	bestG := map[int]float64{startIdx: 0}
	closed := make(map[int]bool)
	parentOf := make(map[int]int)
	dirOf := make(map[int]int)

	open := &openHeap{}
	heap.Init(open)
	seq := 0
	heap.Push(open, &openItem{
		idx: startIdx, g: 0, f: heuristic(source.X, source.Y),
		dir: noDirection, parent: -1, seq: seq,
	})

	for open.Len() > 0 {
		cur := heap.Pop(open).(*openItem)
		if closed[cur.idx] {
			continue
		}
		closed[cur.idx] = true
		parentOf[cur.idx] = cur.parent
		dirOf[cur.idx] = cur.dir

		if isGoal(cur.idx) {
			return reconstructPath(g, cur.idx, parentOf), nil
		}

		x, y := decode(g, cur.idx)
		for d, dir := range directions {
			nx, ny := x+dir.dx, y+dir.dy
			if !g.IsInBounds(nx, ny) {
				continue
			}
			nIdx := encode(g, nx, ny)
			if closed[nIdx] {
				continue
			}
			if !g.IsFree(nx, ny) && !isGoal(nIdx) {
				// Neighbour admissibility: must be FREE, unless it is
				// itself a goal cell (explicit sink or tree member),
				// which may have been temporarily marked BLOCKED.
				continue
			}

			moveCost := 1.0
			if cur.dir != noDirection && cur.dir != d {
				moveCost += turnPenalty
			}
			if cellCost != nil {
				moveCost += cellCost(nx, ny)
			}
			newG := cur.g + moveCost

			if g0, ok := bestG[nIdx]; ok && newG >= g0 {
				continue
			}
			bestG[nIdx] = newG
			seq++
			heap.Push(open, &openItem{
				idx: nIdx, g: newG, f: newG + heuristic(nx, ny),
				dir: d, parent: cur.idx, seq: seq,
			})
		}
	}

	return nil, ErrNoPath
}

// reconstructPath walks parentOf from goalIdx back to the start, following
// parent pointers, then reverses the result into source-to-goal order.
func reconstructPath(g *grid.Grid, goalIdx int, parentOf map[int]int) []grid.Cell {
	var rev []grid.Cell
	for idx := goalIdx; ; {
		x, y := decode(g, idx)
		rev = append(rev, grid.Cell{X: x, Y: y})
		parent, ok := parentOf[idx]
		if !ok || parent < 0 {
			break
		}
		idx = parent
	}
	path := make([]grid.Cell, len(rev))
	for i, c := range rev {
		path[len(rev)-1-i] = c
	}
	return path
}

// straightLShapedPath builds the horizontal-then-vertical (or, if
// horizontalFirst is false, vertical-then-horizontal) L-shaped route from
// source to sink and reports whether every cell along it is FREE (the source
// and the sink are exempt: A* never checks its start cell either, and the
// sink may be BLOCKED per the same admissibility rule A* uses).
func straightLShapedPath(g *grid.Grid, source, sink grid.Cell, horizontalFirst bool) ([]grid.Cell, bool) {
	var corner grid.Cell
	if horizontalFirst {
		corner = grid.Cell{X: sink.X, Y: source.Y}
	} else {
		corner = grid.Cell{X: source.X, Y: sink.Y}
	}

	path := []grid.Cell{source}
	path = appendAxisWalk(path, source, corner)
	path = appendAxisWalk(path, corner, sink)

	for _, c := range path {
		if c == sink || c == source {
			continue
		}
		if !g.IsFree(c.X, c.Y) {
			return nil, false
		}
	}
	return path, true
}

// appendAxisWalk appends the cells strictly between from and to (inclusive
// of to) to path; from and to must share exactly one coordinate.
func appendAxisWalk(path []grid.Cell, from, to grid.Cell) []grid.Cell {
	if from == to {
		return path
	}
	if from.Y == to.Y {
		step := 1
		if to.X < from.X {
			step = -1
		}
		for x := from.X + step; ; x += step {
			path = append(path, grid.Cell{X: x, Y: from.Y})
			if x == to.X {
				break
			}
		}
		return path
	}
	step := 1
	if to.Y < from.Y {
		step = -1
	}
	for y := from.Y + step; ; y += step {
		path = append(path, grid.Cell{X: from.X, Y: y})
		if y == to.Y {
			break
		}
	}
	return path
}

func encode(g *grid.Grid, x, y int) int { return y*g.Width + x }

func decode(g *grid.Grid, idx int) (x, y int) { return idx % g.Width, idx / g.Width }

func manhattan(x1, y1, x2, y2 int) int { return abs(x1-x2) + abs(y1-y2) }

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}
