package pathfinder

import "errors"

// Sentinel errors returned by the pathfinder package.
var (
	// ErrNoPath indicates the open set exhausted without reaching the goal.
	ErrNoPath = errors.New("pathfinder: no path found")
	// ErrBrokenPath indicates a reconstructed path violates the Manhattan
	// adjacency invariant. This should
	// never happen; ValidatePath exists so callers can treat it as an
	// InternalError instead of trusting an invalid result.
	ErrBrokenPath = errors.New("pathfinder: reconstructed path is not a pure Manhattan walk")
)

// CostFunc is an optional per-cell additive cost, e.g. the perimeter bias
// router's perimeter bias that steers power nets toward the
// board edge.
type CostFunc func(x, y int) float64

// turn penalties: point-to-point search penalizes direction
// changes more heavily than tree search, because tree search already
// benefits from being able to terminate anywhere in a (usually large) set.
const (
	pointToPointTurnPenalty = 10.0
	treeSearchTurnPenalty   = 5.0
)

// direction is one of the four 4-connected moves. Order matters: right,
// left, down, up is the tie-break order, since whichever neighbour is
// generated first wins ties in the open set.
type direction struct {
	dx, dy int
}

var directions = [4]direction{
	{dx: 1, dy: 0},  // right
	{dx: -1, dy: 0}, // left
	{dx: 0, dy: 1},  // down
	{dx: 0, dy: -1}, // up
}

// noDirection marks "no direction used to enter this cell", i.e. the start
// of a search, so the first move never incurs a turn penalty.
const noDirection = -1
