package pathfinder_test

import (
	"testing"

	"github.com/inkroute/inkroute/grid"
	"github.com/inkroute/inkroute/pathfinder"
)

func mustGrid(t *testing.T, w, h int) *grid.Grid {
	t.Helper()
	g, err := grid.New(float64(w), float64(h), 1.0, nil, 0)
	if err != nil {
		t.Fatalf("grid.New: %v", err)
	}
	return g
}

func TestFindPath_StraightShortcut(t *testing.T) {
	g := mustGrid(t, 10, 10)
	path, err := pathfinder.FindPath(g, grid.Cell{X: 1, Y: 1}, grid.Cell{X: 5, Y: 1})
	if err != nil {
		t.Fatalf("FindPath: %v", err)
	}
	if err := pathfinder.ValidatePath(g, path); err != nil {
		t.Fatalf("ValidatePath: %v", err)
	}
	if path[0] != (grid.Cell{X: 1, Y: 1}) || path[len(path)-1] != (grid.Cell{X: 5, Y: 1}) {
		t.Fatalf("unexpected endpoints: %v", path)
	}
}

func TestFindPath_AroundObstacle(t *testing.T) {
	g := mustGrid(t, 10, 10)
	// Wall across row y=5 except a gap at x=8, forcing a detour.
	for x := 0; x < 10; x++ {
		if x != 8 {
			g.BlockCell(x, 5)
		}
	}
	path, err := pathfinder.FindPath(g, grid.Cell{X: 1, Y: 1}, grid.Cell{X: 1, Y: 9})
	if err != nil {
		t.Fatalf("FindPath: %v", err)
	}
	if err := pathfinder.ValidatePath(g, path); err != nil {
		t.Fatalf("ValidatePath: %v", err)
	}
	foundGap := false
	for _, c := range path {
		if c == (grid.Cell{X: 8, Y: 5}) {
			foundGap = true
		}
	}
	if !foundGap {
		t.Fatalf("expected path to route through the gap at (8,5): %v", path)
	}
}

func TestFindPath_NoPath(t *testing.T) {
	g := mustGrid(t, 10, 10)
	for x := 0; x < 10; x++ {
		g.BlockCell(x, 5)
	}
	_, err := pathfinder.FindPath(g, grid.Cell{X: 1, Y: 1}, grid.Cell{X: 1, Y: 9})
	if err != pathfinder.ErrNoPath {
		t.Fatalf("want ErrNoPath, got %v", err)
	}
}

func TestFindPath_SinkMayBeBlocked(t *testing.T) {
	g := mustGrid(t, 10, 10)
	sink := grid.Cell{X: 5, Y: 5}
	g.BlockCell(sink.X, sink.Y)
	path, err := pathfinder.FindPath(g, grid.Cell{X: 0, Y: 0}, sink)
	if err != nil {
		t.Fatalf("FindPath should reach a blocked sink: %v", err)
	}
	if path[len(path)-1] != sink {
		t.Fatalf("path must end at sink, got %v", path)
	}
}

func TestFindPathToTree_SourceAlreadyInTree(t *testing.T) {
	g := mustGrid(t, 10, 10)
	source := grid.Cell{X: 3, Y: 3}
	tree := map[grid.Cell]struct{}{source: {}}
	path, err := pathfinder.FindPathToTree(g, source, tree, nil)
	if err != nil {
		t.Fatalf("FindPathToTree: %v", err)
	}
	if len(path) != 1 || path[0] != source {
		t.Fatalf("want single-cell path [source], got %v", path)
	}
}

func TestFindPathToTree_ReachesNearestMember(t *testing.T) {
	g := mustGrid(t, 20, 20)
	tree := map[grid.Cell]struct{}{
		{X: 10, Y: 10}: {},
		{X: 0, Y: 0}:   {},
	}
	path, err := pathfinder.FindPathToTree(g, grid.Cell{X: 9, Y: 10}, tree, nil)
	if err != nil {
		t.Fatalf("FindPathToTree: %v", err)
	}
	if path[len(path)-1] != (grid.Cell{X: 10, Y: 10}) {
		t.Fatalf("expected to reach the nearer tree cell, got end %v", path[len(path)-1])
	}
}

func TestFindPathToTree_CostFuncBiasesRoute(t *testing.T) {
	g := mustGrid(t, 20, 20)
	tree := map[grid.Cell]struct{}{{X: 19, Y: 0}: {}}
	cost := func(x, y int) float64 {
		if y == 0 {
			return 0
		}
		return 5
	}
	path, err := pathfinder.FindPathToTree(g, grid.Cell{X: 0, Y: 0}, tree, cost)
	if err != nil {
		t.Fatalf("FindPathToTree: %v", err)
	}
	for _, c := range path {
		if c.Y != 0 {
			t.Fatalf("expected path to stay on the zero-cost row, found %v in %v", c, path)
		}
	}
}
