package grid_test

import (
	"testing"

	"github.com/inkroute/inkroute/grid"
)

// TestNew_Dimensions asserts cell-count quantization and the default
// rectangular-rim permanent blocking.
func TestNew_Dimensions(t *testing.T) {
	g, err := grid.New(10, 6, 1.0, nil, 1)
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	if g.Width != 10 || g.Height != 6 {
		t.Fatalf("got %dx%d, want 10x6", g.Width, g.Height)
	}
	// rim of radius 1 is permanently blocked
	if !g.IsPermanentlyBlocked(0, 0) || !g.IsPermanentlyBlocked(9, 5) {
		t.Fatalf("expected rim cells permanently blocked")
	}
	if g.IsPermanentlyBlocked(5, 3) {
		t.Fatalf("interior cell should not be permanently blocked")
	}
}

func TestNew_RejectsBadInputs(t *testing.T) {
	if _, err := grid.New(0, 5, 1.0, nil, 0); err != grid.ErrInvalidDimensions {
		t.Fatalf("want ErrInvalidDimensions, got %v", err)
	}
	if _, err := grid.New(5, 5, 1.0, []grid.Point{{X: 0, Y: 0}, {X: 1, Y: 1}}, 0); err != grid.ErrPolygonTooFewVertices {
		t.Fatalf("want ErrPolygonTooFewVertices, got %v", err)
	}
}

// TestFreeCell_RespectsPermanence checks that FreeCell is a no-op on
// permanently-blocked cells.
func TestFreeCell_RespectsPermanence(t *testing.T) {
	g, _ := grid.New(5, 5, 1.0, nil, 1)
	g.FreeCell(0, 0)
	if !g.IsBlocked(0, 0) {
		t.Fatalf("permanently-blocked cell should remain blocked after FreeCell")
	}

	g.BlockCell(2, 2)
	g.FreeCell(2, 2)
	if g.IsBlocked(2, 2) {
		t.Fatalf("ordinary blocked cell should become free after FreeCell")
	}
}

// TestOutOfBoundsReadsAsBlocked enforces that out-of-bounds reads come
// back BLOCKED.
func TestOutOfBoundsReadsAsBlocked(t *testing.T) {
	g, _ := grid.New(4, 4, 1.0, nil, 0)
	if !g.IsBlocked(-1, 0) || !g.IsBlocked(0, -1) || !g.IsBlocked(100, 0) {
		t.Fatalf("out-of-bounds cells must read as blocked")
	}
}

// TestWorldGridRoundTrip checks the floor-based world_to_grid and the
// cell-centre grid_to_world conversions.
func TestWorldGridRoundTrip(t *testing.T) {
	g, _ := grid.New(10, 10, 0.5, nil, 0)
	gx, gy := g.WorldToGrid(2.3, 4.9)
	if gx != 4 || gy != 9 {
		t.Fatalf("world_to_grid(2.3,4.9) = (%d,%d); want (4,9)", gx, gy)
	}
	wx, wy := g.GridToWorld(4, 9)
	if wx != 2.25 || wy != 4.75 {
		t.Fatalf("grid_to_world(4,9) = (%v,%v); want (2.25,4.75)", wx, wy)
	}
}

// TestSnapshotRestore verifies that Restore undoes mutations made after
// Snapshot, matching the per-attempt reset the router relies on.
func TestSnapshotRestore(t *testing.T) {
	g, _ := grid.New(8, 8, 1.0, nil, 1)
	snap := g.Snapshot()
	g.BlockArea(4, 4, 1)
	if g.IsFree(4, 4) {
		t.Fatalf("expected (4,4) blocked after BlockArea")
	}
	g.Restore(snap)
	if !g.IsFree(4, 4) {
		t.Fatalf("expected (4,4) free after Restore")
	}
}

// TestBlockRectangularBody_IsPermanent checks component-body blocking is
// permanent and bounded to the expected AABB.
func TestBlockRectangularBody_IsPermanent(t *testing.T) {
	g, _ := grid.New(20, 20, 1.0, nil, 0)
	g.BlockRectangularBody(10, 10, 2, 2, 0)
	if !g.IsPermanentlyBlocked(10, 10) {
		t.Fatalf("body centre should be permanently blocked")
	}
	if g.IsPermanentlyBlocked(0, 0) {
		t.Fatalf("cell far from body should be unaffected")
	}
}

// TestQuickEdgeDist_ZeroAtBoundary checks that cells on the permanent rim
// report zero edge distance, and interior cells report a positive distance
// bounded by maxRadius.
func TestQuickEdgeDist_ZeroAtBoundary(t *testing.T) {
	g, _ := grid.New(20, 20, 1.0, nil, 1)
	if d := g.QuickEdgeDist(0, 0, 12); d != 0 {
		t.Fatalf("rim cell QuickEdgeDist = %d; want 0", d)
	}
	d := g.QuickEdgeDist(10, 10, 5)
	if d <= 0 || d > 5 {
		t.Fatalf("interior QuickEdgeDist = %d; want in (0,5]", d)
	}
}

// TestOutlinePolygon_BlocksExterior checks that an L-shaped outline blocks
// the excluded quadrant.
func TestOutlinePolygon_BlocksExterior(t *testing.T) {
	// L-shape: full 10x10 board minus the upper-right 5x5 quadrant.
	outline := []grid.Point{
		{X: 0, Y: 0}, {X: 10, Y: 0}, {X: 10, Y: 5}, {X: 5, Y: 5}, {X: 5, Y: 10}, {X: 0, Y: 10},
	}
	g, err := grid.New(10, 10, 1.0, outline, 0)
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	gx, gy := g.WorldToGrid(8, 8) // inside the excluded quadrant
	if !g.IsPermanentlyBlocked(gx, gy) {
		t.Fatalf("excluded quadrant cell (%d,%d) should be permanently blocked", gx, gy)
	}
	gx2, gy2 := g.WorldToGrid(2, 2) // inside the retained region
	if g.IsPermanentlyBlocked(gx2, gy2) {
		t.Fatalf("retained-region cell (%d,%d) should not be permanently blocked", gx2, gy2)
	}
}
