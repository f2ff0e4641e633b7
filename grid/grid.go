package grid

import "math"

// Grid is a quantized occupancy map over a rectangular board area.
//
// blocked[i] and permanent[i] are parallel flat arrays indexed by
// y*Width+x. A permanently blocked cell is always BLOCKED; FreeCell on it
// is a no-op.
type Grid struct {
	Width, Height int
	ResolutionMM  float64

	blocked   []bool
	permanent []bool
}

// New constructs a Grid sized to cover a board of boardWidthMM x
// boardHeightMM at the given resolution, then permanently blocks the board
// exterior: either the margin outside (and near the edges of) outline, when
// given, or a rectangular rim of blockedRadiusCells cells otherwise.
//
// outline, if non-nil, must have at least 3 vertices.
func New(boardWidthMM, boardHeightMM, resolutionMM float64, outline []Point, blockedRadiusCells int) (*Grid, error) {
	if boardWidthMM <= 0 || boardHeightMM <= 0 || resolutionMM <= 0 {
		return nil, ErrInvalidDimensions
	}
	if outline != nil && len(outline) < 3 {
		return nil, ErrPolygonTooFewVertices
	}
	if blockedRadiusCells < 0 {
		blockedRadiusCells = 0
	}

	w := int(math.Ceil(boardWidthMM / resolutionMM))
	h := int(math.Ceil(boardHeightMM / resolutionMM))
	if w < 1 {
		w = 1
	}
	if h < 1 {
		h = 1
	}

	g := &Grid{
		Width:        w,
		Height:       h,
		ResolutionMM: resolutionMM,
		blocked:      make([]bool, w*h),
		permanent:    make([]bool, w*h),
	}

	if outline != nil {
		g.blockOutsidePolygon(outline, blockedRadiusCells)
	} else {
		g.blockRim(blockedRadiusCells)
	}

	return g, nil
}

// index maps (x,y) to the flat row-major index y*Width+x.
func (g *Grid) index(x, y int) int {
	return y*g.Width + x
}

// IsInBounds reports whether (x,y) lies within the grid.
func (g *Grid) IsInBounds(x, y int) bool {
	return x >= 0 && x < g.Width && y >= 0 && y < g.Height
}

// GetState returns a cell's state. Out-of-bounds cells read as Blocked.
func (g *Grid) GetState(x, y int) State {
	if !g.IsInBounds(x, y) {
		return Blocked
	}
	if g.blocked[g.index(x, y)] {
		return Blocked
	}
	return Free
}

// IsFree reports whether (x,y) is in bounds and FREE.
func (g *Grid) IsFree(x, y int) bool {
	return g.GetState(x, y) == Free
}

// IsBlocked reports whether (x,y) is out of bounds or BLOCKED.
func (g *Grid) IsBlocked(x, y int) bool {
	return g.GetState(x, y) == Blocked
}

// IsPermanentlyBlocked reports whether (x,y) can never be freed.
func (g *Grid) IsPermanentlyBlocked(x, y int) bool {
	if !g.IsInBounds(x, y) {
		return true
	}
	return g.permanent[g.index(x, y)]
}

// BlockCell marks (x,y) BLOCKED. Idempotent, bounds-tolerant, and never
// alters permanence.
func (g *Grid) BlockCell(x, y int) {
	if !g.IsInBounds(x, y) {
		return
	}
	g.blocked[g.index(x, y)] = true
}

// blockCellPermanent marks (x,y) BLOCKED and permanent.
func (g *Grid) blockCellPermanent(x, y int) {
	if !g.IsInBounds(x, y) {
		return
	}
	i := g.index(x, y)
	g.blocked[i] = true
	g.permanent[i] = true
}

// FreeCell clears BLOCKED on (x,y) unless the cell is permanently blocked,
// in which case this is a no-op.
func (g *Grid) FreeCell(x, y int) {
	if !g.IsInBounds(x, y) {
		return
	}
	i := g.index(x, y)
	if g.permanent[i] {
		return
	}
	g.blocked[i] = false
}

// BlockArea blocks every cell in the axis-aligned square of Chebyshev
// radius r centred on (cx,cy).
func (g *Grid) BlockArea(cx, cy, r int) {
	for y := cy - r; y <= cy+r; y++ {
		for x := cx - r; x <= cx+r; x++ {
			g.BlockCell(x, y)
		}
	}
}

// FreeArea frees every cell in the axis-aligned square of Chebyshev radius r
// centred on (cx,cy). Permanently blocked cells are left untouched.
func (g *Grid) FreeArea(cx, cy, r int) {
	for y := cy - r; y <= cy+r; y++ {
		for x := cx - r; x <= cx+r; x++ {
			g.FreeCell(x, y)
		}
	}
}

// BlockRectangularBody permanently blocks every cell whose world-space
// centre lies within the AABB centred on (centerXMM, centerYMM) with half
// extents (halfWidthMM, halfHeightMM), expanded by extraCells cells in each
// direction.
func (g *Grid) BlockRectangularBody(centerXMM, centerYMM, halfWidthMM, halfHeightMM float64, extraCells int) {
	pad := float64(extraCells) * g.ResolutionMM
	minX := centerXMM - halfWidthMM - pad
	maxX := centerXMM + halfWidthMM + pad
	minY := centerYMM - halfHeightMM - pad
	maxY := centerYMM + halfHeightMM + pad

	gx0, gy0 := g.WorldToGrid(minX, minY)
	gx1, gy1 := g.WorldToGrid(maxX, maxY)
	for y := gy0; y <= gy1; y++ {
		for x := gx0; x <= gx1; x++ {
			wx, wy := g.GridToWorld(x, y)
			if wx >= minX && wx <= maxX && wy >= minY && wy <= maxY {
				g.blockCellPermanent(x, y)
			}
		}
	}
}

// WorldToGrid converts a world-space point to a grid cell via
// floor(coord/resolution).
func (g *Grid) WorldToGrid(xMM, yMM float64) (x, y int) {
	return int(math.Floor(xMM / g.ResolutionMM)), int(math.Floor(yMM / g.ResolutionMM))
}

// GridToWorld converts a grid cell to the world-space coordinate of its
// centre: ((gx+0.5)*res, (gy+0.5)*res).
func (g *Grid) GridToWorld(gx, gy int) (xMM, yMM float64) {
	return (float64(gx) + 0.5) * g.ResolutionMM, (float64(gy) + 0.5) * g.ResolutionMM
}

// Snapshot captures the current mutable occupancy state (not the permanent
// flags, which never change after construction/placement) so the router can
// restore it between rip-up attempts without redoing placement.
func (g *Grid) Snapshot() []bool {
	out := make([]bool, len(g.blocked))
	copy(out, g.blocked)
	return out
}

// Restore overwrites the current occupancy state with a previously captured
// Snapshot. The slice must have come from this Grid's Snapshot.
func (g *Grid) Restore(snapshot []bool) {
	copy(g.blocked, snapshot)
}

// QuickEdgeDist approximates the minimum Chebyshev distance from (x,y) to
// the nearest permanently-blocked cell, scanning expanding diamonds
// (Chebyshev rings) out to maxRadius and returning maxRadius if none is
// found that close.
func (g *Grid) QuickEdgeDist(x, y, maxRadius int) int {
	if g.IsPermanentlyBlocked(x, y) {
		return 0
	}
	for r := 1; r <= maxRadius; r++ {
		if g.ringHasPermanentBlock(x, y, r) {
			return r
		}
	}
	return maxRadius
}

// ringHasPermanentBlock reports whether any cell at exact Chebyshev
// distance r from (x,y) is permanently blocked.
func (g *Grid) ringHasPermanentBlock(x, y, r int) bool {
	for dx := -r; dx <= r; dx++ {
		if g.IsPermanentlyBlocked(x+dx, y-r) || g.IsPermanentlyBlocked(x+dx, y+r) {
			return true
		}
	}
	for dy := -r + 1; dy <= r-1; dy++ {
		if g.IsPermanentlyBlocked(x-r, y+dy) || g.IsPermanentlyBlocked(x+r, y+dy) {
			return true
		}
	}
	return false
}

// DistToEdge is QuickEdgeDist with a cap wide enough to cover the whole
// board, i.e. an un-capped edge distance for practical board sizes.
func (g *Grid) DistToEdge(x, y int) int {
	max := g.Width
	if g.Height > max {
		max = g.Height
	}
	return g.QuickEdgeDist(x, y, max)
}

// blockRim permanently blocks a rectangular rim of thickness radiusCells
// around the board (the no-outline-polygon case).
func (g *Grid) blockRim(radiusCells int) {
	for y := 0; y < g.Height; y++ {
		for x := 0; x < g.Width; x++ {
			if x < radiusCells || y < radiusCells || x >= g.Width-radiusCells || y >= g.Height-radiusCells {
				g.blockCellPermanent(x, y)
			}
		}
	}
}

// blockOutsidePolygon permanently blocks every cell whose centre lies
// outside outline, plus every cell within radiusCells*resolution of any
// outline edge segment.
func (g *Grid) blockOutsidePolygon(outline []Point, radiusCells int) {
	marginMM := float64(radiusCells) * g.ResolutionMM
	for y := 0; y < g.Height; y++ {
		for x := 0; x < g.Width; x++ {
			wx, wy := g.GridToWorld(x, y)
			if !pointInPolygon(wx, wy, outline) {
				g.blockCellPermanent(x, y)
				continue
			}
			if distanceToPolygonEdges(wx, wy, outline) <= marginMM {
				g.blockCellPermanent(x, y)
			}
		}
	}
}

// pointInPolygon is the standard even-odd ray-casting point-in-polygon test.
func pointInPolygon(px, py float64, poly []Point) bool {
	inside := false
	n := len(poly)
	for i, j := 0, n-1; i < n; j, i = i, i+1 {
		a, b := poly[i], poly[j]
		if (a.Y > py) != (b.Y > py) {
			xCross := (b.X-a.X)*(py-a.Y)/(b.Y-a.Y) + a.X
			if px < xCross {
				inside = !inside
			}
		}
	}
	return inside
}

// distanceToPolygonEdges returns the minimum point-to-segment distance from
// (px,py) to any edge of poly.
func distanceToPolygonEdges(px, py float64, poly []Point) float64 {
	best := math.Inf(1)
	n := len(poly)
	for i, j := 0, n-1; i < n; j, i = i, i+1 {
		d := distPointToSegment(px, py, poly[j].X, poly[j].Y, poly[i].X, poly[i].Y)
		if d < best {
			best = d
		}
	}
	return best
}

// distPointToSegment returns the distance from (px,py) to the segment
// (ax,ay)-(bx,by).
func distPointToSegment(px, py, ax, ay, bx, by float64) float64 {
	dx, dy := bx-ax, by-ay
	lenSq := dx*dx + dy*dy
	if lenSq == 0 {
		return math.Hypot(px-ax, py-ay)
	}
	t := ((px-ax)*dx + (py-ay)*dy) / lenSq
	if t < 0 {
		t = 0
	} else if t > 1 {
		t = 1
	}
	cx := ax + t*dx
	cy := ay + t*dy
	return math.Hypot(px-cx, py-cy)
}
