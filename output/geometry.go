package output

import (
	"math"

	"github.com/inkroute/inkroute/model"
)

// padPolygonRadiusMM is the radius of the 16-gon drawn at each pad centre.
const padPolygonRadiusMM = 1.0

// padPolygonSides and endcapSides are the regular-polygon circle
// approximations for pads (16-gon) and trace endcaps (8-gon).
const (
	padPolygonSides = 16
	endcapSides     = 8
)

// BuildGeometry converts a RoutingResult's traces and the board's pads into
// world-space polygons: the board outline, one polygon set per trace
// (segment rectangles plus vertex endcaps), and one 16-gon per pad.
func BuildGeometry(board model.BoardParameters, traceWidthMM float64, traces []model.Trace, pads []model.Pad) Geometry {
	res := board.GridResolutionMM
	g := Geometry{Outline: BoardOutline(board)}
	for _, t := range traces {
		g.Traces = append(g.Traces, TracePolygons(t, res, traceWidthMM)...)
	}
	g.Pads = PadPolygons(pads, res)
	return g
}

// BoardOutline returns the board's outline polygon: the supplied polygon if
// one was given, otherwise the axis-aligned rectangle
// [0,0]-[boardWidth,boardHeight].
func BoardOutline(board model.BoardParameters) Polygon {
	if len(board.OutlinePolygon) >= 3 {
		return Polygon{Vertices: append([]model.Point(nil), board.OutlinePolygon...)}
	}
	w, h := board.BoardWidthMM, board.BoardHeightMM
	return Polygon{Vertices: []model.Point{
		{X: 0, Y: 0}, {X: w, Y: 0}, {X: w, Y: h}, {X: 0, Y: h},
	}}
}

// TracePolygons renders one trace's path as a sequence of segment
// rectangles (thickness traceWidthMM, extruded perpendicular to the
// dominant axis of each segment) plus one endcap octagon at every vertex of
// the path, so corners and terminals are filled.
func TracePolygons(t model.Trace, gridResolutionMM, traceWidthMM float64) []Polygon {
	if len(t.Path) == 0 {
		return nil
	}

	halfWidth := traceWidthMM / 2
	world := make([]model.Point, len(t.Path))
	for i, c := range t.Path {
		world[i] = cellToWorld(c, gridResolutionMM)
	}

	var polys []Polygon
	for i := 1; i < len(world); i++ {
		polys = append(polys, segmentRectangle(world[i-1], world[i], halfWidth))
	}
	for _, p := range world {
		polys = append(polys, regularPolygon(p, halfWidth, endcapSides))
	}
	return polys
}

// PadPolygons renders one 16-gon per pad, centred on the pad's world
// position.
func PadPolygons(pads []model.Pad, gridResolutionMM float64) []Polygon {
	polys := make([]Polygon, 0, len(pads))
	for _, p := range pads {
		center := cellToWorld(p.Center, gridResolutionMM)
		polys = append(polys, regularPolygon(center, padPolygonRadiusMM, padPolygonSides))
	}
	return polys
}

// cellToWorld is grid.Grid.GridToWorld's "(gx+0.5)*res" formula, duplicated
// here so output never needs to depend on the grid package purely for this
// conversion.
func cellToWorld(c model.Cell, res float64) model.Point {
	return model.Point{X: (float64(c.X) + 0.5) * res, Y: (float64(c.Y) + 0.5) * res}
}

// segmentRectangle builds the axis-aligned rectangle covering the segment
// a-b, extruded by halfWidth perpendicular to the segment's dominant axis:
// if |dx| > |dy| the perpendicular offset is (0, halfWidth), else
// (halfWidth, 0).
func segmentRectangle(a, b model.Point, halfWidth float64) Polygon {
	dx, dy := b.X-a.X, b.Y-a.Y
	var perp model.Point
	if math.Abs(dx) > math.Abs(dy) {
		perp = model.Point{X: 0, Y: halfWidth}
	} else {
		perp = model.Point{X: halfWidth, Y: 0}
	}
	return Polygon{Vertices: []model.Point{
		{X: a.X + perp.X, Y: a.Y + perp.Y},
		{X: b.X + perp.X, Y: b.Y + perp.Y},
		{X: b.X - perp.X, Y: b.Y - perp.Y},
		{X: a.X - perp.X, Y: a.Y - perp.Y},
	}}
}

// regularPolygon approximates a circle of the given radius centred on
// center with an n-sided regular polygon, used for trace endcaps (8-gon)
// and pad polygons (16-gon).
func regularPolygon(center model.Point, radius float64, n int) Polygon {
	verts := make([]model.Point, n)
	for i := 0; i < n; i++ {
		theta := 2 * math.Pi * float64(i) / float64(n)
		verts[i] = model.Point{
			X: center.X + radius*math.Cos(theta),
			Y: center.Y + radius*math.Sin(theta),
		}
	}
	return Polygon{Vertices: verts}
}
