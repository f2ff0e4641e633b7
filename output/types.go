package output

import "github.com/inkroute/inkroute/model"

// Polygon is a simple (non-self-intersecting) closed polygon in world-space
// millimetres. The last vertex is implicitly connected back to the first;
// callers never repeat it.
type Polygon struct {
	Vertices []model.Point
}

// Mask is a single-channel, row-major byte raster: Pix[y*Width+x] is the
// pixel at column x, row y. A flat byte plane is all a conductor mask
// needs; there are only ever two values.
type Mask struct {
	Width, Height int
	Pix           []byte
}

// At returns the pixel value at (x,y), or 0 if out of bounds.
func (m Mask) At(x, y int) byte {
	if x < 0 || x >= m.Width || y < 0 || y >= m.Height {
		return 0
	}
	return m.Pix[y*m.Width+x]
}

// Rasters bundles the positive (conductor) and negative (void) masks
// produced by Rasterize, both sharing the same pixel extents.
type Rasters struct {
	Width, Height int
	Positive      Mask
	Negative      Mask
}

// Geometry bundles the polygon layers a RoutingResult produces: the board
// outline, one polygon set per trace, and one 16-gon per pad.
type Geometry struct {
	Outline Polygon
	Traces  []Polygon
	Pads    []Polygon
}
