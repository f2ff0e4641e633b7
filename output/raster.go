package output

import (
	"math"
	"sort"

	"github.com/inkroute/inkroute/model"
)

// mmPerInch converts millimetres to inches for DPI-based pixel sizing.
const mmPerInch = 25.4

// Rasterize scan-converts polys (trace and pad polygons; the board outline
// itself is never filled) onto a positive (conductor) mask and a negative
// (void) mask at the configured DPI, using the even-odd fill rule.
//
// Pixel extents: width = ceil(boardWidthMM/25.4*dpi), height likewise for
// height. World->pixel: px = wx/boardWidth*width,
// py = (1-wy/boardHeight)*height (Y flipped).
func Rasterize(board model.BoardParameters, polys []Polygon, opts ...Option) Rasters {
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}

	widthInches := board.BoardWidthMM / mmPerInch
	heightInches := board.BoardHeightMM / mmPerInch
	width := int(math.Ceil(widthInches * float64(o.DPI)))
	height := int(math.Ceil(heightInches * float64(o.DPI)))
	if width < 1 {
		width = 1
	}
	if height < 1 {
		height = 1
	}

	positive := Mask{Width: width, Height: height, Pix: make([]byte, width*height)}
	negative := Mask{Width: width, Height: height, Pix: make([]byte, width*height)}
	for i := range negative.Pix {
		negative.Pix[i] = 255
	}

	for _, poly := range polys {
		rasterizePolygon(poly, board, width, height, positive.Pix, negative.Pix)
	}

	return Rasters{Width: width, Height: height, Positive: positive, Negative: negative}
}

// worldToPixel converts a world-space millimetre point to floating-point
// pixel coordinates.
func worldToPixel(p model.Point, board model.BoardParameters, width, height int) (px, py float64) {
	px = p.X / board.BoardWidthMM * float64(width)
	py = (1 - p.Y/board.BoardHeightMM) * float64(height)
	return
}

// rasterizePolygon fills poly's even-odd interior into both pix planes:
// 255 on positive, 0 on negative, at the same spans.
//
// Classic scanline fill: compute the
// integer Y range of the polygon's vertices, then for each scanline find
// edge X-intersections (skipping horizontal edges), sort them ascending,
// and fill every other span inclusively.
func rasterizePolygon(poly Polygon, board model.BoardParameters, width, height int, positive, negative []byte) {
	n := len(poly.Vertices)
	if n < 3 {
		return
	}

	pix := make([][2]float64, n)
	minY, maxY := math.Inf(1), math.Inf(-1)
	for i, v := range poly.Vertices {
		x, y := worldToPixel(v, board, width, height)
		pix[i] = [2]float64{x, y}
		if y < minY {
			minY = y
		}
		if y > maxY {
			maxY = y
		}
	}

	y0 := int(math.Floor(minY))
	y1 := int(math.Ceil(maxY))
	if y0 < 0 {
		y0 = 0
	}
	if y1 > height {
		y1 = height
	}

	for y := y0; y < y1; y++ {
		scanY := float64(y) + 0.5
		var xs []float64
		for i := 0; i < n; i++ {
			a, b := pix[i], pix[(i+1)%n]
			if a[1] == b[1] {
				continue
			}
			if (a[1] > scanY) == (b[1] > scanY) {
				continue
			}
			t := (scanY - a[1]) / (b[1] - a[1])
			xs = append(xs, a[0]+t*(b[0]-a[0]))
		}
		sort.Float64s(xs)

		for i := 0; i+1 < len(xs); i += 2 {
			x0 := int(math.Floor(xs[i]))
			x1 := int(math.Ceil(xs[i+1])) - 1
			if x0 < 0 {
				x0 = 0
			}
			if x1 >= width {
				x1 = width - 1
			}
			for x := x0; x <= x1; x++ {
				idx := y*width + x
				positive[idx] = 255
				negative[idx] = 0
			}
		}
	}
}
