// Package output turns a routing result's traces and pads into world-space
// polygon geometry and into rasterized conductor masks.
//
// Geometry construction (BoardOutline, TracePolygons, PadPolygons) is pure
// and has no dependency on the grid package beyond the world<->grid
// conversion helpers every trace path already carries implicitly through
// its cell coordinates. Rasterize scan-converts that geometry onto a
// row-major byte plane at a configured DPI, using the even-odd fill rule.
//
// PNG encoding, and any other raster file format, is deliberately left to
// a caller: this package only produces (width, height, []byte) planes.
package output
