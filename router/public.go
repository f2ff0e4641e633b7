package router

import (
	"fmt"

	"github.com/inkroute/inkroute/grid"
	"github.com/inkroute/inkroute/model"
)

// Pads derives the same pad list Route would use internally, without
// running a routing attempt. cmd/inkroute's render subcommand uses this to
// regenerate pad geometry from a previously saved RoutingResult's original
// input document.
func Pads(in model.RouterInput) ([]model.Pad, error) {
	d := computeDerived(in)
	g, err := grid.New(in.Board.BoardWidthMM, in.Board.BoardHeightMM, in.Board.GridResolutionMM, toGridPoints(in.Board.OutlinePolygon), d.blockedRadiusCells)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}
	placement := placeComponents(g, in.Board, in.Placement, in.Footprints, d)
	return placement.Pads, nil
}
