package router

import (
	"math"

	"github.com/inkroute/inkroute/model"
)

// PadDiameterMM is the nominal copper pad size used in the body-rectangle
// formula. It matches the 1.0mm pad radius the
// output package draws around each pad centre, so a component's permanently
// blocked body rectangle never overlaps its own pads' copper.
const PadDiameterMM = 2.0

// ButtonBodyHalfMM is half the side of a button's 6x6mm permanently blocked
// body.
const ButtonBodyHalfMM = 3.0

// DefaultMaxRipupAttempts is the rip-up attempt budget used when
// model.RouterInput.MaxAttempts is left at zero.
const DefaultMaxRipupAttempts = 40

// perimeterProbeRadius and perimeterHugCost parameterize the power-net
// perimeter cost bias.
const (
	perimeterProbeRadius = 12
	perimeterHugCost     = 8.0
)

// derived bundles the grid-resolution-dependent keep-out quantities,
// computed once per Route call.
type derived struct {
	bodyKeepoutCells         int
	tracePaddingCells        int
	traceBlockPaddingCells   int
	relaxedTraceBlockPadding int
	blockedRadiusCells       int
}

func computeDerived(in model.RouterInput) derived {
	res := in.Board.GridResolutionMM
	pinSpacingCells := int(math.Round(in.Footprints.Controller.PinSpacingMM / res))
	tracePadding := int(math.Ceil(in.Manufacturing.TraceClearanceMM / res))
	relaxed := pinSpacingCells - 1
	if relaxed < 0 {
		relaxed = 0
	}
	return derived{
		bodyKeepoutCells:         pinSpacingCells,
		tracePaddingCells:        tracePadding,
		traceBlockPaddingCells:   pinSpacingCells,
		relaxedTraceBlockPadding: relaxed,
		blockedRadiusCells:       in.Manufacturing.BlockedRadiusCells(res),
	}
}
