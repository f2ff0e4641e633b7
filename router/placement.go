package router

import (
	"fmt"

	"github.com/inkroute/inkroute/grid"
	"github.com/inkroute/inkroute/model"
)

// placementResult is everything placeComponents produces: the flattened pad
// list routing operates on, the permanently-blocked body rectangles (for
// diagnostics and for output's board-outline rendering), and any
// PlacementError-shaped problems found along the way. Placement never
// aborts on a collision: it records the problem and continues.
type placementResult struct {
	Pads     []model.Pad
	Bodies   []model.ComponentBody
	Warnings []error
}

// placeComponents derives pad cells and blocked body rectangles for every
// component in p, blocking bodies permanently on g as it goes, and returns
// the flattened pad list plus any collisions it noticed.
func placeComponents(g *grid.Grid, board model.BoardParameters, p model.Placement, fp model.FootprintSet, d derived) placementResult {
	var res placementResult
	occupied := make(map[model.Cell]string)

	addPad := func(pad model.Pad) {
		if owner, ok := occupied[pad.Center]; ok {
			res.Warnings = append(res.Warnings, fmt.Errorf("%w: pad %s collides with %s at (%d,%d)",
				model.ErrPlacementCollision, pad.PinID(), owner, pad.Center.X, pad.Center.Y))
		} else {
			occupied[pad.Center] = pad.PinID()
		}
		if g.IsPermanentlyBlocked(pad.Center.X, pad.Center.Y) {
			res.Warnings = append(res.Warnings, fmt.Errorf("%w: pad %s lies outside the routable board area",
				model.ErrPlacementCollision, pad.PinID()))
		}
		res.Pads = append(res.Pads, pad)
	}

	checkBounds := func(id string, minX, minY, maxX, maxY float64) {
		if minX < 0 || minY < 0 || maxX > board.BoardWidthMM || maxY > board.BoardHeightMM {
			res.Warnings = append(res.Warnings, fmt.Errorf("%w: component %s body extends outside the board",
				model.ErrPlacementCollision, id))
		}
	}

	for _, c := range p.Controllers {
		pads, body := placeController(g, c, fp.Controller)
		for _, pd := range pads {
			addPad(pd)
		}
		checkBounds(c.ID, body.MinXMM, body.MinYMM, body.MaxXMM, body.MaxYMM)
		res.Bodies = append(res.Bodies, body)
		halfW, halfH := body.MaxXMM-c.XMM, body.MaxYMM-c.YMM
		g.BlockRectangularBody(c.XMM, c.YMM, halfW, halfH, 0)
	}
	for _, c := range p.Buttons {
		pads, body := placeButton(g, c, fp.Button)
		for _, pd := range pads {
			addPad(pd)
		}
		checkBounds(c.ID, body.MinXMM, body.MinYMM, body.MaxXMM, body.MaxYMM)
		res.Bodies = append(res.Bodies, body)
		g.BlockRectangularBody(c.XMM, c.YMM, ButtonBodyHalfMM, ButtonBodyHalfMM, 0)
	}
	for _, c := range p.Batteries {
		pads, body := placeBattery(g, c, fp.Battery, d)
		for _, pd := range pads {
			addPad(pd)
		}
		checkBounds(c.ID, body.MinXMM, body.MinYMM, body.MaxXMM, body.MaxYMM)
		res.Bodies = append(res.Bodies, body)
		g.BlockRectangularBody(c.XMM, c.YMM, fp.Battery.BodyWidthMM/2, fp.Battery.BodyHeightMM/2, 0)
	}
	for _, c := range p.Diodes {
		pads := placeDiode(g, c, fp.Diode)
		for _, pd := range pads {
			addPad(pd)
		}
	}

	return res
}

// controllerTotalHeight returns the world-space span of the longer DIP row
// for a controller with n pins at the given pin pitch.
func controllerTotalHeight(n int, pinSpacingMM float64) float64 {
	leftCount := (n + 1) / 2
	if leftCount < 1 {
		return 0
	}
	return float64(leftCount-1) * pinSpacingMM
}

// placeController lays out a DIP-style controller's pins: the first
// ceil(N/2) on the left row top-to-bottom, the rest on the right row in
// reverse (bottom-to-top), the usual DIP numbering. 90° rotation
// swaps the row axis and the pin axis.
func placeController(g *grid.Grid, c model.ControllerComponent, fp model.ControllerFootprint) ([]model.Pad, model.ComponentBody) {
	n := len(c.Pins)
	leftCount := (n + 1) / 2
	totalHeight := controllerTotalHeight(n, fp.PinSpacingMM)

	pads := make([]model.Pad, 0, n)
	for i := 0; i < n; i++ {
		var localX, localY float64
		if i < leftCount {
			localX = -fp.RowSpacingMM / 2
			localY = -totalHeight/2 + float64(i)*fp.PinSpacingMM
		} else {
			j := i - leftCount
			localX = fp.RowSpacingMM / 2
			localY = totalHeight/2 - float64(j)*fp.PinSpacingMM
		}
		if c.Rotation == model.Rotation90 {
			localX, localY = localY, localX
		}
		wx, wy := c.XMM+localX, c.YMM+localY
		gx, gy := g.WorldToGrid(wx, wy)
		pads = append(pads, model.Pad{
			ComponentID:       c.ID,
			PinName:           c.Pins[i].PinName,
			Net:               c.Pins[i].Net,
			Center:            model.Cell{X: gx, Y: gy},
			ComponentCenterMM: model.Point{X: c.XMM, Y: c.YMM},
		})
	}

	halfW := fp.RowSpacingMM/2 - PadDiameterMM/2
	halfH := totalHeight/2 + PadDiameterMM
	if c.Rotation == model.Rotation90 {
		halfW, halfH = halfH, halfW
	}
	body := model.ComponentBody{
		ComponentID: c.ID,
		MinXMM:      c.XMM - halfW,
		MinYMM:      c.YMM - halfH,
		MaxXMM:      c.XMM + halfW,
		MaxYMM:      c.YMM + halfH,
	}
	return pads, body
}

// placeButton lays out a 4-pad button: upper-left is the signal pin,
// lower-right is GND, the other two are NC.
func placeButton(g *grid.Grid, c model.ButtonComponent, fp model.ButtonFootprint) ([]model.Pad, model.ComponentBody) {
	halfX, halfY := fp.PinSpacingXMM/2, fp.PinSpacingYMM/2
	if c.Rotation == model.Rotation90 {
		halfX, halfY = halfY, halfX
	}

	offsets := []struct {
		dx, dy float64
		pin    string
		net    string
	}{
		{-halfX, -halfY, "P1", c.SignalNet},    // upper-left: signal
		{halfX, -halfY, "P2", model.NCNetName}, // upper-right: NC
		{-halfX, halfY, "P3", model.NCNetName}, // lower-left: NC
		{halfX, halfY, "P4", model.GNDNetName}, // lower-right: GND
	}

	pads := make([]model.Pad, 0, 4)
	for _, o := range offsets {
		wx, wy := c.XMM+o.dx, c.YMM+o.dy
		gx, gy := g.WorldToGrid(wx, wy)
		pads = append(pads, model.Pad{
			ComponentID:       c.ID,
			PinName:           o.pin,
			Net:               o.net,
			Center:            model.Cell{X: gx, Y: gy},
			ComponentCenterMM: model.Point{X: c.XMM, Y: c.YMM},
		})
	}

	body := model.ComponentBody{
		ComponentID: c.ID,
		MinXMM:      c.XMM - ButtonBodyHalfMM,
		MinYMM:      c.YMM - ButtonBodyHalfMM,
		MaxXMM:      c.XMM + ButtonBodyHalfMM,
		MaxYMM:      c.YMM + ButtonBodyHalfMM,
	}
	return pads, body
}

// placeBattery lays out a two-pad battery holder: VCC on the left, GND on
// the right, both below the body.
func placeBattery(g *grid.Grid, c model.BatteryComponent, fp model.BatteryFootprint, d derived) ([]model.Pad, model.ComponentBody) {
	padOffsetCells := d.bodyKeepoutCells + fp.PadOffsetExtraCellsOrDefault()
	yOffset := fp.BodyHeightMM/2 + float64(padOffsetCells)*g.ResolutionMM

	pins := []struct {
		dx  float64
		pin string
		net string
	}{
		{-fp.PadSpacingMM / 2, "VCC", model.VCCNetName},
		{fp.PadSpacingMM / 2, "GND", model.GNDNetName},
	}

	pads := make([]model.Pad, 0, 2)
	for _, pn := range pins {
		wx, wy := c.XMM+pn.dx, c.YMM+yOffset
		gx, gy := g.WorldToGrid(wx, wy)
		pads = append(pads, model.Pad{
			ComponentID:       c.ID,
			PinName:           pn.pin,
			Net:               pn.net,
			Center:            model.Cell{X: gx, Y: gy},
			ComponentCenterMM: model.Point{X: c.XMM, Y: c.YMM},
		})
	}

	body := model.ComponentBody{
		ComponentID: c.ID,
		MinXMM:      c.XMM - fp.BodyWidthMM/2,
		MinYMM:      c.YMM - fp.BodyHeightMM/2,
		MaxXMM:      c.XMM + fp.BodyWidthMM/2,
		MaxYMM:      c.YMM + fp.BodyHeightMM/2,
	}
	return pads, body
}

// placeDiode lays out a two-pad diode: anode carries the component's signal
// net, cathode is GND.
func placeDiode(g *grid.Grid, c model.DiodeComponent, fp model.DiodeFootprint) []model.Pad {
	pins := []struct {
		dx  float64
		pin string
		net string
	}{
		{-fp.PadSpacingMM / 2, "A", c.SignalNet},
		{fp.PadSpacingMM / 2, "K", model.GNDNetName},
	}

	pads := make([]model.Pad, 0, 2)
	for _, pn := range pins {
		wx, wy := c.XMM+pn.dx, c.YMM
		gx, gy := g.WorldToGrid(wx, wy)
		pads = append(pads, model.Pad{
			ComponentID:       c.ID,
			PinName:           pn.pin,
			Net:               pn.net,
			Center:            model.Cell{X: gx, Y: gy},
			ComponentCenterMM: model.Point{X: c.XMM, Y: c.YMM},
		})
	}
	return pads
}
