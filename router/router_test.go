package router_test

import (
	"math"
	"testing"

	"github.com/inkroute/inkroute/grid"
	"github.com/inkroute/inkroute/model"
	"github.com/inkroute/inkroute/router"
)

// The default fixtures: grid_resolution 0.5mm, trace_width 1.2mm,
// trace_clearance 1.5mm, button pin_spacing (9.0, 6.0), controller
// pin_spacing 2.54, row_spacing 7.62.
func defaultManufacturing() model.ManufacturingConstraints {
	return model.ManufacturingConstraints{TraceWidthMM: 1.2, TraceClearanceMM: 1.5}
}

func defaultFootprints() model.FootprintSet {
	return model.FootprintSet{
		Button:     model.ButtonFootprint{PinSpacingXMM: 9.0, PinSpacingYMM: 6.0},
		Controller: model.ControllerFootprint{PinSpacingMM: 2.54, RowSpacingMM: 7.62},
		Battery:    model.BatteryFootprint{PadSpacingMM: 5.0, BodyWidthMM: 10, BodyHeightMM: 6},
		Diode:      model.DiodeFootprint{PadSpacingMM: 3.0},
	}
}

// TestRoute_TwoPadSignal routes a single two-pad signal net between a
// button and a controller pin.
func TestRoute_TwoPadSignal(t *testing.T) {
	in := model.RouterInput{
		Board:         model.BoardParameters{BoardWidthMM: 40, BoardHeightMM: 40, GridResolutionMM: 0.5},
		Manufacturing: defaultManufacturing(),
		Footprints:    defaultFootprints(),
		Placement: model.Placement{
			Buttons: []model.ButtonComponent{
				{ID: "BTN", XMM: 10, YMM: 20, SignalNet: "SIG1"},
			},
			Controllers: []model.ControllerComponent{
				{ID: "CTRL", XMM: 30, YMM: 20, Pins: []model.PinAssignment{{PinName: "PD1", Net: "SIG1"}}},
			},
		},
	}

	res := router.Route(in)
	if !res.Success {
		t.Fatalf("expected success, got failures: %+v", res.FailedNets)
	}
	if len(res.Traces) != 1 {
		t.Fatalf("expected exactly one trace, got %d", len(res.Traces))
	}
	tr := res.Traces[0]
	if tr.Net != "SIG1" {
		t.Fatalf("expected net SIG1, got %s", tr.Net)
	}

	res0 := in.Board.GridResolutionMM
	wx0, wy0 := (float64(tr.Path[0].X)+0.5)*res0, (float64(tr.Path[0].Y)+0.5)*res0
	wx1, wy1 := (float64(tr.Path[len(tr.Path)-1].X)+0.5)*res0, (float64(tr.Path[len(tr.Path)-1].Y)+0.5)*res0

	endpoints := [][2]float64{{wx0, wy0}, {wx1, wy1}}
	expectNear(t, endpoints, model.Point{X: 10 - 9.0/2, Y: 20 - 6.0/2}, res0)
	expectNear(t, endpoints, model.Point{X: 30 - 7.62/2, Y: 20}, res0)
}

// expectNear fails the test unless at least one of endpoints lies within
// half a grid cell of want.
func expectNear(t *testing.T, endpoints [][2]float64, want model.Point, res float64) {
	t.Helper()
	tol := res / 2
	for _, e := range endpoints {
		if math.Abs(e[0]-want.X) <= tol && math.Abs(e[1]-want.Y) <= tol {
			return
		}
	}
	t.Fatalf("no trace endpoint near (%.3f, %.3f) within %.3fmm: endpoints=%v", want.X, want.Y, tol, endpoints)
}

// TestRoute_UnreachablePad: the controller's
// target pin is boxed in on every side (here, by a battery body large
// enough to permanently block every cell around the pin, beyond the
// approach zone the router frees for its own pad), so the signal net
// cannot be routed.
func TestRoute_UnreachablePad(t *testing.T) {
	// Single-pin controller's pin sits at (cx - rowSpacing/2, cy).
	ctrlX, ctrlY := 30.0, 20.0
	pinX, pinY := ctrlX-7.62/2, ctrlY

	in := model.RouterInput{
		Board:         model.BoardParameters{BoardWidthMM: 40, BoardHeightMM: 40, GridResolutionMM: 0.5},
		Manufacturing: defaultManufacturing(),
		Footprints:    defaultFootprints(),
		Placement: model.Placement{
			Buttons: []model.ButtonComponent{
				{ID: "BTN", XMM: 10, YMM: 20, SignalNet: "SIG1"},
			},
			Controllers: []model.ControllerComponent{
				{ID: "CTRL", XMM: ctrlX, YMM: ctrlY, Pins: []model.PinAssignment{{PinName: "PD1", Net: "SIG1"}}},
			},
			Batteries: []model.BatteryComponent{
				{ID: "BOX", XMM: pinX, YMM: pinY},
			},
		},
	}
	// Oversize the battery body so it permanently blocks every cell within
	// the router's approach-zone free radius around the controller's pin,
	// sealing it off entirely.
	in.Footprints.Battery.BodyWidthMM = 20
	in.Footprints.Battery.BodyHeightMM = 20

	res := router.Route(in)
	if res.Success {
		t.Fatalf("expected routing to fail, it succeeded")
	}
	found := false
	for _, f := range res.FailedNets {
		if f.NetName == "SIG1" {
			found = true
		}
	}
	if !found {
		t.Fatalf("expected a FailedNet entry for SIG1, got %+v", res.FailedNets)
	}
}

// TestRoute_PerimeterPower: GND traces hug the
// board edge, with at least 70% of cells within 4 cells of the boundary.
func TestRoute_PerimeterPower(t *testing.T) {
	in := model.RouterInput{
		Board:         model.BoardParameters{BoardWidthMM: 80, BoardHeightMM: 40, GridResolutionMM: 0.5},
		Manufacturing: defaultManufacturing(),
		Footprints:    defaultFootprints(),
		Placement: model.Placement{
			Buttons: []model.ButtonComponent{
				{ID: "BTN1", XMM: 20, YMM: 20, SignalNet: "SIG1"},
				{ID: "BTN2", XMM: 60, YMM: 20, SignalNet: "SIG2"},
			},
			Controllers: []model.ControllerComponent{
				{ID: "CTRL", XMM: 40, YMM: 30, Pins: []model.PinAssignment{
					{PinName: "G1", Net: "GND"},
				}},
			},
		},
	}
	// Every button's lower-right pad is already GND, so GND
	// has three pads here: BTN1.P4, BTN2.P4, and CTRL.G1.

	res := router.Route(in)
	if !res.Success {
		t.Skipf("perimeter scenario did not fully route in this placement (failures: %+v); skipping the distribution check", res.FailedNets)
	}

	var gndCells []model.Cell
	for _, tr := range res.Traces {
		if tr.Net == "GND" {
			gndCells = append(gndCells, tr.Path...)
		}
	}
	if len(gndCells) == 0 {
		t.Fatalf("expected at least one GND trace")
	}

	blocked := in.Manufacturing.BlockedRadiusCells(in.Board.GridResolutionMM)
	g, err := grid.New(in.Board.BoardWidthMM, in.Board.BoardHeightMM, in.Board.GridResolutionMM, nil, blocked)
	if err != nil {
		t.Fatalf("grid.New: %v", err)
	}
	near := 0
	for _, c := range gndCells {
		if g.DistToEdge(c.X, c.Y) <= 4 {
			near++
		}
	}
	frac := float64(near) / float64(len(gndCells))
	if frac < 0.70 {
		t.Fatalf("expected >=70%% of GND trace cells within 4 cells of the edge, got %.1f%%", frac*100)
	}
}

// TestRoute_OutlineExcludesPad: an L-shaped
// outline excludes the upper-right quadrant, where a signal pad sits, so
// that pad's net is reported as a FailedNet.
func TestRoute_OutlineExcludesPad(t *testing.T) {
	outline := []model.Point{
		{X: 0, Y: 0}, {X: 40, Y: 0}, {X: 40, Y: 20}, {X: 20, Y: 20}, {X: 20, Y: 40}, {X: 0, Y: 40},
	}
	in := model.RouterInput{
		Board: model.BoardParameters{
			BoardWidthMM: 40, BoardHeightMM: 40, GridResolutionMM: 0.5, OutlinePolygon: outline,
		},
		Manufacturing: defaultManufacturing(),
		Footprints:    defaultFootprints(),
		Placement: model.Placement{
			Buttons: []model.ButtonComponent{
				{ID: "BTN1", XMM: 10, YMM: 10, SignalNet: "SIG1"},
				// BTN2 sits in the excluded quadrant (x>20, y>20) the L-shaped
				// outline carves out.
				{ID: "BTN2", XMM: 30, YMM: 30, SignalNet: "SIG1"},
			},
		},
	}

	res := router.Route(in)
	if res.Success {
		t.Fatalf("expected routing to fail when a pad lies outside the outline")
	}
	if len(res.PlacementWarnings) == 0 {
		t.Fatalf("expected a placement warning for the out-of-outline pad")
	}
	found := false
	for _, f := range res.FailedNets {
		if f.NetName == "SIG1" {
			found = true
		}
	}
	if !found {
		t.Fatalf("expected a FailedNet entry for SIG1, got %+v", res.FailedNets)
	}
}

// TestRoute_Determinism: repeated Route
// calls on identical input produce identical traces.
func TestRoute_Determinism(t *testing.T) {
	in := model.RouterInput{
		Board:         model.BoardParameters{BoardWidthMM: 60, BoardHeightMM: 40, GridResolutionMM: 0.5},
		Manufacturing: defaultManufacturing(),
		Footprints:    defaultFootprints(),
		Placement: model.Placement{
			Buttons: []model.ButtonComponent{
				{ID: "BTN1", XMM: 15, YMM: 20, SignalNet: "SIG1"},
				{ID: "BTN2", XMM: 45, YMM: 10, SignalNet: "SIG2"},
			},
			Controllers: []model.ControllerComponent{
				{ID: "CTRL", XMM: 30, YMM: 30, Pins: []model.PinAssignment{
					{PinName: "PD1", Net: "SIG1"},
					{PinName: "PD2", Net: "SIG2"},
				}},
			},
		},
	}

	a := router.Route(in)
	b := router.Route(in)

	if a.Success != b.Success || len(a.Traces) != len(b.Traces) {
		t.Fatalf("non-deterministic result shape: %d traces vs %d traces", len(a.Traces), len(b.Traces))
	}
	for i := range a.Traces {
		if a.Traces[i].Net != b.Traces[i].Net || len(a.Traces[i].Path) != len(b.Traces[i].Path) {
			t.Fatalf("trace %d differs between runs", i)
		}
		for j := range a.Traces[i].Path {
			if a.Traces[i].Path[j] != b.Traces[i].Path[j] {
				t.Fatalf("trace %d cell %d differs between runs: %v vs %v", i, j, a.Traces[i].Path[j], b.Traces[i].Path[j])
			}
		}
	}
}

// TestRoute_NoCrossingBetweenNets: cells
// of two different-net traces never end up within trace_block_padding
// Chebyshev distance of each other (unless the relaxed fallback fired).
func TestRoute_NoCrossingBetweenNets(t *testing.T) {
	in := model.RouterInput{
		Board:         model.BoardParameters{BoardWidthMM: 60, BoardHeightMM: 60, GridResolutionMM: 0.5},
		Manufacturing: defaultManufacturing(),
		Footprints:    defaultFootprints(),
		Placement: model.Placement{
			Buttons: []model.ButtonComponent{
				{ID: "BTN1", XMM: 10, YMM: 15, SignalNet: "SIG1"},
				{ID: "BTN2", XMM: 10, YMM: 45, SignalNet: "SIG2"},
			},
			Controllers: []model.ControllerComponent{
				{ID: "CTRL", XMM: 45, YMM: 30, Pins: []model.PinAssignment{
					{PinName: "PD1", Net: "SIG1"},
					{PinName: "PD2", Net: "SIG2"},
				}},
			},
		},
	}

	res := router.Route(in)
	if !res.Success {
		t.Skipf("routing did not fully succeed (failures: %+v); skipping crossing check", res.FailedNets)
	}

	pinSpacingCells := int(math.Round(in.Footprints.Controller.PinSpacingMM / in.Board.GridResolutionMM))
	relaxedPadding := pinSpacingCells - 1

	// A relaxed budget run only happens after the normal run failed, so a
	// successful result that records relaxed attempts came from that run.
	usedRelaxed := false
	for _, s := range res.Attempts {
		if s.Relaxed {
			usedRelaxed = true
		}
	}
	padding := pinSpacingCells
	if usedRelaxed {
		padding = relaxedPadding
	}

	for i := range res.Traces {
		for j := i + 1; j < len(res.Traces); j++ {
			if res.Traces[i].Net == res.Traces[j].Net {
				continue
			}
			for _, c1 := range res.Traces[i].Path {
				for _, c2 := range res.Traces[j].Path {
					dx, dy := abs(c1.X-c2.X), abs(c1.Y-c2.Y)
					cheb := dx
					if dy > cheb {
						cheb = dy
					}
					if cheb <= padding {
						t.Fatalf("traces %s and %s cells too close: %v, %v (chebyshev %d, padding %d)",
							res.Traces[i].Net, res.Traces[j].Net, c1, c2, cheb, padding)
					}
				}
			}
		}
	}
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}

// TestRoute_AttemptHistoryRecorded: the result carries one AttemptSummary
// per rip-up attempt, including the relaxed-clearance budget run when the
// normal budget never reaches zero failures.
func TestRoute_AttemptHistoryRecorded(t *testing.T) {
	// Reuse the sealed-pin placement: routing can never succeed, so both
	// the normal and the relaxed budget runs are exercised.
	ctrlX, ctrlY := 30.0, 20.0
	in := model.RouterInput{
		Board:         model.BoardParameters{BoardWidthMM: 40, BoardHeightMM: 40, GridResolutionMM: 0.5},
		Manufacturing: defaultManufacturing(),
		Footprints:    defaultFootprints(),
		Placement: model.Placement{
			Buttons: []model.ButtonComponent{
				{ID: "BTN", XMM: 10, YMM: 20, SignalNet: "SIG1"},
			},
			Controllers: []model.ControllerComponent{
				{ID: "CTRL", XMM: ctrlX, YMM: ctrlY, Pins: []model.PinAssignment{{PinName: "PD1", Net: "SIG1"}}},
			},
			Batteries: []model.BatteryComponent{
				{ID: "BOX", XMM: ctrlX - 7.62/2, YMM: ctrlY},
			},
		},
	}
	in.Footprints.Battery.BodyWidthMM = 20
	in.Footprints.Battery.BodyHeightMM = 20

	res := router.Route(in)
	if res.Success {
		t.Fatalf("expected routing to fail")
	}
	if len(res.Attempts) < 2 {
		t.Fatalf("expected at least two recorded attempts (normal + relaxed), got %d", len(res.Attempts))
	}
	sawRelaxed := false
	for _, a := range res.Attempts {
		if a.Relaxed {
			sawRelaxed = true
		}
	}
	if !sawRelaxed {
		t.Fatalf("expected the relaxed budget run to appear in the attempt history: %+v", res.Attempts)
	}
}

// TestRoute_TracesAvoidPermanentBlocks: no committed trace cell may lie on
// a permanently blocked cell (board rim, outline margin, component body).
func TestRoute_TracesAvoidPermanentBlocks(t *testing.T) {
	in := model.RouterInput{
		Board:         model.BoardParameters{BoardWidthMM: 60, BoardHeightMM: 40, GridResolutionMM: 0.5},
		Manufacturing: defaultManufacturing(),
		Footprints:    defaultFootprints(),
		Placement: model.Placement{
			Buttons: []model.ButtonComponent{
				{ID: "BTN1", XMM: 15, YMM: 20, SignalNet: "SIG1"},
			},
			Controllers: []model.ControllerComponent{
				{ID: "CTRL", XMM: 45, YMM: 20, Pins: []model.PinAssignment{{PinName: "PD1", Net: "SIG1"}}},
			},
			Batteries: []model.BatteryComponent{
				{ID: "BAT", XMM: 30, YMM: 10},
			},
		},
	}

	res := router.Route(in)
	if len(res.Traces) == 0 {
		t.Skipf("nothing routed in this placement (failures: %+v)", res.FailedNets)
	}

	blocked := in.Manufacturing.BlockedRadiusCells(in.Board.GridResolutionMM)
	g, err := grid.New(in.Board.BoardWidthMM, in.Board.BoardHeightMM, in.Board.GridResolutionMM, nil, blocked)
	if err != nil {
		t.Fatalf("grid.New: %v", err)
	}
	g.BlockRectangularBody(30, 10, in.Footprints.Battery.BodyWidthMM/2, in.Footprints.Battery.BodyHeightMM/2, 0)

	for _, tr := range res.Traces {
		for _, c := range tr.Path {
			if !g.IsInBounds(c.X, c.Y) {
				t.Fatalf("trace %s cell %v out of bounds", tr.Net, c)
			}
			if g.IsPermanentlyBlocked(c.X, c.Y) {
				t.Fatalf("trace %s crosses a permanently blocked cell at %v", tr.Net, c)
			}
		}
	}
}

// TestRoute_PathsAreManhattan: every consecutive pair of cells in every
// committed trace differs by exactly one in exactly one axis.
func TestRoute_PathsAreManhattan(t *testing.T) {
	in := model.RouterInput{
		Board:         model.BoardParameters{BoardWidthMM: 60, BoardHeightMM: 40, GridResolutionMM: 0.5},
		Manufacturing: defaultManufacturing(),
		Footprints:    defaultFootprints(),
		Placement: model.Placement{
			Buttons: []model.ButtonComponent{
				{ID: "BTN1", XMM: 15, YMM: 20, SignalNet: "SIG1"},
				{ID: "BTN2", XMM: 15, YMM: 32, SignalNet: "SIG2"},
			},
			Controllers: []model.ControllerComponent{
				{ID: "CTRL", XMM: 45, YMM: 26, Pins: []model.PinAssignment{
					{PinName: "PD1", Net: "SIG1"},
					{PinName: "PD2", Net: "SIG2"},
				}},
			},
		},
	}

	res := router.Route(in)
	for _, tr := range res.Traces {
		for i := 1; i < len(tr.Path); i++ {
			dx := abs(tr.Path[i].X - tr.Path[i-1].X)
			dy := abs(tr.Path[i].Y - tr.Path[i-1].Y)
			if dx+dy != 1 {
				t.Fatalf("trace %s cells %d-%d are not 4-adjacent: %v -> %v", tr.Net, i-1, i, tr.Path[i-1], tr.Path[i])
			}
		}
	}
}
