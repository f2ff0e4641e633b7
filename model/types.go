package model

import (
	"math"

	"github.com/inkroute/inkroute/grid"
)

// Cell is a single grid coordinate (column x, row y), measured in grid cells
// rather than world millimetres. It is the common currency between grid,
// pathfinder, netlist and router.
type Cell = grid.Cell

// Point is a world-space coordinate in millimetres.
type Point struct {
	X, Y float64
}

// Rotation is a component's placement rotation. Only axis-aligned rotations
// are supported: a component's footprint is either in its
// natural orientation or swapped onto the perpendicular axis.
type Rotation int

const (
	Rotation0  Rotation = 0
	Rotation90 Rotation = 90
)

// BoardParameters describes the physical board: its bounding box, the grid
// quantization step, and an optional polygon outline for non-rectangular
// boards.
type BoardParameters struct {
	BoardWidthMM     float64
	BoardHeightMM    float64
	GridResolutionMM float64
	// OutlinePolygon, when non-empty, must have at least 3 vertices and lie
	// inside [0,0]-[BoardWidthMM,BoardHeightMM]. Nil means "use the
	// rectangular bounding box".
	OutlinePolygon []Point
}

// ManufacturingConstraints holds the copper geometry rules that drive
// keep-out sizing.
type ManufacturingConstraints struct {
	TraceWidthMM     float64
	TraceClearanceMM float64
}

// BlockedRadiusCells returns ceil((traceWidth/2 + traceClearance) / res),
// the board-edge and obstacle keep-out radius in grid cells.
func (m ManufacturingConstraints) BlockedRadiusCells(gridResolutionMM float64) int {
	return int(math.Ceil((m.TraceWidthMM/2 + m.TraceClearanceMM) / gridResolutionMM))
}

// ButtonFootprint gives the pin offsets of a 4-pad button/switch footprint.
type ButtonFootprint struct {
	PinSpacingXMM float64
	PinSpacingYMM float64
}

// ControllerFootprint describes a DIP-style controller: pins are laid out in
// two rows of pin_spacing pitch, rows separated by row_spacing.
type ControllerFootprint struct {
	PinSpacingMM float64
	RowSpacingMM float64
}

// BatteryFootprint describes a two-pad battery holder with a rectangular
// body. PadOffsetExtraCells sets how many extra cells beyond the body
// keep-out the pads sit (padOffsetCells = bodyKeepoutCells + extra).
type BatteryFootprint struct {
	PadSpacingMM        float64
	BodyWidthMM         float64
	BodyHeightMM        float64
	PadOffsetExtraCells int
}

// DefaultPadOffsetExtraCells is used when BatteryFootprint.PadOffsetExtraCells
// is left at its zero value.
const DefaultPadOffsetExtraCells = 5

// PadOffsetExtraCellsOrDefault returns PadOffsetExtraCells, substituting
// DefaultPadOffsetExtraCells when the caller left it unset (<=0).
func (b BatteryFootprint) PadOffsetExtraCellsOrDefault() int {
	if b.PadOffsetExtraCells <= 0 {
		return DefaultPadOffsetExtraCells
	}
	return b.PadOffsetExtraCells
}

// DiodeFootprint describes a two-pad diode footprint.
type DiodeFootprint struct {
	PadSpacingMM float64
}

// FootprintSet bundles the four supported footprint geometries.
type FootprintSet struct {
	Button     ButtonFootprint
	Controller ControllerFootprint
	Battery    BatteryFootprint
	Diode      DiodeFootprint
}

// PinAssignment names one controller pin and the net it belongs to.
type PinAssignment struct {
	PinName string
	Net     string
}

// ButtonComponent is a 4-pad button/switch: upper-left is the signal pin,
// lower-right is GND, the remaining two pads are NC.
type ButtonComponent struct {
	ID        string
	XMM, YMM  float64
	Rotation  Rotation
	SignalNet string
}

// ControllerComponent is a DIP-style IC with an explicit, ordered pin list.
type ControllerComponent struct {
	ID       string
	XMM, YMM float64
	Rotation Rotation
	Pins     []PinAssignment
}

// BatteryComponent is a two-pad (VCC, GND) power source with a blocked body.
type BatteryComponent struct {
	ID       string
	XMM, YMM float64
}

// DiodeComponent is a two-pad diode: anode carries SignalNet, cathode is GND.
type DiodeComponent struct {
	ID        string
	XMM, YMM  float64
	SignalNet string
}

// Placement is the full set of components to be placed and routed.
type Placement struct {
	Buttons     []ButtonComponent
	Controllers []ControllerComponent
	Batteries   []BatteryComponent
	Diodes      []DiodeComponent
}

// RouterInput is everything route() needs: board geometry, manufacturing
// rules, footprint parameters, component placement, and an optional attempt
// budget override.
type RouterInput struct {
	Board         BoardParameters
	Manufacturing ManufacturingConstraints
	Footprints    FootprintSet
	Placement     Placement
	// MaxAttempts overrides the router's default rip-up attempt budget when
	// > 0; otherwise the router's own default applies.
	MaxAttempts int
}

// NetKind classifies a net by name for priority and routing-strategy
// purposes.
type NetKind int

const (
	SignalNet NetKind = iota
	GroundNet
	PowerNet
)

// GNDNetName and VCCNetName are the two reserved power net names; NCNetName
// marks pads that must never be connected.
const (
	GNDNetName = "GND"
	VCCNetName = "VCC"
	NCNetName  = "NC"
)

// ClassifyNet returns the NetKind implied by a net's name.
func ClassifyNet(name string) NetKind {
	switch name {
	case GNDNetName:
		return GroundNet
	case VCCNetName:
		return PowerNet
	default:
		return SignalNet
	}
}

// Pad is one component pin realized as a grid cell with a net assignment.
// Pads are generated once, deterministically, from component placement and
// footprint parameters, and are never mutated afterward.
type Pad struct {
	ComponentID string
	PinName     string
	Net         string
	Center      Cell
	// ComponentCenterMM is the owning component's world-space centre,
	// retained for diagnostics and for perimeter-bias anchoring.
	ComponentCenterMM Point
}

// PinID renders the "Component.Pin" identifier used in diagnostics.
func (p Pad) PinID() string {
	return p.ComponentID + "." + p.PinName
}

// ComponentBody is a permanently-blocked rectangular region in world space,
// e.g. a battery compartment or a controller's DIP package.
type ComponentBody struct {
	ComponentID    string
	MinXMM, MinYMM float64
	MaxXMM, MaxYMM float64
}

// Trace is one net's committed, ordered path of grid cells. Consecutive
// cells differ by exactly one in exactly one axis.
type Trace struct {
	Net  string
	Path []Cell
}

// FailedNet records one pad that could not be connected to its net, with
// enough identifying information to diagnose the failure.
type FailedNet struct {
	NetName        string
	SourcePin      string
	DestinationPin string
	Reason         string
}

// AttemptSummary records the outcome of one rip-up attempt: which ordering
// strategy it used and how many pads remained unconnected. RoutingResult
// carries these so callers can inspect the rip-up history without scraping log output.
type AttemptSummary struct {
	Strategy          string
	Failures          int
	TraceBlockPadding int
	Relaxed           bool
}

// RoutingResult is Route's always-returned output; routing failures are
// reported in it rather than aborting the call.
type RoutingResult struct {
	Success    bool
	Traces     []Trace
	FailedNets []FailedNet
	Attempts   []AttemptSummary
	// PlacementWarnings records non-fatal PlacementError conditions found
	// while placing components (pad collisions, bodies that extend past
	// the board edge). Routing proceeds regardless.
	PlacementWarnings []string
}
