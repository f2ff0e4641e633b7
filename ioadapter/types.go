package ioadapter

// InputDocument is the JSON input record, field for field, so Decode can
// json.Unmarshal straight into it before validating
// and lifting it to model.RouterInput.
type InputDocument struct {
	Board         boardJSON         `json:"board"`
	Manufacturing manufacturingJSON `json:"manufacturing"`
	Footprints    footprintsJSON    `json:"footprints"`
	Placement     placementJSON     `json:"placement"`
	MaxAttempts   int               `json:"maxAttempts,omitempty"`
}

type pointJSON [2]float64

type boardJSON struct {
	BoardWidth     float64     `json:"boardWidth"`
	BoardHeight    float64     `json:"boardHeight"`
	GridResolution float64     `json:"gridResolution"`
	BoardOutline   []pointJSON `json:"boardOutline,omitempty"`
}

type manufacturingJSON struct {
	TraceWidth     float64 `json:"traceWidth"`
	TraceClearance float64 `json:"traceClearance"`
}

type buttonFootprintJSON struct {
	PinSpacingX float64 `json:"pinSpacingX"`
	PinSpacingY float64 `json:"pinSpacingY"`
}

type controllerFootprintJSON struct {
	PinSpacing float64 `json:"pinSpacing"`
	RowSpacing float64 `json:"rowSpacing"`
}

type batteryFootprintJSON struct {
	PadSpacing          float64 `json:"padSpacing"`
	BodyWidth           float64 `json:"bodyWidth,omitempty"`
	BodyHeight          float64 `json:"bodyHeight,omitempty"`
	PadOffsetExtraCells int     `json:"padOffsetExtraCells,omitempty"`
}

type diodeFootprintJSON struct {
	PadSpacing float64 `json:"padSpacing"`
}

type footprintsJSON struct {
	Button     buttonFootprintJSON     `json:"button"`
	Controller controllerFootprintJSON `json:"controller"`
	Battery    batteryFootprintJSON    `json:"battery"`
	Diode      diodeFootprintJSON      `json:"diode"`
}

type pinAssignmentJSON struct {
	Pin string `json:"pin"`
	Net string `json:"net"`
}

type buttonJSON struct {
	ID        string  `json:"id"`
	X         float64 `json:"x"`
	Y         float64 `json:"y"`
	Rotation  int     `json:"rotation,omitempty"`
	SignalNet string  `json:"signalNet"`
}

type controllerJSON struct {
	ID       string              `json:"id"`
	X        float64             `json:"x"`
	Y        float64             `json:"y"`
	Rotation int                 `json:"rotation,omitempty"`
	Pins     []pinAssignmentJSON `json:"pins"`
}

type batteryJSON struct {
	ID string  `json:"id"`
	X  float64 `json:"x"`
	Y  float64 `json:"y"`
}

type diodeJSON struct {
	ID        string  `json:"id"`
	X         float64 `json:"x"`
	Y         float64 `json:"y"`
	SignalNet string  `json:"signalNet"`
}

type placementJSON struct {
	Buttons     []buttonJSON     `json:"buttons,omitempty"`
	Controllers []controllerJSON `json:"controllers,omitempty"`
	Batteries   []batteryJSON    `json:"batteries,omitempty"`
	Diodes      []diodeJSON      `json:"diodes,omitempty"`
}

// OutputDocument is the JSON result record written to stdout or --out.
type OutputDocument struct {
	Success    bool            `json:"success"`
	Traces     []traceJSON     `json:"traces"`
	FailedNets []failedNetJSON `json:"failedNets"`
}

// xyJSON is one world-space point of a trace path. Unlike boardOutline's
// [x,y] pairs, trace paths use {x,y} objects.
type xyJSON struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
}

type traceJSON struct {
	Net  string   `json:"net"`
	Path []xyJSON `json:"path"`
}

type failedNetJSON struct {
	NetName        string `json:"netName"`
	SourcePin      string `json:"sourcePin"`
	DestinationPin string `json:"destinationPin"`
	Reason         string `json:"reason"`
}
