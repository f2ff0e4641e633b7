package ioadapter

import (
	"encoding/json"
	"fmt"
	"io"
	"math"

	"github.com/inkroute/inkroute/model"
)

// Decode parses the JSON input document from r, validates it, and lifts it
// to a model.RouterInput ready for router.Route.
func Decode(r io.Reader) (model.RouterInput, error) {
	var doc InputDocument
	if err := json.NewDecoder(r).Decode(&doc); err != nil {
		return model.RouterInput{}, fmt.Errorf("%w: %v", ErrInputMalformed, err)
	}
	return fromDocument(doc)
}

// DecodeBytes is Decode for an already-read byte slice.
func DecodeBytes(data []byte) (model.RouterInput, error) {
	var doc InputDocument
	if err := json.Unmarshal(data, &doc); err != nil {
		return model.RouterInput{}, fmt.Errorf("%w: %v", ErrInputMalformed, err)
	}
	return fromDocument(doc)
}

func fromDocument(doc InputDocument) (model.RouterInput, error) {
	if err := validateFinite("board.boardWidth", doc.Board.BoardWidth); err != nil {
		return model.RouterInput{}, err
	}
	if err := validateFinite("board.boardHeight", doc.Board.BoardHeight); err != nil {
		return model.RouterInput{}, err
	}
	if err := validateFinite("board.gridResolution", doc.Board.GridResolution); err != nil {
		return model.RouterInput{}, err
	}
	if doc.Board.BoardWidth <= 0 || doc.Board.BoardHeight <= 0 || doc.Board.GridResolution <= 0 {
		return model.RouterInput{}, fmt.Errorf("%w: board dimensions and gridResolution must be > 0", ErrInputMalformed)
	}

	var outline []model.Point
	if len(doc.Board.BoardOutline) > 0 {
		if len(doc.Board.BoardOutline) < 3 {
			return model.RouterInput{}, fmt.Errorf("%w: boardOutline must have at least 3 vertices, got %d", ErrInputMalformed, len(doc.Board.BoardOutline))
		}
		outline = make([]model.Point, len(doc.Board.BoardOutline))
		for i, pt := range doc.Board.BoardOutline {
			if err := validateFinite("board.boardOutline[]", pt[0]); err != nil {
				return model.RouterInput{}, err
			}
			if err := validateFinite("board.boardOutline[]", pt[1]); err != nil {
				return model.RouterInput{}, err
			}
			outline[i] = model.Point{X: pt[0], Y: pt[1]}
		}
	}

	if doc.Manufacturing.TraceWidth <= 0 || doc.Manufacturing.TraceClearance < 0 {
		return model.RouterInput{}, fmt.Errorf("%w: manufacturing.traceWidth must be > 0 and traceClearance >= 0", ErrInputMalformed)
	}

	placement, err := convertPlacement(doc.Placement)
	if err != nil {
		return model.RouterInput{}, err
	}

	return model.RouterInput{
		Board: model.BoardParameters{
			BoardWidthMM:     doc.Board.BoardWidth,
			BoardHeightMM:    doc.Board.BoardHeight,
			GridResolutionMM: doc.Board.GridResolution,
			OutlinePolygon:   outline,
		},
		Manufacturing: model.ManufacturingConstraints{
			TraceWidthMM:     doc.Manufacturing.TraceWidth,
			TraceClearanceMM: doc.Manufacturing.TraceClearance,
		},
		Footprints: model.FootprintSet{
			Button: model.ButtonFootprint{
				PinSpacingXMM: doc.Footprints.Button.PinSpacingX,
				PinSpacingYMM: doc.Footprints.Button.PinSpacingY,
			},
			Controller: model.ControllerFootprint{
				PinSpacingMM: doc.Footprints.Controller.PinSpacing,
				RowSpacingMM: doc.Footprints.Controller.RowSpacing,
			},
			Battery: model.BatteryFootprint{
				PadSpacingMM:        doc.Footprints.Battery.PadSpacing,
				BodyWidthMM:         doc.Footprints.Battery.BodyWidth,
				BodyHeightMM:        doc.Footprints.Battery.BodyHeight,
				PadOffsetExtraCells: doc.Footprints.Battery.PadOffsetExtraCells,
			},
			Diode: model.DiodeFootprint{PadSpacingMM: doc.Footprints.Diode.PadSpacing},
		},
		Placement:   placement,
		MaxAttempts: doc.MaxAttempts,
	}, nil
}

func convertPlacement(p placementJSON) (model.Placement, error) {
	var out model.Placement

	for _, b := range p.Buttons {
		if b.ID == "" {
			return out, fmt.Errorf("%w: button missing id", ErrInputMalformed)
		}
		if err := validateFinite(b.ID+".x", b.X); err != nil {
			return out, err
		}
		if err := validateFinite(b.ID+".y", b.Y); err != nil {
			return out, err
		}
		out.Buttons = append(out.Buttons, model.ButtonComponent{
			ID: b.ID, XMM: b.X, YMM: b.Y,
			Rotation:  model.Rotation(b.Rotation),
			SignalNet: b.SignalNet,
		})
	}

	for _, c := range p.Controllers {
		if c.ID == "" {
			return out, fmt.Errorf("%w: controller missing id", ErrInputMalformed)
		}
		if len(c.Pins) == 0 {
			return out, fmt.Errorf("%w: controller %s has no pins", ErrInputMalformed, c.ID)
		}
		pins := make([]model.PinAssignment, len(c.Pins))
		for i, pa := range c.Pins {
			pins[i] = model.PinAssignment{PinName: pa.Pin, Net: pa.Net}
		}
		out.Controllers = append(out.Controllers, model.ControllerComponent{
			ID: c.ID, XMM: c.X, YMM: c.Y,
			Rotation: model.Rotation(c.Rotation),
			Pins:     pins,
		})
	}

	for _, b := range p.Batteries {
		if b.ID == "" {
			return out, fmt.Errorf("%w: battery missing id", ErrInputMalformed)
		}
		out.Batteries = append(out.Batteries, model.BatteryComponent{ID: b.ID, XMM: b.X, YMM: b.Y})
	}

	for _, d := range p.Diodes {
		if d.ID == "" {
			return out, fmt.Errorf("%w: diode missing id", ErrInputMalformed)
		}
		out.Diodes = append(out.Diodes, model.DiodeComponent{ID: d.ID, XMM: d.X, YMM: d.Y, SignalNet: d.SignalNet})
	}

	return out, nil
}

func validateFinite(field string, v float64) error {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return fmt.Errorf("%w: %s must be a finite number, got %v", ErrInputMalformed, field, v)
	}
	return nil
}
