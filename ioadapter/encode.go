package ioadapter

import (
	"encoding/json"
	"fmt"
	"io"
	"math"

	"github.com/inkroute/inkroute/model"
)

// Encode renders result as the JSON output document, converting each
// trace's grid-cell path to world-space millimetre coordinates via
// gridResolutionMM (the "(gx+0.5)*res" formula grid.Grid.GridToWorld uses).
func Encode(result model.RoutingResult, gridResolutionMM float64) OutputDocument {
	doc := OutputDocument{Success: result.Success}

	for _, t := range result.Traces {
		path := make([]xyJSON, len(t.Path))
		for i, c := range t.Path {
			path[i] = xyJSON{
				X: (float64(c.X) + 0.5) * gridResolutionMM,
				Y: (float64(c.Y) + 0.5) * gridResolutionMM,
			}
		}
		doc.Traces = append(doc.Traces, traceJSON{Net: t.Net, Path: path})
	}

	for _, f := range result.FailedNets {
		doc.FailedNets = append(doc.FailedNets, failedNetJSON{
			NetName:        f.NetName,
			SourcePin:      f.SourcePin,
			DestinationPin: f.DestinationPin,
			Reason:         f.Reason,
		})
	}

	return doc
}

// Marshal is Encode followed by json.MarshalIndent, the shape
// cmd/inkroute writes to stdout or --out.
func Marshal(result model.RoutingResult, gridResolutionMM float64) ([]byte, error) {
	return json.MarshalIndent(Encode(result, gridResolutionMM), "", "  ")
}

// DecodeResult parses a previously written output document back into a
// RoutingResult, recovering each path point's grid cell via
// floor(coord/resolution). Encode writes cell-centre coordinates, so the
// round trip is exact; cmd/inkroute's render subcommand uses this to
// regenerate rasters without re-routing.
func DecodeResult(r io.Reader, gridResolutionMM float64) (model.RoutingResult, error) {
	var doc OutputDocument
	if err := json.NewDecoder(r).Decode(&doc); err != nil {
		return model.RoutingResult{}, fmt.Errorf("%w: %v", ErrInputMalformed, err)
	}
	if gridResolutionMM <= 0 {
		return model.RoutingResult{}, fmt.Errorf("%w: grid resolution must be > 0", ErrInputMalformed)
	}

	result := model.RoutingResult{Success: doc.Success}
	for _, t := range doc.Traces {
		path := make([]model.Cell, len(t.Path))
		for i, p := range t.Path {
			path[i] = model.Cell{
				X: int(math.Floor(p.X / gridResolutionMM)),
				Y: int(math.Floor(p.Y / gridResolutionMM)),
			}
		}
		result.Traces = append(result.Traces, model.Trace{Net: t.Net, Path: path})
	}
	for _, f := range doc.FailedNets {
		result.FailedNets = append(result.FailedNets, model.FailedNet{
			NetName:        f.NetName,
			SourcePin:      f.SourcePin,
			DestinationPin: f.DestinationPin,
			Reason:         f.Reason,
		})
	}
	return result, nil
}
