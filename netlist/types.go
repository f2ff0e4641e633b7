package netlist

import "github.com/inkroute/inkroute/model"

// Net is one electrical net: every pad sharing a net name, plus the
// bookkeeping the router needs to order nets for routing.
type Net struct {
	Name   string
	Kind   model.NetKind
	Pads   []model.Pad
	// MSTWeightCells is the total weight (Manhattan distance, in grid
	// cells) of the minimum spanning tree over this net's pad centres.
	// It exists purely to break priority ties: shorter Manhattan span
	// routes first within a priority class.
	MSTWeightCells int64
}
