package netlist

import (
	"sort"

	"github.com/inkroute/inkroute/model"
)

// ExtractNets groups pads by net name, drops the reserved "NC" marker and
// any net with fewer than two pads, and computes each remaining net's MST
// weight over its pad centres.
func ExtractNets(pads []model.Pad) []Net {
	byName := make(map[string][]model.Pad)
	order := make([]string, 0)
	for _, p := range pads {
		if p.Net == model.NCNetName || p.Net == "" {
			continue
		}
		if _, seen := byName[p.Net]; !seen {
			order = append(order, p.Net)
		}
		byName[p.Net] = append(byName[p.Net], p)
	}

	nets := make([]Net, 0, len(order))
	for _, name := range order {
		netPads := byName[name]
		if len(netPads) < 2 {
			continue
		}
		_, weight := netMST(netPads)
		nets = append(nets, Net{
			Name:           name,
			Kind:           model.ClassifyNet(name),
			Pads:           netPads,
			MSTWeightCells: weight,
		})
	}
	return nets
}

// netMST builds a complete graph over pads' centres (Manhattan distance
// weights) and runs Kruskal over it.
func netMST(pads []model.Pad) ([]Edge, int64) {
	g := NewGraph()
	for i := range pads {
		g.AddVertex(pads[i].PinID())
	}
	for i := 0; i < len(pads); i++ {
		for j := i + 1; j < len(pads); j++ {
			d := manhattan(pads[i].Center, pads[j].Center)
			g.AddEdge(pads[i].PinID(), pads[j].PinID(), int64(d))
		}
	}
	mst, weight, err := Kruskal(g)
	if err != nil {
		// A complete graph over >=2 vertices is always connected; this
		// branch is unreachable in practice but Kruskal's general
		// contract still allows it, so fail safe with an empty MST.
		return nil, 0
	}
	return mst, weight
}

func manhattan(a, b model.Cell) int {
	return absInt(a.X-b.X) + absInt(a.Y-b.Y)
}

func absInt(v int) int {
	if v < 0 {
		return -v
	}
	return v
}

// PriorityOrder returns a new slice of nets sorted by static priority:
// SIGNAL before GND before VCC, ties broken by ascending MST
// weight (shorter Manhattan span first).
func PriorityOrder(nets []Net) []Net {
	out := make([]Net, len(nets))
	copy(out, nets)
	sort.SliceStable(out, func(i, j int) bool {
		if out[i].Kind != out[j].Kind {
			return kindRank(out[i].Kind) < kindRank(out[j].Kind)
		}
		return out[i].MSTWeightCells < out[j].MSTWeightCells
	})
	return out
}

func kindRank(k model.NetKind) int {
	switch k {
	case model.SignalNet:
		return 0
	case model.GroundNet:
		return 1
	case model.PowerNet:
		return 2
	default:
		return 3
	}
}
