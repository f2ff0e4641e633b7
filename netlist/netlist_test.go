package netlist_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/inkroute/inkroute/model"
	"github.com/inkroute/inkroute/netlist"
)

func pad(comp, pin, net string, x, y int) model.Pad {
	return model.Pad{ComponentID: comp, PinName: pin, Net: net, Center: model.Cell{X: x, Y: y}}
}

func TestExtractNets_DropsNCAndSingletons(t *testing.T) {
	pads := []model.Pad{
		pad("BTN1", "A1", "SIG1", 0, 0),
		pad("CTRL1", "PD1", "SIG1", 10, 0),
		pad("BTN1", "A2", "NC", 1, 1),
		pad("BTN1", "A3", "LONELY", 2, 2),
	}
	nets := netlist.ExtractNets(pads)
	require.Len(t, nets, 1)
	assert.Equal(t, "SIG1", nets[0].Name)
	assert.Len(t, nets[0].Pads, 2)
	assert.Equal(t, int64(10), nets[0].MSTWeightCells)
}

func TestExtractNets_MSTWeightUsesManhattanDistance(t *testing.T) {
	// Three pads in an L: the MST keeps the two short legs (5 + 7) and
	// never the 12-cell closing edge.
	pads := []model.Pad{
		pad("A", "1", "SIG", 0, 0),
		pad("B", "1", "SIG", 5, 0),
		pad("C", "1", "SIG", 5, 7),
	}
	nets := netlist.ExtractNets(pads)
	require.Len(t, nets, 1)
	assert.Equal(t, int64(12), nets[0].MSTWeightCells)
}

func TestKruskal_SingleVertex(t *testing.T) {
	g := netlist.NewGraph()
	g.AddVertex("A")
	mst, weight, err := netlist.Kruskal(g)
	require.NoError(t, err)
	assert.Empty(t, mst)
	assert.Zero(t, weight)
}

func TestKruskal_DisconnectedGraph(t *testing.T) {
	g := netlist.NewGraph()
	g.AddEdge("A", "B", 1)
	g.AddVertex("C")
	_, _, err := netlist.Kruskal(g)
	require.ErrorIs(t, err, netlist.ErrDisconnected)
}

func TestPriorityOrder_SignalBeforeGNDBeforeVCC(t *testing.T) {
	nets := []netlist.Net{
		{Name: "VCC", Kind: model.PowerNet, MSTWeightCells: 1},
		{Name: "GND", Kind: model.GroundNet, MSTWeightCells: 1},
		{Name: "SIG2", Kind: model.SignalNet, MSTWeightCells: 5},
		{Name: "SIG1", Kind: model.SignalNet, MSTWeightCells: 2},
	}
	ordered := netlist.PriorityOrder(nets)
	got := make([]string, len(ordered))
	for i, n := range ordered {
		got[i] = n.Name
	}
	assert.Equal(t, []string{"SIG1", "SIG2", "GND", "VCC"}, got)
}
