package router

import "github.com/inkroute/inkroute/model"

// checkNetClosure verifies that every pad in net is reachable from the
// first trace cell by walking only cells that belong to the net's own
// traces. It is a breadth-first flood fill over the union of the traces'
// cells; connectivity is implicit in cell adjacency rather than stored as
// an adjacency list.
func checkNetClosure(net netToRoute, traces []model.Trace) bool {
	if len(net.Pads) < 2 {
		return true
	}
	if len(traces) == 0 || len(traces[0].Path) == 0 {
		return false
	}

	inNet := make(map[model.Cell]bool)
	for _, t := range traces {
		for _, c := range t.Path {
			inNet[c] = true
		}
	}

	start := traces[0].Path[0]
	visited := map[model.Cell]bool{start: true}
	queue := []model.Cell{start}

	for len(queue) > 0 {
		cur := queue[0]
		queue = queue[1:]
		for _, n := range neighbors4(cur) {
			if !inNet[n] || visited[n] {
				continue
			}
			visited[n] = true
			queue = append(queue, n)
		}
	}

	for _, p := range net.Pads {
		if !visited[p.Center] {
			return false
		}
	}
	return true
}

func neighbors4(c model.Cell) [4]model.Cell {
	return [4]model.Cell{
		{X: c.X + 1, Y: c.Y},
		{X: c.X - 1, Y: c.Y},
		{X: c.X, Y: c.Y + 1},
		{X: c.X, Y: c.Y - 1},
	}
}
