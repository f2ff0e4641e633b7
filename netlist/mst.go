package netlist

import (
	"errors"
	"sort"
)

// ErrDisconnected indicates the graph passed to Kruskal is not fully
// connected. ExtractNets never triggers this (it always builds a complete
// graph over a net's pads), but Kruskal keeps the check because it is a
// general-purpose MST routine.
var ErrDisconnected = errors.New("netlist: graph is not fully connected")

// Kruskal computes the minimum spanning tree of an undirected, weighted
// Graph using a disjoint-set (union-find) structure with path compression
// and union by rank.
//
// Complexity: O(E log E + α(V)·E). Memory: O(E + V).
func Kruskal(g *Graph) (mst []Edge, totalWeight int64, err error) {
	vertices := g.Vertices()
	if len(vertices) == 0 {
		return nil, 0, ErrDisconnected
	}
	if len(vertices) == 1 {
		return []Edge{}, 0, nil
	}

	edges := make([]Edge, len(g.edges))
	copy(edges, g.edges)
	sort.SliceStable(edges, func(i, j int) bool {
		return edges[i].Weight < edges[j].Weight
	})

	parent := make(map[string]string, len(vertices))
	rank := make(map[string]int, len(vertices))
	for _, v := range vertices {
		parent[v] = v
	}

	var find func(string) string
	find = func(u string) string {
		for parent[u] != u {
			parent[u] = parent[parent[u]]
			u = parent[u]
		}
		return u
	}
	union := func(u, v string) {
		ru, rv := find(u), find(v)
		if ru == rv {
			return
		}
		if rank[ru] < rank[rv] {
			parent[ru] = rv
		} else {
			parent[rv] = ru
			if rank[ru] == rank[rv] {
				rank[ru]++
			}
		}
	}

	need := len(vertices) - 1
	for _, e := range edges {
		if find(e.From) != find(e.To) {
			union(e.From, e.To)
			mst = append(mst, e)
			totalWeight += e.Weight
			if len(mst) == need {
				break
			}
		}
	}

	if len(mst) < need {
		return nil, 0, ErrDisconnected
	}
	return mst, totalWeight, nil
}
