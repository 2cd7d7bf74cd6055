package torus

import (
	"math"

	"gonum.org/v1/gonum/graph/path"
	"gonum.org/v1/gonum/graph/simple"
	"gonum.org/v1/gonum/graph/topo"
)

// Analysis holds graph properties of a built network.
type Analysis struct {
	StronglyConnected bool

	// Diameter is the largest hop count of a shortest path between two nodes,
	// or -1 if some node cannot reach another.
	Diameter int
}

// Graph returns the directed node graph of the network, one edge per data
// channel. Self loops, which only exist when k is 1, are left out.
func (n *Network) Graph() *simple.DirectedGraph {
	g := simple.NewDirectedGraph()

	for node := 0; node < n.size.Nodes; node++ {
		g.AddNode(simple.Node(node))
	}

	for _, ch := range n.channels {
		if ch.Src() == ch.Dst() {
			continue
		}

		g.SetEdge(g.NewEdge(simple.Node(ch.Src()), simple.Node(ch.Dst())))
	}

	return g
}

// Analyze computes the connectivity and the diameter of the network. A torus
// looks the same from every node, so the distances from node 0 give the
// diameter.
func (n *Network) Analyze() Analysis {
	g := n.Graph()

	a := Analysis{
		StronglyConnected: len(topo.TarjanSCC(g)) == 1,
	}

	if !a.StronglyConnected {
		a.Diameter = -1
		return a
	}

	paths := path.DijkstraFrom(simple.Node(0), g)

	var diameter float64
	for v := 0; v < n.size.Nodes; v++ {
		diameter = math.Max(diameter, paths.WeightTo(int64(v)))
	}

	a.Diameter = int(diameter)

	return a
}
