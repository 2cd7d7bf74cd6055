// Package torus builds unidirectional k-ary n-cube networks in which every
// node sends along one forward channel per dimension and receives credits back
// on a paired credit channel.
package torus

import (
	"fmt"

	"github.com/sarchlab/toruscredit/config"
	"github.com/sarchlab/toruscredit/noc/messaging"
	"github.com/sarchlab/toruscredit/noc/networking"
	"github.com/sarchlab/toruscredit/noc/networking/router"
	"github.com/sarchlab/toruscredit/sim"
)

// HookPosNetworkBuilt marks that a network finished construction. The hook
// item is the *Network.
var HookPosNetworkBuilt = &sim.HookPos{Name: "NetworkBuilt"}

// HookPosChannelConnected marks that a channel has been attached to both of
// its routers. The hook item is the *messaging.Channel.
var HookPosChannelConnected = &sim.HookPos{Name: "ChannelConnected"}

var _ networking.Topology = (*Network)(nil)

// Network is a unidirectional torus. It owns its routers and channels.
type Network struct {
	sim.HookableBase

	name           string
	size           Size
	mapper         Mapper
	channelLatency int
	faults         networking.FaultInjector

	routers  []router.Router
	channels []*messaging.Channel
	credits  []*messaging.CreditChannel
}

// Name returns the name of the network.
func (n *Network) Name() string {
	return n.name
}

// Size returns the radix, dimension and derived counts of the network.
func (n *Network) Size() Size {
	return n.size
}

// K returns the radix.
func (n *Network) K() int {
	return n.size.K
}

// N returns the number of dimensions.
func (n *Network) N() int {
	return n.size.N
}

// NumNodes returns k^n.
func (n *Network) NumNodes() int {
	return n.size.Nodes
}

// NumChannels returns n*k^n.
func (n *Network) NumChannels() int {
	return n.size.Channels
}

// Mapper returns the coordinate mapper of the network.
func (n *Network) Mapper() Mapper {
	return n.mapper
}

// Router returns the router of a node.
func (n *Network) Router(node int) router.Router {
	return n.routers[node]
}

// Channel returns the data channel stored at index.
func (n *Network) Channel(index int) *messaging.Channel {
	return n.channels[index]
}

// CreditChannel returns the credit channel paired with the data channel at
// index.
func (n *Network) CreditChannel(index int) *messaging.CreditChannel {
	return n.credits[index]
}

// ComputeSize reads "k" and "n" from the configuration and derives the node and
// channel counts.
func (n *Network) ComputeSize(cfg config.Configuration) error {
	k, err := cfg.GetInt("k")
	if err != nil {
		return fmt.Errorf("torus %s: %w", n.name, err)
	}

	dims, err := cfg.GetInt("n")
	if err != nil {
		return fmt.Errorf("torus %s: %w", n.name, err)
	}

	size, err := ComputeSize(k, dims)
	if err != nil {
		return fmt.Errorf("torus %s: %w", n.name, err)
	}

	n.size = size
	n.mapper = NewMapper(size)

	return nil
}

// BuildNetwork creates one router per node and connects every node to its
// forward neighbor in every dimension.
func (n *Network) BuildNetwork(factory router.Factory) {
	n.sizeMustBeComputed()

	n.routers = make([]router.Router, n.size.Nodes)
	n.channels = make([]*messaging.Channel, n.size.Channels)
	n.credits = make([]*messaging.CreditChannel, n.size.Channels)

	for node := 0; node < n.size.Nodes; node++ {
		coord := n.mapper.ToCoordinate(node)
		name := sim.BuildNameWithMultiDimensionalIndex(n.name, "Router", coord)

		n.routers[node] = factory.NewRouter(name, node, n.size.N, n.size.N)
	}

	w := newWiring(n.size)

	for node := 0; node < n.size.Nodes; node++ {
		for dim := 0; dim < n.size.N; dim++ {
			n.connect(w, node, dim)
		}
	}

	w.mustBeComplete()
}

func (n *Network) connect(w *wiring, node, dim int) {
	index := n.mapper.ChannelIndex(node, dim)
	dst := n.mapper.Advance(node, dim)

	w.attach(index, node, dst)

	ch, credit := messaging.MakeChannelBuilder().
		WithID(index).
		WithSrc(node).
		WithDst(dst).
		WithDim(dim).
		WithLatency(n.channelLatency).
		Build(sim.BuildNameWithIndex(n.name, "Channel", index))

	n.channels[index] = ch
	n.credits[index] = credit

	n.routers[node].AddOutputChannel(ch, credit)
	n.routers[dst].AddInputChannel(ch, credit)

	n.InvokeHook(sim.HookCtx{
		Domain: n,
		Pos:    HookPosChannelConnected,
		Item:   ch,
	})
}

// Capacity returns n / nodes, the per-node output bandwidth normalized by the
// network size.
func (n *Network) Capacity() float64 {
	return float64(n.size.N) / float64(n.size.Nodes)
}

// InsertFaults asks the fault injector to mark faulty parts of the network.
func (n *Network) InsertFaults(cfg config.Configuration) error {
	if n.faults == nil {
		return nil
	}

	return n.faults.InsertFaults(n, cfg)
}

// Summary describes the network in three lines: kind, nodes and channels.
func (n *Network) Summary() string {
	return fmt.Sprintf(
		"Topology: Unidirectional %d-D %d-ary torus\nNodes: %d\nChannels: %d",
		n.size.N, n.size.K, n.size.Nodes, n.size.Channels)
}

func (n *Network) sizeMustBeComputed() {
	if n.size.Nodes == 0 {
		panic("torus size must be computed before building the network")
	}
}

// wiring tracks how often each channel end and router port is attached while
// the network is being built.
type wiring struct {
	size        Size
	srcAttached []bool
	dstAttached []bool
	numOutputs  []int
	numInputs   []int
}

func newWiring(size Size) *wiring {
	return &wiring{
		size:        size,
		srcAttached: make([]bool, size.Channels),
		dstAttached: make([]bool, size.Channels),
		numOutputs:  make([]int, size.Nodes),
		numInputs:   make([]int, size.Nodes),
	}
}

func (w *wiring) attach(index, src, dst int) {
	if index < 0 || index >= w.size.Channels {
		panic(fmt.Sprintf("channel %d out of range [0, %d)",
			index, w.size.Channels))
	}

	if w.srcAttached[index] || w.dstAttached[index] {
		panic(fmt.Sprintf("channel %d attached twice", index))
	}

	w.srcAttached[index] = true
	w.dstAttached[index] = true
	w.numOutputs[src]++
	w.numInputs[dst]++
}

func (w *wiring) mustBeComplete() {
	for index := range w.srcAttached {
		if !w.srcAttached[index] || !w.dstAttached[index] {
			panic(fmt.Sprintf("channel %d left unattached", index))
		}
	}

	for node := 0; node < w.size.Nodes; node++ {
		if w.numOutputs[node] != w.size.N || w.numInputs[node] != w.size.N {
			panic(fmt.Sprintf(
				"router %d has %d outputs and %d inputs, want %d each",
				node, w.numOutputs[node], w.numInputs[node], w.size.N))
		}
	}
}
