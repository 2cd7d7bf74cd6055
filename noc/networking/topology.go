// Package networking defines what every network topology provides to the
// simulator, independent of its shape.
package networking

import (
	"github.com/sarchlab/toruscredit/config"
	"github.com/sarchlab/toruscredit/noc/networking/router"
)

// Topology is a network shape that can size itself from a configuration, wire
// its routers and channels, and report its capacity.
type Topology interface {
	// ComputeSize reads the topology parameters and derives the number of
	// nodes and channels.
	ComputeSize(cfg config.Configuration) error

	// BuildNetwork creates the routers with the factory and wires them.
	BuildNetwork(factory router.Factory)

	// Capacity returns the output bandwidth available per node, normalized by
	// the network size.
	Capacity() float64

	// InsertFaults marks part of the network as faulty.
	InsertFaults(cfg config.Configuration) error
}

// FaultInjector decides which parts of a topology are faulty.
type FaultInjector interface {
	InsertFaults(t Topology, cfg config.Configuration) error
}

// NoFaults is a FaultInjector that leaves the network intact.
type NoFaults struct{}

// InsertFaults does nothing.
func (NoFaults) InsertFaults(Topology, config.Configuration) error {
	return nil
}
