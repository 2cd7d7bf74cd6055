package torus

import (
	"github.com/sarchlab/toruscredit/config"
	"github.com/sarchlab/toruscredit/noc/networking"
	"github.com/sarchlab/toruscredit/noc/networking/router"
	"github.com/sarchlab/toruscredit/sim"
)

// Builder can help building unidirectional torus networks.
type Builder struct {
	cfg            config.Configuration
	factory        router.Factory
	faults         networking.FaultInjector
	hooks          []sim.Hook
	channelLatency int
}

// MakeBuilder creates a Builder that uses plain routers, one-cycle channels and
// no faults.
func MakeBuilder() Builder {
	return Builder{
		factory:        router.DefaultFactory{},
		faults:         networking.NoFaults{},
		channelLatency: 1,
	}
}

// WithConfig sets the configuration that provides "k" and "n".
func (b Builder) WithConfig(cfg config.Configuration) Builder {
	b.cfg = cfg
	return b
}

// WithRouterFactory sets the factory that creates the routers.
func (b Builder) WithRouterFactory(f router.Factory) Builder {
	b.factory = f
	return b
}

// WithFaultInjector sets the fault injector applied after wiring.
func (b Builder) WithFaultInjector(f networking.FaultInjector) Builder {
	b.faults = f
	return b
}

// WithHook registers a hook on the network to build. Hooks observe
// HookPosNetworkBuilt.
func (b Builder) WithHook(h sim.Hook) Builder {
	b.hooks = append(b.hooks[:len(b.hooks):len(b.hooks)], h)
	return b
}

// WithChannelLatency sets the latency, in cycles, of every channel.
func (b Builder) WithChannelLatency(cycles int) Builder {
	b.channelLatency = cycles
	return b
}

// Build sizes, wires and fault-injects a network. Configuration errors are
// returned before any router is created.
func (b Builder) Build(name string) (*Network, error) {
	sim.NameMustBeValid(name)
	b.configMustBeGiven()
	b.routerFactoryMustBeGiven()

	n := &Network{
		name:           name,
		channelLatency: b.channelLatency,
		faults:         b.faults,
	}

	for _, h := range b.hooks {
		n.AcceptHook(h)
	}

	if err := n.ComputeSize(b.cfg); err != nil {
		return nil, err
	}

	n.BuildNetwork(b.factory)

	if err := n.InsertFaults(b.cfg); err != nil {
		return nil, err
	}

	n.InvokeHook(sim.HookCtx{
		Domain: n,
		Pos:    HookPosNetworkBuilt,
		Item:   n,
	})

	return n, nil
}

func (b Builder) configMustBeGiven() {
	if b.cfg == nil {
		panic("config is not given")
	}
}

func (b Builder) routerFactoryMustBeGiven() {
	if b.factory == nil {
		panic("router factory is not given")
	}
}
