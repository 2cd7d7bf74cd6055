// Package router defines the router capability that network topologies wire
// channels into, and a default router that only records its attachments.
package router

import (
	"fmt"

	"github.com/sarchlab/toruscredit/noc/messaging"
)

// Router is the part of a router a topology needs while wiring the network.
type Router interface {
	// Name returns the name of the router.
	Name() string

	// AddInputChannel attaches a channel that delivers flits to the router,
	// together with the credit channel the router returns credits on.
	AddInputChannel(ch *messaging.Channel, credit *messaging.CreditChannel)

	// AddOutputChannel attaches a channel that the router sends flits on,
	// together with the credit channel credits come back on.
	AddOutputChannel(ch *messaging.Channel, credit *messaging.CreditChannel)
}

// Factory creates routers for a topology.
type Factory interface {
	NewRouter(name string, id, numInputs, numOutputs int) Router
}

// A Port is one side of a router that has a data channel and its credit
// channel attached.
type Port struct {
	Channel *messaging.Channel
	Credit  *messaging.CreditChannel
}

// Comp is a router that keeps references to the channels attached to it. It
// performs no switching.
type Comp struct {
	name string
	id   int

	inputs     []Port
	outputs    []Port
	numInputs  int
	numOutputs int
}

// Name returns the name of the router.
func (c *Comp) Name() string {
	return c.name
}

// ID returns the node id of the router.
func (c *Comp) ID() int {
	return c.id
}

// Inputs returns the input ports attached so far, in attachment order.
func (c *Comp) Inputs() []Port {
	return c.inputs
}

// Outputs returns the output ports attached so far, in attachment order.
func (c *Comp) Outputs() []Port {
	return c.outputs
}

// NumInputs returns the number of input ports the router was built with.
func (c *Comp) NumInputs() int {
	return c.numInputs
}

// NumOutputs returns the number of output ports the router was built with.
func (c *Comp) NumOutputs() int {
	return c.numOutputs
}

// AddInputChannel attaches an input channel to the next free input port.
func (c *Comp) AddInputChannel(
	ch *messaging.Channel,
	credit *messaging.CreditChannel,
) {
	portMustBeValid(ch, credit)

	if len(c.inputs) >= c.numInputs {
		panic(fmt.Sprintf(
			"router %s already has %d input channels, now connecting to %s",
			c.name, c.numInputs, ch.Name()))
	}

	c.inputs = append(c.inputs, Port{Channel: ch, Credit: credit})
}

// AddOutputChannel attaches an output channel to the next free output port.
func (c *Comp) AddOutputChannel(
	ch *messaging.Channel,
	credit *messaging.CreditChannel,
) {
	portMustBeValid(ch, credit)

	if len(c.outputs) >= c.numOutputs {
		panic(fmt.Sprintf(
			"router %s already has %d output channels, now connecting to %s",
			c.name, c.numOutputs, ch.Name()))
	}

	c.outputs = append(c.outputs, Port{Channel: ch, Credit: credit})
}

func portMustBeValid(ch *messaging.Channel, credit *messaging.CreditChannel) {
	if ch == nil || credit == nil {
		panic("channel and credit channel must both be given")
	}

	if ch.ID() != credit.ID() {
		panic(fmt.Sprintf("credit channel %s does not pair with channel %s",
			credit.Name(), ch.Name()))
	}
}
