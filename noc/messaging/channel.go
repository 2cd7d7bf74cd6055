// Package messaging defines the links that carry flits and credits between
// routers.
package messaging

import "fmt"

// A Channel is a directed data link from one router to another along one
// dimension of the network.
type Channel struct {
	name    string
	id      int
	src     int
	dst     int
	dim     int
	latency int
}

// Name returns the name of the channel.
func (c *Channel) Name() string {
	return c.name
}

// ID returns the channel index in the network's channel storage.
func (c *Channel) ID() int {
	return c.id
}

// Src returns the id of the node that sends on the channel.
func (c *Channel) Src() int {
	return c.src
}

// Dst returns the id of the node that receives from the channel.
func (c *Channel) Dst() int {
	return c.dst
}

// Dim returns the dimension the channel travels along.
func (c *Channel) Dim() int {
	return c.dim
}

// Latency returns the number of cycles a flit spends on the channel.
func (c *Channel) Latency() int {
	return c.latency
}

func (c *Channel) String() string {
	return fmt.Sprintf("%s(%d->%d, dim %d)", c.name, c.src, c.dst, c.dim)
}

// A CreditChannel carries buffer-availability credits backwards, from the
// receiver of a Channel to its sender.
type CreditChannel struct {
	name    string
	id      int
	src     int
	dst     int
	latency int
}

// Name returns the name of the credit channel.
func (c *CreditChannel) Name() string {
	return c.name
}

// ID returns the index of the data channel this credit channel pairs with.
func (c *CreditChannel) ID() int {
	return c.id
}

// Src returns the id of the node that returns credits.
func (c *CreditChannel) Src() int {
	return c.src
}

// Dst returns the id of the node that receives credits.
func (c *CreditChannel) Dst() int {
	return c.dst
}

// Latency returns the number of cycles a credit spends on the channel.
func (c *CreditChannel) Latency() int {
	return c.latency
}

// ChannelBuilder can build a data channel and its credit channel.
type ChannelBuilder struct {
	id       int
	src, dst int
	dim      int
	latency  int
}

// MakeChannelBuilder creates a ChannelBuilder with a one-cycle latency.
func MakeChannelBuilder() ChannelBuilder {
	return ChannelBuilder{
		latency: 1,
	}
}

// WithID sets the channel index.
func (b ChannelBuilder) WithID(id int) ChannelBuilder {
	b.id = id
	return b
}

// WithSrc sets the sending node.
func (b ChannelBuilder) WithSrc(node int) ChannelBuilder {
	b.src = node
	return b
}

// WithDst sets the receiving node.
func (b ChannelBuilder) WithDst(node int) ChannelBuilder {
	b.dst = node
	return b
}

// WithDim sets the dimension the channel travels along.
func (b ChannelBuilder) WithDim(dim int) ChannelBuilder {
	b.dim = dim
	return b
}

// WithLatency sets the latency, in cycles, of both channels in the pair.
func (b ChannelBuilder) WithLatency(cycles int) ChannelBuilder {
	b.latency = cycles
	return b
}

// Build creates a data channel and the credit channel that flows against it.
// The credit channel is named after the data channel with a ".Credit" suffix.
func (b ChannelBuilder) Build(name string) (*Channel, *CreditChannel) {
	b.latencyMustBePositive()

	ch := &Channel{
		name:    name,
		id:      b.id,
		src:     b.src,
		dst:     b.dst,
		dim:     b.dim,
		latency: b.latency,
	}

	credit := &CreditChannel{
		name:    name + ".Credit",
		id:      b.id,
		src:     b.dst,
		dst:     b.src,
		latency: b.latency,
	}

	return ch, credit
}

func (b ChannelBuilder) latencyMustBePositive() {
	if b.latency < 1 {
		panic("channel latency must be at least one cycle")
	}
}
