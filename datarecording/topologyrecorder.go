package datarecording

import (
	"fmt"
	"strings"

	"github.com/sarchlab/toruscredit/noc/networking/torus"
	"github.com/sarchlab/toruscredit/sim"
)

// RouterEntry is one row of a router table.
type RouterEntry struct {
	NodeID     int
	Name       string
	Coordinate string
}

// ChannelEntry is one row of a channel table.
type ChannelEntry struct {
	ChannelID int
	Name      string
	Src       int
	Dst       int
	Dim       int
	Latency   int
}

// TopologyRecorder is a hook that records the routers and channels of every
// network it sees built. A network named "Torus" is stored in the tables
// torus_routers and torus_channels.
type TopologyRecorder struct {
	recorder DataRecorder
}

// NewTopologyRecorder creates a TopologyRecorder writing into recorder.
func NewTopologyRecorder(recorder DataRecorder) *TopologyRecorder {
	return &TopologyRecorder{recorder: recorder}
}

// Func records the network carried by a HookPosNetworkBuilt context.
func (r *TopologyRecorder) Func(ctx sim.HookCtx) {
	if ctx.Pos != torus.HookPosNetworkBuilt {
		return
	}

	n, ok := ctx.Item.(*torus.Network)
	if !ok {
		return
	}

	r.Record(n)
}

// Record writes the routers and channels of n and flushes them.
func (r *TopologyRecorder) Record(n *torus.Network) {
	prefix := tablePrefix(n.Name())
	routerTable := prefix + "_routers"
	channelTable := prefix + "_channels"

	r.recorder.CreateTable(routerTable, RouterEntry{})
	r.recorder.CreateTable(channelTable, ChannelEntry{})

	for node := 0; node < n.NumNodes(); node++ {
		r.recorder.InsertData(routerTable, RouterEntry{
			NodeID:     node,
			Name:       n.Router(node).Name(),
			Coordinate: formatCoordinate(n.Mapper().ToCoordinate(node)),
		})
	}

	for index := 0; index < n.NumChannels(); index++ {
		ch := n.Channel(index)

		r.recorder.InsertData(channelTable, ChannelEntry{
			ChannelID: ch.ID(),
			Name:      ch.Name(),
			Src:       ch.Src(),
			Dst:       ch.Dst(),
			Dim:       ch.Dim(),
			Latency:   ch.Latency(),
		})
	}

	r.recorder.Flush()
}

// tablePrefix turns a hierarchical name into a SQL identifier.
func tablePrefix(name string) string {
	var sb strings.Builder

	for _, c := range strings.ToLower(name) {
		switch {
		case c >= 'a' && c <= 'z', c >= '0' && c <= '9':
			sb.WriteRune(c)
		default:
			sb.WriteByte('_')
		}
	}

	return sb.String()
}

func formatCoordinate(coord []int) string {
	parts := make([]string, len(coord))
	for i, c := range coord {
		parts[i] = fmt.Sprint(c)
	}

	return "(" + strings.Join(parts, ",") + ")"
}
