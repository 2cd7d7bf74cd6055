package torus

import (
	"log"
	"strings"

	"github.com/sarchlab/toruscredit/sim"
)

// TopologyLogger is a hook that prints the summary of every network it sees
// built.
type TopologyLogger struct {
	*log.Logger
}

// NewTopologyLogger returns a TopologyLogger that writes to logger.
func NewTopologyLogger(logger *log.Logger) *TopologyLogger {
	return &TopologyLogger{Logger: logger}
}

// Func prints the network summary, one line per entry.
func (h *TopologyLogger) Func(ctx sim.HookCtx) {
	if ctx.Pos != HookPosNetworkBuilt {
		return
	}

	n, ok := ctx.Item.(*Network)
	if !ok {
		return
	}

	for _, line := range strings.Split(n.Summary(), "\n") {
		h.Println(line)
	}
}
