package torus

import (
	"github.com/sarchlab/toruscredit/noc/networking/routing"
)

// RoutingSuffix is appended to the bidirectional torus routing-function names
// to name the functions of this topology.
const RoutingSuffix = "_torus_credit"

// RoutingAliases maps every routing-function name of this topology to the
// bidirectional torus function it reuses.
func RoutingAliases() map[string]string {
	aliases := make(map[string]string, len(routing.TorusFunctionNames))
	for _, base := range routing.TorusFunctionNames {
		aliases[base+RoutingSuffix] = base
	}

	return aliases
}

// RegisterRoutingFunctions registers this topology's routing-function names in
// reg as aliases of the bidirectional torus functions. Every base function must
// already be registered; if one is missing nothing is registered and a
// routing.ErrFunctionNotFound error is returned.
func RegisterRoutingFunctions(reg *routing.Registry) error {
	return reg.AliasAll(RoutingAliases())
}
