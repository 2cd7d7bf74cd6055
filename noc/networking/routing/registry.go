// Package routing holds the routing functions that routers consult and the
// registry that maps routing-function names to them.
package routing

import (
	"errors"
	"fmt"
	"sync"

	"golang.org/x/exp/slices"
)

// ErrFunctionNotFound indicates that no routing function is registered under
// the requested name.
var ErrFunctionNotFound = errors.New("routing: function not found")

// ErrAlreadyRegistered indicates that a name is taken.
var ErrAlreadyRegistered = errors.New("routing: name already registered")

// Output is one candidate output of a routing decision: a router output port
// and the inclusive range of virtual channels the packet may use on it.
type Output struct {
	Port    int
	VCStart int
	VCEnd   int
}

// Request carries everything a routing function needs to decide where a packet
// at the current router goes next.
type Request struct {
	// K is the radix of the torus.
	K int

	// Current and Dest are the coordinates of the current router and of the
	// destination router.
	Current []int
	Dest    []int

	// Intermediate is the Valiant intermediate coordinate. Nil means the
	// packet routes straight to Dest.
	Intermediate []int

	// ReachedIntermediate is set once the packet has passed Intermediate.
	ReachedIntermediate bool

	// NumVCs is the number of virtual channels per port.
	NumVCs int
}

// Func selects the candidate outputs for a packet.
type Func func(req Request) []Output

// Registry maps routing-function names to functions. One registry is shared by
// every topology of a simulation run.
type Registry struct {
	lock  sync.RWMutex
	funcs map[string]Func
}

// NewRegistry creates an empty registry.
func NewRegistry() *Registry {
	return &Registry{
		funcs: make(map[string]Func),
	}
}

// Register adds a routing function under name.
func (r *Registry) Register(name string, f Func) error {
	if name == "" {
		return errors.New("routing: function name cannot be empty")
	}

	if f == nil {
		return fmt.Errorf("routing: function %q is nil", name)
	}

	r.lock.Lock()
	defer r.lock.Unlock()

	if _, found := r.funcs[name]; found {
		return fmt.Errorf("%w: %q", ErrAlreadyRegistered, name)
	}

	r.funcs[name] = f

	return nil
}

// Lookup returns the routing function registered under name.
func (r *Registry) Lookup(name string) (Func, error) {
	r.lock.RLock()
	defer r.lock.RUnlock()

	f, found := r.funcs[name]
	if !found {
		return nil, fmt.Errorf("%w: %q", ErrFunctionNotFound, name)
	}

	return f, nil
}

// Alias registers the function currently under base again under alias.
func (r *Registry) Alias(alias, base string) error {
	return r.AliasAll(map[string]string{alias: base})
}

// AliasAll registers every alias → base pair of aliases. Either all aliases are
// registered or, when a base is missing or an alias is taken, none is.
func (r *Registry) AliasAll(aliases map[string]string) error {
	r.lock.Lock()
	defer r.lock.Unlock()

	resolved := make(map[string]Func, len(aliases))

	for _, alias := range sortedKeys(aliases) {
		base := aliases[alias]

		f, found := r.funcs[base]
		if !found {
			return fmt.Errorf("aliasing %q: %w: %q",
				alias, ErrFunctionNotFound, base)
		}

		if _, taken := r.funcs[alias]; taken {
			return fmt.Errorf("%w: %q", ErrAlreadyRegistered, alias)
		}

		resolved[alias] = f
	}

	for alias, f := range resolved {
		r.funcs[alias] = f
	}

	return nil
}

// Names returns the registered names in lexical order.
func (r *Registry) Names() []string {
	r.lock.RLock()
	defer r.lock.RUnlock()

	return sortedKeys(r.funcs)
}

func sortedKeys[V any](m map[string]V) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}

	slices.Sort(keys)

	return keys
}
