package router

// Builder can help building routers.
type Builder struct {
	id         int
	numInputs  int
	numOutputs int
}

// MakeBuilder creates a Builder for a router with one input and one output.
func MakeBuilder() Builder {
	return Builder{
		numInputs:  1,
		numOutputs: 1,
	}
}

// WithID sets the node id of the router to build.
func (b Builder) WithID(id int) Builder {
	b.id = id
	return b
}

// WithNumInputs sets the number of input ports of the router to build.
func (b Builder) WithNumInputs(n int) Builder {
	b.numInputs = n
	return b
}

// WithNumOutputs sets the number of output ports of the router to build.
func (b Builder) WithNumOutputs(n int) Builder {
	b.numOutputs = n
	return b
}

// Build creates a new router.
func (b Builder) Build(name string) *Comp {
	b.portCountsMustBeValid()

	return &Comp{
		name:       name,
		id:         b.id,
		numInputs:  b.numInputs,
		numOutputs: b.numOutputs,
		inputs:     make([]Port, 0, b.numInputs),
		outputs:    make([]Port, 0, b.numOutputs),
	}
}

func (b Builder) portCountsMustBeValid() {
	if b.numInputs < 1 || b.numOutputs < 1 {
		panic("router must have at least one input and one output")
	}
}

// DefaultFactory builds Comp routers.
type DefaultFactory struct{}

// NewRouter creates a Comp router.
func (DefaultFactory) NewRouter(
	name string,
	id, numInputs, numOutputs int,
) Router {
	return MakeBuilder().
		WithID(id).
		WithNumInputs(numInputs).
		WithNumOutputs(numOutputs).
		Build(name)
}
