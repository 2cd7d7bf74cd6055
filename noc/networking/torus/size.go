package torus

import (
	"errors"
	"fmt"
	"math"
)

// ErrInvalidSize indicates that k and n do not describe a torus.
var ErrInvalidSize = errors.New("torus: invalid size")

// Size holds the parameters of a k-ary n-cube and the counts derived from them.
type Size struct {
	K        int
	N        int
	Nodes    int
	Channels int
}

// ComputeSize derives the node count k^n and the channel count n*k^n. It fails
// when k or n is below one, or when the counts do not fit in an int.
func ComputeSize(k, n int) (Size, error) {
	if k < 1 {
		return Size{}, fmt.Errorf("%w: radix k = %d, must be at least 1",
			ErrInvalidSize, k)
	}

	if n < 1 {
		return Size{}, fmt.Errorf("%w: dimension n = %d, must be at least 1",
			ErrInvalidSize, n)
	}

	nodes := 1
	for i := 0; i < n; i++ {
		if nodes > math.MaxInt/k {
			return Size{}, fmt.Errorf("%w: %d^%d nodes overflows",
				ErrInvalidSize, k, n)
		}

		nodes *= k
	}

	if nodes > math.MaxInt/n {
		return Size{}, fmt.Errorf("%w: %d*%d channels overflows",
			ErrInvalidSize, n, nodes)
	}

	return Size{
		K:        k,
		N:        n,
		Nodes:    nodes,
		Channels: n * nodes,
	}, nil
}
