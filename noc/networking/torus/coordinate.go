package torus

import "fmt"

// Mapper converts between node ids and torus coordinates. Coordinate digit d
// is the base-k digit of weight k^d, so node ids follow row-major order with
// dimension 0 varying fastest.
type Mapper struct {
	size Size
}

// NewMapper creates a Mapper for a torus of the given size.
func NewMapper(size Size) Mapper {
	return Mapper{size: size}
}

// ToCoordinate returns the coordinate of node.
func (m Mapper) ToCoordinate(node int) []int {
	m.nodeMustBeValid(node)

	coord := make([]int, m.size.N)
	for d := range coord {
		coord[d] = node % m.size.K
		node /= m.size.K
	}

	return coord
}

// ToNode returns the node at coord.
func (m Mapper) ToNode(coord []int) int {
	m.coordMustBeValid(coord)

	node, weight := 0, 1
	for _, digit := range coord {
		node += digit * weight
		weight *= m.size.K
	}

	return node
}

// Advance returns the next node after node in the positive direction of dim,
// wrapping from digit k-1 back to 0.
func (m Mapper) Advance(node, dim int) int {
	m.dimMustBeValid(dim)

	coord := m.ToCoordinate(node)
	coord[dim] = (coord[dim] + 1) % m.size.K

	return m.ToNode(coord)
}

// ChannelIndex returns the storage slot of the channel that leaves node along
// dim. Slots are node*n + dim and cover [0, channels) exactly once.
func (m Mapper) ChannelIndex(node, dim int) int {
	m.nodeMustBeValid(node)
	m.dimMustBeValid(dim)

	return node*m.size.N + dim
}

func (m Mapper) nodeMustBeValid(node int) {
	if node < 0 || node >= m.size.Nodes {
		panic(fmt.Sprintf("node %d out of range [0, %d)", node, m.size.Nodes))
	}
}

func (m Mapper) dimMustBeValid(dim int) {
	if dim < 0 || dim >= m.size.N {
		panic(fmt.Sprintf("dimension %d out of range [0, %d)", dim, m.size.N))
	}
}

func (m Mapper) coordMustBeValid(coord []int) {
	if len(coord) != m.size.N {
		panic(fmt.Sprintf("coordinate %v must have %d digits",
			coord, m.size.N))
	}

	for _, digit := range coord {
		if digit < 0 || digit >= m.size.K {
			panic(fmt.Sprintf("coordinate %v has a digit out of range [0, %d)",
				coord, m.size.K))
		}
	}
}
