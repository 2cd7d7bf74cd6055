package torus

import (
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
)

func mustMapper(k, n int) Mapper {
	size, err := ComputeSize(k, n)
	Expect(err).NotTo(HaveOccurred())

	return NewMapper(size)
}

var _ = Describe("Mapper", func() {
	Context("4-ary 2-cube", func() {
		var m Mapper

		BeforeEach(func() {
			m = mustMapper(4, 2)
		})

		It("should map nodes to coordinates", func() {
			Expect(m.ToCoordinate(0)).To(Equal([]int{0, 0}))
			Expect(m.ToCoordinate(5)).To(Equal([]int{1, 1}))
			Expect(m.ToCoordinate(6)).To(Equal([]int{2, 1}))
			Expect(m.ToCoordinate(15)).To(Equal([]int{3, 3}))
		})

		It("should advance within a dimension", func() {
			Expect(m.Advance(5, 0)).To(Equal(6))
			Expect(m.ToCoordinate(m.Advance(5, 0))).To(Equal([]int{2, 1}))
			Expect(m.Advance(5, 1)).To(Equal(9))
		})

		It("should wrap around at the edge", func() {
			Expect(m.Advance(15, 1)).To(Equal(3))
			Expect(m.ToCoordinate(3)).To(Equal([]int{3, 0}))
			Expect(m.Advance(15, 0)).To(Equal(12))
		})

		It("should index channels by node and dimension", func() {
			Expect(m.ChannelIndex(0, 0)).To(Equal(0))
			Expect(m.ChannelIndex(5, 1)).To(Equal(11))
			Expect(m.ChannelIndex(15, 1)).To(Equal(31))
		})

		It("should panic on out-of-range input", func() {
			Expect(func() { m.ToCoordinate(16) }).To(Panic())
			Expect(func() { m.ToCoordinate(-1) }).To(Panic())
			Expect(func() { m.ToNode([]int{4, 0}) }).To(Panic())
			Expect(func() { m.ToNode([]int{1}) }).To(Panic())
			Expect(func() { m.Advance(0, 2) }).To(Panic())
			Expect(func() { m.ChannelIndex(3, -1) }).To(Panic())
		})
	})

	DescribeTable("should hold the mapping properties",
		func(k, n int) {
			m := mustMapper(k, n)
			size := m.size

			By("round-tripping every node")
			for node := 0; node < size.Nodes; node++ {
				Expect(m.ToNode(m.ToCoordinate(node))).To(Equal(node))
			}

			By("round-tripping every coordinate")
			coord := make([]int, n)
			for i := 0; i < size.Nodes; i++ {
				Expect(m.ToCoordinate(m.ToNode(coord))).To(Equal(coord))
				incrementCoord(coord, k)
			}

			By("closing every ring after exactly k steps")
			for node := 0; node < size.Nodes; node++ {
				for dim := 0; dim < n; dim++ {
					cur := node
					for step := 1; step <= k; step++ {
						cur = m.Advance(cur, dim)
						if step < k {
							Expect(cur).NotTo(Equal(node))
						}
					}
					Expect(cur).To(Equal(node))
				}
			}

			By("covering every channel slot exactly once")
			seen := make(map[int]bool, size.Channels)
			for node := 0; node < size.Nodes; node++ {
				for dim := 0; dim < n; dim++ {
					index := m.ChannelIndex(node, dim)
					Expect(index).To(BeNumerically(">=", 0))
					Expect(index).To(BeNumerically("<", size.Channels))
					Expect(seen).NotTo(HaveKey(index))
					seen[index] = true
				}
			}
			Expect(seen).To(HaveLen(size.Channels))
		},
		Entry("1-ary 2-cube", 1, 2),
		Entry("2-ary 1-cube", 2, 1),
		Entry("2-ary 4-cube", 2, 4),
		Entry("3-ary 3-cube", 3, 3),
		Entry("4-ary 2-cube", 4, 2),
		Entry("5-ary 2-cube", 5, 2),
		Entry("7-ary 1-cube", 7, 1),
	)

	It("should stay in place when k is 1", func() {
		m := mustMapper(1, 3)
		for dim := 0; dim < 3; dim++ {
			Expect(m.Advance(0, dim)).To(Equal(0))
		}
	})
})

// incrementCoord counts coord up by one in base k, least significant digit
// first.
func incrementCoord(coord []int, k int) {
	for d := range coord {
		coord[d]++
		if coord[d] < k {
			return
		}
		coord[d] = 0
	}
}
