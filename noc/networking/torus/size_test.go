package torus

import (
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
)

var _ = Describe("ComputeSize", func() {
	DescribeTable("should derive nodes and channels",
		func(k, n, nodes, channels int) {
			size, err := ComputeSize(k, n)

			Expect(err).NotTo(HaveOccurred())
			Expect(size).To(Equal(Size{
				K: k, N: n, Nodes: nodes, Channels: channels,
			}))
		},
		Entry("1-ary 1-cube", 1, 1, 1, 1),
		Entry("1-ary 3-cube", 1, 3, 1, 3),
		Entry("2-ary 3-cube", 2, 3, 8, 24),
		Entry("4-ary 2-cube", 4, 2, 16, 32),
		Entry("8-ary 1-cube", 8, 1, 8, 8),
		Entry("3-ary 4-cube", 3, 4, 81, 324),
	)

	DescribeTable("should reject invalid sizes",
		func(k, n int) {
			_, err := ComputeSize(k, n)
			Expect(err).To(MatchError(ErrInvalidSize))
		},
		Entry("zero radix", 0, 2),
		Entry("negative radix", -4, 2),
		Entry("zero dimension", 4, 0),
		Entry("negative dimension", 4, -1),
		Entry("overflowing node count", 1<<20, 4),
	)
})
