package torus

import (
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
)

var _ = Describe("Analyze", func() {
	DescribeTable("should find a strongly connected network of diameter n(k-1)",
		func(k, n int) {
			net, err := MakeBuilder().WithConfig(torusConfig(k, n)).Build("Torus")
			Expect(err).NotTo(HaveOccurred())

			a := net.Analyze()

			Expect(a.StronglyConnected).To(BeTrue())
			Expect(a.Diameter).To(Equal(n * (k - 1)))
		},
		Entry("1-ary 2-cube", 1, 2),
		Entry("2-ary 3-cube", 2, 3),
		Entry("4-ary 2-cube", 4, 2),
		Entry("5-ary 1-cube", 5, 1),
		Entry("3-ary 3-cube", 3, 3),
		Entry("16-ary 3-cube", 16, 3),
		Entry("16-ary 4-cube", 16, 4),
	)

	It("should build one graph edge per channel", func() {
		net, err := MakeBuilder().WithConfig(torusConfig(4, 2)).Build("Torus")
		Expect(err).NotTo(HaveOccurred())

		g := net.Graph()

		Expect(g.Nodes().Len()).To(Equal(16))
		Expect(g.Edges().Len()).To(Equal(32))
		Expect(g.HasEdgeFromTo(15, 3)).To(BeTrue())
		Expect(g.HasEdgeFromTo(3, 15)).To(BeFalse())
	})
})
