package messaging

import (
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
)

var _ = Describe("ChannelBuilder", func() {
	It("should build a channel and a reversed credit channel", func() {
		ch, credit := MakeChannelBuilder().
			WithID(11).
			WithSrc(5).
			WithDst(6).
			WithDim(1).
			Build("Torus.Channel[11]")

		Expect(ch.Name()).To(Equal("Torus.Channel[11]"))
		Expect(ch.ID()).To(Equal(11))
		Expect(ch.Src()).To(Equal(5))
		Expect(ch.Dst()).To(Equal(6))
		Expect(ch.Dim()).To(Equal(1))
		Expect(ch.Latency()).To(Equal(1))
		Expect(ch.String()).To(Equal("Torus.Channel[11](5->6, dim 1)"))

		Expect(credit.Name()).To(Equal("Torus.Channel[11].Credit"))
		Expect(credit.ID()).To(Equal(11))
		Expect(credit.Src()).To(Equal(6))
		Expect(credit.Dst()).To(Equal(5))
		Expect(credit.Latency()).To(Equal(1))
	})

	It("should carry the latency to both channels", func() {
		ch, credit := MakeChannelBuilder().WithLatency(3).Build("Channel")

		Expect(ch.Latency()).To(Equal(3))
		Expect(credit.Latency()).To(Equal(3))
	})

	It("should panic on a non-positive latency", func() {
		Expect(func() {
			MakeChannelBuilder().WithLatency(0).Build("Channel")
		}).To(PanicWith("channel latency must be at least one cycle"))
	})
})
