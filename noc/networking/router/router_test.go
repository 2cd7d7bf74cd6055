package router

import (
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
	"github.com/sarchlab/toruscredit/noc/messaging"
)

var _ = Describe("Comp", func() {
	var (
		r *Comp
	)

	makePair := func(id int) (*messaging.Channel, *messaging.CreditChannel) {
		return messaging.MakeChannelBuilder().
			WithID(id).
			Build("Channel")
	}

	BeforeEach(func() {
		r = MakeBuilder().
			WithID(3).
			WithNumInputs(2).
			WithNumOutputs(2).
			Build("Router")
	})

	It("should be built with the given port counts", func() {
		Expect(r.Name()).To(Equal("Router"))
		Expect(r.ID()).To(Equal(3))
		Expect(r.NumInputs()).To(Equal(2))
		Expect(r.NumOutputs()).To(Equal(2))
		Expect(r.Inputs()).To(BeEmpty())
		Expect(r.Outputs()).To(BeEmpty())
	})

	It("should record attached channels in order", func() {
		ch0, cr0 := makePair(0)
		ch1, cr1 := makePair(1)

		r.AddOutputChannel(ch0, cr0)
		r.AddOutputChannel(ch1, cr1)
		r.AddInputChannel(ch1, cr1)

		Expect(r.Outputs()).To(HaveLen(2))
		Expect(r.Outputs()[0].Channel).To(BeIdenticalTo(ch0))
		Expect(r.Outputs()[1].Credit).To(BeIdenticalTo(cr1))
		Expect(r.Inputs()).To(HaveLen(1))
	})

	It("should panic when the input ports are full", func() {
		for i := 0; i < 2; i++ {
			ch, cr := makePair(i)
			r.AddInputChannel(ch, cr)
		}

		ch, cr := makePair(2)
		Expect(func() { r.AddInputChannel(ch, cr) }).To(Panic())
	})

	It("should panic when the output ports are full", func() {
		for i := 0; i < 2; i++ {
			ch, cr := makePair(i)
			r.AddOutputChannel(ch, cr)
		}

		ch, cr := makePair(2)
		Expect(func() { r.AddOutputChannel(ch, cr) }).To(Panic())
	})

	It("should panic on a missing credit channel", func() {
		ch, _ := makePair(0)
		Expect(func() { r.AddOutputChannel(ch, nil) }).
			To(PanicWith("channel and credit channel must both be given"))
	})

	It("should panic on a mismatched credit channel", func() {
		ch, _ := makePair(0)
		_, cr := makePair(1)
		Expect(func() { r.AddInputChannel(ch, cr) }).To(Panic())
	})

	It("should refuse to build a router without ports", func() {
		Expect(func() { MakeBuilder().WithNumInputs(0).Build("Router") }).
			To(Panic())
	})
})

var _ = Describe("DefaultFactory", func() {
	It("should build Comp routers", func() {
		r := DefaultFactory{}.NewRouter("Router", 7, 3, 2)

		comp, ok := r.(*Comp)
		Expect(ok).To(BeTrue())
		Expect(comp.ID()).To(Equal(7))
		Expect(comp.NumInputs()).To(Equal(3))
		Expect(comp.NumOutputs()).To(Equal(2))
	})
})
