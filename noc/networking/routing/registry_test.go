package routing

import (
	"reflect"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
)

func sameFunc(a, b Func) bool {
	return reflect.ValueOf(a).Pointer() == reflect.ValueOf(b).Pointer()
}

var _ = Describe("Registry", func() {
	var (
		r *Registry
	)

	BeforeEach(func() {
		r = NewRegistry()
	})

	It("should register and look up functions", func() {
		Expect(r.Register(DimOrderTorus, dimOrderTorus)).To(Succeed())

		f, err := r.Lookup(DimOrderTorus)
		Expect(err).NotTo(HaveOccurred())
		Expect(sameFunc(f, dimOrderTorus)).To(BeTrue())
	})

	It("should fail to look up a missing function", func() {
		_, err := r.Lookup("dim_order_mesh")
		Expect(err).To(MatchError(ErrFunctionNotFound))
	})

	It("should reject empty names, nil functions and duplicates", func() {
		Expect(r.Register("", dimOrderTorus)).NotTo(Succeed())
		Expect(r.Register("nil_func", nil)).NotTo(Succeed())

		Expect(r.Register(DimOrderTorus, dimOrderTorus)).To(Succeed())
		Expect(r.Register(DimOrderTorus, chaosTorus)).
			To(MatchError(ErrAlreadyRegistered))
	})

	It("should alias to the identical function", func() {
		Expect(r.Register(DimOrderTorus, dimOrderTorus)).To(Succeed())
		Expect(r.Alias("dim_order_alias", DimOrderTorus)).To(Succeed())

		f, err := r.Lookup("dim_order_alias")
		Expect(err).NotTo(HaveOccurred())
		Expect(sameFunc(f, dimOrderTorus)).To(BeTrue())
	})

	It("should fail to alias a missing function", func() {
		err := r.Alias("dim_order_alias", DimOrderTorus)
		Expect(err).To(MatchError(ErrFunctionNotFound))
		Expect(r.Names()).To(BeEmpty())
	})

	It("should not register any alias when one base is missing", func() {
		Expect(r.Register(DimOrderTorus, dimOrderTorus)).To(Succeed())

		err := r.AliasAll(map[string]string{
			"a_alias": DimOrderTorus,
			"b_alias": ChaosTorus,
		})

		Expect(err).To(MatchError(ErrFunctionNotFound))
		Expect(r.Names()).To(Equal([]string{DimOrderTorus}))
	})

	It("should refuse to overwrite with an alias", func() {
		Expect(r.Register(DimOrderTorus, dimOrderTorus)).To(Succeed())
		Expect(r.Register(ChaosTorus, chaosTorus)).To(Succeed())

		Expect(r.Alias(ChaosTorus, DimOrderTorus)).
			To(MatchError(ErrAlreadyRegistered))
	})

	It("should list names in order", func() {
		Expect(RegisterTorusFunctions(r)).To(Succeed())

		Expect(r.Names()).To(Equal([]string{
			ChaosTorus,
			DimOrderBalTorus,
			DimOrderNITorus,
			DimOrderTorus,
			MinAdaptTorus,
			ValiantNITorus,
			ValiantTorus,
		}))
	})

	It("should not register the torus family twice", func() {
		Expect(RegisterTorusFunctions(r)).To(Succeed())
		Expect(RegisterTorusFunctions(r)).To(MatchError(ErrAlreadyRegistered))
	})
})
