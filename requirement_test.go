package authorize_test

import (
	. "github.com/onsi/ginkgo"
	. "github.com/onsi/gomega"

	. "github.com/supremind/authorize"
	"github.com/supremind/authorize/types"
)

var _ = Describe("requirement", func() {
	It("builds single permission demands", func() {
		Expect(Read().Actions()).To(Equal([]types.Action{types.Read}))
		Expect(Update().Actions()).To(Equal([]types.Action{types.Update}))
		Expect(Delete().Actions()).To(Equal([]types.Action{types.Delete}))
	})

	It("carries the model kind on create demands", func() {
		r := Create("articles")
		Expect(r.Actions()).To(Equal([]types.Action{types.Create}))
		Expect(r.Models()).To(Equal([]types.Kind{"articles"}))
	})

	It("normalizes absent inputs to empty lists", func() {
		r := Permission()
		Expect(r.Actions()).To(BeEmpty())
		Expect(r.Roles()).To(BeEmpty())
		Expect(r.Groups()).To(BeEmpty())
		Expect(r.Models()).To(BeEmpty())
	})

	It("keeps the given order of bypass names", func() {
		r := HasRole("admin", "ops").Merge(InGroup("staff"))
		Expect(r.Roles()).To(Equal([]string{"admin", "ops"}))
		Expect(r.Groups()).To(Equal([]string{"staff"}))
	})

	Describe("merge", func() {
		It("concatenates field-wise, duplicates kept", func() {
			merged := Permission(types.Read, types.Update).Merge(Permission(types.Read))
			Expect(merged.Actions()).To(Equal([]types.Action{types.Read, types.Update, types.Read}))
		})

		It("leaves the originals untouched", func() {
			left := Read()
			right := Update()
			left.Merge(right)
			Expect(left.Actions()).To(Equal([]types.Action{types.Read}))
			Expect(right.Actions()).To(Equal([]types.Action{types.Update}))
		})

		It("tolerates a nil right hand side", func() {
			Expect(Read().Merge(nil).Actions()).To(Equal([]types.Action{types.Read}))
		})

		It("is associative on the concatenated fields", func() {
			ab := Read().Merge(Update()).Merge(HasRole("admin"))
			bc := Read().Merge(Update().Merge(HasRole("admin")))
			Expect(ab.Actions()).To(Equal(bc.Actions()))
			Expect(ab.Roles()).To(Equal(bc.Roles()))
		})
	})

	It("hands out copies, not its own slices", func() {
		r := Permission(types.Read, types.Update)
		got := r.Actions()
		got[0] = types.Delete
		Expect(r.Actions()).To(Equal([]types.Action{types.Read, types.Update}))
	})
})
