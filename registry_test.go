package authorize_test

import (
	"sync"

	. "github.com/onsi/ginkgo"
	. "github.com/onsi/gomega"

	. "github.com/supremind/authorize"
	"github.com/supremind/authorize/types"
)

var _ = Describe("registry", func() {
	var reg *Registry

	BeforeEach(func() {
		reg = NewRegistry()
	})

	It("issues distinct handles", func() {
		seen := make(map[Handle]struct{})
		for i := 0; i < 100; i++ {
			h := reg.Declare()
			Expect(seen).NotTo(HaveKey(h))
			seen[h] = struct{}{}
		}
	})

	It("stores the first registration as given", func() {
		h := reg.Declare()
		reg.Register(h, Read())

		got, ok := reg.Lookup(h)
		Expect(ok).To(BeTrue())
		Expect(got.Actions()).To(Equal([]types.Action{types.Read}))
	})

	It("merges repeated registrations in order, duplicates kept", func() {
		h := reg.Declare()
		reg.Register(h, Permission(types.Read, types.Update))
		reg.Register(h, Permission(types.Read))
		reg.Register(h, HasRole("admin"))

		got, _ := reg.Lookup(h)
		Expect(got.Actions()).To(Equal([]types.Action{types.Read, types.Update, types.Read}))
		Expect(got.Roles()).To(Equal([]string{"admin"}))
	})

	It("keeps separately declared call sites apart", func() {
		h1, h2 := reg.Declare(), reg.Declare()
		reg.Register(h1, Read())
		reg.Register(h2, Update())

		got1, _ := reg.Lookup(h1)
		got2, _ := reg.Lookup(h2)
		Expect(got1.Actions()).To(Equal([]types.Action{types.Read}))
		Expect(got2.Actions()).To(Equal([]types.Action{types.Update}))
	})

	It("misses unknown handles", func() {
		_, ok := reg.Lookup(Handle("nope"))
		Expect(ok).To(BeFalse())
	})

	It("does not let later registrations mutate earlier lookups", func() {
		h := reg.Declare()
		reg.Register(h, Read())
		before, _ := reg.Lookup(h)

		reg.Register(h, Update())
		Expect(before.Actions()).To(Equal([]types.Action{types.Read}))
	})

	It("takes concurrent registrations", func() {
		h := reg.Declare()
		var wg sync.WaitGroup
		for i := 0; i < 8; i++ {
			wg.Add(1)
			go func() {
				defer wg.Done()
				reg.Register(h, Read())
			}()
		}
		wg.Wait()

		got, _ := reg.Lookup(h)
		Expect(got.Actions()).To(HaveLen(8))
	})
})
