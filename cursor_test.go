package chainy_test

import (
	"github.com/mgnsk/chainy"
	. "github.com/onsi/ginkgo"
	. "github.com/onsi/ginkgo/extensions/table"
	. "github.com/onsi/gomega"
)

func values[V comparable](l *chainy.List[V]) []V {
	var vals []V
	for v := range l.All() {
		vals = append(vals, v)
	}
	return vals
}

func deref(ps []*int) []int {
	vals := make([]int, 0, len(ps))
	for _, p := range ps {
		vals = append(vals, *p)
	}
	return vals
}

var _ = Describe("a list of three items", func() {
	var (
		items []int
		l     *chainy.List[*int]
	)

	BeforeEach(func() {
		items = newItems(12)
		l = chainy.New[*int]()

		for i := 0; i < 3; i++ {
			Expect(l.Add(&items[i])).To(Succeed())
		}
	})

	AfterEach(func() {
		l.Destroy()
		Expect(l.IsEmpty()).To(BeTrue())
	})

	Specify("it has three nodes", func() {
		Expect(l.IsEmpty()).To(BeFalse())
		Expect(l.Length()).To(Equal(3))
		Expect(deref(values(l))).To(Equal([]int{0, 1, 2}))
	})

	Specify("the cursor is at the last node", func() {
		Expect(l.AtFirst()).To(BeFalse())
		Expect(l.AtLast()).To(BeTrue())
		Expect(l.Next()).To(BeNil())
		Expect(*l.First().Value).To(Equal(0))
		Expect(*l.Last().Value).To(Equal(2))
	})

	Specify("stepping from the first node visits every node", func() {
		Expect(*l.ToFirst().Value).To(Equal(0))
		Expect(l.AtFirst()).To(BeTrue())
		Expect(l.AtLast()).To(BeFalse())

		Expect(*l.ToNext().Value).To(Equal(1))
		Expect(*l.ToNext().Value).To(Equal(2))
		Expect(l.ToNext()).To(BeNil())

		v, ok := l.Data()
		Expect(ok).To(BeTrue())
		Expect(*v).To(Equal(2))
	})

	Specify("moving to the last node", func() {
		l.ToFirst()
		Expect(l.AtLast()).To(BeFalse())

		Expect(*l.ToLast().Value).To(Equal(2))
		Expect(l.AtLast()).To(BeTrue())
	})

	When("the middle node is removed", func() {
		BeforeEach(func() {
			Expect(l.Remove(&items[1])).To(BeTrue())
		})

		Specify("the remaining nodes stay linked", func() {
			Expect(l.Length()).To(Equal(2))
			Expect(deref(values(l))).To(Equal([]int{0, 2}))
		})

		Specify("the cursor stays on the last node", func() {
			Expect(*l.Current().Value).To(Equal(2))
			Expect(l.AtLast()).To(BeTrue())
		})

		Specify("removing a missing item reports false", func() {
			Expect(l.Remove(&items[10])).To(BeFalse())
			Expect(l.Length()).To(Equal(2))
		})

		Specify("find positions the cursor", func() {
			l.ToFirst()
			Expect(l.Add(&items[1])).To(Succeed())
			Expect(deref(values(l))).To(Equal([]int{1, 0, 2}))

			l.ToLast()
			l.SetLink(l.Head())
			Expect(l.AtFirst()).To(BeTrue())

			_, ok := l.Find(compareInts, &items[10])
			Expect(ok).To(BeFalse())

			k, ok := l.Find(compareInts, &items[2])
			Expect(ok).To(BeTrue())

			l.SetLink(k)
			Expect(l.AtLast()).To(BeTrue())
			Expect(l.AtFirst()).To(BeFalse())
		})
	})

	When("the old first node is removed after adding at the head", func() {
		Specify("the cursor designates a valid node", func() {
			l.ToFirst()
			Expect(l.Add(&items[5])).To(Succeed())
			Expect(*l.Next().Value).To(Equal(0))

			Expect(l.Remove(&items[0])).To(BeTrue())

			Expect(l.Current()).NotTo(BeNil())
			Expect(*l.Current().Value).To(Equal(5))
			Expect(*l.Next().Value).To(Equal(1))
			Expect(deref(values(l))).To(Equal([]int{5, 1, 2}))
		})
	})

	When("the list is cleared", func() {
		BeforeEach(func() {
			l.Clear()
		})

		Specify("it behaves as a new list", func() {
			Expect(l.IsEmpty()).To(BeTrue())
			Expect(l.Length()).To(BeZero())
			Expect(l.ToLast()).To(BeNil())
			Expect(l.Cursor() == l.Head()).To(BeTrue())
			Expect(values(l)).To(BeEmpty())
		})
	})

	Specify("each with increments every item in place", func() {
		chainy.EachWith(l, func(n *chainy.Node[*int], env *int) {
			if env == nil {
				*n.Value++
			}
		}, (*int)(nil))

		Expect(items[:3]).To(Equal([]int{1, 2, 3}))

		k := l.Head()
		for v := range k.Values() {
			*v--
		}

		Expect(items[:3]).To(Equal([]int{0, 1, 2}))
	})
})

var _ = DescribeTable("allocators",
	func(opt chainy.Option[int]) {
		l := chainy.New(opt)
		defer l.Destroy()

		for i := 0; i < 4; i++ {
			Expect(l.Add(i % 2)).To(Succeed())
		}

		Expect(l.Remove(0)).To(BeTrue())
		Expect(values(l)).To(Equal([]int{1, 1}))
		Expect(l.AtLast()).To(BeTrue())

		Expect(l.Add(2)).To(Succeed())
		Expect(values(l)).To(Equal([]int{1, 1, 2}))

		l.Clear()
		Expect(l.Add(3)).To(Succeed())
		Expect(values(l)).To(Equal([]int{3}))
	},
	Entry("heap", chainy.WithAllocator(chainy.HeapAllocator[int]())),
	Entry("pool", chainy.WithPool[int]()),
	Entry("arena", chainy.WithCapacity[int](4)),
)
