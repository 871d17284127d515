package hashlist

import (
	"hash/maphash"
	"math/rand/v2"
	"slices"
	"testing"

	. "github.com/onsi/gomega"
)

// checkConsistent verifies that the ring and the table describe the
// same set of entries and that every cached hash is valid.
func checkConsistent[V comparable](g *WithT, l *List[V]) {
	n := l.ring.Len()

	onRing := make(map[*entry[V]]bool, n)
	if n > 0 {
		e := l.ring.Front()
		for i := 0; i < n; i++ {
			onRing[e] = true
			e = e.Next()
		}
		g.Expect(e == l.ring.Front()).To(BeTrue(), "walking the ring wraps around")
	}
	g.Expect(onRing).To(HaveLen(n), "ring entries are distinct")

	inTable := 0
	for i, head := range l.table {
		for e := head; e != nil; e = e.chain {
			inTable++
			g.Expect(onRing[e]).To(BeTrue(), "bucket entry is on the ring")
			g.Expect(l.bucketIndex(e.hash)).To(Equal(i), "entry is in its hash bucket")
			g.Expect(maphash.Comparable(l.seed, e.value)).To(Equal(e.hash), "cached hash matches the value")
		}
	}
	g.Expect(inTable).To(Equal(n), "table holds every entry exactly once")
}

func TestTableGrowth(t *testing.T) {
	g := NewWithT(t)

	l := New[int]()
	g.Expect(l.table).To(HaveLen(16))

	for i := 0; i < 100; i++ {
		l.PushBack(i)
	}

	g.Expect(l.table).To(HaveLen(256))
	checkConsistent(g, l)

	for i := 0; i < 100; i++ {
		g.Expect(l.Get(i)).To(Equal(i), "order is preserved across growth")
	}
}

func TestTableSizedUpfront(t *testing.T) {
	g := NewWithT(t)

	values := make([]int, 50)
	for i := range values {
		values[i] = i
	}

	l := Of(values...)

	g.Expect(l.table).To(HaveLen(128))
	checkConsistent(g, l)
}

func TestClearKeepsTable(t *testing.T) {
	g := NewWithT(t)

	l := New[int]()
	for i := 0; i < 100; i++ {
		l.PushBack(i)
	}

	l.Clear()

	g.Expect(l.Len()).To(Equal(0))
	g.Expect(l.table).To(HaveLen(256))
	checkConsistent(g, l)
}

func TestSetRelocation(t *testing.T) {
	g := NewWithT(t)

	l := Of(0, 1, 2, 3, 4)

	for i := 0; i < 100; i++ {
		l.Set(i%5, 100+i)
		checkConsistent(g, l)
	}
}

func TestRandomizedOps(t *testing.T) {
	g := NewWithT(t)

	r := rand.New(rand.NewPCG(1, 2))
	l := New[int]()
	model := []int{}

	for i := 0; i < 1000; i++ {
		v := r.IntN(50)

		switch r.IntN(8) {
		case 0:
			l.PushBack(v)
			model = append(model, v)

		case 1:
			l.PushFront(v)
			model = slices.Insert(model, 0, v)

		case 2:
			at := r.IntN(len(model) + 1)
			l.Insert(at, v)
			model = slices.Insert(model, at, v)

		case 3:
			if len(model) > 0 {
				at := r.IntN(len(model))
				g.Expect(l.RemoveAt(at)).To(Equal(model[at]))
				model = slices.Delete(model, at, at+1)
			}

		case 4:
			at := slices.Index(model, v)
			g.Expect(l.RemoveFirst(v)).To(Equal(at >= 0))
			if at >= 0 {
				model = slices.Delete(model, at, at+1)
			}

		case 5:
			if len(model) > 0 {
				at := r.IntN(len(model))
				g.Expect(l.Set(at, v)).To(Equal(model[at]))
				model[at] = v
			}

		case 6:
			if len(model) > 0 {
				g.Expect(l.MustPopFront()).To(Equal(model[0]))
				model = model[1:]
			}

		case 7:
			if len(model) > 0 {
				g.Expect(l.MustPopBack()).To(Equal(model[len(model)-1]))
				model = model[:len(model)-1]
			}
		}

		g.Expect(l.Values()).To(Equal(model))
		g.Expect(l.Contains(v)).To(Equal(slices.Contains(model, v)))

		if i%100 == 0 {
			checkConsistent(g, l)
		}
	}

	checkConsistent(g, l)
}
