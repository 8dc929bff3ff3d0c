package sorteddeque

import (
	"math/rand"
	"testing"

	"github.com/bradfitz/iter"
)

func BenchmarkPushBackInOrder(b *testing.B) {
	var d testDeque
	for i := range iter.N(b.N) {
		d.PushBack(&testOrder{id: int64(i)})
	}
}

func BenchmarkFind(b *testing.B) {
	var d testDeque
	const n = 1 << 16
	for i := range iter.N(n) {
		d.PushBack(&testOrder{id: int64(i)})
	}
	rng := rand.New(rand.NewSource(42))
	b.ResetTimer()
	for range iter.N(b.N) {
		d.Find(int64(rng.Intn(2 * n)))
	}
}

func BenchmarkFindQuickFront(b *testing.B) {
	d := dequeOf(1, 2, 3, 4, 5)
	b.ResetTimer()
	for range iter.N(b.N) {
		d.FindQuick(1)
	}
}

// FIFO-ish churn: grow at the back while retiring interior records and the
// front in alternation, the workload the tombstone design is for.
func BenchmarkChurn(b *testing.B) {
	var d testDeque
	next := int64(0)
	for ; next < 1024; next++ {
		d.PushBack(&testOrder{id: next})
	}
	b.ResetTimer()
	for i := range iter.N(b.N) {
		d.PushBack(&testOrder{id: next})
		if i%2 == 0 {
			d.Erase(next - 512)
		} else if !d.Empty() {
			d.PopFront()
		}
		next++
	}
}
