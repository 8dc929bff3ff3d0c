package sorteddeque

import (
	"slices"
	"testing"

	"github.com/go-quicktest/qt"
)

func TestIterationSkipsTombstones(t *testing.T) {
	d := dequeOf(1, 2, 3, 4, 5)
	qt.Assert(t, qt.IsTrue(d.Erase(2)))
	qt.Assert(t, qt.IsTrue(d.Erase(4)))
	qt.Assert(t, qt.DeepEquals(liveKeys(d), []int64{1, 3, 5}))
	var back []int64
	for r := range d.Backward() {
		back = append(back, r.id)
	}
	qt.Assert(t, qt.DeepEquals(back, []int64{5, 3, 1}))
}

func TestIterateEarlyStop(t *testing.T) {
	d := dequeOf(1, 2, 3)
	var seen []int64
	d.Iterate(func(r *testOrder) bool {
		seen = append(seen, r.id)
		return len(seen) < 2
	})
	qt.Assert(t, qt.DeepEquals(seen, []int64{1, 2}))
}

func TestFrom(t *testing.T) {
	d := dequeOf(1, 2, 3, 4)
	qk := d.FindQuick(2)
	var keys []int64
	for r := range d.From(qk) {
		keys = append(keys, r.id)
	}
	qt.Assert(t, qt.DeepEquals(keys, []int64{2, 3, 4}))
	// A tombstone between the handle and the back is skipped.
	qt.Assert(t, qt.IsTrue(d.Erase(3)))
	keys = keys[:0]
	for r := range d.From(qk) {
		keys = append(keys, r.id)
	}
	qt.Assert(t, qt.DeepEquals(keys, []int64{2, 4}))
}

func TestFromStale(t *testing.T) {
	d := dequeOf(1, 2, 3)
	qk := d.FindQuick(2)
	qt.Assert(t, qt.IsTrue(d.EraseQuick(qk)))
	// The handle now addresses a tombstone.
	qt.Assert(t, qt.HasLen(slices.Collect(d.From(qk)), 0))
	// An invalid handle yields nothing rather than panicking.
	qt.Assert(t, qt.HasLen(slices.Collect(d.From(QuickKey{})), 0))
	// Trimming can leave a handle pointing past the raw store.
	deep := d.FindQuick(3)
	d.Clear()
	qt.Assert(t, qt.HasLen(slices.Collect(d.From(deep)), 0))
}

func TestLenMatchesIteration(t *testing.T) {
	d := dequeOf(1, 2, 3, 4, 5, 6)
	for _, k := range []int64{2, 5, 6} {
		qt.Assert(t, qt.IsTrue(d.Erase(k)))
		qt.Assert(t, qt.Equals(d.Len(), len(liveKeys(d))))
		qt.Assert(t, qt.IsTrue(slices.IsSorted(liveKeys(d))))
	}
}
