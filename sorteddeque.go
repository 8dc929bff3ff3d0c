package sorteddeque

import (
	"cmp"
	"iter"
	"slices"
	"sort"

	g "github.com/anacrolix/generics"
	"github.com/anacrolix/missinggo/v2/panicif"
	"github.com/gammazero/deque"
)

// Deque is a sorted sequence of records with O(1) amortized push and pop at
// both ends, binary-search lookup, and O(1) interior removal by tombstoning.
// The raw store may contain tombstoned records between the ends; both ends
// themselves are always live. The zero value is an empty deque ready for use.
//
// Keys must be unique against every record still physically present,
// tombstoned or not: a tombstoned key is still a comparison operand for
// binary search.
type Deque[K cmp.Ordered, T Record[K]] struct {
	raw deque.Deque[T]
	// Tombstoned records, all of them strictly between the raw ends. Trimming
	// keeps the ends live.
	numDeleted int
}

// Len is the number of live records.
func (me *Deque[K, T]) Len() int {
	raw := me.raw.Len()
	if raw <= 1 {
		panicif.NotZero(me.numDeleted)
		return raw
	}
	// Both ends are live, so at least two records remain.
	net := raw - me.numDeleted
	panicif.LessThan(net, 2)
	return net
}

// RawLen is the size of the raw store, tombstones included.
func (me *Deque[K, T]) RawLen() int {
	return me.raw.Len()
}

func (me *Deque[K, T]) Empty() bool {
	return me.raw.Len() == 0
}

// Front returns the first record, which is live per the trimming invariant.
// The deque must not be empty.
func (me *Deque[K, T]) Front() T {
	t := me.raw.Front()
	panicif.True(t.Deleted())
	return t
}

// Back returns the last record, which is live per the trimming invariant.
// The deque must not be empty.
func (me *Deque[K, T]) Back() T {
	t := me.raw.Back()
	panicif.True(t.Deleted())
	return t
}

// PushBack appends a record whose key is expected to exceed the current back
// key. If it doesn't (arrivals are only approximately ordered), the record is
// relocated to its sorted slot with an O(n) interior insert instead. A key
// equal to the current back key, or to any key still physically present, is a
// caller error.
func (me *Deque[K, T]) PushBack(t T) {
	panicif.True(t.Deleted())
	if me.raw.Len() != 0 {
		prev := me.raw.Back()
		panicif.True(prev.Deleted())
		if t.Key() <= prev.Key() {
			panicif.Eq(t.Key(), prev.Key())
			i := me.lowerBound(me.raw.Len(), t.Key())
			// The slot found must hold a strictly greater key or the push
			// was in order after all.
			panicif.LessThanOrEqual(me.raw.At(i).Key(), t.Key())
			me.raw.Insert(i, t)
			return
		}
	}
	me.raw.PushBack(t)
}

// PushFront prepends a record. Unlike PushBack there is no out-of-order
// correction here: the key must be strictly below the current front key.
func (me *Deque[K, T]) PushFront(t T) {
	panicif.True(t.Deleted())
	if me.raw.Len() != 0 {
		front := me.raw.Front()
		panicif.True(front.Deleted())
		panicif.LessThanOrEqual(front.Key(), t.Key())
	}
	me.raw.PushFront(t)
}

// PopFront removes the front record. The front is live by invariant; popping
// an empty deque is a caller error.
func (me *Deque[K, T]) PopFront() {
	panicif.True(me.raw.Front().Deleted())
	me.raw.PopFront()
	me.trimFront()
}

// PopBack removes the back record. The back is live by invariant; popping an
// empty deque is a caller error.
func (me *Deque[K, T]) PopBack() {
	panicif.True(me.raw.Back().Deleted())
	me.raw.PopBack()
	me.trimBack()
}

// Find returns the live record with key k. A tombstoned record with that key
// is logically absent.
func (me *Deque[K, T]) Find(k K) (_ g.Option[T]) {
	if i, ok := me.findRaw(k); ok {
		if t := me.raw.At(i); !t.Deleted() {
			return g.Some(t)
		}
	}
	return
}

// FindQuick returns a positional handle for the record with key k, checking
// the front in O(1) before falling back to binary search: FIFO-style
// consumers mostly ask for the front key. The handle is invalid if the key is
// absent from the raw store. It may address a tombstoned record; resolve it
// through From, or check Deleted on At's result.
func (me *Deque[K, T]) FindQuick(k K) QuickKey {
	if me.raw.Len() != 0 {
		if me.Front().Key() == k {
			return quickKeyAt(0)
		}
		if i, ok := me.findRaw(k); ok {
			return quickKeyAt(i)
		}
	}
	return QuickKey{}
}

// At resolves a handle directly against the raw store: O(1), no search, no
// liveness check. Re-validating a handle after front or back mutations is the
// caller's problem; an invalid or out-of-range handle panics.
func (me *Deque[K, T]) At(qk QuickKey) T {
	return me.raw.At(qk.index())
}

// Erase tombstones the record with key k and trims any tombstone run that now
// touches an end. Reports false if no live record has that key.
func (me *Deque[K, T]) Erase(k K) bool {
	if i, ok := me.findRaw(k); ok {
		return me.EraseRecord(me.raw.At(i))
	}
	return false
}

// EraseQuick tombstones the record a handle resolves to. The handle must
// address the raw store; one whose record was tombstoned in the meantime
// reports false rather than erasing twice.
func (me *Deque[K, T]) EraseQuick(qk QuickKey) bool {
	return me.EraseRecord(me.raw.At(qk.index()))
}

// EraseRecord tombstones a record held by this deque, such as one yielded by
// All. Reports false if it was already tombstoned: that's reachable only
// through a stale handle or a repeated erase, and is benign.
func (me *Deque[K, T]) EraseRecord(t T) bool {
	if t.Deleted() {
		// An already-tombstoned record is necessarily interior.
		panicif.LessThanOrEqual(me.raw.Len(), 1)
		panicif.Eq(me.numDeleted, 0)
		me.checkEndsLive()
		return false
	}
	t.MarkDeleted()
	panicif.False(t.Deleted())
	me.numDeleted++
	me.trimFront()
	me.trimBack()
	return true
}

// Clear drops every record, tombstoned or not.
func (me *Deque[K, T]) Clear() {
	me.raw.Clear()
	me.numDeleted = 0
}

// Assign rebuilds the deque from seq, skipping tombstoned input records. The
// live records yielded must have ascending keys.
func (me *Deque[K, T]) Assign(seq iter.Seq[T]) {
	me.Clear()
	for t := range seq {
		if t.Deleted() {
			continue
		}
		me.raw.PushBack(t)
	}
}

// CopyFrom replaces the contents with other's live view, compacted: this is
// the one operation that squeezes interior tombstones out. Records are shared
// with other, not duplicated, per the Record reference-semantics contract.
// Copying from itself compacts in place.
func (me *Deque[K, T]) CopyFrom(other *Deque[K, T]) {
	if other == me {
		live := slices.Collect(me.All())
		me.Clear()
		me.raw.Grow(len(live))
		for _, t := range live {
			me.raw.PushBack(t)
		}
		return
	}
	me.Clear()
	me.raw.Grow(other.Len())
	for t := range other.All() {
		me.raw.PushBack(t)
	}
}

func (me *Deque[K, T]) trimFront() {
	for me.raw.Len() != 0 && me.raw.Front().Deleted() {
		me.raw.PopFront()
		me.numDeleted--
	}
}

func (me *Deque[K, T]) trimBack() {
	for me.raw.Len() != 0 && me.raw.Back().Deleted() {
		me.raw.PopBack()
		me.numDeleted--
	}
}

func (me *Deque[K, T]) checkEndsLive() {
	if me.raw.Len() != 0 {
		panicif.True(me.raw.Front().Deleted())
		panicif.True(me.raw.Back().Deleted())
	}
}

// lowerBound returns the first raw index in [0, hi) whose key is not below k,
// or hi.
func (me *Deque[K, T]) lowerBound(hi int, k K) int {
	return sort.Search(hi, func(i int) bool {
		return me.raw.At(i).Key() >= k
	})
}

// findRaw binary-searches the whole raw store, tombstones included. A key
// beyond the raw back is rejected without searching: records cluster toward
// the back, and queries past it are common enough to short-circuit.
func (me *Deque[K, T]) findRaw(k K) (index int, ok bool) {
	n := me.raw.Len()
	if n == 0 || k > me.raw.Back().Key() {
		return
	}
	i := me.lowerBound(n, k)
	panicif.Eq(i, n)
	if me.raw.At(i).Key() == k {
		return i, true
	}
	return
}
