package sorteddeque

import "iter"

// All is the live view: every record not tombstoned, front to back, keys
// ascending. Mutating the deque during iteration invalidates the iteration.
func (me *Deque[K, T]) All() iter.Seq[T] {
	return func(yield func(T) bool) {
		// The ends are live by invariant, so no skipping is needed to start
		// or finish a walk. Assert that instead of scanning.
		me.checkEndsLive()
		for i := 0; i < me.raw.Len(); i++ {
			t := me.raw.At(i)
			if t.Deleted() {
				continue
			}
			if !yield(t) {
				return
			}
		}
	}
}

// Backward is the live view in reverse, keys descending.
func (me *Deque[K, T]) Backward() iter.Seq[T] {
	return func(yield func(T) bool) {
		me.checkEndsLive()
		for i := me.raw.Len() - 1; i >= 0; i-- {
			t := me.raw.At(i)
			if t.Deleted() {
				continue
			}
			if !yield(t) {
				return
			}
		}
	}
}

// From yields live records from a handle's position to the back. A handle
// that has gone stale, by its record being tombstoned or by trimming moving
// it out of range, yields nothing.
func (me *Deque[K, T]) From(qk QuickKey) iter.Seq[T] {
	return func(yield func(T) bool) {
		if !qk.Valid() {
			return
		}
		i := qk.index()
		if i >= me.raw.Len() || me.raw.At(i).Deleted() {
			return
		}
		for ; i < me.raw.Len(); i++ {
			t := me.raw.At(i)
			if t.Deleted() {
				continue
			}
			if !yield(t) {
				return
			}
		}
	}
}

// Iterate calls f for each live record in order until f returns false.
func (me *Deque[K, T]) Iterate(f func(T) bool) {
	me.All()(f)
}

// Keys yields the keys of the live view in ascending order.
func (me *Deque[K, T]) Keys() iter.Seq[K] {
	return func(yield func(K) bool) {
		for t := range me.All() {
			if !yield(t.Key()) {
				return
			}
		}
	}
}
