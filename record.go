package sorteddeque

import "cmp"

// Record is the capability a Deque requires of its element type. It's a
// structural constraint rather than a base type: the deletion flag lives
// inside the record, so tombstoning costs nothing beyond the mark.
//
// T is expected to have reference semantics, typically a pointer to a struct:
// MarkDeleted must be observable through every copy of the value held by the
// deque.
type Record[K cmp.Ordered] interface {
	// Key returns the sort key. It must not change while the record is live
	// inside a deque. A tombstoned record keeps reporting the key it died
	// with, which is what keeps binary search over the raw store valid.
	Key() K
	// Deleted reports whether the record has been tombstoned.
	Deleted() bool
	// MarkDeleted tombstones the record. Deleted must report true afterwards.
	MarkDeleted()
}
