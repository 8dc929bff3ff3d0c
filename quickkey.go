package sorteddeque

// QuickKey is a positional handle into a Deque's raw store, for O(1) revisit
// of a record found earlier. It caches a raw index; it is not a sort key.
//
// Any operation that removes records from either end of the deque shifts the
// surviving raw indexes and leaves existing QuickKeys stale. Interior
// tombstoning does not shift anything, so handles survive it, though the
// record they address may no longer be live. Callers holding a handle across
// mutations must re-validate it, e.g. through Deque.From.
//
// The zero value is invalid.
type QuickKey struct {
	pos int // raw index + 1
}

func quickKeyAt(index int) QuickKey {
	return QuickKey{index + 1}
}

func (me QuickKey) Valid() bool { return me.pos > 0 }

// IsFront reports whether the handle addresses the first raw position.
func (me QuickKey) IsFront() bool { return me.pos == 1 }

func (me QuickKey) index() int { return me.pos - 1 }

// Less orders handles in reverse of raw position: a handle nearer the front
// sorts after one deeper into the deque, and invalid handles sort last. Only
// consistency matters to bookkeeping; nothing else depends on the direction.
func (me QuickKey) Less(other QuickKey) bool {
	return other.pos < me.pos
}
