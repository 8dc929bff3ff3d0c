// Package sorteddeque provides a sorted double-ended sequence of intrusive
// records with soft deletion. Records are expected to arrive in roughly
// ascending key order and to be removed from the middle of the sequence long
// before they would reach an end, as with expiring orders or completed
// requests. Interior removal tombstones the record in place in O(1) rather
// than shifting the store; tombstones are physically dropped only when a run
// of them reaches the front or back, so the ends of the raw store are always
// live. Lookup is a binary search over the raw store, which stays sorted
// through tombstones. A QuickKey remembers a found position for O(1) revisit.
//
// The container is not safe for concurrent use.
package sorteddeque
