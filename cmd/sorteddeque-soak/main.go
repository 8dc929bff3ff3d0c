// Soaks a sorteddeque with a randomized workload, cross-checking the live
// view against a btree of the keys that should be live. Profiling is exposed
// somewhere if GOPPROF is set, thanks to the envpprof import.
package main

import (
	"fmt"
	"math/rand"
	"time"

	"github.com/anacrolix/envpprof"
	"github.com/anacrolix/log"
	"github.com/anacrolix/tagflag"
	"github.com/dustin/go-humanize"
	"github.com/tidwall/btree"

	"github.com/anacrolix/sorteddeque"
)

type record struct {
	key     int64
	deleted bool
}

func (me *record) Key() int64    { return me.key }
func (me *record) Deleted() bool { return me.deleted }
func (me *record) MarkDeleted()  { me.deleted = true }

func main() {
	defer envpprof.Stop()
	flags := struct {
		Ops   int64
		Seed  int64
		Check int64
	}{
		Ops:   1_000_000,
		Seed:  42,
		Check: 100_000,
	}
	tagflag.Parse(&flags)
	rng := rand.New(rand.NewSource(flags.Seed))
	var d sorteddeque.Deque[int64, *record]
	model := btree.NewBTreeGOptions(func(a, b int64) bool {
		return a < b
	}, btree.Options{
		Degree:  32,
		NoLocks: true,
	})
	// Keys are never reused: keys still physically present as tombstones are
	// still binary-search operands.
	nextKey := int64(1 << 30)
	frontKey := nextKey - 1
	started := time.Now()
	for op := int64(0); op < flags.Ops; op++ {
		switch rng.Intn(10) {
		case 0, 1, 2, 3, 4:
			nextKey += int64(1 + rng.Intn(8))
			d.PushBack(&record{key: nextKey})
			model.Set(nextKey)
		case 5:
			// Late arrival, delivered after a key above it.
			k1 := nextKey + int64(1+rng.Intn(8))
			k2 := k1 + int64(1+rng.Intn(8))
			nextKey = k2
			d.PushBack(&record{key: k2})
			model.Set(k2)
			d.PushBack(&record{key: k1})
			model.Set(k1)
		case 6:
			frontKey--
			d.PushFront(&record{key: frontKey})
			model.Set(frontKey)
		case 7, 8:
			if model.Len() != 0 {
				k, _ := model.GetAt(rng.Intn(model.Len()))
				if !d.Erase(k) {
					panic(fmt.Sprintf("key %v in model but not live", k))
				}
				model.Delete(k)
			}
		case 9:
			if !d.Empty() {
				k := d.Front().Key()
				d.PopFront()
				model.Delete(k)
			}
		}
		if (op+1)%flags.Check == 0 {
			verify(&d, model)
			log.Printf(
				"%v ops: %v live, %v raw",
				humanize.Comma(op+1),
				humanize.Comma(int64(d.Len())),
				humanize.Comma(int64(d.RawLen())))
		}
	}
	verify(&d, model)
	elapsed := time.Since(started)
	log.Printf(
		"%v ops in %v (%v ops/s)",
		humanize.Comma(flags.Ops),
		elapsed.Round(time.Millisecond),
		humanize.Comma(int64(float64(flags.Ops)/elapsed.Seconds())))
}

func verify(d *sorteddeque.Deque[int64, *record], model *btree.BTreeG[int64]) {
	if d.Len() != model.Len() {
		panic(fmt.Sprintf("%v live but model has %v", d.Len(), model.Len()))
	}
	want := make([]int64, 0, model.Len())
	model.Scan(func(k int64) bool {
		want = append(want, k)
		return true
	})
	i := 0
	for k := range d.Keys() {
		if k != want[i] {
			panic(fmt.Sprintf("live view diverged from model at %v: %v != %v", i, k, want[i]))
		}
		i++
	}
}
