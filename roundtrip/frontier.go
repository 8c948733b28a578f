package roundtrip

import (
	"github.com/tidwall/btree"

	"github.com/katalvlaran/loopway/spt"
)

// frontierItem is one queued entry. seq is the push order and breaks score
// ties, earlier first.
type frontierItem struct {
	score float64
	seq   uint64
	id    spt.ID
}

// frontierLess orders the best item first: higher score, then older.
func frontierLess(a, b frontierItem) bool {
	if a.score != b.score {
		return a.score > b.score
	}

	return a.seq < b.seq
}

// frontier is a bounded best-first set of entry IDs. Min() of the tree is
// the best item, Max() the worst.
type frontier struct {
	tree     *btree.BTreeG[frontierItem]
	capacity int
	seq      uint64
	evicted  int
}

func newFrontier(capacity int) *frontier {
	return &frontier{
		tree:     btree.NewBTreeGOptions(frontierLess, btree.Options{NoLocks: true}),
		capacity: capacity,
	}
}

// push inserts id. When full, the worst item leaves, which is the newcomer
// itself when it ranks last. Reports whether id was kept.
func (f *frontier) push(id spt.ID, score float64) bool {
	f.seq++
	it := frontierItem{score: score, seq: f.seq, id: id}
	if f.tree.Len() >= f.capacity {
		worst, ok := f.tree.Max()
		if ok && !frontierLess(it, worst) {
			f.evicted++
			return false
		}
		f.tree.PopMax()
		f.evicted++
	}
	f.tree.Set(it)

	return true
}

// pop removes and returns the best item.
func (f *frontier) pop() (spt.ID, bool) {
	it, ok := f.tree.PopMin()
	if !ok {
		return spt.NoEntry, false
	}

	return it.id, true
}

func (f *frontier) len() int { return f.tree.Len() }
