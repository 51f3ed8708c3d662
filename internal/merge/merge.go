package merge

import (
	"localorie/internal/tree"
)

// Merge returns other deep-merged into base. Neither input is modified and
// the result shares no nodes with either.
func Merge(base, other *tree.Node) *tree.Node {
	return into(base.Clone(), other)
}

// All folds trees left to right into an empty mapping.
func All(trees ...*tree.Node) *tree.Node {
	f := NewFolder()
	for _, t := range trees {
		f.Add(t)
	}

	return f.Result()
}

// Folder accumulates trees in order; later trees win on conflicts.
type Folder struct {
	acc   *tree.Node
	count int
}

// NewFolder returns a Folder holding an empty mapping.
func NewFolder() *Folder {
	return &Folder{acc: tree.NewMapping()}
}

// Add merges t into the accumulator. t is not modified or retained.
func (f *Folder) Add(t *tree.Node) {
	f.acc = into(f.acc, t)
	f.count++
}

// Count returns how many trees have been added.
func (f *Folder) Count() int {
	return f.count
}

// Result returns the accumulated tree. Later calls to Add modify it.
func (f *Folder) Result() *tree.Node {
	return f.acc
}

// into merges other into dst, which the caller owns, and returns the
// merged node. Nodes taken from other are cloned.
func into(dst, other *tree.Node) *tree.Node {
	switch {
	case dst.Kind() == tree.KindMapping && other.Kind() == tree.KindMapping:
		for _, e := range other.Entries() {
			cur, ok := dst.Get(e.Key)
			if !ok {
				if !e.Value.IsAbsent() {
					dst.Set(e.Key, e.Value.Clone())
				}

				continue
			}

			dst.Set(e.Key, into(cur, e.Value))
		}

		return dst
	case dst.Kind() == tree.KindSequence && other.Kind() == tree.KindSequence:
		return union(dst, other)
	case other.IsAbsent():
		return dst
	default:
		return other.Clone()
	}
}

// union returns the items of dst followed by the items of other, keeping
// only the first of any equal items.
func union(dst, other *tree.Node) *tree.Node {
	var kept []*tree.Node

	add := func(n *tree.Node, clone bool) {
		for _, seen := range kept {
			if tree.Equal(seen, n) {
				return
			}
		}

		if clone {
			n = n.Clone()
		}

		kept = append(kept, n)
	}

	for _, item := range dst.Items() {
		add(item, false)
	}

	for _, item := range other.Items() {
		add(item, true)
	}

	return tree.NewSequence(kept...)
}
