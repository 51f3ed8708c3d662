package tree

// Wrap converts every scalar under n into a leaf record in place. The
// leaf's line is the scalar's zero-based mark plus one. Wrap returns n.
func Wrap(n *Node) *Node {
	switch n.Kind() {
	case KindMapping:
		for _, e := range n.entries {
			Wrap(e.Value)
		}
	case KindSequence:
		for _, item := range n.items {
			Wrap(item)
		}
	case KindScalar:
		n.leaf = Leaf{
			Value: n.scalar.Text,
			Null:  n.scalar.Null,
			Line:  n.scalar.Mark + 1,
		}
		n.scalar = Scalar{}
		n.kind = KindLeaf
	}

	return n
}
