package tree

// Equal reports whether a and b hold the same values. Provenance is not
// compared: leaves are equal when their values are, whatever their line or
// file. Mapping equality ignores key order.
func Equal(a, b *Node) bool {
	if a == nil || b == nil {
		return a == b
	}

	if a.kind != b.kind {
		return false
	}

	switch a.kind {
	case KindMapping:
		if len(a.entries) != len(b.entries) {
			return false
		}

		for _, e := range a.entries {
			other, ok := b.Get(e.Key)
			if !ok || !Equal(e.Value, other) {
				return false
			}
		}

		return true
	case KindSequence:
		if len(a.items) != len(b.items) {
			return false
		}

		for i := range a.items {
			if !Equal(a.items[i], b.items[i]) {
				return false
			}
		}

		return true
	case KindScalar:
		return a.scalar.Null == b.scalar.Null && a.scalar.Text == b.scalar.Text
	case KindLeaf:
		return a.leaf.Null == b.leaf.Null && a.leaf.Value == b.leaf.Value
	default:
		return true
	}
}
