package tree

// Tag sets File on every leaf reachable from n, overwriting any previous
// value. Tag returns n.
func Tag(n *Node, file string) *Node {
	switch n.Kind() {
	case KindMapping:
		for _, e := range n.entries {
			Tag(e.Value, file)
		}
	case KindSequence:
		for _, item := range n.items {
			Tag(item, file)
		}
	case KindLeaf:
		n.leaf.File = file
	}

	return n
}

// Walk calls fn for every leaf under n with the keys leading to it.
// Sequence positions are not part of the path.
func Walk(n *Node, fn func(path []string, leaf Leaf)) {
	walk(n, nil, fn)
}

func walk(n *Node, path []string, fn func([]string, Leaf)) {
	switch n.Kind() {
	case KindMapping:
		for _, e := range n.entries {
			walk(e.Value, append(path[:len(path):len(path)], e.Key), fn)
		}
	case KindSequence:
		for _, item := range n.items {
			walk(item, path, fn)
		}
	case KindLeaf:
		fn(path, n.leaf)
	}
}
