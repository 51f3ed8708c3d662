package tree

// Entry is one key/value pair of a mapping.
type Entry struct {
	Key   string
	Value *Node
}

// Scalar is a parsed YAML scalar that has not been wrapped yet.
type Scalar struct {
	// Text is the scalar's source value.
	Text string
	// Null is true for null scalars ("~", "null" or an empty value).
	Null bool
	// Mark is the zero-based line the scalar starts on.
	Mark int
}

// Leaf is a leaf record: a terminal value with its provenance.
type Leaf struct {
	Value string
	Null  bool
	// Line is the one-based source line of the value.
	Line int
	// File identifies the source file. Empty until the tree is tagged.
	File string
}

// Node is a translation tree vertex. Use the constructors to build one.
type Node struct {
	kind    Kind
	entries []Entry
	index   map[string]int
	items   []*Node
	scalar  Scalar
	leaf    Leaf
}

// NewMapping returns an empty mapping node.
func NewMapping() *Node {
	return &Node{kind: KindMapping, index: map[string]int{}}
}

// NewSequence returns a sequence node holding items.
func NewSequence(items ...*Node) *Node {
	return &Node{kind: KindSequence, items: items}
}

// NewScalar returns a raw scalar node.
func NewScalar(s Scalar) *Node {
	return &Node{kind: KindScalar, scalar: s}
}

// NewLeaf returns a leaf record node.
func NewLeaf(l Leaf) *Node {
	return &Node{kind: KindLeaf, leaf: l}
}

// Undefined returns the explicit "no value" marker.
func Undefined() *Node {
	return &Node{kind: KindUndefined}
}

// Kind returns the node's variant. A nil node has no valid kind.
func (n *Node) Kind() Kind {
	if n == nil {
		return 0
	}

	return n.kind
}

// IsAbsent reports whether n stands for "no value": nil or Undefined.
func (n *Node) IsAbsent() bool {
	return n == nil || n.kind == KindUndefined
}

// Len returns the number of entries of a mapping or items of a sequence.
func (n *Node) Len() int {
	switch n.Kind() {
	case KindMapping:
		return len(n.entries)
	case KindSequence:
		return len(n.items)
	default:
		return 0
	}
}

// Get returns the value stored under key in a mapping.
func (n *Node) Get(key string) (*Node, bool) {
	if n.Kind() != KindMapping {
		return nil, false
	}

	i, ok := n.index[key]
	if !ok {
		return nil, false
	}

	return n.entries[i].Value, true
}

// Set stores value under key in a mapping. An existing key keeps its
// position; a new key is appended. Set panics on non-mapping nodes.
func (n *Node) Set(key string, value *Node) {
	if n.Kind() != KindMapping {
		panic("tree: Set on " + n.Kind().String() + " node")
	}

	if i, ok := n.index[key]; ok {
		n.entries[i].Value = value
		return
	}

	n.index[key] = len(n.entries)
	n.entries = append(n.entries, Entry{Key: key, Value: value})
}

// Keys returns the mapping's keys in order.
func (n *Node) Keys() []string {
	if n.Kind() != KindMapping {
		return nil
	}

	keys := make([]string, 0, len(n.entries))
	for _, e := range n.entries {
		keys = append(keys, e.Key)
	}

	return keys
}

// Entries returns a copy of the mapping's entries in order.
func (n *Node) Entries() []Entry {
	if n.Kind() != KindMapping {
		return nil
	}

	out := make([]Entry, len(n.entries))
	copy(out, n.entries)

	return out
}

// Items returns a copy of the sequence's items.
func (n *Node) Items() []*Node {
	if n.Kind() != KindSequence {
		return nil
	}

	out := make([]*Node, len(n.items))
	copy(out, n.items)

	return out
}

// Append adds items to the end of a sequence. Append panics on
// non-sequence nodes.
func (n *Node) Append(items ...*Node) {
	if n.Kind() != KindSequence {
		panic("tree: Append on " + n.Kind().String() + " node")
	}

	n.items = append(n.items, items...)
}

// Scalar returns the raw scalar of a KindScalar node.
func (n *Node) Scalar() (Scalar, bool) {
	if n.Kind() != KindScalar {
		return Scalar{}, false
	}

	return n.scalar, true
}

// Leaf returns the leaf record of a KindLeaf node.
func (n *Node) Leaf() (Leaf, bool) {
	if n.Kind() != KindLeaf {
		return Leaf{}, false
	}

	return n.leaf, true
}

// Lookup follows keys through nested mappings and returns the node found,
// or nil when any step is missing.
func (n *Node) Lookup(keys ...string) *Node {
	cur := n
	for _, k := range keys {
		next, ok := cur.Get(k)
		if !ok {
			return nil
		}

		cur = next
	}

	return cur
}

// Clone returns a deep copy of n.
func (n *Node) Clone() *Node {
	if n == nil {
		return nil
	}

	out := &Node{kind: n.kind, scalar: n.scalar, leaf: n.leaf}

	switch n.kind {
	case KindMapping:
		out.entries = make([]Entry, len(n.entries))
		out.index = make(map[string]int, len(n.entries))

		for i, e := range n.entries {
			out.entries[i] = Entry{Key: e.Key, Value: e.Value.Clone()}
			out.index[e.Key] = i
		}
	case KindSequence:
		out.items = make([]*Node, len(n.items))
		for i, item := range n.items {
			out.items[i] = item.Clone()
		}
	}

	return out
}
