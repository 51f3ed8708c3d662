package annotate

import (
	"bytes"
	"errors"
	"fmt"
	"io"

	"gopkg.in/yaml.v3"

	"localorie/internal/tree"
)

const (
	tagNull  = "!!null"
	tagMerge = "!!merge"
)

// DefaultMaxAliasNodes bounds how many nodes alias expansion may create
// in one document.
const DefaultMaxAliasNodes = 100_000

// Parser builds line-annotated translation trees from YAML source.
type Parser struct {
	// MaxAliasNodes caps the nodes created by expanding aliases and merge
	// keys. Zero or less means DefaultMaxAliasNodes.
	MaxAliasNodes int
}

// NewParser returns a Parser with the default alias budget.
func NewParser() *Parser {
	return &Parser{MaxAliasNodes: DefaultMaxAliasNodes}
}

// Parse parses YAML data with a default Parser.
func Parse(data []byte) (*tree.Node, error) {
	return NewParser().Parse(data)
}

// Parse parses the first YAML document in data. Every scalar in the result
// is a tree.KindScalar node whose Mark is the zero-based line it starts on.
// An empty document yields an empty mapping.
func (p *Parser) Parse(data []byte) (*tree.Node, error) {
	return p.ParseReader(bytes.NewReader(data))
}

// ParseReader is like Parse but reads the document from r.
func (p *Parser) ParseReader(r io.Reader) (*tree.Node, error) {
	var doc yaml.Node

	err := yaml.NewDecoder(r).Decode(&doc)
	if errors.Is(err, io.EOF) {
		return tree.NewMapping(), nil
	}

	if err != nil {
		return nil, fmt.Errorf("failed to parse YAML: %w", err)
	}

	root := &doc
	if root.Kind == yaml.DocumentNode {
		if len(root.Content) == 0 {
			return tree.NewMapping(), nil
		}

		root = root.Content[0]
	}

	if isNull(resolve(root)) {
		return tree.NewMapping(), nil
	}

	limit := p.MaxAliasNodes
	if limit <= 0 {
		limit = DefaultMaxAliasNodes
	}

	b := &builder{active: map[*yaml.Node]bool{}, limit: limit}

	out, err := b.node(root)
	if err != nil {
		return nil, err
	}

	if out.Kind() != tree.KindMapping {
		return nil, fmt.Errorf("line %d: top-level value must be a mapping, got %s", root.Line, out.Kind())
	}

	return out, nil
}

// builder converts a yaml.v3 node graph into a tree.Node graph.
type builder struct {
	// active holds the anchors currently being expanded, to reject
	// self-referencing aliases.
	active map[*yaml.Node]bool
	// depth is the number of aliases being expanded around the current node.
	depth int
	// expanded counts nodes created under an alias; limit bounds it.
	expanded int
	limit    int
}

func (b *builder) node(y *yaml.Node) (*tree.Node, error) {
	if err := b.count(y); err != nil {
		return nil, err
	}

	switch y.Kind {
	case yaml.ScalarNode:
		return newScalar(y, y), nil
	case yaml.MappingNode:
		return b.mapping(y)
	case yaml.SequenceNode:
		return b.sequence(y)
	case yaml.AliasNode:
		return b.alias(y)
	case yaml.DocumentNode:
		if len(y.Content) == 0 {
			return tree.NewMapping(), nil
		}

		return b.node(y.Content[0])
	default:
		return nil, fmt.Errorf("line %d: unsupported YAML node kind %d", y.Line, y.Kind)
	}
}

// count charges one node against the alias budget when y is being built
// as part of an alias expansion.
func (b *builder) count(y *yaml.Node) error {
	if b.depth == 0 {
		return nil
	}

	b.expanded++
	if b.expanded > b.limit {
		return fmt.Errorf("line %d: alias expansion exceeds %d nodes", y.Line, b.limit)
	}

	return nil
}

func (b *builder) sequence(y *yaml.Node) (*tree.Node, error) {
	seq := tree.NewSequence()

	for _, item := range y.Content {
		n, err := b.node(item)
		if err != nil {
			return nil, err
		}

		seq.Append(n)
	}

	return seq, nil
}

// mapping converts a mapping node. Merge keys ("<<") are applied first so
// that explicit keys override merged ones wherever they appear.
func (b *builder) mapping(y *yaml.Node) (*tree.Node, error) {
	m := tree.NewMapping()

	if len(y.Content)%2 != 0 {
		return nil, fmt.Errorf("line %d: mapping has an odd number of nodes", y.Line)
	}

	for i := 0; i < len(y.Content); i += 2 {
		key, value := y.Content[i], y.Content[i+1]
		if !isMergeKey(key) {
			continue
		}

		if err := b.merge(m, value); err != nil {
			return nil, err
		}
	}

	for i := 0; i < len(y.Content); i += 2 {
		key, value := y.Content[i], y.Content[i+1]
		if isMergeKey(key) {
			continue
		}

		name, err := keyText(key)
		if err != nil {
			return nil, err
		}

		n, err := b.node(value)
		if err != nil {
			return nil, fmt.Errorf("key %q: %w", name, err)
		}

		m.Set(name, n)
	}

	return m, nil
}

// merge splices the mappings referenced by a merge key value into m.
// Earlier sources win over later ones, and keys already in m are kept.
func (b *builder) merge(m *tree.Node, value *yaml.Node) error {
	sources := []*yaml.Node{value}
	if v := resolve(value); v.Kind == yaml.SequenceNode {
		sources = v.Content
	}

	for _, src := range sources {
		if resolve(src).Kind != yaml.MappingNode {
			return fmt.Errorf("line %d: merge key value must be a mapping or a sequence of mappings", src.Line)
		}

		n, err := b.node(src)
		if err != nil {
			return err
		}

		for _, e := range n.Entries() {
			if _, ok := m.Get(e.Key); !ok {
				m.Set(e.Key, e.Value)
			}
		}
	}

	return nil
}

// alias expands a copy of the anchored node. A scalar reached through an
// alias is marked at the line where the alias is used.
func (b *builder) alias(y *yaml.Node) (*tree.Node, error) {
	target := y.Alias
	if target == nil {
		return nil, fmt.Errorf("line %d: unknown anchor %q", y.Line, y.Value)
	}

	if b.active[target] {
		return nil, fmt.Errorf("line %d: anchor %q references itself", y.Line, y.Value)
	}

	if target.Kind == yaml.ScalarNode {
		return newScalar(target, y), nil
	}

	b.active[target] = true
	b.depth++

	defer func() {
		delete(b.active, target)
		b.depth--
	}()

	return b.node(target)
}

// newScalar builds a raw scalar from the value of y, marked at the line
// where at starts. yaml.v3 lines are one-based; marks are zero-based.
func newScalar(y, at *yaml.Node) *tree.Node {
	return tree.NewScalar(tree.Scalar{
		Text: y.Value,
		Null: isNull(y),
		Mark: max(at.Line-1, 0),
	})
}

func keyText(key *yaml.Node) (string, error) {
	k := resolve(key)
	if k.Kind != yaml.ScalarNode {
		return "", fmt.Errorf("line %d: mapping keys must be scalars", key.Line)
	}

	return k.Value, nil
}

func isMergeKey(key *yaml.Node) bool {
	return key.Kind == yaml.ScalarNode && key.ShortTag() == tagMerge
}

func isNull(y *yaml.Node) bool {
	return y.Kind == yaml.ScalarNode && y.ShortTag() == tagNull
}

// resolve follows aliases to the anchored node.
func resolve(y *yaml.Node) *yaml.Node {
	for y.Kind == yaml.AliasNode && y.Alias != nil {
		y = y.Alias
	}

	return y
}
