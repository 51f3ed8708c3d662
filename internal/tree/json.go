package tree

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strconv"
)

// MarshalJSON encodes the tree with mapping keys in insertion order. Leaves
// become {"value", "line", "file"} objects; a null leaf value is null.
// HTML characters are not escaped.
func (n *Node) MarshalJSON() ([]byte, error) {
	var buf bytes.Buffer

	if err := n.writeJSON(&buf); err != nil {
		return nil, err
	}

	return buf.Bytes(), nil
}

func (n *Node) writeJSON(buf *bytes.Buffer) error {
	switch n.Kind() {
	case KindMapping:
		buf.WriteByte('{')

		for i, e := range n.entries {
			if i > 0 {
				buf.WriteByte(',')
			}

			if err := writeString(buf, e.Key); err != nil {
				return err
			}

			buf.WriteByte(':')

			if err := e.Value.writeJSON(buf); err != nil {
				return fmt.Errorf("key %q: %w", e.Key, err)
			}
		}

		buf.WriteByte('}')
	case KindSequence:
		buf.WriteByte('[')

		for i, item := range n.items {
			if i > 0 {
				buf.WriteByte(',')
			}

			if err := item.writeJSON(buf); err != nil {
				return err
			}
		}

		buf.WriteByte(']')
	case KindScalar:
		return writeValue(buf, n.scalar.Text, n.scalar.Null)
	case KindLeaf:
		buf.WriteString(`{"value":`)

		if err := writeValue(buf, n.leaf.Value, n.leaf.Null); err != nil {
			return err
		}

		buf.WriteString(`,"line":`)
		buf.WriteString(strconv.Itoa(n.leaf.Line))

		if n.leaf.File != "" {
			buf.WriteString(`,"file":`)

			if err := writeString(buf, n.leaf.File); err != nil {
				return err
			}
		}

		buf.WriteByte('}')
	default:
		buf.WriteString("null")
	}

	return nil
}

func writeValue(buf *bytes.Buffer, s string, null bool) error {
	if null {
		buf.WriteString("null")
		return nil
	}

	return writeString(buf, s)
}

func writeString(buf *bytes.Buffer, s string) error {
	enc := json.NewEncoder(buf)
	enc.SetEscapeHTML(false)

	if err := enc.Encode(s); err != nil {
		return err
	}

	// Encode terminates every value with a newline.
	buf.Truncate(buf.Len() - 1)

	return nil
}
