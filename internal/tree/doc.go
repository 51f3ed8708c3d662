// Package tree defines the translation tree shared by the parser, the
// merger and the JSON writer.
//
// A Node is a tagged variant. Its Kind is fixed when the node is built:
//   - KindMapping: ordered string keys to child nodes
//   - KindSequence: ordered child nodes
//   - KindScalar: raw parser output carrying a zero-based line mark
//   - KindLeaf: a leaf record {value, line, file}
//   - KindUndefined: the explicit "no value" marker
//
// # Lifecycle
//
// The parser emits scalars, Wrap turns them into leaf records, Tag stamps
// the source file on every leaf and the merger folds tagged trees together.
// After Wrap no KindScalar node remains; after Tag every leaf has a file.
package tree
