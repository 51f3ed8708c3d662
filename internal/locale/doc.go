// Package locale builds the merged translation tree of a project.
//
// Pipeline, one file at a time in sorted order:
//  1. discover: find <root>/config/locales/**/*.{yml,yaml}
//  2. annotate: parse the file, marking each scalar with its line
//  3. tree.Wrap: turn scalars into {value, line} leaf records
//  4. tree.Tag: stamp the file path on every leaf
//  5. merge: fold the tree into the accumulator, later files winning
//
// The run is all-or-nothing: the first unreadable or malformed file aborts
// it with a *FileAccessError or *ParseError.
package locale
