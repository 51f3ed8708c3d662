// Package annotate parses YAML translation files into trees whose scalars
// remember the line they came from.
//
// It is an adapter over gopkg.in/yaml.v3: the document is decoded into a
// *yaml.Node graph, which is then walked in source order. Each scalar
// records the zero-based line yaml.v3 reports for its start as its mark;
// tree.Wrap later turns the mark into a one-based line number.
//
// Anchors, aliases and merge keys ("<<") are expanded, so the resulting
// tree never shares nodes. Expansion is bounded by Parser.MaxAliasNodes.
package annotate
