// Package merge deep-merges translation trees.
//
// Rules, applied key by key:
//  1. mapping + mapping: merge recursively
//  2. sequence + sequence: union, base order first, duplicates collapse
//  3. other side absent (nil or tree.Undefined): keep base
//  4. anything else: the other side replaces base, provenance included
//
// Keys present on one side only are kept as they are. Merge never mutates
// its inputs; Folder owns its accumulator and merges into it in place.
package merge
