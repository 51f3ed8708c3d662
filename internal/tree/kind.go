package tree

//go:generate go tool stringer -type=Kind -trimprefix=Kind -output=kind_string.go

// Kind discriminates the variants of a Node.
type Kind int

const (
	_ Kind = iota // skip zero value, a Node built without a constructor has no valid kind

	KindMapping
	KindSequence
	KindScalar
	KindLeaf
	KindUndefined
)
