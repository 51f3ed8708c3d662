package tree

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWrapConvertsEveryScalar(t *testing.T) {
	nav := NewMapping()
	nav.Set("home", NewScalar(Scalar{Text: "Home", Mark: 1}))

	root := NewMapping()
	root.Set("nav", nav)
	root.Set("days", NewSequence(
		NewScalar(Scalar{Text: "Mon", Mark: 3}),
		NewScalar(Scalar{Text: "Tue", Mark: 4}),
	))
	root.Set("empty", NewScalar(Scalar{Null: true, Mark: 5}))

	got := Wrap(root)
	require.Same(t, root, got)

	home, ok := root.Lookup("nav", "home").Leaf()
	require.True(t, ok)
	assert.Equal(t, Leaf{Value: "Home", Line: 2}, home)

	days := root.Lookup("days").Items()
	require.Len(t, days, 2)

	tue, ok := days[1].Leaf()
	require.True(t, ok)
	assert.Equal(t, Leaf{Value: "Tue", Line: 5}, tue)

	empty, ok := root.Lookup("empty").Leaf()
	require.True(t, ok)
	assert.True(t, empty.Null)
	assert.Equal(t, 6, empty.Line)

	Walk(root, func(path []string, _ Leaf) {
		assert.NotEqual(t, KindScalar, root.Lookup(path...).Kind())
	})
}

func TestTagStampsEveryLeaf(t *testing.T) {
	item := NewMapping()
	item.Set("label", NewLeaf(Leaf{Value: "x", Line: 4}))

	root := NewMapping()
	root.Set("greeting", NewLeaf(Leaf{Value: "hello", Line: 1}))
	root.Set("list", NewSequence(NewLeaf(Leaf{Value: "a", Line: 2}), item))

	Tag(root, "config/locales/en.yml")

	var files []string
	Walk(root, func(_ []string, l Leaf) {
		files = append(files, l.File)
	})

	assert.Equal(t, []string{
		"config/locales/en.yml",
		"config/locales/en.yml",
		"config/locales/en.yml",
	}, files)

	Tag(root, "other.yml")

	l, _ := root.Lookup("greeting").Leaf()
	assert.Equal(t, "other.yml", l.File)
}

func TestWalkPaths(t *testing.T) {
	inner := NewMapping()
	inner.Set("b", NewLeaf(Leaf{Value: "1"}))
	inner.Set("c", NewLeaf(Leaf{Value: "2"}))

	root := NewMapping()
	root.Set("a", inner)
	root.Set("d", NewLeaf(Leaf{Value: "3"}))

	var paths [][]string
	Walk(root, func(path []string, _ Leaf) {
		paths = append(paths, path)
	})

	assert.Equal(t, [][]string{{"a", "b"}, {"a", "c"}, {"d"}}, paths)
}
