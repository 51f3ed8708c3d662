package locale

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"

	"localorie/internal/annotate"
	"localorie/internal/discover"
	"localorie/internal/merge"
	"localorie/internal/tree"
)

// Builder discovers, parses and merges locale files.
type Builder struct {
	config Config
	parser *annotate.Parser
	log    *slog.Logger
}

// NewBuilder returns a Builder using config. Empty fields fall back to
// DefaultConfig.
func NewBuilder(config Config) *Builder {
	def := DefaultConfig()

	if config.LocalesDir == "" {
		config.LocalesDir = def.LocalesDir
	}

	if len(config.Patterns) == 0 {
		config.Patterns = def.Patterns
	}

	if config.Logger == nil {
		config.Logger = def.Logger
	}

	return &Builder{
		config: config,
		parser: annotate.NewParser(),
		log:    config.Logger,
	}
}

// Build merges every locale file of the project at root. Files are merged
// in sorted path order; each leaf's file is its path joined onto root.
func (b *Builder) Build(ctx context.Context, root string) (*tree.Node, error) {
	files, err := discover.Files(root, b.config.LocalesDir, b.config.Patterns)
	if err != nil {
		return nil, &DiscoverError{Dir: filepath.Join(root, b.config.LocalesDir), Err: err}
	}

	if len(files) == 0 {
		b.log.Warn("no locale files found",
			slog.String("dir", filepath.Join(root, b.config.LocalesDir)))
	} else {
		b.log.Info("discovered locale files", slog.Int("count", len(files)))
	}

	return b.MergeFiles(ctx, files)
}

// MergeFiles merges the given files in order. ctx is checked between files.
func (b *Builder) MergeFiles(ctx context.Context, paths []string) (*tree.Node, error) {
	folder := merge.NewFolder()

	for _, path := range paths {
		if err := ctx.Err(); err != nil {
			return nil, err
		}

		t, err := b.LoadFile(path)
		if err != nil {
			return nil, err
		}

		folder.Add(t)
	}

	b.log.Debug("merged locale files", slog.Int("count", folder.Count()))

	return folder.Result(), nil
}

// LoadFile parses one locale file into a wrapped tree tagged with path.
func (b *Builder) LoadFile(path string) (*tree.Node, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, &FileAccessError{Path: path, Err: err}
	}

	root, err := b.parser.Parse(data)
	if err != nil {
		return nil, &ParseError{Path: path, Err: err}
	}

	t := tree.Tag(tree.Wrap(root), path)

	leaves := 0
	tree.Walk(t, func([]string, tree.Leaf) { leaves++ })

	b.log.Debug("loaded locale file",
		slog.String("file", path),
		slog.Int("keys", t.Len()),
		slog.Int("leaves", leaves))

	return t, nil
}

// Build merges the locale files of the project at root with DefaultConfig.
func Build(ctx context.Context, root string) (*tree.Node, error) {
	return NewBuilder(DefaultConfig()).Build(ctx, root)
}

// WriteJSON writes t to w as a single line of JSON. HTML characters are
// written as is.
func WriteJSON(w io.Writer, t *tree.Node) error {
	enc := json.NewEncoder(w)
	enc.SetEscapeHTML(false)

	if err := enc.Encode(t); err != nil {
		return fmt.Errorf("failed to encode translations: %w", err)
	}

	return nil
}
