// Package discover finds locale files under a project root.
package discover

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sort"
	"strings"

	ignore "github.com/sabhiram/go-gitignore"
)

// Files returns the files below root/dir whose path relative to root/dir
// matches one of patterns. Patterns use gitignore syntax, so "**/*.yml"
// matches at any depth. The file name itself must match the last segment
// of a pattern, so files inside a directory named "x.yml" are not picked
// up unless they match on their own. Hidden files and directories are
// skipped.
//
// The returned paths are root/dir/<rel>, sorted. A missing dir yields no
// files and no error.
func Files(root, dir string, patterns []string) ([]string, error) {
	if len(patterns) == 0 {
		return nil, nil
	}

	base := filepath.Join(root, dir)

	info, err := os.Stat(base)
	if errors.Is(err, fs.ErrNotExist) {
		return nil, nil
	}

	if err != nil {
		return nil, err
	}

	if !info.IsDir() {
		return nil, fmt.Errorf("%s: not a directory", base)
	}

	matcher := ignore.CompileIgnoreLines(patterns...)
	names := ignore.CompileIgnoreLines(namePatterns(patterns)...)

	var results []string

	err = filepath.WalkDir(base, func(path string, d os.DirEntry, err error) error {
		if err != nil {
			return err
		}

		if path == base {
			return nil
		}

		if strings.HasPrefix(d.Name(), ".") {
			if d.IsDir() {
				return filepath.SkipDir
			}

			return nil
		}

		if d.IsDir() {
			return nil
		}

		rel, err := filepath.Rel(base, path)
		if err != nil {
			return err
		}

		// gitignore patterns also match everything below a matching
		// directory, so the file name must match on its own too.
		if matcher.MatchesPath(filepath.ToSlash(rel)) && names.MatchesPath(d.Name()) {
			results = append(results, path)
		}

		return nil
	})
	if err != nil {
		return nil, err
	}

	sort.Strings(results)

	return results, nil
}

// namePatterns returns the final path segment of every inclusion pattern:
// "**/*.yml" gives "*.yml". A pattern naming a directory accepts any name.
func namePatterns(patterns []string) []string {
	var out []string

	for _, p := range patterns {
		p = strings.TrimSpace(p)
		if p == "" || strings.HasPrefix(p, "#") || strings.HasPrefix(p, "!") {
			continue
		}

		name := p[strings.LastIndex(p, "/")+1:]
		if name == "" || name == "**" {
			name = "*"
		}

		out = append(out, name)
	}

	return out
}
