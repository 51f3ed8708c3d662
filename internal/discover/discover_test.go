package discover

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeFile(t *testing.T, root, rel, content string) {
	t.Helper()

	path := filepath.Join(root, rel)
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o755))
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
}

func TestFiles(t *testing.T) {
	root := t.TempDir()

	writeFile(t, root, "config/locales/en.yml", "en: {}\n")
	writeFile(t, root, "config/locales/de.yaml", "de: {}\n")
	writeFile(t, root, "config/locales/models/user/fr.yml", "fr: {}\n")
	writeFile(t, root, "config/locales/admin/b.yml", "b: {}\n")
	writeFile(t, root, "config/locales/admin/a.yml", "a: {}\n")
	writeFile(t, root, "config/locales/notes.txt", "skip")
	writeFile(t, root, "config/locales/en.rb", "{}")
	writeFile(t, root, "config/locales/en.yml.bak", "skip")
	writeFile(t, root, "config/locales/.hidden.yml", "skip: true\n")
	writeFile(t, root, "config/locales/.cache/x.yml", "skip: true\n")
	writeFile(t, root, "config/other.yml", "skip: true\n")
	writeFile(t, root, "config/locales/legacy.yml/README.txt", "not yaml")
	writeFile(t, root, "config/locales/legacy.yml/nl.yml", "nl: {}\n")

	files, err := Files(root, filepath.Join("config", "locales"), []string{"**/*.yml", "**/*.yaml"})
	require.NoError(t, err)

	base := filepath.Join(root, "config", "locales")
	assert.Equal(t, []string{
		filepath.Join(base, "admin", "a.yml"),
		filepath.Join(base, "admin", "b.yml"),
		filepath.Join(base, "de.yaml"),
		filepath.Join(base, "en.yml"),
		filepath.Join(base, "legacy.yml", "nl.yml"),
		filepath.Join(base, "models", "user", "fr.yml"),
	}, files)
}

func TestFilesSinglePattern(t *testing.T) {
	root := t.TempDir()

	writeFile(t, root, "locales/en.yml", "en: {}\n")
	writeFile(t, root, "locales/de.yaml", "de: {}\n")

	files, err := Files(root, "locales", []string{"**/*.yml"})
	require.NoError(t, err)

	assert.Equal(t, []string{filepath.Join(root, "locales", "en.yml")}, files)
}

func TestFilesMissingDir(t *testing.T) {
	files, err := Files(t.TempDir(), "config/locales", []string{"**/*.yml"})
	require.NoError(t, err)
	assert.Empty(t, files)
}

func TestFilesNotADirectory(t *testing.T) {
	root := t.TempDir()
	writeFile(t, root, "config/locales", "not a dir")

	_, err := Files(root, "config/locales", []string{"**/*.yml"})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "not a directory")
}

func TestFilesNoPatterns(t *testing.T) {
	root := t.TempDir()
	writeFile(t, root, "config/locales/en.yml", "en: {}\n")

	files, err := Files(root, "config/locales", nil)
	require.NoError(t, err)
	assert.Empty(t, files)
}

func TestFilesDirectoryPatterns(t *testing.T) {
	root := t.TempDir()

	writeFile(t, root, "locales/admin/en.yml", "en: {}\n")
	writeFile(t, root, "locales/admin/notes.txt", "notes")
	writeFile(t, root, "locales/public/en.yml", "en: {}\n")

	files, err := Files(root, "locales", []string{"admin/*.yml"})
	require.NoError(t, err)
	assert.Equal(t, []string{filepath.Join(root, "locales", "admin", "en.yml")}, files)

	files, err = Files(root, "locales", []string{"admin/"})
	require.NoError(t, err)
	assert.Equal(t, []string{
		filepath.Join(root, "locales", "admin", "en.yml"),
		filepath.Join(root, "locales", "admin", "notes.txt"),
	}, files)
}

func TestNamePatterns(t *testing.T) {
	assert.Equal(t,
		[]string{"*.yml", "*.yaml", "*", "*.yml"},
		namePatterns([]string{"**/*.yml", "*.yaml", "admin/", "# comment", "!skip.yml", "", "a/**/*.yml"}))
}
