package testutil

import (
	"io/fs"
	"path/filepath"
	"sort"
	"testing"

	"github.com/arthur-debert/retitle/pkg/filesystem"
	"github.com/arthur-debert/retitle/pkg/types"
	"github.com/spf13/afero"
)

// TestRoot is the in-memory directory that NewTestFS resolves names against
const TestRoot = "/work"

// NewTestFS creates a new in-memory filesystem for testing. Relative names
// resolve inside an empty working directory, so "." lists it.
func NewTestFS() types.FS {
	mem := afero.NewMemMapFs()
	_ = mem.MkdirAll(TestRoot, 0755)
	return filesystem.NewAferoFS(afero.NewBasePathFs(mem, TestRoot))
}

// CreateFileT creates a file with content in fs, failing the test on error
func CreateFileT(t *testing.T, fsys types.FS, path, content string) {
	t.Helper()

	if err := fsys.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatalf("Failed to create file %s: %v", path, err)
	}
}

// CreateFilesT creates each name in dir with its name as content
func CreateFilesT(t *testing.T, fsys types.FS, dir string, names ...string) {
	t.Helper()

	for _, name := range names {
		CreateFileT(t, fsys, filepath.Join(dir, name), name)
	}
}

// ReadFileT returns the content of path, failing the test on error
func ReadFileT(t *testing.T, fsys types.FS, path string) string {
	t.Helper()

	data, err := fsys.ReadFile(path)
	if err != nil {
		t.Fatalf("Failed to read file %s: %v", path, err)
	}
	return string(data)
}

// DirNamesT returns the sorted entry names of dir
func DirNamesT(t *testing.T, fsys types.FS, dir string) []string {
	t.Helper()

	entries, err := fsys.ReadDir(dir)
	if err != nil {
		t.Fatalf("Failed to read dir %s: %v", dir, err)
	}
	return SortedNames(entries)
}

// SortedNames returns the names of entries in lexical order
func SortedNames(entries []fs.DirEntry) []string {
	names := make([]string, len(entries))
	for i, e := range entries {
		names[i] = e.Name()
	}
	sort.Strings(names)
	return names
}
