package filesystem

import (
	"io/fs"
	"os"
	"path/filepath"

	"github.com/arthur-debert/retitle/pkg/types"
)

// osFS implements types.FS using the OS filesystem. Relative names are
// resolved against root; absolute names are used as given.
type osFS struct {
	root string
}

// NewOS creates a new OS filesystem implementation rooted at the process
// working directory
func NewOS() types.FS {
	return &osFS{root: "."}
}

// NewOSAt creates a new OS filesystem implementation rooted at dir
func NewOSAt(dir string) types.FS {
	if dir == "" {
		dir = "."
	}
	return &osFS{root: dir}
}

func (o *osFS) path(name string) string {
	if filepath.IsAbs(name) || o.root == "." {
		return name
	}
	return filepath.Join(o.root, name)
}

func (o *osFS) Stat(name string) (fs.FileInfo, error) {
	return os.Stat(o.path(name))
}

func (o *osFS) ReadFile(name string) ([]byte, error) {
	return os.ReadFile(o.path(name))
}

func (o *osFS) WriteFile(name string, data []byte, perm fs.FileMode) error {
	return os.WriteFile(o.path(name), data, perm)
}

// ReadDir returns the entries of name sorted by filename, as os.ReadDir does.
func (o *osFS) ReadDir(name string) ([]fs.DirEntry, error) {
	return os.ReadDir(o.path(name))
}

func (o *osFS) Rename(oldpath, newpath string) error {
	return os.Rename(o.path(oldpath), o.path(newpath))
}

func (o *osFS) Remove(name string) error {
	return os.Remove(o.path(name))
}
