package types

import (
	"io/fs"
)

// FS is the filesystem interface required for retitle operations
type FS interface {
	// File operations
	Stat(name string) (fs.FileInfo, error)
	ReadFile(name string) ([]byte, error)
	WriteFile(name string, data []byte, perm fs.FileMode) error

	// Directory operations
	ReadDir(name string) ([]fs.DirEntry, error)

	// Rename changes the name of a single entry. It must be at least as
	// atomic as the host OS guarantees for one name change within a volume.
	Rename(oldpath, newpath string) error

	// Other operations
	Remove(name string) error
}

// Reporter receives the user-facing events of a rename run
type Reporter interface {
	Renamed(pair RenamePair)
	RenameFailed(pair RenamePair, err error)
	RollbackStarted()
	RolledBack(pair RenamePair)
	RollbackFailed(pair RenamePair, err error)
	WouldRename(pair RenamePair)
}
