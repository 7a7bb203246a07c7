package testutil

import (
	"fmt"
	"io/fs"
	"sync"

	"github.com/arthur-debert/retitle/pkg/types"
)

// RenameCall is one Rename invocation seen by a RecordingFS
type RenameCall struct {
	From string
	To   string
	Err  error
}

// RecordingFS wraps a types.FS, records every Rename call in order and can
// inject failures for chosen renames. All other calls pass through.
type RecordingFS struct {
	types.FS

	mu       sync.Mutex
	calls    []RenameCall
	failures map[string]error
	readDir  error
}

// NewRecordingFS wraps inner
func NewRecordingFS(inner types.FS) *RecordingFS {
	return &RecordingFS{
		FS:       inner,
		failures: make(map[string]error),
	}
}

func renameKey(from, to string) string {
	return fmt.Sprintf("%s\x00%s", from, to)
}

// FailRename makes the rename from -> to return err instead of running
func (r *RecordingFS) FailRename(from, to string, err error) *RecordingFS {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.failures[renameKey(from, to)] = err
	return r
}

// FailReadDir makes every ReadDir call return err
func (r *RecordingFS) FailReadDir(err error) *RecordingFS {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.readDir = err
	return r
}

// Rename records the call and either fails it or delegates to the wrapped FS
func (r *RecordingFS) Rename(oldpath, newpath string) error {
	r.mu.Lock()
	injected, fail := r.failures[renameKey(oldpath, newpath)]
	r.mu.Unlock()

	var err error
	if fail {
		err = injected
	} else {
		err = r.FS.Rename(oldpath, newpath)
	}

	r.mu.Lock()
	r.calls = append(r.calls, RenameCall{From: oldpath, To: newpath, Err: err})
	r.mu.Unlock()
	return err
}

// ReadDir delegates unless a failure was injected
func (r *RecordingFS) ReadDir(name string) ([]fs.DirEntry, error) {
	r.mu.Lock()
	err := r.readDir
	r.mu.Unlock()
	if err != nil {
		return nil, err
	}
	return r.FS.ReadDir(name)
}

// Calls returns a copy of the recorded rename calls
func (r *RecordingFS) Calls() []RenameCall {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]RenameCall, len(r.calls))
	copy(out, r.calls)
	return out
}

// CallPairs returns the recorded renames as pairs, dropping the errors
func (r *RecordingFS) CallPairs() []types.RenamePair {
	calls := r.Calls()
	out := make([]types.RenamePair, len(calls))
	for i, c := range calls {
		out[i] = types.RenamePair{From: c.From, To: c.To}
	}
	return out
}
