// Package dirlock serializes retitle runs that target the same working
// directory. Two interleaved runs could each roll back renames the other
// made, so only one may list, edit and apply a directory at a time.
//
// The lock file lives under the XDG state directory, keyed by the absolute
// directory path, so it never shows up in the listing it protects.
package dirlock

import (
	"crypto/sha256"
	"encoding/hex"
	"os"
	"path/filepath"

	"github.com/adrg/xdg"
	"github.com/arthur-debert/retitle/pkg/errors"
	"github.com/arthur-debert/retitle/pkg/logging"
	"github.com/gofrs/flock"
)

// Lock is an exclusive advisory lock on one working directory
type Lock struct {
	flock *flock.Flock
	dir   string
}

// Path returns the lock file location for dir. Symlinks are resolved, so a
// directory reached through a link shares the lock of its real path.
func Path(dir string) (string, error) {
	abs, err := filepath.Abs(dir)
	if err != nil {
		return "", errors.Wrapf(err, errors.ErrInvalidInput, "failed to resolve %s", dir).
			WithDetail("dir", dir)
	}
	if resolved, err := filepath.EvalSymlinks(abs); err == nil {
		abs = resolved
	}

	sum := sha256.Sum256([]byte(abs))
	name := hex.EncodeToString(sum[:8]) + ".lock"

	stateHome := os.Getenv("XDG_STATE_HOME")
	if stateHome == "" {
		stateHome = xdg.StateHome
	}
	return filepath.Join(stateHome, "retitle", "locks", name), nil
}

// Acquire takes the lock for dir without waiting. An ErrLocked error means
// another process holds it.
func Acquire(dir string) (*Lock, error) {
	logger := logging.GetLogger("dirlock")

	path, err := Path(dir)
	if err != nil {
		return nil, err
	}
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return nil, errors.Wrapf(err, errors.ErrWriteFile, "failed to create lock directory for %s", dir).
			WithDetail("path", path)
	}

	fl := flock.New(path)
	locked, err := fl.TryLock()
	if err != nil {
		return nil, errors.Wrapf(err, errors.ErrLocked, "cannot acquire lock for %s", dir).
			WithDetail("dir", dir).
			WithDetail("path", path)
	}
	if !locked {
		return nil, errors.Newf(errors.ErrLocked, "another retitle run is using %s", dir).
			WithDetail("dir", dir).
			WithDetail("path", path)
	}

	logger.Debug().Str("dir", dir).Str("path", path).Msg("Directory lock acquired")
	return &Lock{flock: fl, dir: dir}, nil
}

// Release unlocks the directory. The lock file is left in place.
func (l *Lock) Release() error {
	if err := l.flock.Unlock(); err != nil {
		return errors.Wrapf(err, errors.ErrLocked, "failed to release lock for %s", l.dir).
			WithDetail("dir", l.dir)
	}
	logger := logging.GetLogger("dirlock")
	logger.Debug().Str("dir", l.dir).Msg("Directory lock released")
	return nil
}
