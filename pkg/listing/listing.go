// Package listing enumerates the working directory into identity rename
// pairs, the starting point for every export and edit session.
package listing

import (
	"strings"

	"github.com/arthur-debert/retitle/pkg/errors"
	"github.com/arthur-debert/retitle/pkg/logging"
	"github.com/arthur-debert/retitle/pkg/types"
)

// Options controls which entries are listed
type Options struct {
	// IncludeHidden lists entries whose name starts with a dot
	IncludeHidden bool
}

// DefaultOptions lists every entry, like a plain directory read
func DefaultOptions() Options {
	return Options{IncludeHidden: true}
}

// List returns one identity pair per immediate entry of dir, in the order
// fs.ReadDir returns them. The OS and afero adapters return names sorted;
// other implementations need not.
//
// Failing to read dir at all is an ErrListDir error. A single entry whose
// metadata cannot be read, or whose name cannot be written in the rename
// format, is skipped with a warning.
func List(fs types.FS, dir string, opts Options) ([]types.RenamePair, error) {
	logger := logging.GetLogger("listing")

	entries, err := fs.ReadDir(dir)
	if err != nil {
		return nil, errors.Wrapf(err, errors.ErrListDir, "failed to list directory %s", dir).
			WithDetail("dir", dir)
	}

	result := make([]types.RenamePair, 0, len(entries))
	for _, entry := range entries {
		name := entry.Name()

		if _, err := entry.Info(); err != nil {
			logger.Warn().Err(err).Str("entry", name).Msg("Skipping unreadable entry")
			continue
		}

		if strings.Contains(name, types.Separator) || strings.ContainsAny(name, "\r\n") {
			logger.Warn().Str("entry", name).Msg("Skipping entry whose name cannot be represented in the rename list")
			continue
		}

		if !opts.IncludeHidden && strings.HasPrefix(name, ".") {
			logger.Trace().Str("entry", name).Msg("Skipping hidden entry")
			continue
		}

		result = append(result, types.NewIdentityPair(name))
	}

	logger.Debug().
		Str("dir", dir).
		Int("entries", len(entries)).
		Int("listed", len(result)).
		Msg("Directory listed")

	return result, nil
}
