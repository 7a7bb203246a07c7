// Package apply parses a rename list and hands it to the rename engine.
package apply

import (
	"io"

	"github.com/arthur-debert/retitle/pkg/engine"
	"github.com/arthur-debert/retitle/pkg/errors"
	"github.com/arthur-debert/retitle/pkg/logging"
	"github.com/arthur-debert/retitle/pkg/pairs"
	"github.com/arthur-debert/retitle/pkg/types"
)

// ApplyOptions defines the options for the import commands.
type ApplyOptions struct {
	// FS is the filesystem rooted at the working directory.
	FS types.FS

	// Reporter receives one event per rename, failure and undo.
	Reporter types.Reporter

	// DryRun reports the planned renames without applying them.
	DryRun bool
}

// summarizer is implemented by reporters that print a closing line
type summarizer interface {
	Summary(result *types.ApplyResult, dryRun bool)
}

// ApplyText parses text and applies the renames it describes. A parse error
// is returned before any filesystem change. A forward rename failure is not
// an error; inspect result.Outcome. An ErrRollback error means the
// filesystem was left partially reversed and the process must stop.
func ApplyText(text string, opts ApplyOptions) (*types.ApplyResult, error) {
	log := logging.GetLogger("commands.apply")

	parsed, err := pairs.Parse(text)
	if err != nil {
		return nil, err
	}

	log.Info().
		Int("pairs", len(parsed)).
		Bool("dryRun", opts.DryRun).
		Msg("Applying rename list")

	eng := engine.New(opts.FS, opts.Reporter)

	var result *types.ApplyResult
	if opts.DryRun {
		result = eng.DryRun(parsed)
	} else {
		result, err = eng.Apply(parsed)
	}

	if s, ok := opts.Reporter.(summarizer); ok && err == nil {
		s.Summary(result, opts.DryRun)
	}

	log.Info().
		Str("outcome", string(result.Outcome)).
		Int("applied", len(result.Applied)).
		Int("rolledBack", len(result.RolledBack)).
		Msg("Command finished")

	return result, err
}

// ImportFromReader reads the whole rename list from r, typically stdin,
// and applies it.
func ImportFromReader(r io.Reader, opts ApplyOptions) (*types.ApplyResult, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, errors.Wrap(err, errors.ErrReadStdin, "failed to read from stdin")
	}
	return ApplyText(string(data), opts)
}

// ImportFromFile reads the rename list at path on files and applies it.
func ImportFromFile(files types.FS, path string, opts ApplyOptions) (*types.ApplyResult, error) {
	data, err := files.ReadFile(path)
	if err != nil {
		return nil, errors.Wrapf(err, errors.ErrReadFile, "failed to read from file %s", path).
			WithDetail("path", path)
	}
	return ApplyText(string(data), opts)
}
