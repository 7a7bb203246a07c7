package commands

import (
	"context"
	"io"

	"github.com/arthur-debert/retitle/pkg/errors"
	"github.com/arthur-debert/retitle/pkg/logging"
	"github.com/arthur-debert/retitle/pkg/types"
)

// Mode is the way a single retitle invocation obtains or emits its rename list
type Mode string

const (
	// ModeEdit lists the directory, opens an editor and applies the result
	ModeEdit Mode = "edit"

	// ModeStdout prints the listing and exits
	ModeStdout Mode = "stdout"

	// ModeExport writes the listing to a file and exits
	ModeExport Mode = "export"

	// ModeStdin applies a rename list read from standard input
	ModeStdin Mode = "stdin"

	// ModeResume applies a rename list read from a file
	ModeResume Mode = "resume"
)

// DispatchOptions contains all possible options for a mode.
// Each mode uses only the fields it needs.
type DispatchOptions struct {
	// Common fields
	FileSystem types.FS
	Export     ExportOptions
	Apply      ApplyOptions

	// For export and resume
	Path string

	// For edit
	Editor TextEditor

	// For stdout and stdin
	Stdout io.Writer
	Stdin  io.Reader
}

// Dispatch runs the command for mode. Export modes return a nil result.
func Dispatch(ctx context.Context, mode Mode, opts DispatchOptions) (*types.ApplyResult, error) {
	logger := logging.GetLogger("commands.dispatch")
	logger.Debug().
		Str("mode", string(mode)).
		Str("path", opts.Path).
		Bool("dryRun", opts.Apply.DryRun).
		Msg("Dispatching command")

	switch mode {
	case ModeEdit:
		if opts.Editor == nil {
			return nil, errors.New(errors.ErrInternal, "edit mode requires an editor")
		}
		return EditAndApply(ctx, EditOptions{
			Export: opts.Export,
			Apply:  opts.Apply,
			Editor: opts.Editor,
		})

	case ModeStdout:
		return nil, ExportToWriter(opts.Stdout, opts.Export)

	case ModeExport:
		return nil, ExportToFile(opts.FileSystem, opts.Path, opts.Export)

	case ModeStdin:
		return ImportFromReader(opts.Stdin, opts.Apply)

	case ModeResume:
		return ImportFromFile(opts.FileSystem, opts.Path, opts.Apply)

	default:
		return nil, errors.Newf(errors.ErrInvalidInput, "unknown mode: %s", mode).
			WithDetail("mode", string(mode))
	}
}
