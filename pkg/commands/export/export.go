package export

import (
	"io"

	"github.com/arthur-debert/retitle/pkg/errors"
	"github.com/arthur-debert/retitle/pkg/listing"
	"github.com/arthur-debert/retitle/pkg/logging"
	"github.com/arthur-debert/retitle/pkg/pairs"
	"github.com/arthur-debert/retitle/pkg/types"
)

// ExportOptions defines the options for the export commands.
type ExportOptions struct {
	// FS is the filesystem rooted at the working directory.
	FS types.FS

	// Dir is the directory to list, relative to FS. Defaults to ".".
	Dir string

	// Listing controls which entries are included.
	Listing listing.Options
}

func (o ExportOptions) dir() string {
	if o.Dir == "" {
		return "."
	}
	return o.Dir
}

// ExportText lists the working directory as identity pairs and formats them.
func ExportText(opts ExportOptions) (string, error) {
	log := logging.GetLogger("commands.export")

	listed, err := listing.List(opts.FS, opts.dir(), opts.Listing)
	if err != nil {
		return "", err
	}

	log.Debug().Int("entries", len(listed)).Msg("Formatted directory listing")
	return pairs.Format(listed), nil
}

// ExportToWriter writes the formatted listing to w, typically stdout.
// No renames are applied.
func ExportToWriter(w io.Writer, opts ExportOptions) error {
	log := logging.GetLogger("commands.export")
	log.Debug().Str("command", "ExportToWriter").Msg("Executing command")

	text, err := ExportText(opts)
	if err != nil {
		return err
	}

	if _, err := io.WriteString(w, text); err != nil {
		return errors.Wrap(err, errors.ErrWriteFile, "failed to write to stdout")
	}
	return nil
}

// ExportToFile writes the formatted listing to path on files.
// No renames are applied.
func ExportToFile(files types.FS, path string, opts ExportOptions) error {
	log := logging.GetLogger("commands.export")
	log.Debug().Str("command", "ExportToFile").Str("path", path).Msg("Executing command")

	text, err := ExportText(opts)
	if err != nil {
		return err
	}

	if err := files.WriteFile(path, []byte(text), 0644); err != nil {
		return errors.Wrapf(err, errors.ErrWriteFile, "failed to write to file %s", path).
			WithDetail("path", path)
	}

	log.Info().Str("path", path).Msg("Rename list exported")
	return nil
}
