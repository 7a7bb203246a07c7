// Package commands provides high-level command implementations for retitle.
//
// This package contains the command orchestration layer that coordinates
// between the CLI interface and the rename engine.
//
// Each command is implemented in its own subdirectory:
//   - export/ - ExportText, ExportToWriter and ExportToFile
//   - apply/  - ApplyText, ImportFromReader and ImportFromFile
//   - edit/   - EditAndApply, the interactive editor session
//
// This file re-exports the command functions so the CLI depends on a single
// package, and dispatch.go maps a CLI mode onto them.
package commands

import (
	"context"
	"io"

	"github.com/arthur-debert/retitle/pkg/commands/apply"
	"github.com/arthur-debert/retitle/pkg/commands/edit"
	"github.com/arthur-debert/retitle/pkg/commands/export"
	"github.com/arthur-debert/retitle/pkg/types"
)

// ExportToWriter prints the identity listing without renaming anything.
type ExportOptions = export.ExportOptions

func ExportToWriter(w io.Writer, opts ExportOptions) error {
	return export.ExportToWriter(w, opts)
}

// ExportToFile writes the identity listing to a file without renaming anything.
func ExportToFile(files types.FS, path string, opts ExportOptions) error {
	return export.ExportToFile(files, path, opts)
}

// ImportFromReader applies a rename list read from r.
type ApplyOptions = apply.ApplyOptions

func ImportFromReader(r io.Reader, opts ApplyOptions) (*types.ApplyResult, error) {
	return apply.ImportFromReader(r, opts)
}

// ImportFromFile applies a rename list stored in a file.
func ImportFromFile(files types.FS, path string, opts ApplyOptions) (*types.ApplyResult, error) {
	return apply.ImportFromFile(files, path, opts)
}

// EditAndApply runs the interactive list, edit and apply session.
type EditOptions = edit.EditOptions
type TextEditor = edit.TextEditor

func EditAndApply(ctx context.Context, opts EditOptions) (*types.ApplyResult, error) {
	return edit.EditAndApply(ctx, opts)
}
