package edit

import (
	"context"

	"github.com/arthur-debert/retitle/pkg/commands/apply"
	"github.com/arthur-debert/retitle/pkg/commands/export"
	"github.com/arthur-debert/retitle/pkg/logging"
	"github.com/arthur-debert/retitle/pkg/types"
)

// TextEditor returns the user's edited version of text
type TextEditor interface {
	Edit(ctx context.Context, text string) (string, error)
}

// EditOptions defines the options for the interactive edit command.
type EditOptions struct {
	Export export.ExportOptions
	Apply  apply.ApplyOptions
	Editor TextEditor
}

// EditAndApply lists the working directory, opens the listing in the
// editor and applies the renames in the saved text. An editor failure
// aborts before any rename.
func EditAndApply(ctx context.Context, opts EditOptions) (*types.ApplyResult, error) {
	log := logging.GetLogger("commands.edit")
	log.Debug().Str("command", "EditAndApply").Msg("Executing command")

	text, err := export.ExportText(opts.Export)
	if err != nil {
		return nil, err
	}

	edited, err := opts.Editor.Edit(ctx, text)
	if err != nil {
		return nil, err
	}

	if edited == text {
		log.Debug().Msg("Rename list unchanged")
	}

	return apply.ApplyText(edited, opts.Apply)
}
