package output

import (
	"fmt"
	"io"

	"github.com/arthur-debert/retitle/pkg/output/styles"
	"github.com/arthur-debert/retitle/pkg/types"
	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"
)

// Report lines
const (
	MsgRenamed         = "Renamed %s to %s"
	MsgRenameFailed    = "Failed to rename %s to %s: %v"
	MsgRollbackStarted = "Rolling back renames due to errors"
	MsgRolledBack      = "Rolled back %s to %s"
	MsgRollbackFailed  = "Failed to roll back %s to %s: %v"
	MsgWouldRename     = "Would rename %s to %s"
	MsgNoChanges       = "No changes."
	MsgDryRunNotice    = "DRY RUN MODE - No changes were made"
)

// Reporter writes engine events to an io.Writer, one line per event
type Reporter struct {
	w      io.Writer
	color  bool
	styles styles.Registry
}

var _ types.Reporter = (*Reporter)(nil)

// NewReporter creates a Reporter for w, colored according to mode
func NewReporter(w io.Writer, mode ColorMode) *Reporter {
	renderer := lipgloss.NewRenderer(w)
	color := ShouldColor(w, mode)
	if color && mode == ColorAlways {
		renderer.SetColorProfile(termenv.ANSI256)
	}
	if !color {
		renderer.SetColorProfile(termenv.Ascii)
	}

	return &Reporter{
		w:      w,
		color:  color,
		styles: styles.NewRegistry(renderer, styles.DefaultConfig()),
	}
}

func (r *Reporter) style(name, s string) string {
	if !r.color {
		return s
	}
	return r.styles.Get(name).Render(s)
}

func (r *Reporter) line(style, format string, args ...interface{}) {
	fmt.Fprintln(r.w, r.style(style, fmt.Sprintf(format, args...)))
}

func (r *Reporter) Renamed(p types.RenamePair) {
	r.line("Success", MsgRenamed, p.From, p.To)
}

func (r *Reporter) RenameFailed(p types.RenamePair, err error) {
	r.line("Error", MsgRenameFailed, p.From, p.To, err)
}

func (r *Reporter) RollbackStarted() {
	r.line("Warning", MsgRollbackStarted)
}

// RolledBack receives the undo rename, so p.From is the applied name
func (r *Reporter) RolledBack(p types.RenamePair) {
	r.line("Success", MsgRolledBack, p.From, p.To)
}

func (r *Reporter) RollbackFailed(p types.RenamePair, err error) {
	r.line("Fatal", MsgRollbackFailed, p.From, p.To, err)
}

func (r *Reporter) WouldRename(p types.RenamePair) {
	r.line("Muted", MsgWouldRename, p.From, p.To)
}

// Summary writes a closing line for runs that changed nothing
func (r *Reporter) Summary(result *types.ApplyResult, dryRun bool) {
	if dryRun {
		r.line("Warning", MsgDryRunNotice)
		return
	}
	if result.Succeeded() && len(result.Applied) == 0 {
		r.line("Muted", MsgNoChanges)
	}
}
