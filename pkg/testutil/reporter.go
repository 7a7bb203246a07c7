package testutil

import (
	"fmt"

	"github.com/arthur-debert/retitle/pkg/types"
)

// RecordingReporter implements types.Reporter by recording each event as a
// short string such as "renamed a->b" or "rollback-failed b->a: boom"
type RecordingReporter struct {
	Events []string
}

// NewRecordingReporter creates an empty RecordingReporter
func NewRecordingReporter() *RecordingReporter {
	return &RecordingReporter{}
}

func (r *RecordingReporter) Renamed(p types.RenamePair) {
	r.Events = append(r.Events, fmt.Sprintf("renamed %s->%s", p.From, p.To))
}

func (r *RecordingReporter) RenameFailed(p types.RenamePair, err error) {
	r.Events = append(r.Events, fmt.Sprintf("failed %s->%s: %v", p.From, p.To, err))
}

func (r *RecordingReporter) RollbackStarted() {
	r.Events = append(r.Events, "rollback")
}

func (r *RecordingReporter) RolledBack(p types.RenamePair) {
	r.Events = append(r.Events, fmt.Sprintf("rolled-back %s->%s", p.From, p.To))
}

func (r *RecordingReporter) RollbackFailed(p types.RenamePair, err error) {
	r.Events = append(r.Events, fmt.Sprintf("rollback-failed %s->%s: %v", p.From, p.To, err))
}

func (r *RecordingReporter) WouldRename(p types.RenamePair) {
	r.Events = append(r.Events, fmt.Sprintf("would-rename %s->%s", p.From, p.To))
}
