package engine

import (
	"github.com/arthur-debert/retitle/pkg/errors"
	"github.com/arthur-debert/retitle/pkg/logging"
	"github.com/arthur-debert/retitle/pkg/types"
	"github.com/rs/zerolog"
)

// Engine applies rename pairs to a filesystem
type Engine struct {
	fs       types.FS
	reporter types.Reporter
	logger   zerolog.Logger
}

// New creates an engine that renames through fs and reports to reporter.
// A nil reporter discards events.
func New(fs types.FS, reporter types.Reporter) *Engine {
	if reporter == nil {
		reporter = discardReporter{}
	}
	return &Engine{
		fs:       fs,
		reporter: reporter,
		logger:   logging.GetLogger("engine"),
	}
}

// Plan returns the pairs a run would attempt, in order, with no-op pairs removed
func Plan(pairs []types.RenamePair) []types.RenamePair {
	planned := make([]types.RenamePair, 0, len(pairs))
	for _, p := range pairs {
		if p.IsNoop() {
			continue
		}
		planned = append(planned, p)
	}
	return planned
}

// DryRun reports every rename a run would attempt without touching the filesystem
func (e *Engine) DryRun(pairs []types.RenamePair) *types.ApplyResult {
	planned := Plan(pairs)
	for _, p := range planned {
		e.reporter.WouldRename(p)
	}
	e.logger.Info().
		Int("planned", len(planned)).
		Int("skipped", len(pairs)-len(planned)).
		Msg("Dry run completed")
	return &types.ApplyResult{
		Outcome: types.OutcomeCompleted,
		Applied: []types.RenamePair{},
		Skipped: len(pairs) - len(planned),
	}
}

// Apply renames each pair in order, stopping at the first failure and
// reversing the renames already applied. The returned error is non-nil only
// when an undo rename fails; see the package documentation.
func (e *Engine) Apply(pairs []types.RenamePair) (*types.ApplyResult, error) {
	done := logging.LogOperationStart(e.logger, "apply")
	defer done()

	result := &types.ApplyResult{
		Outcome: types.OutcomeCompleted,
		Applied: make([]types.RenamePair, 0, len(pairs)),
	}

	for _, p := range pairs {
		if p.IsNoop() {
			result.Skipped++
			e.logger.Trace().Str("name", p.From).Msg("Skipping unchanged entry")
			continue
		}

		if err := e.fs.Rename(p.From, p.To); err != nil {
			e.reporter.RenameFailed(p, err)
			e.logger.Debug().Err(err).
				Str("from", p.From).
				Str("to", p.To).
				Msg("Rename failed, stopping")
			result.Failure = &types.Failure{
				Pair: p,
				Err: errors.Wrapf(err, errors.ErrRename, "failed to rename %s to %s", p.From, p.To).
					WithDetail("from", p.From).
					WithDetail("to", p.To),
			}
			break
		}

		e.reporter.Renamed(p)
		e.logger.Debug().Str("from", p.From).Str("to", p.To).Msg("Renamed")
		result.Applied = append(result.Applied, p)
	}

	if result.Failure == nil {
		e.logger.Info().
			Int("applied", len(result.Applied)).
			Int("skipped", result.Skipped).
			Msg("All renames applied")
		return result, nil
	}

	return result, e.rollback(result)
}

// rollback reverses result.Applied last-first. It stops at the first undo
// that fails and returns it as an ErrRollback error.
func (e *Engine) rollback(result *types.ApplyResult) error {
	result.Outcome = types.OutcomeRolledBack
	result.RolledBack = make([]types.RenamePair, 0, len(result.Applied))

	e.reporter.RollbackStarted()
	e.logger.Info().
		Int("toRollBack", len(result.Applied)).
		Msg("Rolling back applied renames")

	for i := len(result.Applied) - 1; i >= 0; i-- {
		applied := result.Applied[i]
		undo := applied.Inverse()

		if err := e.fs.Rename(undo.From, undo.To); err != nil {
			e.reporter.RollbackFailed(undo, err)
			rollbackErr := errors.Wrapf(err, errors.ErrRollback,
				"failed to roll back %s to %s", undo.From, undo.To).
				WithDetail("from", undo.From).
				WithDetail("to", undo.To).
				WithDetail("pending", i)
			e.logger.Error().Err(err).
				Str("from", undo.From).
				Str("to", undo.To).
				Int("pending", i).
				Msg("Rollback failed, filesystem left partially reversed")

			result.Outcome = types.OutcomeRollbackFailed
			result.RollbackFailure = &types.Failure{Pair: undo, Err: rollbackErr}
			return rollbackErr
		}

		e.reporter.RolledBack(undo)
		result.RolledBack = append(result.RolledBack, applied)
	}

	e.logger.Info().Int("rolledBack", len(result.RolledBack)).Msg("Rollback completed")
	return nil
}

type discardReporter struct{}

func (discardReporter) Renamed(types.RenamePair)               {}
func (discardReporter) RenameFailed(types.RenamePair, error)   {}
func (discardReporter) RollbackStarted()                       {}
func (discardReporter) RolledBack(types.RenamePair)            {}
func (discardReporter) RollbackFailed(types.RenamePair, error) {}
func (discardReporter) WouldRename(types.RenamePair)           {}
