package types

// Outcome classifies how a rename run ended
type Outcome string

const (
	// OutcomeCompleted means every non-noop pair was renamed
	OutcomeCompleted Outcome = "completed"

	// OutcomeRolledBack means a forward rename failed and every
	// previously applied rename was reversed
	OutcomeRolledBack Outcome = "rolled_back"

	// OutcomeRollbackFailed means an undo rename failed. The filesystem is
	// left in a partially reversed state and the run must not continue.
	OutcomeRollbackFailed Outcome = "rollback_failed"
)

// Failure records the rename that failed and its cause
type Failure struct {
	Pair RenamePair
	Err  error
}

// ApplyResult is the full account of one engine run
type ApplyResult struct {
	Outcome Outcome

	// Applied holds the pairs that were renamed, in application order.
	// Pairs that were later rolled back remain listed here.
	Applied []RenamePair

	// Skipped counts no-op pairs that were never attempted
	Skipped int

	// Failure is the forward rename that stopped the run, if any
	Failure *Failure

	// RolledBack holds the pairs that were reversed, in undo order
	RolledBack []RenamePair

	// RollbackFailure is the undo rename that aborted the run, if any
	RollbackFailure *Failure
}

// Succeeded reports whether the run finished without any failure
func (r *ApplyResult) Succeeded() bool {
	return r.Outcome == OutcomeCompleted
}

// Fatal reports whether the run ended in an unrecoverable state
func (r *ApplyResult) Fatal() bool {
	return r.Outcome == OutcomeRollbackFailed
}
