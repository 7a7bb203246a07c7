// Package engine applies rename pairs to a filesystem with fail-fast,
// best-effort undo semantics.
//
// A run is an explicit two-phase procedure:
//
//  1. Apply forward with a log. Pairs are renamed strictly in input order.
//     No-op pairs (from == to) are skipped without touching the filesystem.
//     Each successful rename is appended to the applied log. The first
//     failure stops forward progress.
//
//  2. Undo on the log in reverse. If phase 1 stopped on a failure, every
//     applied rename is reversed, last-applied first. Reverse order matters
//     for chains and swaps, where a later rename depends on an earlier one
//     having vacated a name.
//
// A failed forward rename is not fatal: the run ends with OutcomeRolledBack
// and a nil error once every undo succeeds. A failed undo is: rollback stops
// immediately, the result carries OutcomeRollbackFailed and Apply returns an
// ErrRollback error. The filesystem is then in a mixed state and the caller
// must end the process rather than continue.
//
// Renames run synchronously on the calling goroutine. The engine does not
// detect duplicate destinations or cycles; the underlying rename call
// defines where a batch fails.
package engine
