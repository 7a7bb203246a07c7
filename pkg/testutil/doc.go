// Package testutil provides utilities for testing retitle components.
//
// Key components:
//   - NewTestFS: afero-backed in-memory filesystem for fast, isolated tests
//   - RecordingFS: wraps any types.FS, records rename calls in order and
//     injects failures on chosen renames
//   - RecordingReporter: captures engine events as comparable strings
//
// Usage guidelines:
//   - Engine, lister and command tests use NewTestFS
//   - Only pkg/filesystem and end-to-end command tests touch the real disk
//   - All test data should be defined inline, not in external files
package testutil
