// Package output renders the user-facing report of a rename run.
//
// Each engine event becomes one line on the configured writer, styled with
// the semantic styles from pkg/output/styles when color is enabled:
//
//	Renamed draft.txt to final.txt
//	Failed to rename notes.md to notes/: rename notes.md notes/: file exists
//	Rolling back renames due to errors
//	Rolled back final.txt to draft.txt
//
// Color is decided once per Reporter from the ColorMode, the NO_COLOR
// environment variable, and whether the writer is a terminal.
package output
