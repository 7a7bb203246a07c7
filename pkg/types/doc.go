// Package types defines the core types and interfaces used throughout retitle.
// This includes the RenamePair value type, the FS interface the engine and
// lister operate on, and the result structures produced by the rename engine.
package types
