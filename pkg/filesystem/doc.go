// Package filesystem provides filesystem implementations for retitle.
//
// This package contains implementations of the types.FS interface: the OS
// filesystem rooted at a working directory, and an afero adapter used for
// in-memory filesystems in tests.
package filesystem
