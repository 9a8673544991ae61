// Package filesystem provides filesystem implementations for backup.
//
// This package contains the afero-backed implementation of the types.FS
// interface, used over the real OS filesystem in production and over an
// in-memory filesystem in tests, plus the walk and copy primitives the
// clean and mirror passes are built on.
package filesystem
