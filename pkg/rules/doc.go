// Package rules decides which files the mirror pass leaves behind.
//
// Exclusions are configured as bare extensions ("tmp", ".log"). They are
// normalized once into an ExclusionSet and compared exactly and
// case-sensitively against a file's extension, without the leading dot.
// Files without an extension are never excluded.
package rules
