// Package mirror replicates source trees under a destination root.
//
// Each source root is walked on its own, one after the other. Every entry is
// mapped with paths.MapDestination; directories are created (missing
// ancestors included) and files are copied unless their extension is in the
// exclusion set. Because the walk yields a directory before anything inside
// it, a file's destination directory always exists by the time it is
// copied.
//
// The first mapping or copy failure stops the whole run. Nothing is staged:
// whatever was written before the failure stays on disk.
package mirror
