// Package types defines the interfaces and value types shared by the clean
// and mirror passes: the filesystem abstraction and the progress events
// reported while a run executes.
package types
