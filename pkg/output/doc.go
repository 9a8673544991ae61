// Package output prints the informational lines of a backup run.
//
// Printer implements types.Reporter: the clean and mirror passes emit events
// and the printer turns them into styled terminal lines. The lines are for
// people; nothing should parse them.
package output
