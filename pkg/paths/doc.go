// Package paths resolves where a backup run reads and writes.
//
// The destination root is the directory holding the running executable;
// the configuration file sits next to it. Both file names are protected from
// the clean pass, so they are resolved here from the actual runtime identity
// instead of being assumed.
//
// MapDestination computes where a source entry lands: the parent of the
// source root is stripped from the entry path and the remainder is joined to
// the destination root, so "/a/b/c/d/e.txt" under root "/a/b/c" becomes
// "<dest>/c/d/e.txt".
//
// # Environment Variables
//
//   - BACKUP_STATE_DIR: override the state directory (default: $XDG_STATE_HOME/backup)
package paths
