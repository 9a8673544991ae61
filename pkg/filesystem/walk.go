package filesystem

import (
	"errors"
	"io/fs"
	"path/filepath"

	"github.com/arthur-debert/backup/pkg/types"
)

// WalkFunc is called for every entry visited by Walk. It follows the
// filepath.WalkFunc contract: returning filepath.SkipDir from a directory
// skips its contents, returning filepath.SkipAll stops the walk, and info is
// nil when err reports that the entry could not be stat'ed. A directory whose
// entries cannot be read is reported a second time with the read error.
type WalkFunc func(path string, info fs.FileInfo, err error) error

// Walk visits root and everything below it, depth first and in lexical order
// within each directory. A directory is always visited before its children.
// A symbolic link given as root is followed; links below it are reported
// but never followed.
func Walk(fsys types.FS, root string, fn WalkFunc) error {
	info, err := fsys.Stat(root)
	if err != nil {
		err = fn(root, nil, err)
	} else {
		err = walk(fsys, root, info, fn)
	}
	if errors.Is(err, filepath.SkipDir) || errors.Is(err, filepath.SkipAll) {
		return nil
	}
	return err
}

func walk(fsys types.FS, path string, info fs.FileInfo, fn WalkFunc) error {
	if !info.IsDir() {
		return fn(path, info, nil)
	}

	// The callback runs before the directory is read, so it may remove the
	// directory and answer SkipDir without the walk touching it again.
	if err := fn(path, info, nil); err != nil {
		return err
	}

	entries, err := fsys.ReadDir(path)
	if err != nil {
		// Second call for the same directory carries the read error
		return fn(path, info, err)
	}

	for _, entry := range entries {
		name := filepath.Join(path, entry.Name())
		childInfo, err := fsys.Lstat(name)
		if err != nil {
			if err := fn(name, nil, err); err != nil && !errors.Is(err, filepath.SkipDir) {
				return err
			}
			continue
		}
		if err := walk(fsys, name, childInfo, fn); err != nil {
			if !childInfo.IsDir() || !errors.Is(err, filepath.SkipDir) {
				return err
			}
		}
	}
	return nil
}
