package filesystem

import (
	"fmt"
	"io"

	"github.com/arthur-debert/backup/pkg/types"
)

// CopyFile copies the bytes of src to dst, replacing dst if it exists, and
// gives dst the permission bits of src. The parent of dst must exist.
// It returns the number of bytes written.
func CopyFile(fsys types.FS, src, dst string) (int64, error) {
	info, err := fsys.Stat(src)
	if err != nil {
		return 0, err
	}
	if info.IsDir() {
		return 0, fmt.Errorf("%s is a directory", src)
	}

	in, err := fsys.Open(src)
	if err != nil {
		return 0, err
	}
	defer in.Close()

	out, err := fsys.Create(dst, info.Mode().Perm())
	if err != nil {
		return 0, err
	}

	n, err := io.Copy(out, in)
	if err != nil {
		_ = out.Close()
		return n, err
	}
	if err := out.Close(); err != nil {
		return n, err
	}

	// Create only applies perm to new files
	if err := fsys.Chmod(dst, info.Mode().Perm()); err != nil {
		return n, err
	}
	return n, nil
}
