package paths

import (
	"path/filepath"
	"strings"

	"github.com/arthur-debert/backup/pkg/errors"
)

// MapDestination returns where entryPath, found while walking sourceRoot,
// is written under destinationRoot. The parent of sourceRoot is removed from
// entryPath, so the last component of sourceRoot becomes the first component
// under destinationRoot. A single-file source root lands directly under
// destinationRoot.
func MapDestination(sourceRoot, entryPath, destinationRoot string) (string, error) {
	parent := filepath.Dir(filepath.Clean(sourceRoot))

	rel, err := filepath.Rel(parent, filepath.Clean(entryPath))
	if err != nil || rel == ".." || strings.HasPrefix(rel, ".."+string(filepath.Separator)) {
		return "", errors.Newf(errors.ErrPathMapping, "%s is not under %s", entryPath, parent).
			WithDetail("sourceRoot", sourceRoot).
			WithDetail("path", entryPath)
	}

	return filepath.Join(destinationRoot, rel), nil
}
