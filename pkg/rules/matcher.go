package rules

import (
	"path/filepath"
	"strings"
)

// NewExclusionSet normalizes configured extension tokens. Surrounding
// whitespace and leading dots are stripped, empty tokens are dropped and
// order is preserved.
func NewExclusionSet(tokens []string) ExclusionSet {
	set := make(ExclusionSet, 0, len(tokens))
	for _, token := range tokens {
		token = normalize(token)
		if token == "" {
			continue
		}
		set = append(set, token)
	}
	return set
}

// IsExcluded reports whether a file with extension ext must be skipped.
// An empty extension is never excluded.
func (s ExclusionSet) IsExcluded(ext string) bool {
	ext = normalize(ext)
	if ext == "" {
		return false
	}
	for _, token := range s {
		if normalize(token) == ext {
			return true
		}
	}
	return false
}

// IsExcluded is the functional form of ExclusionSet.IsExcluded for callers
// holding raw configuration tokens.
func IsExcluded(ext string, exclusions []string) bool {
	return ExclusionSet(exclusions).IsExcluded(ext)
}

// Extension returns the extension of the last element of path without the
// leading dot. Names without a dot, names whose only dot is the first
// character (".bashrc") and names ending in a dot have no extension.
func Extension(path string) string {
	name := filepath.Base(path)
	if name == "." || name == ".." || name == string(filepath.Separator) {
		return ""
	}
	i := strings.LastIndexByte(name, '.')
	if i <= 0 {
		return ""
	}
	return name[i+1:]
}

func normalize(token string) string {
	return strings.TrimLeft(strings.TrimSpace(token), ".")
}
