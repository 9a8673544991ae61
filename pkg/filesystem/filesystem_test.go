package filesystem

import (
	"errors"
	"io/fs"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewOS(t *testing.T) {
	fsys := NewOS()
	tmpDir := t.TempDir()
	testFile := filepath.Join(tmpDir, "test.txt")

	require.NoError(t, fsys.WriteFile(testFile, []byte("hello world"), 0644))

	info, err := fsys.Stat(testFile)
	require.NoError(t, err)
	assert.Equal(t, "test.txt", info.Name())
	assert.Equal(t, int64(11), info.Size())

	content, err := fsys.ReadFile(testFile)
	require.NoError(t, err)
	assert.Equal(t, []byte("hello world"), content)

	require.NoError(t, fsys.MkdirAll(filepath.Join(tmpDir, "sub", "dir"), 0755))

	entries, err := fsys.ReadDir(tmpDir)
	require.NoError(t, err)
	require.Len(t, entries, 2)
	assert.Equal(t, "sub", entries[0].Name())
	assert.Equal(t, "test.txt", entries[1].Name())

	require.NoError(t, fsys.Remove(testFile))
	_, err = fsys.Stat(testFile)
	assert.True(t, os.IsNotExist(err))

	require.NoError(t, fsys.RemoveAll(filepath.Join(tmpDir, "sub")))
	_, err = fsys.Stat(filepath.Join(tmpDir, "sub"))
	assert.True(t, os.IsNotExist(err))
}

func TestReadFileRejectsDirectory(t *testing.T) {
	fsys := NewMemory()
	require.NoError(t, fsys.MkdirAll("/dir", 0755))

	_, err := fsys.ReadFile("/dir")
	assert.ErrorIs(t, err, fs.ErrInvalid)
}

func TestWalkVisitsDirectoryBeforeChildren(t *testing.T) {
	fsys := NewMemory()
	require.NoError(t, fsys.MkdirAll("/src/b/deep", 0755))
	require.NoError(t, fsys.MkdirAll("/src/a", 0755))
	require.NoError(t, fsys.WriteFile("/src/a/1.txt", []byte("1"), 0644))
	require.NoError(t, fsys.WriteFile("/src/b/deep/2.txt", []byte("2"), 0644))
	require.NoError(t, fsys.WriteFile("/src/z.txt", []byte("z"), 0644))

	var visited []string
	err := Walk(fsys, "/src", func(path string, info fs.FileInfo, err error) error {
		require.NoError(t, err)
		visited = append(visited, path)
		return nil
	})
	require.NoError(t, err)

	assert.Equal(t, []string{
		"/src",
		"/src/a",
		"/src/a/1.txt",
		"/src/b",
		"/src/b/deep",
		"/src/b/deep/2.txt",
		"/src/z.txt",
	}, visited)
}

func TestWalkSkipDirAfterRemoval(t *testing.T) {
	fsys := NewMemory()
	require.NoError(t, fsys.MkdirAll("/dst/old/nested", 0755))
	require.NoError(t, fsys.WriteFile("/dst/old/nested/f", []byte("x"), 0644))
	require.NoError(t, fsys.WriteFile("/dst/keep.txt", []byte("k"), 0644))

	var visited []string
	err := Walk(fsys, "/dst", func(path string, info fs.FileInfo, err error) error {
		require.NoError(t, err)
		visited = append(visited, path)
		if path == "/dst/old" {
			require.NoError(t, fsys.RemoveAll(path))
			return filepath.SkipDir
		}
		return nil
	})
	require.NoError(t, err)
	assert.Equal(t, []string{"/dst", "/dst/keep.txt", "/dst/old"}, visited)
}

func TestWalkSingleFileRoot(t *testing.T) {
	fsys := NewMemory()
	require.NoError(t, fsys.WriteFile("/notes.txt", []byte("n"), 0644))

	var visited []string
	err := Walk(fsys, "/notes.txt", func(path string, info fs.FileInfo, err error) error {
		visited = append(visited, path)
		assert.False(t, info.IsDir())
		return nil
	})
	require.NoError(t, err)
	assert.Equal(t, []string{"/notes.txt"}, visited)
}

func TestWalkMissingRootReportsError(t *testing.T) {
	fsys := NewMemory()
	sentinel := errors.New("stop")

	err := Walk(fsys, "/missing", func(path string, info fs.FileInfo, err error) error {
		assert.Nil(t, info)
		assert.True(t, os.IsNotExist(err))
		return sentinel
	})
	assert.ErrorIs(t, err, sentinel)
}

func TestWalkSkipAllStopsWithoutError(t *testing.T) {
	fsys := NewMemory()
	require.NoError(t, fsys.MkdirAll("/src/a", 0755))
	require.NoError(t, fsys.MkdirAll("/src/b", 0755))

	var visited []string
	err := Walk(fsys, "/src", func(path string, info fs.FileInfo, err error) error {
		visited = append(visited, path)
		if path == "/src/a" {
			return filepath.SkipAll
		}
		return nil
	})
	require.NoError(t, err)
	assert.Equal(t, []string{"/src", "/src/a"}, visited)
}

func TestCopyFile(t *testing.T) {
	tmpDir := t.TempDir()
	fsys := NewOS()
	src := filepath.Join(tmpDir, "run.sh")
	dst := filepath.Join(tmpDir, "copy.sh")

	require.NoError(t, os.WriteFile(src, []byte("#!/bin/sh\necho hi\n"), 0755))
	require.NoError(t, os.WriteFile(dst, []byte("old content that is longer than the new one"), 0600))

	n, err := CopyFile(fsys, src, dst)
	require.NoError(t, err)
	assert.Equal(t, int64(18), n)

	got, err := os.ReadFile(dst)
	require.NoError(t, err)
	assert.Equal(t, "#!/bin/sh\necho hi\n", string(got))

	info, err := os.Stat(dst)
	require.NoError(t, err)
	assert.Equal(t, fs.FileMode(0755), info.Mode().Perm())
}

func TestCopyFileErrors(t *testing.T) {
	fsys := NewMemory()
	require.NoError(t, fsys.MkdirAll("/dir", 0755))

	_, err := CopyFile(fsys, "/missing", "/out")
	assert.True(t, os.IsNotExist(err))

	_, err = CopyFile(fsys, "/dir", "/out")
	assert.Error(t, err)
}
