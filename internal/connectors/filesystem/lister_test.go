package filesystem

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func touch(t *testing.T, dir, name string) {
	t.Helper()
	require.NoError(t, os.WriteFile(filepath.Join(dir, name), []byte("x"), 0600))
}

func TestListSortsAndSkipsSentinels(t *testing.T) {
	dir := t.TempDir()
	touch(t, dir, "2023-02.pdf")
	touch(t, dir, "2023-01.pdf")
	touch(t, dir, "2022-12.pdf")
	touch(t, dir, ".gitkeep")
	touch(t, dir, ".DS_Store")
	require.NoError(t, os.Mkdir(filepath.Join(dir, "archive"), 0700))

	names, err := Lister{}.List(dir)
	require.NoError(t, err)
	assert.Equal(t, []string{"2022-12.pdf", "2023-01.pdf", "2023-02.pdf"}, names)
}

func TestListEmptyDirectory(t *testing.T) {
	names, err := Lister{}.List(t.TempDir())
	require.NoError(t, err)
	assert.Empty(t, names)
}

func TestListMissingDirectory(t *testing.T) {
	_, err := Lister{}.List(filepath.Join(t.TempDir(), "nope"))
	assert.Error(t, err)
}
