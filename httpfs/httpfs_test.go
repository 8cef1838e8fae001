package httpfs

import (
	"io"
	"io/fs"
	"testing"

	"github.com/go-git/go-billy/v5/memfs"
	"github.com/go-git/go-billy/v5/util"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func fixture(t *testing.T) FS {
	t.Helper()

	tree := memfs.New()
	require.NoError(t, util.WriteFile(tree, "/index.html", []byte("<html/>"), 0o644))
	require.NoError(t, util.WriteFile(tree, "/assets/a.js", []byte("a"), 0o644))
	require.NoError(t, util.WriteFile(tree, "/assets/b.js", []byte("bb"), 0o644))
	return New(tree)
}

func TestOpenFile(t *testing.T) {
	t.Parallel()

	hfs := fixture(t)
	f, err := hfs.Open("/assets/b.js")
	require.NoError(t, err)
	defer f.Close()

	data, err := io.ReadAll(f)
	require.NoError(t, err)
	assert.Equal(t, "bb", string(data))

	info, err := f.Stat()
	require.NoError(t, err)
	assert.Equal(t, int64(2), info.Size())
	assert.False(t, info.IsDir())
}

func TestOpenMissing(t *testing.T) {
	t.Parallel()

	hfs := fixture(t)
	_, err := hfs.Open("/nope.css")
	require.Error(t, err)
	assert.True(t, errors.Is(err, fs.ErrNotExist))
}

func TestSeek(t *testing.T) {
	t.Parallel()

	hfs := fixture(t)
	f, err := hfs.Open("/index.html")
	require.NoError(t, err)
	defer f.Close()

	pos, err := f.Seek(1, io.SeekStart)
	require.NoError(t, err)
	assert.Equal(t, int64(1), pos)

	rest, err := io.ReadAll(f)
	require.NoError(t, err)
	assert.Equal(t, "html/>", string(rest))
}

func TestOpenDirectory(t *testing.T) {
	t.Parallel()

	hfs := fixture(t)
	d, err := hfs.Open("/assets")
	require.NoError(t, err)
	defer d.Close()

	info, err := d.Stat()
	require.NoError(t, err)
	assert.True(t, info.IsDir())

	entries, err := d.Readdir(-1)
	require.NoError(t, err)
	require.Len(t, entries, 2)
	assert.Equal(t, "a.js", entries[0].Name())
	assert.Equal(t, "b.js", entries[1].Name())
}

func TestReaddirBatches(t *testing.T) {
	t.Parallel()

	hfs := fixture(t)
	d, err := hfs.Open("/assets")
	require.NoError(t, err)
	defer d.Close()

	first, err := d.Readdir(1)
	require.NoError(t, err)
	require.Len(t, first, 1)

	second, err := d.Readdir(1)
	require.NoError(t, err)
	require.Len(t, second, 1)
	assert.NotEqual(t, first[0].Name(), second[0].Name())

	_, err = d.Readdir(1)
	assert.Equal(t, io.EOF, err)
}

func TestOpenRoot(t *testing.T) {
	t.Parallel()

	hfs := fixture(t)
	d, err := hfs.Open("/")
	require.NoError(t, err)
	defer d.Close()

	info, err := d.Stat()
	require.NoError(t, err)
	assert.True(t, info.IsDir())

	entries, err := d.Readdir(-1)
	require.NoError(t, err)
	names := make([]string, len(entries))
	for i, e := range entries {
		names[i] = e.Name()
	}
	assert.Contains(t, names, "index.html")
	assert.Contains(t, names, "assets")
}
