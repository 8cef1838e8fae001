// Package httpfs adapts a billy.Filesystem to the http.FileSystem
// contract, so the standard file handler can serve any billy backend
// (osfs in production, memfs in tests).
package httpfs

import (
	"io"
	"io/fs"
	"net/http"
	"os"
	"path"
	"sort"
	"time"

	"github.com/go-git/go-billy/v5"
	"github.com/pkg/errors"
)

// FS implements http.FileSystem over a billy.Filesystem.
type FS struct {
	fs billy.Filesystem
}

func New(bfs billy.Filesystem) FS {
	return FS{fs: bfs}
}

// Open resolves name against the underlying tree. Missing paths map to
// fs.ErrNotExist so the file handler answers 404.
func (f FS) Open(name string) (http.File, error) {
	name = path.Clean("/" + name)
	info, err := f.fs.Stat(name)
	if err != nil {
		// Some backends have no explicit entry for the tree root.
		if name == "/" {
			return &dir{fs: f.fs, path: name, info: rootInfo{}}, nil
		}
		return nil, mapErr(err)
	}
	if info.IsDir() {
		return &dir{fs: f.fs, path: name, info: info}, nil
	}
	bf, err := f.fs.Open(name)
	if err != nil {
		return nil, mapErr(err)
	}
	return &file{File: bf, fs: f.fs, path: name}, nil
}

func mapErr(err error) error {
	if os.IsNotExist(err) {
		return fs.ErrNotExist
	}
	return err
}

type file struct {
	billy.File
	fs   billy.Filesystem
	path string
}

func (f *file) Stat() (fs.FileInfo, error) {
	return f.fs.Stat(f.path)
}

func (f *file) Readdir(int) ([]fs.FileInfo, error) {
	return nil, errors.Errorf("%s is not a directory", f.path)
}

type dir struct {
	fs      billy.Filesystem
	path    string
	info    fs.FileInfo
	entries []fs.FileInfo
	off     int
}

func (d *dir) Stat() (fs.FileInfo, error) { return d.info, nil }

func (d *dir) Read([]byte) (int, error) {
	return 0, errors.Errorf("%s is a directory", d.path)
}

func (d *dir) Seek(offset int64, whence int) (int64, error) {
	if offset == 0 && whence == io.SeekStart {
		d.off = 0
		return 0, nil
	}
	return 0, errors.Errorf("seek in directory %s", d.path)
}

func (d *dir) Readdir(count int) ([]fs.FileInfo, error) {
	if d.entries == nil {
		entries, err := d.fs.ReadDir(d.path)
		if err != nil {
			return nil, err
		}
		sort.Slice(entries, func(i, j int) bool { return entries[i].Name() < entries[j].Name() })
		d.entries = entries
	}
	if count <= 0 {
		rest := d.entries[d.off:]
		d.off = len(d.entries)
		return rest, nil
	}
	if d.off >= len(d.entries) {
		return nil, io.EOF
	}
	end := d.off + count
	if end > len(d.entries) {
		end = len(d.entries)
	}
	batch := d.entries[d.off:end]
	d.off = end
	return batch, nil
}

func (d *dir) Close() error { return nil }

// rootInfo stands in for the tree root on backends that do not track
// it as an entry.
type rootInfo struct{}

func (rootInfo) Name() string       { return "/" }
func (rootInfo) Size() int64        { return 0 }
func (rootInfo) Mode() fs.FileMode  { return fs.ModeDir | 0o755 }
func (rootInfo) ModTime() time.Time { return time.Time{} }
func (rootInfo) IsDir() bool        { return true }
func (rootInfo) Sys() interface{}   { return nil }
