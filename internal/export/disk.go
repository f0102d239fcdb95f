package export

import (
	"os"
	"path/filepath"
	"time"

	"github.com/absfs/absfs"
)

// Dir returns a file system rooted at the host directory root. Every name
// is resolved below root, so "/VOID" maps to root/VOID.
func Dir(root string) absfs.FileSystem {
	return &diskFS{root: root}
}

type diskFS struct {
	root string
	cwd  string
}

func (fs *diskFS) path(name string) string {
	return filepath.Join(fs.root, filepath.FromSlash(name))
}

func (fs *diskFS) OpenFile(name string, flag int, perm os.FileMode) (absfs.File, error) {
	return os.OpenFile(fs.path(name), flag, perm)
}

func (fs *diskFS) Open(name string) (absfs.File, error) {
	return fs.OpenFile(name, os.O_RDONLY, 0)
}

func (fs *diskFS) Create(name string) (absfs.File, error) {
	return fs.OpenFile(name, os.O_RDWR|os.O_CREATE|os.O_TRUNC, 0o666)
}

func (fs *diskFS) Mkdir(name string, perm os.FileMode) error {
	return os.Mkdir(fs.path(name), perm)
}

func (fs *diskFS) MkdirAll(name string, perm os.FileMode) error {
	return os.MkdirAll(fs.path(name), perm)
}

func (fs *diskFS) Remove(name string) error {
	return os.Remove(fs.path(name))
}

func (fs *diskFS) RemoveAll(name string) error {
	return os.RemoveAll(fs.path(name))
}

func (fs *diskFS) Rename(oldpath, newpath string) error {
	return os.Rename(fs.path(oldpath), fs.path(newpath))
}

func (fs *diskFS) Stat(name string) (os.FileInfo, error) {
	return os.Stat(fs.path(name))
}

func (fs *diskFS) Chmod(name string, mode os.FileMode) error {
	return os.Chmod(fs.path(name), mode)
}

func (fs *diskFS) Chtimes(name string, atime, mtime time.Time) error {
	return os.Chtimes(fs.path(name), atime, mtime)
}

func (fs *diskFS) Chown(name string, uid, gid int) error {
	return os.Chown(fs.path(name), uid, gid)
}

func (fs *diskFS) Truncate(name string, size int64) error {
	return os.Truncate(fs.path(name), size)
}

func (fs *diskFS) Separator() uint8     { return '/' }
func (fs *diskFS) ListSeparator() uint8 { return os.PathListSeparator }
func (fs *diskFS) TempDir() string      { return os.TempDir() }

func (fs *diskFS) Chdir(dir string) error {
	fs.cwd = dir
	return nil
}

func (fs *diskFS) Getwd() (string, error) {
	if fs.cwd == "" {
		return "/", nil
	}
	return fs.cwd, nil
}
