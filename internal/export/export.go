// Package export writes a generated tree into a real or in-memory file
// system so it can be browsed with ordinary tools.
package export

import (
	"fmt"
	"os"
	"path"
	"strconv"
	"strings"

	"voider-dos/internal/vfs"

	"github.com/absfs/absfs"
)

// Options controls what is written.
type Options struct {
	// Base is the directory in the target file system that receives the
	// tree. Defaults to "/".
	Base string
	// Reveal writes plaintext names for directories that are still
	// encrypted.
	Reveal bool
	// Hidden includes hidden files and directories.
	Hidden bool
}

// Summary counts what Write produced.
type Summary struct {
	Dirs  int
	Files int
	Bytes int64
}

// Write copies the tree under root into fsys as Base/VOID/... Directory and
// file timestamps are preserved. Sibling names that collide after cleaning
// get a "~N" suffix.
func Write(fsys absfs.FileSystem, root *vfs.Directory, opts Options) (Summary, error) {
	base := opts.Base
	if base == "" {
		base = "/"
	}
	w := &writer{fs: fsys, opts: opts}
	if err := w.dir(root, path.Join(base, cleanName(root.Name))); err != nil {
		return w.sum, err
	}
	return w.sum, nil
}

type writer struct {
	fs   absfs.FileSystem
	opts Options
	sum  Summary
}

func (w *writer) dir(d *vfs.Directory, p string) error {
	if err := w.fs.MkdirAll(p, 0o755); err != nil {
		return fmt.Errorf("mkdir %s: %w", p, err)
	}
	w.sum.Dirs++

	seen := make(map[string]int)
	for _, c := range d.Children {
		switch v := c.(type) {
		case *vfs.Directory:
			if v.Hidden && !w.opts.Hidden {
				continue
			}
			name := v.Name
			if w.opts.Reveal {
				name = v.PlainName()
			}
			if err := w.dir(v, path.Join(p, unique(seen, cleanName(name)))); err != nil {
				return err
			}
		case *vfs.File:
			if v.Hidden && !w.opts.Hidden {
				continue
			}
			if err := w.file(v, path.Join(p, unique(seen, cleanName(v.FullName())))); err != nil {
				return err
			}
		}
	}

	// Last, since writing children touches the directory's mtime.
	if err := w.fs.Chtimes(p, d.Modified, d.Modified); err != nil {
		return fmt.Errorf("chtimes %s: %w", p, err)
	}
	return nil
}

func (w *writer) file(f *vfs.File, p string) error {
	out, err := w.fs.OpenFile(p, os.O_CREATE|os.O_TRUNC|os.O_WRONLY, 0o644)
	if err != nil {
		return fmt.Errorf("create %s: %w", p, err)
	}
	n, err := out.Write([]byte(f.Content))
	if cerr := out.Close(); err == nil {
		err = cerr
	}
	if err != nil {
		return fmt.Errorf("write %s: %w", p, err)
	}
	w.sum.Files++
	w.sum.Bytes += int64(n)

	if err := w.fs.Chtimes(p, f.Modified, f.Modified); err != nil {
		return fmt.Errorf("chtimes %s: %w", p, err)
	}
	return nil
}

// cleanName makes a display name usable as one path segment. Base64 cipher
// text may contain '/'.
func cleanName(name string) string {
	name = strings.Map(func(r rune) rune {
		switch r {
		case '/', '\\', 0:
			return '_'
		}
		return r
	}, name)
	switch name {
	case "", ".", "..":
		return "_" + name
	}
	return name
}

// unique returns name, or name~N when a sibling already used it. Case is
// ignored so exports survive case-insensitive disks.
func unique(seen map[string]int, name string) string {
	key := strings.ToLower(name)
	seen[key]++
	if n := seen[key]; n > 1 {
		return name + "~" + strconv.Itoa(n)
	}
	return name
}
