// Package vfs holds the in-memory tree of a generated file system: directories
// that may carry an encrypted display name, and the files inside them.
package vfs

import (
	"strings"
	"time"

	"voider-dos/internal/cipher"
)

const (
	// RootName is the display name of every generated root.
	RootName = "VOID"
	// Separator terminates every directory path segment.
	Separator = `\`
	// RootPath is the materialized path of the root directory.
	RootPath = RootName + ":" + Separator
)

// Node is either a *Directory or a *File. The set is closed; consumers switch
// over both cases.
type Node interface {
	isNode()
}

// Kind filters child lookups.
type Kind uint8

const (
	Any Kind = iota
	Dirs
	Files
)

// Directory is an interior node. Children are owned by the directory; the
// parent link only serves upward navigation and path rebuilding.
type Directory struct {
	Name         string // display name; equals CipherText while encrypted
	Path         string
	OriginalName string // set once the directory has been encrypted
	Created      time.Time
	Modified     time.Time
	Special      bool
	Hidden       bool
	System       bool
	ScoreValue   int
	Children     []Node

	Encrypted  bool
	Cipher     cipher.Kind
	CipherText string
	Key        cipher.Key
	Decoded    bool

	parent *Directory
}

func (*Directory) isNode() {}

// NewRoot returns an empty root directory.
func NewRoot(created time.Time) *Directory {
	return &Directory{
		Name:       RootName,
		Path:       RootPath,
		Created:    created,
		Modified:   created,
		ScoreValue: DirScore,
	}
}

// NewDirectory returns a detached directory. Its path is assigned when it is
// added to a parent.
func NewDirectory(name string, created, modified time.Time) *Directory {
	return &Directory{
		Name:       name,
		Created:    created,
		Modified:   modified,
		ScoreValue: DirScore,
	}
}

// ChildPath builds the path of a directory called name under parentPath.
func ChildPath(parentPath, name string) string {
	return parentPath + name + Separator
}

// Parent returns the containing directory, or nil for the root.
func (d *Directory) Parent() *Directory { return d.parent }

// AddChild appends n and links it to d. A directory child gets its path from
// its current display name, so encrypt it before adding it.
func (d *Directory) AddChild(n Node) {
	switch c := n.(type) {
	case *Directory:
		c.parent = d
		c.Path = ChildPath(d.Path, c.Name)
	case *File:
		c.parent = d
	}
	d.Children = append(d.Children, n)
}

// FindChild returns the first child whose name matches case-insensitively.
// Directories match on display name or cipher text, files on their full name.
func (d *Directory) FindChild(name string, kind Kind) Node {
	for _, n := range d.Children {
		switch c := n.(type) {
		case *Directory:
			if kind == Files {
				continue
			}
			if strings.EqualFold(c.Name, name) || (c.Encrypted && strings.EqualFold(c.CipherText, name)) {
				return c
			}
		case *File:
			if kind == Dirs {
				continue
			}
			if strings.EqualFold(c.FullName(), name) {
				return c
			}
		}
	}
	return nil
}

// DirNameTaken reports whether a child directory already answers to name,
// ignoring case, by display name, plaintext name or cipher text. A directory
// is reachable by every one of those, so siblings must not share any.
func (d *Directory) DirNameTaken(name string) bool {
	for _, n := range d.Children {
		c, ok := n.(*Directory)
		if !ok {
			continue
		}
		if strings.EqualFold(c.Name, name) || strings.EqualFold(c.PlainName(), name) ||
			(c.CipherText != "" && strings.EqualFold(c.CipherText, name)) {
			return true
		}
	}
	return false
}

// ChildCounts returns the number of direct subdirectories and files.
func (d *Directory) ChildCounts() (dirs, files int) {
	for _, n := range d.Children {
		switch n.(type) {
		case *Directory:
			dirs++
		case *File:
			files++
		}
	}
	return dirs, files
}

// PlainName returns the plaintext name whether or not the directory is
// currently encrypted.
func (d *Directory) PlainName() string {
	if d.OriginalName != "" {
		return d.OriginalName
	}
	return d.Name
}

// Encrypt replaces the display name with cipherText. It reports false and
// changes nothing when the directory is already encrypted or was decoded.
func (d *Directory) Encrypt(kind cipher.Kind, cipherText string, key cipher.Key) bool {
	if d.Encrypted || d.Decoded {
		return false
	}
	d.OriginalName = d.Name
	d.Name = cipherText
	d.CipherText = cipherText
	d.Cipher = kind
	d.Key = key
	d.Encrypted = true
	if d.parent != nil {
		d.Path = ChildPath(d.parent.Path, d.Name)
	}
	return true
}

// Decode restores the original name and rebuilds the paths of the directory
// and everything below it. It reports false if d was not encrypted.
func (d *Directory) Decode() bool {
	if !d.Encrypted {
		return false
	}
	d.Name = d.OriginalName
	d.Encrypted = false
	d.Decoded = true
	if d.parent != nil {
		d.Path = ChildPath(d.parent.Path, d.Name)
	}
	d.refreshPaths()
	return true
}

func (d *Directory) refreshPaths() {
	for _, n := range d.Children {
		if c, ok := n.(*Directory); ok {
			c.Path = ChildPath(d.Path, c.Name)
			c.refreshPaths()
		}
	}
}

// Depth is the number of edges between d and the root.
func (d *Directory) Depth() int {
	depth := 0
	for p := d.parent; p != nil; p = p.parent {
		depth++
	}
	return depth
}

// Walk visits d and every descendant depth-first in child order. depth is
// relative to d.
func (d *Directory) Walk(fn func(n Node, depth int)) {
	d.walk(fn, 0)
}

func (d *Directory) walk(fn func(Node, int), depth int) {
	fn(d, depth)
	for _, n := range d.Children {
		switch c := n.(type) {
		case *Directory:
			c.walk(fn, depth+1)
		case *File:
			fn(c, depth+1)
		}
	}
}
