// Package nav tracks a player's position in a generated tree and answers the
// queries the console needs: listing, moving, opening, decrypting and
// searching. Every outcome is a value; nothing here returns an error.
package nav

import (
	"fmt"
	"sort"
	"strings"

	"voider-dos/internal/cipher"
	"voider-dos/internal/generate"
	"voider-dos/internal/vfs"
)

// Result is the outcome of a command that either succeeds or explains why not.
type Result struct {
	OK      bool
	Message string
}

// DecryptResult is the outcome of AttemptDecrypt. Dir is set only on success.
type DecryptResult struct {
	OK      bool
	Dir     *vfs.Directory
	First   bool // first successful decryption this session
	Message string
}

// Entry is one line of a directory listing: the parent marker, a directory or
// a file.
type Entry struct {
	Up   bool
	Dir  *vfs.Directory
	File *vfs.File
}

// Name is the text shown for the entry.
func (e Entry) Name() string {
	switch {
	case e.Up:
		return ".."
	case e.Dir != nil:
		return e.Dir.Name
	case e.File != nil:
		return e.File.FullName()
	}
	return ""
}

// Match is one search hit. Name is the plaintext name used for matching;
// Path is the current display path.
type Match struct {
	Node      vfs.Node
	Dir       bool
	Name      string
	Path      string
	Encrypted bool
	Size      int
}

// Snapshot is a read-only view of session statistics.
type Snapshot struct {
	Seed int64
	vfs.Stats
	CurrentPath string
	Items       int
}

// Navigator holds the cursor into one world. It is not safe for concurrent
// use.
type Navigator struct {
	world     *generate.World
	cur       *vfs.Directory
	segments  []string
	decrypted int
	listener  Listener
}

// New starts at the root of w. l may be nil.
func New(w *generate.World, l Listener) *Navigator {
	return &Navigator{
		world:    w,
		cur:      w.Root,
		segments: []string{vfs.RootPath},
		listener: l,
	}
}

// SetListener replaces the event listener.
func (n *Navigator) SetListener(l Listener) { n.listener = l }

// Root returns the top of the tree.
func (n *Navigator) Root() *vfs.Directory { return n.world.Root }

// Current returns the directory the player is in.
func (n *Navigator) Current() *vfs.Directory { return n.cur }

// World returns the world being navigated.
func (n *Navigator) World() *generate.World { return n.world }

// Decrypted is the number of successful decryptions this session.
func (n *Navigator) Decrypted() int { return n.decrypted }

// CurrentPath joins the segments walked from the root.
func (n *Navigator) CurrentPath() string {
	return strings.Join(n.segments, "")
}

// List returns the current directory's entries: the parent marker unless at
// the root, then directories by display name, then files by full name.
// Hidden nodes are skipped unless showHidden is set.
func (n *Navigator) List(showHidden bool) []Entry {
	var dirs, files []Entry
	for _, c := range n.cur.Children {
		switch v := c.(type) {
		case *vfs.Directory:
			if v.Hidden && !showHidden {
				continue
			}
			dirs = append(dirs, Entry{Dir: v})
		case *vfs.File:
			if v.Hidden && !showHidden {
				continue
			}
			files = append(files, Entry{File: v})
		}
	}
	sort.SliceStable(dirs, func(i, j int) bool { return dirs[i].Name() < dirs[j].Name() })
	sort.SliceStable(files, func(i, j int) bool { return files[i].Name() < files[j].Name() })

	out := make([]Entry, 0, len(dirs)+len(files)+1)
	if n.cur != n.world.Root {
		out = append(out, Entry{Up: true})
	}
	out = append(out, dirs...)
	return append(out, files...)
}

// ChangeDirectory moves to the parent (".."), the root (`\`), or a child
// directory matched by display name or cipher text. Encrypted directories
// cannot be entered until decoded.
func (n *Navigator) ChangeDirectory(target string) Result {
	target = strings.TrimSpace(target)
	switch target {
	case "", ".":
		return Result{OK: true, Message: "Current directory: " + n.CurrentPath()}
	case "..":
		if n.cur == n.world.Root {
			return Result{Message: "Already at the root directory"}
		}
		n.cur = n.cur.Parent()
		n.segments = n.segments[:len(n.segments)-1]
		return Result{OK: true, Message: "Moved to " + n.CurrentPath()}
	case vfs.Separator, vfs.RootPath:
		n.cur = n.world.Root
		n.segments = n.segments[:1]
		return Result{OK: true, Message: "Moved to " + n.CurrentPath()}
	}

	d, _ := n.cur.FindChild(target, vfs.Dirs).(*vfs.Directory)
	if d == nil {
		return Result{Message: fmt.Sprintf("Directory '%s' not found", target)}
	}
	if d.Encrypted && !d.Decoded {
		return Result{Message: fmt.Sprintf("Directory is encrypted! Use: decode %s <decrypted name>", d.CipherText)}
	}
	n.cur = d
	n.segments = append(n.segments, d.Name+vfs.Separator)
	return Result{OK: true, Message: "Moved to " + n.CurrentPath()}
}

// FindChild looks up a direct child of the current directory.
func (n *Navigator) FindChild(name string, kind vfs.Kind) vfs.Node {
	return n.cur.FindChild(name, kind)
}

// OpenFile finds a file in the current directory by full name, falling back
// to the stem alone, and reports the open to the listener.
func (n *Navigator) OpenFile(name string) (*vfs.File, Result) {
	name = strings.TrimSpace(name)
	f, _ := n.cur.FindChild(name, vfs.Files).(*vfs.File)
	if f == nil {
		for _, c := range n.cur.Children {
			if cf, ok := c.(*vfs.File); ok && strings.EqualFold(cf.Name, name) {
				f = cf
				break
			}
		}
	}
	if f == nil {
		return nil, Result{Message: fmt.Sprintf("File '%s' not found", name)}
	}
	if n.listener != nil {
		n.listener.FileOpened(f)
	}
	return f, Result{OK: true, Message: "File found"}
}

// AttemptDecrypt checks attempt against the encrypted child of the current
// directory whose cipher text matches. A correct attempt decodes the
// directory permanently.
func (n *Navigator) AttemptDecrypt(cipherText, attempt string) DecryptResult {
	cipherText = strings.TrimSpace(cipherText)
	for _, c := range n.cur.Children {
		d, ok := c.(*vfs.Directory)
		if !ok || !d.Encrypted || d.Decoded || !strings.EqualFold(d.CipherText, cipherText) {
			continue
		}
		if v := cipher.Validate(attempt, d.OriginalName, d.Cipher, d.Key); !v.OK {
			return DecryptResult{Message: "Incorrect decryption. Try again."}
		}
		d.Decode()
		n.world.Stats.Decrypted()
		first := n.decrypted == 0
		n.decrypted++
		if n.listener != nil {
			n.listener.DirectoryDecrypted(d, first)
		}
		return DecryptResult{OK: true, Dir: d, First: first, Message: "Directory decrypted: " + d.Name}
	}
	return DecryptResult{Message: fmt.Sprintf("Encrypted directory '%s' not found", cipherText)}
}

// Search walks the whole tree for nodes whose plaintext name contains term,
// ignoring case. Directories match on their original name even while
// encrypted.
func (n *Navigator) Search(term string, kind vfs.Kind) []Match {
	term = strings.ToLower(term)
	var out []Match
	n.world.Root.Walk(func(node vfs.Node, depth int) {
		if depth == 0 {
			return
		}
		switch v := node.(type) {
		case *vfs.Directory:
			if kind == vfs.Files || !strings.Contains(strings.ToLower(v.PlainName()), term) {
				return
			}
			out = append(out, Match{Node: v, Dir: true, Name: v.PlainName(), Path: v.Path, Encrypted: v.Encrypted})
		case *vfs.File:
			if kind == vfs.Dirs || !strings.Contains(strings.ToLower(v.FullName()), term) {
				return
			}
			out = append(out, Match{Node: v, Name: v.FullName(), Path: v.Path(), Size: v.Size})
		}
	})
	return out
}

// Stats returns the seed, generation tally and cursor details.
func (n *Navigator) Stats() Snapshot {
	return Snapshot{
		Seed:        n.world.Seed,
		Stats:       *n.world.Stats,
		CurrentPath: n.CurrentPath(),
		Items:       len(n.cur.Children),
	}
}
