package nav

import (
	"math/rand"
	"sort"
	"strings"
	"testing"
	"time"

	"voider-dos/internal/cipher"
	"voider-dos/internal/generate"
	"voider-dos/internal/vfs"
)

var epoch = time.Date(2025, time.January, 1, 0, 0, 0, 0, time.UTC)

type recorder struct {
	decrypted []string
	firsts    []bool
	opened    []string
}

func (r *recorder) DirectoryDecrypted(d *vfs.Directory, first bool) {
	r.decrypted = append(r.decrypted, d.Name)
	r.firsts = append(r.firsts, first)
}

func (r *recorder) FileOpened(f *vfs.File) {
	r.opened = append(r.opened, f.FullName())
}

// testWorld builds:
//
//	VOID:\
//	  Users\
//	    Public\          plain
//	    Secret42\        caesar, shift 3
//	      Inner\
//	    Archive\         hex
//	    NOTE.txt
//	    egg.bin          easter egg, hidden
//	  Temp\              hidden
func testWorld(t *testing.T) (*generate.World, map[string]*vfs.Directory) {
	t.Helper()
	eng, err := cipher.NewEngine(rand.New(rand.NewSource(1)), cipher.DefaultConfig())
	if err != nil {
		t.Fatal(err)
	}
	root := vfs.NewRoot(epoch)
	stats := &vfs.Stats{}
	dirs := map[string]*vfs.Directory{}

	add := func(parent *vfs.Directory, name string, kind cipher.Kind) *vfs.Directory {
		d := vfs.NewDirectory(name, epoch, epoch)
		switch kind {
		case "":
		case cipher.Caesar:
			d.Encrypt(kind, cipher.EncodeCaesar(name, 3), cipher.ShiftKey(3))
		default:
			text, key, err := eng.Encode(name, kind)
			if err != nil {
				t.Fatal(err)
			}
			d.Encrypt(kind, text, key)
		}
		parent.AddChild(d)
		stats.AddDir(d)
		dirs[name] = d
		return d
	}

	users := add(root, "Users", "")
	add(users, "Public", "")
	secret := add(users, "Secret42", cipher.Caesar)
	add(secret, "Inner", "")
	add(users, "Archive", cipher.Hex)
	temp := add(root, "Temp", "")
	temp.Hidden = true

	note := &vfs.File{Name: "NOTE", Extension: ".txt", Content: "hello", Size: 5, ScoreValue: vfs.PlainFileScore}
	egg := &vfs.File{Name: "egg", Extension: ".bin", EasterEgg: true, Hidden: true, Binary: true, Size: 9, ScoreValue: vfs.EasterEggScore}
	for _, f := range []*vfs.File{note, egg} {
		users.AddChild(f)
		stats.AddFile(f)
	}

	return &generate.World{Root: root, Seed: 77, Stats: stats}, dirs
}

func names(entries []Entry) []string {
	out := make([]string, len(entries))
	for i, e := range entries {
		out[i] = e.Name()
	}
	return out
}

func TestChangeDirectoryUpFromRoot(t *testing.T) {
	w, _ := testWorld(t)
	n := New(w, nil)
	r := n.ChangeDirectory("..")
	if r.OK || r.Message != "Already at the root directory" {
		t.Errorf("cd .. at root = %+v", r)
	}
	if n.CurrentPath() != `VOID:\` {
		t.Errorf("path changed to %q", n.CurrentPath())
	}
}

func TestChangeDirectoryRoundTrip(t *testing.T) {
	w, dirs := testWorld(t)
	n := New(w, nil)
	for _, step := range []string{"users", "PUBLIC"} {
		if r := n.ChangeDirectory(step); !r.OK {
			t.Fatalf("cd %s: %s", step, r.Message)
		}
	}
	if n.Current() != dirs["Public"] || n.CurrentPath() != `VOID:\Users\Public\` {
		t.Fatalf("at %q", n.CurrentPath())
	}
	if n.CurrentPath() != n.Current().Path {
		t.Errorf("segments %q disagree with node path %q", n.CurrentPath(), n.Current().Path)
	}
	if r := n.ChangeDirectory(".."); !r.OK {
		t.Fatal(r.Message)
	}
	if n.Current() != dirs["Users"] || n.CurrentPath() != `VOID:\Users\` {
		t.Errorf("after cd .. at %q", n.CurrentPath())
	}
	for _, noop := range []string{".", "", "  "} {
		if r := n.ChangeDirectory(noop); !r.OK || n.Current() != dirs["Users"] {
			t.Errorf("cd %q moved or failed: %+v", noop, r)
		}
	}
	if r := n.ChangeDirectory(`\`); !r.OK || n.Current() != w.Root || n.CurrentPath() != `VOID:\` {
		t.Errorf(`cd \ = %+v at %q`, r, n.CurrentPath())
	}
}

func TestChangeDirectoryFailures(t *testing.T) {
	w, dirs := testWorld(t)
	n := New(w, nil)
	n.ChangeDirectory("Users")

	if r := n.ChangeDirectory("nowhere"); r.OK || !strings.Contains(r.Message, "not found") {
		t.Errorf("cd missing = %+v", r)
	}
	if r := n.ChangeDirectory("NOTE.txt"); r.OK {
		t.Errorf("cd into a file succeeded")
	}
	secret := dirs["Secret42"]
	r := n.ChangeDirectory(secret.CipherText)
	if r.OK || !strings.Contains(r.Message, "decode "+secret.CipherText) {
		t.Errorf("cd into encrypted dir = %+v", r)
	}
	if n.Current() != dirs["Users"] {
		t.Errorf("failed cd moved the cursor")
	}
}

func TestListOrderingAndHidden(t *testing.T) {
	w, dirs := testWorld(t)
	n := New(w, nil)
	if got := names(n.List(false)); strings.Join(got, "|") != "Users" {
		t.Errorf("root listing = %v", got)
	}
	if got := names(n.List(true)); strings.Join(got, "|") != "Temp|Users" {
		t.Errorf("root listing with hidden = %v", got)
	}

	n.ChangeDirectory("Users")
	got := n.List(false)
	// Directories sort by display name, so encrypted ones sort by cipher text.
	sortedDirs := []string{dirs["Archive"].Name, "Public", dirs["Secret42"].Name}
	sort.Strings(sortedDirs)
	want := append(append([]string{".."}, sortedDirs...), "NOTE.txt")
	if strings.Join(names(got), "|") != strings.Join(want, "|") {
		t.Errorf("listing = %v, want %v", names(got), want)
	}
	if !got[0].Up {
		t.Error("first entry is not the parent marker")
	}
	withHidden := names(n.List(true))
	if withHidden[len(withHidden)-1] != "egg.bin" {
		t.Errorf("hidden file missing from /a listing: %v", withHidden)
	}
}

func TestOpenFile(t *testing.T) {
	w, _ := testWorld(t)
	rec := &recorder{}
	n := New(w, rec)
	n.ChangeDirectory("Users")

	f, r := n.OpenFile("note.TXT")
	if f == nil || !r.OK || f.FullName() != "NOTE.txt" {
		t.Fatalf("open full name = %v, %+v", f, r)
	}
	f, r = n.OpenFile("egg")
	if f == nil || !r.OK || !f.EasterEgg {
		t.Fatalf("open by stem = %v, %+v", f, r)
	}
	if f, r = n.OpenFile("missing.txt"); f != nil || r.OK {
		t.Errorf("open missing = %v, %+v", f, r)
	}
	if f, _ = n.OpenFile("Public"); f != nil {
		t.Errorf("opened a directory as a file")
	}
	if strings.Join(rec.opened, "|") != "NOTE.txt|egg.bin" {
		t.Errorf("open events = %v", rec.opened)
	}
}

func TestAttemptDecryptOneWay(t *testing.T) {
	w, dirs := testWorld(t)
	rec := &recorder{}
	n := New(w, rec)
	n.ChangeDirectory("Users")
	secret := dirs["Secret42"]
	cipherText := secret.CipherText
	before := w.Stats.EncryptedDirs

	if r := n.ChangeDirectory(cipherText); r.OK {
		t.Fatal("entered an encrypted directory")
	}

	wrong := n.AttemptDecrypt(cipherText, "Secret41")
	if wrong.OK || wrong.Dir != nil || wrong.Message != "Incorrect decryption. Try again." {
		t.Errorf("wrong attempt = %+v", wrong)
	}
	if !secret.Encrypted || w.Stats.EncryptedDirs != before {
		t.Error("wrong attempt changed state")
	}

	ok := n.AttemptDecrypt(strings.ToLower(cipherText), "  secret42 ")
	if !ok.OK || ok.Dir != secret || !ok.First || ok.Message != "Directory decrypted: Secret42" {
		t.Fatalf("correct attempt = %+v", ok)
	}
	if secret.Encrypted || !secret.Decoded || secret.Name != "Secret42" {
		t.Errorf("state after decrypt: %+v", secret)
	}
	if w.Stats.EncryptedDirs != before-1 {
		t.Errorf("EncryptedDirs = %d, want %d", w.Stats.EncryptedDirs, before-1)
	}
	if r := n.ChangeDirectory("secret42"); !r.OK {
		t.Fatalf("cd after decrypt: %s", r.Message)
	}
	if n.CurrentPath() != `VOID:\Users\Secret42\` || dirs["Inner"].Path != `VOID:\Users\Secret42\Inner\` {
		t.Errorf("paths after decrypt: %q, %q", n.CurrentPath(), dirs["Inner"].Path)
	}
	n.ChangeDirectory("..")

	again := n.AttemptDecrypt(cipherText, "Secret42")
	if again.OK || !strings.Contains(again.Message, "not found") {
		t.Errorf("second decrypt = %+v", again)
	}
	if w.Stats.EncryptedDirs != before-1 {
		t.Error("second decrypt changed stats")
	}

	archive := dirs["Archive"]
	if r := n.AttemptDecrypt(archive.CipherText, "archive"); !r.OK || r.First {
		t.Errorf("second directory decrypt = %+v", r)
	}
	if strings.Join(rec.decrypted, "|") != "Secret42|Archive" || !rec.firsts[0] || rec.firsts[1] {
		t.Errorf("events = %v %v", rec.decrypted, rec.firsts)
	}
	if n.Decrypted() != 2 {
		t.Errorf("Decrypted() = %d", n.Decrypted())
	}
}

func TestAttemptDecryptWrongContext(t *testing.T) {
	w, dirs := testWorld(t)
	n := New(w, nil)
	r := n.AttemptDecrypt(dirs["Archive"].CipherText, "Archive")
	if r.OK || !strings.Contains(r.Message, "not found") {
		t.Errorf("decrypt from root = %+v", r)
	}
	if !dirs["Archive"].Encrypted {
		t.Error("directory decoded from the wrong context")
	}
}

func TestSearch(t *testing.T) {
	w, dirs := testWorld(t)
	n := New(w, nil)

	hits := n.Search("cret4", vfs.Any)
	if len(hits) != 1 {
		t.Fatalf("search = %+v", hits)
	}
	h := hits[0]
	secret := dirs["Secret42"]
	if !h.Dir || !h.Encrypted || h.Name != "Secret42" || h.Node != secret {
		t.Errorf("hit = %+v", h)
	}
	if h.Path != `VOID:\Users\`+secret.CipherText+`\` {
		t.Errorf("hit path %q should show the cipher text", h.Path)
	}

	if got := n.Search("NOTE", vfs.Any); len(got) != 1 || got[0].Dir || got[0].Size != 5 || got[0].Path != `VOID:\Users\NOTE.txt` {
		t.Errorf("file search = %+v", got)
	}
	if got := n.Search("e", vfs.Files); len(got) != 2 {
		t.Errorf("files-only search = %d hits", len(got))
	}
	for _, m := range n.Search("e", vfs.Dirs) {
		if !m.Dir || m.Size != 0 {
			t.Errorf("dirs-only search returned %+v", m)
		}
	}
	if got := n.Search("zzz", vfs.Any); len(got) != 0 {
		t.Errorf("search for absent term = %+v", got)
	}
}

func TestStatsSnapshot(t *testing.T) {
	w, _ := testWorld(t)
	n := New(w, nil)
	n.ChangeDirectory("Users")
	s := n.Stats()
	if s.Seed != 77 || s.CurrentPath != `VOID:\Users\` || s.Items != 5 {
		t.Errorf("snapshot = %+v", s)
	}
	if s.TotalDirs != 6 || s.TotalFiles != 2 || s.EncryptedDirs != 2 || s.EasterEggs != 1 {
		t.Errorf("snapshot stats = %+v", s.Stats)
	}
}

func TestMultiListener(t *testing.T) {
	a, b := &recorder{}, &recorder{}
	l := Multi(a, nil, b)
	f := &vfs.File{Name: "x", Extension: ".log"}
	l.FileOpened(f)
	if len(a.opened) != 1 || len(b.opened) != 1 {
		t.Errorf("fan-out = %v %v", a.opened, b.opened)
	}
}

// Every encrypted directory met while walking a generated world decodes with
// its original name and can then be entered.
func TestGeneratedWorldDecryptAll(t *testing.T) {
	for seed := int64(0); seed < 5; seed++ {
		w, err := generate.Generate(generate.DefaultConfig(), seed)
		if err != nil {
			t.Fatal(err)
		}
		n := New(w, nil)
		initial := w.Stats.EncryptedDirs
		var visit func()
		visit = func() {
			for _, e := range n.List(true) {
				if e.Dir == nil {
					continue
				}
				d := e.Dir
				if d.Encrypted {
					if r := n.AttemptDecrypt(d.CipherText, d.OriginalName); !r.OK {
						t.Fatalf("seed=%d: decrypt %s at %s: %s", seed, d.CipherText, n.CurrentPath(), r.Message)
					}
				}
				here := n.CurrentPath()
				if r := n.ChangeDirectory(d.Name); !r.OK {
					t.Fatalf("seed=%d: cd %s: %s", seed, d.Name, r.Message)
				}
				if n.CurrentPath() != d.Path {
					t.Fatalf("seed=%d: path %q != node path %q", seed, n.CurrentPath(), d.Path)
				}
				visit()
				n.ChangeDirectory("..")
				if n.CurrentPath() != here {
					t.Fatalf("seed=%d: cd .. gave %q, want %q", seed, n.CurrentPath(), here)
				}
			}
		}
		visit()
		if w.Stats.EncryptedDirs != initial-n.Decrypted() {
			t.Errorf("seed=%d: %d encrypted left after %d of %d decrypted", seed, w.Stats.EncryptedDirs, n.Decrypted(), initial)
		}
		if initial > 0 && n.Decrypted() == 0 {
			t.Errorf("seed=%d: nothing decrypted", seed)
		}
	}
}
