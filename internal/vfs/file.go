package vfs

import "time"

// TimeLayout formats node timestamps for display and file contents.
const TimeLayout = "2006-01-02 15:04:05"

// Score values fixed at creation.
const (
	DirScore       = 50
	PlainFileScore = 10
	SpecialScore   = 75
	EasterEggScore = 100
)

// FileScore picks a file's score by priority: easter egg, then special,
// then plain.
func FileScore(easterEgg, special bool) int {
	switch {
	case easterEgg:
		return EasterEggScore
	case special:
		return SpecialScore
	default:
		return PlainFileScore
	}
}

// File is a leaf node. It is never modified after generation.
type File struct {
	Name       string // stem
	Extension  string // includes the leading dot
	Content    string
	Size       int
	Created    time.Time
	Modified   time.Time
	EasterEgg  bool
	Special    bool
	Hidden     bool
	Binary     bool
	ScoreValue int

	parent *Directory
}

func (*File) isNode() {}

// FullName is the stem plus extension.
func (f *File) FullName() string { return f.Name + f.Extension }

// Parent returns the directory holding f, or nil while detached.
func (f *File) Parent() *Directory { return f.parent }

// Path is the parent's path followed by the full file name.
func (f *File) Path() string {
	if f.parent == nil {
		return f.FullName()
	}
	return f.parent.Path + f.FullName()
}
