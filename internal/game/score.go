package game

import "voider-dos/internal/vfs"

// Points awarded for session events.
const (
	PointsDecrypt        = 50
	PointsFirstDecrypt   = 50 // bonus on top of PointsDecrypt
	PointsFileOpened     = vfs.PlainFileScore
	PointsSpecialFile    = vfs.SpecialScore
	PointsEasterEggFound = vfs.EasterEggScore
)

// Award is one scoring event, queued until the console prints it.
type Award struct {
	Points int
	Reason string
}

// Score tallies a session. It implements nav.Listener so the navigator can
// report events without knowing the point values.
type Score struct {
	Total      int
	Decrypted  int
	Opened     int
	EasterEggs int
	Specials   int

	pending []Award
}

// DirectoryDecrypted awards the decryption and, the first time, the bonus.
func (s *Score) DirectoryDecrypted(_ *vfs.Directory, first bool) {
	s.Decrypted++
	if first {
		s.add(PointsFirstDecrypt, "first decryption bonus")
	}
	s.add(PointsDecrypt, "for decryption")
}

// FileOpened awards points for every open; rarer files pay more.
func (s *Score) FileOpened(f *vfs.File) {
	s.Opened++
	switch {
	case f.EasterEgg:
		s.EasterEggs++
		s.add(PointsEasterEggFound, "for finding an easter egg")
	case f.Special:
		s.Specials++
		s.add(PointsSpecialFile, "for a special file")
	default:
		s.add(PointsFileOpened, "for opening a file")
	}
}

func (s *Score) add(points int, reason string) {
	s.Total += points
	s.pending = append(s.pending, Award{Points: points, Reason: reason})
}

// Drain returns the awards since the last call and clears the queue.
func (s *Score) Drain() []Award {
	out := s.pending
	s.pending = nil
	return out
}
