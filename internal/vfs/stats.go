package vfs

// Stats is the running tally kept while a tree is generated.
type Stats struct {
	TotalDirs     int
	TotalFiles    int
	EncryptedDirs int
	EasterEggs    int
	SpecialItems  int
}

// AddDir counts d. Call it after d has been encrypted, if it will be.
func (s *Stats) AddDir(d *Directory) {
	s.TotalDirs++
	if d.Encrypted {
		s.EncryptedDirs++
	}
	if d.Special {
		s.SpecialItems++
	}
}

// AddFile counts f.
func (s *Stats) AddFile(f *File) {
	s.TotalFiles++
	if f.EasterEgg {
		s.EasterEggs++
	}
	if f.Special {
		s.SpecialItems++
	}
}

// Decrypted records one encrypted to decoded transition.
func (s *Stats) Decrypted() {
	if s.EncryptedDirs > 0 {
		s.EncryptedDirs--
	}
}
