package nav

import "voider-dos/internal/vfs"

// Listener receives the facts a scoring or metrics collaborator needs. The
// navigator only reports; it never awards points.
type Listener interface {
	// DirectoryDecrypted fires after a successful decode. first is true for
	// the first decryption of the session.
	DirectoryDecrypted(d *vfs.Directory, first bool)
	// FileOpened fires for every successful open. Easter egg and special
	// status are on the file.
	FileOpened(f *vfs.File)
}

// Multi fans events out to every non-nil listener in order.
func Multi(ls ...Listener) Listener {
	out := make(multi, 0, len(ls))
	for _, l := range ls {
		if l != nil {
			out = append(out, l)
		}
	}
	return out
}

type multi []Listener

func (m multi) DirectoryDecrypted(d *vfs.Directory, first bool) {
	for _, l := range m {
		l.DirectoryDecrypted(d, first)
	}
}

func (m multi) FileOpened(f *vfs.File) {
	for _, l := range m {
		l.FileOpened(f)
	}
}
