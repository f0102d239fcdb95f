// Package remote adapts an SSH session into a tcell screen.
package remote

import (
	"fmt"
	"os"
	"sync"

	"github.com/gdamore/tcell/v2"
	gossh "github.com/gliderlabs/ssh"
)

// TTY implements tcell.Tty backed by a gliderlabs/ssh session. Each
// connected client gets its own TTY and screen.
type TTY struct {
	session gossh.Session
	winCh   <-chan gossh.Window
	watch   sync.Once

	mu     sync.Mutex
	window gossh.Window
	cb     func() // resize callback registered by tcell
}

// NewTTY wraps a session. pty holds the initial window size; winCh delivers
// later resizes and is closed by the server when the session ends.
func NewTTY(s gossh.Session, pty gossh.Pty, winCh <-chan gossh.Window) *TTY {
	return &TTY{
		session: s,
		window:  pty.Window,
		winCh:   winCh,
	}
}

func (t *TTY) Read(b []byte) (int, error)  { return t.session.Read(b) }
func (t *TTY) Write(b []byte) (int, error) { return t.session.Write(b) }
func (t *TTY) Close() error                { return t.session.Close() }

// Start, Stop and Drain are no-ops: the server handler owns the channel and
// SSH writes are not buffered.
func (t *TTY) Start() error { return nil }
func (t *TTY) Stop() error  { return nil }
func (t *TTY) Drain() error { return nil }

// WindowSize returns the last size reported by the client.
func (t *TTY) WindowSize() (tcell.WindowSize, error) {
	t.mu.Lock()
	defer t.mu.Unlock()
	return tcell.WindowSize{Width: t.window.Width, Height: t.window.Height}, nil
}

// NotifyResize registers cb for window changes; nil unregisters. tcell calls
// it again on shutdown, so the channel is drained by one goroutine only.
func (t *TTY) NotifyResize(cb func()) {
	t.mu.Lock()
	t.cb = cb
	t.mu.Unlock()

	t.watch.Do(func() {
		go func() {
			for win := range t.winCh {
				t.mu.Lock()
				t.window = win
				fn := t.cb
				t.mu.Unlock()
				if fn != nil {
					fn()
				}
			}
		}()
	})
}

// termMu serialises os.Setenv("TERM") with terminfo lookup, which reads the
// process environment.
var termMu sync.Mutex

// NewScreen creates and initialises a screen on tty for the terminal type
// term.
func NewScreen(tty *TTY, term string) (tcell.Screen, error) {
	termMu.Lock()
	_ = os.Setenv("TERM", term)
	screen, err := tcell.NewTerminfoScreenFromTty(tty)
	termMu.Unlock()
	if err != nil {
		return nil, fmt.Errorf("terminal setup: %w", err)
	}
	if err := screen.Init(); err != nil {
		return nil, fmt.Errorf("screen init: %w", err)
	}
	return screen, nil
}
