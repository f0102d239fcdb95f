package remote

import (
	"testing"
	"time"

	"github.com/gdamore/tcell/v2"
	gossh "github.com/gliderlabs/ssh"
)

var _ tcell.Tty = (*TTY)(nil)

func TestWindowSizeFollowsResizes(t *testing.T) {
	winCh := make(chan gossh.Window)
	tty := NewTTY(nil, gossh.Pty{Window: gossh.Window{Width: 80, Height: 24}}, winCh)

	ws, err := tty.WindowSize()
	if err != nil || ws.Width != 80 || ws.Height != 24 {
		t.Fatalf("initial size = %+v, %v", ws, err)
	}

	called := make(chan struct{}, 4)
	tty.NotifyResize(func() { called <- struct{}{} })
	tty.NotifyResize(func() { called <- struct{}{} }) // re-register, no second reader

	winCh <- gossh.Window{Width: 120, Height: 40}
	select {
	case <-called:
	case <-time.After(2 * time.Second):
		t.Fatal("resize callback not invoked")
	}
	ws, _ = tty.WindowSize()
	if ws.Width != 120 || ws.Height != 40 {
		t.Errorf("size after resize = %+v", ws)
	}
	select {
	case <-called:
		t.Error("callback fired twice for one resize")
	default:
	}

	tty.NotifyResize(nil)
	winCh <- gossh.Window{Width: 100, Height: 30}
	close(winCh)
	deadline := time.Now().Add(2 * time.Second)
	for {
		ws, _ = tty.WindowSize()
		if ws.Width == 100 || time.Now().After(deadline) {
			break
		}
		time.Sleep(10 * time.Millisecond)
	}
	if ws.Width != 100 {
		t.Errorf("size not tracked after unregistering: %+v", ws)
	}
}
