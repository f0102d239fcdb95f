package game

import (
	"strings"
	"unicode"

	"github.com/gdamore/tcell/v2"
)

// handleKey applies one key press to the input line.
func (g *Game) handleKey(ev *tcell.EventKey) {
	_, h := g.screen.Size()
	page := max(h-3, 1)

	switch ev.Key() {
	case tcell.KeyEnter:
		in := string(g.input)
		g.input = g.input[:0]
		g.say(styleDim, g.prompt()+in)
		if g.Execute(in) {
			g.quit = true
		}
	case tcell.KeyCtrlC, tcell.KeyCtrlD:
		g.warn("Interrupted. Leaving the session...")
		g.quit = true
	case tcell.KeyEscape:
		g.input = g.input[:0]
	case tcell.KeyBackspace, tcell.KeyBackspace2:
		if len(g.input) > 0 {
			g.input = g.input[:len(g.input)-1]
		}
	case tcell.KeyCtrlL:
		g.lines = g.lines[:0]
	case tcell.KeyTab:
		g.complete()
	case tcell.KeyUp:
		if g.histPos > 0 {
			g.histPos--
			g.input = []rune(g.history[g.histPos])
		}
	case tcell.KeyDown:
		if g.histPos < len(g.history) {
			g.histPos++
		}
		if g.histPos == len(g.history) {
			g.input = g.input[:0]
		} else {
			g.input = []rune(g.history[g.histPos])
		}
	case tcell.KeyPgUp:
		g.scroll += page
	case tcell.KeyPgDn:
		g.scroll = max(g.scroll-page, 0)
	case tcell.KeyRune:
		if len(g.input) < maxInput {
			g.input = append(g.input, ev.Rune())
		}
	}
}

// complete extends the input with Tab. The first word completes against
// command names; later words against names in the current directory. With
// several candidates the common prefix is filled in and the options printed.
func (g *Game) complete() {
	in := string(g.input)
	head, word := "", in
	if i := strings.LastIndex(in, " "); i >= 0 {
		head, word = in[:i+1], in[i+1:]
	}

	var pool []string
	if head == "" {
		pool = commandNames()
	} else {
		for _, e := range g.nav.List(false) {
			if !e.Up {
				pool = append(pool, e.Name())
			}
		}
	}

	var matches []string
	for _, p := range pool {
		if strings.HasPrefix(strings.ToLower(p), strings.ToLower(word)) {
			matches = append(matches, p)
		}
	}
	switch len(matches) {
	case 0:
		return
	case 1:
		g.input = []rune(head + matches[0])
		if head == "" {
			g.input = append(g.input, ' ')
		}
	default:
		g.input = []rune(head + commonPrefix(matches))
		g.say(styleDim, strings.Join(matches, "  "))
	}
}

// commonPrefix returns the longest prefix shared by every string, compared
// case-insensitively and taken from the first.
func commonPrefix(ss []string) string {
	prefix := []rune(ss[0])
	for _, s := range ss[1:] {
		rs := []rune(s)
		n := 0
		for n < len(prefix) && n < len(rs) && unicode.ToLower(prefix[n]) == unicode.ToLower(rs[n]) {
			n++
		}
		prefix = prefix[:n]
	}
	return string(prefix)
}
