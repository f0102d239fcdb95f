package game

import (
	"fmt"
	"strings"
	"unicode/utf8"

	"github.com/gdamore/tcell/v2"
	"github.com/mattn/go-runewidth"
)

// maxScrollback bounds the number of logical lines kept for display.
const maxScrollback = 1000

// line is one logical line of console output. Long lines wrap when drawn.
type line struct {
	text  string
	style tcell.Style
}

func (g *Game) print(style tcell.Style, format string, args ...any) {
	g.say(style, fmt.Sprintf(format, args...))
}

// say appends text verbatim, one scrollback line per newline.
func (g *Game) say(style tcell.Style, text string) {
	for _, s := range strings.Split(text, "\n") {
		g.lines = append(g.lines, line{text: s, style: style})
	}
	if over := len(g.lines) - maxScrollback; over > 0 {
		g.lines = append(g.lines[:0], g.lines[over:]...)
	}
	g.scroll = 0
}

func (g *Game) blank() { g.say(styleText, "") }

func (g *Game) fail(format string, args ...any) {
	g.say(styleErr, markError+" "+fmt.Sprintf(format, args...))
}

func (g *Game) warn(format string, args ...any) {
	g.say(styleWarn, markWarn+" "+fmt.Sprintf(format, args...))
}

// rule prints a horizontal rule of ch across n columns.
func (g *Game) rule(ch string, n int, style tcell.Style) {
	g.say(style, strings.Repeat(ch, n))
}

// banner prints text centred in a double-line box.
func (g *Game) banner(text string, style tcell.Style) {
	inner := bannerWidth - 2
	pad := inner - runewidth.StringWidth(text)
	left := max(pad/2, 0)
	right := max(pad-left, 0)
	g.say(style, "╔"+strings.Repeat("═", inner)+"╗")
	g.say(style, "║"+strings.Repeat(" ", left)+text+strings.Repeat(" ", right)+"║")
	g.say(style, "╚"+strings.Repeat("═", inner)+"╝")
}

const bannerWidth = 60

// prompt is the text drawn before the input buffer.
func (g *Game) prompt() string {
	p := g.nav.CurrentPath() + " > "
	if g.score.Total > 0 {
		p = fmt.Sprintf("[%d] %s", g.score.Total, p)
	}
	return p
}

// draw renders the status bar, the scrollback and the input line.
func (g *Game) draw() {
	g.screen.Clear()
	w, h := g.screen.Size()
	if w <= 0 || h <= 0 {
		return
	}

	status := fmt.Sprintf(" VOIDER DOS  seed %d  score %d  %s", g.world.Seed, g.score.Total, g.nav.CurrentPath())
	status = runewidth.FillRight(runewidth.Truncate(status, w, "…"), w)
	putText(g.screen, 0, 0, status, styleStatus)

	body := h - 2
	if body > 0 {
		rows := g.wrapped(w)
		g.scroll = min(g.scroll, max(len(rows)-body, 0))
		end := len(rows) - g.scroll
		start := max(end-body, 0)
		for i, r := range rows[start:end] {
			putText(g.screen, 0, 1+i, r.text, r.style)
		}
	}

	// Keep the tail of the input visible when it is wider than the screen.
	p := g.prompt()
	in := string(g.input)
	for runewidth.StringWidth(p+in) >= w && in != "" {
		_, size := utf8.DecodeRuneInString(in)
		in = in[size:]
	}
	x := putText(g.screen, 0, h-1, p, stylePrompt)
	x = putText(g.screen, x, h-1, in, styleText)
	g.screen.ShowCursor(x, h-1)
	g.screen.Show()
}

// wrapped splits every logical line into rows no wider than width.
func (g *Game) wrapped(width int) []line {
	var out []line
	for _, l := range g.lines {
		for _, s := range wrap(l.text, width) {
			out = append(out, line{text: s, style: l.style})
		}
	}
	return out
}

// wrap breaks s into pieces of at most width columns. Wide runes never split
// across rows. An empty string yields one empty row.
func wrap(s string, width int) []string {
	if width <= 0 || runewidth.StringWidth(s) <= width {
		return []string{s}
	}
	var out []string
	var b strings.Builder
	col := 0
	for _, r := range s {
		rw := runewidth.RuneWidth(r)
		if col+rw > width {
			out = append(out, b.String())
			b.Reset()
			col = 0
		}
		b.WriteRune(r)
		col += rw
	}
	return append(out, b.String())
}

// putText writes s starting at (x, y) and returns the column after it.
// Wide runes take two columns. Output stops at the right edge.
func putText(scr tcell.Screen, x, y int, s string, st tcell.Style) int {
	sw, _ := scr.Size()
	for _, r := range s {
		rw := runewidth.RuneWidth(r)
		if rw == 0 {
			continue
		}
		if x+rw > sw {
			break
		}
		scr.SetContent(x, y, r, nil, st)
		x += rw
	}
	return x
}
