package game

import "github.com/gdamore/tcell/v2"

// Console palette. The console only uses foreground colours so it reads well
// on light and dark terminals alike.
var (
	styleText    = tcell.StyleDefault.Foreground(tcell.ColorWhite)
	styleDim     = tcell.StyleDefault.Foreground(tcell.ColorGray)
	styleInfo    = tcell.StyleDefault.Foreground(tcell.ColorAqua)
	styleValue   = tcell.StyleDefault.Foreground(tcell.ColorYellow)
	styleOK      = tcell.StyleDefault.Foreground(tcell.ColorLime)
	styleWarn    = tcell.StyleDefault.Foreground(tcell.ColorYellow)
	styleErr     = tcell.StyleDefault.Foreground(tcell.ColorRed)
	styleEgg     = tcell.StyleDefault.Foreground(tcell.ColorFuchsia)
	styleDir     = tcell.StyleDefault.Foreground(tcell.ColorAqua).Bold(true)
	styleLocked  = tcell.StyleDefault.Foreground(tcell.ColorRed).Bold(true)
	styleSpecial = tcell.StyleDefault.Foreground(tcell.ColorYellow).Bold(true)
	stylePrompt  = tcell.StyleDefault.Foreground(tcell.ColorLime).Bold(true)
	styleStatus  = tcell.StyleDefault.Foreground(tcell.ColorBlack).Background(tcell.ColorTeal)
)

// Line prefixes for failures.
const (
	markError = "✗"
	markWarn  = "⚠"
)
