package patchui

import (
	"image/color"

	"charm.land/lipgloss/v2"
)

// c is shorthand for lipgloss.Color.
func c(hex string) color.Color { return lipgloss.Color(hex) }

// Color palette — amber rack aesthetic.
var (
	colorBG = c("#0e0a06")

	// Slot kind colors
	kindColors = map[string]color.Color{
		"audio": c("#ffb454"),
		"ctl":   c("#59c2ff"),
	}
	kindFallback = c("#aaaaaa")

	moduleBorder = c("#c08030")
	moduleTitle  = c("#ffcc88")
	groupBorder  = c("#5a4a30")
	groupTitle   = c("#8a7a56")
	selBorder    = c("#ffee99")

	cableColor   = c("#e08840")
	previewColor = c("#665544")

	socketIdle   = c("#806040")
	socketLinked = c("#ffb454")
	socketHover  = c("#ffffff")

	toolbarColor = c("#ffcc88")
	footerColor  = c("#776655")
	consoleText  = c("#aa9070")
)

var (
	tbStyle = lipgloss.NewStyle().
		Background(c("#1a120a")).
		Foreground(toolbarColor).
		Bold(true)

	ftStyle = lipgloss.NewStyle().
		Foreground(footerColor)

	bgStyle = lipgloss.NewStyle().
		Background(colorBG)

	consoleStyle = lipgloss.NewStyle().
			Foreground(consoleText).
			Background(colorBG)
)

// kindColor returns the display color for a slot kind.
func kindColor(kind string) color.Color {
	if col, ok := kindColors[kind]; ok {
		return col
	}
	return kindFallback
}
