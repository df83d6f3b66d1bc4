// Package ui renders notes for the terminal. The theme is an explicit
// struct built once from the two persisted values (mode, palette) and
// passed into every rendering call; there is no ambient theme state.
package ui

import (
	"github.com/fatih/color"
	"github.com/jedib0t/go-pretty/v6/text"
	"github.com/rpmellow/notepad/internal/model"
)

type Theme struct {
	Mode    string
	Palette string
	Header  text.Color
	Accent  text.Color
	Pin     *color.Color
}

// NewTheme combines the persisted mode and palette into the render
// configuration. Callers pass values already validated by the store,
// but unknown ones still degrade to the default palette.
func NewTheme(mode, palette string) Theme {
	theme := Theme{Mode: mode, Palette: palette, Pin: color.New(color.FgYellow, color.Bold)}

	switch palette {
	case "blue":
		theme.Header = text.FgHiBlue
		theme.Accent = text.FgBlue
	case "green":
		theme.Header = text.FgHiGreen
		theme.Accent = text.FgGreen
	case "yellow":
		theme.Header = text.FgHiYellow
		theme.Accent = text.FgYellow
	case "purple":
		theme.Header = text.FgHiMagenta
		theme.Accent = text.FgMagenta
	case "orange":
		theme.Header = text.FgHiRed
		theme.Accent = text.FgRed
	default:
		theme.Palette = "default"
		theme.Header = text.FgGreen
		theme.Accent = text.FgHiMagenta
	}

	return theme
}

// GlamourStyle maps the mode onto the markdown renderer style names.
func (t Theme) GlamourStyle() string {
	if t.Mode == model.ModeDark {
		return "dark"
	}
	return "light"
}
