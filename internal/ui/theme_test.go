package ui

import (
	"testing"

	"github.com/jedib0t/go-pretty/v6/text"
	"github.com/stretchr/testify/assert"
)

func TestNewThemePalettes(t *testing.T) {
	assert.Equal(t, text.FgHiBlue, NewTheme("light", "blue").Header)
	assert.Equal(t, text.FgHiGreen, NewTheme("light", "green").Header)
	assert.Equal(t, text.FgGreen, NewTheme("light", "default").Header)
}

func TestNewThemeUnknownPaletteDegradesToDefault(t *testing.T) {
	theme := NewTheme("light", "magenta")
	assert.Equal(t, "default", theme.Palette)
	assert.Equal(t, text.FgGreen, theme.Header)
}

func TestGlamourStyle(t *testing.T) {
	assert.Equal(t, "dark", NewTheme("dark", "default").GlamourStyle())
	assert.Equal(t, "light", NewTheme("light", "default").GlamourStyle())
	assert.Equal(t, "light", NewTheme("", "default").GlamourStyle())
}
