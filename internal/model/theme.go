package model

const (
	ModeLight = "light"
	ModeDark  = "dark"
)

// Palettes match the original notepad color sets. The palette name and
// the light/dark mode are persisted separately and combined at startup.
var Palettes = []string{"default", "blue", "green", "yellow", "purple", "orange"}

func IsValidMode(mode string) bool {
	return mode == ModeLight || mode == ModeDark
}

func IsValidPalette(palette string) bool {
	for _, p := range Palettes {
		if p == palette {
			return true
		}
	}
	return false
}
