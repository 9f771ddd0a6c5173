package render

import "github.com/gdamore/tcell/v2"

// Named colors used by the playfield
var (
	ColorBackground = tcell.ColorBlack
	ColorBorder     = tcell.ColorSilver
	ColorSnake      = tcell.ColorGreen // dark green, default living color
	ColorApple      = tcell.ColorRed
	ColorFlash      = tcell.ColorWhite
	ColorEyes       = tcell.ColorWhite
	ColorYum        = tcell.ColorYellow
	ColorScoreFg    = tcell.ColorBlack
	ColorScoreBg    = tcell.ColorWhite
)

// ItemPalette is the set an item color is drawn from
// Pairs of bright/dark variants of the 16-color console palette
var ItemPalette = []tcell.Color{
	tcell.ColorRed, tcell.ColorMaroon,
	tcell.ColorLime, tcell.ColorGreen,
	tcell.ColorAqua, tcell.ColorTeal,
	tcell.ColorYellow, tcell.ColorOlive,
	tcell.ColorBlue, tcell.ColorNavy,
	tcell.ColorFuchsia, tcell.ColorPurple,
}

// Style builds a tcell style from foreground and background
func Style(fg, bg tcell.Color) tcell.Style {
	return tcell.StyleDefault.Foreground(fg).Background(bg)
}
