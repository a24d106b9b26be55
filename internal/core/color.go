package core

// Color represents a foreground color for a screen cell.
// Values map to ANSI 256-color codes in the platform layer.
type Color uint8

// Palette used by the games and HUD.
const (
	ColorDefault Color = iota
	ColorRed
	ColorGreen
	ColorYellow
	ColorBlue
	ColorMagenta
	ColorCyan
	ColorWhite
	ColorBrightRed
	ColorBrightGreen
	ColorBrightYellow
	ColorBrightBlue
	ColorBrightWhite
	ColorOrange
	ColorBrown
	ColorGray
)

// Cell is a single character cell with its color.
type Cell struct {
	Rune  rune
	Color Color
}

// blankCell is what Clear writes.
var blankCell = Cell{Rune: ' ', Color: ColorDefault}
