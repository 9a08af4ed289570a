package core

// Color is a foreground color tag for a screen cell. The simulation picks
// colors from this closed set and the terminal platform maps them to ANSI
// codes; the core never deals in escape sequences.
type Color uint8

// The shooter's palette. Bright variants carry the gameplay-critical
// elements (ship, shots, HUD counters); the dim variants and orange/gray
// are used for particles and de-emphasized chrome.
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
	ColorBrightMagenta
	ColorBrightCyan
	ColorBrightWhite
	ColorOrange
	ColorGray
)
