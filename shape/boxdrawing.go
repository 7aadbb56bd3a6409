package shape

// Light box-drawing runes.
const (
	TopLeft     = '┌'
	TopRight    = '┐'
	BottomLeft  = '└'
	BottomRight = '┘'
	Horizontal  = '─'
	Vertical    = '│'
	TeeDown     = '┬'
	TeeUp       = '┴'
	TeeLeft     = '┤'
	TeeRight    = '├'
	Cross       = '┼'
)

// Rounded corners; edges are shared with the light set.
const (
	SoftTopLeft     = '╭'
	SoftTopRight    = '╮'
	SoftBottomLeft  = '╰'
	SoftBottomRight = '╯'
)

// Double-line box-drawing runes.
const (
	DoubleTopLeft     = '╔'
	DoubleTopRight    = '╗'
	DoubleBottomLeft  = '╚'
	DoubleBottomRight = '╝'
	DoubleHorizontal  = '═'
	DoubleVertical    = '║'
	DoubleTeeDown     = '╦'
	DoubleTeeUp       = '╩'
	DoubleTeeLeft     = '╣'
	DoubleTeeRight    = '╠'
	DoubleCross       = '╬'
)

// Border is the set of runes an outline is drawn with.
type Border struct {
	TopLeft, TopRight, BottomLeft, BottomRight rune
	Horizontal, Vertical                       rune
}

var (
	LightBorder  = Border{TopLeft, TopRight, BottomLeft, BottomRight, Horizontal, Vertical}
	SoftBorder   = Border{SoftTopLeft, SoftTopRight, SoftBottomLeft, SoftBottomRight, Horizontal, Vertical}
	DoubleBorder = Border{DoubleTopLeft, DoubleTopRight, DoubleBottomLeft, DoubleBottomRight, DoubleHorizontal, DoubleVertical}
)
