package term

import "strconv"

// Cursor and screen control sequences.
const (
	SaveCursor       = "\x1b[s"
	RestoreCursor    = "\x1b[u"
	HideCursor       = "\x1b[?25l"
	ShowCursor       = "\x1b[?25h"
	ClearScreen      = "\x1b[2J"
	ClearLine        = "\x1b[2K"
	EraseToEndOfLine = "\x1b[K"
	EnableAltScreen  = "\x1b[?1049h"
	DisableAltScreen = "\x1b[?1049l"
)

func MoveUp(n int) string    { return csi(n, 'A') }
func MoveDown(n int) string  { return csi(n, 'B') }
func MoveRight(n int) string { return csi(n, 'C') }
func MoveLeft(n int) string  { return csi(n, 'D') }

// MoveTo positions the cursor; row and col are 1-based.
func MoveTo(row, col int) string {
	return "\x1b[" + strconv.Itoa(row) + ";" + strconv.Itoa(col) + "H"
}

func MoveToColumn(col int) string { return csi(col, 'G') }
func MoveToRow(row int) string    { return csi(row, 'd') }

func csi(n int, final byte) string {
	return "\x1b[" + strconv.Itoa(n) + string(final)
}
