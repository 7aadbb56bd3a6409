package engine

import (
	"bufio"
	"io"
	"os"
	"strings"

	"github.com/muesli/ansi"
	"github.com/muesli/termenv"
	"github.com/rs/zerolog"

	"overture/device"
	"overture/geometry"
	"overture/render"
	"overture/style"
	"overture/term"
)

// Engine owns a screen buffer of fixed width. Rows are added on demand when
// something is painted below the last row and are never removed.
type Engine struct {
	width   uint32
	buffer  [][]render.Char
	out     io.Writer
	profile termenv.Profile
	log     zerolog.Logger

	wideRows int
}

type Option func(*Engine)

// WithOutput sets where Render and Flush write. Defaults to stdout.
func WithOutput(w io.Writer) Option {
	return func(e *Engine) { e.out = w }
}

// WithProfile sets the colour profile escape codes are produced for.
// Defaults to termenv.TrueColor.
func WithProfile(profile termenv.Profile) Option {
	return func(e *Engine) { e.profile = profile }
}

func WithLogger(log zerolog.Logger) Option {
	return func(e *Engine) { e.log = log }
}

func New(width, height uint32, opts ...Option) *Engine {
	e := &Engine{
		width:   width,
		buffer:  make([][]render.Char, 0, height),
		out:     os.Stdout,
		profile: termenv.TrueColor,
		log:     zerolog.Nop(),
	}
	for _, opt := range opts {
		opt(e)
	}
	for i := uint32(0); i < height; i++ {
		e.buffer = append(e.buffer, e.blankRow())
	}
	return e
}

func (e *Engine) blankRow() []render.Char {
	row := make([]render.Char, e.width)
	for i := range row {
		row[i] = render.Blank
	}
	return row
}

func (e *Engine) Width() uint32 {
	return e.width
}

// Height is the current number of rows.
func (e *Engine) Height() uint32 {
	return uint32(len(e.buffer))
}

// Cell returns the character at (x, y); ok is false outside the buffer.
func (e *Engine) Cell(x, y uint32) (ch render.Char, ok bool) {
	if x >= e.width || y >= e.Height() {
		return render.Char{}, false
	}
	return e.buffer[y][x], true
}

// Rows returns a copy of the buffer.
func (e *Engine) Rows() [][]render.Char {
	rows := make([][]render.Char, len(e.buffer))
	for i, row := range e.buffer {
		rows[i] = append([]render.Char(nil), row...)
	}
	return rows
}

// SetPixel writes ch at (x, y), growing the buffer down to row y. Writes
// past the right edge are dropped.
func (e *Engine) SetPixel(x, y uint32, ch render.Char) {
	for uint32(len(e.buffer)) <= y {
		e.buffer = append(e.buffer, e.blankRow())
	}
	if x >= e.width {
		e.log.Trace().Uint32("x", x).Uint32("y", y).Msg("dropped write past right edge")
		return
	}
	e.buffer[y][x] = ch
}

// Load places obj in the buffer. The anchor is computed from the object's
// origin-normalized size against the current buffer size; the zero
// Placement is TopLeft.
//
// Painting goes through render.RenderAt with the object's own pixels, so an
// object whose pixels do not start at the origin is painted that far from
// the anchor.
func (e *Engine) Load(obj render.Renderable, placement geometry.Placement) {
	pixels := obj.Pixels()
	if len(pixels) == 0 {
		return
	}
	size := pixels.Normalize().Dim()
	available := geometry.NewCoord(e.width, e.Height()).Sub(size)
	anchor := placement.Anchor(available)

	e.log.Debug().
		Stringer("placement", placement).
		Stringer("size", size).
		Stringer("available", available).
		Stringer("anchor", anchor).
		Int("pixels", len(pixels)).
		Msg("load")

	render.RenderAt(obj, anchor.X, anchor.Y, e)
}

// Render writes the buffer, padded to at least minHeight rows, one line
// per row. Styled cells carry the escape code of every attribute in their
// chain followed by the glyph and a single reset; None cells are blank.
func (e *Engine) Render(minHeight uint32) error {
	for uint32(len(e.buffer)) < minHeight {
		e.buffer = append(e.buffer, e.blankRow())
	}

	e.wideRows = 0
	w := bufio.NewWriter(e.out)
	line := strings.Builder{}
	for y, row := range e.buffer {
		line.Reset()
		for _, ch := range row {
			e.writeChar(&line, ch)
		}
		if width := ansi.PrintableRuneWidth(line.String()); width != int(e.width) {
			e.wideRows++
			e.log.Debug().Int("row", y).Int("width", width).Uint32("expected", e.width).Msg("row display width differs from buffer width")
		}
		line.WriteByte('\n')
		if _, err := w.WriteString(line.String()); err != nil {
			return err
		}
	}
	return w.Flush()
}

// WideRows is the number of rows written by the last Render whose display
// width differs from the buffer width. Wide and zero-width runes shift the
// rest of their row on a terminal.
func (e *Engine) WideRows() int {
	return e.wideRows
}

func (e *Engine) writeChar(line *strings.Builder, ch render.Char) {
	switch ch.Style.Kind() {
	case style.KindNone:
		line.WriteRune(render.Blank.Glyph)
	case style.KindPlain:
		line.WriteRune(ch.Glyph)
	default:
		line.WriteString(ch.Style.Codes(e.profile))
		line.WriteRune(ch.Glyph)
		line.WriteString(style.ResetCode)
	}
}

// Flush clears the terminal screen.
func (e *Engine) Flush() error {
	w := bufio.NewWriter(e.out)
	if _, err := w.WriteString(term.ClearScreen + "\n"); err != nil {
		return err
	}
	return w.Flush()
}

// Present paints the buffer onto a full-screen device and shows it.
func (e *Engine) Present(dev device.Device) {
	for y, row := range e.buffer {
		for x, ch := range row {
			dev.SetContent(x, y, ch)
		}
	}
	dev.Show()
}
