package text

import (
	"fmt"
	"unicode/utf8"

	"github.com/mattn/go-runewidth"
	"golang.org/x/text/unicode/norm"

	"overture/geometry"
	"overture/render"
)

// Text is a single line of characters starting at Pos. Every character is
// one protected pixel, so spaces inside the text survive pruning.
type Text struct {
	Content string
	Pos     geometry.Coord
}

// New composes the content to NFC so that a base letter and its combining
// marks occupy one cell.
func New(content string, pos geometry.Coord) Text {
	return Text{Content: norm.NFC.String(content), Pos: pos}
}

func (t Text) Pixels() render.Pixels {
	pixels := make(render.Pixels, 0, utf8.RuneCountInString(t.Content))
	x := uint32(0)
	for _, r := range t.Content {
		pixels = append(pixels, render.NewPlainPixel(r, t.Pos.Add(geometry.NewCoord(x, 0)), true))
		x++
	}
	return pixels
}

// Dim is (rune count, 1).
func (t Text) Dim() geometry.Coord {
	return geometry.NewCoord(uint32(utf8.RuneCountInString(t.Content)), 1)
}

// Width is the display width of the content in terminal columns.
func (t Text) Width() int {
	return runewidth.StringWidth(t.Content)
}

// Clip shortens the content to fit width display columns, ending it with
// an ellipsis when anything was cut.
func (t Text) Clip(width int) Text {
	return Text{Content: runewidth.Truncate(t.Content, width, "…"), Pos: t.Pos}
}

func (t Text) String() string {
	return fmt.Sprintf("Text(%q at %s)", t.Content, t.Pos)
}
