package render

import (
	"fmt"

	"overture/geometry"
	"overture/style"
)

// Char is a glyph with its style chain.
type Char struct {
	Glyph rune
	Style style.Chain
}

// Blank is the empty cell.
var Blank = Char{Glyph: ' ', Style: style.Plain()}

func NewChar(glyph rune, chain style.Chain) Char {
	return Char{Glyph: glyph, Style: chain}
}

func PlainChar(glyph rune) Char {
	return Char{Glyph: glyph, Style: style.Plain()}
}

func (c Char) Equal(other Char) bool {
	return c.Glyph == other.Glyph && c.Style.Equal(other.Style)
}

// Pixel is one styled character at one grid position. Protected pixels
// survive pruning even when blank.
type Pixel struct {
	Content   Char
	Position  geometry.Coord
	Protected bool
}

func NewPixel(content Char, pos geometry.Coord, protected bool) Pixel {
	return Pixel{Content: content, Position: pos, Protected: protected}
}

func NewPlainPixel(glyph rune, pos geometry.Coord, protected bool) Pixel {
	return Pixel{Content: PlainChar(glyph), Position: pos, Protected: protected}
}

func (p Pixel) String() string {
	protected := ""
	if p.Protected {
		protected = " protected"
	}
	return fmt.Sprintf("Pixel(%q at %s %s%s)", p.Content.Glyph, p.Position, p.Content.Style, protected)
}
