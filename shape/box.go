package shape

import (
	"fmt"

	"overture/geometry"
	"overture/render"
)

// Box is a rectangular outline between two corners. Pos is always the
// top-left corner and Corner the bottom-right one, whatever order the
// corners were given in.
type Box struct {
	pos    geometry.Coord
	corner geometry.Coord
	border Border
}

// Rectangle is a box with sharp corners.
func Rectangle(p1, p2 geometry.Coord) Box {
	return NewBox(p1, p2, LightBorder)
}

// SoftBox is a box with rounded corners.
func SoftBox(p1, p2 geometry.Coord) Box {
	return NewBox(p1, p2, SoftBorder)
}

func DoubleBox(p1, p2 geometry.Coord) Box {
	return NewBox(p1, p2, DoubleBorder)
}

func NewBox(p1, p2 geometry.Coord, border Border) Box {
	return Box{
		pos:    geometry.NewCoord(min(p1.X, p2.X), min(p1.Y, p2.Y)),
		corner: geometry.NewCoord(max(p1.X, p2.X), max(p1.Y, p2.Y)),
		border: border,
	}
}

func (b Box) Pos() geometry.Coord    { return b.pos }
func (b Box) Corner() geometry.Coord { return b.corner }
func (b Box) Border() Border         { return b.border }

// Pixels lists the four corners, then the top and bottom edges, then the
// left and right edges. A degenerate box repeats positions.
func (b Box) Pixels() render.Pixels {
	outline := func(glyph rune, x, y uint32) render.Pixel {
		return render.NewPlainPixel(glyph, geometry.NewCoord(x, y), false)
	}

	pixels := render.Pixels{
		outline(b.border.TopLeft, b.pos.X, b.pos.Y),
		outline(b.border.BottomRight, b.corner.X, b.corner.Y),
		outline(b.border.BottomLeft, b.pos.X, b.corner.Y),
		outline(b.border.TopRight, b.corner.X, b.pos.Y),
	}
	// uint64 keeps pos+1 from wrapping on boxes at the far edge
	for x := uint64(b.pos.X) + 1; x < uint64(b.corner.X); x++ {
		pixels = append(pixels,
			outline(b.border.Horizontal, uint32(x), b.pos.Y),
			outline(b.border.Horizontal, uint32(x), b.corner.Y))
	}
	for y := uint64(b.pos.Y) + 1; y < uint64(b.corner.Y); y++ {
		pixels = append(pixels,
			outline(b.border.Vertical, b.pos.X, uint32(y)),
			outline(b.border.Vertical, b.corner.X, uint32(y)))
	}
	return pixels
}

// Dim is the distance between the corners.
func (b Box) Dim() geometry.Coord {
	return b.corner.Sub(b.pos)
}

func (b Box) String() string {
	return fmt.Sprintf("Box(%c %s-%s)", b.border.TopLeft, b.pos, b.corner)
}
