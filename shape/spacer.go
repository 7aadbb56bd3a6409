package shape

import (
	"overture/geometry"
	"overture/render"
)

// Spacer is a block of protected blanks. It keeps whitespace alive through
// Prune and paints over whatever was below it.
type Spacer struct {
	Pos  geometry.Coord
	Size geometry.Coord
}

func NewSpacer(pos, size geometry.Coord) Spacer {
	return Spacer{Pos: pos, Size: size}
}

func (s Spacer) Pixels() render.Pixels {
	pixels := make(render.Pixels, 0, int(s.Size.X)*int(s.Size.Y))
	for y := uint32(0); y < s.Size.Y; y++ {
		for x := uint32(0); x < s.Size.X; x++ {
			pixels = append(pixels, render.NewPixel(render.Blank, s.Pos.Add(geometry.NewCoord(x, y)), true))
		}
	}
	return pixels
}

func (s Spacer) Dim() geometry.Coord {
	return s.Size
}
