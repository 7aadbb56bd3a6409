package render

import (
	"overture/geometry"
	"overture/style"
)

// Pixels is the result of every transformation. It is itself Renderable,
// so transformations chain:
//
//	shape.Rasterize().Prune().Align(geometry.Place(geometry.CenterStage), size).Style(chain)
type Pixels []Pixel

func (p Pixels) Pixels() Pixels {
	result := make(Pixels, len(p))
	copy(result, p)
	return result
}

// Dim is one past the largest position on each axis, saturating at the
// largest coordinate.
func (p Pixels) Dim() geometry.Coord {
	_, max, ok := Bounds(p)
	if !ok {
		return geometry.Origin
	}
	return max.Add(geometry.NewCoord(1, 1))
}

func (p Pixels) Rasterize() Pixels {
	return p.Pixels()
}

func (p Pixels) Translate(by geometry.Translation) Pixels {
	return Translate(p, by)
}

func (p Pixels) Align(placement geometry.Placement, target geometry.Coord) Pixels {
	return Align(p, placement, target)
}

func (p Pixels) Normalize() Pixels {
	return Normalize(p)
}

func (p Pixels) Prune() Pixels {
	return Prune(p)
}

func (p Pixels) Protect() Pixels {
	return Protect(p)
}

func (p Pixels) SetProtect(protected bool) Pixels {
	return SetProtect(p, protected)
}

func (p Pixels) Style(chain style.Chain) Pixels {
	return Style(p, chain)
}

// Glyphs returns the glyph of every pixel in order.
func (p Pixels) Glyphs() string {
	runes := make([]rune, len(p))
	for i, pixel := range p {
		runes[i] = pixel.Content.Glyph
	}
	return string(runes)
}

// Positions returns the position of every pixel in order.
func (p Pixels) Positions() []geometry.Coord {
	result := make([]geometry.Coord, len(p))
	for i, pixel := range p {
		result[i] = pixel.Position
	}
	return result
}
