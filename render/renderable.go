package render

import (
	"math"

	"overture/geometry"
	"overture/style"
)

// Renderable is anything that can describe itself as positioned pixels.
// Pixels are reported in the object's own frame, which is not necessarily
// normalized to the origin.
type Renderable interface {
	Pixels() Pixels
	Dim() geometry.Coord
}

// Rasterizer lets a Renderable replace the identity rasterization that
// Prune builds on.
type Rasterizer interface {
	Rasterize() Pixels
}

// Placer lets a Renderable replace the default painting done by RenderAt.
type Placer interface {
	RenderAt(x, y uint32, canvas Canvas)
}

// Canvas receives painted characters. Implementations decide what happens
// to writes outside their area.
type Canvas interface {
	SetPixel(x, y uint32, ch Char)
}

// RenderAt paints the pixels of r shifted by (x, y).
func RenderAt(r Renderable, x, y uint32, canvas Canvas) {
	if placer, ok := r.(Placer); ok {
		placer.RenderAt(x, y, canvas)
		return
	}
	paint(r.Pixels(), x, y, canvas)
}

// paint drops pixels whose shifted position does not fit a coordinate.
func paint(pixels Pixels, x, y uint32, canvas Canvas) {
	for _, pixel := range pixels {
		px := uint64(x) + uint64(pixel.Position.X)
		py := uint64(y) + uint64(pixel.Position.Y)
		if px > math.MaxUint32 || py > math.MaxUint32 {
			continue
		}
		canvas.SetPixel(uint32(px), uint32(py), pixel.Content)
	}
}

// Translate returns a copy of the pixels of r moved by by.
func Translate(r Renderable, by geometry.Translation) Pixels {
	pixels := r.Pixels()
	result := make(Pixels, len(pixels))
	for i, pixel := range pixels {
		pixel.Position = by.Apply(pixel.Position)
		result[i] = pixel
	}
	return result
}

// Align places the tight bounding box of r inside an area of size target.
func Align(r Renderable, placement geometry.Placement, target geometry.Coord) Pixels {
	pixels := r.Pixels()
	min, max, ok := Bounds(pixels)
	if !ok {
		return Pixels{}
	}
	size := max.Sub(min).Add(geometry.NewCoord(1, 1))
	anchor := placement.Anchor(target.Sub(size))
	return shift(pixels, min, anchor)
}

// Normalize moves the pixels of r so that their bounding box starts at the
// origin.
func Normalize(r Renderable) Pixels {
	pixels := r.Pixels()
	min, _, ok := Bounds(pixels)
	if !ok {
		return pixels
	}
	return shift(pixels, min, geometry.Origin)
}

// shift moves pixels from a frame starting at from to one starting at to.
func shift(pixels Pixels, from, to geometry.Coord) Pixels {
	result := make(Pixels, len(pixels))
	for i, pixel := range pixels {
		pixel.Position = pixel.Position.Sub(from).Add(to)
		result[i] = pixel
	}
	return result
}

// Rasterize returns the pixels of r, unless r rasterizes itself.
func Rasterize(r Renderable) Pixels {
	if rasterizer, ok := r.(Rasterizer); ok {
		return rasterizer.Rasterize()
	}
	return r.Pixels()
}

// Prune drops blank pixels that are not protected.
func Prune(r Renderable) Pixels {
	pixels := Rasterize(r)
	result := make(Pixels, 0, len(pixels))
	for _, pixel := range pixels {
		if pixel.Content.Glyph != Blank.Glyph || pixel.Protected {
			result = append(result, pixel)
		}
	}
	return result
}

func Protect(r Renderable) Pixels {
	return SetProtect(r, true)
}

func SetProtect(r Renderable, protected bool) Pixels {
	pixels := r.Pixels()
	result := make(Pixels, len(pixels))
	for i, pixel := range pixels {
		pixel.Protected = protected
		result[i] = pixel
	}
	return result
}

// Style restyles every pixel of r with chain. Unstyled chains leave the
// pixels as they are.
func Style(r Renderable, chain style.Chain) Pixels {
	pixels := r.Pixels()
	if !chain.IsStyled() {
		return pixels
	}
	result := make(Pixels, len(pixels))
	for i, pixel := range pixels {
		pixel.Content.Style = chain
		result[i] = pixel
	}
	return result
}

// Bounds returns the smallest and largest coordinates on each axis. ok is
// false for an empty slice.
func Bounds(pixels Pixels) (min, max geometry.Coord, ok bool) {
	if len(pixels) == 0 {
		return geometry.Origin, geometry.Origin, false
	}
	min, max = pixels[0].Position, pixels[0].Position
	for _, pixel := range pixels[1:] {
		pos := pixel.Position
		if pos.X < min.X {
			min.X = pos.X
		}
		if pos.Y < min.Y {
			min.Y = pos.Y
		}
		if pos.X > max.X {
			max.X = pos.X
		}
		if pos.Y > max.Y {
			max.Y = pos.Y
		}
	}
	return min, max, true
}
