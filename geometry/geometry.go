package geometry

import (
	"fmt"
	"math"
)

// Coord is a position or a size on the grid. It never goes negative:
// subtraction and translation saturate at zero.
type Coord struct {
	X, Y uint32
}

var Origin = Coord{}

func NewCoord(x, y uint32) Coord {
	return Coord{X: x, Y: y}
}

// CoordFromTranslation clamps negative components to zero.
func CoordFromTranslation(t Translation) Coord {
	return Coord{X: clamp(int64(t.X)), Y: clamp(int64(t.Y))}
}

// Add saturates at the largest coordinate.
func (c Coord) Add(other Coord) Coord {
	return Coord{
		X: clamp(int64(c.X) + int64(other.X)),
		Y: clamp(int64(c.Y) + int64(other.Y)),
	}
}

func (c Coord) Sub(other Coord) Coord {
	return Coord{X: saturatingSub(c.X, other.X), Y: saturatingSub(c.Y, other.Y)}
}

func (c Coord) Translate(by Translation) Coord {
	return by.Apply(c)
}

// ToTranslation clamps components above math.MaxInt32.
func (c Coord) ToTranslation() Translation {
	return Translation{X: clampSigned(c.X), Y: clampSigned(c.Y)}
}

func (c Coord) String() string {
	return fmt.Sprintf("(%d, %d)", c.X, c.Y)
}

// Translation is a signed offset applied to coordinates.
type Translation struct {
	X, Y int32
}

func NewTranslation(x, y int32) Translation {
	return Translation{X: x, Y: y}
}

func Zero() Translation {
	return Translation{}
}

func (t Translation) Add(other Translation) Translation {
	return Translation{X: t.X + other.X, Y: t.Y + other.Y}
}

func (t Translation) Sub(other Translation) Translation {
	return Translation{X: t.X - other.X, Y: t.Y - other.Y}
}

func (t Translation) Neg() Translation {
	return Translation{X: -t.X, Y: -t.Y}
}

// Apply moves c by t, clamping each axis at zero.
func (t Translation) Apply(c Coord) Coord {
	return Coord{
		X: clamp(int64(c.X) + int64(t.X)),
		Y: clamp(int64(c.Y) + int64(t.Y)),
	}
}

func (t Translation) String() string {
	return fmt.Sprintf("(%+d, %+d)", t.X, t.Y)
}

func saturatingSub(a, b uint32) uint32 {
	if a < b {
		return 0
	}
	return a - b
}

func clamp(v int64) uint32 {
	if v < 0 {
		return 0
	}
	if v > math.MaxUint32 {
		return math.MaxUint32
	}
	return uint32(v)
}

func clampSigned(v uint32) int32 {
	if v > math.MaxInt32 {
		return math.MaxInt32
	}
	return int32(v)
}
