package geometry

import (
	"fmt"
	"strings"
)

type PlacementKind int

const (
	TopLeft PlacementKind = iota
	TopRight
	BottomLeft
	BottomRight
	CenterTop
	CenterBottom
	CenterLeft
	CenterRight
	CenterStage
	OffsetBy
)

// Placement selects the anchor of an object inside the space left over
// once the object's own size is taken out of a target area.
type Placement struct {
	Kind   PlacementKind
	Offset Translation
}

func Place(kind PlacementKind) Placement {
	return Placement{Kind: kind}
}

func Offset(t Translation) Placement {
	return Placement{Kind: OffsetBy, Offset: t}
}

// Anchor resolves the placement against the available space.
func (p Placement) Anchor(available Coord) Coord {
	switch p.Kind {
	case TopRight:
		return Coord{available.X, 0}
	case BottomLeft:
		return Coord{0, available.Y}
	case BottomRight:
		return Coord{available.X, available.Y}
	case CenterTop:
		return Coord{available.X / 2, 0}
	case CenterBottom:
		return Coord{available.X / 2, available.Y}
	case CenterLeft:
		return Coord{0, available.Y / 2}
	case CenterRight:
		return Coord{available.X, available.Y / 2}
	case CenterStage:
		return Coord{available.X / 2, available.Y / 2}
	case OffsetBy:
		return CoordFromTranslation(p.Offset)
	}
	return Origin
}

var placementNames = map[PlacementKind]string{
	TopLeft:      "top-left",
	TopRight:     "top-right",
	BottomLeft:   "bottom-left",
	BottomRight:  "bottom-right",
	CenterTop:    "center-top",
	CenterBottom: "center-bottom",
	CenterLeft:   "center-left",
	CenterRight:  "center-right",
	CenterStage:  "center-stage",
	OffsetBy:     "offset",
}

func (p Placement) String() string {
	if p.Kind == OffsetBy {
		return "offset" + p.Offset.String()
	}
	if name, ok := placementNames[p.Kind]; ok {
		return name
	}
	return fmt.Sprintf("placement(%d)", int(p.Kind))
}

// ParsePlacement accepts names like "center-stage", "CenterStage" or
// "center_stage". Offsets are not expressible by name.
func ParsePlacement(name string) (Placement, error) {
	key := strings.ToLower(strings.NewReplacer("-", "", "_", "", " ", "").Replace(name))
	for kind, n := range placementNames {
		if kind == OffsetBy {
			continue
		}
		if strings.ReplaceAll(n, "-", "") == key {
			return Place(kind), nil
		}
	}
	return Placement{}, fmt.Errorf("unknown placement %q", name)
}
