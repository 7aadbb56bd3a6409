package render

import (
	"fmt"
	"strings"

	"overture/geometry"
)

// Group batches drawables of any type into one Renderable. Order matters:
// pixels of later items come after earlier ones, so they win when painted
// onto the same cell.
type Group struct {
	items []Renderable
}

func NewGroup(items ...Renderable) *Group {
	return &Group{items: items}
}

// GroupOf wraps a homogeneous slice.
func GroupOf[R Renderable](items []R) *Group {
	group := &Group{items: make([]Renderable, 0, len(items))}
	for _, item := range items {
		group.items = append(group.items, item)
	}
	return group
}

func (g *Group) Append(items ...Renderable) *Group {
	g.items = append(g.items, items...)
	return g
}

func (g *Group) Len() int {
	return len(g.items)
}

func (g *Group) IsEmpty() bool {
	return len(g.items) == 0
}

// Items returns the drawables in order. The group is not modified.
func (g *Group) Items() []Renderable {
	result := make([]Renderable, len(g.items))
	copy(result, g.items)
	return result
}

func (g *Group) Pixels() Pixels {
	var pixels Pixels
	for _, item := range g.items {
		pixels = append(pixels, item.Pixels()...)
	}
	if pixels == nil {
		return Pixels{}
	}
	return pixels
}

// Dim is the size of the first item only. It is not a bounding box of the
// group; use Bounds on Pixels for that.
func (g *Group) Dim() geometry.Coord {
	if len(g.items) == 0 {
		return geometry.Origin
	}
	return g.items[0].Dim()
}

func (g *Group) String() string {
	buf := &strings.Builder{}
	g.describe(buf, "")
	return buf.String()
}

func (g *Group) describe(buf *strings.Builder, offset string) {
	fmt.Fprintf(buf, "%sGroup(%d)\n", offset, len(g.items))
	for _, item := range g.items {
		if group, ok := item.(*Group); ok {
			group.describe(buf, offset+"| ")
			continue
		}
		fmt.Fprintf(buf, "%s| %T dim=%s pixels=%d\n", offset, item, item.Dim(), len(item.Pixels()))
	}
}
