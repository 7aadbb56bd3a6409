package text

import (
	"strings"

	"github.com/mitchellh/go-wordwrap"

	"overture/geometry"
	"overture/render"
)

// Paragraph word-wraps content to width columns. Words longer than the
// width are left on a line of their own.
type Paragraph struct {
	lines []Text
}

func NewParagraph(content string, pos geometry.Coord, width uint) *Paragraph {
	wrapped := wordwrap.WrapString(content, width)
	p := &Paragraph{}
	for i, line := range strings.Split(wrapped, "\n") {
		p.lines = append(p.lines, New(line, pos.Add(geometry.NewCoord(0, uint32(i)))))
	}
	return p
}

func (p *Paragraph) Lines() []Text {
	return append([]Text(nil), p.lines...)
}

func (p *Paragraph) Pixels() render.Pixels {
	return render.GroupOf(p.lines).Pixels()
}

// Dim is the widest line by the number of lines.
func (p *Paragraph) Dim() geometry.Coord {
	var width uint32
	for _, line := range p.lines {
		width = max(width, line.Dim().X)
	}
	return geometry.NewCoord(width, uint32(len(p.lines)))
}
