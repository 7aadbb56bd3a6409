package text

import (
	"os"

	"github.com/common-nighthawk/go-figure"
	"github.com/mitchellh/go-homedir"
	"github.com/pkg/errors"

	"overture/geometry"
	"overture/render"
)

// DefaultFont is used when a banner names no font.
const DefaultFont = "standard"

// Banner renders content as FIGlet art in one of the embedded fonts, one
// Text per line starting at pos. Characters outside printable ASCII are
// drawn as '?'. An unknown font panics.
func Banner(content string, pos geometry.Coord, font string) []Text {
	if font == "" {
		font = DefaultFont
	}
	return bannerLines(figure.NewFigure(content, font, false).Slicify(), pos)
}

// LoadBanner renders content with the FIGlet font file at path.
func LoadBanner(content string, pos geometry.Coord, path string) (lines []Text, err error) {
	path, err = homedir.Expand(path)
	if err != nil {
		return nil, errors.Wrapf(err, "font %q", path)
	}
	file, err := os.Open(path)
	if err != nil {
		return nil, errors.Wrap(err, "opening font")
	}
	defer file.Close()

	defer func() {
		if r := recover(); r != nil {
			lines, err = nil, errors.Errorf("font %q: %v", path, r)
		}
	}()
	return bannerLines(figure.NewFigureWithFont(content, file, false).Slicify(), pos), nil
}

// BannerGroup is Banner as a single Renderable.
func BannerGroup(content string, pos geometry.Coord, font string) *render.Group {
	return render.GroupOf(Banner(content, pos, font))
}

func bannerLines(rows []string, pos geometry.Coord) []Text {
	lines := make([]Text, 0, len(rows))
	for i, row := range rows {
		lines = append(lines, New(row, pos.Add(geometry.NewCoord(0, uint32(i)))))
	}
	return lines
}
