package scene

import (
	"github.com/pkg/errors"

	"overture/geometry"
	"overture/render"
	"overture/shape"
	"overture/style"
	"overture/text"
)

// Object kinds.
const (
	KindRectangle = "rectangle"
	KindSoftBox   = "softbox"
	KindDoubleBox = "doublebox"
	KindText      = "text"
	KindParagraph = "paragraph"
	KindBanner    = "banner"
	KindSpacer    = "spacer"
)

func (o Object) build() (Entry, error) {
	base, err := o.renderable()
	if err != nil {
		return Entry{}, err
	}

	var pixels render.Pixels
	if o.Protect {
		pixels = render.Protect(base)
	} else {
		pixels = render.Rasterize(base)
	}
	if o.Prune {
		pixels = pixels.Prune()
	}
	if o.Align != nil {
		placement, err := geometry.ParsePlacement(o.Align.Placement)
		if err != nil {
			return Entry{}, errors.Wrap(err, "align")
		}
		target, err := coord("align target", o.Align.Target)
		if err != nil {
			return Entry{}, err
		}
		pixels = pixels.Align(placement, target)
	}
	if o.Translate != nil {
		by, err := translation("translate", o.Translate)
		if err != nil {
			return Entry{}, err
		}
		pixels = pixels.Translate(by)
	}
	chain, err := style.Parse(o.Style)
	if err != nil {
		return Entry{}, errors.Wrap(err, "style")
	}
	pixels = pixels.Style(chain)

	placement, err := o.placement()
	if err != nil {
		return Entry{}, err
	}
	return Entry{Object: pixels, Placement: placement}, nil
}

func (o Object) renderable() (render.Renderable, error) {
	switch o.Kind {
	case KindRectangle, KindSoftBox, KindDoubleBox:
		from, err := coord("from", o.From)
		if err != nil {
			return nil, err
		}
		to, err := coord("to", o.To)
		if err != nil {
			return nil, err
		}
		switch o.Kind {
		case KindSoftBox:
			return shape.SoftBox(from, to), nil
		case KindDoubleBox:
			return shape.DoubleBox(from, to), nil
		}
		return shape.Rectangle(from, to), nil

	case KindText:
		from, err := optionalCoord("from", o.From)
		if err != nil {
			return nil, err
		}
		return text.New(o.Text, from), nil

	case KindParagraph:
		from, err := optionalCoord("from", o.From)
		if err != nil {
			return nil, err
		}
		if o.Wrap == 0 {
			return nil, errors.New("paragraph needs wrap")
		}
		return text.NewParagraph(o.Text, from, o.Wrap), nil

	case KindBanner:
		from, err := optionalCoord("from", o.From)
		if err != nil {
			return nil, err
		}
		if o.FontFile != "" {
			lines, err := text.LoadBanner(o.Text, from, o.FontFile)
			if err != nil {
				return nil, err
			}
			return render.GroupOf(lines), nil
		}
		return banner(o.Text, from, o.Font)

	case KindSpacer:
		from, err := optionalCoord("from", o.From)
		if err != nil {
			return nil, err
		}
		size, err := coord("size", o.Size)
		if err != nil {
			return nil, err
		}
		return shape.NewSpacer(from, size), nil
	}
	return nil, errors.Errorf("unknown kind %q", o.Kind)
}

// banner reports an unknown embedded font as an error.
func banner(content string, pos geometry.Coord, font string) (group render.Renderable, err error) {
	defer func() {
		if r := recover(); r != nil {
			group, err = nil, errors.Errorf("font %q: %v", font, r)
		}
	}()
	return text.BannerGroup(content, pos, font), nil
}

func (o Object) placement() (geometry.Placement, error) {
	if o.Offset != nil {
		if o.Placement != "" {
			return geometry.Placement{}, errors.New("placement and offset are exclusive")
		}
		by, err := translation("offset", o.Offset)
		if err != nil {
			return geometry.Placement{}, err
		}
		return geometry.Offset(by), nil
	}
	if o.Placement == "" {
		return geometry.Placement{}, nil
	}
	placement, err := geometry.ParsePlacement(o.Placement)
	if err != nil {
		return geometry.Placement{}, errors.Wrap(err, "placement")
	}
	return placement, nil
}

func coord(field string, values []uint32) (geometry.Coord, error) {
	if len(values) != 2 {
		return geometry.Coord{}, errors.Errorf("%s: want [x, y], got %v", field, values)
	}
	return geometry.NewCoord(values[0], values[1]), nil
}

func optionalCoord(field string, values []uint32) (geometry.Coord, error) {
	if values == nil {
		return geometry.Origin, nil
	}
	return coord(field, values)
}

func translation(field string, values []int32) (geometry.Translation, error) {
	if len(values) != 2 {
		return geometry.Translation{}, errors.Errorf("%s: want [x, y], got %v", field, values)
	}
	return geometry.NewTranslation(values[0], values[1]), nil
}
