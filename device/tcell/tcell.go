package tcell

import (
	"overture/device"
	"overture/render"
	"overture/style"

	"github.com/gdamore/tcell/v2"
)

type tcellDevice struct {
	screen tcell.Screen
}

func NewDevice() (device.Device, error) {
	screen, err := tcell.NewScreen()
	if err != nil {
		return nil, err
	}
	return NewDeviceFor(screen)
}

// NewDeviceFor initializes screen and wraps it, which lets tests use a
// tcell simulation screen.
func NewDeviceFor(screen tcell.Screen) (device.Device, error) {
	if err := screen.Init(); err != nil {
		return nil, err
	}
	screen.SetStyle(tcell.StyleDefault)
	screen.Clear()
	return &tcellDevice{screen: screen}, nil
}

func (d *tcellDevice) SetContent(x, y int, ch render.Char) {
	glyph := ch.Glyph
	if ch.Style.Kind() == style.KindNone {
		glyph = render.Blank.Glyph
	}
	d.screen.SetContent(x, y, glyph, nil, Style(ch.Style))
}

func (d *tcellDevice) Show() {
	d.screen.Show()
}

func (d *tcellDevice) WaitKey() {
	for {
		switch d.screen.PollEvent().(type) {
		case *tcell.EventKey, nil:
			return
		}
	}
}

func (d *tcellDevice) Stop() {
	d.screen.Fini()
}

// Style applies every attribute of the chain, outermost first, on top of
// the default style.
func Style(chain style.Chain) tcell.Style {
	result := tcell.StyleDefault
	for _, attr := range chain.Attributes() {
		result = apply(result, attr)
	}
	return result
}

func apply(s tcell.Style, attr style.Attribute) tcell.Style {
	if attr.IsColor() {
		var color tcell.Color
		if attr.IsRGB() {
			color = tcell.NewRGBColor(int32(attr.R), int32(attr.G), int32(attr.B))
		} else {
			color = tcell.PaletteColor(attr.PaletteIndex())
		}
		if attr.Foreground() {
			return s.Foreground(color)
		}
		return s.Background(color)
	}

	switch attr {
	case style.Reset:
		return tcell.StyleDefault
	case style.Bold:
		return s.Bold(true)
	case style.NoBold:
		return s.Bold(false)
	case style.Dim:
		return s.Dim(true)
	case style.NoDim:
		return s.Dim(false)
	case style.Italic:
		return s.Italic(true)
	case style.NoItalic:
		return s.Italic(false)
	case style.Underline:
		return s.Underline(true)
	case style.NoUnderline:
		return s.Underline(false)
	case style.Blink:
		return s.Blink(true)
	case style.NoBlink:
		return s.Blink(false)
	case style.Invert:
		return s.Reverse(true)
	case style.NoInvert:
		return s.Reverse(false)
	case style.Strikethrough:
		return s.StrikeThrough(true)
	case style.NoStrikethrough:
		return s.StrikeThrough(false)
	}
	return s
}
