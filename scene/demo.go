package scene

import (
	"overture/geometry"
	"overture/render"
	"overture/shape"
	"overture/style"
	"overture/text"
)

// DemoFont is the FIGlet font of the demo logo.
const DemoFont = "3-d"

// Demo lays out the title card for a cols by rows terminal: a cyan soft
// box with an " Intro " tab, a green logo, a slogan and a border around
// the whole screen. The engine is expected to be three rows shorter than
// the terminal and rendered with a minimum height of rows.
func Demo(cols, rows uint32) []Entry {
	screen := geometry.NewCoord(cols, rows)
	center := geometry.Place(geometry.CenterStage)

	card := shape.SoftBox(geometry.Origin, geometry.NewCoord(cols*3/4, rows*2/3)).Pixels().
		Rasterize().
		Prune().
		Align(center, screen).
		Style(style.Of(style.FgCyan))

	tab := text.New(" Intro ", geometry.Origin).Pixels().
		Rasterize().
		Protect().
		Align(center, screen).
		Translate(geometry.NewTranslation(-int32(cols*3/8)+5, -int32(rows/3))).
		Style(style.Of(style.FgBlue)).
		Prune()

	logo := text.BannerGroup("$", geometry.Origin, DemoFont).Pixels().
		Rasterize().
		Prune().
		Align(center, screen).
		Style(style.Of(style.FgGreen)).
		Translate(geometry.NewTranslation(0, -3))

	slogan := text.New("Low-level Rendering Made Simple!", geometry.Origin).Pixels().
		Rasterize().
		Prune().
		Align(center, screen).
		Translate(geometry.NewTranslation(0, 5)).
		Style(style.Of(style.Bold, style.FgBrightCyan))

	border := shape.SoftBox(geometry.Origin, geometry.NewCoord(cols-1, rows))

	return []Entry{
		{Object: render.NewGroup(card, tab.Translate(geometry.NewTranslation(5, 0)), logo)},
		{Object: slogan},
		{Object: border},
	}
}
