package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"overture/geometry"
	"overture/render"
	"overture/scene"
	"overture/style"
	"overture/text"
)

const paletteCell = 18

var paletteRows = [][4]style.Attribute{
	{style.FgBlack, style.FgBrightBlack, style.BgBlack, style.BgBrightBlack},
	{style.FgRed, style.FgBrightRed, style.BgRed, style.BgBrightRed},
	{style.FgGreen, style.FgBrightGreen, style.BgGreen, style.BgBrightGreen},
	{style.FgYellow, style.FgBrightYellow, style.BgYellow, style.BgBrightYellow},
	{style.FgBlue, style.FgBrightBlue, style.BgBlue, style.BgBrightBlue},
	{style.FgMagenta, style.FgBrightMagenta, style.BgMagenta, style.BgBrightMagenta},
	{style.FgCyan, style.FgBrightCyan, style.BgCyan, style.BgBrightCyan},
	{style.FgWhite, style.FgBrightWhite, style.BgWhite, style.BgBrightWhite},
}

var paletteStyles = []style.Attribute{
	style.Bold, style.Dim, style.Italic, style.Underline, style.Blink, style.Invert, style.Strikethrough,
}

func newPaletteCmd(opts *options) *cobra.Command {
	return &cobra.Command{
		Use:   "palette",
		Short: "Show every colour and text attribute",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := opts.resolve(cmd.Flags())
			if err != nil {
				return err
			}
			if !cmd.Flags().Changed("min-height") {
				cfg.MinHeight = 0
			}
			return show(cmd, opts, cfg, palette(cfg.Width))
		},
	}
}

// palette lays out the 16 colours as foreground and background swatches,
// one colour per row, followed by the text attributes and a 24-bit
// gradient as wide as width.
func palette(width uint32) []scene.Entry {
	entries := []scene.Entry{}
	swatch := func(label string, x, y uint32, attr style.Attribute) {
		cell := text.New(fmt.Sprintf(" %-*s", paletteCell-1, label), geometry.NewCoord(x, y))
		entries = append(entries, scene.Entry{Object: render.Style(cell, style.Of(attr))})
	}

	for y, row := range paletteRows {
		for x, attr := range row {
			swatch(attr.String(), uint32(x*paletteCell), uint32(y), attr)
		}
	}

	y := uint32(len(paletteRows)) + 1
	for i, attr := range paletteStyles {
		swatch(attr.String(), uint32(i%4*paletteCell), y+uint32(i/4), attr)
	}

	y += uint32(len(paletteStyles)+3)/4 + 1
	for x := uint32(0); x < width; x++ {
		shade := uint8(x * 255 / max(width-1, 1))
		cell := text.New(" ", geometry.NewCoord(x, y))
		entries = append(entries, scene.Entry{Object: render.Style(cell, style.Of(style.BgRGB(shade, 0, 255-shade)))})
	}
	return entries
}
