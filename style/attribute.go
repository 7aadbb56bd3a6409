package style

import (
	"fmt"
	"image/color"
	"strconv"
	"strings"

	"github.com/muesli/termenv"
)

type attrKind uint8

const (
	fixed attrKind = iota
	fgRGB
	bgRGB
)

// Attribute is a single terminal text attribute: an SGR style flag, a
// palette colour or a 24-bit colour.
type Attribute struct {
	kind    attrKind
	sgr     uint8
	R, G, B uint8
}

var (
	Reset         = Attribute{sgr: 0}
	Bold          = Attribute{sgr: 1}
	Dim           = Attribute{sgr: 2}
	Italic        = Attribute{sgr: 3}
	Underline     = Attribute{sgr: 4}
	Blink         = Attribute{sgr: 5}
	Invert        = Attribute{sgr: 7}
	Hidden        = Attribute{sgr: 8}
	Strikethrough = Attribute{sgr: 9}

	NoBold          = Attribute{sgr: 21}
	NoDim           = Attribute{sgr: 22}
	NoItalic        = Attribute{sgr: 23}
	NoUnderline     = Attribute{sgr: 24}
	NoBlink         = Attribute{sgr: 25}
	NoInvert        = Attribute{sgr: 27}
	NoHidden        = Attribute{sgr: 28}
	NoStrikethrough = Attribute{sgr: 29}

	FgBlack   = Attribute{sgr: 30}
	FgRed     = Attribute{sgr: 31}
	FgGreen   = Attribute{sgr: 32}
	FgYellow  = Attribute{sgr: 33}
	FgBlue    = Attribute{sgr: 34}
	FgMagenta = Attribute{sgr: 35}
	FgCyan    = Attribute{sgr: 36}
	FgWhite   = Attribute{sgr: 37}

	FgBrightBlack   = Attribute{sgr: 90}
	FgBrightRed     = Attribute{sgr: 91}
	FgBrightGreen   = Attribute{sgr: 92}
	FgBrightYellow  = Attribute{sgr: 93}
	FgBrightBlue    = Attribute{sgr: 94}
	FgBrightMagenta = Attribute{sgr: 95}
	FgBrightCyan    = Attribute{sgr: 96}
	FgBrightWhite   = Attribute{sgr: 97}

	BgBlack   = Attribute{sgr: 40}
	BgRed     = Attribute{sgr: 41}
	BgGreen   = Attribute{sgr: 42}
	BgYellow  = Attribute{sgr: 43}
	BgBlue    = Attribute{sgr: 44}
	BgMagenta = Attribute{sgr: 45}
	BgCyan    = Attribute{sgr: 46}
	BgWhite   = Attribute{sgr: 47}

	BgBrightBlack   = Attribute{sgr: 100}
	BgBrightRed     = Attribute{sgr: 101}
	BgBrightGreen   = Attribute{sgr: 102}
	BgBrightYellow  = Attribute{sgr: 103}
	BgBrightBlue    = Attribute{sgr: 104}
	BgBrightMagenta = Attribute{sgr: 105}
	BgBrightCyan    = Attribute{sgr: 106}
	BgBrightWhite   = Attribute{sgr: 107}
)

// ResetCode ends every styled cell.
const ResetCode = "\x1b[0m"

func FgRGB(r, g, b uint8) Attribute {
	return Attribute{kind: fgRGB, R: r, G: g, B: b}
}

func BgRGB(r, g, b uint8) Attribute {
	return Attribute{kind: bgRGB, R: r, G: g, B: b}
}

// Code returns the escape sequence of the attribute.
func (a Attribute) Code() string {
	switch a.kind {
	case fgRGB:
		return fmt.Sprintf("\x1b[38;2;%d;%d;%dm", a.R, a.G, a.B)
	case bgRGB:
		return fmt.Sprintf("\x1b[48;2;%d;%d;%dm", a.R, a.G, a.B)
	}
	return "\x1b[" + strconv.Itoa(int(a.sgr)) + "m"
}

// CodeFor returns the escape sequence the terminal profile can display.
// 24-bit colours are downsampled to the profile's palette and colours are
// dropped entirely for Ascii.
func (a Attribute) CodeFor(profile termenv.Profile) string {
	if profile == termenv.TrueColor {
		return a.Code()
	}
	if profile == termenv.Ascii && a.IsColor() {
		return ""
	}
	if a.kind == fixed {
		return a.Code()
	}
	seq := profile.FromColor(color.RGBA{R: a.R, G: a.G, B: a.B, A: 0xff}).Sequence(a.kind == bgRGB)
	if seq == "" {
		return ""
	}
	return termenv.CSI + seq + "m"
}

func (a Attribute) IsColor() bool {
	if a.kind != fixed {
		return true
	}
	return (a.sgr >= 30 && a.sgr <= 47) || (a.sgr >= 90 && a.sgr <= 107)
}

// IsRGB reports whether the attribute is a 24-bit colour; Foreground tells
// which plane it paints.
func (a Attribute) IsRGB() bool {
	return a.kind != fixed
}

func (a Attribute) Foreground() bool {
	return a.kind == fgRGB || (a.sgr >= 30 && a.sgr <= 37) || (a.sgr >= 90 && a.sgr <= 97)
}

// PaletteIndex returns the 16-colour palette index of a palette colour,
// or -1.
func (a Attribute) PaletteIndex() int {
	switch {
	case a.kind != fixed:
		return -1
	case a.sgr >= 30 && a.sgr <= 37:
		return int(a.sgr - 30)
	case a.sgr >= 40 && a.sgr <= 47:
		return int(a.sgr - 40)
	case a.sgr >= 90 && a.sgr <= 97:
		return int(a.sgr-90) + 8
	case a.sgr >= 100 && a.sgr <= 107:
		return int(a.sgr-100) + 8
	}
	return -1
}

var names = map[Attribute]string{
	Reset: "reset", Bold: "bold", Dim: "dim", Italic: "italic", Underline: "underline",
	Blink: "blink", Invert: "invert", Hidden: "hidden", Strikethrough: "strikethrough",
	NoBold: "no-bold", NoDim: "no-dim", NoItalic: "no-italic", NoUnderline: "no-underline",
	NoBlink: "no-blink", NoInvert: "no-invert", NoHidden: "no-hidden", NoStrikethrough: "no-strikethrough",
}

var colorNames = []string{"black", "red", "green", "yellow", "blue", "magenta", "cyan", "white"}

func init() {
	for i, name := range colorNames {
		names[Attribute{sgr: uint8(30 + i)}] = "fg-" + name
		names[Attribute{sgr: uint8(90 + i)}] = "fg-bright-" + name
		names[Attribute{sgr: uint8(40 + i)}] = "bg-" + name
		names[Attribute{sgr: uint8(100 + i)}] = "bg-bright-" + name
	}
}

func (a Attribute) String() string {
	switch a.kind {
	case fgRGB:
		return fmt.Sprintf("#%02x%02x%02x", a.R, a.G, a.B)
	case bgRGB:
		return fmt.Sprintf("bg:#%02x%02x%02x", a.R, a.G, a.B)
	}
	if name, ok := names[a]; ok {
		return name
	}
	return fmt.Sprintf("sgr(%d)", a.sgr)
}

// ParseAttribute accepts the names produced by String: "bold",
// "fg-bright-cyan", "#ff8800" and "bg:#ff8800".
func ParseAttribute(name string) (Attribute, error) {
	name = strings.ToLower(strings.TrimSpace(name))
	if hex, ok := strings.CutPrefix(name, "bg:"); ok {
		r, g, b, err := parseHex(hex)
		if err != nil {
			return Attribute{}, err
		}
		return BgRGB(r, g, b), nil
	}
	if strings.HasPrefix(name, "#") {
		r, g, b, err := parseHex(name)
		if err != nil {
			return Attribute{}, err
		}
		return FgRGB(r, g, b), nil
	}
	for attr, n := range names {
		if n == name {
			return attr, nil
		}
	}
	return Attribute{}, fmt.Errorf("unknown attribute %q", name)
}

func parseHex(hex string) (r, g, b uint8, err error) {
	hex = strings.TrimPrefix(hex, "#")
	if len(hex) != 6 {
		return 0, 0, 0, fmt.Errorf("invalid colour %q", hex)
	}
	v, err := strconv.ParseUint(hex, 16, 32)
	if err != nil {
		return 0, 0, 0, fmt.Errorf("invalid colour %q", hex)
	}
	return uint8(v >> 16), uint8(v >> 8), uint8(v), nil
}
