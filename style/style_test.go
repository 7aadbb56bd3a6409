package style

import (
	"testing"

	"github.com/muesli/termenv"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCodes(t *testing.T) {
	tests := []struct {
		attr Attribute
		code string
	}{
		{Reset, "\x1b[0m"},
		{Bold, "\x1b[1m"},
		{Strikethrough, "\x1b[9m"},
		{NoBold, "\x1b[21m"},
		{NoStrikethrough, "\x1b[29m"},
		{FgBlack, "\x1b[30m"},
		{FgWhite, "\x1b[37m"},
		{FgBrightCyan, "\x1b[96m"},
		{BgRed, "\x1b[41m"},
		{BgBrightWhite, "\x1b[107m"},
		{FgRGB(1, 2, 3), "\x1b[38;2;1;2;3m"},
		{BgRGB(255, 128, 0), "\x1b[48;2;255;128;0m"},
	}
	for _, test := range tests {
		assert.Equal(t, test.code, test.attr.Code(), test.attr.String())
		assert.Equal(t, test.code, test.attr.CodeFor(termenv.TrueColor), test.attr.String())
	}
	assert.Equal(t, ResetCode, Reset.Code())
}

func TestCodeForProfiles(t *testing.T) {
	assert.Equal(t, "\x1b[1m", Bold.CodeFor(termenv.Ascii))
	assert.Empty(t, FgRed.CodeFor(termenv.Ascii))
	assert.Empty(t, FgRGB(10, 20, 30).CodeFor(termenv.Ascii))
	assert.Equal(t, "\x1b[31m", FgRed.CodeFor(termenv.ANSI))

	code := FgRGB(255, 0, 0).CodeFor(termenv.ANSI256)
	assert.Regexp(t, `^\x1b\[38;5;\d+m$`, code)
	code = BgRGB(255, 0, 0).CodeFor(termenv.ANSI)
	assert.Regexp(t, `^\x1b\[(4|10)\dm$`, code)
}

func TestPaletteIndex(t *testing.T) {
	assert.Equal(t, 0, FgBlack.PaletteIndex())
	assert.Equal(t, 6, BgCyan.PaletteIndex())
	assert.Equal(t, 9, FgBrightRed.PaletteIndex())
	assert.Equal(t, 15, BgBrightWhite.PaletteIndex())
	assert.Equal(t, -1, Bold.PaletteIndex())
	assert.Equal(t, -1, FgRGB(0, 0, 0).PaletteIndex())
	assert.True(t, FgBrightRed.Foreground())
	assert.False(t, BgRGB(1, 1, 1).Foreground())
	assert.True(t, BgRGB(1, 1, 1).IsColor())
	assert.False(t, Underline.IsColor())
}

func TestParseAttribute(t *testing.T) {
	tests := map[string]Attribute{
		"bold":           Bold,
		"No-Italic":      NoItalic,
		"fg-cyan":        FgCyan,
		"fg-bright-cyan": FgBrightCyan,
		"bg-bright-red":  BgBrightRed,
		"#0a0b0c":        FgRGB(10, 11, 12),
		"bg:#FF0000":     BgRGB(255, 0, 0),
	}
	for name, want := range tests {
		got, err := ParseAttribute(name)
		require.NoError(t, err, name)
		assert.Equal(t, want, got, name)
	}
	for _, name := range []string{"", "purple", "#12345", "bg:#zzzzzz"} {
		_, err := ParseAttribute(name)
		assert.Error(t, err, name)
	}
}

func TestChain(t *testing.T) {
	assert.Equal(t, KindPlain, Of().Kind())
	assert.Equal(t, KindPlain, Chain{}.Kind())
	assert.Equal(t, KindNone, None().Kind())

	chain := Of(Bold, FgCyan, Underline)
	assert.True(t, chain.IsStyled())
	head, ok := chain.Head()
	assert.True(t, ok)
	assert.Equal(t, Bold, head)
	assert.Equal(t, []Attribute{Bold, FgCyan, Underline}, chain.Attributes())
	assert.Equal(t, []Attribute{FgCyan, Underline}, chain.Rest().Attributes())
	assert.Equal(t, "\x1b[1m\x1b[36m\x1b[4m", chain.Codes(termenv.TrueColor))
	assert.Equal(t, "Style(bold, fg-cyan, underline)", chain.String())

	_, ok = Plain().Head()
	assert.False(t, ok)
	assert.Empty(t, None().Attributes())
	assert.Equal(t, Plain(), None().Rest())
}

func TestChainEqual(t *testing.T) {
	assert.True(t, Of(Bold, FgRed).Equal(Attr(Bold, Attr(FgRed, Plain()))))
	assert.False(t, Of(Bold, FgRed).Equal(Of(FgRed, Bold)))
	assert.False(t, Of(Bold).Equal(Of(Bold, FgRed)))
	assert.False(t, Plain().Equal(None()))
	assert.True(t, None().Equal(None()))
}

func TestParseChain(t *testing.T) {
	chain, err := Parse([]string{"bold", "fg-bright-cyan"})
	require.NoError(t, err)
	assert.True(t, chain.Equal(Of(Bold, FgBrightCyan)))

	chain, err = Parse(nil)
	require.NoError(t, err)
	assert.Equal(t, KindPlain, chain.Kind())

	_, err = Parse([]string{"bold", "sparkly"})
	assert.Error(t, err)
}
