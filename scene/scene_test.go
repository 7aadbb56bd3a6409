package scene

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"overture/engine"
	"overture/geometry"
	"overture/style"
)

const card = `
width: 6
height: 3
min_height: 4
objects:
  - kind: rectangle
    from: [5, 2]
    to: [0, 0]
  - kind: text
    text: hi
    placement: center-stage
    style: [bold, fg-red]
`

func glyphs(e *engine.Engine) []string {
	lines := []string{}
	for _, row := range e.Rows() {
		runes := []rune{}
		for _, ch := range row {
			runes = append(runes, ch.Glyph)
		}
		lines = append(lines, string(runes))
	}
	return lines
}

func TestLoadAndApply(t *testing.T) {
	scene, err := Load(strings.NewReader(card))
	require.NoError(t, err)
	assert.Equal(t, uint32(6), scene.Width)
	assert.Equal(t, uint32(3), scene.Height)
	assert.Equal(t, uint32(4), scene.MinHeight)
	require.Len(t, scene.Objects, 2)

	e, err := scene.Engine()
	require.NoError(t, err)
	require.NoError(t, scene.Apply(e))
	assert.Equal(t, []string{"┌────┐", "│ hi │", "└────┘"}, glyphs(e))

	ch, ok := e.Cell(2, 1)
	require.True(t, ok)
	assert.True(t, ch.Style.Equal(style.Of(style.Bold, style.FgRed)))
	ch, _ = e.Cell(0, 0)
	assert.False(t, ch.Style.IsStyled())
}

func TestTransformations(t *testing.T) {
	scene, err := Load(strings.NewReader(`
width: 4
height: 2
objects:
  - kind: text
    text: x
    from: [3, 1]
    align: {placement: top-left, target: [4, 2]}
    translate: [1, 0]
  - kind: spacer
    size: [1, 1]
    prune: true
    offset: [3, 1]
`))
	require.NoError(t, err)
	e, err := scene.Engine()
	require.NoError(t, err)
	require.NoError(t, scene.Apply(e))
	assert.Equal(t, []string{" x  ", "    "}, glyphs(e))

	entries, err := scene.Build()
	require.NoError(t, err)
	require.Len(t, entries, 2)
	assert.Equal(t, geometry.Offset(geometry.NewTranslation(3, 1)), entries[1].Placement)
	assert.Len(t, entries[1].Object.Pixels(), 1)
}

func TestParagraphAndBanner(t *testing.T) {
	scene, err := Load(strings.NewReader(`
width: 20
height: 1
objects:
  - kind: paragraph
    text: one two three
    wrap: 7
  - kind: banner
    text: A
    placement: bottom-right
`))
	require.NoError(t, err)
	entries, err := scene.Build()
	require.NoError(t, err)
	assert.Equal(t, "one twothree", entries[0].Object.Pixels().Glyphs())
	assert.NotEmpty(t, entries[1].Object.Pixels())
}

func TestBuildErrors(t *testing.T) {
	tests := []struct {
		name string
		yaml string
		want string
	}{
		{"unknown kind", "objects: [{kind: rectangle, from: [0, 0], to: [1, 1]}, {kind: circle}]", "object 1 (circle)"},
		{"short coordinate", "objects: [{kind: softbox, from: [0], to: [1, 1]}]", "from"},
		{"bad style", "objects: [{kind: text, text: a, style: [sparkly]}]", "style"},
		{"bad placement", "objects: [{kind: text, text: a, placement: middle}]", "placement"},
		{"exclusive placement", "objects: [{kind: text, text: a, placement: top-left, offset: [1, 1]}]", "exclusive"},
		{"bad align", "objects: [{kind: text, text: a, align: {placement: top-left, target: [1]}}]", "align target"},
		{"unwrapped paragraph", "objects: [{kind: paragraph, text: a}]", "wrap"},
		{"unknown font", "objects: [{kind: banner, text: a, font: no-such-font}]", "no-such-font"},
		{"missing font file", "objects: [{kind: banner, text: a, font_file: /no/such.flf}]", "opening font"},
	}
	for _, test := range tests {
		scene, err := Load(strings.NewReader(test.yaml))
		require.NoError(t, err, test.name)
		_, err = scene.Build()
		require.Error(t, err, test.name)
		assert.Contains(t, err.Error(), test.want, test.name)
	}
}

func TestApplyLoadsNothingOnError(t *testing.T) {
	scene, err := Load(strings.NewReader("width: 2\nheight: 1\nobjects: [{kind: text, text: a}, {kind: nope}]"))
	require.NoError(t, err)
	e, err := scene.Engine()
	require.NoError(t, err)
	assert.Error(t, scene.Apply(e))
	assert.Equal(t, []string{"  "}, glyphs(e))
}

func TestEngineNeedsWidth(t *testing.T) {
	scene, err := Load(strings.NewReader("height: 2\nobjects: [{kind: text, text: a}]"))
	require.NoError(t, err)
	_, err = scene.Engine()
	assert.Error(t, err)
}

func TestFarObjectsAreDropped(t *testing.T) {
	scene, err := Load(strings.NewReader(`
width: 10
height: 1
objects:
  - kind: text
    text: W
    from: [4294967295, 0]
    placement: top-right
`))
	require.NoError(t, err)
	e, err := scene.Engine()
	require.NoError(t, err)
	require.NoError(t, scene.Apply(e))
	assert.Equal(t, []string{"          "}, glyphs(e))
}

func TestLoadErrors(t *testing.T) {
	_, err := Load(strings.NewReader(""))
	assert.Error(t, err)
	_, err = Load(strings.NewReader("width: 1\ncolour: red\n"))
	assert.Error(t, err)
	_, err = Load(strings.NewReader("width: [1"))
	assert.Error(t, err)
}

func TestLoadFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "card.yaml")
	require.NoError(t, os.WriteFile(path, []byte(card), 0o644))
	scene, err := LoadFile(path)
	require.NoError(t, err)
	assert.Len(t, scene.Objects, 2)

	_, err = LoadFile(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.Error(t, err)
}

func TestDemo(t *testing.T) {
	const cols, rows = 130, 30
	out := &bytes.Buffer{}
	e := engine.New(cols, rows-3, engine.WithOutput(out))
	LoadEntries(e, Demo(cols, rows))
	require.NoError(t, e.Render(rows))

	lines := glyphs(e)
	// the border reaches row rows, one past the requested minimum
	require.Len(t, lines, rows+1)
	assert.True(t, strings.HasPrefix(lines[0], "╭"))
	assert.True(t, strings.HasPrefix(lines[rows], "╰"))
	assert.Contains(t, strings.Join(lines, "\n"), "Low-level Rendering Made Simple!")
	assert.Contains(t, strings.Join(lines, "\n"), " Intro ")
	assert.Contains(t, out.String(), "\x1b[1m\x1b[96mL\x1b[0m")
}
