package main

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"overture/device"
	"overture/render"
	"overture/term"
)

func execute(t *testing.T, stdin string, args ...string) (string, error) {
	t.Helper()
	t.Setenv("OVERTURE_LOG_LEVEL", "")
	t.Setenv("OVERTURE_COLORS", "")
	out := &bytes.Buffer{}
	cmd := newRootCmd()
	cmd.SetOut(out)
	cmd.SetErr(&bytes.Buffer{})
	cmd.SetIn(strings.NewReader(stdin))
	cmd.SetArgs(args)
	err := cmd.Execute()
	return out.String(), err
}

func writeFile(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestRenderScene(t *testing.T) {
	path := writeFile(t, "card.yaml", `
width: 6
height: 3
min_height: 4
objects:
  - kind: softbox
    from: [0, 0]
    to: [5, 2]
  - kind: text
    text: ok
    placement: center-stage
    style: [fg-green]
`)
	out, err := execute(t, "", "render", path, "--colors", "truecolor", "--log-level", "error")
	require.NoError(t, err)
	out = strings.TrimPrefix(out, term.HideCursor)
	out = strings.TrimSuffix(out, term.ShowCursor)
	assert.Equal(t, "╭────╮\n│ \x1b[32mo\x1b[0m\x1b[32mk\x1b[0m │\n╰────╯\n      \n", out)
}

func TestRenderSceneFlagsWin(t *testing.T) {
	path := writeFile(t, "dot.yaml", "width: 6\nheight: 1\nobjects: [{kind: text, text: x, placement: top-right}]\n")
	out, err := execute(t, "", "render", path, "--width", "3", "--min-height", "2", "--colors", "ascii")
	require.NoError(t, err)
	assert.Contains(t, out, "  x\n   \n")
}

func TestRenderWarnsAboutWideRows(t *testing.T) {
	scenePath := writeFile(t, "wide.yaml", "width: 4\nheight: 1\nobjects: [{kind: text, text: 世界}]\n")
	logPath := filepath.Join(t.TempDir(), "overture.log")
	_, err := execute(t, "", "render", scenePath, "--colors", "ascii", "--log-file", logPath)
	require.NoError(t, err)

	data, err := os.ReadFile(logPath)
	require.NoError(t, err)
	assert.Contains(t, string(data), `"rows":1`)
	assert.Contains(t, string(data), "wide characters")
}

func TestRenderErrors(t *testing.T) {
	_, err := execute(t, "", "render")
	assert.Error(t, err)

	_, err = execute(t, "", "render", filepath.Join(t.TempDir(), "missing.yaml"))
	assert.Error(t, err)

	path := writeFile(t, "bad.yaml", "objects: [{kind: circle}]\n")
	_, err = execute(t, "", "render", path)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "object 0 (circle)")

	_, err = execute(t, "", "demo", "--colors", "sepia")
	assert.Error(t, err)
}

func TestDemoCommand(t *testing.T) {
	out, err := execute(t, "\n", "demo", "--colors", "ascii", "--pause", "--clear", "--alt-screen")
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(out, term.EnableAltScreen))
	assert.Contains(t, out, term.ClearScreen)
	assert.Contains(t, out, "Low-level Rendering Made Simple!")
	assert.True(t, strings.HasSuffix(out, term.DisableAltScreen))
}

func TestConfigFile(t *testing.T) {
	cfgPath := writeFile(t, "overture.yaml", "width: 4\nmin_height: 1\ncolors: ascii\n")
	scenePath := writeFile(t, "dot.yaml", "objects: [{kind: text, text: y, placement: bottom-right}]\n")

	out, err := execute(t, "", "render", scenePath, "--config", cfgPath, "--height", "1")
	require.NoError(t, err)
	assert.Contains(t, out, "   y\n")

	_, err = execute(t, "", "render", scenePath, "--config", filepath.Join(t.TempDir(), "none.yaml"))
	assert.Error(t, err)
}

type fakeDevice struct {
	cells   int
	waited  bool
	stopped bool
}

func (d *fakeDevice) SetContent(x, y int, ch render.Char) { d.cells++ }
func (d *fakeDevice) Show()                               {}
func (d *fakeDevice) WaitKey()                            { d.waited = true }
func (d *fakeDevice) Stop()                               { d.stopped = true }

func TestTcellDevice(t *testing.T) {
	dev := &fakeDevice{}
	saved := newDevice
	newDevice = func() (device.Device, error) { return dev, nil }
	defer func() { newDevice = saved }()

	out, err := execute(t, "", "palette", "--device", "tcell", "--width", "80", "--height", "2")
	require.NoError(t, err)
	assert.Empty(t, out)
	assert.True(t, dev.waited)
	assert.True(t, dev.stopped)
	assert.Greater(t, dev.cells, 80*2)
}

func TestPalette(t *testing.T) {
	entries := palette(40)
	assert.Len(t, entries, len(paletteRows)*4+len(paletteStyles)+40)

	out, err := execute(t, "", "palette", "--colors", "truecolor", "--width", "72")
	require.NoError(t, err)
	assert.Contains(t, out, "\x1b[91m")
	assert.Contains(t, out, "\x1b[48;2;0;0;255m")
	assert.Contains(t, out, "\x1b[9m")
}
