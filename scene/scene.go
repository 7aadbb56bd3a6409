// Package scene reads YAML scene descriptions and turns them into
// renderables loaded onto an engine.
package scene

import (
	"io"
	"os"

	"github.com/mitchellh/go-homedir"
	"github.com/pkg/errors"
	"gopkg.in/yaml.v3"

	"overture/engine"
	"overture/geometry"
	"overture/render"
)

type Scene struct {
	Width     uint32   `yaml:"width"`
	Height    uint32   `yaml:"height"`
	MinHeight uint32   `yaml:"min_height"`
	Objects   []Object `yaml:"objects"`
}

// Object describes one renderable and the transformations applied to it
// before it is loaded. Transformations run in the order protect, prune,
// align, translate, style.
type Object struct {
	Kind      string   `yaml:"kind"`
	From      []uint32 `yaml:"from"`
	To        []uint32 `yaml:"to"`
	Text      string   `yaml:"text"`
	Font      string   `yaml:"font"`
	FontFile  string   `yaml:"font_file"`
	Wrap      uint     `yaml:"wrap"`
	Size      []uint32 `yaml:"size"`
	Style     []string `yaml:"style"`
	Protect   bool     `yaml:"protect"`
	Prune     bool     `yaml:"prune"`
	Align     *Align   `yaml:"align"`
	Translate []int32  `yaml:"translate"`
	Placement string   `yaml:"placement"`
	Offset    []int32  `yaml:"offset"`
}

type Align struct {
	Placement string   `yaml:"placement"`
	Target    []uint32 `yaml:"target"`
}

// Entry is a built object and where the engine should place it.
type Entry struct {
	Object    render.Renderable
	Placement geometry.Placement
}

func Load(r io.Reader) (*Scene, error) {
	decoder := yaml.NewDecoder(r)
	decoder.KnownFields(true)
	scene := &Scene{}
	if err := decoder.Decode(scene); err != nil {
		if err == io.EOF {
			return nil, errors.New("empty scene")
		}
		return nil, errors.Wrap(err, "parsing scene")
	}
	return scene, nil
}

// LoadFile reads a scene file; a leading ~ in path is expanded.
func LoadFile(path string) (*Scene, error) {
	expanded, err := homedir.Expand(path)
	if err != nil {
		return nil, errors.Wrapf(err, "scene %q", path)
	}
	file, err := os.Open(expanded)
	if err != nil {
		return nil, errors.Wrap(err, "opening scene")
	}
	defer file.Close()
	scene, err := Load(file)
	if err != nil {
		return nil, errors.Wrapf(err, "scene %q", path)
	}
	return scene, nil
}

// Build turns every object into an Entry, in file order.
func (s *Scene) Build() ([]Entry, error) {
	entries := make([]Entry, 0, len(s.Objects))
	for i, obj := range s.Objects {
		entry, err := obj.build()
		if err != nil {
			return nil, errors.Wrapf(err, "object %d (%s)", i, obj.Kind)
		}
		entries = append(entries, entry)
	}
	return entries, nil
}

// Apply builds the scene and loads it onto e. Nothing is loaded when any
// object fails to build.
func (s *Scene) Apply(e *engine.Engine) error {
	entries, err := s.Build()
	if err != nil {
		return err
	}
	LoadEntries(e, entries)
	return nil
}

// LoadEntries loads entries onto e in order, so later entries paint over
// earlier ones.
func LoadEntries(e *engine.Engine, entries []Entry) {
	for _, entry := range entries {
		e.Load(entry.Object, entry.Placement)
	}
}

// Engine creates an engine sized for the scene. The scene must set a
// width.
func (s *Scene) Engine(opts ...engine.Option) (*engine.Engine, error) {
	if s.Width == 0 {
		return nil, errors.New("scene width must be positive")
	}
	return engine.New(s.Width, s.Height, opts...), nil
}
