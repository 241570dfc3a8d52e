package config

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/pelletier/go-toml/v2"
	"gopkg.in/yaml.v3"
)

// Load reads a TOML or YAML page file and validates it. Window fields the
// file leaves out and lists it does not mention come from Default.
func Load(path string) (*File, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	return Decode(data, filepath.Ext(path))
}

// Decode parses data in the format named by ext (".toml", ".yaml", ".yml").
func Decode(data []byte, ext string) (*File, error) {
	f := &File{}
	switch strings.ToLower(ext) {
	case ".toml", "":
		dec := toml.NewDecoder(bytes.NewReader(data))
		dec.DisallowUnknownFields()
		if err := dec.Decode(f); err != nil {
			return nil, fmt.Errorf("%w: %w", ErrInvalidConfig, err)
		}
	case ".yaml", ".yml":
		dec := yaml.NewDecoder(bytes.NewReader(data))
		dec.KnownFields(true)
		if err := dec.Decode(f); err != nil {
			return nil, fmt.Errorf("%w: %w", ErrInvalidConfig, err)
		}
	default:
		return nil, fmt.Errorf("%w: unsupported config format %q", ErrInvalidConfig, ext)
	}
	f.fillDefaults(Default())
	if err := f.Validate(); err != nil {
		return nil, err
	}
	return f, nil
}

// fillDefaults copies every unset window field and every absent list
// from d.
func (f *File) fillDefaults(d *File) {
	w := &f.Window
	if w.Width == 0 {
		w.Width = d.Window.Width
	}
	if w.Height == 0 {
		w.Height = d.Window.Height
	}
	if w.Title == "" {
		w.Title = d.Window.Title
	}
	if w.PageHeight == 0 {
		w.PageHeight = d.Window.PageHeight
	}
	if w.MobileBreakpoint == 0 {
		w.MobileBreakpoint = d.Window.MobileBreakpoint
	}
	if w.Device == "" {
		w.Device = d.Window.Device
	}
	if w.TPS == 0 {
		w.TPS = d.Window.TPS
	}
	if f.Containers == nil {
		f.Containers = d.Containers
	}
	if f.Tracks == nil {
		f.Tracks = d.Tracks
	}
	if f.Spheres == nil {
		f.Spheres = d.Spheres
	}
	if f.Waves == nil {
		f.Waves = d.Waves
	}
}
