package main

import (
	"fmt"
	"strings"

	"github.com/BurntSushi/toml"

	"github.com/gogpu/colorwheel"
)

// config is the render profile read from a TOML file. Zero values keep the
// wheel defaults.
type config struct {
	Size           float64 `toml:"size"`
	InnerRadius    float64 `toml:"inner_radius"`
	OuterRadius    float64 `toml:"outer_radius"`
	TriangleRadius float64 `toml:"triangle_radius"`
	MarkerRadius   float64 `toml:"marker_radius"`
	Caption        bool    `toml:"caption"`
	Verbose        bool    `toml:"verbose"`
}

// readConfig decodes the profile at path. Unknown keys are rejected so that
// typos do not silently fall back to defaults.
func readConfig(path string) (config, error) {
	var conf config
	md, err := toml.DecodeFile(path, &conf)
	if err != nil {
		return config{}, fmt.Errorf("config %s: %w", path, err)
	}
	if undecoded := md.Undecoded(); len(undecoded) > 0 {
		keys := make([]string, len(undecoded))
		for i, k := range undecoded {
			keys[i] = k.String()
		}
		return config{}, fmt.Errorf("config %s: unknown keys: %s", path, strings.Join(keys, ", "))
	}
	return conf, nil
}

// wheelOptions turns the profile into wheel options.
func (c config) wheelOptions() []colorwheel.Option {
	var opts []colorwheel.Option
	if c.Size != 0 {
		opts = append(opts, colorwheel.WithSize(c.Size))
	}
	if c.InnerRadius != 0 || c.OuterRadius != 0 {
		opts = append(opts, colorwheel.WithRadii(c.InnerRadius, c.OuterRadius))
	}
	if c.TriangleRadius != 0 {
		opts = append(opts, colorwheel.WithTriangleRadius(c.TriangleRadius))
	}
	if c.MarkerRadius != 0 {
		opts = append(opts, colorwheel.WithMarkerRadius(c.MarkerRadius))
	}
	return opts
}
