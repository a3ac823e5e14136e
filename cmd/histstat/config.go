package main

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/scigolib/histogram"
)

// axisConfig is one axis definition from the yaml file. Kind selects the
// axis type; the other fields apply per kind.
type axisConfig struct {
	Name   string    `yaml:"name"`
	Kind   string    `yaml:"kind"`
	Bins   int       `yaml:"bins"`   // regular
	Lo     float64   `yaml:"lo"`     // regular, integer
	Hi     float64   `yaml:"hi"`     // regular, integer
	Edges  []float64 `yaml:"edges"`  // variable
	Labels []int64   `yaml:"labels"` // category
}

type config struct {
	Axes []axisConfig `yaml:"axes"`
}

// loadConfig parses the yaml axis definitions.
func loadConfig(r io.Reader) (*config, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("read config: %w", err)
	}

	var cfg config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("parse config: %w", err)
	}
	if len(cfg.Axes) == 0 {
		return nil, fmt.Errorf("config defines no axes")
	}
	return &cfg, nil
}

// build constructs the axis this definition describes.
func (c *axisConfig) build() (histogram.Axis, error) {
	switch c.Kind {
	case "regular":
		return histogram.NewRegular(c.Bins, c.Lo, c.Hi)
	case "variable":
		return histogram.NewVariable(c.Edges...)
	case "integer":
		return histogram.NewInteger(int(c.Lo), int(c.Hi))
	case "category":
		return histogram.NewCategory(c.Labels...)
	default:
		return nil, fmt.Errorf("unknown axis kind %q", c.Kind)
	}
}

// buildAxes constructs every axis in definition order.
func (c *config) buildAxes() ([]histogram.Axis, error) {
	axes := make([]histogram.Axis, 0, len(c.Axes))
	for i := range c.Axes {
		a, err := c.Axes[i].build()
		if err != nil {
			return nil, fmt.Errorf("axis %d: %w", i, err)
		}
		axes = append(axes, a)
	}
	return axes, nil
}

// axisName returns the configured name of axis k, or a positional fallback.
func (c *config) axisName(k int) string {
	if name := c.Axes[k].Name; name != "" {
		return name
	}
	return fmt.Sprintf("axis%d", k)
}

// parseKeep parses the -keep flag: a comma-separated list of axis positions.
// An empty flag means keep every axis.
func parseKeep(s string, rank int) ([]int, error) {
	if s == "" {
		keep := make([]int, rank)
		for i := range keep {
			keep[i] = i
		}
		return keep, nil
	}

	parts := strings.Split(s, ",")
	keep := make([]int, 0, len(parts))
	for _, part := range parts {
		p, err := strconv.Atoi(strings.TrimSpace(part))
		if err != nil {
			return nil, fmt.Errorf("bad axis position %q: %w", part, err)
		}
		keep = append(keep, p)
	}
	return keep, nil
}
