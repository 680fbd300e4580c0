// seehuhn.de/go/section - cross-section properties from vector drawings
// Copyright (C) 2026  Jochen Voss <voss@seehuhn.de>
//
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// This program is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with this program.  If not, see <https://www.gnu.org/licenses/>.

package pipeline

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"

	"seehuhn.de/go/section"
)

// Default values for fields missing from a job table.
const (
	DefaultResolution = 0.1
	DefaultFill       = 255
)

// Job describes the processing of one drawing.
type Job struct {
	Name       string  `yaml:"name"`       // report label; defaults to the input base name
	Input      string  `yaml:"input"`      // DXF drawing
	Output     string  `yaml:"output"`     // TIFF raster, optional
	Preview    string  `yaml:"preview"`    // PDF preview, optional
	Resolution float64 `yaml:"resolution"` // pixel size in drawing units
	Depth      float64 `yaml:"depth"`      // real total height of the section
}

// Config is a job table together with the settings shared by all jobs.
type Config struct {
	Resolution float64 `yaml:"resolution"`
	Fill       *int    `yaml:"fill"` // nil selects DefaultFill
	Axis       string  `yaml:"axis"`
	Rule       string  `yaml:"rule"`
	Jobs       []Job   `yaml:"jobs"`
}

// LoadConfig reads a YAML job table. Relative paths in the table are
// resolved against the directory containing the file.
func LoadConfig(name string) (cfg *Config, err error) {
	f, err := os.Open(name)
	if err != nil {
		return nil, err
	}
	defer func() {
		if cerr := f.Close(); err == nil {
			err = cerr
		}
	}()

	cfg, err = ParseConfig(f, filepath.Dir(name))
	if err != nil {
		return nil, fmt.Errorf("%s: %w", name, err)
	}
	return cfg, nil
}

// ParseConfig decodes a YAML job table and normalizes it, see
// [Config.Normalize].
func ParseConfig(r io.Reader, baseDir string) (*Config, error) {
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)

	cfg := &Config{}
	if err := dec.Decode(cfg); err != nil && !errors.Is(err, io.EOF) {
		return nil, err
	}

	if err := cfg.Normalize(baseDir); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Normalize fills in defaults, resolves relative paths against baseDir and
// validates the result.
func (cfg *Config) Normalize(baseDir string) error {
	if cfg.Resolution == 0 {
		cfg.Resolution = DefaultResolution
	}
	if cfg.Fill == nil {
		fill := DefaultFill
		cfg.Fill = &fill
	}
	if cfg.Axis == "" {
		cfg.Axis = section.AxisLegacy.String()
	}
	if cfg.Rule == "" {
		cfg.Rule = section.EvenOdd.String()
	}

	for i := range cfg.Jobs {
		job := &cfg.Jobs[i]
		if job.Resolution == 0 {
			job.Resolution = cfg.Resolution
		}
		if job.Name == "" {
			base := filepath.Base(job.Input)
			job.Name = strings.TrimSuffix(base, filepath.Ext(base))
		}
		job.Input = resolve(baseDir, job.Input)
		job.Output = resolve(baseDir, job.Output)
		job.Preview = resolve(baseDir, job.Preview)
	}

	return cfg.Validate()
}

// Validate checks the settings and every job.
func (cfg *Config) Validate() error {
	var errs []error
	if f := cfg.fill(); f < 1 || f > 255 {
		errs = append(errs, fmt.Errorf("fill value %d outside 1..255", f))
	}
	if _, err := ParseAxis(cfg.Axis); err != nil {
		errs = append(errs, err)
	}
	if _, err := ParseRule(cfg.Rule); err != nil {
		errs = append(errs, err)
	}
	if len(cfg.Jobs) == 0 {
		errs = append(errs, errors.New("no jobs"))
	}
	for i, job := range cfg.Jobs {
		if err := job.Validate(); err != nil {
			errs = append(errs, fmt.Errorf("job %d: %w", i+1, err))
		}
	}
	return errors.Join(errs...)
}

// Validate checks that the job can be run.
func (job Job) Validate() error {
	switch {
	case job.Input == "":
		return errors.New("missing input")
	case !(job.Depth > 0):
		return fmt.Errorf("%s: depth must be positive, got %g", job.Name, job.Depth)
	case !(job.Resolution > 0):
		return fmt.Errorf("%s: resolution must be positive, got %g", job.Name, job.Resolution)
	}
	return nil
}

// Runner returns a Runner using the settings of cfg.
// The configuration must have been validated.
func (cfg *Config) Runner() *Runner {
	axis, _ := ParseAxis(cfg.Axis)
	rule, _ := ParseRule(cfg.Rule)
	return &Runner{
		Fill: uint8(cfg.fill()),
		Axis: axis,
		Rule: rule,
	}
}

func (cfg *Config) fill() int {
	if cfg.Fill == nil {
		return DefaultFill
	}
	return *cfg.Fill
}

// ParseAxis converts "legacy" or "columns" to an AxisConvention.
func ParseAxis(s string) (section.AxisConvention, error) {
	for _, a := range []section.AxisConvention{section.AxisLegacy, section.AxisColumns} {
		if s == a.String() {
			return a, nil
		}
	}
	return 0, fmt.Errorf("unknown axis convention %q", s)
}

// ParseRule converts "evenodd" or "nonzero" to a FillRule.
func ParseRule(s string) (section.FillRule, error) {
	for _, r := range []section.FillRule{section.EvenOdd, section.NonZero} {
		if s == r.String() {
			return r, nil
		}
	}
	return 0, fmt.Errorf("unknown fill rule %q", s)
}

func resolve(baseDir, name string) string {
	if name == "" || filepath.IsAbs(name) {
		return name
	}
	return filepath.Join(baseDir, name)
}
