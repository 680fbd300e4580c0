// Command export writes the test case drawings as DXF files, together with
// a job table and the closed-form section properties, so that other tools
// can be run on the same drawings.
// Run from the module root directory.
package main

import (
	"fmt"
	"maps"
	"os"
	"path/filepath"
	"slices"

	"gopkg.in/yaml.v3"

	"seehuhn.de/go/section/dxf"
	"seehuhn.de/go/section/pipeline"
	"seehuhn.de/go/section/testcases"
)

const outDir = "testdata"

type expected struct {
	Area float64 `yaml:"area"`
	Ix   float64 `yaml:"ix"`
	Iy   float64 `yaml:"iy"`
	YInf float64 `yaml:"y_inf"`
}

func main() {
	if err := os.MkdirAll(filepath.Join(outDir, "dxf"), 0755); err != nil {
		panic(err)
	}

	fill := pipeline.DefaultFill
	cfg := pipeline.Config{
		Resolution: pipeline.DefaultResolution,
		Fill:       &fill,
	}
	want := map[string]expected{}
	for _, category := range slices.Sorted(maps.Keys(testcases.All)) {
		for _, tc := range testcases.All[category] {
			name := category + "_" + tc.Name
			rel := filepath.Join("dxf", name+".dxf")
			if err := writeDXF(filepath.Join(outDir, rel), tc.Entities); err != nil {
				panic(fmt.Errorf("%s: %w", name, err))
			}

			cfg.Jobs = append(cfg.Jobs, pipeline.Job{
				Name:       name,
				Input:      rel,
				Output:     filepath.Join("tif", name+".tif"),
				Resolution: tc.Resolution,
				Depth:      tc.Depth,
			})
			if tc.Want.Known() {
				want[name] = expected(tc.Want)
			}
		}
	}

	if err := writeYAML(filepath.Join(outDir, "jobs.yaml"), cfg); err != nil {
		panic(err)
	}
	if err := writeYAML(filepath.Join(outDir, "expected.yaml"), want); err != nil {
		panic(err)
	}
}

func writeDXF(name string, ents []dxf.Entity) (err error) {
	f, err := os.Create(name)
	if err != nil {
		return err
	}
	defer func() {
		if cerr := f.Close(); err == nil {
			err = cerr
		}
	}()
	return dxf.Write(f, ents)
}

func writeYAML(name string, v any) (err error) {
	f, err := os.Create(name)
	if err != nil {
		return err
	}
	defer func() {
		if cerr := f.Close(); err == nil {
			err = cerr
		}
	}()

	enc := yaml.NewEncoder(f)
	enc.SetIndent(2)
	if err := enc.Encode(v); err != nil {
		return err
	}
	return enc.Close()
}
