// SPDX-License-Identifier: MIT

package main

import (
	"bytes"
	"fmt"
	"io"
	"os"

	"github.com/pkg/errors"
	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/necklace/necklace"
)

// batchFile is the on-disk layout of a batch run:
//
//	jobs:
//	  - name: small
//	    length: 6
//	    sum: 3
//	    max_zeros: 2
//	    modes: [binary]
type batchFile struct {
	Jobs []jobEntry `yaml:"jobs"`
}

type jobEntry struct {
	Name     string   `yaml:"name"`
	Length   int      `yaml:"length"`
	Sum      int      `yaml:"sum"`
	MaxZeros int      `yaml:"max_zeros"`
	Modes    []string `yaml:"modes"`
	Yes      bool     `yaml:"yes"`
}

// loadConfig reads and validates a batch file.
func loadConfig(path string) ([]job, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.Wrapf(err, "read config %s", path)
	}
	jobs, err := parseConfig(data)
	if err != nil {
		return nil, errors.Wrapf(err, "config %s", path)
	}

	return jobs, nil
}

// parseConfig decodes data strictly: unknown keys are errors.
func parseConfig(data []byte) ([]job, error) {
	var f batchFile
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(&f); err != nil && err != io.EOF {
		return nil, errors.Wrap(err, "decode yaml")
	}
	if len(f.Jobs) == 0 {
		return nil, errors.New("no jobs defined")
	}

	jobs := make([]job, 0, len(f.Jobs))
	for i, e := range f.Jobs {
		name := e.Name
		if name == "" {
			name = fmt.Sprintf("job-%d", i+1)
		}
		modes, err := parseModes(e.Modes)
		if err != nil {
			return nil, errors.Wrapf(err, "job %q", name)
		}
		jobs = append(jobs, job{
			Name:   name,
			Params: necklace.Params{Length: e.Length, Sum: e.Sum, MaxZeros: e.MaxZeros},
			Modes:  modes,
			Yes:    e.Yes,
		})
	}

	return jobs, nil
}
