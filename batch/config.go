// Copyright 2025 go-equalize Authors
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package batch

import (
	"errors"
	"fmt"
	"os"

	"github.com/samber/lo"
	"gopkg.in/yaml.v3"

	"github.com/ajroetker/go-equalize/equalize"
	"github.com/ajroetker/go-equalize/internal/logging"
)

// Config describes one batch run.
type Config struct {
	// Dataset is the directory holding the input images.
	Dataset string `yaml:"dataset"`

	// OutputDir receives processed images and statistics.
	OutputDir string `yaml:"output_dir"`

	// HistogramDir receives histogram plots.
	HistogramDir string `yaml:"histogram_dir"`

	// Workers is the number of images processed at once; 0 uses GOMAXPROCS.
	Workers int `yaml:"workers"`

	// Limit is the number of images (in name order) exported by the image
	// and histogram modes; 0 exports all of them.
	Limit int `yaml:"limit"`

	// Methods lists the methods to apply, by name. Empty means all.
	Methods []string `yaml:"methods"`

	Log LogConfig `yaml:"log"`
}

// LogConfig configures logging.
type LogConfig struct {
	Level      string `yaml:"level"`
	File       string `yaml:"file"`
	MaxSizeMB  int    `yaml:"max_size_mb"`
	MaxBackups int    `yaml:"max_backups"`
	MaxAgeDays int    `yaml:"max_age_days"`
}

// Options converts c to logging options.
func (c LogConfig) Options() logging.Options {
	return logging.Options{
		Level:      c.Level,
		File:       c.File,
		MaxSizeMB:  c.MaxSizeMB,
		MaxBackups: c.MaxBackups,
		MaxAgeDays: c.MaxAgeDays,
	}
}

// DefaultConfig returns the configuration used when no file is given.
func DefaultConfig() *Config {
	return &Config{
		Dataset:      "dataset",
		OutputDir:    "processed",
		HistogramDir: "histograms",
		Limit:        5,
		Methods:      methodNames(equalize.Methods()),
		Log:          LogConfig{Level: "info"},
	}
}

// LoadConfig reads a YAML configuration. Keys absent from the file keep
// their DefaultConfig values.
func LoadConfig(path string) (*Config, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read yaml: %w", err)
	}

	c := DefaultConfig()
	if err := yaml.Unmarshal(b, c); err != nil {
		return nil, fmt.Errorf("unmarshal yaml: %w", err)
	}
	if err := c.Validate(); err != nil {
		return nil, err
	}
	return c, nil
}

// Validate checks c and normalizes method names to their canonical form.
func (c *Config) Validate() error {
	if c.Dataset == "" {
		return errors.New("config: dataset is required")
	}
	if c.Workers < 0 {
		return fmt.Errorf("config: invalid workers %d", c.Workers)
	}
	if c.Limit < 0 {
		return fmt.Errorf("config: invalid limit %d", c.Limit)
	}

	methods, err := c.methods()
	if err != nil {
		return err
	}
	c.Methods = methodNames(methods)
	return nil
}

// methods resolves the configured method names.
func (c *Config) methods() ([]equalize.Method, error) {
	if len(c.Methods) == 0 {
		return equalize.Methods(), nil
	}
	var out []equalize.Method
	for _, name := range c.Methods {
		m, ok := equalize.Lookup(name)
		if !ok {
			return nil, fmt.Errorf("config: unknown method %q", name)
		}
		out = append(out, m)
	}
	return lo.UniqBy(out, equalize.Method.Name), nil
}

func methodNames(methods []equalize.Method) []string {
	return lo.Map(methods, func(m equalize.Method, _ int) string {
		return m.Name()
	})
}
