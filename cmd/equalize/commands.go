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

package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/ajroetker/go-equalize/batch"
	"github.com/ajroetker/go-equalize/dispatch"
	"github.com/ajroetker/go-equalize/internal/logging"
)

// options holds the persistent flags shared by every subcommand.
type options struct {
	config     string
	dataset    string
	output     string
	histograms string
	workers    int
	limit      int
	methods    []string
	logLevel   string
	logFile    string
}

func (o *options) register(cmd *cobra.Command) {
	f := cmd.PersistentFlags()
	f.StringVar(&o.config, "config", "", "YAML configuration file")
	f.StringVar(&o.dataset, "dataset", "", "directory of input images")
	f.StringVar(&o.output, "output", "", "directory for processed images")
	f.StringVar(&o.histograms, "histograms-dir", "", "directory for histogram plots")
	f.IntVar(&o.workers, "workers", 0, "images processed at once (0 uses all CPUs)")
	f.IntVar(&o.limit, "limit", 0, "images exported by the images and histograms commands (0 exports all)")
	f.StringSliceVar(&o.methods, "methods", nil, "comma-separated methods to apply")
	f.StringVar(&o.logLevel, "log-level", "", "log level (debug, info, warn, error)")
	f.StringVar(&o.logFile, "log-file", "", "also log to this rotated file")
}

// load reads the configuration file, if any, and applies the flags that
// were set on cmd.
func (o *options) load(cmd *cobra.Command) (*batch.Config, error) {
	cfg := batch.DefaultConfig()
	if o.config != "" {
		c, err := batch.LoadConfig(o.config)
		if err != nil {
			return nil, err
		}
		cfg = c
	}

	flags := cmd.Flags()
	if flags.Changed("dataset") {
		cfg.Dataset = o.dataset
	}
	if flags.Changed("output") {
		cfg.OutputDir = o.output
	}
	if flags.Changed("histograms-dir") {
		cfg.HistogramDir = o.histograms
	}
	if flags.Changed("workers") {
		cfg.Workers = o.workers
	}
	if flags.Changed("limit") {
		cfg.Limit = o.limit
	}
	if flags.Changed("methods") {
		cfg.Methods = o.methods
	}
	if flags.Changed("log-level") {
		cfg.Log.Level = o.logLevel
	}
	if flags.Changed("log-file") {
		cfg.Log.File = o.logFile
	}
	return cfg, cfg.Validate()
}

var modes = map[string]batch.Mode{
	"summary":    batch.ModeSummary,
	"images":     batch.ModeImages,
	"histograms": batch.ModeHistograms,
}

func newRunCmd(opts *options, name, short string) *cobra.Command {
	mode := modes[name]
	return &cobra.Command{
		Use:   name,
		Short: short,
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := opts.load(cmd)
			if err != nil {
				return err
			}
			log, closer, err := logging.New(cfg.Log.Options())
			if err != nil {
				return err
			}
			defer closer.Close()

			summary, _, err := batch.NewRunner(cfg, log).Run(cmd.Context(), mode)
			if err != nil {
				return err
			}
			if mode == batch.ModeSummary {
				return batch.WriteSummary(cmd.OutOrStdout(), summary)
			}
			dir := cfg.OutputDir
			if mode == batch.ModeHistograms {
				dir = cfg.HistogramDir
			}
			_, err = fmt.Fprintf(cmd.OutOrStdout(), "%d images written to %s (%d failed)\n",
				summary.Processed, dir, summary.Failed)
			return err
		},
	}
}

func newInfoCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "info",
		Short: "Print the detected SIMD level",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			level := dispatch.Current()
			_, err := fmt.Fprintf(cmd.OutOrStdout(), "SIMD level: %s\nVector width: %d bytes\n", level, level.Width())
			return err
		},
	}
}
