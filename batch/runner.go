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
	"context"
	"fmt"
	"path/filepath"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/ajroetker/go-equalize/equalize"
	"github.com/ajroetker/go-equalize/internal/logging"
	"github.com/ajroetker/go-equalize/metrics"
	"github.com/ajroetker/go-equalize/workerpool"
)

// Mode selects what a Runner produces besides measurements.
type Mode int

const (
	// ModeSummary measures every image of the dataset.
	ModeSummary Mode = iota

	// ModeImages writes the original and processed images of the first
	// Limit images, with their statistics.
	ModeImages

	// ModeHistograms writes histogram plots of the first Limit images.
	ModeHistograms
)

func (m Mode) String() string {
	switch m {
	case ModeSummary:
		return "summary"
	case ModeImages:
		return "images"
	case ModeHistograms:
		return "histograms"
	default:
		return fmt.Sprintf("Mode(%d)", int(m))
	}
}

// Runner applies the configured methods to a dataset.
type Runner struct {
	Config *Config
	Log    *logrus.Logger
}

// NewRunner returns a Runner for cfg. A nil log discards messages.
func NewRunner(cfg *Config, log *logrus.Logger) *Runner {
	if log == nil {
		log = logging.Discard()
	}
	return &Runner{Config: cfg, Log: log}
}

// Run processes the dataset in the given mode. Per-image failures are
// recorded in the returned results and do not stop the run; the error is
// non-nil only when the run could not start or ctx was cancelled.
func (r *Runner) Run(ctx context.Context, mode Mode) (*Summary, []Result, error) {
	cfg := r.Config
	if err := cfg.Validate(); err != nil {
		return nil, nil, err
	}
	methods, err := cfg.methods()
	if err != nil {
		return nil, nil, err
	}
	paths, err := ScanDataset(cfg.Dataset)
	if err != nil {
		return nil, nil, err
	}
	if mode != ModeSummary && cfg.Limit > 0 && len(paths) > cfg.Limit {
		paths = paths[:cfg.Limit]
	}

	log := r.Log.WithFields(logrus.Fields{"mode": mode.String(), "dataset": cfg.Dataset})
	log.WithField("images", len(paths)).Info("starting batch")
	start := time.Now()

	pool := workerpool.New(cfg.Workers)
	defer pool.Close()

	results := make([]Result, len(paths))
	done := make([]bool, len(paths))
	runErr := pool.ForEach(ctx, len(paths), func(ctx context.Context, i int) {
		results[i] = r.process(ctx, mode, paths[i], methods)
		done[i] = true
		entry := log.WithField("image", filepath.Base(paths[i]))
		if err := results[i].Err; err != nil {
			entry.WithError(err).Warn("image failed")
			return
		}
		entry.Debug("image processed")
	})
	for i := range results {
		if !done[i] {
			results[i] = Result{Path: paths[i], Err: runErr}
		}
	}

	summary := NewSummary(methodNames(methods), results)
	log.WithFields(logrus.Fields{
		"processed": summary.Processed,
		"failed":    summary.Failed,
		"elapsed":   time.Since(start).Round(time.Millisecond),
	}).Info("batch finished")
	return summary, results, runErr
}

// process decodes one image, applies every method and measures the
// outputs against the original.
func (r *Runner) process(ctx context.Context, mode Mode, path string, methods []equalize.Method) Result {
	res := Result{Path: path}
	orig, err := Decode(path)
	if err != nil {
		res.Err = err
		return res
	}
	res.Width, res.Height = orig.Width(), orig.Height()

	set := make([]named, 0, len(methods)+1)
	set = append(set, named{label: "original", img: orig})
	for _, m := range methods {
		out, err := m.Transform(orig)
		if err != nil {
			res.Err = fmt.Errorf("%s: %w", m.Name(), err)
			return res
		}
		rep, err := metrics.Measure(orig, out)
		if err != nil {
			res.Err = fmt.Errorf("%s: %w", m.Name(), err)
			return res
		}
		res.Reports = append(res.Reports, MethodReport{Method: m.Name(), Report: rep})
		set = append(set, named{label: m.Name(), img: out})
	}

	base := baseName(path)
	switch mode {
	case ModeImages:
		res.Err = exportImages(ctx, filepath.Join(r.Config.OutputDir, base), base, set, &res)
	case ModeHistograms:
		res.Err = exportHistograms(ctx, filepath.Join(r.Config.HistogramDir, base), set)
	}
	return res
}
