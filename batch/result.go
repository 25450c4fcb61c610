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
	"slices"

	"gonum.org/v1/gonum/stat"

	"github.com/ajroetker/go-equalize/metrics"
)

// Result is the outcome of processing one image: either the measurements
// of every method or the error that stopped it.
type Result struct {
	Path          string
	Width, Height int

	// Reports holds one report per method, in method order.
	Reports []MethodReport

	Err error
}

// MethodReport pairs a method name with its measurements.
type MethodReport struct {
	Method string
	metrics.Report
}

// Ok reports whether the image was processed successfully.
func (r *Result) Ok() bool {
	return r.Err == nil
}

// MethodSeries holds one value per successfully processed image for each
// measure of a method.
type MethodSeries struct {
	AMBE       []float64
	PSNR       []float64
	Entropy    []float64
	Contrast   []float64
	Uniformity []float64
}

func (s *MethodSeries) add(r metrics.Report) {
	s.AMBE = append(s.AMBE, r.AMBE)
	s.PSNR = append(s.PSNR, r.PSNR)
	s.Entropy = append(s.Entropy, r.Entropy)
	s.Contrast = append(s.Contrast, r.Contrast)
	s.Uniformity = append(s.Uniformity, r.Uniformity)
}

// Stat is the mean and median of a series.
type Stat struct {
	Mean, Median float64
}

// MethodStats aggregates a MethodSeries.
type MethodStats struct {
	Method     string
	Count      int
	AMBE       Stat
	PSNR       Stat
	Entropy    Stat
	Contrast   Stat
	Uniformity Stat
}

// Summary collects the measurements of a batch, per method.
type Summary struct {
	// Methods lists method names in report order.
	Methods []string

	// Series is keyed by method name.
	Series map[string]*MethodSeries

	// Processed and Failed count images.
	Processed, Failed int
}

// NewSummary collects results in order. Failed results are counted and
// otherwise skipped.
func NewSummary(methods []string, results []Result) *Summary {
	s := &Summary{
		Methods: slices.Clone(methods),
		Series:  make(map[string]*MethodSeries, len(methods)),
	}
	for _, m := range methods {
		s.Series[m] = &MethodSeries{}
	}
	for i := range results {
		r := &results[i]
		if !r.Ok() {
			s.Failed++
			continue
		}
		s.Processed++
		for _, rep := range r.Reports {
			if series, ok := s.Series[rep.Method]; ok {
				series.add(rep.Report)
			}
		}
	}
	return s
}

// Aggregate returns the statistics of every method, in method order.
func (s *Summary) Aggregate() []MethodStats {
	out := make([]MethodStats, 0, len(s.Methods))
	for _, m := range s.Methods {
		series := s.Series[m]
		out = append(out, MethodStats{
			Method:     m,
			Count:      len(series.AMBE),
			AMBE:       aggregate(series.AMBE),
			PSNR:       aggregate(series.PSNR),
			Entropy:    aggregate(series.Entropy),
			Contrast:   aggregate(series.Contrast),
			Uniformity: aggregate(series.Uniformity),
		})
	}
	return out
}

func aggregate(x []float64) Stat {
	if len(x) == 0 {
		return Stat{}
	}
	return Stat{Mean: stat.Mean(x, nil), Median: metrics.Median(x)}
}
