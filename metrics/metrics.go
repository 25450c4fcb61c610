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

// Package metrics computes image quality measures used to compare an
// enhanced image with its original.
//
// All measures work on the 256-bin histogram except PSNR, which compares
// pixels pairwise.
package metrics

import (
	"errors"
	"fmt"
	"math"
	"slices"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/stat"

	"github.com/ajroetker/go-equalize/image"
)

const peak = 255.0

// MaxPSNR is the PSNR reported for identical images: the mean squared
// error is replaced by machine epsilon.
var MaxPSNR = 20 * math.Log10(peak/epsilon)

// epsilon is the difference between 1 and the next float64.
const epsilon = 2.220446049250313e-16

var (
	// ErrSizeMismatch is returned when a pairwise measure receives images
	// of different dimensions.
	ErrSizeMismatch = errors.New("metrics: image sizes differ")

	// ErrEmptyImage is returned for nil or empty images.
	ErrEmptyImage = errors.New("metrics: empty image")
)

// levels holds the intensity of each histogram bin.
var levels = func() []float64 {
	l := make([]float64, 256)
	floats.Span(l, 0, 255)
	return l
}()

// Report bundles every measure for one (original, processed) pair.
type Report struct {
	AMBE       float64
	PSNR       float64
	Entropy    float64
	Contrast   float64
	Uniformity float64
}

// Measure computes all measures. Entropy, Contrast and Uniformity describe
// the processed image.
func Measure(original, processed *image.Image) (Report, error) {
	if err := checkPair(original, processed); err != nil {
		return Report{}, err
	}
	ambe, _ := AMBE(original, processed)
	psnr, _ := PSNR(original, processed)
	return Report{
		AMBE:       ambe,
		PSNR:       psnr,
		Entropy:    Entropy(processed),
		Contrast:   Contrast(processed),
		Uniformity: Uniformity(processed),
	}, nil
}

// AMBE returns the absolute mean brightness error |mean(a) - mean(b)|.
func AMBE(a, b *image.Image) (float64, error) {
	if err := checkPair(a, b); err != nil {
		return 0, err
	}
	return math.Abs(Mean(a) - Mean(b)), nil
}

// PSNR returns the peak signal-to-noise ratio in decibels for 8-bit
// samples. Identical images give MaxPSNR.
func PSNR(a, b *image.Image) (float64, error) {
	if err := checkPair(a, b); err != nil {
		return 0, err
	}
	var sse float64
	for y := 0; y < a.Height(); y++ {
		ra, rb := a.RowSlice(y), b.RowSlice(y)
		for x, v := range ra {
			d := float64(v) - float64(rb[x])
			sse += d * d
		}
	}
	rms := math.Sqrt(sse / float64(a.Len()))
	return 20 * math.Log10(peak/(rms+epsilon)), nil
}

// Entropy returns the Shannon entropy of the normalized histogram in bits.
func Entropy(img *image.Image) float64 {
	p := weights(img)
	total := floats.Sum(p)
	if total == 0 {
		return 0
	}
	floats.Scale(1/total, p)
	return stat.Entropy(p) / math.Ln2
}

// Mean returns the mean intensity.
func Mean(img *image.Image) float64 {
	w := weights(img)
	if floats.Sum(w) == 0 {
		return 0
	}
	return stat.Mean(levels, w)
}

// Contrast returns the population standard deviation of the intensities.
func Contrast(img *image.Image) float64 {
	w := weights(img)
	if floats.Sum(w) == 0 {
		return 0
	}
	_, std := stat.PopMeanStdDev(levels, w)
	return std
}

// Uniformity returns 1/(1+CV), where CV is the coefficient of variation
// std/mean. A zero mean gives 1.
func Uniformity(img *image.Image) float64 {
	w := weights(img)
	if floats.Sum(w) == 0 {
		return 1
	}
	mean, std := stat.PopMeanStdDev(levels, w)
	if mean == 0 {
		return 1
	}
	return 1 / (1 + std/mean)
}

// Median returns the middle value of x, averaging the two middle values
// for even lengths. It returns 0 for an empty slice and does not modify x.
func Median(x []float64) float64 {
	n := len(x)
	if n == 0 {
		return 0
	}
	sorted := slices.Clone(x)
	slices.Sort(sorted)
	if n%2 == 1 {
		return sorted[n/2]
	}
	return (sorted[n/2-1] + sorted[n/2]) / 2
}

func weights(img *image.Image) []float64 {
	w := make([]float64, 256)
	for i, c := range image.Counts(img) {
		w[i] = float64(c)
	}
	return w
}

func checkPair(a, b *image.Image) error {
	if a == nil || b == nil || a.Empty() || b.Empty() {
		return ErrEmptyImage
	}
	if !image.SameSize(a, b) {
		return fmt.Errorf("%w: %dx%d vs %dx%d", ErrSizeMismatch, a.Width(), a.Height(), b.Width(), b.Height())
	}
	return nil
}
