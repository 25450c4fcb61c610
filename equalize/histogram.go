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

package equalize

import (
	"math"

	"github.com/ajroetker/go-equalize/image"
)

// Levels is the number of intensity levels of an 8-bit image.
const Levels = 256

// Histogram holds the pixel count at each intensity.
type Histogram [Levels]float64

// Cumulative is the running sum of a Histogram.
type Cumulative [Levels]float64

// NewHistogram counts the pixels of img.
func NewHistogram(img *image.Image) *Histogram {
	var h Histogram
	for i, c := range image.Counts(img) {
		h[i] = float64(c)
	}
	return &h
}

// Total returns the number of pixels counted.
func (h *Histogram) Total() float64 {
	var sum float64
	for _, c := range h {
		sum += c
	}
	return sum
}

// Cumulative returns the running sum of h.
func (h *Histogram) Cumulative() *Cumulative {
	var c Cumulative
	var sum float64
	for i, v := range h {
		sum += v
		c[i] = sum
	}
	return &c
}

// Range returns the smallest and largest intensity with a non-zero count.
// ok is false for an empty histogram.
func (h *Histogram) Range() (lo, hi int, ok bool) {
	lo, hi = -1, -1
	for i, c := range h {
		if c > 0 {
			if lo < 0 {
				lo = i
			}
			hi = i
		}
	}
	return lo, hi, lo >= 0
}

// MeanBrightness returns the mean intensity rounded half to even and
// clamped to [0, 255].
func (h *Histogram) MeanBrightness() int {
	n := h.Total()
	if n == 0 {
		return 0
	}
	var mean float64
	for i, c := range h {
		mean += float64(i) * (c / n)
	}
	return int(math.RoundToEven(clamp(mean, 0, Levels-1)))
}

// Segment returns the bins [lo, hi] with bounds clamped to the intensity
// domain. Bins are copied, so the segment may be clipped freely.
func (h *Histogram) Segment(lo, hi int) Segment {
	lo = max(lo, 0)
	hi = min(hi, Levels-1)
	s := Segment{Lo: lo, Hi: hi}
	if lo > hi {
		return s
	}
	s.Counts = make([]float64, hi-lo+1)
	copy(s.Counts, h[lo:hi+1])
	s.Mass = sum(s.Counts)
	s.Plateau = math.Inf(1)
	return s
}

// Search returns the first intensity whose cumulative count reaches
// target. If none does, it returns 0.
func (c *Cumulative) Search(target float64) int {
	for i, v := range c {
		if v >= target {
			return i
		}
	}
	return 0
}

// Quantile returns the first intensity whose cumulative count reaches the
// fraction p of the total.
func (c *Cumulative) Quantile(p float64) int {
	return c.Search(p * c[Levels-1])
}

func sum(s []float64) float64 {
	var total float64
	for _, v := range s {
		total += v
	}
	return total
}

func clamp(v, lo, hi float64) float64 {
	return math.Min(math.Max(v, lo), hi)
}
