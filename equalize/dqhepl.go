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
	"fmt"
	stdimage "image"
	"math"

	"github.com/ajroetker/go-equalize/image"
)

// Quartiles holds the quartile boundaries and intensity extent of a
// histogram, as used by DQHEPL.
type Quartiles struct {
	Min, Q1, Q2, Q3, Max int
}

// NewQuartiles locates the first intensities whose cumulative count reaches
// 25%, 50% and 75% of the pixels. ok is false for an empty histogram.
func NewQuartiles(h *Histogram) (q Quartiles, ok bool) {
	q.Min, q.Max, ok = h.Range()
	if !ok {
		return q, false
	}
	cdf := h.Cumulative()
	q.Q1 = cdf.Quantile(0.25)
	q.Q2 = cdf.Quantile(0.50)
	q.Q3 = cdf.Quantile(0.75)
	return q, true
}

// Segments returns the four input segments (Min,Q1) (Q1+1,Q2) (Q2+1,Q3)
// (Q3+1,Max). A pair whose start exceeds its end is swapped, so segments
// may overlap where quartiles coincide.
func (q Quartiles) Segments(h *Histogram) [4]Segment {
	bounds := [4][2]int{
		{q.Min, q.Q1},
		{q.Q1 + 1, q.Q2},
		{q.Q2 + 1, q.Q3},
		{q.Q3 + 1, q.Max},
	}
	var segs [4]Segment
	for i, b := range bounds {
		lo, hi := b[0], b[1]
		if lo > hi {
			lo, hi = hi, lo
		}
		segs[i] = h.Segment(lo, hi)
	}
	return segs
}

// Ranges returns the four output ranges [0,n1] [n1,n2] [n2,n3] [n3,255].
// n2 is the median Q2; n1 and n3 scale each side of it by the source
// quartile spans.
func (q Quartiles) Ranges() [4]Range {
	n1 := 0.0
	if q.Q2 != q.Min {
		n1 = float64(q.Q2*(q.Q1-q.Min)) / float64(q.Q2-q.Min)
	}
	n2 := int(clamp(float64(q.Q2), 0, Levels-1))
	n3 := float64(q.Q2)
	if q.Max != q.Q2 {
		n3 = float64((Levels-1-q.Q2)*(q.Q3-q.Q2))/float64(q.Max-q.Q2) + float64(q.Q2)
	}

	b1 := int(math.RoundToEven(clamp(n1, 0, Levels-1)))
	b3 := int(math.RoundToEven(clamp(n3, 0, Levels-1)))
	return [4]Range{
		{0, b1},
		{b1, n2},
		{n2, b3},
		{b3, Levels - 1},
	}
}

// DQHEPLLUT builds the DQHEPL lookup table for h. It also returns the
// clipped input segments, in order.
//
// A histogram with a single occupied intensity yields one segment and a
// table mapping that intensity to itself.
func DQHEPLLUT(h *Histogram) (LUT, []Segment) {
	var lut LUT
	q, ok := NewQuartiles(h)
	if !ok {
		return lut, nil
	}
	if q.Min == q.Max {
		seg := h.Segment(q.Min, q.Max)
		seg.Clip(seg.MeanPlateau())
		lut[q.Min] = uint8(q.Min)
		return lut, []Segment{seg}
	}

	segs := q.Segments(h)
	ranges := q.Ranges()
	for i := range segs {
		seg := &segs[i]
		seg.Clip(seg.MeanPlateau())
		if seg.Mass == 0 {
			seg.Fill(&lut, uint8(ranges[i].Lo))
			continue
		}
		seg.Map(&lut, ranges[i])
	}
	return lut, segs[:]
}

// DQHEPL applies dynamic quadrant histogram equalization with plateau
// limits to img and returns the enhanced image.
func DQHEPL(img *image.Image) (*image.Image, error) {
	if err := validate(img); err != nil {
		return nil, fmt.Errorf("dqhepl: %w", err)
	}
	lut, _ := DQHEPLLUT(NewHistogram(img))
	return lut.Apply(img), nil
}

// DQHEPLStd converts src to luma when it has more than one channel and
// applies DQHEPL.
func DQHEPLStd(src stdimage.Image) (*image.Image, error) {
	if src == nil {
		return nil, fmt.Errorf("dqhepl: %w", ErrNilImage)
	}
	img, err := image.FromStd(src)
	if err != nil {
		return nil, fmt.Errorf("dqhepl: %w: %w", ErrEmptyImage, err)
	}
	return DQHEPL(img)
}
