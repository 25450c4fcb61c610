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

	"github.com/ajroetker/go-equalize/image"
)

// minMass is the clipped mass below which a BHEPL-D segment is treated as
// empty.
const minMass = 1e-10

// EmptyFill selects what BHEPL-D writes for a segment with no clipped mass.
type EmptyFill int

const (
	// EmptyZero leaves the segment's table entries at zero.
	EmptyZero EmptyFill = iota

	// EmptyConstant fills the segment with the start of its output range,
	// the same fallback DQHEPL uses.
	EmptyConstant
)

// String returns the name of the fill mode.
func (f EmptyFill) String() string {
	switch f {
	case EmptyZero:
		return "zero"
	case EmptyConstant:
		return "constant"
	default:
		return "unknown"
	}
}

type bheplOptions struct {
	empty EmptyFill
}

// Option configures BHEPLD.
type Option func(*bheplOptions)

// WithEmptySegmentFill selects the fallback for segments whose clipped mass
// is zero. The default is EmptyZero.
func WithEmptySegmentFill(f EmptyFill) Option {
	return func(o *bheplOptions) {
		o.empty = f
	}
}

// BHEPLDLUT builds the BHEPL-D lookup table for h. It also returns the
// clipped lower [0,m] and upper [m+1,255] segments, where m is the mean
// brightness. The upper segment is empty when m is 255.
//
// A histogram with a single occupied intensity yields a table mapping that
// intensity to itself.
func BHEPLDLUT(h *Histogram, opts ...Option) (LUT, [2]Segment) {
	var o bheplOptions
	for _, opt := range opts {
		opt(&o)
	}

	var lut LUT
	m := h.MeanBrightness()
	segs := [2]Segment{
		h.Segment(0, m),
		h.Segment(m+1, Levels-1),
	}
	ranges := [2]Range{
		{0, m},
		{m + 1, Levels - 1},
	}
	for i := range segs {
		seg := &segs[i]
		if seg.Empty() {
			continue
		}
		seg.Clip(seg.MedianPlateau())
		if seg.Mass <= minMass {
			if o.empty == EmptyConstant {
				seg.Fill(&lut, uint8(ranges[i].Lo))
			}
			continue
		}
		seg.Map(&lut, ranges[i])
	}

	if lo, hi, ok := h.Range(); ok && lo == hi {
		lut[lo] = uint8(lo)
	}
	return lut, segs
}

// BHEPLD applies bi-histogram equalization with median plateau limits to
// img and returns the enhanced image.
func BHEPLD(img *image.Image, opts ...Option) (*image.Image, error) {
	if err := validate(img); err != nil {
		return nil, fmt.Errorf("bhepl-d: %w", err)
	}
	lut, _ := BHEPLDLUT(NewHistogram(img), opts...)
	return lut.Apply(img), nil
}

// BHEPLDStd applies BHEPL-D to a single-channel source. Any other color
// model is rejected with ErrChannels.
func BHEPLDStd(src stdimage.Image, opts ...Option) (*image.Image, error) {
	if src == nil {
		return nil, fmt.Errorf("bhepl-d: %w", ErrNilImage)
	}
	gray, ok := src.(*stdimage.Gray)
	if !ok {
		return nil, fmt.Errorf("bhepl-d: %w: got %T", ErrChannels, src)
	}
	img, err := image.FromGray(gray)
	if err != nil {
		return nil, fmt.Errorf("bhepl-d: %w: %w", ErrEmptyImage, err)
	}
	return BHEPLD(img, opts...)
}
