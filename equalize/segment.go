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

	"github.com/ajroetker/go-equalize/metrics"
)

// Segment is a contiguous closed intensity interval [Lo, Hi] of a
// histogram, together with its (possibly clipped) counts.
//
// A segment with Lo > Hi is empty and has no counts.
type Segment struct {
	Lo, Hi int

	// Counts holds the bin counts for Lo..Hi.
	Counts []float64

	// Plateau is the ceiling applied by Clip, +Inf before clipping.
	Plateau float64

	// Mass is the sum of Counts.
	Mass float64
}

// Range is a closed output intensity interval.
type Range struct {
	Lo, Hi int
}

// Empty reports whether the segment covers no intensities.
func (s *Segment) Empty() bool {
	return s.Lo > s.Hi
}

// MeanPlateau returns the segment mass divided by its width Hi-Lo,
// with the width floored at one.
func (s *Segment) MeanPlateau() float64 {
	return s.Mass / float64(max(1, s.Hi-s.Lo))
}

// MedianPlateau returns the median bin count of the segment.
// An empty segment has plateau 0.
func (s *Segment) MedianPlateau() float64 {
	return metrics.Median(s.Counts)
}

// Clip limits every bin to plateau and recomputes the mass.
func (s *Segment) Clip(plateau float64) {
	for i, c := range s.Counts {
		s.Counts[i] = math.Min(c, plateau)
	}
	s.Plateau = plateau
	s.Mass = sum(s.Counts)
}

// Map writes lut[Lo..Hi] so that each intensity lands in r in proportion
// to the clipped mass at or below it. The segment must have positive mass.
func (s *Segment) Map(lut *LUT, r Range) {
	span := float64(r.Hi - r.Lo)
	var acc float64
	for k, c := range s.Counts {
		acc += c
		lut[s.Lo+k] = roundClamp(float64(r.Lo) + span*(acc/s.Mass))
	}
}

// Fill writes v to lut[Lo..Hi].
func (s *Segment) Fill(lut *LUT, v uint8) {
	for i := s.Lo; i <= s.Hi; i++ {
		lut[i] = v
	}
}
