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

	"github.com/ajroetker/go-equalize/image"
)

// HELUT builds the global histogram equalization table for h. The first
// occupied intensity maps to 0 and the cumulative count is stretched
// linearly to 255. A histogram with a single occupied intensity maps it to
// itself.
func HELUT(h *Histogram) LUT {
	var lut LUT
	lo, _, ok := h.Range()
	if !ok {
		return lut
	}
	total := h.Total()
	if h[lo] == total {
		lut[lo] = uint8(lo)
		return lut
	}

	scale := (Levels - 1) / (total - h[lo])
	var acc float64
	for i := lo + 1; i < Levels; i++ {
		acc += h[i]
		lut[i] = roundClamp(acc * scale)
	}
	return lut
}

// HE applies global histogram equalization to img.
func HE(img *image.Image) (*image.Image, error) {
	if err := validate(img); err != nil {
		return nil, fmt.Errorf("he: %w", err)
	}
	lut := HELUT(NewHistogram(img))
	return lut.Apply(img), nil
}
