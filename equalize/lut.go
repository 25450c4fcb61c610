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

// LUT maps each input intensity to an output intensity.
type LUT [Levels]uint8

// Identity returns the LUT that maps every intensity to itself.
func Identity() LUT {
	var l LUT
	for i := range l {
		l[i] = uint8(i)
	}
	return l
}

// Apply returns a new image with every pixel of img mapped through l.
func (l *LUT) Apply(img *image.Image) *image.Image {
	out := image.NewImage(img.Width(), img.Height())
	image.ApplyLUT(img, out, (*[Levels]uint8)(l))
	return out
}

// roundClamp rounds half to even and clamps to [0, 255].
func roundClamp(v float64) uint8 {
	return uint8(math.RoundToEven(clamp(v, 0, Levels-1)))
}
