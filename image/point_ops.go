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

package image

// ApplyLUT maps every pixel through a 256-entry lookup table:
// out = lut[img]. img and out may be the same image.
func ApplyLUT(img, out *Image, lut *[256]uint8) {
	if img == nil || out == nil || lut == nil || img.data == nil || out.data == nil {
		return
	}
	if !SameSize(img, out) {
		return
	}

	for y := 0; y < img.height; y++ {
		inRow := img.Row(y)
		outRow := out.Row(y)
		width := img.width
		i := 0

		// Unrolled by four; the tail is handled below.
		for ; i+4 <= width; i += 4 {
			outRow[i] = lut[inRow[i]]
			outRow[i+1] = lut[inRow[i+1]]
			outRow[i+2] = lut[inRow[i+2]]
			outRow[i+3] = lut[inRow[i+3]]
		}
		for ; i < width; i++ {
			outRow[i] = lut[inRow[i]]
		}
	}
}

// Counts returns the number of pixels at each intensity.
func Counts(img *Image) [256]int {
	var counts [256]int
	if img == nil || img.data == nil {
		return counts
	}
	for y := 0; y < img.height; y++ {
		for _, v := range img.RowSlice(y) {
			counts[v]++
		}
	}
	return counts
}

// MinMax returns the smallest and largest sample values.
// An empty image returns (0, 0).
func MinMax(img *Image) (lo, hi uint8) {
	if img == nil || img.data == nil {
		return 0, 0
	}
	lo, hi = 255, 0
	for y := 0; y < img.height; y++ {
		for _, v := range img.RowSlice(y) {
			lo = min(lo, v)
			hi = max(hi, v)
		}
	}
	return lo, hi
}
