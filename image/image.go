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

import "github.com/ajroetker/go-equalize/dispatch"

// Image is a single-channel 8-bit 2D array with vector-aligned rows.
// Each row is padded to a multiple of the vector width, so row loops can
// process whole chunks without bounds checks on the tail.
type Image struct {
	data   []uint8
	width  int
	height int
	stride int // elements per row (includes padding)
}

// NewImage creates a new zeroed image with the specified dimensions.
// Non-positive dimensions yield an empty image.
func NewImage(width, height int) *Image {
	if width <= 0 || height <= 0 {
		return &Image{}
	}

	lanes := dispatch.Width()
	stride := ((width + lanes - 1) / lanes) * lanes

	return &Image{
		data:   make([]uint8, stride*height),
		width:  width,
		height: height,
		stride: stride,
	}
}

// FromPixels creates an image from row-major samples without padding.
// It panics if len(pix) != width*height.
func FromPixels(width, height int, pix []uint8) *Image {
	if len(pix) != width*height {
		panic("image: pixel count does not match dimensions")
	}
	img := NewImage(width, height)
	for y := 0; y < img.height; y++ {
		copy(img.RowSlice(y), pix[y*width:(y+1)*width])
	}
	return img
}

// Width returns the image width in pixels.
func (img *Image) Width() int {
	return img.width
}

// Height returns the image height in pixels.
func (img *Image) Height() int {
	return img.height
}

// Stride returns the number of elements per row (including padding).
func (img *Image) Stride() int {
	return img.stride
}

// Len returns the number of pixels, width*height.
func (img *Image) Len() int {
	return img.width * img.height
}

// Empty reports whether the image has no pixels.
func (img *Image) Empty() bool {
	return img.data == nil || img.width <= 0 || img.height <= 0
}

// Row returns a mutable slice for the specified row.
// The slice includes padding elements beyond the image width.
// These can be safely read/written but are not part of the image.
func (img *Image) Row(y int) []uint8 {
	if y < 0 || y >= img.height || img.data == nil {
		return nil
	}
	start := y * img.stride
	return img.data[start : start+img.stride]
}

// RowSlice returns a mutable slice for the specified row,
// limited to the actual image width (excluding padding).
func (img *Image) RowSlice(y int) []uint8 {
	if y < 0 || y >= img.height || img.data == nil {
		return nil
	}
	start := y * img.stride
	return img.data[start : start+img.width]
}

// At returns the value at position (x, y), or 0 outside the image.
func (img *Image) At(x, y int) uint8 {
	if x < 0 || x >= img.width || y < 0 || y >= img.height || img.data == nil {
		return 0
	}
	return img.data[y*img.stride+x]
}

// Set sets the value at position (x, y). Out-of-range writes are ignored.
func (img *Image) Set(x, y int, value uint8) {
	if x < 0 || x >= img.width || y < 0 || y >= img.height || img.data == nil {
		return
	}
	img.data[y*img.stride+x] = value
}

// Pixels returns a row-major copy of the samples without padding.
func (img *Image) Pixels() []uint8 {
	out := make([]uint8, 0, img.Len())
	for y := 0; y < img.height; y++ {
		out = append(out, img.RowSlice(y)...)
	}
	return out
}

// SameSize returns true if both images have the same dimensions.
func SameSize(a, b *Image) bool {
	return a.width == b.width && a.height == b.height
}

// Clone creates a deep copy of the image.
func (img *Image) Clone() *Image {
	if img.data == nil {
		return NewImage(0, 0)
	}

	clone := &Image{
		data:   make([]uint8, len(img.data)),
		width:  img.width,
		height: img.height,
		stride: img.stride,
	}
	copy(clone.data, img.data)
	return clone
}

// Fill sets all pixels to the specified value.
func (img *Image) Fill(value uint8) {
	for i := range img.data {
		img.data[i] = value
	}
}

// Rect defines a rectangular region within an image.
type Rect struct {
	X0, Y0 int // Top-left corner (inclusive)
	X1, Y1 int // Bottom-right corner (exclusive)
}

// Width returns the rectangle width.
func (r Rect) Width() int {
	return r.X1 - r.X0
}

// Height returns the rectangle height.
func (r Rect) Height() int {
	return r.Y1 - r.Y0
}

// Area returns the number of pixels covered by r.
func (r Rect) Area() int {
	if r.IsEmpty() {
		return 0
	}
	return r.Width() * r.Height()
}

// IsEmpty returns true if the rectangle has zero or negative area.
func (r Rect) IsEmpty() bool {
	return r.X1 <= r.X0 || r.Y1 <= r.Y0
}

// Intersect returns the intersection of two rectangles.
func (r Rect) Intersect(other Rect) Rect {
	x0 := max(r.X0, other.X0)
	y0 := max(r.Y0, other.Y0)
	x1 := min(r.X1, other.X1)
	y1 := min(r.Y1, other.Y1)
	return Rect{X0: x0, Y0: y0, X1: x1, Y1: y1}
}

// Bounds returns the bounding rectangle of the image.
func (img *Image) Bounds() Rect {
	return Rect{X0: 0, Y0: 0, X1: img.width, Y1: img.height}
}

// Image3 bundles three same-sized Image instances, in R, G, B order.
type Image3 struct {
	planes [3]*Image
}

// NewImage3 creates a new 3-plane image with the specified dimensions.
func NewImage3(width, height int) *Image3 {
	return &Image3{
		planes: [3]*Image{
			NewImage(width, height),
			NewImage(width, height),
			NewImage(width, height),
		},
	}
}

// Plane returns the specified plane (0, 1, or 2).
func (img *Image3) Plane(i int) *Image {
	if i < 0 || i > 2 {
		return nil
	}
	return img.planes[i]
}

// Width returns the image width (all planes have the same size).
func (img *Image3) Width() int {
	return img.planes[0].Width()
}

// Height returns the image height.
func (img *Image3) Height() int {
	return img.planes[0].Height()
}

// Reflect101 returns the reflected index for out-of-bounds coordinates,
// reflecting about the edge pixel without repeating it (gfedcb|abcdefgh|gfedcba).
func Reflect101(index, size int) int {
	if size <= 1 {
		return 0
	}
	period := 2*size - 2
	if index < 0 {
		index = -index
	}
	index %= period
	if index >= size {
		index = period - index
	}
	return index
}

// Clamp returns index clamped to [0, size-1].
func Clamp(index, size int) int {
	if index < 0 {
		return 0
	}
	if index >= size {
		return size - 1
	}
	return index
}
