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

import (
	"errors"
	stdimage "image"

	xdraw "golang.org/x/image/draw"
)

// ErrEmpty is returned when converting an image without pixels.
var ErrEmpty = errors.New("image: empty image")

// Fixed-point BT.601 luma weights with 14 fractional bits, the same
// integer coefficients used by common BGR-to-gray converters.
const (
	lumaShift = 14
	lumaR     = 4899
	lumaG     = 9617
	lumaB     = 1868
	lumaRound = 1 << (lumaShift - 1)
)

// Luma returns the BT.601 luma of an 8-bit RGB triple.
func Luma(r, g, b uint8) uint8 {
	return uint8((uint32(r)*lumaR + uint32(g)*lumaG + uint32(b)*lumaB + lumaRound) >> lumaShift)
}

// ToLuma converts a three-plane RGB image to a single luma plane.
// out must have the same size as img.
func ToLuma(img *Image3, out *Image) {
	if img == nil || out == nil || out.data == nil {
		return
	}
	r, g, b := img.planes[0], img.planes[1], img.planes[2]
	if r.data == nil || !SameSize(r, out) {
		return
	}

	width := r.width
	for y := 0; y < r.height; y++ {
		rRow := r.Row(y)
		gRow := g.Row(y)
		bRow := b.Row(y)
		outRow := out.Row(y)
		for x := 0; x < width; x++ {
			outRow[x] = Luma(rRow[x], gRow[x], bRow[x])
		}
	}
}

// FromGray copies a standard library gray image.
func FromGray(src *stdimage.Gray) (*Image, error) {
	b := src.Bounds()
	if b.Empty() {
		return nil, ErrEmpty
	}
	img := NewImage(b.Dx(), b.Dy())
	for y := 0; y < img.height; y++ {
		off := src.PixOffset(b.Min.X, b.Min.Y+y)
		copy(img.RowSlice(y), src.Pix[off:off+img.width])
	}
	return img, nil
}

// FromImage3 splits a standard library image into R, G, B planes.
// Alpha is ignored after compositing onto the RGBA buffer.
func FromImage3(src stdimage.Image) (*Image3, error) {
	b := src.Bounds()
	if b.Empty() {
		return nil, ErrEmpty
	}
	rgba, ok := src.(*stdimage.RGBA)
	if !ok || rgba.Bounds().Min != (stdimage.Point{}) {
		rgba = stdimage.NewRGBA(stdimage.Rect(0, 0, b.Dx(), b.Dy()))
		xdraw.Draw(rgba, rgba.Bounds(), src, b.Min, xdraw.Src)
	}

	out := NewImage3(b.Dx(), b.Dy())
	r, g, bl := out.planes[0], out.planes[1], out.planes[2]
	for y := 0; y < r.height; y++ {
		pix := rgba.Pix[y*rgba.Stride : y*rgba.Stride+4*r.width]
		rRow := r.Row(y)
		gRow := g.Row(y)
		bRow := bl.Row(y)
		for x := 0; x < r.width; x++ {
			rRow[x] = pix[4*x]
			gRow[x] = pix[4*x+1]
			bRow[x] = pix[4*x+2]
		}
	}
	return out, nil
}

// FromStd converts any standard library image to a single-channel Image.
// Gray sources are copied; everything else is reduced to luma.
func FromStd(src stdimage.Image) (*Image, error) {
	if src == nil {
		return nil, ErrEmpty
	}
	if g, ok := src.(*stdimage.Gray); ok {
		return FromGray(g)
	}
	planes, err := FromImage3(src)
	if err != nil {
		return nil, err
	}
	out := NewImage(planes.Width(), planes.Height())
	ToLuma(planes, out)
	return out, nil
}

// ToGray returns a copy of img as a standard library gray image.
func (img *Image) ToGray() *stdimage.Gray {
	g := stdimage.NewGray(stdimage.Rect(0, 0, img.width, img.height))
	for y := 0; y < img.height; y++ {
		copy(g.Pix[y*g.Stride:y*g.Stride+img.width], img.RowSlice(y))
	}
	return g
}
