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
	"errors"
	"fmt"
	"math"

	"github.com/ajroetker/go-equalize/image"
)

// Default CLAHE parameters.
const (
	DefaultClipLimit = 2.0
	DefaultTiles     = 8
)

type claheOptions struct {
	clipLimit      float64
	tilesX, tilesY int
}

// CLAHEOption configures CLAHE.
type CLAHEOption func(*claheOptions)

// WithClipLimit sets the contrast limit relative to a uniform tile
// histogram. A limit <= 0 disables clipping.
func WithClipLimit(limit float64) CLAHEOption {
	return func(o *claheOptions) {
		o.clipLimit = limit
	}
}

// WithTileGrid sets the number of tiles along each axis.
func WithTileGrid(x, y int) CLAHEOption {
	return func(o *claheOptions) {
		o.tilesX, o.tilesY = x, y
	}
}

// clahe holds the per-tile tables of one CLAHE invocation.
type clahe struct {
	tilesX, tilesY int
	tileW, tileH   int
	luts           []LUT // row-major, tilesX*tilesY
}

// CLAHE applies contrast limited adaptive histogram equalization.
//
// The image is divided into a grid of tiles (8x8 by default). When the
// image size is not a multiple of the grid, it is extended to the right
// and bottom by reflection about the edge pixel. Each tile histogram is
// clipped, the excess is spread evenly over all bins, and the per-tile
// tables are interpolated bilinearly between tile centres.
func CLAHE(img *image.Image, opts ...CLAHEOption) (*image.Image, error) {
	o := claheOptions{clipLimit: DefaultClipLimit, tilesX: DefaultTiles, tilesY: DefaultTiles}
	for _, opt := range opts {
		opt(&o)
	}
	if err := validate(img); err != nil {
		return nil, fmt.Errorf("clahe: %w", err)
	}
	if o.tilesX <= 0 || o.tilesY <= 0 {
		return nil, fmt.Errorf("clahe: %w", errors.New("tile grid must be positive"))
	}

	c := newCLAHE(img, o)
	return c.interpolate(img), nil
}

func newCLAHE(img *image.Image, o claheOptions) *clahe {
	w, h := img.Width(), img.Height()
	extW, extH := w, h
	if w%o.tilesX != 0 || h%o.tilesY != 0 {
		extW += o.tilesX - w%o.tilesX
		extH += o.tilesY - h%o.tilesY
	}

	c := &clahe{
		tilesX: o.tilesX,
		tilesY: o.tilesY,
		tileW:  extW / o.tilesX,
		tileH:  extH / o.tilesY,
		luts:   make([]LUT, o.tilesX*o.tilesY),
	}

	area := c.tileW * c.tileH
	clipLimit := 0
	if o.clipLimit > 0 {
		clipLimit = max(int(o.clipLimit*float64(area)/Levels), 1)
	}
	scale := float64(Levels-1) / float64(area)

	for ty := 0; ty < c.tilesY; ty++ {
		for tx := 0; tx < c.tilesX; tx++ {
			tile := image.Rect{
				X0: tx * c.tileW, Y0: ty * c.tileH,
				X1: (tx + 1) * c.tileW, Y1: (ty + 1) * c.tileH,
			}
			hist := tileHistogram(img, tile)
			if clipLimit > 0 {
				clipTile(&hist, clipLimit)
			}

			lut := &c.luts[ty*c.tilesX+tx]
			acc := 0
			for i, v := range hist {
				acc += v
				lut[i] = roundClamp(float64(acc) * scale)
			}
		}
	}
	return c
}

// tileHistogram counts the pixels of tile, which may extend past the image
// bounds; such pixels are read by reflection.
func tileHistogram(img *image.Image, tile image.Rect) [Levels]int {
	var hist [Levels]int
	inside := tile.Intersect(img.Bounds())
	if inside == tile {
		for y := tile.Y0; y < tile.Y1; y++ {
			for _, v := range img.RowSlice(y)[tile.X0:tile.X1] {
				hist[v]++
			}
		}
		return hist
	}

	w, h := img.Width(), img.Height()
	for y := tile.Y0; y < tile.Y1; y++ {
		row := img.RowSlice(image.Reflect101(y, h))
		for x := tile.X0; x < tile.X1; x++ {
			hist[row[image.Reflect101(x, w)]]++
		}
	}
	return hist
}

// clipTile clips every bin to limit and redistributes the excess: an equal
// share to every bin, then the remainder one count at a time at a fixed
// step starting from bin 0.
func clipTile(hist *[Levels]int, limit int) {
	clipped := 0
	for i, v := range hist {
		if v > limit {
			clipped += v - limit
			hist[i] = limit
		}
	}

	batch := clipped / Levels
	residual := clipped - batch*Levels
	for i := range hist {
		hist[i] += batch
	}
	if residual != 0 {
		step := max(Levels/residual, 1)
		for i := 0; i < Levels && residual > 0; i, residual = i+step, residual-1 {
			hist[i]++
		}
	}
}

// interpolate maps every pixel through the four nearest tile tables,
// weighted by distance to the tile centres.
func (c *clahe) interpolate(img *image.Image) *image.Image {
	w, h := img.Width(), img.Height()
	out := image.NewImage(w, h)

	invTW := 1.0 / float64(c.tileW)
	invTH := 1.0 / float64(c.tileH)

	// Horizontal tile indices and weights depend only on x.
	tx1 := make([]int, w)
	tx2 := make([]int, w)
	xa := make([]float64, w)
	for x := 0; x < w; x++ {
		txf := float64(x)*invTW - 0.5
		t := int(math.Floor(txf))
		xa[x] = txf - float64(t)
		tx1[x] = image.Clamp(t, c.tilesX)
		tx2[x] = image.Clamp(t+1, c.tilesX)
	}

	for y := 0; y < h; y++ {
		tyf := float64(y)*invTH - 0.5
		t := int(math.Floor(tyf))
		ya := tyf - float64(t)
		ya1 := 1 - ya
		top := c.luts[image.Clamp(t, c.tilesY)*c.tilesX:]
		bottom := c.luts[image.Clamp(t+1, c.tilesY)*c.tilesX:]

		inRow := img.RowSlice(y)
		outRow := out.RowSlice(y)
		for x, v := range inRow {
			xa1 := 1 - xa[x]
			res := (float64(top[tx1[x]][v])*xa1+float64(top[tx2[x]][v])*xa[x])*ya1 +
				(float64(bottom[tx1[x]][v])*xa1+float64(bottom[tx2[x]][v])*xa[x])*ya
			outRow[x] = roundClamp(res)
		}
	}
	return out
}
