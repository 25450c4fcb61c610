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

package batch

import (
	"fmt"
	stdimage "image"
	"image/color"

	xdraw "golang.org/x/image/draw"
	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/math/fixed"

	"github.com/ajroetker/go-equalize/image"
)

// Histogram plot geometry, in pixels. Each bin is binWidth wide.
const (
	plotMargin   = 40
	binWidth     = 2
	plotAreaW    = 256 * binWidth
	plotAreaH    = 240
	plotWidth    = plotAreaW + 2*plotMargin
	plotHeight   = plotAreaH + 2*plotMargin
	tickInterval = 64
)

var (
	barColor  = stdimage.NewUniform(color.Gray{Y: 0x80})
	axisColor = stdimage.NewUniform(color.Black)
)

// RenderHistogram draws the 256-bin histogram of img as a bar chart, with
// bar heights scaled to the tallest bin.
func RenderHistogram(img *image.Image, title string) *stdimage.RGBA {
	canvas := stdimage.NewRGBA(stdimage.Rect(0, 0, plotWidth, plotHeight))
	xdraw.Draw(canvas, canvas.Bounds(), stdimage.White, stdimage.Point{}, xdraw.Src)

	counts := image.Counts(img)
	peak := 1
	for _, c := range counts {
		peak = max(peak, c)
	}

	x0, y1 := plotMargin, plotMargin+plotAreaH
	for i, c := range counts {
		h := c * plotAreaH / peak
		if h == 0 {
			continue
		}
		bar := stdimage.Rect(x0+i*binWidth, y1-h, x0+(i+1)*binWidth, y1)
		xdraw.Draw(canvas, bar, barColor, stdimage.Point{}, xdraw.Src)
	}

	// Axes
	xdraw.Draw(canvas, stdimage.Rect(x0-1, plotMargin, x0, y1+1), axisColor, stdimage.Point{}, xdraw.Src)
	xdraw.Draw(canvas, stdimage.Rect(x0-1, y1, x0+plotAreaW, y1+1), axisColor, stdimage.Point{}, xdraw.Src)

	for v := 0; v < 256; v += tickInterval {
		drawLabel(canvas, x0+v*binWidth, y1+15, fmt.Sprint(v), true)
	}
	drawLabel(canvas, x0+255*binWidth, y1+15, "255", true)
	drawLabel(canvas, plotWidth/2, y1+32, "Intensity", true)
	drawLabel(canvas, 4, plotMargin-6, fmt.Sprintf("Frequency (max %d)", peak), false)
	drawLabel(canvas, plotWidth/2, 18, title, true)
	return canvas
}

// drawLabel writes s with its baseline at y, starting at x or centred on x.
func drawLabel(dst *stdimage.RGBA, x, y int, s string, center bool) {
	d := &font.Drawer{
		Dst:  dst,
		Src:  axisColor,
		Face: basicfont.Face7x13,
	}
	if center {
		x -= d.MeasureString(s).Ceil() / 2
	}
	d.Dot = fixed.P(x, y)
	d.DrawString(s)
}
