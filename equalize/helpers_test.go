package equalize

import (
	"math/rand/v2"
	"testing"

	"github.com/ajroetker/go-equalize/image"
)

// scenarioPixels is a 4x4 image with four equally populated levels.
var scenarioPixels = []uint8{0, 0, 0, 0, 85, 85, 85, 85, 170, 170, 170, 170, 255, 255, 255, 255}

func uniformImage(w, h int, v uint8) *image.Image {
	img := image.NewImage(w, h)
	img.Fill(v)
	return img
}

// bellImage returns an image whose samples are the sum of four uniform
// draws from [0, spread), shifted by offset and clamped to 255.
func bellImage(w, h int, seed uint64, offset, spread int) *image.Image {
	r := rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15))
	img := image.NewImage(w, h)
	for y := 0; y < h; y++ {
		row := img.RowSlice(y)
		for x := range row {
			v := offset
			for range 4 {
				v += r.IntN(spread)
			}
			row[x] = uint8(min(v, 255))
		}
	}
	return img
}

func testImages() map[string]*image.Image {
	return map[string]*image.Image{
		"bell_mid":    bellImage(64, 48, 1, 0, 64),
		"bell_dark":   bellImage(37, 29, 2, 0, 16),
		"bell_bright": bellImage(50, 50, 3, 150, 30),
		"scenario":    image.FromPixels(4, 4, scenarioPixels),
		"single_row":  bellImage(200, 1, 4, 20, 50),
	}
}

func checkSameShape(t *testing.T, in, out *image.Image) {
	t.Helper()
	if !image.SameSize(in, out) {
		t.Fatalf("output size %dx%d, want %dx%d", out.Width(), out.Height(), in.Width(), in.Height())
	}
}

func checkPlateau(t *testing.T, segs []Segment) {
	t.Helper()
	for i, s := range segs {
		for k, c := range s.Counts {
			if c > s.Plateau {
				t.Errorf("segment %d bin %d: count %v exceeds plateau %v", i, s.Lo+k, c, s.Plateau)
			}
		}
	}
}

func checkMonotonic(t *testing.T, lut *LUT, s Segment, r Range) {
	t.Helper()
	for i := s.Lo; i <= s.Hi; i++ {
		if int(lut[i]) < r.Lo || int(lut[i]) > r.Hi {
			t.Errorf("lut[%d] = %d outside output range [%d,%d]", i, lut[i], r.Lo, r.Hi)
		}
		if i > s.Lo && lut[i] < lut[i-1] {
			t.Errorf("lut decreases within segment [%d,%d] at %d: %d < %d", s.Lo, s.Hi, i, lut[i], lut[i-1])
		}
	}
}

func constantLUT(entries map[[2]int]uint8) LUT {
	var lut LUT
	for span, v := range entries {
		for i := span[0]; i <= span[1]; i++ {
			lut[i] = v
		}
	}
	return lut
}
