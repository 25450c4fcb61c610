package equalize

import (
	"errors"
	stdimage "image"
	"math"
	"testing"

	"github.com/ajroetker/go-equalize/image"
	"github.com/google/go-cmp/cmp"
)

func TestBHEPLD_Scenario(t *testing.T) {
	img := image.FromPixels(4, 4, scenarioPixels)
	h := NewHistogram(img)

	// The mean 127.5 rounds to 128. Each half holds two occupied bins among
	// mostly empty ones, so both median plateaus are 0 and both halves are
	// clipped to nothing.
	lut, segs := BHEPLDLUT(h)
	if segs[0].Lo != 0 || segs[0].Hi != 128 || segs[1].Lo != 129 || segs[1].Hi != 255 {
		t.Errorf("segments = [%d,%d] [%d,%d], want [0,128] [129,255]", segs[0].Lo, segs[0].Hi, segs[1].Lo, segs[1].Hi)
	}
	for i, s := range segs {
		if s.Plateau != 0 || s.Mass != 0 {
			t.Errorf("segment %d: plateau %v mass %v, want 0, 0", i, s.Plateau, s.Mass)
		}
	}
	if diff := cmp.Diff(LUT{}, lut); diff != "" {
		t.Errorf("zero-fill LUT mismatch (-want +got):\n%s", diff)
	}

	out, err := BHEPLD(img)
	if err != nil {
		t.Fatalf("BHEPLD: %v", err)
	}
	if diff := cmp.Diff(make([]uint8, 16), out.Pixels()); diff != "" {
		t.Errorf("output mismatch (-want +got):\n%s", diff)
	}
}

func TestBHEPLD_ScenarioConstantFill(t *testing.T) {
	img := image.FromPixels(4, 4, scenarioPixels)

	lut, _ := BHEPLDLUT(NewHistogram(img), WithEmptySegmentFill(EmptyConstant))
	want := constantLUT(map[[2]int]uint8{
		{0, 128}:   0,
		{129, 255}: 129,
	})
	if diff := cmp.Diff(want, lut); diff != "" {
		t.Errorf("constant-fill LUT mismatch (-want +got):\n%s", diff)
	}

	out, err := BHEPLD(img, WithEmptySegmentFill(EmptyConstant))
	if err != nil {
		t.Fatalf("BHEPLD: %v", err)
	}
	wantPix := []uint8{0, 0, 0, 0, 0, 0, 0, 0, 129, 129, 129, 129, 129, 129, 129, 129}
	if diff := cmp.Diff(wantPix, out.Pixels()); diff != "" {
		t.Errorf("output mismatch (-want +got):\n%s", diff)
	}
}

func TestBHEPLD_FullRamp(t *testing.T) {
	// Every level once: mean 127.5 -> 128, every bin equals its median
	// plateau of 1, so nothing is clipped.
	pix := make([]uint8, 256)
	for i := range pix {
		pix[i] = uint8(i)
	}
	h := NewHistogram(image.FromPixels(16, 16, pix))

	lut, segs := BHEPLDLUT(h)
	if segs[0].Mass != 129 || segs[1].Mass != 127 {
		t.Errorf("masses = %v, %v, want 129, 127", segs[0].Mass, segs[1].Mass)
	}
	checkPlateau(t, segs[:])

	var want LUT
	for i := 0; i <= 128; i++ {
		want[i] = uint8(math.RoundToEven(128 * (float64(i+1) / 129)))
	}
	for i := 129; i < Levels; i++ {
		want[i] = uint8(math.RoundToEven(129 + 126*(float64(i-128)/127)))
	}
	if diff := cmp.Diff(want, lut); diff != "" {
		t.Errorf("LUT mismatch (-want +got):\n%s", diff)
	}

	spot := map[int]uint8{0: 1, 63: 64, 128: 128, 129: 130, 255: 255}
	for i, v := range spot {
		if lut[i] != v {
			t.Errorf("lut[%d] = %d, want %d", i, lut[i], v)
		}
	}

	checkMonotonic(t, &lut, segs[0], Range{0, 128})
	checkMonotonic(t, &lut, segs[1], Range{129, 255})
}

func TestBHEPLD_TopSplit(t *testing.T) {
	pix := make([]uint8, 100)
	for i := range pix {
		pix[i] = 255
	}
	pix[0] = 254

	h := NewHistogram(image.FromPixels(10, 10, pix))
	if m := h.MeanBrightness(); m != 255 {
		t.Fatalf("MeanBrightness() = %d, want 255", m)
	}

	lut, segs := BHEPLDLUT(h, WithEmptySegmentFill(EmptyConstant))
	if !segs[1].Empty() {
		t.Errorf("upper segment = [%d,%d], want empty", segs[1].Lo, segs[1].Hi)
	}
	if segs[0].Lo != 0 || segs[0].Hi != 255 {
		t.Errorf("lower segment = [%d,%d], want [0,255]", segs[0].Lo, segs[0].Hi)
	}
	if diff := cmp.Diff(LUT{}, lut); diff != "" {
		t.Errorf("LUT mismatch (-want +got):\n%s", diff)
	}
}

func TestBHEPLD_Uniform(t *testing.T) {
	for _, v := range []uint8{0, 3, 128, 200, 255} {
		for _, fill := range []EmptyFill{EmptyZero, EmptyConstant} {
			out, err := BHEPLD(uniformImage(6, 9, v), WithEmptySegmentFill(fill))
			if err != nil {
				t.Fatalf("BHEPLD(uniform %d, %v): %v", v, fill, err)
			}
			for _, got := range out.Pixels() {
				if got != v {
					t.Fatalf("BHEPLD(uniform %d, %v): pixel %d, want %d", v, fill, got, v)
				}
			}
		}
	}
}

func TestBHEPLD_Properties(t *testing.T) {
	for name, img := range testImages() {
		t.Run(name, func(t *testing.T) {
			out, err := BHEPLD(img)
			if err != nil {
				t.Fatalf("BHEPLD: %v", err)
			}
			checkSameShape(t, img, out)

			h := NewHistogram(img)
			m := h.MeanBrightness()
			lut, segs := BHEPLDLUT(h)
			checkPlateau(t, segs[:])

			// Lower and upper segments cover [0,255] exactly once.
			if segs[0].Lo != 0 || segs[0].Hi != m {
				t.Errorf("lower = [%d,%d], want [0,%d]", segs[0].Lo, segs[0].Hi, m)
			}
			if m < 255 && (segs[1].Lo != m+1 || segs[1].Hi != 255) {
				t.Errorf("upper = [%d,%d], want [%d,255]", segs[1].Lo, segs[1].Hi, m+1)
			}

			if segs[0].Mass > minMass {
				checkMonotonic(t, &lut, segs[0], Range{0, m})
			}
			if segs[1].Mass > minMass {
				checkMonotonic(t, &lut, segs[1], Range{m + 1, 255})
			}
		})
	}
}

func TestBHEPLD_Validation(t *testing.T) {
	if _, err := BHEPLD(nil); !errors.Is(err, ErrNilImage) {
		t.Errorf("BHEPLD(nil): got %v, want ErrNilImage", err)
	}
	if _, err := BHEPLD(image.NewImage(3, 0)); !errors.Is(err, ErrEmptyImage) {
		t.Errorf("BHEPLD(empty): got %v, want ErrEmptyImage", err)
	}
	if _, err := BHEPLDStd(nil); !errors.Is(err, ErrNilImage) {
		t.Errorf("BHEPLDStd(nil): got %v, want ErrNilImage", err)
	}

	rgba := stdimage.NewRGBA(stdimage.Rect(0, 0, 2, 2))
	if _, err := BHEPLDStd(rgba); !errors.Is(err, ErrChannels) {
		t.Errorf("BHEPLDStd(rgba): got %v, want ErrChannels", err)
	}

	gray := stdimage.NewGray(stdimage.Rect(0, 0, 4, 4))
	copy(gray.Pix, scenarioPixels)
	out, err := BHEPLDStd(gray)
	if err != nil {
		t.Fatalf("BHEPLDStd(gray): %v", err)
	}
	checkSameShape(t, image.FromPixels(4, 4, scenarioPixels), out)
}

func TestEmptyFillString(t *testing.T) {
	if EmptyZero.String() != "zero" || EmptyConstant.String() != "constant" || EmptyFill(9).String() != "unknown" {
		t.Error("unexpected EmptyFill names")
	}
}

func BenchmarkBHEPLD(b *testing.B) {
	img := bellImage(1920, 1080, 7, 0, 64)
	b.ReportAllocs()
	b.SetBytes(int64(img.Len()))
	for b.Loop() {
		_, _ = BHEPLD(img)
	}
}
