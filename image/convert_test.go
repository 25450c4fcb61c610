package image

import (
	"errors"
	stdimage "image"
	"image/color"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestLuma(t *testing.T) {
	tests := []struct {
		r, g, b uint8
		want    uint8
	}{
		{0, 0, 0, 0},
		{255, 255, 255, 255},
		{255, 0, 0, 76},
		{0, 255, 0, 150},
		{0, 0, 255, 29},
		{100, 100, 100, 100},
	}
	for _, tc := range tests {
		if got := Luma(tc.r, tc.g, tc.b); got != tc.want {
			t.Errorf("Luma(%d,%d,%d) = %d, want %d", tc.r, tc.g, tc.b, got, tc.want)
		}
	}
}

func TestFromGray_RoundTrip(t *testing.T) {
	src := stdimage.NewGray(stdimage.Rect(0, 0, 5, 3))
	for i := range src.Pix {
		src.Pix[i] = uint8(i * 11)
	}

	img, err := FromGray(src)
	if err != nil {
		t.Fatalf("FromGray: %v", err)
	}
	if img.Width() != 5 || img.Height() != 3 {
		t.Fatalf("size: got %dx%d, want 5x3", img.Width(), img.Height())
	}
	if diff := cmp.Diff(src.Pix, img.ToGray().Pix); diff != "" {
		t.Errorf("round trip mismatch (-want +got):\n%s", diff)
	}
}

func TestFromGray_SubImage(t *testing.T) {
	src := stdimage.NewGray(stdimage.Rect(0, 0, 4, 4))
	for i := range src.Pix {
		src.Pix[i] = uint8(i)
	}
	sub := src.SubImage(stdimage.Rect(1, 1, 3, 3)).(*stdimage.Gray)

	img, err := FromGray(sub)
	if err != nil {
		t.Fatalf("FromGray: %v", err)
	}
	if diff := cmp.Diff([]uint8{5, 6, 9, 10}, img.Pixels()); diff != "" {
		t.Errorf("sub-image mismatch (-want +got):\n%s", diff)
	}
}

func TestFromStd_Color(t *testing.T) {
	src := stdimage.NewRGBA(stdimage.Rect(0, 0, 2, 1))
	src.Set(0, 0, color.RGBA{R: 255, A: 255})
	src.Set(1, 0, color.RGBA{R: 100, G: 100, B: 100, A: 255})

	img, err := FromStd(src)
	if err != nil {
		t.Fatalf("FromStd: %v", err)
	}
	if diff := cmp.Diff([]uint8{76, 100}, img.Pixels()); diff != "" {
		t.Errorf("luma mismatch (-want +got):\n%s", diff)
	}
}

func TestFromStd_NRGBA(t *testing.T) {
	src := stdimage.NewNRGBA(stdimage.Rect(2, 2, 4, 3))
	src.Set(2, 2, color.NRGBA{G: 255, A: 255})
	src.Set(3, 2, color.NRGBA{B: 255, A: 255})

	img, err := FromStd(src)
	if err != nil {
		t.Fatalf("FromStd: %v", err)
	}
	if diff := cmp.Diff([]uint8{150, 29}, img.Pixels()); diff != "" {
		t.Errorf("luma mismatch (-want +got):\n%s", diff)
	}
}

func TestFromStd_Empty(t *testing.T) {
	if _, err := FromStd(nil); !errors.Is(err, ErrEmpty) {
		t.Errorf("FromStd(nil): got %v, want ErrEmpty", err)
	}
	empty := stdimage.NewRGBA(stdimage.Rect(0, 0, 0, 0))
	if _, err := FromStd(empty); !errors.Is(err, ErrEmpty) {
		t.Errorf("FromStd(empty): got %v, want ErrEmpty", err)
	}
}

func TestToLuma(t *testing.T) {
	img := NewImage3(2, 2)
	img.Plane(0).Fill(255)
	out := NewImage(2, 2)

	ToLuma(img, out)

	for _, v := range out.Pixels() {
		if v != 76 {
			t.Fatalf("ToLuma(red): got %d, want 76", v)
		}
	}
}
