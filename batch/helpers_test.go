package batch

import (
	stdimage "image"
	"image/png"
	"os"
	"path/filepath"
	"testing"
)

// writeGray writes a w×h grayscale PNG whose pixel (x, y) is fn(x, y).
func writeGray(t *testing.T, dir, name string, w, h int, fn func(x, y int) uint8) string {
	t.Helper()
	img := stdimage.NewGray(stdimage.Rect(0, 0, w, h))
	for y := range h {
		for x := range w {
			img.Pix[y*img.Stride+x] = fn(x, y)
		}
	}
	path := filepath.Join(dir, name)
	f, err := os.Create(path)
	if err != nil {
		t.Fatal(err)
	}
	if err := png.Encode(f, img); err != nil {
		t.Fatal(err)
	}
	if err := f.Close(); err != nil {
		t.Fatal(err)
	}
	return path
}

func writeFile(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}
	return path
}

func gradient(x, y int) uint8 {
	return uint8(40 + 3*x + 5*y)
}

func checkExists(t *testing.T, paths ...string) {
	t.Helper()
	for _, p := range paths {
		if _, err := os.Stat(p); err != nil {
			t.Errorf("expected %s: %v", p, err)
		}
	}
}
