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
	"context"
	"fmt"
	stdimage "image"
	"image/png"
	"io"
	"os"
	"path/filepath"
	"strings"

	"golang.org/x/sync/errgroup"

	"github.com/ajroetker/go-equalize/image"
)

// named pairs an image with the label used in file names and plot titles.
type named struct {
	label string
	img   *image.Image
}

// stem returns the file-name form of a label: lower case, dashes and spaces
// replaced by underscores.
func stem(label string) string {
	return strings.NewReplacer("-", "_", " ", "_").Replace(strings.ToLower(label))
}

// baseName returns the file name of path without its extension.
func baseName(path string) string {
	name := filepath.Base(path)
	return strings.TrimSuffix(name, filepath.Ext(name))
}

func savePNG(path string, img stdimage.Image) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	if err := png.Encode(f, img); err != nil {
		f.Close()
		return fmt.Errorf("encode %s: %w", filepath.Base(path), err)
	}
	return f.Close()
}

// exportImages writes every image of set as dir/<base>_<label>.png, and
// the statistics of res as dir/<base>_stats.txt.
func exportImages(ctx context.Context, dir, base string, set []named, res *Result) error {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return err
	}

	g, ctx := errgroup.WithContext(ctx)
	for _, n := range set {
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			path := filepath.Join(dir, fmt.Sprintf("%s_%s.png", base, stem(n.label)))
			return savePNG(path, n.img.ToGray())
		})
	}
	g.Go(func() error {
		f, err := os.Create(filepath.Join(dir, base+"_stats.txt"))
		if err != nil {
			return err
		}
		if err := WriteStats(f, res); err != nil {
			f.Close()
			return err
		}
		return f.Close()
	})
	return g.Wait()
}

// exportHistograms writes a histogram plot of every image of set as
// dir/<label>_histogram.png.
func exportHistograms(ctx context.Context, dir string, set []named) error {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return err
	}

	g, ctx := errgroup.WithContext(ctx)
	for _, n := range set {
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			plot := RenderHistogram(n.img, "Histogram of "+n.label)
			return savePNG(filepath.Join(dir, stem(n.label)+"_histogram.png"), plot)
		})
	}
	return g.Wait()
}

// WriteStats writes the measurements of one image as a text table.
func WriteStats(w io.Writer, res *Result) error {
	if _, err := fmt.Fprintf(w, "image: %s\nsize: %dx%d\n\n", res.Path, res.Width, res.Height); err != nil {
		return err
	}
	if _, err := fmt.Fprintf(w, "%-8s %10s %10s %10s %10s %10s\n",
		"method", "ambe", "psnr", "entropy", "contrast", "uniformity"); err != nil {
		return err
	}
	for _, r := range res.Reports {
		if _, err := fmt.Fprintf(w, "%-8s %10.4f %10.4f %10.4f %10.4f %10.4f\n",
			r.Method, r.AMBE, r.PSNR, r.Entropy, r.Contrast, r.Uniformity); err != nil {
			return err
		}
	}
	return nil
}
