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
	_ "image/gif"
	_ "image/jpeg"
	_ "image/png"
	"os"
	"path/filepath"
	"strings"

	"github.com/samber/lo"
	_ "golang.org/x/image/bmp"
	_ "golang.org/x/image/tiff"
	_ "golang.org/x/image/webp"

	"github.com/ajroetker/go-equalize/image"
)

// Extensions lists the file extensions ScanDataset accepts.
var Extensions = []string{".png", ".jpg", ".jpeg", ".gif", ".bmp", ".tif", ".tiff", ".webp"}

// ScanDataset returns the paths of the decodable regular files in dir,
// sorted by name. Subdirectories are not descended.
func ScanDataset(dir string) ([]string, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, fmt.Errorf("scan dataset: %w", err)
	}

	files := lo.Filter(entries, func(e os.DirEntry, _ int) bool {
		ext := strings.ToLower(filepath.Ext(e.Name()))
		return e.Type().IsRegular() && lo.Contains(Extensions, ext)
	})
	return lo.Map(files, func(e os.DirEntry, _ int) string {
		return filepath.Join(dir, e.Name())
	}), nil
}

// Decode reads the image at path and reduces it to grayscale.
func Decode(path string) (*image.Image, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	src, format, err := stdimage.Decode(f)
	if err != nil {
		return nil, fmt.Errorf("decode %s: %w", filepath.Base(path), err)
	}
	img, err := image.FromStd(src)
	if err != nil {
		return nil, fmt.Errorf("decode %s (%s): %w", filepath.Base(path), format, err)
	}
	return img, nil
}
