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

	"github.com/ajroetker/go-equalize/image"
)

var (
	// ErrNilImage is returned when a transform receives a nil image.
	ErrNilImage = errors.New("equalize: nil image")

	// ErrEmptyImage is returned for images with zero width or height.
	ErrEmptyImage = errors.New("equalize: image has no pixels")

	// ErrChannels is returned when a transform requiring single-channel
	// input is given a multi-channel image.
	ErrChannels = errors.New("equalize: image is not single-channel")
)

func validate(img *image.Image) error {
	if img == nil {
		return ErrNilImage
	}
	if img.Empty() {
		return ErrEmptyImage
	}
	return nil
}
