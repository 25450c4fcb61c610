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

// Package image provides an 8-bit single-channel image type with aligned
// rows and the per-pixel operations used by the equalizers.
//
// Image is the grayscale type consumed and produced by every transform.
// Image3 bundles three same-sized planes (R, G, B) and converts to luma.
// Rows are padded to the CPU vector width reported by package dispatch.
//
// # Point Operations
//
// Point operations transform each pixel independently:
//
//	ApplyLUT(img, out, &lut) // out = lut[img]
//	Counts(img)              // 256-bin histogram
//
// # Usage Example
//
//	img := image.NewImage(640, 480)
//	out := image.NewImage(640, 480)
//	var lut [256]uint8
//	for i := range lut {
//	    lut[i] = uint8(255 - i)
//	}
//	image.ApplyLUT(img, out, &lut)
//
// # Interoperability
//
// FromStd converts any image.Image from the standard library to luma;
// ToGray converts back to *image.Gray for encoding.
//
// # Edge Handling
//
// Coordinate helper functions for out-of-bounds pixel access:
//
//	Reflect101(index, size) - reflect about the edge pixel
//	Clamp(index, size)  - repeat edge pixels
package image
