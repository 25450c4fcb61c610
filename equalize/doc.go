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

// Package equalize implements histogram-based contrast enhancement for
// 8-bit grayscale images.
//
// The two plateau-limited equalizers share one pipeline:
//
//	Histogram -> Segments -> plateau clipping -> output ranges -> LUT -> image
//
// DQHEPL splits the histogram at its quartiles into four segments, clips
// each segment at its mean bin height and maps the segments onto output
// ranges chosen so that the median intensity stays in place.
//
// BHEPLD splits the histogram at the mean brightness into two segments,
// clips each at its median bin height and equalizes each half into its own
// side of the split point.
//
// HE and CLAHE are the classic global and tiled equalizers, provided as
// baselines for comparison.
//
// All transforms are pure: they never modify the input image and share no
// state, so distinct images may be processed concurrently.
//
// # Lookup tables are not globally monotonic
//
// Each segment maps monotonically onto its output range, but adjacent
// segments may overlap when boundaries coincide, so the composed LUT can
// decrease across a segment boundary.
package equalize
