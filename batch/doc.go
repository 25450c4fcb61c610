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

// Package batch runs the equalizers over a directory of images.
//
// A Runner decodes every image of the dataset as grayscale, applies each
// configured method, measures the result against the original and, in the
// export modes, writes the processed images, histogram plots and
// per-image statistics. Images are processed in parallel on a worker pool;
// a failing image yields a Result carrying the error and the batch goes on.
//
// Per-method measurements are collected into a Summary, whose Aggregate
// reports the mean and median of every measure.
package batch
