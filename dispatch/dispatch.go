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

// Package dispatch detects the vector width of the running CPU.
//
// The width is used to align image rows so that per-row loops always see
// whole vector-sized chunks, and is reported by the CLI.
package dispatch

import (
	"os"
	"strconv"
)

// Level represents the widest vector instruction set detected.
type Level int

const (
	// LevelScalar indicates no usable vector extension.
	LevelScalar Level = iota

	// LevelSSE2 indicates SSE2 (x86-64 baseline, 128-bit).
	LevelSSE2

	// LevelAVX2 indicates AVX2 (256-bit).
	LevelAVX2

	// LevelAVX512 indicates AVX-512 (512-bit).
	LevelAVX512

	// LevelNEON indicates ARM NEON (128-bit).
	LevelNEON
)

// String returns a human-readable name for the level.
func (l Level) String() string {
	switch l {
	case LevelScalar:
		return "scalar"
	case LevelSSE2:
		return "sse2"
	case LevelAVX2:
		return "avx2"
	case LevelAVX512:
		return "avx512"
	case LevelNEON:
		return "neon"
	default:
		return "unknown"
	}
}

// Width returns the register width in bytes for the level.
func (l Level) Width() int {
	switch l {
	case LevelAVX2:
		return 32
	case LevelAVX512:
		return 64
	default:
		// Scalar still uses 16-byte rows for consistency.
		return 16
	}
}

// currentLevel is set by init() in the dispatch_*.go files.
var currentLevel Level

// Current returns the detected level.
func Current() Level {
	return currentLevel
}

// Width returns the detected register width in bytes.
func Width() int {
	return currentLevel.Width()
}

// NoSimdEnv reports whether EQUALIZE_NO_SIMD is set. When set, detection
// is skipped and the scalar level is used.
func NoSimdEnv() bool {
	val := os.Getenv("EQUALIZE_NO_SIMD")
	if val == "" {
		return false
	}
	if b, err := strconv.ParseBool(val); err == nil {
		return b
	}
	return true
}
