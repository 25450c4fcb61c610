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

//go:build amd64

package dispatch

import "golang.org/x/sys/cpu"

func init() {
	if NoSimdEnv() {
		currentLevel = LevelScalar
		return
	}
	currentLevel = detect(cpu.X86.HasAVX512F, cpu.X86.HasAVX2, cpu.X86.HasSSE2)
}

func detect(avx512, avx2, sse2 bool) Level {
	switch {
	case avx512:
		return LevelAVX512
	case avx2:
		return LevelAVX2
	case sse2:
		return LevelSSE2
	default:
		return LevelScalar
	}
}
