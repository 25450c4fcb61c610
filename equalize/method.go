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
	"strings"

	"github.com/ajroetker/go-equalize/image"
)

// Method is a named contrast-enhancement transform.
type Method interface {
	Name() string
	Transform(img *image.Image) (*image.Image, error)
}

// Method names, as reported by Name.
const (
	NameCLAHE  = "CLAHE"
	NameHE     = "HE"
	NameDQHEPL = "DQHEPL"
	NameBHEPLD = "BHEPL-D"
)

type methodFunc struct {
	name string
	fn   func(*image.Image) (*image.Image, error)
}

func (m methodFunc) Name() string {
	return m.name
}

func (m methodFunc) Transform(img *image.Image) (*image.Image, error) {
	return m.fn(img)
}

// NewMethod wraps fn as a Method.
func NewMethod(name string, fn func(*image.Image) (*image.Image, error)) Method {
	return methodFunc{name: name, fn: fn}
}

// Methods returns the built-in methods with default parameters, in the
// order CLAHE, HE, DQHEPL, BHEPL-D.
func Methods() []Method {
	return []Method{
		NewMethod(NameCLAHE, func(img *image.Image) (*image.Image, error) { return CLAHE(img) }),
		NewMethod(NameHE, HE),
		NewMethod(NameDQHEPL, DQHEPL),
		NewMethod(NameBHEPLD, func(img *image.Image) (*image.Image, error) { return BHEPLD(img) }),
	}
}

// Lookup returns the built-in method with the given name, compared
// case-insensitively.
func Lookup(name string) (Method, bool) {
	for _, m := range Methods() {
		if strings.EqualFold(m.Name(), strings.TrimSpace(name)) {
			return m, true
		}
	}
	return nil, false
}
