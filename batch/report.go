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
	"io"

	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

// WriteSummary prints the mean and median of every measure per method.
func WriteSummary(w io.Writer, s *Summary) error {
	p := message.NewPrinter(language.English)

	if _, err := p.Fprintf(w, "Metrics summary: %d images processed, %d failed\n\n", s.Processed, s.Failed); err != nil {
		return err
	}
	for _, m := range s.Aggregate() {
		rows := []struct {
			label  string
			format string
			stat   Stat
		}{
			{"AMBE", "%.2f", m.AMBE},
			{"PSNR", "%.2f", m.PSNR},
			{"Entropy", "%.2f", m.Entropy},
			{"Contrast", "%.2f", m.Contrast},
			{"Uniformity", "%.4f", m.Uniformity},
		}
		if _, err := p.Fprintf(w, "== %s ==\n", m.Method); err != nil {
			return err
		}
		for _, r := range rows {
			if _, err := p.Fprintf(w, "%-11s mean: %10s  median: %10s\n",
				r.label, p.Sprintf(r.format, r.stat.Mean), p.Sprintf(r.format, r.stat.Median)); err != nil {
				return err
			}
		}
		if _, err := p.Fprintln(w); err != nil {
			return err
		}
	}
	return nil
}
