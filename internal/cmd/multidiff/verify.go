// Copyright 2025 Florian Zenker (flo@znkr.io)
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

package main

import (
	"fmt"
	"strings"

	"znkr.io/multidiff/internal/byteview"
	"znkr.io/multidiff/textmerge"
)

// verify checks that every input can be reconstructed from the merged lines and that the number of
// merged lines is within bounds: At least the number of lines in the longest input and at most the
// number of lines in all inputs.
func verify(texts []string, lines []textmerge.Line[string]) error {
	lo, hi := 0, 0
	for i, text := range texts {
		var sb strings.Builder
		for _, l := range lines {
			if l.Provenance.Contains(i) {
				sb.WriteString(l.Text)
			}
		}
		if sb.String() != text {
			return fmt.Errorf("input %d can't be reconstructed from the merged lines", i)
		}
		n := len(byteview.SplitLines(byteview.From(text)))
		lo = max(lo, n)
		hi += n
	}
	if len(lines) < lo || len(lines) > hi {
		return fmt.Errorf("merge has %d lines, want between %d and %d", len(lines), lo, hi)
	}
	return nil
}
