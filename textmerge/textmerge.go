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

// Package textmerge provides functions to merge any number of texts line by line.
package textmerge

import (
	"strconv"
	"strings"

	"github.com/mattn/go-runewidth"
	"znkr.io/multidiff"
	"znkr.io/multidiff/internal/byteview"
	"znkr.io/multidiff/internal/config"
)

const (
	prefixPresent = "+"
	prefixAbsent  = " "
)

const (
	missingNewline = "\\ No newline at end of file\n"
	reset          = "\033[0m"
)

// Line is a single line of a merged text.
type Line[T string | []byte] struct {
	// Text of the line including the trailing newline character, if present. For []byte inputs,
	// Text refers to the memory of the input it was taken from.
	Text T

	// Inputs the line appears in.
	Provenance multidiff.Provenance
}

// MissingNewline reports whether the line doesn't end in a newline character. This is only
// possible for the last line of an input.
func (l Line[T]) MissingNewline() bool {
	return len(l.Text) == 0 || l.Text[len(l.Text)-1] != '\n'
}

// Lines splits every text into lines and merges the lines of all texts with each other.
//
// A line that doesn't end in a newline character is different from the same line with a newline
// character.
//
// The following option is supported: [multidiff.Linear]
func Lines[T string | []byte](texts []T, opts ...multidiff.Option) []Line[T] {
	cfg := config.FromOptions(opts, config.Linear)
	entries := merge(texts, cfg)
	out := make([]Line[T], len(entries))
	for j, e := range entries {
		out[j] = Line[T]{byteview.To[T](e.Value), e.Provenance}
	}
	return out
}

// Combined merges the lines of all texts and returns a listing of the merged lines.
//
// Every line is prefixed with one column per input that contains a "+" if the line is present in
// the input or a space otherwise. A line without a newline at the end is followed by a "\ No
// newline at end of file" marker.
//
// The following options are supported: [multidiff.Linear], [TerminalColors]
//
// Important: The output is not guaranteed to be stable and may change with minor version upgrades.
// DO NOT rely on the output being stable.
func Combined[T string | []byte](texts []T, opts ...multidiff.Option) T {
	cfg := config.FromOptions(opts, config.Linear|config.Color)
	return combined[T](merge(texts, cfg), len(texts), cfg)
}

// CombinedLines is like [Combined], but it formats lines that were already merged by [Lines]. The
// number of texts that were merged is k.
//
// The following option is supported: [TerminalColors]
func CombinedLines[T string | []byte](lines []Line[T], k int, opts ...multidiff.Option) T {
	cfg := config.FromOptions(opts, config.Color)
	return combined[T](toEntries(lines), k, cfg)
}

func combined[T string | []byte](entries []multidiff.Entry[byteview.ByteView], k int, cfg config.Config) T {
	var b byteview.Builder[T]
	size := 0
	for _, e := range entries {
		size += k + 1 + e.Value.Len() + 1
	}
	b.Grow(size)

	for _, e := range entries {
		code := ""
		if cfg.Color {
			code = colorOf(cfg.Colors, e.Provenance.Len(), k)
		}
		if code != "" {
			b.WriteString(code)
		}
		for i := range k {
			if e.Provenance.Contains(i) {
				b.WriteString(prefixPresent)
			} else {
				b.WriteString(prefixAbsent)
			}
		}
		b.WriteByte(' ')
		b.WriteByteView(e.Value.TrimNewline())
		if code != "" {
			b.WriteString(reset)
		}
		b.WriteByte('\n')
		if !e.Value.HasNewline() {
			b.WriteString(missingNewline)
		}
	}
	return b.Build()
}

// colorOf returns the color for a line that appears in n out of k inputs.
func colorOf(cc config.ColorConfig, n, k int) string {
	switch {
	case n == k:
		return cc.Shared
	case n == 1:
		return cc.Unique
	default:
		return cc.Partial
	}
}

// Table merges the lines of all texts and returns a table that lists every merged line, the inputs
// it appears in, and its line number in every input.
//
// The table is formatted in Markdown. Line numbers start at 1, a "-" marks inputs the line doesn't
// appear in. For example:
//
//	| Line | Appears in | 0 | 1 |
//	|------|------------|---|---|
//	| foo  | 0, 1       | 1 | 1 |
//	| bar  | 1          | - | 2 |
//
// The following option is supported: [multidiff.Linear]
//
// Important: The output is not guaranteed to be stable and may change with minor version upgrades.
// DO NOT rely on the output being stable.
func Table[T string | []byte](texts []T, opts ...multidiff.Option) T {
	cfg := config.FromOptions(opts, config.Linear)
	return table[T](merge(texts, cfg), len(texts))
}

// TableLines is like [Table], but it formats lines that were already merged by [Lines]. The number
// of texts that were merged is k.
func TableLines[T string | []byte](lines []Line[T], k int) T {
	return table[T](toEntries(lines), k)
}

func table[T string | []byte](entries []multidiff.Entry[byteview.ByteView], k int) T {
	header := make([]string, 0, k+2)
	header = append(header, "Line", "Appears in")
	for i := range k {
		header = append(header, strconv.Itoa(i))
	}
	rows := [][]string{header}
	for j, idx := range multidiff.Indexes(entries, k) {
		e := entries[j]
		row := make([]string, 0, k+2)
		row = append(row, cell(e.Value.TrimNewline().String()), appearsIn(e.Provenance))
		for _, pos := range idx {
			if pos == multidiff.Absent {
				row = append(row, "-")
			} else {
				row = append(row, strconv.Itoa(pos+1))
			}
		}
		rows = append(rows, row)
	}

	widths := make([]int, len(header))
	for _, row := range rows {
		for c, s := range row {
			widths[c] = max(widths[c], runewidth.StringWidth(s))
		}
	}

	var b byteview.Builder[T]
	writeRow := func(row []string) {
		b.WriteByte('|')
		for c, s := range row {
			b.WriteByte(' ')
			b.WriteString(s)
			b.WriteString(strings.Repeat(" ", widths[c]-runewidth.StringWidth(s)))
			b.WriteString(" |")
		}
		b.WriteByte('\n')
	}
	writeRow(rows[0])
	b.WriteByte('|')
	for _, w := range widths {
		b.WriteString(strings.Repeat("-", w+2))
		b.WriteByte('|')
	}
	b.WriteByte('\n')
	for _, row := range rows[1:] {
		writeRow(row)
	}
	return b.Build()
}

// cell escapes characters that have a special meaning in a Markdown table.
func cell(s string) string {
	return strings.ReplaceAll(s, "|", "\\|")
}

func appearsIn(p multidiff.Provenance) string {
	var sb strings.Builder
	for i := range p.All() {
		if sb.Len() > 0 {
			sb.WriteString(", ")
		}
		sb.WriteString(strconv.Itoa(i))
	}
	return sb.String()
}

func merge[T string | []byte](texts []T, cfg config.Config) []multidiff.Entry[byteview.ByteView] {
	lines := make([][]byteview.ByteView, len(texts))
	for i, text := range texts {
		lines[i] = byteview.SplitLines(byteview.From(text))
	}
	var opts []multidiff.Option
	if cfg.Mode == config.ModeLinear {
		opts = append(opts, multidiff.Linear())
	}
	return multidiff.Merge(lines, opts...)
}

// toEntries converts merged lines back to merged entries without copying the text.
func toEntries[T string | []byte](lines []Line[T]) []multidiff.Entry[byteview.ByteView] {
	out := make([]multidiff.Entry[byteview.ByteView], len(lines))
	for j, l := range lines {
		out[j] = multidiff.Entry[byteview.ByteView]{Value: byteview.From(l.Text), Provenance: l.Provenance}
	}
	return out
}
