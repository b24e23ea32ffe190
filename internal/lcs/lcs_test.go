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

package lcs

import (
	"crypto/sha256"
	"fmt"
	"math/rand/v2"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestAlign(t *testing.T) {
	tests := []struct {
		name string
		x, y string
		want string
	}{
		{
			name: "empty",
			want: "",
		},
		{
			name: "x-empty",
			y:    "abc",
			want: "III",
		},
		{
			name: "y-empty",
			x:    "abc",
			want: "DDD",
		},
		{
			name: "identical",
			x:    "abc",
			y:    "abc",
			want: "MMM",
		},
		{
			name: "disjoint",
			x:    "abc",
			y:    "xyz",
			want: "DDDIII",
		},
		{
			name: "swapped",
			x:    "ab",
			y:    "ba",
			want: "DMI",
		},
		{
			name: "repeated-in-y",
			x:    "a",
			y:    "aa",
			want: "MI",
		},
		{
			name: "repeated-in-x",
			x:    "aa",
			y:    "a",
			want: "MD",
		},
		{
			name: "aaabbb_to_baac",
			x:    "aaabbb",
			y:    "baac",
			want: "IMMDDDDI",
		},
		{
			name: "abac_to_bca",
			x:    "abac",
			y:    "bca",
			want: "DMDMI",
		},
	}

	eq := func(a, b byte) bool { return a == b }
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			x, y := []byte(tt.x), []byte(tt.y)
			rx, ry := make([]bool, len(x)+1), make([]bool, len(y)+1)
			Align(x, y, eq, rx, ry, 0, len(x), 0, len(y))
			got := render(rx, ry, len(x), len(y))
			if diff := cmp.Diff(tt.want, got); diff != "" {
				t.Errorf("Align(...) differs [-want,+got]:\n%s", diff)
			}
		})
	}
}

func TestAlignSubrange(t *testing.T) {
	x, y := []byte("xabyy"), []byte("xbayy")
	rx, ry := make([]bool, len(x)+1), make([]bool, len(y)+1)
	Align(x, y, func(a, b byte) bool { return a == b }, rx, ry, 1, 3, 1, 3)
	got := render(rx, ry, len(x), len(y))
	// Elements outside of the range are untouched and render as matches.
	if want := "MDMIMM"; got != want {
		t.Errorf("Align(...) = %q, want %q", got, want)
	}
}

func TestAlignRandom(t *testing.T) {
	eq := func(a, b int) bool { return a == b }
	for i := range 50 {
		seed := sha256.Sum256(fmt.Append(nil, i))
		rng := rand.New(rand.NewChaCha8(seed))
		x := make([]int, rng.IntN(40))
		for s := range x {
			x[s] = rng.IntN(4)
		}
		y := make([]int, rng.IntN(40))
		for t := range y {
			y[t] = rng.IntN(4)
		}

		rx, ry := make([]bool, len(x)+1), make([]bool, len(y)+1)
		Align(x, y, eq, rx, ry, 0, len(x), 0, len(y))

		var xs, ys []int
		for s := range x {
			if !rx[s] {
				xs = append(xs, x[s])
			}
		}
		for t := range y {
			if !ry[t] {
				ys = append(ys, y[t])
			}
		}
		if diff := cmp.Diff(xs, ys); diff != "" {
			t.Errorf("iteration %d: aligned elements differ [-x,+y]:\n%s", i, diff)
		}
		if got, want := len(xs), Len(x, y, eq); got != want {
			t.Errorf("iteration %d: aligned %d elements, want %d", i, got, want)
		}
	}
}

func TestLen(t *testing.T) {
	tests := []struct {
		x, y string
		want int
	}{
		{"", "", 0},
		{"abc", "", 0},
		{"", "abc", 0},
		{"abc", "abc", 3},
		{"ABCABBA", "CBABAC", 4},
		{"abc", "xyz", 0},
		{"0", "00", 1},
	}
	for _, tt := range tests {
		got := Len([]byte(tt.x), []byte(tt.y), func(a, b byte) bool { return a == b })
		if got != tt.want {
			t.Errorf("Len(%q, %q) = %d, want %d", tt.x, tt.y, got, tt.want)
		}
	}
}

func render(rx, ry []bool, n, m int) string {
	var sb strings.Builder
	for s, t := 0, 0; s < n || t < m; {
		if s < n && rx[s] {
			sb.WriteRune('D')
			s++
		} else if t < m && ry[t] {
			sb.WriteRune('I')
			t++
		} else {
			sb.WriteRune('M')
			s++
			t++
		}
	}
	return sb.String()
}
