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

package multidiff

import (
	"crypto/sha256"
	"fmt"
	"math/rand/v2"
	"slices"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
	"znkr.io/multidiff/internal/config"
)

var modes = []struct {
	name string
	opts []Option
}{
	{"table", nil},
	{"linear", []Option{Linear()}},
}

// chars splits strings into sequences of single character strings.
func chars(ss ...string) [][]string {
	out := make([][]string, len(ss))
	for i, s := range ss {
		out[i] = strings.Split(s, "")
	}
	return out
}

// render formats entries as space separated value{provenance} pairs.
func render[T any](entries []Entry[T]) string {
	var sb strings.Builder
	for j, e := range entries {
		if j > 0 {
			sb.WriteByte(' ')
		}
		fmt.Fprintf(&sb, "%v%v", e.Value, e.Provenance)
	}
	return sb.String()
}

func TestMerge(t *testing.T) {
	tests := []struct {
		name string
		seqs [][]string
		want string
	}{
		{
			name: "none",
			seqs: nil,
			want: "",
		},
		{
			name: "single-empty",
			seqs: chars(""),
			want: "",
		},
		{
			name: "all-empty",
			seqs: chars("", "", ""),
			want: "",
		},
		{
			name: "one",
			seqs: chars("abbc"),
			want: "a{0} b{0} b{0} c{0}",
		},
		{
			name: "equals",
			seqs: chars("ab", "ab", "ab"),
			want: "a{0,1,2} b{0,1,2}",
		},
		{
			name: "different",
			seqs: chars("a", "b", "c"),
			want: "a{0} b{1} c{2}",
		},
		{
			name: "one-differs",
			seqs: chars("ab", "ab", "ac"),
			want: "a{0,1,2} b{0,1} c{2}",
		},
		{
			name: "two",
			seqs: chars("aaabbbccc", "baacccc"),
			want: "b{1} a{0,1} a{0,1} a{0} b{0} b{0} b{0} c{1} c{0,1} c{0,1} c{0,1}",
		},
		{
			name: "three",
			seqs: chars("abc", "bac", "bca"),
			want: "a{0} b{0,1,2} a{1} c{0,1,2} a{2}",
		},
		{
			name: "four",
			seqs: chars("aab", "baa", "bc", "abc"),
			want: "b{1,2} a{0,1} a{0,1,3} b{0,3} c{2,3}",
		},
		{
			name: "empty-in-between",
			seqs: chars("ab", "", "ab"),
			want: "a{0,2} b{0,2}",
		},
		{
			name: "empty-first",
			seqs: chars("", "ab"),
			want: "a{1} b{1}",
		},
		{
			name: "repeated",
			seqs: chars("aaaa", "aa", "aaaaaa"),
			want: "a{0,1,2} a{0,1,2} a{0,2} a{0,2} a{2} a{2}",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := render(Merge(tt.seqs))
			if diff := cmp.Diff(tt.want, got); diff != "" {
				t.Errorf("Merge(...) result is different [-want,+got]:\n%s", diff)
			}
			checkMerge(t, tt.seqs, Merge(tt.seqs))
			checkMerge(t, tt.seqs, Merge(tt.seqs, Linear()))
		})
	}
}

func TestMergeEmpty(t *testing.T) {
	if got := Merge[int](nil); got != nil {
		t.Errorf("Merge(nil) = %v, want nil", got)
	}
}

// Merging a single element with two equal elements used to crash other implementations.
func TestMergeOverlap(t *testing.T) {
	for _, mode := range modes {
		t.Run(mode.name, func(t *testing.T) {
			for _, seqs := range [][][]int{
				{{0}, {0, 0}},
				{{0, 0}, {0}},
				{{0}, {0, 0}, {0}},
				{{0, 0}, {0, 0, 0}, {0}},
			} {
				got := Merge(seqs, mode.opts...)
				checkMerge(t, seqs, got)
			}
		})
	}
}

func TestMergeFunc(t *testing.T) {
	seqs := [][]string{
		{"Foo", "bar"},
		{"foo", "BAR", "baz"},
	}
	var calls int
	eq := func(old, new string) bool {
		calls++
		return strings.EqualFold(old, new)
	}
	got := render(MergeFunc(seqs, eq))
	want := "Foo{0,1} bar{0,1} baz{1}"
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("MergeFunc(...) result is different [-want,+got]:\n%s", diff)
	}
	if calls == 0 {
		t.Errorf("MergeFunc(...) never called eq")
	}
}

// The first argument of the equality comparison is always a value from the result so far.
func TestMergeFuncArgumentOrder(t *testing.T) {
	type value struct {
		input int
		v     string
	}
	seqs := [][]value{
		{{0, "a"}, {0, "b"}},
		{{1, "b"}, {1, "c"}},
		{{2, "a"}, {2, "c"}},
	}
	for _, mode := range modes {
		t.Run(mode.name, func(t *testing.T) {
			m := NewMerger[value](mode.opts...)
			for i, seq := range seqs {
				m.Add(seq, func(old, new value) bool {
					if old.input >= i || new.input != i {
						t.Fatalf("eq(%v, %v) called while merging input %d", old, new, i)
					}
					return old.v == new.v
				})
			}
			got := m.Entries()
			want := []Entry[value]{
				{value{0, "a"}, mustProvenance(0, 2)},
				{value{0, "b"}, mustProvenance(0, 1)},
				{value{1, "c"}, mustProvenance(1, 2)},
			}
			if diff := cmp.Diff(want, got, cmp.AllowUnexported(value{})); diff != "" {
				t.Errorf("Merger result is different [-want,+got]:\n%s", diff)
			}
		})
	}
}

func TestMergeSequences(t *testing.T) {
	seqs := []Sequence[string]{
		Slice([]string{"a", "b", "c"}),
		SliceFunc([]string{"A", "C"}, strings.EqualFold),
		Slice([]string{"b", "c", "d"}),
	}
	got := render(MergeSequences(seqs))
	want := "a{0,1} b{0,2} c{0,1,2} d{2}"
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("MergeSequences(...) result is different [-want,+got]:\n%s", diff)
	}
}

func TestMerger(t *testing.T) {
	seqs := chars("abc", "bac", "bca")
	var m Merger[string] // zero value is usable
	var snapshots []string
	for _, seq := range seqs {
		m.Add(seq, equal[string])
		snapshots = append(snapshots, render(m.Entries()))
	}
	want := []string{
		"a{0} b{0} c{0}",
		"a{0} b{0,1} a{1} c{0,1}",
		"a{0} b{0,1,2} a{1} c{0,1,2} a{2}",
	}
	if diff := cmp.Diff(want, snapshots); diff != "" {
		t.Errorf("Merger snapshots are different [-want,+got]:\n%s", diff)
	}
	if got, want := m.Len(), 3; got != want {
		t.Errorf("Merger.Len() = %d, want %d", got, want)
	}
}

// Earlier results must not change when more inputs are added.
func TestMergerEntriesStable(t *testing.T) {
	m := NewMerger[string]()
	m.Add(strings.Split("abc", ""), equal[string])
	m.Add(strings.Split("abd", ""), equal[string])
	before := m.Entries()
	want := render(before)
	m.Add(strings.Split("ab", ""), equal[string])
	if got := render(before); got != want {
		t.Errorf("earlier result changed from %q to %q", want, got)
	}
}

func TestMergeNotAllowed(t *testing.T) {
	color := func(cfg *config.Config) config.Flag {
		cfg.Color = true
		return config.Color
	}
	defer func() {
		if recover() == nil {
			t.Errorf("Merge(...) did not panic for an unsupported option")
		}
	}()
	Merge(chars("a", "b"), color)
}

func TestStepperSameSide(t *testing.T) {
	st := &stepper[int]{
		acc: []Entry[int]{{1, NewProvenance(0)}},
		seq: []int{1},
		eq:  equal[int],
	}
	if !st.equal(element{accumulated, 0}, element{incoming, 0}) {
		t.Errorf("equal(accumulated, incoming) = false, want true")
	}
	if !st.equal(element{incoming, 0}, element{accumulated, 0}) {
		t.Errorf("equal(incoming, accumulated) = false, want true")
	}
	for _, s := range []side{accumulated, incoming} {
		func() {
			defer func() {
				if recover() == nil {
					t.Errorf("equal(...) did not panic for two elements of side %d", s)
				}
			}()
			st.equal(element{s, 0}, element{s, 0})
		}()
	}
}

func TestMergeProperties(t *testing.T) {
	inputs := [][]string{
		{"", ""},
		{"abc", "abc"},
		{"abc", "cba"},
		{"abcabba", "cbabac"},
		{"aaabbbccc", "baacccc", "cccbbbaaa"},
		{"xaxbxcx", "abc", "", "xxxx", "cxbxa"},
	}
	for _, mode := range modes {
		t.Run(mode.name, func(t *testing.T) {
			for _, in := range inputs {
				seqs := chars(in...)
				checkMerge(t, seqs, Merge(seqs, mode.opts...))

				rev := slices.Clone(seqs)
				slices.Reverse(rev)
				checkMerge(t, rev, Merge(rev, mode.opts...))
			}
		})
	}
}

func TestMergeIdempotent(t *testing.T) {
	for _, mode := range modes {
		t.Run(mode.name, func(t *testing.T) {
			for _, s := range []string{"", "a", "abba", "abcabba"} {
				for k := 1; k <= 4; k++ {
					seqs := make([][]string, k)
					for i := range seqs {
						seqs[i] = strings.Split(s, "")
					}
					checkIdempotent(t, seqs, Merge(seqs, mode.opts...))
				}
			}
		})
	}
}

func TestMergeRandom(t *testing.T) {
	rng := rand.New(rand.NewChaCha8(sha256.Sum256([]byte(t.Name()))))
	for _, mode := range modes {
		t.Run(mode.name, func(t *testing.T) {
			for range 500 {
				k := 1 + rng.IntN(5)
				alphabet := 1 + rng.IntN(4)
				seqs := make([][]int, k)
				for i := range seqs {
					seqs[i] = make([]int, rng.IntN(30))
					for j := range seqs[i] {
						seqs[i][j] = rng.IntN(alphabet)
					}
				}
				checkMerge(t, seqs, Merge(seqs, mode.opts...))
			}
		})
	}
}

// For two inputs, the number of shared entries is the length of a longest common subsequence and
// both modes agree on it.
func TestMergeTwoIsLCS(t *testing.T) {
	rng := rand.New(rand.NewChaCha8(sha256.Sum256([]byte(t.Name()))))
	for range 200 {
		x := make([]byte, rng.IntN(40))
		y := make([]byte, rng.IntN(40))
		for i := range x {
			x[i] = 'a' + byte(rng.IntN(3))
		}
		for i := range y {
			y[i] = 'a' + byte(rng.IntN(3))
		}
		table := shared(Merge([][]byte{x, y}))
		linear := shared(Merge([][]byte{x, y}, Linear()))
		if table != linear {
			t.Errorf("Merge(%q, %q): table shares %d entries, linear shares %d", x, y, table, linear)
		}
	}
}

func shared[T any](entries []Entry[T]) int {
	n := 0
	for _, e := range entries {
		if e.Provenance.Len() == 2 {
			n++
		}
	}
	return n
}

func TestAlign(t *testing.T) {
	tests := []struct {
		name string
		x, y string
		want []Run
	}{
		{
			name: "empty",
			x:    "",
			y:    "",
			want: nil,
		},
		{
			name: "identical",
			x:    "abc",
			y:    "abc",
			want: []Run{{Equal, 3}},
		},
		{
			name: "disjoint",
			x:    "abc",
			y:    "xy",
			want: []Run{{LeftOnly, 3}, {RightOnly, 2}},
		},
		{
			name: "swap",
			x:    "ab",
			y:    "ba",
			want: []Run{{LeftOnly, 1}, {Equal, 1}, {RightOnly, 1}},
		},
		{
			name: "repeated",
			x:    "aaabbbccc",
			y:    "baacccc",
			want: []Run{
				{RightOnly, 1},
				{Equal, 2},
				{LeftOnly, 4},
				{RightOnly, 1},
				{Equal, 3},
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Align([]byte(tt.x), []byte(tt.y))
			if diff := cmp.Diff(tt.want, got); diff != "" {
				t.Errorf("Align(...) result is different [-want,+got]:\n%s", diff)
			}
		})
	}
}

func TestAlignFunc(t *testing.T) {
	x := []string{"Foo", "bar", "Baz"}
	y := []string{"foo", "baz"}
	for _, mode := range modes {
		t.Run(mode.name, func(t *testing.T) {
			got := AlignFunc(x, y, strings.EqualFold, mode.opts...)
			want := []Run{{Equal, 1}, {LeftOnly, 1}, {Equal, 1}}
			if diff := cmp.Diff(want, got); diff != "" {
				t.Errorf("AlignFunc(...) result is different [-want,+got]:\n%s", diff)
			}
		})
	}
}

func FuzzMerge(f *testing.F) {
	f.Add([]byte("abc"), []byte("bac"), []byte("bca"))
	f.Add([]byte("aaabbbccc"), []byte("baacccc"), []byte(""))
	f.Add([]byte{0}, []byte{0, 0}, []byte{0})
	f.Fuzz(func(t *testing.T, a, b, c []byte) {
		seqs := [][]byte{a, b, c}
		for _, mode := range modes {
			checkMerge(t, seqs, Merge(seqs, mode.opts...))
		}
	})
}

func FuzzMergeIdempotent(f *testing.F) {
	f.Add([]byte("abcabba"), uint8(3))
	f.Fuzz(func(t *testing.T, s []byte, k uint8) {
		seqs := make([][]byte, 1+int(k%5))
		for i := range seqs {
			seqs[i] = s
		}
		for _, mode := range modes {
			checkIdempotent(t, seqs, Merge(seqs, mode.opts...))
		}
	})
}

// checkMerge validates the reconstruction and length properties of a merge result.
func checkMerge[T comparable](t *testing.T, seqs [][]T, got []Entry[T]) {
	t.Helper()
	for i, seq := range seqs {
		if diff := cmp.Diff(seq, Filter(got, i), cmpopts.EquateEmpty()); diff != "" {
			t.Fatalf("Filter(Merge(%v), %d) doesn't reconstruct input [-want,+got]:\n%s", seqs, i, diff)
		}
	}
	lo, hi := 0, 0
	for _, seq := range seqs {
		lo = max(lo, len(seq))
		hi += len(seq)
	}
	if len(got) < lo || len(got) > hi {
		t.Fatalf("len(Merge(%v)) = %d, want in [%d, %d]", seqs, len(got), lo, hi)
	}
	for _, e := range got {
		if e.Provenance.Len() == 0 {
			t.Fatalf("Merge(%v) contains entry %v without provenance", seqs, e)
		}
		idx := e.Provenance.Indexes()
		if !slices.IsSorted(idx) || idx[len(idx)-1] >= len(seqs) {
			t.Fatalf("Merge(%v) contains entry with invalid provenance %v", seqs, e.Provenance)
		}
	}
}

// checkIdempotent validates that merging identical inputs tags every value with all inputs.
func checkIdempotent[T comparable](t *testing.T, seqs [][]T, got []Entry[T]) {
	t.Helper()
	all := make([]int, len(seqs))
	for i := range all {
		all[i] = i
	}
	if len(got) != len(seqs[0]) {
		t.Fatalf("len(Merge(%v)) = %d, want %d", seqs, len(got), len(seqs[0]))
	}
	for j, e := range got {
		if e.Value != seqs[0][j] {
			t.Fatalf("Merge(%v)[%d].Value = %v, want %v", seqs, j, e.Value, seqs[0][j])
		}
		if diff := cmp.Diff(all, e.Provenance.Indexes()); diff != "" {
			t.Fatalf("Merge(%v)[%d].Provenance is different [-want,+got]:\n%s", seqs, j, diff)
		}
	}
}

func mustProvenance(idx ...int) Provenance {
	var p Provenance
	for _, i := range idx {
		p = p.Add(i)
	}
	return p
}

func BenchmarkMerge(b *testing.B) {
	rng := rand.New(rand.NewChaCha8(sha256.Sum256([]byte(b.Name()))))
	seqs := make([][]int, 8)
	for i := range seqs {
		seqs[i] = make([]int, 1000)
		for j := range seqs[i] {
			seqs[i][j] = rng.IntN(20)
		}
	}
	for _, mode := range modes {
		b.Run(mode.name, func(b *testing.B) {
			for b.Loop() {
				Merge(seqs, mode.opts...)
			}
		})
	}
}
