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
	"fmt"
	"iter"
	"slices"
	"strconv"
	"strings"
)

// Provenance is the set of inputs an entry appears in, identified by their index.
//
// Indices are added in strictly increasing order, the set is therefore always sorted. A Provenance
// is immutable, [Provenance.Add] returns a new set. The zero value is an empty set.
type Provenance struct {
	idx []int
}

// NewProvenance returns a set that contains only i.
func NewProvenance(i int) Provenance {
	if i < 0 {
		panic(fmt.Sprintf("negative provenance index %d", i))
	}
	return Provenance{[]int{i}}
}

// Add returns a new set that contains all indices of p and i.
//
// Add panics if i is not greater than all indices in p.
func (p Provenance) Add(i int) Provenance {
	if i < 0 {
		panic(fmt.Sprintf("negative provenance index %d", i))
	}
	if n := len(p.idx); n > 0 && p.idx[n-1] >= i {
		panic(fmt.Sprintf("provenance index %d added out of order to %v", i, p))
	}
	// Clip forces a copy, p must not change.
	return Provenance{append(slices.Clip(p.idx), i)}
}

// Contains reports whether i is in p.
func (p Provenance) Contains(i int) bool {
	_, ok := slices.BinarySearch(p.idx, i)
	return ok
}

// Len returns the number of indices in p.
func (p Provenance) Len() int { return len(p.idx) }

// All returns an iterator over the indices in p in increasing order.
func (p Provenance) All() iter.Seq[int] { return slices.Values(p.idx) }

// Indexes returns the indices in p in increasing order.
func (p Provenance) Indexes() []int { return slices.Clone(p.idx) }

// Equal reports whether p and q contain the same indices.
func (p Provenance) Equal(q Provenance) bool { return slices.Equal(p.idx, q.idx) }

// String formats p as a set, e.g. {0,2}.
func (p Provenance) String() string {
	var sb strings.Builder
	sb.WriteByte('{')
	for j, i := range p.idx {
		if j > 0 {
			sb.WriteByte(',')
		}
		sb.WriteString(strconv.Itoa(i))
	}
	sb.WriteByte('}')
	return sb.String()
}
