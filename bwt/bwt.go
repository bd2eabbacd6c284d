/*
Copyright 2011-2017 Frederic Langlet
Licensed under the Apache License, Version 2.0 (the "License");
you may not use this file except in compliance with the License.
you may obtain a copy of the License at

                http://www.apache.org/licenses/LICENSE-2.0

Unless required by applicable law or agreed to in writing, software
distributed under the License is distributed on an "AS IS" BASIS,
WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
See the License for the specific language governing permissions and
limitations under the License.
*/

// Package bwt implements the forward and inverse Burrows-Wheeler Transform
// on top of a suffix array built by package divsufsort.
//
// The initial technique is described in Burrows M and Wheeler D, "A block
// sorting lossless data compression algorithm", Digital Equipment
// Corporation technical report 124, 1994. This implementation replaces the
// textbook rotation sort with a suffix array construction, as
// github.com/flanglet/kanzi-go's transform package does.
package bwt

import (
	"github.com/dsufgo/suffixsort/divsufsort"
)

// BWT computes the forward and inverse Burrows-Wheeler Transform of a byte
// slice. A single instance can be reused across calls; its scratch suffix
// array buffer grows lazily and is never shrunk.
type BWT struct {
	sorter  *divsufsort.SuffixSorter
	sa      []int
	nextPos []int
}

// NewBWT returns a ready-to-use BWT.
func NewBWT() *BWT {
	return &BWT{sorter: divsufsort.NewSuffixSorter()}
}

// Forward writes the BWT of src into dst (len(dst) must be >= len(src)) and
// returns the primary index pidx in [1, n]: the 1-based position in dst
// holding the transform's implicit wrap-around byte, one past the slot
// ComputeBWT leaves unfilled. An inverse call must be given this same pidx
// back unchanged.
func (b *BWT) Forward(src, dst []byte) (int, error) {
	n := len(src)

	if n == 0 {
		return 0, nil
	}

	if len(dst) < n {
		return 0, ErrAllocation
	}

	if &src[0] == &dst[0] {
		return 0, ErrEqualBuffers
	}

	if n == 1 {
		dst[0] = src[0]
		return 1, nil
	}

	if cap(b.sa) < n {
		b.sa = make([]int, n)
	}

	sa := b.sa[:n]
	zeroSlot := b.sorter.ComputeBWT(src, sa)

	for i := 0; i < n; i++ {
		if i == zeroSlot {
			dst[i] = src[n-1]
			continue
		}

		dst[i] = byte(sa[i])
	}

	return zeroSlot + 1, nil
}
