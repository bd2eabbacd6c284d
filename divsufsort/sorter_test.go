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

package divsufsort

import (
	"math/rand"
	"sort"
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestComputeSuffixArrayKnownStrings(t *testing.T) {
	cases := []struct {
		name string
		text string
		want []int
	}{
		{"banana", "banana", []int{5, 3, 1, 0, 4, 2}},
		{"aaaa", "aaaa", []int{3, 2, 1, 0}},
		{"single", "a", []int{0}},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			sa := make([]int, len(c.text))
			NewSuffixSorter().ComputeSuffixArray([]byte(c.text), sa)
			assert.Equal(t, c.want, sa)
		})
	}
}

func TestComputeSuffixArrayEmpty(t *testing.T) {
	sa := make([]int, 0)
	require.NotPanics(t, func() {
		NewSuffixSorter().ComputeSuffixArray(nil, sa)
	})
}

// referenceSuffixArray sorts every suffix the naive way, used as an oracle
// for inputs too irregular to hand-derive an expected array for.
func referenceSuffixArray(text string) []int {
	n := len(text)
	sa := make([]int, n)

	for i := range sa {
		sa[i] = i
	}

	sort.Slice(sa, func(i, j int) bool {
		return text[sa[i]:] < text[sa[j]:]
	})

	return sa
}

func TestComputeSuffixArrayAgainstReference(t *testing.T) {
	rnd := rand.New(rand.NewSource(time.Now().UnixNano()))
	alphabets := []int{2, 4, 26, 256}

	for trial := 0; trial < 20; trial++ {
		alphabet := alphabets[trial%len(alphabets)]
		n := 1 + rnd.Intn(400)
		buf := make([]byte, n)

		for i := range buf {
			buf[i] = byte(rnd.Intn(alphabet))
		}

		want := referenceSuffixArray(string(buf))
		got := make([]int, n)
		NewSuffixSorter().ComputeSuffixArray(buf, got)

		if diff := cmp.Diff(want, got); diff != "" {
			t.Fatalf("suffix array mismatch for %q (-want +got):\n%s", buf, diff)
		}
	}
}

func TestComputeSuffixArrayTandemRepeats(t *testing.T) {
	// Long runs of a repeated short motif stress the tandem-repeat sorter's
	// depth-doubling path and its work-budget fallback.
	motifs := []string{"ab", "abc", "x", "aab"}

	for _, motif := range motifs {
		text := ""

		for len(text) < 2000 {
			text += motif
		}

		want := referenceSuffixArray(text)
		got := make([]int, len(text))
		NewSuffixSorter().ComputeSuffixArray([]byte(text), got)
		assert.Equal(t, want, got, "motif %q", motif)
	}
}

func TestComputeSuffixArrayReusedSorter(t *testing.T) {
	s := NewSuffixSorter()

	inputs := []string{"banana", "mississippi", "a", "aaaa", "zzzzzzzzzzzzzzzzzzzzzzzzzzzz"}

	for _, in := range inputs {
		sa := make([]int, len(in))
		s.ComputeSuffixArray([]byte(in), sa)
		assert.Equal(t, referenceSuffixArray(in), sa, "input %q", in)
	}
}

func TestComputeSuffixArrayParallelMatchesSequential(t *testing.T) {
	rnd := rand.New(rand.NewSource(time.Now().UnixNano()))

	for trial := 0; trial < 10; trial++ {
		n := 50 + rnd.Intn(2000)
		buf := make([]byte, n)

		for i := range buf {
			buf[i] = byte(rnd.Intn(8))
		}

		want := make([]int, n)
		NewSuffixSorter().ComputeSuffixArray(buf, want)

		for _, jobs := range []int{1, 2, 4, 8} {
			got := make([]int, n)
			NewSuffixSorter().ComputeSuffixArrayParallel(buf, got, jobs)
			assert.Equal(t, want, got, "jobs=%d n=%d", jobs, n)
		}
	}
}

func TestComputeSuffixArrayParallelLargeBuckets(t *testing.T) {
	// Three distinct bytes over 6000-10000 input bytes give type B* buckets
	// of roughly 350 to 1150 entries; the larger inputs push a bucket past
	// ssBlockSize, so a parallel worker's block-merge phase writes into its
	// scratch slice. That is the regime where workers sharing one scratch
	// region would corrupt each other's merges.
	rnd := rand.New(rand.NewSource(time.Now().UnixNano()))

	for trial := 0; trial < 5; trial++ {
		n := 6000 + rnd.Intn(4000)
		buf := make([]byte, n)

		for i := range buf {
			buf[i] = byte(rnd.Intn(3))
		}

		want := make([]int, n)
		NewSuffixSorter().ComputeSuffixArray(buf, want)

		for _, jobs := range []int{2, 4, 8} {
			got := make([]int, n)
			NewSuffixSorter().ComputeSuffixArrayParallel(buf, got, jobs)
			assert.Equal(t, want, got, "jobs=%d n=%d", jobs, n)
		}
	}
}

func TestComputeBWTKnownString(t *testing.T) {
	sa := make([]int, len("banana"))
	pidx := NewSuffixSorter().ComputeBWT([]byte("banana"), sa)
	require.Equal(t, 3, pidx)
}
