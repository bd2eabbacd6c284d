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

package search

import (
	"math/rand"
	"sort"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

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

func TestSufCheckAcceptsValidArray(t *testing.T) {
	text := "mississippi"
	sa := referenceSuffixArray(text)
	assert.NoError(t, SufCheck([]byte(text), sa, true))
}

func TestSufCheckRejectsSwappedEntries(t *testing.T) {
	text := "mississippi"
	sa := referenceSuffixArray(text)
	sa[0], sa[1] = sa[1], sa[0]
	assert.Error(t, SufCheck([]byte(text), sa, true))
}

func TestSufCheckRejectsOutOfRangeEntry(t *testing.T) {
	text := "banana"
	sa := referenceSuffixArray(text)
	sa[2] = len(text)
	assert.Error(t, SufCheck([]byte(text), sa, false))
}

func TestSufCheckRejectsDuplicateEntry(t *testing.T) {
	text := "banana"
	sa := referenceSuffixArray(text)
	sa[0] = sa[1]
	assert.Error(t, SufCheck([]byte(text), sa, false))
}

func TestSufCheckEmptyText(t *testing.T) {
	assert.NoError(t, SufCheck(nil, nil, false))
}

// bruteForceOccurrences finds every suffix start offset in [0,len(t)) at
// which p occurs in t, used as an oracle for Search/SimpleSearch.
func bruteForceOccurrences(t, p []byte) []int {
	var out []int

	for i := 0; i < len(t) && i+len(p) <= len(t); i++ {
		if string(t[i:i+len(p)]) == string(p) {
			out = append(out, i)
		}
	}

	return out
}

func TestSearchFindsAllOccurrences(t *testing.T) {
	text := "abracadabra"
	sa := referenceSuffixArray(text)

	patterns := []string{"a", "ab", "abra", "bra", "cad", "z", "abracadabra", ""}

	for _, p := range patterns {
		count, index := Search([]byte(text), []byte(p), sa)

		want := bruteForceOccurrences([]byte(text), []byte(p))

		if len(want) == 0 {
			assert.Equal(t, 0, count, "pattern %q", p)
			continue
		}

		require.Equal(t, len(want), count, "pattern %q", p)

		got := make([]int, count)

		for i := 0; i < count; i++ {
			got[i] = sa[index+i]
		}

		sort.Ints(got)
		sort.Ints(want)
		assert.Equal(t, want, got, "pattern %q", p)
	}
}

func TestSimpleSearchMatchesSearch(t *testing.T) {
	text := "mississippi"
	sa := referenceSuffixArray(text)

	for _, c := range []byte("mississippix") {
		wantCount, wantIndex := Search([]byte(text), []byte{c}, sa)
		gotCount, gotIndex := SimpleSearch([]byte(text), sa, c)
		assert.Equal(t, wantCount, gotCount, "byte %q", c)

		if wantCount > 0 {
			assert.Equal(t, wantIndex, gotIndex, "byte %q", c)
		}
	}
}

func TestSearchRandomTexts(t *testing.T) {
	rnd := rand.New(rand.NewSource(time.Now().UnixNano()))
	alphabet := "abcd"

	for trial := 0; trial < 15; trial++ {
		n := 10 + rnd.Intn(200)
		var b strings.Builder

		for i := 0; i < n; i++ {
			b.WriteByte(alphabet[rnd.Intn(len(alphabet))])
		}

		text := b.String()
		sa := referenceSuffixArray(text)

		plen := 1 + rnd.Intn(3)
		start := rnd.Intn(n - plen + 1)
		pattern := text[start : start+plen]

		count, index := Search([]byte(text), []byte(pattern), sa)
		want := bruteForceOccurrences([]byte(text), []byte(pattern))
		require.Equal(t, len(want), count, "text %q pattern %q", text, pattern)

		got := make([]int, count)

		for i := 0; i < count; i++ {
			got[i] = sa[index+i]
		}

		sort.Ints(got)
		sort.Ints(want)
		assert.Equal(t, want, got, "text %q pattern %q", text, pattern)
	}
}
