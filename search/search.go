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

// Package search provides pattern lookup and suffix-array validation over a
// text/suffix-array pair produced by package divsufsort.
package search

// compare matches p against t starting at t[suf:], resuming from the match
// length already established by a prior call (the memoized match length
// that makes the surrounding binary search sub-linear: sa_search never
// re-compares a prefix it has already confirmed equal). It returns the
// byte-wise comparison result (negative/zero/positive) of t's suffix against
// p, together with the new match length. A match of all of p returns 0; a
// suffix that ends before p is fully matched returns -1, since a proper
// prefix of p sorts before p.
func compare(t, p []byte, suf, match int) (int, int) {
	tn := len(t)
	pn := len(p)
	i := suf + match
	j := match
	r := 0

	for i < tn && j < pn {
		r = int(t[i]) - int(p[j])

		if r != 0 {
			break
		}

		i++
		j++
	}

	match = j

	if r == 0 {
		if j != pn {
			return -1, match
		}

		return 0, match
	}

	return r, match
}

// Search returns the number of suffixes of t with p as a prefix, and the
// smallest index into sa at which one of those suffixes appears (sa's range
// [index, index+count) then lists every occurrence). If p does not occur,
// count is 0 and index is the insertion point sa_search would report.
func Search(t []byte, p []byte, sa []int) (count, index int) {
	if len(p) == 0 {
		return len(sa), 0
	}

	if len(t) == 0 || len(sa) == 0 {
		return 0, -1
	}

	size := len(sa)
	half := size >> 1
	i, j, k := 0, 0, 0
	lmatch, rmatch := 0, 0

	for size > 0 {
		match := lmatch

		if rmatch < match {
			match = rmatch
		}

		var r int
		r, match = compare(t, p, sa[i+half], match)

		if r < 0 {
			i += half + 1
			half -= (size & 1) ^ 1
			lmatch = match
		} else if r > 0 {
			rmatch = match
		} else {
			lsize := half
			j = i
			rsize := size - half - 1
			k = i + half + 1

			llmatch, lrmatch := lmatch, match

			for lh := lsize >> 1; lsize > 0; lsize, lh = lh, lh>>1 {
				lm := llmatch

				if lrmatch < lm {
					lm = lrmatch
				}

				r, lm = compare(t, p, sa[j+lh], lm)

				if r < 0 {
					j += lh + 1
					lh -= (lsize & 1) ^ 1
					llmatch = lm
				} else {
					lrmatch = lm
				}
			}

			rlmatch, rrmatch := match, rmatch

			for rh := rsize >> 1; rsize > 0; rsize, rh = rh, rh>>1 {
				rm := rlmatch

				if rrmatch < rm {
					rm = rrmatch
				}

				r, rm = compare(t, p, sa[k+rh], rm)

				if r <= 0 {
					k += rh + 1
					rh -= (rsize & 1) ^ 1
					rlmatch = rm
				} else {
					rrmatch = rm
				}
			}

			break
		}

		size = half
		half >>= 1
	}

	if k-j > 0 {
		return k - j, j
	}

	return 0, i
}

// SimpleSearch is Search specialized to a single-byte pattern, skipping the
// full byte-range compare in favor of a direct value comparison at each
// probed suffix.
func SimpleSearch(t []byte, sa []int, c byte) (count, index int) {
	if len(t) == 0 || len(sa) == 0 {
		return 0, -1
	}

	size := len(sa)
	half := size >> 1
	i, j, k := 0, 0, 0

	probe := func(pos int) int {
		if pos >= len(t) {
			return -1
		}

		return int(t[pos]) - int(c)
	}

	for size > 0 {
		r := probe(sa[i+half])

		if r < 0 {
			i += half + 1
			half -= (size & 1) ^ 1
		} else if r == 0 {
			lsize := half
			j = i
			rsize := size - half - 1
			k = i + half + 1

			for lh := lsize >> 1; lsize > 0; lsize, lh = lh, lh>>1 {
				if probe(sa[j+lh]) < 0 {
					j += lh + 1
					lh -= (lsize & 1) ^ 1
				}
			}

			for rh := rsize >> 1; rsize > 0; rsize, rh = rh, rh>>1 {
				if probe(sa[k+rh]) <= 0 {
					k += rh + 1
					rh -= (rsize & 1) ^ 1
				}
			}

			break
		}

		size = half
		half >>= 1
	}

	if k-j > 0 {
		return k - j, j
	}

	return 0, i
}
