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

import "fmt"

// SufCheck reports whether sa is a valid suffix array of t. Three
// increasingly strict passes run in sequence: every entry must fall in
// [0,len(t)), the first bytes of the suffixes sa lists must be
// non-decreasing, and finally the bucket-chain induced by sa's own
// ordering must round-trip (for every i, walking from sa[i] to its
// predecessor byte's bucket must land back on sa[i] at the rank the
// bucket chain expects) — the same check the bucket-induction step
// itself depends on holding. When verbose is true, the error names the
// offending index and bytes instead of a generic failure.
func SufCheck(t []byte, sa []int, verbose bool) error {
	n := len(t)

	if n == 0 {
		return nil
	}

	if len(sa) != n {
		return fmt.Errorf("sufcheck: suffix array length %d does not match text length %d", len(sa), n)
	}

	for i := 0; i < n; i++ {
		if sa[i] < 0 || sa[i] >= n {
			if verbose {
				return fmt.Errorf("sufcheck: out of the range [0,%d]: sa[%d]=%d", n-1, i, sa[i])
			}

			return fmt.Errorf("sufcheck: suffix array entry out of range")
		}
	}

	for i := 1; i < n; i++ {
		if t[sa[i-1]] > t[sa[i]] {
			if verbose {
				return fmt.Errorf("sufcheck: suffixes in wrong order: t[sa[%d]=%d]=%d > t[sa[%d]=%d]=%d",
					i-1, sa[i-1], t[sa[i-1]], i, sa[i], t[sa[i]])
			}

			return fmt.Errorf("sufcheck: suffixes in wrong order")
		}
	}

	var c [256]int

	for _, v := range t {
		c[v]++
	}

	p := 0

	for i := 0; i < 256; i++ {
		cnt := c[i]
		c[i] = p
		p += cnt
	}

	last := t[n-1]
	q := c[last]
	c[last]++

	for i := 0; i < n; i++ {
		pos := sa[i]
		var ch byte
		var rnk int

		if pos > 0 {
			pos--
			ch = t[pos]
			rnk = c[ch]
		} else {
			pos = n - 1
			ch = t[pos]
			rnk = q
		}

		if rnk < 0 || pos != sa[rnk] {
			if verbose {
				other := -1

				if rnk >= 0 {
					other = sa[rnk]
				}

				return fmt.Errorf("sufcheck: suffix in wrong position: sa[%d]=%d or sa[%d]=%d", rnk, other, i, sa[i])
			}

			return fmt.Errorf("sufcheck: suffix in wrong position")
		}

		if rnk != q {
			c[ch]++

			if n <= c[ch] || t[sa[c[ch]]] != ch {
				c[ch] = -1
			}
		}
	}

	return nil
}
