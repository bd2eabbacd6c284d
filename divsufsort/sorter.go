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

// Package divsufsort builds suffix arrays with the classical two-phase
// induced sort: type B* suffixes are substring-sorted and tandem-repeat
// ranked first, then the rest of the array is induced from them in two
// linear bucket passes.
package divsufsort

// SuffixSorter computes the suffix array (and, as a side product, the BWT)
// of a byte slice. A single instance can be reused across calls; internal
// buffers grow lazily and are never shrunk, so reusing one SuffixSorter for
// many same-sized inputs avoids repeated allocation.
type SuffixSorter struct {
	sa         []int
	buffer     []int
	bucketA    [256]int
	bucketB    [256 * 256]int
	ssStack    *stack
	trStack    *stack
	mergeStack *stack
	jobs       int
}

// NewSuffixSorter returns a ready-to-use SuffixSorter.
func NewSuffixSorter() *SuffixSorter {
	return &SuffixSorter{
		ssStack:    newStack(ssMisortStackSize),
		trStack:    newStack(trStackSize),
		mergeStack: newStack(ssSMergeStackSize),
		jobs:       1,
	}
}

func (s *SuffixSorter) reset() {
	s.ssStack.index = 0
	s.trStack.index = 0
	s.mergeStack.index = 0

	for i := range s.bucketA {
		s.bucketA[i] = 0
	}

	for i := range s.bucketB {
		s.bucketB[i] = 0
	}
}

// ComputeSuffixArray fills sa (len(sa) must be >= len(src)) with the suffix
// array of src: sa[i] is the starting offset of the i-th suffix of src in
// lexicographic order.
func (s *SuffixSorter) ComputeSuffixArray(src []byte, sa []int) {
	length := len(src)

	if length < 2 {
		if length == 1 {
			sa[0] = 0
		}

		return
	}

	if len(s.buffer) < length+1 {
		s.buffer = make([]int, length+1)
	}

	for i := range src {
		s.buffer[i] = int(src[i])
	}

	s.sa = sa
	s.jobs = 1
	s.reset()
	m := s.sortTypeBstar(s.bucketA[:], s.bucketB[:], length)
	s.constructSuffixArray(s.bucketA[:], s.bucketB[:], length, m)
}

// ComputeSuffixArrayParallel behaves like ComputeSuffixArray but dispatches
// the per-bucket substring sort of type B* suffixes (the single parallel
// point in this construction) across jobs workers. jobs <= 1 runs the
// sequential path.
func (s *SuffixSorter) ComputeSuffixArrayParallel(src []byte, sa []int, jobs int) {
	if jobs < 1 {
		jobs = 1
	}

	length := len(src)

	if length < 2 {
		if length == 1 {
			sa[0] = 0
		}

		return
	}

	if len(s.buffer) < length+1 {
		s.buffer = make([]int, length+1)
	}

	for i := range src {
		s.buffer[i] = int(src[i])
	}

	s.sa = sa
	s.jobs = jobs
	s.reset()
	m := s.sortTypeBstar(s.bucketA[:], s.bucketB[:], length)
	s.constructSuffixArray(s.bucketA[:], s.bucketB[:], length, m)
}

func (s *SuffixSorter) constructSuffixArray(bucketA, bucketB []int, n, m int) {
	if m > 0 {
		for c1 := 254; c1 >= 0; c1-- {
			idx := c1 << 8
			i := bucketB[idx+c1+1]
			k := 0
			c2 := -1

			for j := bucketA[c1+1] - 1; j >= i; j-- {
				sv := s.sa[j]
				s.sa[j] = ^sv

				if sv <= 0 {
					continue
				}

				sv--
				c0 := s.buffer[sv]

				if sv > 0 && s.buffer[sv-1] > c0 {
					sv = ^sv
				}

				if c0 != c2 {
					if c2 >= 0 {
						bucketB[idx+c2] = k
					}

					c2 = c0
					k = bucketB[idx+c2]
				}

				s.sa[k] = sv
				k--
			}
		}
	}

	c2 := s.buffer[n-1]
	k := bucketA[c2]

	if s.buffer[n-2] < c2 {
		s.sa[k] = ^(n - 1)
	} else {
		s.sa[k] = n - 1
	}

	k++

	for i := 0; i < n; i++ {
		sv := s.sa[i]

		if sv <= 0 {
			s.sa[i] = ^sv
			continue
		}

		sv--
		c0 := s.buffer[sv]

		if sv == 0 || s.buffer[sv-1] < c0 {
			sv = ^sv
		}

		if c0 != c2 {
			bucketA[c2] = k
			c2 = c0
			k = bucketA[c2]
		}

		s.sa[k] = sv
		k++
	}
}

// ComputeBWT fills sa with the suffix array of src and returns the forward
// Burrows-Wheeler Transform of src in place of sa's positions: after the
// call, sa[i] holds the predecessor byte of the i-th suffix (or, at the
// primary index, the terminator sentinel, signalled by the returned index).
func (s *SuffixSorter) ComputeBWT(src []byte, sa []int) int {
	length := len(src)

	if len(s.buffer) < length+1 {
		s.buffer = make([]int, length+1)
	}

	for i := 0; i < length; i++ {
		s.buffer[i] = int(src[i])
	}

	s.sa = sa
	s.jobs = 1
	s.reset()
	m := s.sortTypeBstar(s.bucketA[:], s.bucketB[:], length)
	return s.constructBWT(s.bucketA[:], s.bucketB[:], length, m)
}

func (s *SuffixSorter) constructBWT(bucketA, bucketB []int, n, m int) int {
	pIdx := -1

	if m > 0 {
		for c1 := 254; c1 >= 0; c1-- {
			idx := c1 << 8
			i := bucketB[idx+c1+1]
			k := 0
			c2 := -1

			for j := bucketA[c1+1] - 1; j >= i; j-- {
				sv := s.sa[j]

				if sv <= 0 {
					if sv != 0 {
						s.sa[j] = ^sv
					}

					continue
				}

				sv--
				c0 := s.buffer[sv]
				s.sa[j] = ^c0

				if sv > 0 && s.buffer[sv-1] > c0 {
					sv = ^sv
				}

				if c0 != c2 {
					if c2 >= 0 {
						bucketB[idx+c2] = k
					}

					c2 = c0
					k = bucketB[idx+c2]
				}

				s.sa[k] = sv
				k--
			}
		}
	}

	c2 := s.buffer[n-1]
	k := bucketA[c2]

	if s.buffer[n-2] < c2 {
		s.sa[k] = ^s.buffer[n-2]
	} else {
		s.sa[k] = n - 1
	}

	k++

	for i := 0; i < n; i++ {
		sv := s.sa[i]

		if sv <= 0 {
			if sv != 0 {
				s.sa[i] = ^sv
			} else {
				pIdx = i
			}

			continue
		}

		sv--
		c0 := s.buffer[sv]
		s.sa[i] = c0

		if sv > 0 && s.buffer[sv-1] < c0 {
			sv = ^s.buffer[sv-1]
		}

		if c0 != c2 {
			bucketA[c2] = k
			c2 = c0
			k = bucketA[c2]
		}

		s.sa[k] = sv
		k++
	}

	return pIdx
}

// sortTypeBstar classifies every suffix as type A, B or B*, counts bucket
// occupancy, and substring-sorts plus tandem-repeat-ranks the type B*
// suffixes, leaving their final relative order (but not yet the type A/B
// suffixes) recorded in sa. It returns the number of type B* suffixes, m.
func (s *SuffixSorter) sortTypeBstar(bucketA, bucketB []int, n int) int {
	m := n
	c0 := s.buffer[n-1]
	arr := s.sa

	for i := n - 1; i >= 0; {
		c1 := c0

		for c0 >= c1 {
			c1 = c0
			bucketA[c1]++
			i--

			if i < 0 {
				break
			}

			c0 = s.buffer[i]
		}

		if i < 0 {
			break
		}

		bucketB[(c0<<8)+c1]++
		m--
		arr[m] = i
		i--
		c1 = c0

		for i >= 0 {
			c0 = s.buffer[i]

			if c0 > c1 {
				break
			}

			bucketB[(c1<<8)+c0]++
			c1 = c0
			i--
		}
	}

	m = n - m
	c0 = 0

	for i, j := 0, 0; c0 < 256; c0++ {
		t := i + bucketA[c0]
		bucketA[c0] = i + j
		idx := c0 << 8
		i = t + bucketB[idx+c0]

		for c1 := c0 + 1; c1 < 256; c1++ {
			j += bucketB[idx+c1]
			bucketB[idx+c1] = j
			i += bucketB[(c1<<8)+c0]
		}
	}

	if m > 0 {
		pab := n - m

		for i := m - 2; i >= 0; i-- {
			t := arr[pab+i]
			idx := (s.buffer[t] << 8) + s.buffer[t+1]
			bucketB[idx]--
			arr[bucketB[idx]] = i
		}

		t := arr[pab+m-1]
		c0 = (s.buffer[t] << 8) + s.buffer[t+1]
		bucketB[c0]--
		arr[bucketB[c0]] = m - 1

		bufSize := n - m - m
		var tasks []ssTask
		c0 = 254

		for j := m; j > 0; c0-- {
			idx := c0 << 8

			for c1 := 255; c1 > c0; c1-- {
				i := bucketB[idx+c1]

				if j-i > 1 {
					tasks = append(tasks, ssTask{first: i, last: j, lastSuffix: arr[i] == m-1})
				}

				j = i
			}
		}

		s.dispatchSSSort(tasks, pab, m, bufSize, n, s.jobs)

		for i := m - 1; i >= 0; i-- {
			if arr[i] >= 0 {
				j := i

				for {
					arr[m+arr[i]] = i
					i--

					if i < 0 || arr[i] < 0 {
						break
					}
				}

				arr[i+1] = i - j

				if i <= 0 {
					break
				}
			}

			j := i

			for {
				arr[i] = ^arr[i]
				arr[m+arr[i]] = j
				i--

				if arr[i] >= 0 {
					break
				}
			}

			arr[m+arr[i]] = j
		}

		s.trSort(m, 1)

		c0 = s.buffer[n-1]
		var c1 int

		for i, j := n-1, m; i >= 0; {
			i--
			c1 = c0

			for i >= 0 {
				c0 = s.buffer[i]

				if c0 < c1 {
					break
				}

				c1 = c0
				i--
			}

			if i >= 0 {
				tt := i
				i--
				c1 = c0

				for i >= 0 {
					c0 = s.buffer[i]

					if c0 > c1 {
						break
					}

					c1 = c0
					i--
				}

				j--

				if tt == 0 || tt-i > 1 {
					arr[arr[m+j]] = tt
				} else {
					arr[arr[m+j]] = ^tt
				}
			}
		}

		bucketB[len(bucketB)-1] = n
		k := m - 1

		for c0 = 254; c0 >= 0; c0-- {
			i := bucketA[c0+1] - 1
			c2 := c0 << 8

			for c1 := 255; c1 > c0; c1-- {
				tt := i - bucketB[(c1<<8)+c0]
				bucketB[(c1<<8)+c0] = i
				i = tt

				for j := bucketB[c2+c1]; j <= k; {
					arr[i] = arr[k]
					i--
					k--
				}
			}

			bucketB[c2+c0+1] = i - bucketB[c2+c0] + 1
			bucketB[c2+c0] = i
		}
	}

	return m
}
