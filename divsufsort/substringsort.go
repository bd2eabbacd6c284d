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

// Substring sorter: sorts the type B* suffixes of a single (c0,c1) bucket by
// their leading substrings, using a block-phase multikey introsort followed
// by a block merge. pa is the base offset of the B* suffix-start array inside
// sa; first/last/depth/n describe the active window and comparison depth.
func (s *SuffixSorter) ssSort(pa, first, last, buf, bufSize, depth, n int, lastSuffix bool) {
	if lastSuffix {
		first++
	}

	limit := 0
	middle := last

	if bufSize < ssBlockSize && bufSize < last-first {
		limit = isqrt(last - first)

		if bufSize < limit {
			if limit > ssBlockSize {
				limit = ssBlockSize
			}

			middle = last - limit
			buf = middle
			bufSize = limit
		} else {
			limit = 0
		}
	}

	var a int
	i := 0

	for a = first; middle-a > ssBlockSize; a += ssBlockSize {
		s.ssMultiKeyIntroSort(pa, a, a+ssBlockSize, depth)
		curBufSize := last - (a + ssBlockSize)
		var curBuf int

		if curBufSize > bufSize {
			curBuf = a + ssBlockSize
		} else {
			curBufSize = bufSize
			curBuf = buf
		}

		k := ssBlockSize
		b := a

		for j := i; j&1 != 0; j >>= 1 {
			s.ssSwapMerge(pa, b-k, b, b+k, curBuf, curBufSize, depth)
			b -= k
			k <<= 1
		}

		i++
	}

	s.ssMultiKeyIntroSort(pa, a, middle, depth)
	k := ssBlockSize

	for i != 0 {
		if i&1 != 0 {
			s.ssSwapMerge(pa, a-k, a, middle, buf, bufSize, depth)
			a -= k
		}

		k <<= 1
		i >>= 1
	}

	if limit != 0 {
		s.ssMultiKeyIntroSort(pa, middle, last, depth)
		s.ssInplaceMerge(pa, first, middle, last, depth)
	}

	if lastSuffix {
		i = s.sa[first-1]
		p1 := s.sa[pa+i]
		p11 := n - 2

		for a = first; a < last && (s.sa[a] < 0 || s.ssCompare4(p1, p11, pa+s.sa[a], depth) > 0); a++ {
			s.sa[a-1] = s.sa[a]
		}

		s.sa[a-1] = i
	}
}

func (s *SuffixSorter) ssCompare4(pa, pb, p2, depth int) int {
	u1n := pb + 2
	u1 := pa + depth
	u2n := s.sa[p2+1] + 2
	u2 := s.sa[p2] + depth

	if u1n-u1 > u2n-u2 {
		for u2 < u2n && s.buffer[u1] == s.buffer[u2] {
			u1++
			u2++
		}
	} else {
		for u1 < u1n && s.buffer[u1] == s.buffer[u2] {
			u1++
			u2++
		}
	}

	if u1 < u1n {
		if u2 < u2n {
			return s.buffer[u1] - s.buffer[u2]
		}

		return 1
	}

	if u2 < u2n {
		return -1
	}

	return 0
}

func (s *SuffixSorter) ssCompare3(p1, p2, depth int) int {
	u1n := s.sa[p1+1] + 2
	u1 := s.sa[p1] + depth
	u2n := s.sa[p2+1] + 2
	u2 := s.sa[p2] + depth
	buf := s.buffer

	if u1n-u1 > u2n-u2 {
		for u2 < u2n && buf[u1] == buf[u2] {
			u1++
			u2++
		}
	} else {
		for u1 < u1n && buf[u1] == buf[u2] {
			u1++
			u2++
		}
	}

	if u1 < u1n {
		if u2 < u2n {
			return buf[u1] - buf[u2]
		}

		return 1
	}

	if u2 < u2n {
		return -1
	}

	return 0
}

func (s *SuffixSorter) ssInplaceMerge(pa, first, middle, last, depth int) {
	arr := s.sa

	for {
		var p, x int

		if arr[last-1] < 0 {
			x = 1
			p = pa + ^arr[last-1]
		} else {
			x = 0
			p = pa + arr[last-1]
		}

		a := first
		r := -1
		half := (middle - first) >> 1

		for length := middle - first; length > 0; length = half {
			b := a + half
			var c int

			if arr[b] >= 0 {
				c = arr[b]
			} else {
				c = ^arr[b]
			}

			q := s.ssCompare3(pa+c, p, depth)

			if q < 0 {
				a = b + 1
				half -= (length & 1) ^ 1
			} else {
				r = q
			}

			half >>= 1
		}

		if a < middle {
			if r == 0 {
				arr[a] = ^arr[a]
			}

			s.ssRotate(a, middle, last)
			last -= middle - a
			middle = a

			if first == middle {
				break
			}
		}

		last--

		if x != 0 {
			last--

			for arr[last] < 0 {
				last--
			}
		}

		if middle == last {
			break
		}
	}
}

func (s *SuffixSorter) ssRotate(first, middle, last int) {
	l := middle - first
	r := last - middle
	arr := s.sa

	for l > 0 && r > 0 {
		if l == r {
			s.ssBlockSwap(first, middle, l)
			break
		}

		if l < r {
			a := last - 1
			b := middle - 1
			t := arr[a]

			for {
				arr[a] = arr[b]
				a--
				arr[b] = arr[a]
				b--

				if b < first {
					arr[a] = t
					last = a
					r -= l + 1

					if r <= l {
						break
					}

					a--
					b = middle - 1
					t = arr[a]
				}
			}
		} else {
			a := first
			b := middle
			t := arr[a]

			for {
				arr[a] = arr[b]
				a++
				arr[b] = arr[a]
				b++

				if last <= b {
					arr[a] = t
					first = a + 1
					l -= r + 1

					if l <= r {
						break
					}

					a++
					b = middle
					t = arr[a]
				}
			}
		}
	}
}

func (s *SuffixSorter) ssBlockSwap(a, b, n int) {
	for n > 0 {
		s.sa[a], s.sa[b] = s.sa[b], s.sa[a]
		n--
		a++
		b++
	}
}

func getIndex(a int) int {
	if a >= 0 {
		return a
	}

	return ^a
}

func (s *SuffixSorter) ssSwapMerge(pa, first, middle, last, buf, bufSize, depth int) {
	arr := s.sa
	check := 0

	for {
		if last-middle <= bufSize {
			if first < middle && middle < last {
				s.ssMergeBackward(pa, first, middle, last, buf, depth)
			}

			if check&1 != 0 || (check&2 != 0 && s.ssCompare3(pa+getIndex(s.sa[first-1]),
				pa+arr[first], depth) == 0) {
				arr[first] = ^arr[first]
			}

			if check&4 != 0 && s.ssCompare3(pa+getIndex(arr[last-1]), pa+arr[last], depth) == 0 {
				arr[last] = ^arr[last]
			}

			se := s.mergeStack.pop()

			if se == nil {
				return
			}

			first = se.a
			middle = se.b
			last = se.c
			check = se.d
			continue
		}

		if middle-first <= bufSize {
			if first < middle {
				s.ssMergeForward(pa, first, middle, last, buf, depth)
			}

			if check&1 != 0 || (check&2 != 0 && s.ssCompare3(pa+getIndex(arr[first-1]),
				pa+arr[first], depth) == 0) {
				arr[first] = ^arr[first]
			}

			if check&4 != 0 && s.ssCompare3(pa+getIndex(arr[last-1]), pa+arr[last], depth) == 0 {
				arr[last] = ^arr[last]
			}

			se := s.mergeStack.pop()

			if se == nil {
				return
			}

			first = se.a
			middle = se.b
			last = se.c
			check = se.d
			continue
		}

		m := 0
		var length int

		if middle-first < last-middle {
			length = middle - first
		} else {
			length = last - middle
		}

		for half := length >> 1; length > 0; length, half = half, half>>1 {
			if s.ssCompare3(pa+getIndex(arr[middle+m+half]), pa+getIndex(arr[middle-m-half-1]), depth) < 0 {
				m += half + 1
				half -= (length & 1) ^ 1
			}
		}

		if m > 0 {
			lm := middle - m
			rm := middle + m
			s.ssBlockSwap(lm, middle, m)
			l := middle
			r := l
			next := 0

			if rm < last {
				if arr[rm] < 0 {
					arr[rm] = ^arr[rm]

					if first < lm {
						l--

						for arr[l] < 0 {
							l--
						}

						next |= 4
					}

					next |= 1
				} else if first < lm {
					for arr[r] < 0 {
						r++
					}

					next |= 2
				}
			}

			if l-first <= last-r {
				s.mergeStack.push(r, rm, last, (next&3)|(check&4), 0)
				middle = lm
				last = l
				check = (check & 3) | (next & 4)
			} else {
				if r == middle && (next&2) != 0 {
					next ^= 6
				}

				s.mergeStack.push(first, lm, l, (check&3)|(next&4), 0)
				first = r
				middle = rm
				check = (next & 3) | (check & 4)
			}
		} else {
			if s.ssCompare3(pa+getIndex(arr[middle-1]), pa+arr[middle], depth) == 0 {
				arr[middle] = ^arr[middle]
			}

			if check&1 != 0 || (check&2 != 0 && s.ssCompare3(pa+getIndex(s.sa[first-1]),
				pa+arr[first], depth) == 0) {
				arr[first] = ^arr[first]
			}

			if check&4 != 0 && s.ssCompare3(pa+getIndex(arr[last-1]), pa+arr[last], depth) == 0 {
				arr[last] = ^arr[last]
			}

			se := s.mergeStack.pop()

			if se == nil {
				return
			}

			first = se.a
			middle = se.b
			last = se.c
			check = se.d
		}
	}
}

func (s *SuffixSorter) ssMergeForward(pa, first, middle, last, buf, depth int) {
	arr := s.sa
	bufEnd := buf + middle - first - 1
	s.ssBlockSwap(buf, first, middle-first)
	a := first
	b := buf
	c := middle
	t := arr[a]

	for {
		if r := s.ssCompare3(pa+arr[b], pa+arr[c], depth); r < 0 {
			for {
				arr[a] = arr[b]
				a++

				if bufEnd <= b {
					arr[bufEnd] = t
					return
				}

				arr[b] = arr[a]
				b++

				if arr[b] >= 0 {
					break
				}
			}
		} else if r > 0 {
			for {
				arr[a] = arr[c]
				a++
				arr[c] = arr[a]
				c++

				if last <= c {
					for b < bufEnd {
						arr[a] = arr[b]
						a++
						arr[b] = arr[a]
						b++
					}

					arr[a] = arr[b]
					arr[b] = t
					return
				}

				if arr[c] >= 0 {
					break
				}
			}
		} else {
			arr[c] = ^arr[c]

			for {
				arr[a] = arr[b]
				a++

				if bufEnd <= b {
					arr[bufEnd] = t
					return
				}

				arr[b] = arr[a]
				b++

				if arr[b] >= 0 {
					break
				}
			}

			for {
				arr[a] = arr[c]
				a++
				arr[c] = arr[a]
				c++

				if last <= c {
					for b < bufEnd {
						arr[a] = arr[b]
						a++
						arr[b] = arr[a]
						b++
					}

					arr[a] = arr[b]
					arr[b] = t
					return
				}

				if arr[c] >= 0 {
					break
				}
			}
		}
	}
}

func (s *SuffixSorter) ssMergeBackward(pa, first, middle, last, buf, depth int) {
	arr := s.sa
	bufEnd := buf + last - middle - 1
	s.ssBlockSwap(buf, middle, last-middle)
	x := 0
	var p1, p2 int

	if arr[bufEnd] < 0 {
		p1 = pa + ^arr[bufEnd]
		x |= 1
	} else {
		p1 = pa + arr[bufEnd]
	}

	if arr[middle-1] < 0 {
		p2 = pa + ^arr[middle-1]
		x |= 2
	} else {
		p2 = pa + arr[middle-1]
	}

	a := last - 1
	b := bufEnd
	c := middle - 1
	t := arr[a]

	for {
		if r := s.ssCompare3(p1, p2, depth); r > 0 {
			if x&1 != 0 {
				for {
					arr[a] = arr[b]
					a--
					arr[b] = arr[a]
					b--

					if arr[b] >= 0 {
						break
					}
				}

				x ^= 1
			}

			arr[a] = arr[b]
			a--

			if b <= buf {
				arr[buf] = t
				break
			}

			arr[b] = arr[a]
			b--

			if arr[b] < 0 {
				p1 = pa + ^arr[b]
				x |= 1
			} else {
				p1 = pa + arr[b]
			}
		} else if r < 0 {
			if x&2 != 0 {
				for {
					arr[a] = arr[c]
					a--
					arr[c] = arr[a]
					c--

					if arr[c] >= 0 {
						break
					}
				}

				x ^= 2
			}

			arr[a] = arr[c]
			a--
			arr[c] = arr[a]
			c--

			if c < first {
				for buf < b {
					arr[a] = arr[b]
					a--
					arr[b] = arr[a]
					b--
				}

				arr[a] = arr[b]
				arr[b] = t
				break
			}

			if arr[c] < 0 {
				p2 = pa + ^arr[c]
				x |= 2
			} else {
				p2 = pa + arr[c]
			}
		} else {
			if x&1 != 0 {
				for {
					arr[a] = arr[b]
					a--
					arr[b] = arr[a]
					b--

					if arr[b] >= 0 {
						break
					}
				}

				x ^= 1
			}

			arr[a] = ^arr[b]
			a--

			if b <= buf {
				arr[buf] = t
				break
			}

			arr[b] = arr[a]
			b--

			if x&2 != 0 {
				for {
					arr[a] = arr[c]
					a--
					arr[c] = arr[a]
					c--

					if arr[c] >= 0 {
						break
					}
				}

				x ^= 2
			}

			arr[a] = arr[c]
			a--
			arr[c] = arr[a]
			c--

			if c < first {
				for buf < b {
					arr[a] = arr[b]
					a--
					arr[b] = arr[a]
					b--
				}

				arr[a] = arr[b]
				arr[b] = t
				break
			}

			if arr[b] < 0 {
				p1 = pa + ^arr[b]
				x |= 1
			} else {
				p1 = pa + arr[b]
			}

			if arr[c] < 0 {
				p2 = pa + ^arr[c]
				x |= 2
			} else {
				p2 = pa + arr[c]
			}
		}
	}
}

func (s *SuffixSorter) ssInsertionSort(pa, first, last, depth int) {
	arr := s.sa

	for i := last - 2; i >= first; i-- {
		t := pa + arr[i]
		j := i + 1
		var r int

		for r = s.ssCompare3(t, pa+arr[j], depth); r > 0; {
			for {
				arr[j-1] = arr[j]
				j++

				if j >= last || arr[j] >= 0 {
					break
				}
			}

			if j >= last {
				break
			}

			r = s.ssCompare3(t, pa+arr[j], depth)
		}

		if r == 0 {
			arr[j] = ^arr[j]
		}

		arr[j-1] = t - pa
	}
}

func (s *SuffixSorter) ssMultiKeyIntroSort(pa, first, last, depth int) {
	limit := ilg(last - first)
	x := 0

	for {
		if last-first <= ssInsertionSortThreshold {
			if last-first > 1 {
				s.ssInsertionSort(pa, first, last, depth)
			}

			se := s.ssStack.pop()

			if se == nil {
				return
			}

			first = se.a
			last = se.b
			depth = se.c
			limit = se.d
			continue
		}

		idx := depth

		// buf1 can only replace s.buffer when the index is guaranteed to be
		// positive or zero (never in a pattern like s.buffer[...-1])
		buf1 := s.buffer[idx:]
		buf2 := s.sa[pa:]

		if limit == 0 {
			s.ssHeapSort(idx, pa, first, last-first)
		}

		limit--
		var a int

		if limit < 0 {
			v := buf1[buf2[s.sa[first]]]

			for a = first + 1; a < last; a++ {
				if x = buf1[buf2[s.sa[a]]]; x != v {
					if a-first > 1 {
						break
					}

					v = x
					first = a
				}
			}

			if s.buffer[idx+buf2[s.sa[first]]-1] < v {
				first = s.ssPartition(pa, first, a, depth)
			}

			if a-first <= last-a {
				if a-first > 1 {
					s.ssStack.push(a, last, depth, -1, 0)
					last = a
					depth++
					limit = ilg(a - first)
				} else {
					first = a
					limit = -1
				}
			} else {
				if last-a > 1 {
					s.ssStack.push(first, a, depth+1, ilg(a-first), 0)
					first = a
					limit = -1
				} else {
					last = a
					depth++
					limit = ilg(a - first)
				}
			}

			continue
		}

		// choose pivot
		a = s.ssPivot(idx, pa, first, last)
		v := buf1[buf2[s.sa[a]]]
		s.sa[a], s.sa[first] = s.sa[first], s.sa[a]
		b := first + 1

		// partition
		for b < last {
			if x = buf1[buf2[s.sa[b]]]; x != v {
				break
			}

			b++
		}

		a = b

		if a < last && x < v {
			b++

			for b < last {
				if x = buf1[buf2[s.sa[b]]]; x > v {
					break
				}

				if x == v {
					s.sa[a], s.sa[b] = s.sa[b], s.sa[a]
					a++
				}

				b++
			}
		}

		c := last - 1

		for c > b {
			if x = buf1[buf2[s.sa[c]]]; x != v {
				break
			}

			c--
		}

		d := c

		if b < d && x > v {
			c--

			for c > b {
				if x = buf1[buf2[s.sa[c]]]; x < v {
					break
				}

				if x == v {
					s.sa[c], s.sa[d] = s.sa[d], s.sa[c]
					d--
				}

				c--
			}
		}

		for b < c {
			s.sa[b], s.sa[c] = s.sa[c], s.sa[b]
			b++

			for b < c {
				if x = buf1[buf2[s.sa[b]]]; x > v {
					break
				}

				if x == v {
					s.sa[a], s.sa[b] = s.sa[b], s.sa[a]
					a++
				}

				b++
			}

			c--

			for c > b {
				if x = buf1[buf2[s.sa[c]]]; x < v {
					break
				}

				if x == v {
					s.sa[c], s.sa[d] = s.sa[d], s.sa[c]
					d--
				}

				c--
			}
		}

		if a <= d {
			c = b - 1
			sl := a - first
			t := b - a

			if sl > t {
				sl = t
			}

			for e, f := first, b-sl; sl > 0; sl-- {
				s.sa[e], s.sa[f] = s.sa[f], s.sa[e]
				e++
				f++
			}

			sl = d - c
			t = last - d - 1

			if sl > t {
				sl = t
			}

			for e, f := b, last-sl; sl > 0; sl-- {
				s.sa[e], s.sa[f] = s.sa[f], s.sa[e]
				e++
				f++
			}

			a = first + (b - a)
			c = last - (d - c)

			if v <= s.buffer[idx+buf2[s.sa[a]]-1] {
				b = a
			} else {
				b = s.ssPartition(pa, a, c, depth)
			}

			if a-first <= last-c {
				if last-c <= c-b {
					s.ssStack.push(b, c, depth+1, ilg(c-b), 0)
					s.ssStack.push(c, last, depth, limit, 0)
					last = a
				} else if a-first <= c-b {
					s.ssStack.push(c, last, depth, limit, 0)
					s.ssStack.push(b, c, depth+1, ilg(c-b), 0)
					last = a
				} else {
					s.ssStack.push(c, last, depth, limit, 0)
					s.ssStack.push(first, a, depth, limit, 0)
					first = b
					last = c
					depth++
					limit = ilg(c - b)
				}
			} else {
				if a-first <= c-b {
					s.ssStack.push(b, c, depth+1, ilg(c-b), 0)
					s.ssStack.push(first, a, depth, limit, 0)
					first = c
				} else if last-c <= c-b {
					s.ssStack.push(first, a, depth, limit, 0)
					s.ssStack.push(b, c, depth+1, ilg(c-b), 0)
					first = c
				} else {
					s.ssStack.push(first, a, depth, limit, 0)
					s.ssStack.push(c, last, depth, limit, 0)
					first = b
					last = c
					depth++
					limit = ilg(c - b)
				}
			}
		} else {
			if s.buffer[idx+buf2[s.sa[first]]-1] < v {
				first = s.ssPartition(pa, first, last, depth)
				limit = ilg(last - first)
			} else {
				limit++
			}

			depth++
		}
	}
}

func (s *SuffixSorter) ssPivot(td, pa, first, last int) int {
	t := last - first
	middle := first + (t >> 1)
	buf0 := s.buffer[td:]
	buf1 := s.sa[pa:]

	if t <= 512 {
		if t <= 32 {
			return s.ssMedian3(buf0, buf1, first, middle, last-1)
		}

		return s.ssMedian5(buf0, buf1, first, first+(t>>2), middle, last-1-(t>>2), last-1)
	}

	t >>= 3
	first = s.ssMedian3(buf0, buf1, first, first+t, first+(t<<1))
	middle = s.ssMedian3(buf0, buf1, middle-t, middle, middle+t)
	last = s.ssMedian3(buf0, buf1, last-1-(t<<1), last-1-t, last-1)
	return s.ssMedian3(buf0, buf1, first, middle, last)
}

func (s *SuffixSorter) ssMedian5(buf0, buf1 []int, v1, v2, v3, v4, v5 int) int {
	if buf0[buf1[s.sa[v2]]] > buf0[buf1[s.sa[v3]]] {
		v2, v3 = v3, v2
	}

	if buf0[buf1[s.sa[v4]]] > buf0[buf1[s.sa[v5]]] {
		v4, v5 = v5, v4
	}

	if buf0[buf1[s.sa[v2]]] > buf0[buf1[s.sa[v4]]] {
		v2, v4 = v4, v2
		v3, v5 = v5, v3
	}

	if buf0[buf1[s.sa[v1]]] > buf0[buf1[s.sa[v3]]] {
		v1, v3 = v3, v1
	}

	if buf0[buf1[s.sa[v1]]] > buf0[buf1[s.sa[v4]]] {
		v1, v4 = v4, v1
		v3, v5 = v5, v3
	}

	if buf0[buf1[s.sa[v3]]] > buf0[buf1[s.sa[v4]]] {
		return v4
	}

	return v3
}

func (s *SuffixSorter) ssMedian3(buf0, buf1 []int, v1, v2, v3 int) int {
	if buf0[buf1[s.sa[v1]]] > buf0[buf1[s.sa[v2]]] {
		v1, v2 = v2, v1
	}

	if buf0[buf1[s.sa[v2]]] > buf0[buf1[s.sa[v3]]] {
		if buf0[buf1[s.sa[v1]]] > buf0[buf1[s.sa[v3]]] {
			return v1
		}

		return v3
	}

	return v2
}

func (s *SuffixSorter) ssPartition(pa, first, last, depth int) int {
	buf1 := s.sa
	buf2 := s.sa[pa:]
	a := first - 1
	b := last
	d := depth - 1

	for {
		a++

		for a < b && buf2[buf1[a]]+d >= buf2[buf1[a]+1] {
			buf1[a] = ^buf1[a]
			a++
		}

		b--

		for b > a && buf2[buf1[b]]+d < buf2[buf1[b]+1] {
			b--
		}

		if b <= a {
			break
		}

		buf1[a], buf1[b] = ^buf1[b], buf1[a]
	}

	if first < a {
		buf1[first] = ^buf1[first]
	}

	return a
}

func (s *SuffixSorter) ssHeapSort(idx, pa, saIdx, size int) {
	m := size

	if size&1 == 0 {
		m--

		if s.buffer[idx+s.sa[pa+s.sa[saIdx+(m>>1)]]] < s.buffer[idx+s.sa[pa+s.sa[saIdx+m]]] {
			s.sa[saIdx+(m>>1)], s.sa[saIdx+m] = s.sa[saIdx+m], s.sa[saIdx+(m>>1)]
		}
	}

	buf1 := s.buffer[idx:]
	buf2 := s.sa[pa:]
	buf3 := s.sa[saIdx:]

	for i := (m >> 1) - 1; i >= 0; i-- {
		s.ssFixDown(buf1, buf2, buf3, i, m)
	}

	if size&1 == 0 {
		s.sa[saIdx], s.sa[saIdx+m] = s.sa[saIdx+m], s.sa[saIdx]
		s.ssFixDown(buf1, buf2, buf3, 0, m)
	}

	for i := m - 1; i > 0; i-- {
		t := s.sa[saIdx]
		s.sa[saIdx] = s.sa[saIdx+i]
		s.ssFixDown(buf1, buf2, buf3, 0, i)
		s.sa[saIdx+i] = t
	}
}

func (s *SuffixSorter) ssFixDown(buf1, buf2, buf3 []int, i, size int) {
	v := buf3[i]
	c := buf1[buf2[v]]
	j := (i << 1) + 1

	for j < size {
		k := j
		j++
		d := buf1[buf2[buf3[k]]]
		e := buf1[buf2[buf3[j]]]

		if d < e {
			k = j
			d = e
		}

		if d <= c {
			break
		}

		buf3[i] = buf3[k]
		i = k
		j = (i << 1) + 1
	}

	buf3[i] = v
}
