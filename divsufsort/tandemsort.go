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

// Tandem-repeat sorter: ranks the type B* suffixes by depth-doubling,
// partitioning each still-unresolved group with a ternary introsort over an
// ever-increasing comparison depth (isad) until every group has a unique
// rank. Groups the work budget declines to sort are counted as unsorted and
// revisited in the next round, at twice the depth.
func (s *SuffixSorter) trSort(n, depth int) {
	arr := s.sa
	budget := newTRBudget(ilg(n)*2/3, n)

	for isad := n + depth; arr[0] > -n; isad += isad - n {
		first := 0
		skip := 0
		unsorted := 0

		for {
			t := arr[first]

			if t < 0 {
				first -= t
				skip += t
			} else {
				if skip != 0 {
					arr[first+skip] = skip
					skip = 0
				}

				last := arr[n+t] + 1

				if last-first > 1 {
					budget.count = 0
					s.trIntroSort(n, isad, first, last, budget)

					if budget.count != 0 {
						unsorted += budget.count
					} else {
						skip = first - last
					}
				} else if last-first == 1 {
					skip = -1
				}

				first = last
			}

			if first >= n {
				break
			}
		}

		if skip != 0 {
			arr[first+skip] = skip
		}

		if unsorted == 0 {
			break
		}
	}
}

func (s *SuffixSorter) trPartition(isad, first, middle, last, v int) (int, int) {
	x := 0
	b := middle
	arr := s.sa[isad:]

	for b < last {
		if x = arr[s.sa[b]]; x != v {
			break
		}

		b++
	}

	a := b

	if a < last && x < v {
		b++

		for b < last {
			if x = arr[s.sa[b]]; x > v {
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
		if x = arr[s.sa[c]]; x != v {
			break
		}

		c--
	}

	d := c

	if b < d && x > v {
		c--

		for c > b {
			if x = arr[s.sa[c]]; x < v {
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
			if x = arr[s.sa[b]]; x > v {
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
			if x = arr[s.sa[c]]; x < v {
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

		if sl > b-a {
			sl = b - a
		}

		for e, f := first, b-sl; sl > 0; sl-- {
			s.sa[e], s.sa[f] = s.sa[f], s.sa[e]
			e++
			f++
		}

		sl = d - c

		if sl >= last-d {
			sl = last - d - 1
		}

		for e, f := b, last-sl; sl > 0; sl-- {
			s.sa[e], s.sa[f] = s.sa[f], s.sa[e]
			e++
			f++
		}

		first += b - a
		last -= d - c
	}

	return first, last
}

func (s *SuffixSorter) trIntroSort(isa, isad, first, last int, budget *trBudget) {
	incr := isad - isa
	arr := s.sa
	limit := ilg(last - first)
	trlink := -1

	for {
		if limit < 0 {
			if limit == -1 {
				// tandem repeat partition
				a, b := s.trPartition(isad-incr, first, first, last, last-1)

				// update ranks
				if a < last {
					for c, v := first, a-1; c < a; c++ {
						arr[isa+arr[c]] = v
					}
				}

				if b < last {
					for c, v := a, b-1; c < b; c++ {
						arr[isa+arr[c]] = v
					}
				}

				// push
				if b-a > 1 {
					s.trStack.push(0, a, b, 0, 0)
					s.trStack.push(isad-incr, first, last, -2, trlink)
					trlink = s.trStack.size() - 2
				}

				if a-first <= last-b {
					if a-first > 1 {
						s.trStack.push(isad, b, last, ilg(last-b), trlink)
						last = a
						limit = ilg(a - first)
					} else if last-b > 1 {
						first = b
						limit = ilg(last - b)
					} else {
						se := s.trStack.pop()

						if se == nil {
							return
						}

						isad = se.a
						first = se.b
						last = se.c
						limit = se.d
						trlink = se.e
					}
				} else {
					if last-b > 1 {
						s.trStack.push(isad, first, a, ilg(a-first), trlink)
						first = b
						limit = ilg(last - b)
					} else if a-first > 1 {
						last = a
						limit = ilg(a - first)
					} else {
						se := s.trStack.pop()

						if se == nil {
							return
						}

						isad = se.a
						first = se.b
						last = se.c
						limit = se.d
						trlink = se.e
					}
				}
			} else if limit == -2 {
				// tandem repeat copy
				se := s.trStack.pop()

				if se.d == 0 {
					s.trCopy(isa, first, se.b, se.c, last, isad-isa)
				} else {
					if trlink >= 0 {
						s.trStack.get(trlink).d = -1
					}

					s.trPartialCopy(isa, first, se.b, se.c, last, isad-isa)
				}

				if se = s.trStack.pop(); se == nil {
					return
				}

				isad = se.a
				first = se.b
				last = se.c
				limit = se.d
				trlink = se.e
			} else {
				// sorted partition
				if arr[first] >= 0 {
					a := first

					for {
						arr[isa+arr[a]] = a
						a++

						if a >= last || arr[a] < 0 {
							break
						}
					}

					first = a
				}

				if first < last {
					a := first

					for {
						arr[a] = ^arr[a]
						a++

						if arr[a] >= 0 {
							break
						}
					}

					next := -1

					if arr[isa+arr[a]] != arr[isad+arr[a]] {
						next = ilg(a - first + 1)
					}

					a++

					if a < last {
						v := a - 1

						for b := first; b < a; b++ {
							arr[isa+arr[b]] = v
						}
					}

					// push
					if budget.check(a - first) {
						if a-first <= last-a {
							s.trStack.push(isad, a, last, -3, trlink)
							isad += incr
							last = a
							limit = next
						} else {
							if last-a > 1 {
								s.trStack.push(isad+incr, first, a, next, trlink)
								first = a
								limit = -3
							} else {
								isad += incr
								last = a
								limit = next
							}
						}
					} else {
						if trlink >= 0 {
							s.trStack.get(trlink).d = -1
						}

						if last-a > 1 {
							first = a
							limit = -3
						} else {
							se := s.trStack.pop()

							if se == nil {
								return
							}

							isad = se.a
							first = se.b
							last = se.c
							limit = se.d
							trlink = se.e
						}
					}
				} else {
					se := s.trStack.pop()

					if se == nil {
						return
					}

					isad = se.a
					first = se.b
					last = se.c
					limit = se.d
					trlink = se.e
				}
			}

			continue
		}

		if last-first <= trInsertionSortThreshold {
			s.trInsertionSort(isad, first, last)
			limit = -3
			continue
		}

		if limit == 0 {
			s.trHeapSort(isad, first, last-first)
			a := last - 1

			for first < a {
				b := a - 1
				x := arr[isad+arr[a]]

				for first <= b && arr[isad+arr[b]] == x {
					arr[b] = ^arr[b]
					b--
				}

				a = b
			}

			limit = -3
			continue
		}

		limit--

		// choose pivot
		pvt := trPivot(s.sa, isad, first, last)
		s.sa[first], s.sa[pvt] = s.sa[pvt], s.sa[first]

		v := arr[isad+arr[first]]

		// partition
		a, b := s.trPartition(isad, first, first+1, last, v)

		if last-first != b-a {
			next := -1

			if arr[isa+arr[a]] != v {
				next = ilg(b - a)
			}

			v = a - 1

			// update ranks
			for c := first; c < a; c++ {
				arr[isa+arr[c]] = v
			}

			if b < last {
				v = b - 1

				for c := a; c < b; c++ {
					arr[isa+arr[c]] = v
				}
			}

			// push
			if b-a > 1 && budget.check(b-a) {
				if a-first <= last-b {
					if last-b <= b-a {
						if a-first > 1 {
							s.trStack.push(isad+incr, a, b, next, trlink)
							s.trStack.push(isad, b, last, limit, trlink)
							last = a
						} else if last-b > 1 {
							s.trStack.push(isad+incr, a, b, next, trlink)
							first = b
						} else {
							isad += incr
							first = a
							last = b
							limit = next
						}
					} else if a-first <= b-a {
						if a-first > 1 {
							s.trStack.push(isad, b, last, limit, trlink)
							s.trStack.push(isad+incr, a, b, next, trlink)
							last = a
						} else {
							s.trStack.push(isad, b, last, limit, trlink)
							isad += incr
							first = a
							last = b
							limit = next
						}
					} else {
						s.trStack.push(isad, b, last, limit, trlink)
						s.trStack.push(isad, first, a, limit, trlink)
						isad += incr
						first = a
						last = b
						limit = next
					}
				} else {
					if a-first <= b-a {
						if last-b > 1 {
							s.trStack.push(isad+incr, a, b, next, trlink)
							s.trStack.push(isad, first, a, limit, trlink)
							first = b
						} else if a-first > 1 {
							s.trStack.push(isad+incr, a, b, next, trlink)
							last = a
						} else {
							isad += incr
							first = a
							last = b
							limit = next
						}
					} else if last-b <= b-a {
						if last-b > 1 {
							s.trStack.push(isad, first, a, limit, trlink)
							s.trStack.push(isad+incr, a, b, next, trlink)
							first = b
						} else {
							s.trStack.push(isad, first, a, limit, trlink)
							isad += incr
							first = a
							last = b
							limit = next
						}
					} else {
						s.trStack.push(isad, first, a, limit, trlink)
						s.trStack.push(isad, b, last, limit, trlink)
						isad += incr
						first = a
						last = b
						limit = next
					}
				}
			} else {
				if b-a > 1 && trlink >= 0 {
					s.trStack.get(trlink).d = -1
				}

				if a-first <= last-b {
					if a-first > 1 {
						s.trStack.push(isad, b, last, limit, trlink)
						last = a
					} else if last-b > 1 {
						first = b
					} else {
						se := s.trStack.pop()

						if se == nil {
							return
						}

						isad = se.a
						first = se.b
						last = se.c
						limit = se.d
						trlink = se.e
					}
				} else {
					if last-b > 1 {
						s.trStack.push(isad, first, a, limit, trlink)
						first = b
					} else if a-first > 1 {
						last = a
					} else {
						se := s.trStack.pop()

						if se == nil {
							return
						}

						isad = se.a
						first = se.b
						last = se.c
						limit = se.d
						trlink = se.e
					}
				}
			}
		} else {
			if budget.check(last - first) {
				limit = ilg(last - first)
				isad += incr
			} else {
				if trlink >= 0 {
					s.trStack.get(trlink).d = -1
				}

				se := s.trStack.pop()

				if se == nil {
					return
				}

				isad = se.a
				first = se.b
				last = se.c
				limit = se.d
				trlink = se.e
			}
		}
	}
}

func trPivot(buf1 []int, isad, first, last int) int {
	t := last - first
	middle := first + (t >> 1)
	buf2 := buf1[isad:]

	if t <= 512 {
		if t <= 32 {
			return trMedian3(buf1, buf2, first, middle, last-1)
		}

		t >>= 2
		return trMedian5(buf1, buf2, first, first+t, middle, last-1-t, last-1)
	}

	t >>= 3
	first = trMedian3(buf1, buf2, first, first+t, first+(t<<1))
	middle = trMedian3(buf1, buf2, middle-t, middle, middle+t)
	last = trMedian3(buf1, buf2, last-1-(t<<1), last-1-t, last-1)
	return trMedian3(buf1, buf2, first, middle, last)
}

func trMedian5(buf1, buf2 []int, v1, v2, v3, v4, v5 int) int {
	if buf2[buf1[v2]] > buf2[buf1[v3]] {
		v2, v3 = v3, v2
	}

	if buf2[buf1[v4]] > buf2[buf1[v5]] {
		v4, v5 = v5, v4
	}

	if buf2[buf1[v2]] > buf2[buf1[v4]] {
		v2, v4 = v4, v2
		v3, v5 = v5, v3
	}

	if buf2[buf1[v1]] > buf2[buf1[v3]] {
		v1, v3 = v3, v1
	}

	if buf2[buf1[v1]] > buf2[buf1[v4]] {
		v1, v4 = v4, v1
		v3, v5 = v5, v3
	}

	if buf2[buf1[v3]] > buf2[buf1[v4]] {
		return v4
	}

	return v3
}

func trMedian3(buf1, buf2 []int, v1, v2, v3 int) int {
	if buf2[buf1[v1]] > buf2[buf1[v2]] {
		v1, v2 = v2, v1
	}

	if buf2[buf1[v2]] > buf2[buf1[v3]] {
		if buf2[buf1[v1]] > buf2[buf1[v3]] {
			return v1
		}

		return v3
	}

	return v2
}

func (s *SuffixSorter) trHeapSort(isad, saIdx, size int) {
	arr := s.sa
	m := size

	if size&1 == 0 {
		m--

		if arr[isad+arr[saIdx+(m>>1)]] < arr[isad+arr[saIdx+m]] {
			s.sa[saIdx+(m>>1)], s.sa[saIdx+m] = s.sa[saIdx+m], s.sa[saIdx+(m>>1)]
		}
	}

	buf1 := s.sa[isad:]
	buf2 := s.sa[saIdx:]

	for i := (m >> 1) - 1; i >= 0; i-- {
		s.trFixDown(buf1, buf2, i, m)
	}

	if size&1 == 0 {
		s.sa[saIdx], s.sa[saIdx+m] = s.sa[saIdx+m], s.sa[saIdx]
		s.trFixDown(buf1, buf2, 0, m)
	}

	for i := m - 1; i > 0; i-- {
		t := arr[saIdx]
		arr[saIdx] = arr[saIdx+i]
		s.trFixDown(buf1, buf2, 0, i)
		arr[saIdx+i] = t
	}
}

func (s *SuffixSorter) trFixDown(buf1, buf2 []int, i, size int) {
	v := buf2[i]
	c := buf1[v]
	j := (i << 1) + 1

	for j < size {
		k := j
		j++
		d := buf1[buf2[k]]
		e := buf1[buf2[j]]

		if d < e {
			k = j
			d = e
		}

		if d <= c {
			break
		}

		buf2[i] = buf2[k]
		i = k
		j = (i << 1) + 1
	}

	buf2[i] = v
}

func (s *SuffixSorter) trInsertionSort(isad, first, last int) {
	buf1 := s.sa
	buf2 := s.sa[isad:]

	for a := first + 1; a < last; a++ {
		b := a - 1
		t := buf1[a]
		r := buf2[t] - buf2[buf1[b]]

		for r < 0 {
			for {
				buf1[b+1] = buf1[b]
				b--

				if b < first || buf1[b] >= 0 {
					break
				}
			}

			if b < first {
				break
			}

			r = buf2[t] - buf2[buf1[b]]
		}

		if r == 0 {
			buf1[b] = ^buf1[b]
		}

		buf1[b+1] = t
	}
}

func (s *SuffixSorter) trPartialCopy(isa, first, a, b, last, depth int) {
	buf1 := s.sa
	buf2 := s.sa[isa:]
	v := b - 1
	lastRank := -1
	newRank := -1
	d := a - 1

	for c := first; c <= d; c++ {
		sv := buf1[c] - depth

		if sv >= 0 && buf2[sv] == v {
			d++
			buf1[d] = sv
			rank := buf2[sv+depth]

			if lastRank != rank {
				lastRank = rank
				newRank = d
			}

			buf2[sv] = newRank
		}
	}

	lastRank = -1

	for e := d; first <= e; e-- {
		rank := buf2[buf1[e]]

		if lastRank != rank {
			lastRank = rank
			newRank = e
		}

		if newRank != rank {
			buf2[buf1[e]] = newRank
		}
	}

	lastRank = -1
	e := d + 1
	d = b

	for c := last - 1; d > e; c-- {
		sv := buf1[c] - depth

		if sv >= 0 && buf2[sv] == v {
			d--
			buf1[d] = sv
			rank := buf2[sv+depth]

			if lastRank != rank {
				lastRank = rank
				newRank = d
			}

			buf2[sv] = newRank
		}
	}
}

func (s *SuffixSorter) trCopy(isa, first, a, b, last, depth int) {
	buf1 := s.sa
	buf2 := s.sa[isa:]
	v := b - 1
	d := a - 1

	for c := first; c <= d; c++ {
		sv := buf1[c] - depth

		if sv >= 0 && buf2[sv] == v {
			d++
			buf1[d] = sv
			buf2[sv] = d
		}
	}

	e := d + 1
	d = b

	for c := last - 1; d > e; c-- {
		sv := buf1[c] - depth

		if sv >= 0 && buf2[sv] == v {
			d--
			buf1[d] = sv
			buf2[sv] = d
		}
	}
}
