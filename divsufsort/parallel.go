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

import "sync"

// ssTask is one (c0,c1)-bucket's worth of type B* substrings still needing a
// multikey-introsort + block-merge pass. The bucket boundaries (first, last)
// are computed sequentially by sortTypeBstar since last of one bucket feeds
// first of the next; once the full task list is known, the tasks are
// independent of each other and can run concurrently.
type ssTask struct {
	first, last int
	lastSuffix  bool
}

// dispatchSSSort runs every task's ssSort, sequentially if jobs <= 1 or there
// is at most one task, otherwise across a fixed pool of workers each given a
// contiguous, disjoint run of tasks up front (computeJobsPerTask decides how
// many tasks each worker takes) — the one critical section is the WaitGroup
// that joins the pool, not a lock held during sorting. Every task's
// [first,last) range of sa is disjoint from every other task's, so
// concurrent writes to sa never overlap; but ssSort also writes into the
// scratch region sa[bufOffset, bufOffset+bufSize) during its block merges
// (substringsort.go's ssSwapMerge), so that region is split into one
// disjoint sub-range per worker (splitBuffer) instead of handed to every
// worker unchanged — a worker with no scratch room left just falls back to
// carving its buffer from the tail of whatever task it is sorting, the same
// degenerate path ssSort already takes whenever bufSize is too small.
func (s *SuffixSorter) dispatchSSSort(tasks []ssTask, pa, bufOffset, bufSize, n, jobs int) {
	if len(tasks) == 0 {
		return
	}

	if jobs <= 1 || len(tasks) == 1 {
		for _, t := range tasks {
			s.ssSort(pa, t.first, t.last, bufOffset, bufSize, 2, n, t.lastSuffix)
		}

		return
	}

	if jobs > len(tasks) {
		jobs = len(tasks)
	}

	tasksPerWorker := computeJobsPerTask(jobs, len(tasks))
	workerBufOffset, workerBufSize := splitBuffer(bufOffset, bufSize, jobs)
	var wg sync.WaitGroup
	start := 0

	for i := 0; i < jobs; i++ {
		count := tasksPerWorker[i]

		if count == 0 {
			continue
		}

		batch := tasks[start : start+count]
		start += count
		buf := workerBufOffset[i]
		bufN := workerBufSize[i]
		wg.Add(1)

		go func(batch []ssTask, buf, bufN int) {
			defer wg.Done()
			w := s.ssWorkerClone()

			for _, t := range batch {
				w.ssSort(pa, t.first, t.last, buf, bufN, 2, n, t.lastSuffix)
			}
		}(batch, buf, bufN)
	}

	wg.Wait()
}

// splitBuffer divides the scratch range [bufOffset, bufOffset+bufSize) into
// workers disjoint, contiguous sub-ranges, returning each worker's starting
// offset and size. Sizes are spread as evenly as possible with the
// remainder front-loaded, mirroring computeJobsPerTask's split.
func splitBuffer(bufOffset, bufSize, workers int) ([]int, []int) {
	offsets := make([]int, workers)
	sizes := computeJobsPerTask(workers, bufSize)
	at := bufOffset

	for i := 0; i < workers; i++ {
		offsets[i] = at
		at += sizes[i]
	}

	return offsets, sizes
}

// ssWorkerClone returns a SuffixSorter sharing this one's sa and buffer
// slices (so writes land in the same backing arrays) but owning its own
// ssStack/mergeStack, the only mutable state ssSort touches besides sa
// itself. trStack, the buckets and jobs are irrelevant to ssSort and left
// zero.
func (s *SuffixSorter) ssWorkerClone() *SuffixSorter {
	return &SuffixSorter{
		sa:         s.sa,
		buffer:     s.buffer,
		ssStack:    newStack(ssMisortStackSize),
		mergeStack: newStack(ssSMergeStackSize),
	}
}

// computeJobsPerTask spreads units indivisible work items as evenly as
// possible across workers goroutines, front-loading the remainder onto the
// first workers.
func computeJobsPerTask(workers, units int) []int {
	perWorker := make([]int, workers)

	if workers == 0 {
		return perWorker
	}

	if units <= workers {
		for i := 0; i < units; i++ {
			perWorker[i] = 1
		}

		return perWorker
	}

	base := units / workers
	remainder := units % workers

	for i := range perWorker {
		perWorker[i] = base

		if i < remainder {
			perWorker[i]++
		}
	}

	return perWorker
}
