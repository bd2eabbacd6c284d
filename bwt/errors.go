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

package bwt

import "errors"

// ErrEqualBuffers is returned when src and dst alias the same backing array.
var ErrEqualBuffers = errors.New("bwt: input and output buffers cannot be the same")

// ErrInvalidIndex is returned by Inverse when primaryIndex is out of the
// range the inverse transform requires: 0 <= primaryIndex <= n, and
// primaryIndex must be nonzero whenever n > 0. Mirrors
// inverse_bw_transform's "bad arguments" return code.
var ErrInvalidIndex = errors.New("bwt: primary index out of range")

// ErrAllocation is returned when dst cannot hold len(src) bytes. The
// original inverse transform distinguishes this from a bad-argument error
// because its scratch array is allocated on demand and can fail to
// allocate; this port has no such allocation (scratch state lives on the
// BWT value, not on the call stack), but a caller-supplied dst that is too
// short is the Go-shaped equivalent failure, so the same distinguishing
// error is kept rather than folded into ErrInvalidIndex.
var ErrAllocation = errors.New("bwt: destination buffer is too small")
