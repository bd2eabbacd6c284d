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

import (
	"math/rand"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestForwardKnownStrings(t *testing.T) {
	cases := []struct {
		text     string
		wantBWT  string
		wantPidx int
	}{
		{"banana", "nnbaaa", 4},
		{"aaaa", "aaaa", 4},
	}

	for _, c := range cases {
		dst := make([]byte, len(c.text))
		pidx, err := NewBWT().Forward([]byte(c.text), dst)
		require.NoError(t, err)
		assert.Equal(t, c.wantBWT, string(dst))
		assert.Equal(t, c.wantPidx, pidx)
	}
}

func TestForwardEmptyAndSingle(t *testing.T) {
	dst := make([]byte, 0)
	pidx, err := NewBWT().Forward(nil, dst)
	require.NoError(t, err)
	assert.Equal(t, 0, pidx)

	dst1 := make([]byte, 1)
	pidx1, err := NewBWT().Forward([]byte("x"), dst1)
	require.NoError(t, err)
	assert.Equal(t, 1, pidx1)
	assert.Equal(t, byte('x'), dst1[0])
}

func TestForwardRejectsAliasedBuffers(t *testing.T) {
	buf := []byte("banana")
	_, err := NewBWT().Forward(buf, buf)
	assert.ErrorIs(t, err, ErrEqualBuffers)
}

func TestForwardRejectsShortDestination(t *testing.T) {
	_, err := NewBWT().Forward([]byte("banana"), make([]byte, 2))
	assert.ErrorIs(t, err, ErrAllocation)
}

func TestInverseRejectsBadIndex(t *testing.T) {
	err := NewBWT().Inverse([]byte("nnbaaa"), make([]byte, 6), 0)
	assert.ErrorIs(t, err, ErrInvalidIndex)

	err = NewBWT().Inverse([]byte("nnbaaa"), make([]byte, 6), 7)
	assert.ErrorIs(t, err, ErrInvalidIndex)
}

func TestRoundTripKnownStrings(t *testing.T) {
	texts := []string{
		"banana",
		"mississippi",
		"abracadabra",
		"aaaa",
		"SIX.MIXED.PIXIES.SIFT.SIXTY.PIXIE.DUST.BOXES",
	}

	for _, text := range texts {
		transform := NewBWT()
		fwd := make([]byte, len(text))
		pidx, err := transform.Forward([]byte(text), fwd)
		require.NoError(t, err)

		back := make([]byte, len(text))
		require.NoError(t, transform.Inverse(fwd, back, pidx))
		assert.Equal(t, text, string(back), "round trip mismatch")
	}
}

func TestRoundTripRandom(t *testing.T) {
	rnd := rand.New(rand.NewSource(time.Now().UnixNano()))
	transform := NewBWT()

	for trial := 0; trial < 30; trial++ {
		n := 2 + rnd.Intn(600)
		buf := make([]byte, n)

		for i := range buf {
			buf[i] = byte(65 + rnd.Intn(4+trial%20))
		}

		fwd := make([]byte, n)
		pidx, err := transform.Forward(buf, fwd)
		require.NoError(t, err)

		back := make([]byte, n)
		require.NoError(t, transform.Inverse(fwd, back, pidx))
		assert.Equal(t, buf, back)
	}
}
