// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package entropy_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/critterlabs/critterd/entropy"
)

var testSeed = [32]byte{
	0x01, 0x02, 0x03, 0x04, 0x05, 0x06, 0x07, 0x08,
	0x11, 0x12, 0x13, 0x14, 0x15, 0x16, 0x17, 0x18,
	0x21, 0x22, 0x23, 0x24, 0x25, 0x26, 0x27, 0x28,
	0x31, 0x32, 0x33, 0x34, 0x35, 0x36, 0x37, 0x38,
}

// repeated draws with the same context must still differ
func TestDrawsAdvance(t *testing.T) {

	source := entropy.NewSeededSource(testSeed)

	context := []byte("same context")
	first := source.Random16(context)
	second := source.Random16(context)

	assert.NotEqual(t, first, second, "consecutive draws repeated")
}

// the same seed must reproduce the same sequence
func TestSeededSequenceIsReproducible(t *testing.T) {

	s1 := entropy.NewSeededSource(testSeed)
	s2 := entropy.NewSeededSource(testSeed)

	contexts := [][]byte{
		[]byte("one"),
		[]byte("two"),
		[]byte("three"),
	}
	for i, context := range contexts {
		assert.Equal(t, s1.Random16(context), s2.Random16(context), "draw %d diverged", i)
	}
}

// the context must influence the draw
func TestContextIsMixedIn(t *testing.T) {

	s1 := entropy.NewSeededSource(testSeed)
	s2 := entropy.NewSeededSource(testSeed)

	// same seed, same nonce, different context
	assert.NotEqual(t, s1.Random16([]byte("alpha")), s2.Random16([]byte("beta")), "context ignored")
}

// different seeds must diverge
func TestSeedIsMixedIn(t *testing.T) {

	otherSeed := testSeed
	otherSeed[0] ^= 0xff

	s1 := entropy.NewSeededSource(testSeed)
	s2 := entropy.NewSeededSource(otherSeed)

	context := []byte("context")
	assert.NotEqual(t, s1.Random16(context), s2.Random16(context), "seed ignored")
}

// system seeded sources must not repeat each other
func TestNewSource(t *testing.T) {

	s1, err := entropy.NewSource()
	assert.Nil(t, err, "source error")

	s2, err := entropy.NewSource()
	assert.Nil(t, err, "source error")

	context := []byte("context")
	assert.NotEqual(t, s1.Random16(context), s2.Random16(context), "sources repeated")
}
