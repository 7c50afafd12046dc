// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package entropy - entropy for genome derivation
//
// The registry asks the source for 16 bytes whenever a genome or a
// breeding selector is needed. A deterministic generator keyed by a
// seed and a strictly increasing nonce keeps every draw distinct even
// for identical contexts, while a fixed seed makes the whole sequence
// reproducible for tests.
package entropy

import (
	"crypto/rand"
	"encoding/binary"

	"golang.org/x/crypto/blake2b"

	"github.com/bitmark-inc/logger"

	"github.com/critterlabs/critterd/counter"
)

// Length - number of bytes in one entropy payload
const Length = 16

// number of bytes in a generator seed
const seedLength = 32

// Source - supplier of entropy payloads
//
// the context ties a draw to its originating operation, two draws
// with the same context still differ because the source advances an
// internal nonce
type Source interface {
	Random16(context []byte) [Length]byte
}

type generator struct {
	seed  [seedLength]byte
	nonce counter.Counter
}

// NewSource - a source seeded from the system random generator
func NewSource() (Source, error) {
	g := &generator{}
	if _, err := rand.Read(g.seed[:]); nil != err {
		return nil, err
	}
	return g, nil
}

// NewSeededSource - a deterministic source for a known seed
//
// only for tests and local chains, every instance with the same seed
// yields the same sequence of draws
func NewSeededSource(seed [seedLength]byte) Source {
	return &generator{
		seed: seed,
	}
}

// Random16 - derive the next entropy payload for a context
func (g *generator) Random16(context []byte) [Length]byte {

	nonce := make([]byte, 8)
	binary.BigEndian.PutUint64(nonce, g.nonce.Increment())

	h, err := blake2b.New(Length, nil)
	logger.PanicIfError("entropy.Random16", err)

	h.Write(g.seed[:])
	h.Write(nonce)
	h.Write(context)

	result := [Length]byte{}
	copy(result[:], h.Sum(nil))
	return result
}
