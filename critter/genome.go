// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package critter - the critter record and its genome
//
// A critter is identified by a monotonically assigned index and
// carries a fixed length genome that never changes after it is
// registered.
package critter

import (
	"encoding/hex"

	"github.com/critterlabs/critterd/fault"
)

// GenomeLength - number of bytes in a genome
const GenomeLength = 16

// Genome - the immutable genetic payload of a critter
type Genome [GenomeLength]byte

// GenomeFromBytes - convert a stored byte form to a genome
func GenomeFromBytes(buffer []byte) (Genome, error) {
	if GenomeLength != len(buffer) {
		return Genome{}, fault.InvalidGenomeLength
	}
	g := Genome{}
	copy(g[:], buffer)
	return g, nil
}

// GenomeFromHexString - convert a hex string to a genome
func GenomeFromHexString(s string) (Genome, error) {
	if hex.EncodedLen(GenomeLength) != len(s) {
		return Genome{}, fault.InvalidGenomeLength
	}
	g := Genome{}
	if _, err := hex.Decode(g[:], []byte(s)); nil != err {
		return Genome{}, fault.InvalidGenomeLength
	}
	return g, nil
}

// Crossbreed - mix two parent genomes under an entropy selector
//
// each selector bit picks the corresponding bit from parent a when
// set, from parent b when clear
func Crossbreed(selector Genome, a Genome, b Genome) Genome {
	child := Genome{}
	for i := 0; i < GenomeLength; i += 1 {
		child[i] = selector[i]&a[i] | ^selector[i]&b[i]
	}
	return child
}

// Bytes - genome as a byte slice for storage
func (g Genome) Bytes() []byte {
	return g[:]
}

// String - hexadecimal form
func (g Genome) String() string {
	return hex.EncodeToString(g[:])
}

// MarshalText - convert a genome to its hexadecimal JSON form
func (g Genome) MarshalText() ([]byte, error) {
	buffer := make([]byte, hex.EncodedLen(GenomeLength))
	hex.Encode(buffer, g[:])
	return buffer, nil
}

// UnmarshalText - convert from the hexadecimal JSON form
func (g *Genome) UnmarshalText(s []byte) error {
	decoded, err := GenomeFromHexString(string(s))
	if nil != err {
		return err
	}
	*g = decoded
	return nil
}
