// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package registry_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/critterlabs/critterd/critter"
	"github.com/critterlabs/critterd/entropy"
	"github.com/critterlabs/critterd/fault"
	"github.com/critterlabs/critterd/ownership"
	"github.com/critterlabs/critterd/registry"
	"github.com/critterlabs/critterd/storage"
)

func TestCreateFirstID(t *testing.T) {
	setup(t)
	defer teardown(t)

	alice := makeAccount(0x11)
	reg := newRegistry(fillGenome(0xc5))

	info, err := reg.Create(alice)
	assert.NoError(t, err, "create error")
	assert.Equal(t, uint64(1), info.ID, "wrong first id")
	assert.Equal(t, alice, info.Owner, "wrong owner in notification")
	assert.Equal(t, critter.Genome(fillGenome(0xc5)), info.Genome, "wrong genome in notification")

	assert.Equal(t, uint64(1), reg.Count(), "wrong count after first create")

	genome, err := reg.Get(1)
	assert.NoError(t, err, "genome lookup error")
	assert.Equal(t, info.Genome, genome, "stored genome differs from notification")

	owners := ownership.New(storage.Pool.Owners, storage.Pool.OwnerIndex)
	owner, err := owners.OwnerOf(1)
	assert.NoError(t, err, "owner lookup error")
	assert.Equal(t, alice, owner, "wrong owner")
}

func TestCreateSequentialIDs(t *testing.T) {
	setup(t)
	defer teardown(t)

	alice := makeAccount(0x11)
	reg := newRegistry(fillGenome(0x01), fillGenome(0x02), fillGenome(0x03))

	for expected := uint64(1); expected <= 3; expected += 1 {
		info, err := reg.Create(alice)
		assert.NoError(t, err, "create error")
		assert.Equal(t, expected, info.ID, "wrong id")
	}

	assert.Equal(t, uint64(3), reg.Count(), "wrong count")
}

func TestCreateCountOverflow(t *testing.T) {
	setup(t)
	defer teardown(t)

	alice := makeAccount(0x11)
	reg := newRegistry(fillGenome(0x01))

	// force the allocation counter to the representable maximum
	trx, err := storage.NewDBTransaction()
	assert.NoError(t, err, "transaction begin error")
	trx.PutN(storage.Pool.Counts, []byte("critters"), math.MaxUint64)
	err = trx.Commit()
	assert.NoError(t, err, "transaction commit error")

	_, err = reg.Create(alice)
	assert.Equal(t, fault.CountOverflow, err, "wrong error for exhausted id space")

	_, err = reg.Get(math.MaxUint64)
	assert.Equal(t, fault.InvalidIndex, err, "critter registered by failed create")
}

func TestGetUnknown(t *testing.T) {
	setup(t)
	defer teardown(t)

	reg := newRegistry()

	_, err := reg.Get(9)
	assert.Equal(t, fault.InvalidIndex, err, "wrong error for unknown critter")
	assert.Equal(t, uint64(0), reg.Count(), "wrong count for empty registry")
}

func TestBreed(t *testing.T) {
	setup(t)
	defer teardown(t)

	alice := makeAccount(0x11)

	// parents 0xff and 0x00, selector 0xaa picks parent a bits where
	// set so the child must come out 0xaa
	reg := newRegistry(fillGenome(0xff), fillGenome(0x00), fillGenome(0xaa))

	_, err := reg.Create(alice)
	assert.NoError(t, err, "create error")
	_, err = reg.Create(alice)
	assert.NoError(t, err, "create error")

	info, err := reg.Breed(alice, 1, 2)
	assert.NoError(t, err, "breed error")
	assert.Equal(t, uint64(3), info.ID, "wrong child id")
	assert.Equal(t, alice, info.Owner, "wrong child owner")
	assert.Equal(t, critter.Genome(fillGenome(0xaa)), info.Genome, "wrong child genome")

	assert.Equal(t, uint64(3), reg.Count(), "wrong count after breed")

	genome, err := reg.Get(3)
	assert.NoError(t, err, "genome lookup error")
	assert.Equal(t, info.Genome, genome, "stored genome differs from notification")
}

func TestBreedSelectsPerBit(t *testing.T) {
	setup(t)
	defer teardown(t)

	alice := makeAccount(0x11)

	// selector 0xf0: high nibble from parent a, low nibble from parent b
	reg := newRegistry(fillGenome(0x12), fillGenome(0x34), fillGenome(0xf0))

	_, err := reg.Create(alice)
	assert.NoError(t, err, "create error")
	_, err = reg.Create(alice)
	assert.NoError(t, err, "create error")

	info, err := reg.Breed(alice, 1, 2)
	assert.NoError(t, err, "breed error")
	assert.Equal(t, critter.Genome(fillGenome(0x14)), info.Genome, "wrong child genome")
}

func TestBreedSameParent(t *testing.T) {
	setup(t)
	defer teardown(t)

	alice := makeAccount(0x11)
	reg := newRegistry()

	// rejected before any allocation, even for unknown ids
	_, err := reg.Breed(alice, 5, 5)
	assert.Equal(t, fault.SameParentIndex, err, "wrong error for same parent")
	assert.Equal(t, uint64(0), reg.Count(), "count changed by rejected breed")
}

func TestBreedUnknownParent(t *testing.T) {
	setup(t)
	defer teardown(t)

	alice := makeAccount(0x11)
	reg := newRegistry(fillGenome(0x01))

	_, err := reg.Create(alice)
	assert.NoError(t, err, "create error")

	_, err = reg.Breed(alice, 1, 9)
	assert.Equal(t, fault.InvalidIndex, err, "wrong error for unknown parent")

	_, err = reg.Breed(alice, 9, 1)
	assert.Equal(t, fault.InvalidIndex, err, "wrong error for unknown parent")

	assert.Equal(t, uint64(1), reg.Count(), "count changed by rejected breed")
}

func TestBreedNotOwner(t *testing.T) {
	setup(t)
	defer teardown(t)

	alice := makeAccount(0x11)
	bob := makeAccount(0x22)
	reg := newRegistry(fillGenome(0x01), fillGenome(0x02))

	_, err := reg.Create(alice)
	assert.NoError(t, err, "create error")
	_, err = reg.Create(bob)
	assert.NoError(t, err, "create error")

	// both parents must belong to the caller
	_, err = reg.Breed(alice, 1, 2)
	assert.Equal(t, fault.NotOwner, err, "wrong error for foreign parent")

	_, err = reg.Breed(alice, 2, 1)
	assert.Equal(t, fault.NotOwner, err, "wrong error for foreign parent")

	assert.Equal(t, uint64(2), reg.Count(), "count changed by rejected breed")
}

func TestCreateEntropyVaries(t *testing.T) {
	setup(t)
	defer teardown(t)

	alice := makeAccount(0x11)

	source, err := entropy.NewSource()
	assert.NoError(t, err, "entropy source error")

	owners := ownership.New(storage.Pool.Owners, storage.Pool.OwnerIndex)
	reg := registry.New(storage.Pool.Critters, storage.Pool.Counts, owners, source)

	first, err := reg.Create(alice)
	assert.NoError(t, err, "create error")
	second, err := reg.Create(alice)
	assert.NoError(t, err, "create error")

	assert.NotEqual(t, first.Genome, second.Genome, "consecutive creates drew the same genome")
}
