// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package node_test

import (
	"testing"
	"time"

	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"

	"github.com/bitmark-inc/logger"

	"github.com/critterlabs/critterd/chain"
	"github.com/critterlabs/critterd/counter"
	"github.com/critterlabs/critterd/fault"
	"github.com/critterlabs/critterd/mode"
	"github.com/critterlabs/critterd/rpc/fixtures"
	"github.com/critterlabs/critterd/rpc/mocks"
	"github.com/critterlabs/critterd/rpc/node"
)

func TestNodeInfo(t *testing.T) {
	fixtures.SetupTestLogger()
	defer fixtures.TeardownTestLogger()

	ctl := gomock.NewController(t)
	defer ctl.Finish()

	_ = mode.Initialise(chain.Testing)
	defer mode.Finalise()

	reg := mocks.NewMockRegistry(ctl)

	now := time.Now()
	c := counter.Counter(5)

	n := node.New(
		logger.New(fixtures.LogCategory),
		now,
		"100",
		&c,
		reg,
	)

	reg.EXPECT().Count().Return(uint64(17)).Times(1)

	var reply node.InfoReply
	err := n.Info(&node.InfoArguments{}, &reply)
	assert.Nil(t, err, "wrong Info")
	assert.Equal(t, chain.Testing, reply.Chain, "wrong chain")
	assert.Equal(t, mode.Starting.String(), reply.Mode, "wrong mode")
	assert.Equal(t, uint64(17), reply.Critters, "wrong critter count")
	assert.Equal(t, c.Uint64(), reply.RPCs, "wrong connection count")
	assert.Equal(t, n.Version, reply.Version, "wrong version")
	assert.NotEmpty(t, reply.Uptime, "wrong uptime")
}

func TestNodeInfoWhenNoRegistry(t *testing.T) {
	fixtures.SetupTestLogger()
	defer fixtures.TeardownTestLogger()

	now := time.Now()
	c := counter.Counter(0)

	n := node.New(
		logger.New(fixtures.LogCategory),
		now,
		"100",
		&c,
		nil,
	)

	var reply node.InfoReply
	err := n.Info(&node.InfoArguments{}, &reply)
	assert.NotNil(t, err, "wrong Info")
	assert.Equal(t, fault.DatabaseIsNotSet, err, "wrong error")
}
