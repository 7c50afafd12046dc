// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package server

import (
	"net/rpc"
	"time"

	"github.com/bitmark-inc/logger"

	"github.com/critterlabs/critterd/counter"
	"github.com/critterlabs/critterd/funds"
	"github.com/critterlabs/critterd/market"
	"github.com/critterlabs/critterd/mode"
	"github.com/critterlabs/critterd/ownership"
	"github.com/critterlabs/critterd/registry"
	"github.com/critterlabs/critterd/rpc/balance"
	"github.com/critterlabs/critterd/rpc/critters"
	"github.com/critterlabs/critterd/rpc/node"
	"github.com/critterlabs/critterd/rpc/owner"
	"github.com/critterlabs/critterd/rpc/trade"
)

// Handles - the components the RPC services operate on
type Handles struct {
	Registry  registry.Registry
	Ownership ownership.Ownership
	Market    market.Market
	Ledger    funds.Ledger
}

// Create - a JSON RPC server with all services registered
func Create(log *logger.L, version string, rpcCount *counter.Counter, handles Handles) *rpc.Server {

	start := time.Now().UTC()

	server := rpc.NewServer()

	_ = server.Register(critters.New(log, mode.Is, mode.IsTesting, handles.Registry, handles.Ownership, handles.Market))
	_ = server.Register(owner.New(log, mode.Is, mode.IsTesting, handles.Ownership))
	_ = server.Register(trade.New(log, mode.Is, mode.IsTesting, handles.Market))
	_ = server.Register(balance.New(log, handles.Ledger))
	_ = server.Register(node.New(log, start, version, rpcCount, handles.Registry))

	return server
}
