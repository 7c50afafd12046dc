// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package node

import (
	"time"

	"golang.org/x/time/rate"

	"github.com/bitmark-inc/logger"

	"github.com/critterlabs/critterd/counter"
	"github.com/critterlabs/critterd/fault"
	"github.com/critterlabs/critterd/mode"
	"github.com/critterlabs/critterd/registry"
	"github.com/critterlabs/critterd/rpc/ratelimit"
)

const (
	rateLimitNode = 200
	rateBurstNode = 100
)

// Node - type for RPC calls
type Node struct {
	Log      *logger.L
	Limiter  *rate.Limiter
	Start    time.Time
	Version  string
	Registry registry.Registry
	counter  *counter.Counter
}

func New(log *logger.L, start time.Time, version string, rpcCount *counter.Counter, reg registry.Registry) *Node {
	return &Node{
		Log:      log,
		Limiter:  rate.NewLimiter(rateLimitNode, rateBurstNode),
		Start:    start,
		Version:  version,
		Registry: reg,
		counter:  rpcCount,
	}
}

// ---

// InfoArguments - empty arguments for info request
type InfoArguments struct{}

// InfoReply - results from info request
type InfoReply struct {
	Chain    string `json:"chain"`
	Mode     string `json:"mode"`
	Critters uint64 `json:"critters"`
	RPCs     uint64 `json:"rpcs"`
	Version  string `json:"version"`
	Uptime   string `json:"uptime"`
}

// Info - return some information about this node
// only enough for clients to determine node state
func (node *Node) Info(_ *InfoArguments, reply *InfoReply) error {

	if err := ratelimit.Limit(node.Limiter); nil != err {
		return err
	}

	if nil == node.Registry {
		return fault.DatabaseIsNotSet
	}

	reply.Chain = mode.ChainName()
	reply.Mode = mode.String()
	reply.Critters = node.Registry.Count()
	reply.RPCs = node.counter.Uint64()
	reply.Version = node.Version
	reply.Uptime = time.Since(node.Start).String()
	return nil
}
