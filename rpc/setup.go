// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package rpc

import (
	netrpc "net/rpc"
	"sync"
	"time"

	"github.com/bitmark-inc/logger"

	"github.com/critterlabs/critterd/counter"
	"github.com/critterlabs/critterd/fault"
	"github.com/critterlabs/critterd/rpc/certificate"
	"github.com/critterlabs/critterd/rpc/handler"
	"github.com/critterlabs/critterd/rpc/listeners"
	"github.com/critterlabs/critterd/rpc/server"
)

const (
	tlsName = "client_rpc"
)

// shared count of active RPC connections for both listeners
var connectionCountRPC counter.Counter

// globals
type rpcData struct {
	sync.RWMutex // to allow locking

	log *logger.L // logger

	// set once during initialise
	initialised bool
}

// global data
var globalData rpcData

// Initialise - start the RPC listeners
func Initialise(rpcConfiguration *listeners.RPCConfiguration,
	httpsConfiguration *listeners.HTTPSConfiguration,
	version string,
	handles server.Handles,
) error {

	globalData.Lock()
	defer globalData.Unlock()

	// no need to Start if already started
	if globalData.initialised {
		return fault.AlreadyInitialised
	}

	log := logger.New("rpc")
	globalData.log = log
	log.Info("starting…")

	tlsConfig, certificateFingerprint, err := certificate.Get(log, tlsName, rpcConfiguration.Certificate, rpcConfiguration.PrivateKey)
	if nil != err {
		return err
	}

	// servers
	s := server.Create(log, version, &connectionCountRPC, handles)

	rpcListener, err := listeners.NewRPC(
		rpcConfiguration,
		log,
		&connectionCountRPC,
		s,
		tlsConfig,
		certificateFingerprint,
	)
	if nil != err {
		return err
	}
	err = rpcListener.Serve()
	if nil != err {
		return err
	}

	err = initialiseHTTPS(httpsConfiguration, s, version)
	if nil != err {
		return err
	}

	// all data initialised
	globalData.initialised = true

	return nil
}

// Finalise - stop all background tasks
func Finalise() error {

	if !globalData.initialised {
		return fault.NotInitialised
	}

	globalData.log.Info("shutting down…")
	globalData.log.Flush()

	// finally...
	globalData.initialised = false

	globalData.log.Info("finished")
	globalData.log.Flush()

	return nil
}

// start the HTTPS gateway if it is configured
func initialiseHTTPS(configuration *listeners.HTTPSConfiguration, s *netrpc.Server, version string) error {

	log := globalData.log

	if 0 == len(configuration.Listen) {
		log.Infof("disable: %s", "http_rpc")
		return nil
	}

	tlsConfig, fingerprint, err := certificate.Get(log, "http_rpc", configuration.Certificate, configuration.PrivateKey)
	if nil != err {
		return err
	}

	log.Infof("http_rpc: SHA3-256 fingerprint: %x", fingerprint)

	hdlr := handler.New(log, s, time.Now(), version, configuration.MaximumConnections)

	httpsListener, err := listeners.NewHTTPS(
		configuration,
		log,
		tlsConfig,
		hdlr,
	)
	if nil != err {
		return err
	}

	return httpsListener.Serve()
}
