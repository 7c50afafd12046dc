// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package rpc_test

import (
	"fmt"
	"math/rand"
	"os"
	"path"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/critterlabs/critterd/fault"
	"github.com/critterlabs/critterd/rpc"
	"github.com/critterlabs/critterd/rpc/fixtures"
	"github.com/critterlabs/critterd/rpc/listeners"
	"github.com/critterlabs/critterd/rpc/server"
)

func TestInitialise(t *testing.T) {
	fixtures.SetupTestLogger()
	defer fixtures.TeardownTestLogger()

	wd, _ := os.Getwd()
	fixtureDir := path.Join(wd, "fixtures")
	cer := fixtures.Certificate(fixtureDir)
	key := fixtures.Key(fixtureDir)

	port := 30000 + rand.Intn(30000)
	listen := fmt.Sprintf("127.0.0.1:%d", port)

	rpcConfig := listeners.RPCConfiguration{
		MaximumConnections: 100,
		Bandwidth:          10000000,
		Listen:             []string{listen},
		Certificate:        cer,
		PrivateKey:         key,
	}

	httpsConfig := listeners.HTTPSConfiguration{
		MaximumConnections: 100,
		Listen:             []string{listen},
		Certificate:        cer,
		PrivateKey:         key,
		Allow:              nil,
	}

	err := rpc.Initialise(&rpcConfig, &httpsConfig, "1.0", server.Handles{})
	assert.Nil(t, err, "wrong Initialise")

	err = rpc.Finalise()
	assert.Nil(t, err, "wrong Finalise")
}

func TestInitialiseWhenTwice(t *testing.T) {
	fixtures.SetupTestLogger()
	defer fixtures.TeardownTestLogger()

	wd, _ := os.Getwd()
	fixtureDir := path.Join(wd, "fixtures")
	cer := fixtures.Certificate(fixtureDir)
	key := fixtures.Key(fixtureDir)

	port := 30000 + rand.Intn(30000)
	listen := fmt.Sprintf("127.0.0.1:%d", port)

	rpcConfig := listeners.RPCConfiguration{
		MaximumConnections: 100,
		Bandwidth:          10000000,
		Listen:             []string{listen},
		Certificate:        cer,
		PrivateKey:         key,
	}

	httpsConfig := listeners.HTTPSConfiguration{
		MaximumConnections: 100,
		Listen:             []string{listen},
		Certificate:        cer,
		PrivateKey:         key,
		Allow:              nil,
	}

	err := rpc.Initialise(&rpcConfig, &httpsConfig, "1.0", server.Handles{})
	assert.Nil(t, err, "wrong Initialise")
	defer rpc.Finalise()

	err = rpc.Initialise(&rpcConfig, &httpsConfig, "1.0", server.Handles{})
	assert.NotNil(t, err, "wrong Initialise")
	assert.Equal(t, fault.AlreadyInitialised, err, "wrong second Initialise")
}

func TestInitialiseWhenCertificateError(t *testing.T) {
	fixtures.SetupTestLogger()
	defer fixtures.TeardownTestLogger()

	port := 30000 + rand.Intn(30000)
	listen := fmt.Sprintf("127.0.0.1:%d", port)

	rpcConfig := listeners.RPCConfiguration{
		MaximumConnections: 100,
		Bandwidth:          10000000,
		Listen:             []string{listen},
		Certificate:        "",
		PrivateKey:         "",
	}

	httpsConfig := listeners.HTTPSConfiguration{}

	err := rpc.Initialise(&rpcConfig, &httpsConfig, "1.0", server.Handles{})
	assert.NotNil(t, err, "wrong Initialise")
}

func TestInitialiseWhenRPCListenerError(t *testing.T) {
	fixtures.SetupTestLogger()
	defer fixtures.TeardownTestLogger()

	wd, _ := os.Getwd()
	fixtureDir := path.Join(wd, "fixtures")
	cer := fixtures.Certificate(fixtureDir)
	key := fixtures.Key(fixtureDir)

	rpcConfig := listeners.RPCConfiguration{
		MaximumConnections: 0,
		Bandwidth:          10000000,
		Listen:             []string{"127.0.0.1:65501"},
		Certificate:        cer,
		PrivateKey:         key,
	}

	httpsConfig := listeners.HTTPSConfiguration{}

	err := rpc.Initialise(&rpcConfig, &httpsConfig, "1.0", server.Handles{})
	assert.NotNil(t, err, "wrong Initialise")
	assert.Equal(t, fault.MissingParameters, err, "wrong error")
}

func TestFinaliseWhenNotInitialised(t *testing.T) {
	fixtures.SetupTestLogger()
	defer fixtures.TeardownTestLogger()

	err := rpc.Finalise()
	assert.NotNil(t, err, "wrong Finalise")
	assert.Equal(t, fault.NotInitialised, err, "wrong error")
}
