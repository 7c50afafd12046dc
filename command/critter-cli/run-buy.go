// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"fmt"

	"github.com/urfave/cli"

	"github.com/critterlabs/critterd/command/critter-cli/rpccalls"
)

func runBuy(c *cli.Context) error {

	m := c.App.Metadata["config"].(*metadata)

	buyer, err := checkAccount("buyer", c.String("buyer"))
	if nil != err {
		return err
	}

	id, err := checkCritterId(c.Uint64("id"))
	if nil != err {
		return err
	}

	if m.verbose {
		fmt.Fprintf(m.e, "buyer: %s\n", buyer)
		fmt.Fprintf(m.e, "id: %d\n", id)
	}

	client, err := rpccalls.NewClient(m.connect, m.verbose, m.e)
	if nil != err {
		return err
	}
	defer client.Close()

	buyConfig := &rpccalls.BuyData{
		Buyer: buyer,
		ID:    id,
	}

	response, err := client.Buy(buyConfig)
	if nil != err {
		return err
	}

	printJson(m.w, response)

	return nil
}
