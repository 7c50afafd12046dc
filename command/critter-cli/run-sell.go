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

func runSell(c *cli.Context) error {

	m := c.App.Metadata["config"].(*metadata)

	owner, err := checkAccount("owner", c.String("owner"))
	if nil != err {
		return err
	}

	id, err := checkCritterId(c.Uint64("id"))
	if nil != err {
		return err
	}

	cancel := c.Bool("cancel")
	price := c.Uint64("price")

	// a listing needs a price, a cancellation must not have one
	var asking *uint64
	switch {
	case cancel && 0 != price:
		return fmt.Errorf("cannot combine price: %d with cancel", price)
	case cancel:
		// nil asking price
	case 0 == price:
		return fmt.Errorf("price is required, or use cancel")
	default:
		asking = &price
	}

	if m.verbose {
		fmt.Fprintf(m.e, "owner: %s\n", owner)
		fmt.Fprintf(m.e, "id: %d\n", id)
		if cancel {
			fmt.Fprintf(m.e, "cancel listing\n")
		} else {
			fmt.Fprintf(m.e, "price: %d\n", price)
		}
	}

	client, err := rpccalls.NewClient(m.connect, m.verbose, m.e)
	if nil != err {
		return err
	}
	defer client.Close()

	sellConfig := &rpccalls.SellData{
		Owner: owner,
		ID:    id,
		Price: asking,
	}

	response, err := client.Sell(sellConfig)
	if nil != err {
		return err
	}

	printJson(m.w, response)

	return nil
}
