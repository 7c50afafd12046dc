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

func runTransfer(c *cli.Context) error {

	m := c.App.Metadata["config"].(*metadata)

	owner, err := checkAccount("owner", c.String("owner"))
	if nil != err {
		return err
	}

	id, err := checkCritterId(c.Uint64("id"))
	if nil != err {
		return err
	}

	receiver, err := checkAccount("receiver", c.String("receiver"))
	if nil != err {
		return err
	}

	if m.verbose {
		fmt.Fprintf(m.e, "owner: %s\n", owner)
		fmt.Fprintf(m.e, "id: %d\n", id)
		fmt.Fprintf(m.e, "receiver: %s\n", receiver)
	}

	client, err := rpccalls.NewClient(m.connect, m.verbose, m.e)
	if nil != err {
		return err
	}
	defer client.Close()

	transferConfig := &rpccalls.TransferData{
		Owner:    owner,
		ID:       id,
		NewOwner: receiver,
	}

	response, err := client.Transfer(transferConfig)
	if nil != err {
		return err
	}

	printJson(m.w, response)

	return nil
}
