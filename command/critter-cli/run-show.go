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

func runShow(c *cli.Context) error {

	m := c.App.Metadata["config"].(*metadata)

	id, err := checkCritterId(c.Uint64("id"))
	if nil != err {
		return err
	}

	if m.verbose {
		fmt.Fprintf(m.e, "id: %d\n", id)
	}

	client, err := rpccalls.NewClient(m.connect, m.verbose, m.e)
	if nil != err {
		return err
	}
	defer client.Close()

	response, err := client.GetCritter(id)
	if nil != err {
		return err
	}

	printJson(m.w, response)

	return nil
}

func runQuote(c *cli.Context) error {

	m := c.App.Metadata["config"].(*metadata)

	id, err := checkCritterId(c.Uint64("id"))
	if nil != err {
		return err
	}

	if m.verbose {
		fmt.Fprintf(m.e, "id: %d\n", id)
	}

	client, err := rpccalls.NewClient(m.connect, m.verbose, m.e)
	if nil != err {
		return err
	}
	defer client.Close()

	response, err := client.GetQuote(id)
	if nil != err {
		return err
	}

	printJson(m.w, response)

	return nil
}

func runCount(c *cli.Context) error {

	m := c.App.Metadata["config"].(*metadata)

	client, err := rpccalls.NewClient(m.connect, m.verbose, m.e)
	if nil != err {
		return err
	}
	defer client.Close()

	response, err := client.GetCount()
	if nil != err {
		return err
	}

	printJson(m.w, response)

	return nil
}
