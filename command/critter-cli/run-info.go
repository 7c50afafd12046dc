// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"github.com/urfave/cli"

	"github.com/critterlabs/critterd/command/critter-cli/rpccalls"
)

func runInfo(c *cli.Context) error {

	m := c.App.Metadata["config"].(*metadata)

	client, err := rpccalls.NewClient(m.connect, m.verbose, m.e)
	if nil != err {
		return err
	}
	defer client.Close()

	response, err := client.GetInfo()
	if nil != err {
		// try the generic decode if the version does not match
		compat, err2 := client.GetInfoCompat()
		if nil != err2 {
			return err
		}
		printJson(m.w, compat)
		return nil
	}

	printJson(m.w, response)

	return nil
}
