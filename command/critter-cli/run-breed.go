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

func runBreed(c *cli.Context) error {

	m := c.App.Metadata["config"].(*metadata)

	owner, err := checkAccount("owner", c.String("owner"))
	if nil != err {
		return err
	}

	parentA, err := checkCritterId(c.Uint64("parent-a"))
	if nil != err {
		return fmt.Errorf("parent-a: %s", err)
	}

	parentB, err := checkCritterId(c.Uint64("parent-b"))
	if nil != err {
		return fmt.Errorf("parent-b: %s", err)
	}

	if m.verbose {
		fmt.Fprintf(m.e, "owner: %s\n", owner)
		fmt.Fprintf(m.e, "parentA: %d\n", parentA)
		fmt.Fprintf(m.e, "parentB: %d\n", parentB)
	}

	client, err := rpccalls.NewClient(m.connect, m.verbose, m.e)
	if nil != err {
		return err
	}
	defer client.Close()

	breedConfig := &rpccalls.BreedData{
		Owner:   owner,
		ParentA: parentA,
		ParentB: parentB,
	}

	response, err := client.Breed(breedConfig)
	if nil != err {
		return err
	}

	printJson(m.w, response)

	return nil
}
