// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"fmt"
	"io"
	"os"

	"github.com/urfave/cli"
)

type metadata struct {
	connect string
	verbose bool
	e       io.Writer
	w       io.Writer
}

// set by the linker: go build -ldflags "-X main.version=M.N" ./...
var version = "zero" // do not change this value

func main() {

	app := cli.NewApp()
	app.Name = "critter-cli"
	// app.Usage = ""
	app.Version = version
	app.HideVersion = true

	app.Writer = os.Stdout
	app.ErrWriter = os.Stderr

	app.Flags = []cli.Flag{
		cli.BoolFlag{
			Name:  "verbose, v",
			Usage: " verbose result",
		},
		cli.StringFlag{
			Name:  "connect, c",
			Value: "",
			Usage: "*critterd host/IP and port, `HOST:PORT`",
		},
	}
	app.Commands = []cli.Command{
		{
			Name:      "create",
			Usage:     "register a brand new critter",
			ArgsUsage: "\n   (* = required)",
			Flags: []cli.Flag{
				cli.StringFlag{
					Name:  "owner, o",
					Value: "",
					Usage: "*owner `ACCOUNT`",
				},
			},
			Action: runCreate,
		},
		{
			Name:      "breed",
			Usage:     "derive a new critter from two owned parents",
			ArgsUsage: "\n   (* = required)",
			Flags: []cli.Flag{
				cli.StringFlag{
					Name:  "owner, o",
					Value: "",
					Usage: "*owner `ACCOUNT`",
				},
				cli.Uint64Flag{
					Name:  "parent-a, a",
					Value: 0,
					Usage: "*first parent `ID`",
				},
				cli.Uint64Flag{
					Name:  "parent-b, b",
					Value: 0,
					Usage: "*second parent `ID`",
				},
			},
			Action: runBreed,
		},
		{
			Name:      "transfer",
			Usage:     "transfer a critter to another account",
			ArgsUsage: "\n   (* = required)",
			Flags: []cli.Flag{
				cli.StringFlag{
					Name:  "owner, o",
					Value: "",
					Usage: "*current owner `ACCOUNT`",
				},
				cli.Uint64Flag{
					Name:  "id, i",
					Value: 0,
					Usage: "*critter `ID`",
				},
				cli.StringFlag{
					Name:  "receiver, r",
					Value: "",
					Usage: "*account to receive the critter `ACCOUNT`",
				},
			},
			Action: runTransfer,
		},
		{
			Name:      "sell",
			Usage:     "list a critter on the market, or cancel its listing",
			ArgsUsage: "\n   (* = required)",
			Flags: []cli.Flag{
				cli.StringFlag{
					Name:  "owner, o",
					Value: "",
					Usage: "*current owner `ACCOUNT`",
				},
				cli.Uint64Flag{
					Name:  "id, i",
					Value: 0,
					Usage: "*critter `ID`",
				},
				cli.Uint64Flag{
					Name:  "price, p",
					Value: 0,
					Usage: " asking price `UNITS`",
				},
				cli.BoolFlag{
					Name:  "cancel, x",
					Usage: " cancel an existing listing",
				},
			},
			Action: runSell,
		},
		{
			Name:      "buy",
			Usage:     "purchase a listed critter at its quoted price",
			ArgsUsage: "\n   (* = required)",
			Flags: []cli.Flag{
				cli.StringFlag{
					Name:  "buyer, b",
					Value: "",
					Usage: "*buying `ACCOUNT`",
				},
				cli.Uint64Flag{
					Name:  "id, i",
					Value: 0,
					Usage: "*critter `ID`",
				},
			},
			Action: runBuy,
		},
		{
			Name:      "show",
			Usage:     "display one critter record",
			ArgsUsage: "\n   (* = required)",
			Flags: []cli.Flag{
				cli.Uint64Flag{
					Name:  "id, i",
					Value: 0,
					Usage: "*critter `ID`",
				},
			},
			Action: runShow,
		},
		{
			Name:      "owned",
			Usage:     "list critters owned",
			ArgsUsage: "\n   (* = required)",
			Flags: []cli.Flag{
				cli.StringFlag{
					Name:  "owner, o",
					Value: "",
					Usage: "*owner `ACCOUNT`",
				},
				cli.Uint64Flag{
					Name:  "start, s",
					Value: 0,
					Usage: " start point `COUNT`",
				},
				cli.IntFlag{
					Name:  "count, n",
					Value: 20,
					Usage: " maximum records to output `COUNT`",
				},
			},
			Action: runOwned,
		},
		{
			Name:      "listings",
			Usage:     "list critters currently for sale",
			ArgsUsage: "\n   (* = required)",
			Flags: []cli.Flag{
				cli.Uint64Flag{
					Name:  "start, s",
					Value: 0,
					Usage: " start point `COUNT`",
				},
				cli.IntFlag{
					Name:  "count, n",
					Value: 20,
					Usage: " maximum records to output `COUNT`",
				},
			},
			Action: runListings,
		},
		{
			Name:      "quote",
			Usage:     "current asking price of a critter",
			ArgsUsage: "\n   (* = required)",
			Flags: []cli.Flag{
				cli.Uint64Flag{
					Name:  "id, i",
					Value: 0,
					Usage: "*critter `ID`",
				},
			},
			Action: runQuote,
		},
		{
			Name:      "balance",
			Usage:     "free and reserved funds of an account",
			ArgsUsage: "\n   (* = required)",
			Flags: []cli.Flag{
				cli.StringFlag{
					Name:  "owner, o",
					Value: "",
					Usage: "*owner `ACCOUNT`",
				},
			},
			Action: runBalance,
		},
		{
			Name:   "count",
			Usage:  "total number of registered critters",
			Action: runCount,
		},
		{
			Name:   "info",
			Usage:  "display critterd status",
			Action: runInfo,
		},
		{
			Name:  "version",
			Usage: "display critter-cli version",
			Action: func(c *cli.Context) error {
				fmt.Fprintf(c.App.Writer, "%s\n", version)
				return nil
			},
		},
	}

	// check the connection parameters
	app.Before = func(c *cli.Context) error {

		e := c.App.ErrWriter
		w := c.App.Writer
		verbose := c.GlobalBool("verbose")

		// to suppress the connect requirement for certain commands
		command := c.Args().Get(0)
		if "version" == command || "help" == command || "" == command {
			return nil
		}

		connect := c.GlobalString("connect")
		if "" == connect {
			connect = os.Getenv("CRITTERD_CONNECT")
		}
		if "" == connect {
			return fmt.Errorf("connect is required, use --connect or CRITTERD_CONNECT")
		}

		if verbose {
			fmt.Fprintf(e, "connect: %q\n", connect)
		}

		c.App.Metadata["config"] = &metadata{
			connect: connect,
			verbose: verbose,
			e:       e,
			w:       w,
		}

		return nil
	}

	err := app.Run(os.Args)
	if nil != err {
		fmt.Fprintf(app.ErrWriter, "terminated with error: %s\n", err)
		os.Exit(1)
	}
}
