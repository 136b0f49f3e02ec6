// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"fmt"
	"io"
	"os"

	"github.com/bitmark-inc/exitwithstatus"
	"github.com/bitmark-inc/logger"
	"github.com/urfave/cli"

	"github.com/oneyesoneno/js-algorand-sdk/command/algo-cli/encrypt"
	"github.com/oneyesoneno/js-algorand-sdk/configuration"
	"github.com/oneyesoneno/js-algorand-sdk/fault"
	"github.com/oneyesoneno/js-algorand-sdk/storage"
)

type metadata struct {
	file       string
	config     *configuration.Configuration
	identities *encrypt.Identities
	log        *logger.L
	save       bool
	verbose    bool
	e          io.Writer
	w          io.Writer
}

// set by the linker: go build -ldflags "-X main.version=M.N" ./...
var version = "zero" // do not change this value

const defaultConfigFile = "${XDG_CONFIG_HOME}/algo-cli/algo-cli.conf"

// these commands run without reading the configuration
var standalone = map[string]bool{
	"":         true,
	"help":     true,
	"h":        true,
	"version":  true,
	"generate": true,
	"recover":  true,
	"address":  true,
	"txid":     true,
	"decode":   true,
	"verify":   true,
}

func main() {
	defer exitwithstatus.Handler()

	app := cli.NewApp()
	app.Name = "algo-cli"
	app.Usage = "create, sign and inspect payment transactions and auction bids"
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
			Name:  "config, c",
			Value: defaultConfigFile,
			Usage: " configuration `FILE`",
		},
		cli.StringFlag{
			Name:  "identity, i",
			Value: "",
			Usage: " identity `NAME` [default identity]",
		},
		cli.StringFlag{
			Name:  "password, p",
			Value: "",
			Usage: " identity `PASSWORD`",
		},
	}
	app.Commands = []cli.Command{
		{
			Name:      "generate",
			Usage:     "generate key pair, will not store in identities file",
			ArgsUsage: "\n   (* = required)",
			Action:    runGenerate,
		},
		{
			Name:      "recover",
			Usage:     "recover key pair from a 25 word mnemonic",
			ArgsUsage: "\n   (* = required)",
			Flags: []cli.Flag{
				cli.StringFlag{
					Name:  "mnemonic, m",
					Value: "",
					Usage: "*space separated `WORDS`",
				},
			},
			Action: runRecover,
		},
		{
			Name:      "address",
			Usage:     "display address from a public key, or check an address",
			ArgsUsage: "\n   (+ = select one)",
			Flags: []cli.Flag{
				cli.StringFlag{
					Name:  "publickey, k",
					Value: "",
					Usage: "+hex public `KEY`",
				},
				cli.StringFlag{
					Name:  "address, a",
					Value: "",
					Usage: "+`ADDRESS` to check",
				},
			},
			Action: runAddress,
		},
		{
			Name:      "add",
			Usage:     "add a new identity to the identities file",
			ArgsUsage: "\n   (* = required, + = select one)",
			Flags: []cli.Flag{
				cli.StringFlag{
					Name:  "description, d",
					Value: "",
					Usage: "*identity description `STRING`",
				},
				cli.StringFlag{
					Name:  "mnemonic, m",
					Value: "",
					Usage: "+using existing mnemonic `WORDS`",
				},
				cli.BoolFlag{
					Name:  "new, n",
					Usage: "+create a new random key",
				},
				cli.StringFlag{
					Name:  "account, a",
					Value: "",
					Usage: "+receive only `ADDRESS`",
				},
			},
			Action: runAdd,
		},
		{
			Name:   "list",
			Usage:  "list identities",
			Action: runList,
		},
		{
			Name:      "transfer",
			Usage:     "sign a payment transaction",
			ArgsUsage: "\n   (* = required)",
			Flags: []cli.Flag{
				cli.StringFlag{
					Name:  "receiver, r",
					Value: "",
					Usage: "*identity name or address to receive the payment `ACCOUNT`",
				},
				cli.Uint64Flag{
					Name:  "amount, a",
					Value: 0,
					Usage: " micro units to pay `NUMBER`",
				},
				cli.Uint64Flag{
					Name:  "fee, f",
					Value: 0,
					Usage: " fixed fee `NUMBER` (default: from fee_per_byte)",
				},
				cli.Uint64Flag{
					Name:  "first-round, F",
					Value: 0,
					Usage: "*first valid round `NUMBER`",
				},
				cli.Uint64Flag{
					Name:  "last-round, L",
					Value: 0,
					Usage: " last valid round `NUMBER` (default: first + valid_rounds)",
				},
				cli.StringFlag{
					Name:  "note, n",
					Value: "",
					Usage: " note `STRING`",
				},
				cli.StringFlag{
					Name:  "close, C",
					Value: "",
					Usage: " close remainder to `ACCOUNT`",
				},
			},
			Action: runTransfer,
		},
		{
			Name:      "bid",
			Usage:     "sign an auction bid",
			ArgsUsage: "\n   (* = required)",
			Flags: []cli.Flag{
				cli.StringFlag{
					Name:  "auction, A",
					Value: "",
					Usage: "*auction key identity name or address `ACCOUNT`",
				},
				cli.Uint64Flag{
					Name:  "auction-id, I",
					Value: 0,
					Usage: " auction `NUMBER`",
				},
				cli.Uint64Flag{
					Name:  "amount, a",
					Value: 0,
					Usage: " currency units offered `NUMBER`",
				},
				cli.Uint64Flag{
					Name:  "price, P",
					Value: 0,
					Usage: " maximum price `NUMBER`",
				},
				cli.Uint64Flag{
					Name:  "bid-id, b",
					Value: 0,
					Usage: " bid `NUMBER`",
				},
			},
			Action: runBid,
		},
		{
			Name:      "txid",
			Usage:     "display the identifier of a signed transaction or bid",
			ArgsUsage: "\n   (* = required)",
			Flags: []cli.Flag{
				cli.StringFlag{
					Name:  "transaction, t",
					Value: "",
					Usage: "*signed `HEX`",
				},
			},
			Action: runTxID,
		},
		{
			Name:      "decode",
			Usage:     "dump any msgpack value",
			ArgsUsage: "\n   (* = required)",
			Flags: []cli.Flag{
				cli.StringFlag{
					Name:  "transaction, t",
					Value: "",
					Usage: "*msgpack `HEX`",
				},
			},
			Action: runDecode,
		},
		{
			Name:      "verify",
			Usage:     "check the signature of a signed transaction or bid",
			ArgsUsage: "\n   (* = required)",
			Flags: []cli.Flag{
				cli.StringFlag{
					Name:  "transaction, t",
					Value: "",
					Usage: "*signed `HEX`",
				},
			},
			Action: runVerify,
		},
		{
			Name:      "history",
			Usage:     "list stored records of an account",
			ArgsUsage: "\n   (* = required)",
			Flags: []cli.Flag{
				cli.StringFlag{
					Name:  "owner, o",
					Value: "",
					Usage: " identity name or address `ACCOUNT` default is global identity",
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
			Action: runHistory,
		},
		{
			Name:  "version",
			Usage: "display algo-cli version",
			Action: func(c *cli.Context) error {
				fmt.Fprintf(c.App.Writer, "%s\n", version)
				return nil
			},
		},
	}

	app.Before = func(c *cli.Context) error {

		m := &metadata{
			verbose: c.GlobalBool("verbose"),
			e:       c.App.ErrWriter,
			w:       c.App.Writer,
		}
		c.App.Metadata["config"] = m

		if standalone[c.Args().Get(0)] {
			return nil
		}

		file, err := checkConfigFile(c.GlobalString("config"))
		if nil != err {
			return err
		}
		m.file = file

		if m.verbose {
			fmt.Fprintf(m.e, "reading config file: %s\n", file)
		}

		m.config, err = configuration.GetConfiguration(file)
		if nil != err {
			return err
		}

		err = logger.Initialise(logger.Configuration{
			Directory: m.config.Logging.Directory,
			File:      m.config.Logging.File,
			Size:      m.config.Logging.Size,
			Count:     m.config.Logging.Count,
			Console:   m.config.Logging.Console,
			Levels:    m.config.Logging.Levels,
		})
		if nil != err {
			return err
		}
		m.log = logger.New("main")
		err = fault.Initialise()
		if nil != err {
			return err
		}
		m.log.Infof("version: %s", version)
		m.log.Debugf("configuration: %+v", m.config)

		m.identities, err = encrypt.Load(m.config.Identities)
		if nil != err {
			return err
		}

		err = storage.Initialise(m.config.Database, storage.ReadWrite)
		if nil != err {
			m.log.Criticalf("storage initialise error: %s", err)
			return err
		}

		return nil
	}

	app.After = func(c *cli.Context) error {
		m, ok := c.App.Metadata["config"].(*metadata)
		if !ok || nil == m.log {
			return nil
		}
		defer logger.Finalise()
		defer fault.Finalise()
		defer storage.Finalise()

		if m.save {
			if m.verbose {
				fmt.Fprintf(m.e, "updating identities file: %s\n", m.config.Identities)
			}
			m.log.Infof("save identities: %s", m.config.Identities)
			err := m.identities.Save(m.config.Identities)
			if nil != err {
				m.log.Criticalf("save identities error: %s", err)
				return err
			}
		}
		m.log.Info("finished")
		return nil
	}

	err := app.Run(os.Args)
	if nil != err {
		exitwithstatus.Message("terminated with error: %s", err)
	}
}
