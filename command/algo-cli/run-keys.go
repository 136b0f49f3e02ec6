// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"encoding/hex"
	"fmt"

	"github.com/urfave/cli"

	"github.com/oneyesoneno/js-algorand-sdk/account"
	"github.com/oneyesoneno/js-algorand-sdk/keypair"
)

func runGenerate(c *cli.Context) error {

	m := c.App.Metadata["config"].(*metadata)

	rawKeyPair, _, err := keypair.MakeRawKeyPair()
	if nil != err {
		return err
	}

	if m.verbose {
		fmt.Fprintf(m.e, "address: %s\n", rawKeyPair.Address)
	}

	return printJson(m.w, rawKeyPair)
}

func runRecover(c *cli.Context) error {

	m := c.App.Metadata["config"].(*metadata)

	privateKey, err := checkMnemonic(c.String("mnemonic"))
	if nil != err {
		return err
	}

	rawKeyPair, _, err := keypair.MakeRawKeyPairFromSeed(privateKey.Seed())
	if nil != err {
		return err
	}

	if m.verbose {
		fmt.Fprintf(m.e, "address: %s\n", rawKeyPair.Address)
	}

	return printJson(m.w, rawKeyPair)
}

func runAddress(c *cli.Context) error {

	m := c.App.Metadata["config"].(*metadata)

	publicKey := c.String("publickey")
	address := c.String("address")

	var a *account.Account
	var err error
	switch {
	case "" != publicKey && "" == address:
		a, err = checkPublicKey(publicKey)
	case "" == publicKey && "" != address:
		a, err = account.AccountFromString(address)
	case "" == publicKey && "" == address:
		err = ErrRequiredPublicKey
	default:
		err = ErrIncompatibleOptions
	}
	if nil != err {
		return err
	}

	if m.verbose {
		fmt.Fprintf(m.e, "publicKey: %x\n", a.PublicKeyBytes())
	}

	result := struct {
		PublicKey string `json:"public_key"`
		Address   string `json:"address"`
	}{
		PublicKey: hex.EncodeToString(a.PublicKeyBytes()),
		Address:   a.String(),
	}
	return printJson(m.w, result)
}
