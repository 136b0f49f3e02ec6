// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"fmt"

	"github.com/urfave/cli"

	"github.com/oneyesoneno/js-algorand-sdk/account"
)

func runAdd(c *cli.Context) error {

	m := c.App.Metadata["config"].(*metadata)

	name, err := checkName(c.GlobalString("identity"))
	if nil != err {
		return err
	}

	description, err := checkDescription(c.String("description"))
	if nil != err {
		return err
	}

	phrase := c.String("mnemonic")
	new := c.Bool("new")
	acc := c.String("account")

	if m.verbose {
		fmt.Fprintf(m.e, "identity: %s\n", name)
		fmt.Fprintf(m.e, "description: %s\n", description)
		fmt.Fprintf(m.e, "account: %s\n", acc)
		fmt.Fprintf(m.e, "new: %t\n", new)
	}

	switch {
	case "" == acc && ("" == phrase) == new:
		var privateKey *account.PrivateKey
		if new {
			privateKey, err = account.NewPrivateKey()
		} else {
			privateKey, err = checkMnemonic(phrase)
		}
		if nil != err {
			return err
		}

		password := c.GlobalString("password")
		if "" == password {
			password, err = promptNewPassword()
			if nil != err {
				return err
			}
		}

		err = m.identities.AddIdentity(name, description, privateKey, password)
		if nil != err {
			return err
		}

	case "" != acc && "" == phrase && !new:
		err = m.identities.AddReceiveOnlyIdentity(name, description, acc)
		if nil != err {
			return err
		}

	default:
		return ErrIncompatibleOptions
	}

	m.log.Infof("added identity: %q", name)

	// require identities update
	m.save = true
	return nil
}

func runList(c *cli.Context) error {

	m := c.App.Metadata["config"].(*metadata)

	for _, name := range m.identities.Names() {
		identity := m.identities.Identities[name]
		flag := "--"
		if len(identity.Salt) > 0 {
			flag = "SK"
		}
		if name == m.identities.DefaultIdentity {
			flag += "*"
		} else {
			flag += " "
		}
		fmt.Fprintf(m.w, "%s %-20s  %s  %q\n", flag, name, identity.Account, identity.Description)
	}

	return nil
}
