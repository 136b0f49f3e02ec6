// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"github.com/urfave/cli"

	"github.com/oneyesoneno/js-algorand-sdk/account"
	"github.com/oneyesoneno/js-algorand-sdk/storage"
	"github.com/oneyesoneno/js-algorand-sdk/transactionrecord"
)

// signedResult - output of the signing commands
type signedResult struct {
	ID     string                   `json:"id"`
	Kind   string                   `json:"kind"`
	Stored bool                     `json:"stored"`
	Signed transactionrecord.Packed `json:"signed"`
	Note   transactionrecord.Packed `json:"note,omitempty"`
}

// decrypt the private key of the selected identity, prompting for the
// password if it was not given on the command line
func getPrivateKey(c *cli.Context, m *metadata) (*account.PrivateKey, error) {

	name, err := checkOwner(c.GlobalString("identity"), m.identities)
	if nil != err {
		return nil, err
	}

	password := c.GlobalString("password")
	if "" == password {
		password, err = promptPassword()
		if nil != err {
			return nil, err
		}
	}

	private, err := m.identities.Private(password, name)
	if nil != err {
		m.log.Infof("identity: %q decrypt error: %s", name, err)
		return nil, err
	}
	m.log.Debugf("identity: %q account: %s", name, private.PrivateKey.Account())
	return private.PrivateKey, nil
}

// keep a signed record in the local history store
func storeSigned(m *metadata, signed transactionrecord.Packed) (string, bool, error) {
	id, stored, err := storage.Store(signed)
	if nil != err {
		m.log.Criticalf("store error: %s", err)
		return "", false, err
	}
	m.log.Infof("record: %s  stored: %t", id, stored)
	return id, stored, nil
}
