// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"encoding/hex"
	"math"
	"os"
	"strings"

	"github.com/oneyesoneno/js-algorand-sdk/account"
	"github.com/oneyesoneno/js-algorand-sdk/command/algo-cli/encrypt"
	"github.com/oneyesoneno/js-algorand-sdk/fault"
	"github.com/oneyesoneno/js-algorand-sdk/keypair"
	"github.com/oneyesoneno/js-algorand-sdk/mnemonic"
	"github.com/oneyesoneno/js-algorand-sdk/transactionrecord"
)

var (
	ErrIncompatibleOptions = fault.InvalidError("incompatible options")
	ErrRequiredAccount     = fault.InvalidError("account is required")
	ErrRequiredAuction     = fault.InvalidError("auction is required")
	ErrRequiredConfigFile  = fault.InvalidError("config file is required")
	ErrRequiredDescription = fault.InvalidError("description is required")
	ErrRequiredFirstRound  = fault.InvalidError("first round is required")
	ErrRequiredIdentity    = fault.InvalidError("identity is required")
	ErrRequiredMnemonic    = fault.InvalidError("mnemonic is required")
	ErrRequiredPublicKey   = fault.InvalidError("public key is required")
	ErrRequiredReceiver    = fault.InvalidError("receiver is required")
	ErrRequiredTransaction = fault.InvalidError("transaction hex is required")
)

// config is required, environment variables are expanded
// and an unset XDG_CONFIG_HOME falls back to the user configuration directory
func checkConfigFile(file string) (string, error) {
	if "" == file {
		return "", ErrRequiredConfigFile
	}

	file = os.Expand(file, func(name string) string {
		if "XDG_CONFIG_HOME" == name {
			if dir, err := os.UserConfigDir(); nil == err {
				return dir
			}
		}
		return os.Getenv(name)
	})
	return file, nil
}

// identity is required
func checkName(name string) (string, error) {
	if "" == name {
		return "", ErrRequiredIdentity
	}

	return name, nil
}

// description is required
func checkDescription(description string) (string, error) {
	if "" == description {
		return "", ErrRequiredDescription
	}

	return description, nil
}

// mnemonic is required and must decode to a seed
func checkMnemonic(phrase string) (*account.PrivateKey, error) {
	phrase = strings.TrimSpace(phrase)
	if "" == phrase {
		return nil, ErrRequiredMnemonic
	}

	return mnemonic.ToPrivateKey(phrase)
}

// public key is required, must be 64 hex chars
func checkPublicKey(key string) (*account.Account, error) {
	if "" == key {
		return nil, ErrRequiredPublicKey
	}

	return keypair.AccountFromHexPublicKey(key)
}

// either an address or the name of an identity
func checkAccount(value string, identities *encrypt.Identities, required error) (*account.Account, error) {
	if "" == value {
		return nil, required
	}

	if account.IsValidAddress(value) {
		return account.AccountFromString(value)
	}

	if nil == identities {
		return account.AccountFromString(value)
	}
	return identities.Account(value)
}

// optional account, blank gives nil
func checkOptionalAccount(value string, identities *encrypt.Identities) (*account.Account, error) {
	if "" == value {
		return nil, nil
	}
	return checkAccount(value, identities, ErrRequiredAccount)
}

// identity to sign with, blank selects the default identity
func checkOwner(name string, identities *encrypt.Identities) (string, error) {
	if "" == name {
		name = identities.DefaultIdentity
	}
	return checkName(name)
}

// a hex encoded blob is required
func checkTransaction(s string) (transactionrecord.Packed, error) {
	s = strings.TrimSpace(s)
	if "" == s {
		return nil, ErrRequiredTransaction
	}

	b, err := hex.DecodeString(s)
	if nil != err {
		return nil, err
	}
	return transactionrecord.Packed(b), nil
}

// first round is required, a zero last round is first plus the configured
// validity window
func checkRoundRange(first uint64, last uint64, validRounds uint64) (uint64, uint64, error) {
	if 0 == first {
		return 0, 0, ErrRequiredFirstRound
	}

	if 0 == last {
		if first > math.MaxUint64-validRounds {
			last = math.MaxUint64
		} else {
			last = first + validRounds
		}
	}
	return first, last, nil
}
