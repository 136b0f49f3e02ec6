// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package account

import (
	"crypto/rand"
	"fmt"

	"golang.org/x/crypto/ed25519"
)

// NewSeed - generate a random 32 byte seed
func NewSeed() ([]byte, error) {
	seed := make([]byte, ed25519.SeedSize)
	n, err := rand.Read(seed)
	if nil != err {
		return nil, err
	}
	if ed25519.SeedSize != n {
		return nil, fmt.Errorf("got: %d bytes, expected: %d bytes", n, ed25519.SeedSize)
	}
	return seed, nil
}

// NewPrivateKey - generate a key pair from a fresh random seed
func NewPrivateKey() (*PrivateKey, error) {
	seed, err := NewSeed()
	if nil != err {
		return nil, err
	}
	return PrivateKeyFromSeed(seed)
}
