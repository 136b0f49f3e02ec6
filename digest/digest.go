// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package digest

import (
	"crypto/sha512"
	"encoding/hex"
	"strings"

	"github.com/multiformats/go-base32"

	"github.com/oneyesoneno/js-algorand-sdk/fault"
)

// Length - number of bytes in the digest
const Length = sha512.Size256

// ErrNotDigest - text or bytes cannot be a digest
var ErrNotDigest = fault.InvalidError("not a digest")

// Encoding - RFC 4648 base32 without padding, used for every text
// form of hashes and addresses
var Encoding = base32.StdEncoding.WithPadding(base32.NoPadding)

// Digest - type for a SHA-512/256 digest
//
// represented as unpadded base32 for print and JSON encoding
// to convert to bytes just use d[:]
type Digest [Length]byte

// NewDigest - create a digest from a byte slice
func NewDigest(record []byte) Digest {
	return sha512.Sum512_256(record)
}

// NewPrefixedDigest - digest of prefix followed by record
func NewPrefixedDigest(prefix []byte, record []byte) Digest {
	h := sha512.New512_256()
	h.Write(prefix)
	h.Write(record)

	var d Digest
	copy(d[:], h.Sum(nil))
	return d
}

// String - convert a binary digest to base32 for use by the fmt package (for %s)
func (digest Digest) String() string {
	return Encoding.EncodeToString(digest[:])
}

// GoString - convert a binary digest to hex for use by the fmt package (for %#v)
func (digest Digest) GoString() string {
	return "<SHA512/256:" + hex.EncodeToString(digest[:]) + ">"
}

// MarshalText - convert digest to base32 text
func (digest Digest) MarshalText() ([]byte, error) {
	return []byte(digest.String()), nil
}

// UnmarshalText - convert base32 text into a digest
func (digest *Digest) UnmarshalText(s []byte) error {
	d, err := FromString(string(s))
	if nil != err {
		return err
	}
	*digest = d
	return nil
}

// FromString - parse the base32 text form of a digest
func FromString(s string) (Digest, error) {
	var d Digest
	buffer, err := Encoding.DecodeString(strings.TrimSpace(s))
	if nil != err {
		return d, ErrNotDigest
	}
	err = FromBytes(&d, buffer)
	return d, err
}

// FromBytes - convert and validate a byte slice to a digest
func FromBytes(digest *Digest, buffer []byte) error {
	if Length != len(buffer) {
		return ErrNotDigest
	}
	copy(digest[:], buffer)
	return nil
}
