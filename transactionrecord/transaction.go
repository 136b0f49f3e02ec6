// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package transactionrecord

import (
	"encoding/hex"

	"github.com/oneyesoneno/js-algorand-sdk/msgpack"
)

// Kind - record kind code
type Kind int

// enumerate the possible record kinds
const (
	// null marks beginning of list - not used as a record kind
	NullKind = Kind(iota)

	TransactionKind = Kind(iota) // payment transaction
	BidKind         = Kind(iota) // auction bid

	// this item must be last
	InvalidKind = Kind(iota)
)

// domain separation prefixes, prepended to the canonical bytes before
// hashing or signing
var (
	transactionPrefix = []byte("TX")
	bidPrefix         = []byte("aB")
)

// keys of the signed blob
const (
	signatureKey   = "sig"
	transactionKey = "txn"
	bidKey         = "bid"
)

// protocol limits
const (
	MaxTxnLife      = 1000 // rounds between first and last valid round
	MaxNoteBytes    = 1024
	MaxGenesisIDLen = 64
	GenesisHashLen  = 32
	MinTxnFee       = 1000 // micro units
)

// Packed - packed records are just a byte slice
type Packed []byte

// Record - a record that can be validated and projected to a map
type Record interface {
	Kind() Kind
	Validate() error
	Map() msgpack.Map
}

// Prefix - the domain separation prefix for a kind
func (kind Kind) Prefix() []byte {
	switch kind {
	case TransactionKind:
		return append([]byte{}, transactionPrefix...)
	case BidKind:
		return append([]byte{}, bidPrefix...)
	default:
		return nil
	}
}

// Key - the signed blob key holding a record of this kind
func (kind Kind) Key() string {
	switch kind {
	case TransactionKind:
		return transactionKey
	case BidKind:
		return bidKey
	default:
		return ""
	}
}

// String - kind name
func (kind Kind) String() string {
	switch kind {
	case TransactionKind:
		return "Transaction"
	case BidKind:
		return "Bid"
	default:
		return "*unknown*"
	}
}

// RecordName - returns the name of a record as a string
func RecordName(record interface{}) (string, bool) {
	switch record.(type) {
	case *Transaction, Transaction:
		return "Transaction", true

	case *Bid, Bid:
		return "Bid", true

	default:
		return "*unknown*", false
	}
}

// MarshalText - convert a packed to its hex JSON form
func (record Packed) MarshalText() ([]byte, error) {
	size := hex.EncodedLen(len(record))
	b := make([]byte, size)
	hex.Encode(b, record)
	return b, nil
}

// UnmarshalText - convert a packed from its hex JSON form
func (record *Packed) UnmarshalText(s []byte) error {
	size := hex.DecodedLen(len(s))
	*record = make([]byte, size)
	_, err := hex.Decode(*record, s)
	return err
}
