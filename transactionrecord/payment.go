// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package transactionrecord

import (
	"github.com/oneyesoneno/js-algorand-sdk/account"
	"github.com/oneyesoneno/js-algorand-sdk/fault"
	"github.com/oneyesoneno/js-algorand-sdk/msgpack"
)

// transaction map keys
const (
	amountKey      = "amt"
	closeKey       = "close"
	feeKey         = "fee"
	firstRoundKey  = "fv"
	genesisIDKey   = "gen"
	genesisHashKey = "gh"
	lastRoundKey   = "lv"
	noteKey        = "note"
	receiverKey    = "rcv"
	senderKey      = "snd"
	typeKey        = "type"

	paymentType = "pay"
)

// Transaction - the unpacked payment transaction structure
type Transaction struct {
	From             *account.Account `json:"from"`                       // snd
	To               *account.Account `json:"to"`                         // rcv
	Amount           uint64           `json:"amount"`                     // amt: micro units
	Fee              uint64           `json:"fee"`                        // fee: micro units
	FirstRound       uint64           `json:"firstRound"`                 // fv
	LastRound        uint64           `json:"lastRound"`                  // lv
	Note             []byte           `json:"note,omitempty"`             // note: opaque
	GenesisID        string           `json:"genesisID,omitempty"`        // gen
	GenesisHash      []byte           `json:"genesisHash,omitempty"`      // gh: 32 bytes
	CloseRemainderTo *account.Account `json:"closeRemainderTo,omitempty"` // close
}

// Kind - always a transaction
func (transaction *Transaction) Kind() Kind {
	return TransactionKind
}

// Validate - check required fields and limits
func (transaction *Transaction) Validate() error {
	if nil == transaction {
		return fault.ErrNotRecord
	}
	if nil == transaction.From || transaction.From.IsZero() {
		return fault.ErrSenderRequired
	}
	if nil == transaction.To || transaction.To.IsZero() {
		return fault.ErrReceiverRequired
	}
	if transaction.FirstRound < 1 {
		return fault.ErrFirstRoundRequired
	}
	if transaction.LastRound < transaction.FirstRound {
		return fault.ErrLastRoundBeforeFirst
	}
	if transaction.LastRound-transaction.FirstRound > MaxTxnLife {
		return fault.ErrRoundRangeTooLarge
	}
	if len(transaction.Note) > MaxNoteBytes {
		return fault.ErrNoteTooLong
	}
	if len(transaction.GenesisID) > MaxGenesisIDLen {
		return fault.ErrGenesisIDTooLong
	}
	if 0 != len(transaction.GenesisHash) && GenesisHashLen != len(transaction.GenesisHash) {
		return fault.ErrGenesisHashLength
	}
	return nil
}

// Map - the wire form, before empty fields are removed
func (transaction *Transaction) Map() msgpack.Map {
	m := msgpack.Map{
		amountKey:      transaction.Amount,
		feeKey:         transaction.Fee,
		firstRoundKey:  transaction.FirstRound,
		lastRoundKey:   transaction.LastRound,
		noteKey:        transaction.Note,
		genesisIDKey:   transaction.GenesisID,
		genesisHashKey: transaction.GenesisHash,
		typeKey:        paymentType,
	}
	putAccount(m, senderKey, transaction.From)
	putAccount(m, receiverKey, transaction.To)
	putAccount(m, closeKey, transaction.CloseRemainderTo)
	return m
}

// a missing or all zero account is left out
func putAccount(m msgpack.Map, key string, a *account.Account) {
	if nil == a || a.IsZero() {
		return
	}
	m[key] = a.PublicKeyBytes()
}
