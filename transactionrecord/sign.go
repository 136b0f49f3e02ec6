// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package transactionrecord

import (
	"golang.org/x/crypto/ed25519"

	"github.com/oneyesoneno/js-algorand-sdk/account"
	"github.com/oneyesoneno/js-algorand-sdk/fault"
	"github.com/oneyesoneno/js-algorand-sdk/msgpack"
)

// bid note keys
const (
	noteTagKey  = "t"
	noteBodyKey = "b"
	bidNoteTag  = "b"
)

// Sign - sign a transaction or bid
//
// any other type gives fault.ErrNotRecord
func Sign(record interface{}, signer account.Signer) (Packed, error) {
	switch r := record.(type) {
	case *Transaction:
		return r.Sign(signer)
	case Transaction:
		return r.Sign(signer)
	case *Bid:
		return r.Sign(signer)
	case Bid:
		return r.Sign(signer)
	default:
		return nil, fault.ErrNotRecord
	}
}

// Sign - sign a payment transaction
//
// a missing sender is taken from the signer, a sender that is not the
// signer gives fault.ErrSignerMismatch; the argument is not modified
func (transaction *Transaction) Sign(signer account.Signer) (Packed, error) {
	if nil == transaction {
		return nil, fault.ErrNotRecord
	}
	if nil == signer {
		return nil, fault.ErrNotPrivateKey
	}
	t := *transaction
	from, err := signerAccount(t.From, signer)
	if nil != err {
		return nil, err
	}
	t.From = from
	encoded, err := Pack(&t)
	if nil != err {
		return nil, err
	}
	return encoded.Sign(signer)
}

// the record account, or the signer's account when it is missing
func signerAccount(a *account.Account, signer account.Signer) (*account.Account, error) {
	signerAccount := signer.Account()
	if nil == a {
		return signerAccount, nil
	}
	if nil == signerAccount || a.PublicKey != signerAccount.PublicKey {
		return nil, fault.ErrSignerMismatch
	}
	return a, nil
}

// TxID - the identifier of a transaction
func (transaction *Transaction) TxID() (string, error) {
	encoded, err := Pack(transaction)
	if nil != err {
		return "", err
	}
	return encoded.ID(), nil
}

// EstimateSize - bytes in the signed blob of this transaction
func (transaction *Transaction) EstimateSize() (uint64, error) {
	encoded, err := Pack(transaction)
	if nil != err {
		return 0, err
	}
	blob := msgpack.Map{
		signatureKey:   make([]byte, ed25519.SignatureSize),
		transactionKey: encoded.fields,
	}
	buffer, err := msgpack.Encode(blob)
	if nil != err {
		return 0, err
	}
	return uint64(len(buffer)), nil
}

// SetFeePerByte - set the fee from a per byte rate
//
// the size is estimated with the rate as the fee and the result is
// never less than MinTxnFee
func (transaction *Transaction) SetFeePerByte(perByte uint64) error {
	if nil == transaction {
		return fault.ErrNotRecord
	}
	t := *transaction
	t.Fee = perByte
	size, err := t.EstimateSize()
	if nil != err {
		return err
	}

	fee := perByte * size
	if 0 != perByte && fee/perByte != size {
		return fault.ErrFeeOverflow
	}
	if fee < MinTxnFee {
		fee = MinTxnFee
	}
	transaction.Fee = fee
	return nil
}

// Sign - sign an auction bid
//
// a missing bidder is taken from the signer, a bidder that is not the
// signer gives fault.ErrSignerMismatch; the argument is not modified
func (bid *Bid) Sign(signer account.Signer) (Packed, error) {
	if nil == bid {
		return nil, fault.ErrNotRecord
	}
	if nil == signer {
		return nil, fault.ErrNotPrivateKey
	}
	b := *bid
	bidder, err := signerAccount(b.Bidder, signer)
	if nil != err {
		return nil, err
	}
	b.Bidder = bidder
	encoded, err := Pack(&b)
	if nil != err {
		return nil, err
	}
	return encoded.Sign(signer)
}

// ID - the identifier of a bid
func (bid *Bid) ID() (string, error) {
	encoded, err := Pack(bid)
	if nil != err {
		return "", err
	}
	return encoded.ID(), nil
}

// BidNote - wrap a signed bid for use as a transaction note
//
// the result is the canonical encoding of {"t": "b", "b": signed bid}
func BidNote(signedBid Packed) (Packed, error) {
	signed, err := Unpack(signedBid)
	if nil != err {
		return nil, err
	}
	if BidKind != signed.Kind {
		return nil, fault.ErrInvalidRecordKind
	}

	note := msgpack.Map{
		noteTagKey:  bidNoteTag,
		noteBodyKey: msgpack.Map{
			signatureKey: []byte(signed.Signature),
			bidKey:       signed.Encoded.fields,
		},
	}
	return msgpack.Encode(note)
}
