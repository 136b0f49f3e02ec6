// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package storage

import (
	"encoding/binary"
	"sync"

	"github.com/oneyesoneno/js-algorand-sdk/account"
	"github.com/oneyesoneno/js-algorand-sdk/digest"
	"github.com/oneyesoneno/js-algorand-sdk/transactionrecord"
)

// HistoryItem - one record in the history of an account
type HistoryItem struct {
	Sequence uint64                   `json:"sequence"`
	ID       string                   `json:"id"`
	Kind     string                   `json:"kind"`
	Packed   transactionrecord.Packed `json:"packed"`
}

// serialise the counter read-modify-write in Store
var storeLock sync.Mutex

// Store - verify a signed blob and save it with a history entry for
// each account it names
//
// returns the record identifier and false if it was already stored
func Store(blob transactionrecord.Packed) (string, bool, error) {
	signed, err := transactionrecord.Unpack(blob)
	if nil != err {
		return "", false, err
	}
	err = signed.Verify()
	if nil != err {
		return "", false, err
	}

	d := signed.Encoded.Digest()
	id := d.String()

	storeLock.Lock()
	defer storeLock.Unlock()

	if Pool.Records.Has(d[:]) {
		return id, false, nil
	}

	batch := NewBatch()
	batch.Put(Pool.Records, d[:], blob)

	for _, a := range accountsOf(signed.Record) {
		publicKey := a.PublicKeyBytes()

		n, found := Pool.AccountNextCount.GetN(publicKey)
		if !found {
			n = 0
		}
		count := make([]byte, 8)
		binary.BigEndian.PutUint64(count, n+1)
		batch.Put(Pool.AccountNextCount, publicKey, count)

		binary.BigEndian.PutUint64(count, n)
		batch.Put(Pool.AccountHistory, append(publicKey, count...), d[:])
	}

	err = batch.Commit()
	if nil != err {
		return "", false, err
	}

	if nil != poolData.log {
		poolData.log.Debugf("stored: %s  kind: %s", id, signed.Kind)
	}
	return id, true, nil
}

// GetRecord - fetch a stored signed blob by its identifier
func GetRecord(id string) (transactionrecord.Packed, bool) {
	d, err := digest.FromString(id)
	if nil != err {
		return nil, false
	}
	blob := Pool.Records.Get(d[:])
	if nil == blob {
		return nil, false
	}
	return blob, true
}

// History - records naming an account in the order they were stored
//
// starts at sequence start and returns at most count items with the
// sequence to use for the next call
func History(a *account.Account, start uint64, count int) ([]HistoryItem, uint64, error) {
	publicKey := a.PublicKeyBytes()

	seek := make([]byte, 8)
	binary.BigEndian.PutUint64(seek, start)

	cursor := Pool.AccountHistory.NewFetchCursor().Prefix(publicKey).Seek(append(publicKey, seek...))
	elements, err := cursor.Fetch(count)
	if nil != err {
		return nil, start, err
	}

	next := start
	items := make([]HistoryItem, 0, len(elements))
	for _, e := range elements {
		sequence := binary.BigEndian.Uint64(e.Key[len(publicKey):])
		next = sequence + 1

		blob := Pool.Records.Get(e.Value)
		if nil == blob {
			continue
		}
		item := HistoryItem{
			Sequence: sequence,
			Packed:   blob,
		}
		var d digest.Digest
		if nil == digest.FromBytes(&d, e.Value) {
			item.ID = d.String()
		}
		if signed, err := transactionrecord.Unpack(blob); nil == err {
			item.Kind = signed.Kind.String()
		}
		items = append(items, item)
	}
	return items, next, nil
}

// distinct accounts named by a record
func accountsOf(record transactionrecord.Record) []*account.Account {
	var candidates []*account.Account
	switch r := record.(type) {
	case *transactionrecord.Transaction:
		candidates = []*account.Account{r.From, r.To, r.CloseRemainderTo}
	case *transactionrecord.Bid:
		candidates = []*account.Account{r.Bidder, r.Auction}
	}

	accounts := make([]*account.Account, 0, len(candidates))
loop:
	for _, a := range candidates {
		if nil == a || a.IsZero() {
			continue loop
		}
		for _, seen := range accounts {
			if seen.PublicKey == a.PublicKey {
				continue loop
			}
		}
		accounts = append(accounts, a)
	}
	return accounts
}
