// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package storage_test

import (
	"encoding/binary"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/oneyesoneno/js-algorand-sdk/fault"
	"github.com/oneyesoneno/js-algorand-sdk/storage"
)

func fill(p *storage.PoolHandle) {
	for _, e := range testElements {
		p.Put([]byte(e.key), []byte(e.value))
	}
}

func TestPutGet(t *testing.T) {
	setup(t)
	defer teardown(t)

	p := storage.Pool.TestData
	fill(p)

	assert.Equal(t, []byte("data-two"), p.Get([]byte("key-two")), "get")
	assert.True(t, p.Has([]byte("key-two")), "has")
	assert.Nil(t, p.Get(nonExistantKey), "missing get")
	assert.False(t, p.Has(nonExistantKey), "missing has")

	p.Delete([]byte("key-two"))
	assert.False(t, p.Has([]byte("key-two")), "deleted")

	// other pools are separate
	assert.False(t, storage.Pool.Records.Has([]byte("key-one")), "other pool")
}

func TestGetN(t *testing.T) {
	setup(t)
	defer teardown(t)

	p := storage.Pool.TestData
	value := make([]byte, 8)
	binary.BigEndian.PutUint64(value, 1234)
	p.Put([]byte("n"), value)

	n, ok := p.GetN([]byte("n"))
	assert.True(t, ok, "found")
	assert.Equal(t, uint64(1234), n, "value")

	_, ok = p.GetN(nonExistantKey)
	assert.False(t, ok, "missing")
}

func TestLastElement(t *testing.T) {
	setup(t)
	defer teardown(t)

	p := storage.Pool.TestData
	_, found := p.LastElement()
	assert.False(t, found, "empty pool")

	fill(p)
	last, found := p.LastElement()
	assert.True(t, found, "filled pool")
	assert.Equal(t, expectedElements[len(expectedElements)-1], last, "last element")
}

func TestFetch(t *testing.T) {
	setup(t)
	defer teardown(t)

	p := storage.Pool.TestData
	fill(p)

	cursor := p.NewFetchCursor()
	first, err := cursor.Fetch(3)
	assert.Nil(t, err, "first fetch")
	assert.Equal(t, expectedElements[:3], first, "first fetch")

	rest, err := cursor.Fetch(10)
	assert.Nil(t, err, "second fetch")
	assert.Equal(t, expectedElements[3:], rest, "second fetch")

	empty, err := cursor.Fetch(10)
	assert.Nil(t, err, "third fetch")
	assert.Equal(t, 0, len(empty), "third fetch")

	_, err = p.NewFetchCursor().Fetch(0)
	assert.Equal(t, fault.ErrInvalidCount, err, "zero count")

	var nilCursor *storage.FetchCursor
	_, err = nilCursor.Fetch(1)
	assert.Equal(t, fault.ErrInvalidCursor, err, "nil cursor")
}

func TestFetchSeekPrefix(t *testing.T) {
	setup(t)
	defer teardown(t)

	p := storage.Pool.TestData
	fill(p)

	elements, err := p.NewFetchCursor().Seek([]byte("key-o")).Fetch(10)
	assert.Nil(t, err, "seek fetch")
	assert.Equal(t, expectedElements[2:], elements, "seek")

	elements, err = p.NewFetchCursor().Prefix([]byte("key-t")).Fetch(10)
	assert.Nil(t, err, "prefix fetch")
	assert.Equal(t, expectedElements[3:], elements, "prefix")
}

func TestMap(t *testing.T) {
	setup(t)
	defer teardown(t)

	p := storage.Pool.TestData
	fill(p)

	var actual []storage.Element
	err := p.NewFetchCursor().Map(func(key []byte, value []byte) error {
		actual = append(actual, storage.Element{Key: key, Value: value})
		return nil
	})
	assert.Nil(t, err, "map")
	assert.Equal(t, expectedElements, actual, "map")

	n := 0
	err = p.NewFetchCursor().Map(func(key []byte, value []byte) error {
		n += 1
		return fault.ErrInvalidCount
	})
	assert.Equal(t, fault.ErrInvalidCount, err, "stop on error")
	assert.Equal(t, 1, n, "calls before error")
}

func TestBatch(t *testing.T) {
	setup(t)
	defer teardown(t)

	p := storage.Pool.TestData
	batch := storage.NewBatch()
	for _, e := range testElements {
		batch.Put(p, []byte(e.key), []byte(e.value))
	}
	assert.Equal(t, len(testElements), batch.Len(), "queued")
	assert.False(t, p.Has([]byte("key-one")), "written before commit")

	err := batch.Commit()
	assert.Nil(t, err, "commit")
	assert.Equal(t, 0, batch.Len(), "reset after commit")

	elements, err := p.NewFetchCursor().Fetch(10)
	assert.Nil(t, err, "fetch")
	assert.Equal(t, expectedElements, elements, "committed")
}

func TestInitialiseTwice(t *testing.T) {
	setup(t)
	defer teardown(t)

	err := storage.Initialise(databasePath(), storage.ReadWrite)
	assert.Equal(t, fault.ErrAlreadyInitialised, err, "second initialise")
}

func TestReopenReadOnly(t *testing.T) {
	setup(t)
	fill(storage.Pool.TestData)
	storage.Finalise()

	err := storage.Initialise(databasePath(), storage.ReadOnly)
	if nil != err {
		t.Fatalf("read only initialise error: %s", err)
	}
	defer teardown(t)

	assert.Equal(t, []byte("data-one"), storage.Pool.TestData.Get([]byte("key-one")), "persisted")
}

func TestClosed(t *testing.T) {
	setup(t)
	p := storage.Pool.TestData
	teardown(t)

	assert.Nil(t, p.Get([]byte("key-one")), "get after close")
	assert.False(t, p.Has([]byte("key-one")), "has after close")

	_, err := p.NewFetchCursor().Fetch(1)
	assert.Equal(t, fault.ErrNotInitialised, err, "fetch after close")

	err = storage.NewBatch().Commit()
	assert.Equal(t, fault.ErrNotInitialised, err, "commit after close")
}
