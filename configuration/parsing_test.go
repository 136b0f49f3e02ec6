// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package configuration_test

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/oneyesoneno/js-algorand-sdk/configuration"
	"github.com/oneyesoneno/js-algorand-sdk/fault"
)

func writeFile(t *testing.T, dir string, name string, content string) string {
	filename := filepath.Join(dir, name)
	err := os.WriteFile(filename, []byte(content), 0600)
	require.Nil(t, err, "write %s", name)
	return filename
}

func tempDir(t *testing.T) string {
	dir, err := os.MkdirTemp("", "configuration-test")
	require.Nil(t, err, "temp dir")
	dir, err = filepath.EvalSymlinks(dir)
	require.Nil(t, err, "eval symlinks")
	return dir
}

func TestDefaults(t *testing.T) {
	dir := tempDir(t)
	defer os.RemoveAll(dir)

	filename := writeFile(t, dir, "algo-cli.conf", "return {}\n")

	config, err := configuration.GetConfiguration(filename)
	require.Nil(t, err, "get configuration")

	assert.Equal(t, dir+"/", config.DataDirectory, "data directory")
	assert.Equal(t, "testnet", config.Network, "network")
	assert.Equal(t, "testnet-v1.0", config.GenesisID, "genesis id")
	assert.Equal(t, uint64(1000), config.ValidRounds, "valid rounds")
	assert.Equal(t, filepath.Join(dir, "identities.json"), config.Identities, "identities")
	assert.Equal(t, filepath.Join(dir, "records.leveldb"), config.Database, "database")
	assert.Equal(t, filepath.Join(dir, "log", "algo-cli.log"), config.Logging.File, "log file")
	assert.Equal(t, "info", config.Logging.Levels["main"], "main level")
	assert.Nil(t, config.GenesisHashBytes(), "no genesis hash")

	fileInfo, err := os.Stat(config.Logging.Directory)
	require.Nil(t, err, "log directory")
	assert.True(t, fileInfo.IsDir(), "log directory")
}

func TestLuaValues(t *testing.T) {
	dir := tempDir(t)
	defer os.RemoveAll(dir)

	require.Nil(t, os.Mkdir(filepath.Join(dir, "data"), 0700), "data dir")

	hash := strings.Repeat("ab", 32)
	filename := writeFile(t, dir, "algo-cli.conf", `
local M = {}
M.data_directory = "data"
M.network = "MainNet"
M.genesis_hash = "`+hash+`"
M.fee_per_byte = 10
M.valid_rounds = 500
M.identities = "/tmp/ids.json"
M.logging = {
    file = "cli.log",
    console = true,
    levels = {
        main = "debug",
    },
}
return M
`)

	config, err := configuration.GetConfiguration(filename)
	require.Nil(t, err, "get configuration")

	dataDirectory := filepath.Join(dir, "data")
	assert.Equal(t, dataDirectory, config.DataDirectory, "data directory")
	assert.Equal(t, "mainnet", config.Network, "network")
	assert.Equal(t, "mainnet-v1.0", config.GenesisID, "genesis id")
	assert.Equal(t, 32, len(config.GenesisHashBytes()), "genesis hash")
	assert.Equal(t, uint64(10), config.FeePerByte, "fee per byte")
	assert.Equal(t, uint64(500), config.ValidRounds, "valid rounds")
	assert.Equal(t, "/tmp/ids.json", config.Identities, "absolute identities")
	assert.Equal(t, filepath.Join(dataDirectory, "records.leveldb"), config.Database, "database")
	assert.Equal(t, filepath.Join(dataDirectory, "log", "cli.log"), config.Logging.File, "log file")
	assert.True(t, config.Logging.Console, "console")
	assert.Equal(t, "debug", config.Logging.Levels["main"], "main level")
	assert.Equal(t, "info", config.Logging.Levels["storage"], "storage level")
}

func TestInvalidConfiguration(t *testing.T) {
	dir := tempDir(t)
	defer os.RemoveAll(dir)

	items := []string{
		`return { network = "moonnet" }`,
		`return { genesis_hash = "abcd" }`,
		`return { genesis_hash = "zz" }`,
		`return { valid_rounds = 1001 }`,
		`return { data_directory = "missing" }`,
		`return { logging = { file = "sub/cli.log" } }`,
		`return { genesis_id = "` + strings.Repeat("x", 65) + `" }`,
		`this is not Lua`,
	}
	for i, item := range items {
		filename := writeFile(t, dir, "bad.conf", item)
		_, err := configuration.GetConfiguration(filename)
		assert.NotNil(t, err, "%d: %s", i, item)
	}
}

func TestParseConfigurationFile(t *testing.T) {
	dir := tempDir(t)
	defer os.RemoveAll(dir)

	type simple struct {
		Name  string `gluamapper:"name"`
		Count int    `gluamapper:"count"`
	}

	filename := writeFile(t, dir, "simple.conf", `return { name = "one", count = 3 }`)

	var s simple
	err := configuration.ParseConfigurationFile(filename, &s)
	require.Nil(t, err, "parse")
	assert.Equal(t, simple{Name: "one", Count: 3}, s, "values")

	err = configuration.ParseConfigurationFile(filename, s)
	assert.Equal(t, fault.ErrInvalidStructPointer, err, "not a pointer")

	var n int
	err = configuration.ParseConfigurationFile(filename, &n)
	assert.Equal(t, fault.ErrInvalidStructPointer, err, "not a struct")

	filename = writeFile(t, dir, "number.conf", `return 42`)
	err = configuration.ParseConfigurationFile(filename, &s)
	assert.Equal(t, fault.ErrConfigurationNotTable, err, "not a table")
}
