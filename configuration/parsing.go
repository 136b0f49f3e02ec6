// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package configuration

import (
	"encoding/hex"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/bitmark-inc/logger"

	"github.com/oneyesoneno/js-algorand-sdk/transactionrecord"
	"github.com/oneyesoneno/js-algorand-sdk/util"
)

// basic defaults (directories and files are relative to the "DataDirectory" from Configuration file)
const (
	defaultDataDirectory = "." // same directory as the configuration file

	defaultNetwork        = "testnet"
	defaultIdentitiesFile = "identities.json"
	defaultDatabase       = "records.leveldb"
	defaultValidRounds    = transactionrecord.MaxTxnLife

	defaultLogDirectory = "log"
	defaultLogFile      = "algo-cli.log"
	defaultLogCount     = 10          //  number of log files retained
	defaultLogSize      = 1024 * 1024 // rotate when <logfile> exceeds this size
)

// networks with a known genesis identifier
var networks = map[string]string{
	"mainnet": "mainnet-v1.0",
	"testnet": "testnet-v1.0",
	"betanet": "betanet-v1.0",
	"local":   "",
}

// LoglevelMap - to hold log levels
type LoglevelMap map[string]string

// path expanded or calculated defaults
var (
	defaultLogLevels = LoglevelMap{
		"main":            "info",
		"storage":         "info",
		logger.DefaultTag: "critical",
	}
)

// LoggerType - logging section
type LoggerType struct {
	Directory string      `gluamapper:"directory" json:"directory"`
	File      string      `gluamapper:"file" json:"file"`
	Size      int         `gluamapper:"size" json:"size"`
	Count     int         `gluamapper:"count" json:"count"`
	Console   bool        `gluamapper:"console" json:"console"`
	Levels    LoglevelMap `gluamapper:"levels" json:"levels"`
}

// Configuration - the complete tool configuration
type Configuration struct {
	DataDirectory string     `gluamapper:"data_directory" json:"data_directory"`
	Network       string     `gluamapper:"network" json:"network"`
	GenesisID     string     `gluamapper:"genesis_id" json:"genesis_id"`
	GenesisHash   string     `gluamapper:"genesis_hash" json:"genesis_hash"`
	FeePerByte    uint64     `gluamapper:"fee_per_byte" json:"fee_per_byte"`
	ValidRounds   uint64     `gluamapper:"valid_rounds" json:"valid_rounds"`
	Identities    string     `gluamapper:"identities" json:"identities"`
	Database      string     `gluamapper:"database" json:"database"`
	Logging       LoggerType `gluamapper:"logging" json:"logging"`
}

// GetConfiguration - read, decode and verify the configuration
func GetConfiguration(configurationFileName string) (*Configuration, error) {

	configurationFileName, err := filepath.Abs(filepath.Clean(configurationFileName))
	if nil != err {
		return nil, err
	}

	// absolute path to the main directory
	dataDirectory, _ := filepath.Split(configurationFileName)

	levels := make(LoglevelMap, len(defaultLogLevels))
	for k, v := range defaultLogLevels {
		levels[k] = v
	}

	options := &Configuration{
		DataDirectory: defaultDataDirectory,
		Network:       defaultNetwork,
		ValidRounds:   defaultValidRounds,
		Identities:    defaultIdentitiesFile,
		Database:      defaultDatabase,

		Logging: LoggerType{
			Directory: defaultLogDirectory,
			File:      defaultLogFile,
			Size:      defaultLogSize,
			Count:     defaultLogCount,
			Levels:    levels,
		},
	}

	if err := ParseConfigurationFile(configurationFileName, options); nil != err {
		return nil, err
	}

	options.Network = strings.ToLower(options.Network)
	genesisID, ok := networks[options.Network]
	if !ok {
		return nil, fmt.Errorf("network: %q is not supported", options.Network)
	}
	if "" == options.GenesisID {
		options.GenesisID = genesisID
	}
	if len(options.GenesisID) > transactionrecord.MaxGenesisIDLen {
		return nil, fmt.Errorf("genesis id: %q is too long", options.GenesisID)
	}

	if "" != options.GenesisHash {
		h, err := hex.DecodeString(options.GenesisHash)
		if nil != err || transactionrecord.GenesisHashLen != len(h) {
			return nil, fmt.Errorf("genesis hash: %q is not %d hex bytes", options.GenesisHash, transactionrecord.GenesisHashLen)
		}
	}

	if options.ValidRounds < 1 || options.ValidRounds > transactionrecord.MaxTxnLife {
		return nil, fmt.Errorf("valid rounds: %d is not in range 1..%d", options.ValidRounds, transactionrecord.MaxTxnLife)
	}

	// ensure absolute data directory
	if "" == options.DataDirectory || "~" == options.DataDirectory {
		return nil, fmt.Errorf("path: %q is not a valid directory", options.DataDirectory)
	} else if "." == options.DataDirectory {
		options.DataDirectory = dataDirectory // same directory as the configuration file
	} else {
		options.DataDirectory = util.EnsureAbsolute(dataDirectory, options.DataDirectory)
	}

	// this directory must exist - i.e. must be created prior to running
	if fileInfo, err := os.Stat(options.DataDirectory); nil != err {
		return nil, err
	} else if !fileInfo.IsDir() {
		return nil, fmt.Errorf("path: %q is not a directory", options.DataDirectory)
	}

	// force all relevant items to be absolute paths
	// if not, assign them to the data directory
	mustBeAbsolute := []*string{
		&options.Identities,
		&options.Database,
		&options.Logging.Directory,
	}
	for _, f := range mustBeAbsolute {
		*f = util.EnsureAbsolute(options.DataDirectory, *f)
	}

	// log file must be a plain name inside the log directory
	switch filepath.Dir(options.Logging.File) {
	case "", ".":
		options.Logging.File = util.EnsureAbsolute(options.Logging.Directory, options.Logging.File)
	default:
		return nil, fmt.Errorf("file: %q is not plain name", options.Logging.File)
	}

	if err := util.EnsureDirectory(options.Logging.Directory); nil != err {
		return nil, err
	}

	// done
	return options, nil
}

// GenesisHashBytes - binary genesis hash, nil if not configured
func (config *Configuration) GenesisHashBytes() []byte {
	if "" == config.GenesisHash {
		return nil
	}
	h, err := hex.DecodeString(config.GenesisHash)
	if nil != err {
		return nil
	}
	return h
}
