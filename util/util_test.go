// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package util_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/oneyesoneno/js-algorand-sdk/util"
)

func TestFormatBytes(t *testing.T) {
	data := []byte{0, 1, 2, 3, 4, 5, 6, 7, 0xfe, 0xff}
	expected := "x := []byte{\n" +
		"\t0x00, 0x01, 0x02, 0x03, 0x04, 0x05, 0x06, 0x07,\n" +
		"\t0xfe, 0xff,\n" +
		"}"
	assert.Equal(t, expected, util.FormatBytes("x", data), "format")
	assert.Equal(t, "y := []byte{\n}", util.FormatBytes("y", nil), "empty")
}

func TestEnsureAbsolute(t *testing.T) {
	assert.Equal(t, "/a/b/c", util.EnsureAbsolute("/a", "b/c"), "relative")
	assert.Equal(t, "/x/y", util.EnsureAbsolute("/a", "/x/y"), "absolute")
	assert.Equal(t, "/a/c", util.EnsureAbsolute("/a/b", "../c"), "cleaned")
}

func TestEnsureDirectory(t *testing.T) {
	dir, err := os.MkdirTemp("", "util-test")
	assert.Nil(t, err, "temp dir")
	defer os.RemoveAll(dir)

	name := filepath.Join(dir, "one", "two")
	assert.False(t, util.EnsureFileExists(name), "before")
	assert.Nil(t, util.EnsureDirectory(name), "create")
	assert.True(t, util.EnsureFileExists(name), "after")
	assert.Nil(t, util.EnsureDirectory(name), "existing")

	file := filepath.Join(dir, "file")
	assert.Nil(t, os.WriteFile(file, []byte("x"), 0600), "write file")
	assert.NotNil(t, util.EnsureDirectory(file), "not a directory")
}
