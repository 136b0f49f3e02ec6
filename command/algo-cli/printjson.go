// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"encoding/json"
	"io"
)

// output indented JSON, notes may contain HTML characters so leave them unescaped
func printJson(handle io.Writer, message interface{}) error {
	enc := json.NewEncoder(handle)
	enc.SetIndent("", "  ")
	enc.SetEscapeHTML(false)
	return enc.Encode(message)
}
