// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"encoding/json"
	"fmt"
	"io"

	"gopkg.in/yaml.v3"

	"github.com/bitmark-inc/algorithm/fault"
)

// write the message in the selected format
func printReport(w io.Writer, format string, message interface{}) error {
	switch format {
	case formatJSON:
		return printJson(w, message)
	case formatYAML:
		return printYaml(w, message)
	default:
		return fmt.Errorf("format: %q: %w", format, fault.ErrUnknownFormat)
	}
}

func printJson(w io.Writer, message interface{}) error {
	b, err := json.MarshalIndent(message, "", "  ")
	if nil != err {
		return fmt.Errorf("printjson marshal error: %w", err)
	}
	_, err = fmt.Fprintf(w, "%s\n", b)
	return err
}

func printYaml(w io.Writer, message interface{}) error {
	encoder := yaml.NewEncoder(w)
	encoder.SetIndent(2)
	if err := encoder.Encode(message); nil != err {
		return fmt.Errorf("printyaml marshal error: %w", err)
	}
	return encoder.Close()
}
