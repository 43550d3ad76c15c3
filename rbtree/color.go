// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package rbtree

import (
	"fmt"
	"strings"

	"github.com/bitmark-inc/algorithm/fault"
)

// Color - colour of the link from a parent node
type Color uint8

// link colours, the zero value is Black
const (
	Black Color = iota
	Red
)

// String - name of the colour
func (c Color) String() string {
	switch c {
	case Black:
		return "Black"
	case Red:
		return "Red"
	default:
		return "*Unknown*"
	}
}

// MarshalText - convert colour to its name for JSON and YAML
func (c Color) MarshalText() ([]byte, error) {
	switch c {
	case Black, Red:
		return []byte(c.String()), nil
	default:
		return nil, fmt.Errorf("colour: %d: %w", uint8(c), fault.ErrUnknownColor)
	}
}

// UnmarshalText - convert a colour name back, case is ignored
func (c *Color) UnmarshalText(s []byte) error {
	switch strings.ToLower(string(s)) {
	case "black":
		*c = Black
	case "red":
		*c = Red
	default:
		return fmt.Errorf("colour: %q: %w", s, fault.ErrUnknownColor)
	}
	return nil
}

// Info - a key together with the colour of its incoming link
type Info[K any] struct {
	Key   K     `json:"key" yaml:"key"`
	Color Color `json:"color" yaml:"color"`
}
