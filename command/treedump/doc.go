// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Replay a script of tree operations
//
// This program reads a Lua script describing a sequence of inserts
// and removals, applies them to an AVL or a left-leaning red-black
// tree and prints the resulting shape, traversals and rebalancing
// statistics as JSON or YAML.
package main
