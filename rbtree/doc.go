// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package rbtree - a left-leaning red-black tree of ordered keys
//
// Note: an individual tree is not thread safe, so either access only
//       in a single go routine or use mutex/rwmutex to restrict
//       access.
//
// The colour stored in a node is the colour of the link from its
// parent.  Red links always lean left, no path has two red links in
// a row and every path from the root to an empty sub-tree crosses the
// same number of black links.  This is the 2-3 tree encoding where a
// red link glues two keys into a single 3-node.
//
// Inserting a key that is already present leaves the tree unchanged.
package rbtree
