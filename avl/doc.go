// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package avl - an AVL balanced tree of ordered keys
//
// Note: an individual tree is not thread safe, so either access only
//       in a single go routine or use mutex/rwmutex to restrict
//       access.
//
// Each node stores its height counted in nodes (a leaf is 1, the
// empty tree is 0) and after every insert or delete the heights of
// the two sub-trees of any node differ by at most one.  Rebalancing
// is done on the way back up the recursion using the four classic
// cases LL, RR, LR and RL.
//
// Inserting a key that is already present leaves the tree unchanged.
package avl
