// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package rbtree

import (
	"cmp"
)

// Insert - insert a new key into the tree
// a key that is already present is ignored
// returns the tree so calls can be chained
func (tree *Tree[K]) Insert(key K) *Tree[K] {
	if tree.Contains(key) {
		return tree
	}
	tree.root = tree.insert(key, tree.root)
	tree.root.color = Black
	tree.count += 1
	return tree
}

// internal routine for insert, key is known to be absent
func (tree *Tree[K]) insert(key K, h *node[K]) *node[K] {
	if nil == h { // insert new node
		return newNode(key)
	}
	switch cmp.Compare(h.key, key) {
	case +1: // h.key > key
		h.left = tree.insert(key, h.left)
	default: // h.key < key
		h.right = tree.insert(key, h.right)
	}
	return tree.balance(h)
}
