// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package avl

import (
	"cmp"
)

// Insert - insert a new key into the tree
// a key that is already present is ignored
// returns the tree so calls can be chained
func (tree *Tree[K]) Insert(key K) *Tree[K] {
	added := false
	tree.root, added = tree.insert(key, tree.root)
	if added {
		tree.count += 1
	}
	return tree
}

// internal routine for insert
func (tree *Tree[K]) insert(key K, p *node[K]) (*node[K], bool) {
	if nil == p { // insert new node
		return newNode(key), true
	}
	added := false
	switch cmp.Compare(p.key, key) {
	case +1: // p.key > key
		p.left, added = tree.insert(key, p.left)
	case -1: // p.key < key
		p.right, added = tree.insert(key, p.right)
	default:
		return p, false // duplicate: nothing changed below
	}
	return tree.balance(p), added
}
