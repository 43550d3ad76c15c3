// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package avl

import (
	"cmp"
)

// Remove - removes a specific key from the tree
// absent keys are ignored
// returns the tree so calls can be chained
func (tree *Tree[K]) Remove(key K) *Tree[K] {
	removed := false
	tree.root, removed = tree.remove(key, tree.root)
	if removed {
		tree.count -= 1
	}
	return tree
}

// internal delete routine
func (tree *Tree[K]) remove(key K, p *node[K]) (*node[K], bool) {
	if nil == p { // key not in tree
		return nil, false
	}
	removed := false
	switch cmp.Compare(p.key, key) {
	case +1: // p.key > key
		p.left, removed = tree.remove(key, p.left)
	case -1: // p.key < key
		p.right, removed = tree.remove(key, p.right)
	default: // found: delete p
		removed = true
		switch {
		case p.isLeaf():
			return nil, true
		case nil != p.left && nil != p.right:
			// take over the smallest key of the right branch
			// then delete that key from the right branch
			p.key = p.right.first().key
			p.right, _ = tree.remove(p.key, p.right)
		case nil != p.left:
			p = p.left
		default:
			p = p.right
		}
	}
	return tree.balance(p), removed
}
