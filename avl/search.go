// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package avl

import (
	"cmp"
)

// Contains - true if the key is in the tree
func (tree *Tree[K]) Contains(key K) bool {
	return nil != search(key, tree.root)
}

func search[K cmp.Ordered](key K, p *node[K]) *node[K] {
	for nil != p {
		switch cmp.Compare(p.key, key) {
		case +1: // p.key > key
			p = p.left
		case -1: // p.key < key
			p = p.right
		default:
			return p
		}
	}
	return nil
}

// FindMin - the lowest key, false if the tree is empty
func (tree *Tree[K]) FindMin() (K, bool) {
	return tree.root.first().keyOf()
}

// FindMax - the highest key, false if the tree is empty
func (tree *Tree[K]) FindMax() (K, bool) {
	return tree.root.last().keyOf()
}

// internal: lowest node in a sub-tree
func (p *node[K]) first() *node[K] {
	if nil == p {
		return nil
	}
	for nil != p.left {
		p = p.left
	}
	return p
}

// internal: highest node in a sub-tree
func (p *node[K]) last() *node[K] {
	if nil == p {
		return nil
	}
	for nil != p.right {
		p = p.right
	}
	return p
}

func (p *node[K]) keyOf() (K, bool) {
	if nil == p {
		var zero K
		return zero, false
	}
	return p.key, true
}
