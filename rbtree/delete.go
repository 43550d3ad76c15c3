// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package rbtree

import (
	"cmp"
)

// RemoveMin - delete the lowest key, nothing happens on an empty tree
// returns the tree so calls can be chained
func (tree *Tree[K]) RemoveMin() *Tree[K] {
	if nil == tree.root {
		return tree
	}
	tree.redRoot()
	tree.root = tree.removeMin(tree.root)
	tree.blackRoot()
	tree.count -= 1
	return tree
}

// RemoveMax - delete the highest key, nothing happens on an empty tree
// returns the tree so calls can be chained
func (tree *Tree[K]) RemoveMax() *Tree[K] {
	if nil == tree.root {
		return tree
	}
	tree.redRoot()
	tree.root = tree.removeMax(tree.root)
	tree.blackRoot()
	tree.count -= 1
	return tree
}

// Remove - removes a specific key from the tree
// absent keys are ignored
// returns the tree so calls can be chained
func (tree *Tree[K]) Remove(key K) *Tree[K] {
	if !tree.Contains(key) {
		return tree
	}
	tree.redRoot()
	tree.root = tree.remove(key, tree.root)
	tree.blackRoot()
	tree.count -= 1
	return tree
}

// when both children are black the root must be red so the descent
// starts with a red link to borrow from
func (tree *Tree[K]) redRoot() {
	if !tree.root.left.isRed() && !tree.root.right.isRed() {
		tree.root.color = Red
	}
}

func (tree *Tree[K]) blackRoot() {
	if nil != tree.root {
		tree.root.color = Black
	}
}

// internal: delete the lowest node below h
func (tree *Tree[K]) removeMin(h *node[K]) *node[K] {
	if nil == h || nil == h.left {
		return nil
	}
	if !h.left.isRed() && !h.left.left.isRed() {
		h = tree.moveRedLeft(h)
	}
	h.left = tree.removeMin(h.left)
	return tree.balance(h)
}

// internal: delete the highest node below h
func (tree *Tree[K]) removeMax(h *node[K]) *node[K] {
	if nil == h {
		return nil
	}
	if h.left.isRed() {
		h = tree.rotateRight(h)
	}
	if nil == h.right {
		return nil
	}
	if !h.right.isRed() && !h.right.left.isRed() {
		h = tree.moveRedRight(h)
	}
	h.right = tree.removeMax(h.right)
	return tree.balance(h)
}

// internal delete routine, key is known to be present
func (tree *Tree[K]) remove(key K, h *node[K]) *node[K] {
	if nil == h {
		return nil
	}
	if cmp.Less(key, h.key) {
		if !h.left.isRed() && !h.left.left.isRed() {
			h = tree.moveRedLeft(h)
		}
		h.left = tree.remove(key, h.left)
		return tree.balance(h)
	}

	if h.left.isRed() {
		h = tree.rotateRight(h)
	}
	if 0 == cmp.Compare(key, h.key) && nil == h.right {
		return nil
	}
	if !h.right.isRed() && !h.right.left.isRed() {
		h = tree.moveRedRight(h)
	}
	if 0 == cmp.Compare(key, h.key) {
		// take over the smallest key of the right branch
		// then delete that node from the right branch
		h.key = h.right.first().key
		h.right = tree.removeMin(h.right)
	} else {
		h.right = tree.remove(key, h.right)
	}
	return tree.balance(h)
}
