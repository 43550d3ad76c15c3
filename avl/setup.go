// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package avl

import (
	"cmp"

	"github.com/bitmark-inc/algorithm/rebalance"
)

// a node in the tree, nil is the empty tree
type node[K cmp.Ordered] struct {
	left   *node[K] // left sub-tree
	right  *node[K] // right sub-tree
	key    K        // key part for ordering
	height int      // nodes on the longest path down to an empty child
}

// Tree - type to hold the root node of a tree
type Tree[K cmp.Ordered] struct {
	root     *node[K]
	count    int
	recorder rebalance.Recorder
}

// New - create an initially empty tree
func New[K cmp.Ordered]() *Tree[K] {
	return &Tree[K]{
		root:     nil,
		count:    0,
		recorder: rebalance.Discard,
	}
}

// SetRecorder - report every rotation to r, nil stops reporting
func (tree *Tree[K]) SetRecorder(r rebalance.Recorder) {
	if nil == r {
		r = rebalance.Discard
	}
	tree.recorder = r
}

// IsEmpty - true if tree contains no data
func (tree *Tree[K]) IsEmpty() bool {
	return nil == tree.root
}

// Count - number of nodes currently in the tree
func (tree *Tree[K]) Count() int {
	return tree.count
}

// Height - height of the root, zero for an empty tree
func (tree *Tree[K]) Height() int {
	return tree.root.Height()
}

// record is safe on a zero Tree that did not come from New
func (tree *Tree[K]) record(action rebalance.Action) {
	if nil != tree.recorder {
		tree.recorder.Record(action)
	}
}

func newNode[K cmp.Ordered](key K) *node[K] {
	return &node[K]{
		key:    key,
		height: 1,
	}
}

// Key - read the key from a node item
func (p *node[K]) Key() K {
	return p.key
}

// Left - left sub-tree, nil for an empty node
func (p *node[K]) Left() *node[K] {
	if nil == p {
		return nil
	}
	return p.left
}

// Right - right sub-tree, nil for an empty node
func (p *node[K]) Right() *node[K] {
	if nil == p {
		return nil
	}
	return p.right
}

// IsEmpty - true for the empty sentinel
func (p *node[K]) IsEmpty() bool {
	return nil == p
}

// Height - stored height, zero for an empty node
func (p *node[K]) Height() int {
	if nil == p {
		return 0
	}
	return p.height
}

func (p *node[K]) updateHeight() {
	if nil == p {
		return
	}
	p.height = 1 + max(p.left.Height(), p.right.Height())
}

func (p *node[K]) isLeaf() bool {
	return nil != p && nil == p.left && nil == p.right
}
