// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package avl

import (
	"cmp"

	"github.com/bitmark-inc/algorithm/rebalance"
)

// heights of the two sub-trees may differ by this much
const allowedImbalance = 1

// restore the height condition at p and return the new sub-tree root
//
// the sub-trees of p must already be balanced
func (tree *Tree[K]) balance(p *node[K]) *node[K] {
	if nil == p {
		return nil
	}

	switch d := p.left.Height() - p.right.Height(); {
	case d > allowedImbalance: // left branch too high
		p1 := p.left
		if p1.left.Height() >= p1.right.Height() {
			// single LL rotation
			tree.record(rebalance.LL)
			p = rotateRight(p)
		} else {
			// double LR rotation
			tree.record(rebalance.LR)
			p.left = rotateLeft(p1)
			p = rotateRight(p)
		}
	case d < -allowedImbalance: // right branch too high
		p1 := p.right
		if p1.right.Height() >= p1.left.Height() {
			// single RR rotation
			tree.record(rebalance.RR)
			p = rotateLeft(p)
		} else {
			// double RL rotation
			tree.record(rebalance.RL)
			p.right = rotateRight(p1)
			p = rotateLeft(p)
		}
	}
	p.updateHeight()
	return p
}

// promote the left child of k2
//
//	     k2          k1
//	    /  \        /  \
//	   k1   z  →   x   k2
//	  /  \            /  \
//	 x    y          y    z
func rotateRight[K cmp.Ordered](k2 *node[K]) *node[K] {
	if nil == k2 || nil == k2.left {
		return k2
	}
	k1 := k2.left
	k2.left = k1.right
	k1.right = k2
	k2.updateHeight()
	k1.updateHeight()
	return k1
}

// promote the right child of k1, mirror of rotateRight
func rotateLeft[K cmp.Ordered](k1 *node[K]) *node[K] {
	if nil == k1 || nil == k1.right {
		return k1
	}
	k2 := k1.right
	k1.right = k2.left
	k2.left = k1
	k1.updateHeight()
	k2.updateHeight()
	return k2
}
