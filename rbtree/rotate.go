// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package rbtree

import (
	"github.com/bitmark-inc/algorithm/rebalance"
)

// turn a right leaning red link to the left
//
//	  h                x
//	 / \            / \
//	a   x     →     h   c
//	   / \         / \
//	  b   c        a   b
//
// x takes over the colour of h and h becomes red
func (tree *Tree[K]) rotateLeft(h *node[K]) *node[K] {
	if nil == h || nil == h.right {
		return h
	}
	tree.record(rebalance.RotateLeft)
	x := h.right
	h.right = x.left
	x.left = h
	x.color = h.color
	h.color = Red
	return x
}

// mirror of rotateLeft
func (tree *Tree[K]) rotateRight(h *node[K]) *node[K] {
	if nil == h || nil == h.left {
		return h
	}
	tree.record(rebalance.RotateRight)
	x := h.left
	h.left = x.right
	x.right = h
	x.color = h.color
	h.color = Red
	return x
}

// toggle the colour of a node and of both its children
//
// splits a temporary 4-node on the way up, or joins three nodes into
// one on the way down
func (tree *Tree[K]) flipColors(h *node[K]) {
	if nil == h {
		return
	}
	tree.record(rebalance.FlipColors)
	h.flip()
	h.left.flip()
	h.right.flip()
}

func (p *node[K]) flip() {
	if nil == p {
		return
	}
	if Red == p.color {
		p.color = Black
	} else {
		p.color = Red
	}
}

// make h.left or one of its children red, h must be red with both
// h.left and h.left.left black
func (tree *Tree[K]) moveRedLeft(h *node[K]) *node[K] {
	if nil == h || nil == h.left || nil == h.right {
		return h
	}
	tree.record(rebalance.MoveRedLeft)
	tree.flipColors(h)
	if h.right.left.isRed() {
		h.right = tree.rotateRight(h.right)
		h = tree.rotateLeft(h)
		tree.flipColors(h)
	}
	return h
}

// make h.right or one of its children red, h must be red with both
// h.right and h.right.left black
func (tree *Tree[K]) moveRedRight(h *node[K]) *node[K] {
	if nil == h || nil == h.left || nil == h.right {
		return h
	}
	tree.record(rebalance.MoveRedRight)
	tree.flipColors(h)
	if h.left.left.isRed() {
		h = tree.rotateRight(h)
		tree.flipColors(h)
	}
	return h
}

// restore the left leaning invariants at h on the way back up
//
// each test sees the result of the one before it
func (tree *Tree[K]) balance(h *node[K]) *node[K] {
	if nil == h {
		return nil
	}
	if h.right.isRed() && !h.left.isRed() {
		h = tree.rotateLeft(h)
	}
	if h.left.isRed() && h.left.left.isRed() {
		h = tree.rotateRight(h)
	}
	if h.left.isRed() && h.right.isRed() {
		tree.flipColors(h)
	}
	return h
}
