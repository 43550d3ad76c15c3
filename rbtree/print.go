// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package rbtree

import (
	"cmp"
	"fmt"
	"io"

	"github.com/bitmark-inc/algorithm/util"
)

// to control the print routine
type branch int

const (
	root  branch = iota
	left  branch = iota
	right branch = iota
)

// Print - display an ASCII graphic representation of the tree
// red links are drawn in red when colour is set
// returns the maximum depth of the tree
func (tree *Tree[K]) Print(w io.Writer, colour bool) int {
	return printTree(w, tree.root, "", root, colour)
}

// internal print - right branch above, left branch below
func printTree[K cmp.Ordered](w io.Writer, tree *node[K], prefix string, br branch, colour bool) int {
	if nil == tree {
		return 0
	}
	rd := 0
	ld := 0
	if nil != tree.right {
		t := "       "
		if left == br {
			t = "|      "
		}
		rd = printTree(w, tree.right, prefix+t, right, colour)
	}

	link := ""
	switch br {
	case root:
		link = "|------+ "
	case left:
		link = "\\------+ "
	case right:
		link = "/------+ "
	}
	c := ""
	if tree.isRed() {
		c = util.CoRed
	}
	fmt.Fprintf(w, "%s%s%v %s\n", prefix, util.Colourise(colour, c, link), tree.key, tree.color)

	if nil != tree.left {
		t := "       "
		if right == br {
			t = "|      "
		}
		ld = printTree(w, tree.left, prefix+t, left, colour)
	}
	if rd > ld {
		return 1 + rd
	} else {
		return 1 + ld
	}
}
