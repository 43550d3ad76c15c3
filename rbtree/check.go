// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package rbtree

import (
	"cmp"
	"fmt"

	"github.com/bitmark-inc/algorithm/fault"
)

// Check - verify key ordering, the colour rules and the node count
//
// returns nil for a consistent tree, otherwise an error naming the
// first node found to be at fault
func (tree *Tree[K]) Check() error {
	if tree.root.isRed() {
		return fmt.Errorf("node: %v: %w", tree.root.key, fault.ErrRootNotBlack)
	}
	n, _, err := check(tree.root, nil, nil)
	if nil != err {
		return err
	}
	if n != tree.count {
		return fmt.Errorf("count: %d  actual nodes: %d: %w", tree.count, n, fault.ErrCountMismatch)
	}
	return nil
}

// internal: consistency checker, returns node count and the number of
// black links from p down to any empty sub-tree
// low and high bound the keys permitted in the sub-tree
func check[K cmp.Ordered](p *node[K], low *K, high *K) (int, int, error) {
	if nil == p {
		return 0, 0, nil
	}
	if (nil != low && cmp.Compare(p.key, *low) <= 0) || (nil != high && cmp.Compare(p.key, *high) >= 0) {
		return 0, 0, fmt.Errorf("node: %v: %w", p.key, fault.ErrOrderViolation)
	}
	if p.right.isRed() {
		return 0, 0, fmt.Errorf("node: %v: %w", p.key, fault.ErrRightLeaningRed)
	}
	if p.isRed() && p.left.isRed() {
		return 0, 0, fmt.Errorf("node: %v: %w", p.key, fault.ErrDoubleRed)
	}
	ln, lb, err := check(p.left, low, &p.key)
	if nil != err {
		return 0, 0, err
	}
	rn, rb, err := check(p.right, &p.key, high)
	if nil != err {
		return 0, 0, err
	}
	if lb != rb {
		return 0, 0, fmt.Errorf("node: %v  left: %d  right: %d: %w", p.key, lb, rb, fault.ErrBlackHeightMismatch)
	}
	if !p.isRed() {
		lb += 1
	}
	return 1 + ln + rn, lb, nil
}
