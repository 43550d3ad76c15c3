// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package avl

import (
	"cmp"
	"fmt"

	"github.com/bitmark-inc/algorithm/fault"
)

// Check - verify key ordering, stored heights, the balance condition
// and the node count
//
// returns nil for a consistent tree, otherwise an error naming the
// first node found to be at fault
func (tree *Tree[K]) Check() error {
	n, _, err := check(tree.root, nil, nil)
	if nil != err {
		return err
	}
	if n != tree.count {
		return fmt.Errorf("count: %d  actual nodes: %d: %w", tree.count, n, fault.ErrCountMismatch)
	}
	return nil
}

// internal: consistency checker, returns node count and height
// low and high bound the keys permitted in the sub-tree
func check[K cmp.Ordered](p *node[K], low *K, high *K) (int, int, error) {
	if nil == p {
		return 0, 0, nil
	}
	if (nil != low && cmp.Compare(p.key, *low) <= 0) || (nil != high && cmp.Compare(p.key, *high) >= 0) {
		return 0, 0, fmt.Errorf("node: %v: %w", p.key, fault.ErrOrderViolation)
	}
	ln, lh, err := check(p.left, low, &p.key)
	if nil != err {
		return 0, 0, err
	}
	rn, rh, err := check(p.right, &p.key, high)
	if nil != err {
		return 0, 0, err
	}
	h := 1 + max(lh, rh)
	if h != p.height {
		return 0, 0, fmt.Errorf("node: %v  height: %d  expected: %d: %w", p.key, p.height, h, fault.ErrHeightMismatch)
	}
	if d := lh - rh; d > allowedImbalance || d < -allowedImbalance {
		return 0, 0, fmt.Errorf("node: %v  left: %d  right: %d: %w", p.key, lh, rh, fault.ErrBalanceViolation)
	}
	return 1 + ln + rn, h, nil
}
