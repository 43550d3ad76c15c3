// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package avl

import (
	"github.com/bitmark-inc/algorithm/traversal"
)

// PreOrder - keys with each node before its sub-trees, nil if empty
func (tree *Tree[K]) PreOrder() []K {
	return traversal.PreOrder[K](tree.root)
}

// InOrder - keys in ascending order, nil if empty
func (tree *Tree[K]) InOrder() []K {
	return traversal.InOrder[K](tree.root)
}

// PostOrder - keys with each node after its sub-trees, nil if empty
func (tree *Tree[K]) PostOrder() []K {
	return traversal.PostOrder[K](tree.root)
}
