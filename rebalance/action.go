// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package rebalance

// Action - a single rebalancing step
type Action int

// all possible actions
const (
	// AVL cases, named by the heavy grandchild subtree
	LL Action = iota // single rotate right
	RR               // single rotate left
	LR               // left child rotate left, then rotate right
	RL               // right child rotate right, then rotate left

	// left-leaning red-black primitives
	RotateLeft
	RotateRight
	FlipColors
	MoveRedLeft
	MoveRedRight

	maximum
)

var names = [maximum]string{
	LL:           "LL",
	RR:           "RR",
	LR:           "LR",
	RL:           "RL",
	RotateLeft:   "RotateLeft",
	RotateRight:  "RotateRight",
	FlipColors:   "FlipColors",
	MoveRedLeft:  "MoveRedLeft",
	MoveRedRight: "MoveRedRight",
}

// String - name of the action
func (a Action) String() string {
	if a < 0 || a >= maximum {
		return "*Unknown*"
	}
	return names[a]
}

// Valid - true if the action is one of the defined constants
func (a Action) Valid() bool {
	return a >= 0 && a < maximum
}

// AVLActions - the actions an AVL tree can report
func AVLActions() []Action {
	return []Action{LL, RR, LR, RL}
}

// RedBlackActions - the actions a red-black tree can report
func RedBlackActions() []Action {
	return []Action{RotateLeft, RotateRight, FlipColors, MoveRedLeft, MoveRedRight}
}

// Actions - every defined action in declaration order
func Actions() []Action {
	all := make([]Action, 0, maximum)
	for a := Action(0); a < maximum; a += 1 {
		all = append(all, a)
	}
	return all
}
