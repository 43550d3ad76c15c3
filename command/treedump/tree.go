// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"cmp"
	"fmt"
	"io"

	"github.com/bitmark-inc/algorithm/avl"
	"github.com/bitmark-inc/algorithm/fault"
	"github.com/bitmark-inc/algorithm/rbtree"
	"github.com/bitmark-inc/algorithm/rebalance"
)

// what the runner needs from either kind of tree
type dumper[K cmp.Ordered] interface {
	insert(key K)
	remove(key K)
	removeMin()
	removeMax()
	setRecorder(r rebalance.Recorder)
	count() int
	height() int
	min() (K, bool)
	max() (K, bool)
	order(name string) []K
	colors() []rbtree.Info[K]
	check() error
	print(w io.Writer, colour bool) int
	actions() []rebalance.Action
}

func newDumper[K cmp.Ordered](kind string) (dumper[K], error) {
	switch kind {
	case treeAVL:
		return &avlDumper[K]{tree: avl.New[K]()}, nil
	case treeRB:
		return &rbDumper[K]{tree: rbtree.New[K]()}, nil
	default:
		return nil, fmt.Errorf("tree: %q: %w", kind, fault.ErrUnknownTreeKind)
	}
}

type avlDumper[K cmp.Ordered] struct {
	tree *avl.Tree[K]
}

func (d *avlDumper[K]) insert(key K) { d.tree.Insert(key) }
func (d *avlDumper[K]) remove(key K) { d.tree.Remove(key) }

// an AVL tree has no dedicated minimum removal so search then remove
func (d *avlDumper[K]) removeMin() {
	if key, ok := d.tree.FindMin(); ok {
		d.tree.Remove(key)
	}
}

func (d *avlDumper[K]) removeMax() {
	if key, ok := d.tree.FindMax(); ok {
		d.tree.Remove(key)
	}
}

func (d *avlDumper[K]) setRecorder(r rebalance.Recorder) { d.tree.SetRecorder(r) }
func (d *avlDumper[K]) count() int                       { return d.tree.Count() }
func (d *avlDumper[K]) height() int                      { return d.tree.Height() }
func (d *avlDumper[K]) min() (K, bool)                   { return d.tree.FindMin() }
func (d *avlDumper[K]) max() (K, bool)                   { return d.tree.FindMax() }
func (d *avlDumper[K]) colors() []rbtree.Info[K]         { return nil }
func (d *avlDumper[K]) check() error                     { return d.tree.Check() }
func (d *avlDumper[K]) print(w io.Writer, _ bool) int    { return d.tree.Print(w) }
func (d *avlDumper[K]) actions() []rebalance.Action      { return rebalance.AVLActions() }

func (d *avlDumper[K]) order(name string) []K {
	switch name {
	case orderPre:
		return d.tree.PreOrder()
	case orderIn:
		return d.tree.InOrder()
	case orderPost:
		return d.tree.PostOrder()
	default:
		return nil
	}
}

type rbDumper[K cmp.Ordered] struct {
	tree *rbtree.Tree[K]
}

func (d *rbDumper[K]) insert(key K)                       { d.tree.Insert(key) }
func (d *rbDumper[K]) remove(key K)                       { d.tree.Remove(key) }
func (d *rbDumper[K]) removeMin()                         { d.tree.RemoveMin() }
func (d *rbDumper[K]) removeMax()                         { d.tree.RemoveMax() }
func (d *rbDumper[K]) setRecorder(r rebalance.Recorder)   { d.tree.SetRecorder(r) }
func (d *rbDumper[K]) count() int                         { return d.tree.Count() }
func (d *rbDumper[K]) height() int                        { return d.tree.Height() }
func (d *rbDumper[K]) min() (K, bool)                     { return d.tree.Min() }
func (d *rbDumper[K]) max() (K, bool)                     { return d.tree.Max() }
func (d *rbDumper[K]) colors() []rbtree.Info[K]           { return d.tree.PreOrderWithColor() }
func (d *rbDumper[K]) check() error                       { return d.tree.Check() }
func (d *rbDumper[K]) print(w io.Writer, colour bool) int { return d.tree.Print(w, colour) }
func (d *rbDumper[K]) actions() []rebalance.Action        { return rebalance.RedBlackActions() }

func (d *rbDumper[K]) order(name string) []K {
	switch name {
	case orderPre:
		return d.tree.PreOrder()
	case orderIn:
		return d.tree.InOrder()
	case orderPost:
		return d.tree.PostOrder()
	default:
		return nil
	}
}
