// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package traversal

// Node - what a walk needs from a tree node
//
// N is the node type itself, normally a pointer, where a nil pointer
// is the empty sentinel and must report IsEmpty() == true
type Node[K any, N any] interface {
	Key() K
	Left() N
	Right() N
	IsEmpty() bool
}

// Order - the sequence in which a walk visits nodes
type Order int

// the classic depth first orders
const (
	Pre Order = iota
	In
	Post
)

// String - name of the order
func (o Order) String() string {
	switch o {
	case Pre:
		return "pre"
	case In:
		return "in"
	case Post:
		return "post"
	default:
		return "*Unknown*"
	}
}

// Walk - visit every node below root in the given order
//
// stops early when fn returns false; an unknown order visits nothing
func Walk[K any, N Node[K, N]](root N, order Order, fn func(N) bool) {
	if root.IsEmpty() {
		return
	}
	switch order {
	case Pre:
		preOrder[K](root, fn)
	case In:
		inOrder[K](root, fn)
	case Post:
		postOrder[K](root, fn)
	}
}

// PreOrder - keys with each node before its children, nil if empty
func PreOrder[K any, N Node[K, N]](root N) []K {
	return collect[K](root, Pre)
}

// InOrder - keys with each node between its children, nil if empty
func InOrder[K any, N Node[K, N]](root N) []K {
	return collect[K](root, In)
}

// PostOrder - keys with each node after its children, nil if empty
func PostOrder[K any, N Node[K, N]](root N) []K {
	return collect[K](root, Post)
}

func collect[K any, N Node[K, N]](root N, order Order) []K {
	if root.IsEmpty() {
		return nil
	}
	keys := make([]K, 0, 16)
	Walk[K](root, order, func(n N) bool {
		keys = append(keys, n.Key())
		return true
	})
	return keys
}

// node, then left, then right: right is pushed first so left pops first
func preOrder[K any, N Node[K, N]](root N, fn func(N) bool) {
	s := NewStack[N](16)
	s.Push(root)
	for {
		n, ok := s.Pop()
		if !ok {
			return
		}
		if !fn(n) {
			return
		}
		if r := n.Right(); !r.IsEmpty() {
			s.Push(r)
		}
		if l := n.Left(); !l.IsEmpty() {
			s.Push(l)
		}
	}
}

// push the whole left spine, visit, then continue with the right child
func inOrder[K any, N Node[K, N]](root N, fn func(N) bool) {
	s := NewStack[N](16)
	p := root
	for !p.IsEmpty() || !s.IsEmpty() {
		for !p.IsEmpty() {
			s.Push(p)
			p = p.Left()
		}
		p, _ = s.Pop()
		if !fn(p) {
			return
		}
		p = p.Right()
	}
}

// node, right, left collected then replayed backwards
func postOrder[K any, N Node[K, N]](root N, fn func(N) bool) {
	s := NewStack[N](16)
	nodes := make([]N, 0, 16)
	s.Push(root)
	for {
		n, ok := s.Pop()
		if !ok {
			break
		}
		nodes = append(nodes, n)
		if l := n.Left(); !l.IsEmpty() {
			s.Push(l)
		}
		if r := n.Right(); !r.IsEmpty() {
			s.Push(r)
		}
	}
	for i := len(nodes) - 1; i >= 0; i -= 1 {
		if !fn(nodes[i]) {
			return
		}
	}
}
