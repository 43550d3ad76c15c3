// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package traversal

// Stack - a last in first out list
type Stack[T any] struct {
	items []T
}

// NewStack - create a stack with room for n items before growing
func NewStack[T any](n int) *Stack[T] {
	return &Stack[T]{
		items: make([]T, 0, n),
	}
}

// Push - add an item to the top
func (s *Stack[T]) Push(item T) {
	s.items = append(s.items, item)
}

// Pop - remove the top item, false if the stack was empty
func (s *Stack[T]) Pop() (T, bool) {
	var zero T
	n := len(s.items)
	if 0 == n {
		return zero, false
	}
	item := s.items[n-1]
	s.items[n-1] = zero // release reference
	s.items = s.items[:n-1]
	return item, true
}

// Len - number of items on the stack
func (s *Stack[T]) Len() int {
	return len(s.items)
}

// IsEmpty - true if nothing can be popped
func (s *Stack[T]) IsEmpty() bool {
	return 0 == len(s.items)
}
