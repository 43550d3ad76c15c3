// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package avl_test

import (
	"bytes"
	"math"
	"math/rand"
	"sort"
	"strings"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bitmark-inc/algorithm/avl"
	"github.com/bitmark-inc/algorithm/mocks"
	"github.com/bitmark-inc/algorithm/rebalance"
)

// the classic sequence that passes through every rotation case
var weissList = []int{3, 2, 1, 4, 5, 6, 7, 16, 15, 14, 13, 12, 11, 10, 8, 9}

func build(keys ...int) *avl.Tree[int] {
	tree := avl.New[int]()
	for _, key := range keys {
		tree.Insert(key)
	}
	return tree
}

func checkTree[K int | float64 | string](t *testing.T, tree *avl.Tree[K]) {
	t.Helper()
	if err := tree.Check(); nil != err {
		var b strings.Builder
		depth := tree.Print(&b)
		t.Logf("depth: %d\n%s", depth, b.String())
		t.Fatalf("inconsistent tree: %s", err)
	}
}

func TestFindMinMax(t *testing.T) {
	tree := build(weissList...)

	min, ok := tree.FindMin()
	assert.True(t, ok, "no minimum")
	assert.Equal(t, 1, min)

	max, ok := tree.FindMax()
	assert.True(t, ok, "no maximum")
	assert.Equal(t, 16, max)
}

func TestTraversals(t *testing.T) {
	tree := build(weissList...)
	checkTree(t, tree)

	assert.Equal(t, []int{7, 4, 2, 1, 3, 6, 5, 13, 11, 9, 8, 10, 12, 15, 14, 16}, tree.PreOrder())
	assert.Equal(t, []int{1, 2, 3, 4, 5, 6, 7, 8, 9, 10, 11, 12, 13, 14, 15, 16}, tree.InOrder())
	assert.Equal(t, []int{1, 3, 2, 5, 6, 4, 8, 10, 9, 12, 11, 14, 16, 15, 13, 7}, tree.PostOrder())
	assert.Equal(t, 5, tree.Height())
	assert.Equal(t, 16, tree.Count())
}

func TestRemove(t *testing.T) {
	removeList := []struct {
		name     string
		add      []int
		remove   []int
		preOrder []int
	}{
		{
			name:     "no rotation",
			add:      weissList,
			remove:   []int{8},
			preOrder: []int{7, 4, 2, 1, 3, 6, 5, 13, 11, 9, 10, 12, 15, 14, 16},
		},
		{
			name:     "LL",
			add:      weissList,
			remove:   []int{10, 12},
			preOrder: []int{7, 4, 2, 1, 3, 6, 5, 13, 9, 8, 11, 15, 14, 16},
		},
		{
			name:     "RR",
			add:      append(append([]int{}, weissList...), 17),
			remove:   []int{14},
			preOrder: []int{7, 4, 2, 1, 3, 6, 5, 13, 11, 9, 8, 10, 12, 16, 15, 17},
		},
		{
			name:     "LR",
			add:      weissList,
			remove:   []int{8, 12},
			preOrder: []int{7, 4, 2, 1, 3, 6, 5, 13, 10, 9, 11, 15, 14, 16},
		},
		{
			name:     "RL",
			add:      []int{3, 2, 1, 4, 5, 6, 7, 16, 15, 14, 13, 12, 11, 9},
			remove:   []int{1, 3, 2},
			preOrder: []int{7, 5, 4, 6, 13, 11, 9, 12, 15, 14, 16},
		},
	}

	for _, item := range removeList {
		tree := build(item.add...)
		for _, key := range item.remove {
			tree.Remove(key)
			checkTree(t, tree)
		}
		assert.Equal(t, item.preOrder, tree.PreOrder(), "case: %s", item.name)
		assert.Equal(t, len(item.preOrder), tree.Count(), "case: %s", item.name)
		for _, key := range item.remove {
			assert.False(t, tree.Contains(key), "case: %s  key: %d still present", item.name, key)
		}
	}
}

func TestRemoveAbsent(t *testing.T) {
	tree := build(weissList...)
	before := tree.PreOrder()

	tree.Remove(0).Remove(100)

	assert.Equal(t, before, tree.PreOrder())
	assert.Equal(t, len(weissList), tree.Count())

	empty := avl.New[int]()
	empty.Remove(1)
	assert.True(t, empty.IsEmpty())
}

func TestContains(t *testing.T) {
	tree := avl.New[int]()
	tree.Insert(5).Insert(4).Insert(3).Insert(6).Insert(2)

	assert.True(t, tree.Contains(6))
	assert.False(t, tree.Contains(1))
	assert.False(t, tree.Contains(7))
}

func TestEmpty(t *testing.T) {
	tree := avl.New[string]()

	assert.True(t, tree.IsEmpty())
	assert.Equal(t, 0, tree.Height())
	assert.Equal(t, 0, tree.Count())
	assert.False(t, tree.Contains("x"))

	_, ok := tree.FindMin()
	assert.False(t, ok, "empty tree has a minimum")
	_, ok = tree.FindMax()
	assert.False(t, ok, "empty tree has a maximum")

	assert.Nil(t, tree.PreOrder())
	assert.Nil(t, tree.InOrder())
	assert.Nil(t, tree.PostOrder())
	assert.NoError(t, tree.Check())

	tree.Insert("one")
	assert.False(t, tree.IsEmpty())
	assert.Equal(t, 1, tree.Height())
}

// a zero tree that did not come from New must still work
func TestZeroTree(t *testing.T) {
	var tree avl.Tree[int]
	tree.Insert(3).Insert(2).Insert(1)
	assert.Equal(t, []int{2, 1, 3}, tree.PreOrder())
}

// to make sure that duplicates neither grow the tree nor the count
func TestDuplicates(t *testing.T) {
	tree := build(weissList...)
	before := tree.PreOrder()

	for _, key := range weissList {
		tree.Insert(key)
	}

	assert.Equal(t, before, tree.PreOrder())
	assert.Equal(t, len(weissList), tree.Count())
	checkTree(t, tree)
}

func TestStringKeys(t *testing.T) {
	addList := []string{
		"4201", "1254", "8608", "1639", "8950",
		"6740", "1720", "0506", "8382", "6774",
	}

	tree := avl.New[string]()
	for _, key := range addList {
		tree.Insert(key)
	}
	checkTree(t, tree)

	expected := append([]string{}, addList...)
	sort.Strings(expected)
	assert.Equal(t, expected, tree.InOrder())
}

// every insertion order gives a balanced tree with keys in order
func TestRandomTree(t *testing.T) {
	r := rand.New(rand.NewSource(1))

	for round := 0; round < 50; round += 1 {
		total := 1 + r.Intn(500)
		randomTree(t, r, total)
	}
}

func randomTree(t *testing.T, r *rand.Rand, total int) {
	tree := avl.New[int]()
	present := make(map[int]struct{})

	for i := 0; i < total; i += 1 {
		key := r.Intn(1000)
		tree.Insert(key)
		present[key] = struct{}{}
	}
	checkTree(t, tree)
	require.Equal(t, len(present), tree.Count())

	keys := tree.InOrder()
	for i := 1; i < len(keys); i += 1 {
		require.Less(t, keys[i-1], keys[i], "in order not ascending at: %d", i)
	}

	// delete a random selection, checking after each one
	for i := 0; i < total; i += 1 {
		key := r.Intn(1000)
		tree.Remove(key)
		delete(present, key)
		checkTree(t, tree)
	}

	for key := 0; key < 1000; key += 1 {
		_, ok := present[key]
		require.Equal(t, ok, tree.Contains(key), "key: %d", key)
	}
	require.Equal(t, len(present), tree.Count())

	// delete remainder
	for key := range present {
		tree.Remove(key)
	}
	require.True(t, tree.IsEmpty(), "remaining nodes")
	require.Equal(t, 0, tree.Count())
}

func TestRemoveThenReinsert(t *testing.T) {
	for _, key := range weissList {
		tree := build(weissList...)
		expected := tree.InOrder()

		tree.Remove(key)
		assert.False(t, tree.Contains(key))
		tree.Insert(key)

		assert.True(t, tree.Contains(key))
		assert.Equal(t, expected, tree.InOrder(), "key: %d", key)
		checkTree(t, tree)
	}
}

// rebuilding from a pre-order keeps the key sequence
func TestPreOrderRoundTrip(t *testing.T) {
	tree := build(weissList...)

	copied := build(tree.PreOrder()...)

	assert.Equal(t, tree.InOrder(), copied.InOrder())
	checkTree(t, copied)
}

func TestRebalanceCounts(t *testing.T) {
	counts := rebalance.NewCounts()

	tree := avl.New[int]()
	tree.SetRecorder(counts)
	for _, key := range weissList {
		tree.Insert(key)
	}

	assert.Equal(t, uint64(4), counts.Count(rebalance.LL))
	assert.Equal(t, uint64(4), counts.Count(rebalance.RR))
	assert.Equal(t, uint64(1), counts.Count(rebalance.LR))
	assert.Equal(t, uint64(2), counts.Count(rebalance.RL))
	assert.Empty(t, counts.Missing(rebalance.AVLActions()...))

	counts.Reset()
	tree.Remove(10).Remove(12)
	assert.Equal(t, map[string]uint64{"LL": 1}, counts.Map())

	// detaching stops the tally
	tree.SetRecorder(nil)
	tree.Insert(100).Insert(101).Insert(102)
	assert.Equal(t, uint64(1), counts.Total())
}

func TestRotationCases(t *testing.T) {
	caseList := []struct {
		keys   []int
		action rebalance.Action
	}{
		{[]int{3, 2, 1}, rebalance.LL},
		{[]int{1, 2, 3}, rebalance.RR},
		{[]int{3, 1, 2}, rebalance.LR},
		{[]int{1, 3, 2}, rebalance.RL},
	}

	for _, item := range caseList {
		ctl := gomock.NewController(t)
		m := mocks.NewMockRecorder(ctl)
		m.EXPECT().Record(item.action).Times(1)

		tree := avl.New[int]()
		tree.SetRecorder(m)
		for _, key := range item.keys {
			tree.Insert(key)
		}
		ctl.Finish()

		assert.Equal(t, []int{2, 1, 3}, tree.PreOrder(), "case: %s", item.action)
	}
}

// when both grandchildren on the heavy side have the same height a
// single rotation is enough
func TestRemoveEqualHeights(t *testing.T) {
	caseList := []struct {
		add      []int
		remove   int
		action   rebalance.Action
		preOrder []int
	}{
		{[]int{5, 6, 2, 1, 3}, 6, rebalance.LL, []int{2, 1, 5, 3}},
		{[]int{2, 1, 5, 4, 6}, 1, rebalance.RR, []int{5, 2, 4, 6}},
	}

	for _, item := range caseList {
		tree := build(item.add...)

		ctl := gomock.NewController(t)
		m := mocks.NewMockRecorder(ctl)
		m.EXPECT().Record(item.action).Times(1)

		tree.SetRecorder(m)
		tree.Remove(item.remove)
		ctl.Finish()

		checkTree(t, tree)
		assert.Equal(t, item.preOrder, tree.PreOrder(), "case: %s", item.action)
		assert.Equal(t, 3, tree.Height(), "case: %s", item.action)
	}
}

// NaN sorts below every other float64 and matches itself
func TestNaNKey(t *testing.T) {
	tree := avl.New[float64]()
	tree.Insert(2).Insert(1).Insert(math.NaN()).Insert(3)
	checkTree(t, tree)

	require.True(t, tree.Contains(math.NaN()), "NaN not found")
	min, ok := tree.FindMin()
	require.True(t, ok, "no minimum")
	assert.True(t, math.IsNaN(min), "minimum: %v", min)

	tree.Remove(math.NaN())
	checkTree(t, tree)

	assert.False(t, tree.Contains(math.NaN()), "NaN still present")
	assert.Equal(t, 3, tree.Count())
	assert.Equal(t, []float64{1, 2, 3}, tree.InOrder())
}

func TestPrint(t *testing.T) {
	tree := build(weissList...)

	var b bytes.Buffer
	depth := tree.Print(&b)

	assert.Equal(t, tree.Height(), depth)
	assert.Equal(t, tree.Count(), strings.Count(b.String(), "\n"), "one line per node")
	assert.Contains(t, b.String(), "|------+ 7 h:5")

	b.Reset()
	assert.Equal(t, 0, avl.New[int]().Print(&b))
	assert.Empty(t, b.String())
}
