// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package rebalance

import (
	"github.com/bitmark-inc/algorithm/counter"
)

// Recorder - receives every rebalancing step taken by a tree
type Recorder interface {
	Record(action Action)
}

type discard struct{}

func (discard) Record(Action) {}

// Discard - a recorder that ignores everything
var Discard Recorder = discard{}

// Counts - a recorder that tallies each action
//
// the zero value is ready to use
type Counts struct {
	counters [maximum]counter.Counter
}

// NewCounts - create an empty tally
func NewCounts() *Counts {
	return &Counts{}
}

// Record - count one occurrence of an action, unknown actions are ignored
func (c *Counts) Record(action Action) {
	if !action.Valid() {
		return
	}
	c.counters[action].Increment()
}

// Count - number of times an action was recorded
func (c *Counts) Count(action Action) uint64 {
	if !action.Valid() {
		return 0
	}
	return c.counters[action].Uint64()
}

// Total - number of actions recorded
func (c *Counts) Total() uint64 {
	total := uint64(0)
	for i := range c.counters {
		total += c.counters[i].Uint64()
	}
	return total
}

// Exercised - the actions that were recorded at least once
func (c *Counts) Exercised() []Action {
	seen := []Action{}
	for _, a := range Actions() {
		if !c.counters[a].IsZero() {
			seen = append(seen, a)
		}
	}
	return seen
}

// Missing - the subset of expected actions that were never recorded
func (c *Counts) Missing(expected ...Action) []Action {
	missing := []Action{}
	for _, a := range expected {
		if 0 == c.Count(a) {
			missing = append(missing, a)
		}
	}
	return missing
}

// Merge - add all tallies from another set of counts
func (c *Counts) Merge(other *Counts) {
	if nil == other {
		return
	}
	for i := range other.counters {
		if n := other.counters[i].Uint64(); n > 0 {
			c.counters[i].Add(n)
		}
	}
}

// Reset - clear all tallies
func (c *Counts) Reset() {
	for i := range c.counters {
		c.counters[i].Reset()
	}
}

// Map - non-zero tallies keyed by action name
func (c *Counts) Map() map[string]uint64 {
	m := make(map[string]uint64)
	for _, a := range c.Exercised() {
		m[a.String()] = c.counters[a].Uint64()
	}
	return m
}
