// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"cmp"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/bitmark-inc/logger"

	"github.com/bitmark-inc/algorithm/fault"
	"github.com/bitmark-inc/algorithm/rbtree"
	"github.com/bitmark-inc/algorithm/rebalance"
	"github.com/bitmark-inc/algorithm/util"
)

// Report - the final state of the tree after the script has run
type Report[K cmp.Ordered] struct {
	Tree        string            `json:"tree" yaml:"tree"`
	KeyType     string            `json:"key_type" yaml:"key_type"`
	Steps       int               `json:"steps" yaml:"steps"`
	Count       int               `json:"count" yaml:"count"`
	Height      int               `json:"height" yaml:"height"`
	Min         *K                `json:"min,omitempty" yaml:"min,omitempty"`
	Max         *K                `json:"max,omitempty" yaml:"max,omitempty"`
	Traversals  map[string][]K    `json:"traversals,omitempty" yaml:"traversals,omitempty"`
	Colors      []rbtree.Info[K]  `json:"colors,omitempty" yaml:"colors,omitempty"`
	Rebalance   map[string]uint64 `json:"rebalance" yaml:"rebalance"`
	Unexercised []string          `json:"unexercised,omitempty" yaml:"unexercised,omitempty"`
}

// run the script using the configured key type
//
// when drawing is not nil the final tree is drawn there
func run(config *Configuration, log *logger.L, drawing io.Writer, colour bool) (interface{}, error) {
	switch config.KeyType {
	case keyInt:
		return runScript(config, log, drawing, colour, func(s string) (int, error) {
			return strconv.Atoi(strings.TrimSpace(s))
		})
	case keyString:
		return runScript(config, log, drawing, colour, func(s string) (string, error) {
			return s, nil
		})
	default:
		return nil, fmt.Errorf("key_type: %q: %w", config.KeyType, fault.ErrUnknownKeyType)
	}
}

func runScript[K cmp.Ordered](config *Configuration, log *logger.L, drawing io.Writer, colour bool, parse func(string) (K, error)) (*Report[K], error) {

	tree, err := newDumper[K](config.Tree)
	if nil != err {
		return nil, err
	}

	counts := rebalance.NewCounts()
	tree.setRecorder(counts)

	for i, step := range config.Steps {
		keys := make([]K, 0, len(step.Keys))
		for _, s := range step.Keys {
			key, err := parse(s)
			if nil != err {
				return nil, fmt.Errorf("step: %d  key: %q: %w: %w", i+1, s, fault.ErrScriptFailed, err)
			}
			keys = append(keys, key)
		}

		switch step.Op {
		case opInsert:
			for _, key := range keys {
				tree.insert(key)
			}
		case opRemove:
			for _, key := range keys {
				tree.remove(key)
			}
		case opRemoveMin:
			tree.removeMin()
		case opRemoveMax:
			tree.removeMax()
		default:
			return nil, fmt.Errorf("step: %d  op: %q: %w", i+1, step.Op, fault.ErrUnknownOperation)
		}
		util.LogDebug(log, util.CoCyan, fmt.Sprintf("step: %d  op: %s  keys: %v  count: %d", i+1, step.Op, keys, tree.count()))

		if config.Check {
			if err := tree.check(); nil != err {
				return nil, fmt.Errorf("step: %d  op: %s: %w: %w", i+1, step.Op, fault.ErrScriptFailed, err)
			}
		}
	}

	report := &Report[K]{
		Tree:       config.Tree,
		KeyType:    config.KeyType,
		Steps:      len(config.Steps),
		Count:      tree.count(),
		Height:     tree.height(),
		Traversals: make(map[string][]K),
		Rebalance:  counts.Map(),
	}
	if key, ok := tree.min(); ok {
		report.Min = &key
	}
	if key, ok := tree.max(); ok {
		report.Max = &key
	}
	for _, order := range config.Orders {
		if orderColor == order {
			report.Colors = tree.colors()
			continue
		}
		report.Traversals[order] = tree.order(order)
	}
	for _, a := range counts.Missing(tree.actions()...) {
		report.Unexercised = append(report.Unexercised, a.String())
	}

	util.LogInfo(log, util.CoGreen, fmt.Sprintf("%s: count: %d  height: %d  rebalance steps: %d", config.Tree, report.Count, report.Height, counts.Total()))
	if 0 != len(report.Unexercised) {
		util.LogWarn(log, util.CoYellow, fmt.Sprintf("actions never taken: %v", report.Unexercised))
	}

	if nil != drawing {
		depth := tree.print(drawing, colour)
		log.Infof("drawn depth: %d", depth)
	}

	return report, nil
}
