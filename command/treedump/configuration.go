// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"fmt"
	"maps"
	"os"
	"path/filepath"
	"strings"

	"github.com/bitmark-inc/logger"

	"github.com/bitmark-inc/algorithm/configuration"
	"github.com/bitmark-inc/algorithm/fault"
)

// basic defaults (directories are relative to the configuration file)
const (
	defaultTree    = treeAVL
	defaultKeyType = keyInt
	defaultFormat  = formatJSON

	defaultLogDirectory = "log"
	defaultLogFile      = "treedump.log"
	defaultLogCount     = 10          //  number of log files retained
	defaultLogSize      = 1024 * 1024 // rotate when <logfile> exceeds this size
)

// recognised values
const (
	treeAVL = "avl"
	treeRB  = "rbtree"

	keyInt    = "int"
	keyString = "string"

	formatJSON = "json"
	formatYAML = "yaml"

	orderPre   = "pre"
	orderIn    = "in"
	orderPost  = "post"
	orderColor = "color"

	opInsert    = "insert"
	opRemove    = "remove"
	opRemoveMin = "remove_min"
	opRemoveMax = "remove_max"
)

// to hold log levels
type LoglevelMap map[string]string

// path expanded or calculated defaults
var (
	defaultLogLevels = LoglevelMap{
		logger.DefaultTag: "critical",
	}
	defaultOrders = []string{orderPre, orderIn, orderPost}
)

// StepType - one operation of the script
type StepType struct {
	Op   string   `gluamapper:"op" json:"op"`
	Keys []string `gluamapper:"keys" json:"keys"`
}

// Configuration - the whole script
type Configuration struct {
	Tree    string               `gluamapper:"tree" json:"tree"`
	KeyType string               `gluamapper:"key_type" json:"key_type"`
	Format  string               `gluamapper:"format" json:"format"`
	Check   bool                 `gluamapper:"check" json:"check"`
	Orders  []string             `gluamapper:"orders" json:"orders"`
	Steps   []StepType           `gluamapper:"steps" json:"steps"`
	Logging logger.Configuration `gluamapper:"logging" json:"logging"`
}

// will read decode and verify the configuration
func getConfiguration(configurationFileName string) (*Configuration, error) {

	configurationFileName, err := filepath.Abs(filepath.Clean(configurationFileName))
	if nil != err {
		return nil, err
	}

	// absolute path to the main directory
	dataDirectory, _ := filepath.Split(configurationFileName)

	options := &Configuration{
		Tree:    defaultTree,
		KeyType: defaultKeyType,
		Format:  defaultFormat,
		Check:   false,
		Orders:  nil, // filled after parsing, the decoder reuses existing slices

		Logging: logger.Configuration{
			Directory: defaultLogDirectory,
			File:      defaultLogFile,
			Size:      defaultLogSize,
			Count:     defaultLogCount,
			Levels:    maps.Clone(defaultLogLevels), // the decoder writes into existing maps
		},
	}

	if err := configuration.ParseConfigurationFile(configurationFileName, options); err != nil {
		return nil, err
	}

	if 0 == len(options.Orders) {
		options.Orders = append([]string{}, defaultOrders...)
	}

	if err := options.validate(); nil != err {
		return nil, err
	}

	// fail if the log file is not a simple file name
	switch filepath.Dir(options.Logging.File) {
	case "", ".":
	default:
		return nil, fmt.Errorf("Files: %q is not plain name", options.Logging.File)
	}

	// relative to the script, and create directories if they do not already exist
	if !filepath.IsAbs(options.Logging.Directory) {
		options.Logging.Directory = filepath.Join(dataDirectory, options.Logging.Directory)
	}
	options.Logging.Directory = filepath.Clean(options.Logging.Directory)
	if err := os.MkdirAll(options.Logging.Directory, 0700); nil != err {
		return nil, err
	}

	// done
	return options, nil
}

// normalise case and reject anything that is not recognised
func (c *Configuration) validate() error {
	c.Tree = strings.ToLower(c.Tree)
	switch c.Tree {
	case treeAVL, treeRB:
	default:
		return fmt.Errorf("tree: %q: %w", c.Tree, fault.ErrUnknownTreeKind)
	}

	c.KeyType = strings.ToLower(c.KeyType)
	switch c.KeyType {
	case keyInt, keyString:
	default:
		return fmt.Errorf("key_type: %q: %w", c.KeyType, fault.ErrUnknownKeyType)
	}

	if err := c.setFormat(c.Format); nil != err {
		return err
	}

	for i, order := range c.Orders {
		order = strings.ToLower(order)
		switch order {
		case orderPre, orderIn, orderPost:
		case orderColor:
			if treeRB != c.Tree {
				return fmt.Errorf("order: %q only applies to %s: %w", order, treeRB, fault.ErrUnknownOrder)
			}
		default:
			return fmt.Errorf("order: %q: %w", order, fault.ErrUnknownOrder)
		}
		c.Orders[i] = order
	}

	for i := range c.Steps {
		step := &c.Steps[i]
		step.Op = strings.ToLower(step.Op)
		switch step.Op {
		case opInsert, opRemove:
			if 0 == len(step.Keys) {
				return fmt.Errorf("step: %d  op: %q: %w", i+1, step.Op, fault.ErrMissingKey)
			}
		case opRemoveMin, opRemoveMax:
		default:
			return fmt.Errorf("step: %d  op: %q: %w", i+1, step.Op, fault.ErrUnknownOperation)
		}
	}
	return nil
}

// setFormat - used for both the script and the command line override
func (c *Configuration) setFormat(format string) error {
	format = strings.ToLower(format)
	switch format {
	case formatJSON, formatYAML:
		c.Format = format
		return nil
	default:
		return fmt.Errorf("format: %q: %w", format, fault.ErrUnknownFormat)
	}
}
