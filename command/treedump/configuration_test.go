// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"fmt"
	"os"
	"path/filepath"
	"testing"

	"github.com/bitmark-inc/logger"
	"github.com/stretchr/testify/assert"

	"github.com/bitmark-inc/algorithm/fault"
)

func TestGetConfiguration(t *testing.T) {
	fileName := writeScript(t, `
return {
    tree = "RBTree",
    key_type = "String",
    format = "YAML",
    check = true,
    orders = { "Pre", "color" },
    steps = {
        { op = "Insert", keys = { "S", "E", "A" } },
        { op = "remove_min" },
    },
    logging = {
        directory = "logs",
        file = "script.log",
        levels = { DEFAULT = "warn" },
    },
}
`)

	config, err := getConfiguration(fileName)
	assert.Nil(t, err, "configuration error")

	assert.Equal(t, treeRB, config.Tree)
	assert.Equal(t, keyString, config.KeyType)
	assert.Equal(t, formatYAML, config.Format)
	assert.True(t, config.Check)
	assert.Equal(t, []string{orderPre, orderColor}, config.Orders)
	assert.Equal(t, []StepType{
		{Op: opInsert, Keys: []string{"S", "E", "A"}},
		{Op: opRemoveMin},
	}, config.Steps)

	dir := filepath.Dir(fileName)
	assert.Equal(t, filepath.Join(dir, "logs"), config.Logging.Directory)
	info, err := os.Stat(config.Logging.Directory)
	if assert.NoError(t, err, "log directory not created") {
		assert.True(t, info.IsDir())
	}
	assert.Equal(t, "script.log", config.Logging.File)
	assert.Equal(t, "warn", config.Logging.Levels[logger.DefaultTag])
}

func TestConfigurationDefaults(t *testing.T) {
	fileName := writeScript(t, `return { steps = { { op = "insert", keys = { "1" } } } }`)

	config, err := getConfiguration(fileName)
	assert.Nil(t, err, "configuration error")

	assert.Equal(t, treeAVL, config.Tree)
	assert.Equal(t, keyInt, config.KeyType)
	assert.Equal(t, formatJSON, config.Format)
	assert.False(t, config.Check)
	assert.Equal(t, []string{orderPre, orderIn, orderPost}, config.Orders)
	assert.Equal(t, defaultLogFile, config.Logging.File)
	assert.EqualValues(t, defaultLogSize, config.Logging.Size)
	assert.EqualValues(t, defaultLogCount, config.Logging.Count)
	assert.Equal(t, "critical", config.Logging.Levels[logger.DefaultTag])
}

func TestConfigurationErrors(t *testing.T) {
	errorList := []struct {
		script string
		err    error
	}{
		{`return { tree = "btree" }`, fault.ErrUnknownTreeKind},
		{`return { key_type = "float" }`, fault.ErrUnknownKeyType},
		{`return { format = "xml" }`, fault.ErrUnknownFormat},
		{`return { orders = { "level" } }`, fault.ErrUnknownOrder},
		{`return { tree = "avl", orders = { "color" } }`, fault.ErrUnknownOrder},
		{`return { steps = { { op = "insert" } } }`, fault.ErrMissingKey},
		{`return { steps = { { op = "pop" } } }`, fault.ErrUnknownOperation},
	}

	for i, item := range errorList {
		_, err := getConfiguration(writeScript(t, item.script))
		assert.ErrorIs(t, err, item.err, "%d: script: %s", i, item.script)
	}
}

func TestConfigurationBadLogFile(t *testing.T) {
	fileName := writeScript(t, `return { logging = { file = "sub/file.log" } }`)

	_, err := getConfiguration(fileName)
	assert.NotNil(t, err, "path accepted as log file")
}

func TestConfigurationAbsoluteLogDirectory(t *testing.T) {
	logDirectory := t.TempDir() + "/a/../b"
	fileName := writeScript(t, fmt.Sprintf(`return { logging = { directory = %q } }`, logDirectory))

	config, err := getConfiguration(fileName)
	assert.Nil(t, err, "configuration error")
	assert.Equal(t, filepath.Clean(logDirectory), config.Logging.Directory)

	info, err := os.Stat(config.Logging.Directory)
	if assert.NoError(t, err, "log directory not created") {
		assert.True(t, info.IsDir())
	}
}

func TestConfigurationMissingFile(t *testing.T) {
	_, err := getConfiguration(filepath.Join(t.TempDir(), "none.conf"))
	assert.ErrorIs(t, err, fault.ErrNotFoundConfigFile)
}

func TestSetFormat(t *testing.T) {
	config := &Configuration{Format: formatJSON}

	assert.Nil(t, config.setFormat("YAML"))
	assert.Equal(t, formatYAML, config.Format)

	assert.ErrorIs(t, config.setFormat("toml"), fault.ErrUnknownFormat)
	assert.Equal(t, formatYAML, config.Format, "format changed by a bad value")
}
