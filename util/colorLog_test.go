// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package util_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/bitmark-inc/algorithm/util"
)

func TestColourise(t *testing.T) {
	assert.Equal(t, "\x1b[31mred\x1b[0m", util.Colourise(true, util.CoRed, "red"))
	assert.Equal(t, "plain", util.Colourise(false, util.CoRed, "plain"))
	assert.Equal(t, "none", util.Colourise(true, "", "none"))
}
