// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package util

import (
	"github.com/bitmark-inc/logger"
)

// ANSI terminal codes
const (
	CoReset  = "\x1b[0m"
	CoBright = "\x1b[1m"
	CoDim    = "\x1b[2m"

	CoBlack   = "\x1b[30m"
	CoRed     = "\x1b[31m"
	CoGreen   = "\x1b[32m"
	CoYellow  = "\x1b[33m"
	CoBlue    = "\x1b[34m"
	CoMagenta = "\x1b[35m"
	CoCyan    = "\x1b[36m"
	CoWhite   = "\x1b[37m"

	CoLightGray = "\x1b[90m"
	CoLightRed  = "\x1b[91m"
)

// Colourise - wrap text in a colour code when enabled is set
func Colourise(enabled bool, color string, text string) string {
	if !enabled || "" == color {
		return text
	}
	return color + text + CoReset
}

// LogDebug print message in Debug level with assigned color
func LogDebug(log *logger.L, color string, message string) {
	log.Debugf("%s%s%s", color, message, CoReset)
}

// LogInfo print message in Info level with assigned color
func LogInfo(log *logger.L, color string, message string) {
	log.Infof("%s%s%s", color, message, CoReset)
}

// LogWarn print message in Warn level with assigned color
func LogWarn(log *logger.L, color string, message string) {
	log.Warnf("%s%s%s", color, message, CoReset)
}
