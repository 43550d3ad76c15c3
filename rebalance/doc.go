// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package rebalance - names the structural fix-ups performed by the
// balanced trees and provides recorders to observe them
//
// A tree reports every rotation, colour flip and red-link move to its
// Recorder.  The default recorder discards everything; Counts keeps a
// tally per action so that a test run can verify that every branch of
// the rebalancing code was exercised.
package rebalance
