// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package traversal - iterative depth first walks over binary trees
//
// The walks use an explicit stack rather than recursion so that very
// deep trees cannot exhaust the goroutine stack.  Any node type that
// can report its key, its children and whether it is the empty
// sentinel can be walked.
package traversal
