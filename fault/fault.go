// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package fault

import (
	"errors"
)

// GenericError - error base
type GenericError string

// to allow for different classes of errors
type InvalidError GenericError
type NotFoundError GenericError
type ProcessError GenericError

// common errors - keep in alphabetic order
var (
	ErrBalanceViolation     = InvalidError("subtree heights differ by more than one")
	ErrBlackHeightMismatch  = InvalidError("black height differs between paths")
	ErrCountMismatch        = InvalidError("node count is incorrect")
	ErrDoubleRed            = InvalidError("two consecutive red links")
	ErrHeightMismatch       = InvalidError("stored height is incorrect")
	ErrInvalidStructPointer = InvalidError("invalid struct pointer")
	ErrMissingKey           = InvalidError("operation requires keys")
	ErrNotFoundConfigFile   = NotFoundError("config file is not found")
	ErrOrderViolation       = InvalidError("keys are not in ascending order")
	ErrRightLeaningRed      = InvalidError("red link leans right")
	ErrRootNotBlack         = InvalidError("root link is not black")
	ErrScriptFailed         = ProcessError("script step failed")
	ErrUnknownColor         = NotFoundError("unknown link colour")
	ErrUnknownFormat        = NotFoundError("unknown output format")
	ErrUnknownKeyType       = NotFoundError("unknown key type")
	ErrUnknownOperation     = NotFoundError("unknown operation")
	ErrUnknownOrder         = NotFoundError("unknown traversal order")
	ErrUnknownTreeKind      = NotFoundError("unknown tree kind")
)

// the error interface base method
func (e GenericError) Error() string { return string(e) }

// the error interface methods
func (e InvalidError) Error() string  { return string(e) }
func (e NotFoundError) Error() string { return string(e) }
func (e ProcessError) Error() string  { return string(e) }

// determine the class of an error, looking through any wrapping
func IsErrInvalid(e error) bool  { var x InvalidError; return errors.As(e, &x) }
func IsErrNotFound(e error) bool { var x NotFoundError; return errors.As(e, &x) }
func IsErrProcess(e error) bool  { var x ProcessError; return errors.As(e, &x) }
