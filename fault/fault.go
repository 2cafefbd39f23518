// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2019 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package fault

import (
	"errors"
)

// GenericError - error base
type GenericError string

// to allow for different classes of errors
type ExistsError GenericError
type InvalidError GenericError
type NotFoundError GenericError
type ProcessError GenericError

// common errors - keep in alphabetic order
var (
	ErrAlreadyInitialised   = ExistsError("already initialised")
	ErrBadCount             = InvalidError("node count is below one")
	ErrEmptyValues          = InvalidError("at least one value is required")
	ErrHeightMismatch       = InvalidError("cached height does not match children")
	ErrInvalidLoggerChannel = InvalidError("invalid logger channel")
	ErrInvalidStructPointer = InvalidError("invalid struct pointer")
	ErrLengthMismatch       = InvalidError("node tally does not match tree length")
	ErrMissingValues        = InvalidError("configuration has no values")
	ErrNotLuaTable          = InvalidError("configuration did not return a table")
	ErrOrdering             = InvalidError("value is on the wrong side of an ancestor")
	ErrParentLink           = InvalidError("parent link is inconsistent")
	ErrUnbalanced           = InvalidError("subtree heights differ by more than one")
	ErrValueNotFound        = NotFoundError("value not found")
)

// the error interface base method
func (e GenericError) Error() string { return string(e) }

// the error interface methods
func (e ExistsError) Error() string   { return string(e) }
func (e InvalidError) Error() string  { return string(e) }
func (e NotFoundError) Error() string { return string(e) }
func (e ProcessError) Error() string  { return string(e) }

// determine the class of an error, looking through any wrapping
func IsErrExists(e error) bool   { var x ExistsError; return errors.As(e, &x) }
func IsErrInvalid(e error) bool  { var x InvalidError; return errors.As(e, &x) }
func IsErrNotFound(e error) bool { var x NotFoundError; return errors.As(e, &x) }
func IsErrProcess(e error) bool  { var x ProcessError; return errors.As(e, &x) }
