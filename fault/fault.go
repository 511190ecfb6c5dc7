// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package fault

// GenericError - error base
type GenericError string

// to allow for different classes of errors
type ExistsError GenericError
type InvalidError GenericError
type NotFoundError GenericError
type ProcessError GenericError

// common errors - keep in alphabetic order
var (
	ErrAlreadyInitialised    = ExistsError("already initialised")
	ErrBlackHeightMismatch   = InvalidError("black height differs between paths")
	ErrBrokenBalance         = InvalidError("balance factor out of range")
	ErrBrokenHeight          = InvalidError("node height is inconsistent")
	ErrBrokenOrder           = InvalidError("keys are out of order")
	ErrBrokenParentLink      = InvalidError("parent link is inconsistent")
	ErrBrokenSize            = InvalidError("node size is inconsistent")
	ErrConfigurationNotTable = InvalidError("configuration did not return a table")
	ErrDeleteNotSupported    = InvalidError("delete is not supported by this tree")
	ErrInvalidCommandLine    = InvalidError("invalid command line")
	ErrInvalidCount          = InvalidError("invalid count")
	ErrInvalidKey            = InvalidError("invalid key")
	ErrInvalidKeyKind        = InvalidError("invalid key kind")
	ErrInvalidLoggerChannel  = InvalidError("invalid logger channel")
	ErrInvalidStructPointer  = InvalidError("invalid struct pointer")
	ErrInvalidTreeKind       = InvalidError("invalid tree kind")
	ErrKeyNotFound           = NotFoundError("key not found")
	ErrMissingInsertedKey    = ProcessError("inserted key is missing")
	ErrRedNodeHasRedChild    = InvalidError("red node has a red child")
	ErrRedRoot               = InvalidError("root is red")
	ErrTreeNotEmpty          = ProcessError("tree is not empty")
	ErrUnknownCommand        = InvalidError("unknown command")
	ErrWrongArgumentCount    = InvalidError("wrong argument count")
)

// the error interface base method
func (e GenericError) Error() string { return string(e) }

// the error interface methods
func (e ExistsError) Error() string   { return string(e) }
func (e InvalidError) Error() string  { return string(e) }
func (e NotFoundError) Error() string { return string(e) }
func (e ProcessError) Error() string  { return string(e) }

// determine the class of an error
func IsErrExists(e error) bool   { _, ok := e.(ExistsError); return ok }
func IsErrInvalid(e error) bool  { _, ok := e.(InvalidError); return ok }
func IsErrNotFound(e error) bool { _, ok := e.(NotFoundError); return ok }
func IsErrProcess(e error) bool  { _, ok := e.(ProcessError); return ok }
