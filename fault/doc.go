// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package fault - error instances
//
// Provides a single instance of errors to allow easy comparison
// without having to resort to partial string matches.  Errors are
// grouped into classes so a caller can ask whether a failure was,
// for example, a missing key rather than a malformed command.
//
// Broken tree invariants are not errors: they are reported through
// Panicf which logs to the PANIC channel before aborting.
package fault
