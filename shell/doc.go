// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package shell - line oriented commands applied to a tree
//
// each line is one command followed by its arguments separated by
// white space:
//
//	insert KEY VALUE
//	search KEY
//	delete KEY
//	height
//	count
//	print
//	check
//
// arguments follow shell quoting rules so a value may contain spaces
// when quoted, blank lines and lines starting with '#' are ignored
package shell
