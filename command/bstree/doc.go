// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// bstree - exercise the balanced trees
//
// with no arguments commands are read from standard input, see the
// shell package for the command list
//
//	bstree --tree=avl bench 100000
//	bstree --tree=redblack --keys=string run commands.txt
//	bstree --config-file=bstree.conf < commands.txt
//
// an optional Lua configuration file may set the defaults for the
// options and configure logging, command-line options override the
// file
package main
