// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package redblack - a red-black balanced tree supporting insert and
// search
//
// New nodes are red.  After an insert the fixer walks up from the new
// node while it and its parent are both red: a red uncle is resolved
// by recolouring and moving two levels up, a black uncle by at most
// two rotations which end the walk.  The root is always black.
//
// Nodes also carry subtree height and size, which are refreshed along
// the insertion path.
//
// Inserting an existing key replaces its value in place and leaves
// the tree shape and colours untouched.
//
// An individual tree is not thread safe, so either access only in a
// single go routine or use mutex/rwmutex to restrict access.
package redblack
