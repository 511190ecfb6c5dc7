// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package bst - the binary search tree engine shared by the balanced
// tree packages
//
// Nodes are kept in an arena owned by the tree and addressed by
// Handle, with Nil (zero) marking an absent child or parent.  Each
// node carries its key, value, child and parent handles, the height
// and size of the subtree below it and a colour bit that only the
// red-black tree uses.
//
// The package provides the search primitive, the shape of a plain
// insertion, rotations that keep height and size current, in-order
// traversal through the parent links, a diagnostic print and a
// checker for the invariants common to every discipline.  Balancing
// itself is left to the avl and redblack packages.
//
// A tree is not thread safe, so either access only in a single go
// routine or use mutex/rwmutex to restrict access.
package bst
