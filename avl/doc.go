// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package avl - an AVL balanced tree with parent pointers, subtree
// heights and subtree sizes kept in every node
//
// An individual tree is not thread safe, so either access only in a
// single go routine or use mutex/rwmutex to restrict access.
//
// After every insert or delete the balancer walks from the changed
// node up to the root, recomputing height and size and rotating any
// node whose balance factor has reached ±2.  The walk never stops
// early since a rotation low in the tree can leave an ancestor
// unbalanced.
//
// This version allows for data associated with key, which can be
// overwritten by an insert with the same key.
package avl
