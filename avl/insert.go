// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package avl

import (
	"github.com/bitmark-inc/bstree/internal/bst"
)

// Insert - insert a new node into the tree
//
// returns true if a node was added, false if the key was already
// present and only its value was replaced
func (tree *Tree) Insert(key Item, value interface{}) bool {
	h, added := tree.tree.Attach(key, value)
	if added {
		tree.rebalance(h)
	}
	return added
}

// walk from p to the root restoring height, size and balance
func (tree *Tree) rebalance(p bst.Handle) {
	t := &tree.tree
	for bst.Nil != p {
		t.Update(p)
		switch t.Height(t.Left(p)) - t.Height(t.Right(p)) {
		case +2: // left branch too high
			p1 := t.Left(p)
			if t.Height(t.Right(p1)) > t.Height(t.Left(p1)) {
				t.RotateLeft(p1) // LR: straighten first
			}
			t.RotateRight(p)
		case -2: // right branch too high
			p1 := t.Right(p)
			if t.Height(t.Left(p1)) > t.Height(t.Right(p1)) {
				t.RotateRight(p1) // RL: straighten first
			}
			t.RotateLeft(p)
		}
		p = t.Parent(p)
	}
}
