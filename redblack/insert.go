// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package redblack

import (
	"github.com/bitmark-inc/bstree/internal/bst"
)

// Insert - insert a new node into the tree
//
// returns true if a node was added, false if the key was already
// present and only its value was replaced
func (tree *Tree) Insert(key Item, value interface{}) bool {
	t := &tree.tree
	x, added := t.Attach(key, value)
	if !added {
		return false
	}
	t.SetRed(x, true)

	// rotations recompute from their children so the path must be
	// current before fixing; afterwards it is refreshed again since a
	// rotation changes the height seen by the ancestors above it
	t.UpdatePath(x)
	tree.fix(x)
	t.UpdatePath(x)
	return true
}

// restore the red-black properties after x was added as a red leaf
func (tree *Tree) fix(x bst.Handle) {
	t := &tree.tree
fix_loop:
	for x != t.Root() && t.IsRed(t.Parent(x)) {
		p := t.Parent(x)
		g := t.Parent(p) // exists: a red node is never the root

		if p == t.Left(g) {
			u := t.Right(g)
			if t.IsRed(u) {
				t.SetRed(p, false)
				t.SetRed(u, false)
				t.SetRed(g, true)
				x = g
				continue fix_loop
			}
			if x == t.Right(p) {
				x = p
				t.RotateLeft(x)
				p = t.Parent(x)
			}
			t.SetRed(p, false)
			t.SetRed(g, true)
			t.RotateRight(g)
		} else {
			u := t.Left(g)
			if t.IsRed(u) {
				t.SetRed(p, false)
				t.SetRed(u, false)
				t.SetRed(g, true)
				x = g
				continue fix_loop
			}
			if x == t.Left(p) {
				x = p
				t.RotateRight(x)
				p = t.Parent(x)
			}
			t.SetRed(p, false)
			t.SetRed(g, true)
			t.RotateLeft(g)
		}
		break fix_loop
	}
	t.SetRed(t.Root(), false)
}
