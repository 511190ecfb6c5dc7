// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package avl

import (
	"github.com/bitmark-inc/bstree/internal/bst"
)

// Delete - removes a specific item from the tree
//
// returns the value that was stored and true, or nil and false if
// the key was not in the tree
func (tree *Tree) Delete(key Item) (interface{}, bool) {
	t := &tree.tree
	q := t.Find(key)
	if bst.Nil == q { // key not in tree
		return nil, false
	}
	value := t.Value(q) // preserve the value part

	// two children: the in-order successor has no left child, so
	// move its entry up and delete it instead
	if bst.Nil != t.Left(q) && bst.Nil != t.Right(q) {
		r := t.Leftmost(t.Right(q))
		t.SetEntry(q, t.Key(r), t.Value(r))
		q = r
	}

	child, parent := t.Remove(q)
	if bst.Nil != child {
		tree.rebalance(child)
	} else {
		tree.rebalance(parent)
	}
	return value, true
}
