// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package avl

import (
	"github.com/bitmark-inc/bstree/internal/bst"
)

// Item - a key item must implement the Compare function
type Item = bst.Item

// Tree - type to hold the root node of a tree
type Tree struct {
	tree bst.Tree
}

// New - create an initially empty tree
func New() *Tree {
	return &Tree{}
}

// IsEmpty - true if tree contains no data
func (tree *Tree) IsEmpty() bool {
	return tree.tree.IsEmpty()
}

// Count - number of nodes currently in the tree
func (tree *Tree) Count() int {
	return tree.tree.Count()
}

// Height - height of the tree, zero when empty
func (tree *Tree) Height() int {
	return tree.tree.Height(tree.tree.Root())
}
