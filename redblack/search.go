// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package redblack

import (
	"github.com/bitmark-inc/bstree/internal/bst"
)

// Search - find a specific item
//
// returns the value and true, or nil and false if the key is not in
// the tree
func (tree *Tree) Search(key Item) (interface{}, bool) {
	h := tree.tree.Find(key)
	if bst.Nil == h {
		return nil, false
	}
	return tree.tree.Value(h), true
}
