// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package redblack

// Traverse - call f with each key and value in ascending key order,
// stopping early if f returns false
func (tree *Tree) Traverse(f func(key Item, value interface{}) bool) {
	tree.tree.Traverse(f)
}

// Keys - all keys in ascending order
func (tree *Tree) Keys() []Item {
	keys := make([]Item, 0, tree.Count())
	tree.tree.Traverse(func(key Item, _ interface{}) bool {
		keys = append(keys, key)
		return true
	})
	return keys
}
