// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package bst

// Attach - the unbalanced part of an insert
//
// an existing key has its value overwritten and the node is returned
// with added == false.  Otherwise a new leaf is linked below the last
// node on the search path and returned with added == true.  Height
// and size of the ancestors are left for the caller's balancer.
func (t *Tree) Attach(key Item, value interface{}) (Handle, bool) {
	if t.IsEmpty() {
		t.root = t.newNode(key, value, Nil)
		return t.root, true
	}

	v := t.Search(key)
	c := t.nodes[v].key.Compare(key)
	if 0 == c {
		t.nodes[v].value = value
		return v, false
	}

	u := t.newNode(key, value, v)
	if c > 0 { // v.key > key
		t.nodes[v].left = u
	} else {
		t.nodes[v].right = u
	}
	return u, true
}
