// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package bst

// Search - find the node holding key
//
// returns the last node on the search path: the matching node if
// key is present, otherwise the node that would become its parent.
// Returns Nil only for an empty tree.  Callers compare the returned
// node's key to tell the two cases apart.
func (t *Tree) Search(key Item) Handle {
	p := Nil
	h := t.root
	for Nil != h {
		p = h
		switch c := t.nodes[h].key.Compare(key); {
		case c > 0: // h.key > key
			h = t.nodes[h].left
		case c < 0: // h.key < key
			h = t.nodes[h].right
		default:
			return h
		}
	}
	return p
}

// Find - the node holding key or Nil if the key is not in the tree
func (t *Tree) Find(key Item) Handle {
	if t.IsEmpty() {
		return Nil
	}
	h := t.Search(key)
	if 0 != t.nodes[h].key.Compare(key) {
		return Nil
	}
	return h
}
