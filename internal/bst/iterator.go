// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package bst

// First - the node with the lowest key value, Nil if empty
func (t *Tree) First() Handle {
	return t.Leftmost(t.root)
}

// Last - the node with the highest key value, Nil if empty
func (t *Tree) Last() Handle {
	return t.Rightmost(t.root)
}

// Leftmost - lowest node in a sub-tree
func (t *Tree) Leftmost(h Handle) Handle {
	if Nil == h {
		return Nil
	}
	for Nil != t.nodes[h].left {
		h = t.nodes[h].left
	}
	return h
}

// Rightmost - highest node in a sub-tree
func (t *Tree) Rightmost(h Handle) Handle {
	if Nil == h {
		return Nil
	}
	for Nil != t.nodes[h].right {
		h = t.nodes[h].right
	}
	return h
}

// Next - given a node, return the node with the next highest key
// value or Nil if no more nodes
func (t *Tree) Next(h Handle) Handle {
	if Nil != t.nodes[h].right {
		return t.Leftmost(t.nodes[h].right)
	}
	for {
		p := t.nodes[h].up
		if Nil == p || h == t.nodes[p].left {
			return p
		}
		h = p
	}
}

// Traverse - call f for every node in ascending key order until it
// returns false
func (t *Tree) Traverse(f func(key Item, value interface{}) bool) {
	for h := t.First(); Nil != h; h = t.Next(h) {
		if !f(t.nodes[h].key, t.nodes[h].value) {
			return
		}
	}
}
