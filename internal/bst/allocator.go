// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package bst

// Item - a key item must implement the Compare function
type Item interface {
	Compare(interface{}) int // for left/right ordering of items
}

// Handle - index of a node in the tree's arena
type Handle int

// Nil - the absent node
const Nil Handle = 0

// a node in the arena
type node struct {
	left   Handle      // left sub-tree
	right  Handle      // right sub-tree
	up     Handle      // parent node, or next free node when reclaimed
	key    Item        // key part for ordering
	value  interface{} // value part for data storage
	height int         // height of sub-tree, leaf = 1
	size   int         // nodes in sub-tree including this one
	red    bool        // colour, only meaningful to red-black trees
}

// arena slot zero is the absent node, it is never written so its
// height and size stay at zero
type arena struct {
	nodes     []node
	pool      Handle // linked list of reclaimed nodes
	freeNodes int    // number of nodes in the pool
}

// allocate a new leaf node, reuses reclaimed nodes if any are available
func (a *arena) newNode(key Item, value interface{}, up Handle) Handle {
	if 0 == len(a.nodes) {
		a.nodes = append(a.nodes, node{})
	}

	n := node{
		up:     up,
		key:    key,
		value:  value,
		height: 1,
		size:   1,
	}

	if Nil == a.pool {
		if 0 != a.freeNodes {
			panic("pool corrupt")
		}
		a.nodes = append(a.nodes, n)
		return Handle(len(a.nodes) - 1)
	}

	h := a.pool
	a.pool = a.nodes[h].up
	a.nodes[h] = n
	a.freeNodes -= 1
	return h
}

// reclaim a node and keep it in the pool
func (a *arena) freeNode(h Handle) {
	a.nodes[h] = node{
		up: a.pool, // use as free list pointer
	}
	a.freeNodes += 1
	a.pool = h
}
