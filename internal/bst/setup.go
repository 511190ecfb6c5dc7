// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package bst

// Tree - the arena and the root of the node graph
//
// the zero value is an empty tree ready to use
type Tree struct {
	arena
	root Handle
}

// IsEmpty - true if tree contains no data
func (t *Tree) IsEmpty() bool {
	return Nil == t.root
}

// Root - handle of the root node, Nil if the tree is empty
func (t *Tree) Root() Handle {
	return t.root
}

// Count - number of nodes currently in the tree
func (t *Tree) Count() int {
	return t.Size(t.root)
}

// Capacity - number of node records held by the arena, including
// reclaimed ones
func (t *Tree) Capacity() int {
	if 0 == len(t.nodes) {
		return 0
	}
	return len(t.nodes) - 1
}

// Reclaimed - number of node records waiting for reuse
func (t *Tree) Reclaimed() int {
	return t.freeNodes
}

// Key - read the key from a node
func (t *Tree) Key(h Handle) Item {
	return t.nodes[h].key
}

// Value - read the value from a node
func (t *Tree) Value(h Handle) interface{} {
	return t.nodes[h].value
}

// SetValue - overwrite the value of a node
func (t *Tree) SetValue(h Handle, value interface{}) {
	t.nodes[h].value = value
}

// SetEntry - overwrite both key and value of a node, the caller must
// preserve the ordering of keys
func (t *Tree) SetEntry(h Handle, key Item, value interface{}) {
	t.nodes[h].key = key
	t.nodes[h].value = value
}

// Left - left child of a node
func (t *Tree) Left(h Handle) Handle {
	if Nil == h {
		return Nil
	}
	return t.nodes[h].left
}

// Right - right child of a node
func (t *Tree) Right(h Handle) Handle {
	if Nil == h {
		return Nil
	}
	return t.nodes[h].right
}

// Parent - parent of a node, Nil for the root
func (t *Tree) Parent(h Handle) Handle {
	if Nil == h {
		return Nil
	}
	return t.nodes[h].up
}

// Height - height of the sub-tree at a node, zero if absent
func (t *Tree) Height(h Handle) int {
	if Nil == h {
		return 0
	}
	return t.nodes[h].height
}

// Size - number of nodes in the sub-tree at a node, zero if absent
func (t *Tree) Size(h Handle) int {
	if Nil == h {
		return 0
	}
	return t.nodes[h].size
}

// IsRed - colour of a node, absent nodes are black
func (t *Tree) IsRed(h Handle) bool {
	if Nil == h {
		return false
	}
	return t.nodes[h].red
}

// SetRed - colour a node red (true) or black (false)
func (t *Tree) SetRed(h Handle, red bool) {
	if Nil == h {
		return
	}
	t.nodes[h].red = red
}

// Update - recompute height and size of a node from its children
func (t *Tree) Update(h Handle) {
	n := &t.nodes[h]
	lh := t.Height(n.left)
	rh := t.Height(n.right)
	if lh < rh {
		n.height = rh + 1
	} else {
		n.height = lh + 1
	}
	n.size = t.Size(n.left) + t.Size(n.right) + 1
}

// UpdatePath - recompute height and size of a node and all of its
// ancestors
func (t *Tree) UpdatePath(h Handle) {
	for Nil != h {
		t.Update(h)
		h = t.nodes[h].up
	}
}
