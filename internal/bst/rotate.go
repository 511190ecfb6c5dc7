// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package bst

import (
	"github.com/bitmark-inc/bstree/fault"
)

// RotateLeft - make the right child of x the root of x's sub-tree
//
//	  x                y
//	 / \              / \
//	a   y     ->     x   c
//	   / \          / \
//	  b   c        a   b
//
// in-order sequence a x b y c is preserved, height and size of x and
// y are recomputed, colours are not changed
func (t *Tree) RotateLeft(x Handle) {
	if Nil == x || Nil == t.nodes[x].right {
		fault.Panicf("rotate left: node %d has no right child", x)
	}
	y := t.nodes[x].right
	b := t.nodes[y].left

	t.nodes[x].right = b
	if Nil != b {
		t.nodes[b].up = x
	}
	t.Replace(x, y)
	t.nodes[y].left = x
	t.nodes[x].up = y

	t.Update(x)
	t.Update(y)
}

// RotateRight - make the left child of x the root of x's sub-tree
//
//	    x            y
//	   / \          / \
//	  y   c   ->   a   x
//	 / \              / \
//	a   b            b   c
func (t *Tree) RotateRight(x Handle) {
	if Nil == x || Nil == t.nodes[x].left {
		fault.Panicf("rotate right: node %d has no left child", x)
	}
	y := t.nodes[x].left
	b := t.nodes[y].right

	t.nodes[x].left = b
	if Nil != b {
		t.nodes[b].up = x
	}
	t.Replace(x, y)
	t.nodes[y].right = x
	t.nodes[x].up = y

	t.Update(x)
	t.Update(y)
}

// Replace - put node c where node v is in the tree
//
// c takes over v's link from its parent (or becomes the root) and
// its parent pointer is set to v's parent.  c may be Nil to detach v.
// v's own links are left as they were.
func (t *Tree) Replace(v Handle, c Handle) {
	p := t.nodes[v].up
	if Nil != c {
		t.nodes[c].up = p
	}
	switch {
	case Nil == p:
		t.root = c
	case v == t.nodes[p].left:
		t.nodes[p].left = c
	default:
		t.nodes[p].right = c
	}
}

// Remove - unlink a node with at most one child and reclaim it
//
// the child, if any, is spliced into the node's place.  Returns the
// child and the former parent so a balancer knows where to start.
func (t *Tree) Remove(v Handle) (Handle, Handle) {
	n := t.nodes[v]
	if Nil != n.left && Nil != n.right {
		fault.Panicf("remove: node %d has two children", v)
	}
	c := n.left
	if Nil == c {
		c = n.right
	}
	t.Replace(v, c)
	t.freeNode(v)
	return c, n.up
}
