// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package bst

import (
	"fmt"
	"io"
	"strings"
)

// Label - formats the text shown for one node
type Label func(t *Tree, h Handle) string

// Print - dump the tree sideways: right sub-tree first, then the node
// indented by one tab per level, then the left sub-tree
func (t *Tree) Print(w io.Writer, label Label) {
	fmt.Fprintln(w, "Printing binary search tree")
	fmt.Fprintln(w)
	t.printTree(w, t.root, 0, label)
	fmt.Fprintln(w)
}

// internal print
func (t *Tree) printTree(w io.Writer, h Handle, level int, label Label) {
	if Nil == h {
		return
	}
	t.printTree(w, t.nodes[h].right, level+1, label)
	fmt.Fprintf(w, "%s%s\n", strings.Repeat("\t", level), label(t, h))
	t.printTree(w, t.nodes[h].left, level+1, label)
}
