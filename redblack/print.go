// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package redblack

import (
	"fmt"
	"io"

	"github.com/bitmark-inc/bstree/internal/bst"
)

// Print - write the tree sideways, one node per line as
// key(height,size)[colour], indented by depth with the right branch
// on top
func (tree *Tree) Print(w io.Writer) {
	tree.tree.Print(w, label)
}

func label(t *bst.Tree, h bst.Handle) string {
	colour := "black"
	if t.IsRed(h) {
		colour = "red"
	}
	return fmt.Sprintf("%v(%d,%d)[%s]", t.Key(h), t.Height(h), t.Size(h), colour)
}
