// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package avl

import (
	"fmt"
	"io"

	"github.com/bitmark-inc/bstree/internal/bst"
)

// Print - write the tree sideways, one node per line as
// key[height,size], indented by depth with the right branch on top
func (tree *Tree) Print(w io.Writer) {
	tree.tree.Print(w, label)
}

func label(t *bst.Tree, h bst.Handle) string {
	return fmt.Sprintf("%v[%d,%d]", t.Key(h), t.Height(h), t.Size(h))
}
