// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package redblack

import (
	"github.com/bitmark-inc/bstree/fault"
	"github.com/bitmark-inc/bstree/internal/bst"
)

// Check - verify parent links, ordering, heights and sizes, then the
// colour rules: black root, no red node with a red child and the same
// number of black nodes on every path down to an absent child
func (tree *Tree) Check() error {
	t := &tree.tree
	if err := t.Check(); nil != err {
		return err
	}
	if t.IsRed(t.Root()) {
		return t.Fail(fault.ErrRedRoot, t.Root())
	}
	_, err := blackHeight(t, t.Root())
	return err
}

// internal: black height below h, not counting h itself
func blackHeight(t *bst.Tree, h bst.Handle) (int, error) {
	if bst.Nil == h {
		return 0, nil
	}
	l, r := t.Left(h), t.Right(h)
	if t.IsRed(h) && (t.IsRed(l) || t.IsRed(r)) {
		return 0, t.Fail(fault.ErrRedNodeHasRedChild, h)
	}
	lbh, err := blackHeight(t, l)
	if nil != err {
		return 0, err
	}
	rbh, err := blackHeight(t, r)
	if nil != err {
		return 0, err
	}
	if !t.IsRed(l) {
		lbh += 1
	}
	if !t.IsRed(r) {
		rbh += 1
	}
	if lbh != rbh {
		return 0, t.Fail(fault.ErrBlackHeightMismatch, h)
	}
	return lbh, nil
}
