// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package avl

import (
	"github.com/bitmark-inc/bstree/fault"
	"github.com/bitmark-inc/bstree/internal/bst"
)

// Check - verify parent links, ordering, heights, sizes and that no
// node's balance factor is outside -1..+1
func (tree *Tree) Check() error {
	t := &tree.tree
	if err := t.Check(); nil != err {
		return err
	}
	return checkBalance(t, t.Root())
}

// internal: balance checker
func checkBalance(t *bst.Tree, h bst.Handle) error {
	if bst.Nil == h {
		return nil
	}
	bf := t.Height(t.Left(h)) - t.Height(t.Right(h))
	if bf < -1 || bf > +1 {
		return t.Fail(fault.ErrBrokenBalance, h)
	}
	if err := checkBalance(t, t.Left(h)); nil != err {
		return err
	}
	return checkBalance(t, t.Right(h))
}
