// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package bst

import (
	"fmt"

	"github.com/bitmark-inc/bstree/fault"
)

// Failure - an invariant violation found by a checker
type Failure struct {
	Err error       // the class of violation, one of the fault values
	Key interface{} // key of the node where it was detected
}

// Error - the error interface method
func (f *Failure) Error() string {
	return fmt.Sprintf("%s at key: %v", f.Err, f.Key)
}

// Unwrap - the underlying fault value
func (f *Failure) Unwrap() error {
	return f.Err
}

// Fail - build a failure for node h
func (t *Tree) Fail(err error, h Handle) error {
	return &Failure{Err: err, Key: t.nodes[h].key}
}

// Check - verify the invariants shared by all disciplines: parent
// links, key order, height and size
func (t *Tree) Check() error {
	if Nil != t.root && Nil != t.nodes[t.root].up {
		return t.Fail(fault.ErrBrokenParentLink, t.root)
	}
	return t.check(t.root)
}

// internal: consistency checker
func (t *Tree) check(h Handle) error {
	if Nil == h {
		return nil
	}
	n := &t.nodes[h]
	if Nil != n.left {
		if h != t.nodes[n.left].up {
			return t.Fail(fault.ErrBrokenParentLink, n.left)
		}
		if t.nodes[t.Rightmost(n.left)].key.Compare(n.key) >= 0 {
			return t.Fail(fault.ErrBrokenOrder, h)
		}
	}
	if Nil != n.right {
		if h != t.nodes[n.right].up {
			return t.Fail(fault.ErrBrokenParentLink, n.right)
		}
		if t.nodes[t.Leftmost(n.right)].key.Compare(n.key) <= 0 {
			return t.Fail(fault.ErrBrokenOrder, h)
		}
	}
	if err := t.check(n.left); nil != err {
		return err
	}
	if err := t.check(n.right); nil != err {
		return err
	}

	lh := t.Height(n.left)
	rh := t.Height(n.right)
	height := lh + 1
	if rh > lh {
		height = rh + 1
	}
	if n.height != height {
		return t.Fail(fault.ErrBrokenHeight, h)
	}
	if n.size != t.Size(n.left)+t.Size(n.right)+1 {
		return t.Fail(fault.ErrBrokenSize, h)
	}
	return nil
}
