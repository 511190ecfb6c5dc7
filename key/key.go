// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package key - ready made key types for the trees
package key

import (
	"strconv"
	"strings"

	"github.com/bitmark-inc/bstree/fault"
	"github.com/bitmark-inc/bstree/internal/bst"
)

// Item - anything that can order itself against another key of the
// same type
type Item = bst.Item

// Kind - name of a key type
type Kind string

// the supported kinds
const (
	KindInt    Kind = "int"
	KindString Kind = "string"
)

// Int - integer key
type Int int

// Compare - three way comparison for tree ordering
func (i Int) Compare(x interface{}) int {
	j := x.(Int)
	switch {
	case i < j:
		return -1
	case i > j:
		return +1
	default:
		return 0
	}
}

// String - decimal representation
func (i Int) String() string {
	return strconv.Itoa(int(i))
}

// String - text key, ordered bytewise
type String string

// Compare - three way comparison for tree ordering
func (s String) Compare(x interface{}) int {
	return strings.Compare(string(s), string(x.(String)))
}

// String - the text itself
func (s String) String() string {
	return string(s)
}

// ParseKind - convert a kind name, case is ignored
func ParseKind(name string) (Kind, error) {
	switch k := Kind(strings.ToLower(strings.TrimSpace(name))); k {
	case KindInt, KindString:
		return k, nil
	default:
		return "", fault.ErrInvalidKeyKind
	}
}

// Parse - make a key of the given kind from its text
func Parse(kind Kind, text string) (Item, error) {
	switch kind {
	case KindInt:
		i, err := strconv.Atoi(text)
		if nil != err {
			return nil, fault.ErrInvalidKey
		}
		return Int(i), nil
	case KindString:
		return String(text), nil
	default:
		return nil, fault.ErrInvalidKeyKind
	}
}
