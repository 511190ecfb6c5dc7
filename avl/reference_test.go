// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package avl_test

import (
	"fmt"
	"math/rand"
	"testing"

	"github.com/emirpasic/gods/trees/avltree"
	"github.com/stretchr/testify/assert"

	"github.com/bitmark-inc/bstree/avl"
	"github.com/bitmark-inc/bstree/key"
)

// run the same random insert, delete and search sequence on a
// library tree and compare every result
func TestAgainstReference(t *testing.T) {
	const (
		operations = 20000
		keySpace   = 1000
	)

	r := rand.New(rand.NewSource(1))
	tree := avl.New()
	reference := avltree.NewWithIntComparator()

	for i := 0; i < operations; i += 1 {
		k := r.Intn(keySpace)
		switch r.Intn(3) {
		case 0:
			item := fmt.Sprintf("item%d", i)
			_, existed := reference.Get(k)
			reference.Put(k, item)
			added := tree.Insert(key.Int(k), item)
			if added == existed {
				t.Fatalf("%d: insert: %d  added: %v  already present: %v", i, k, added, existed)
			}

		case 1:
			expected, existed := reference.Get(k)
			reference.Remove(k)
			value, found := tree.Delete(key.Int(k))
			if found != existed || value != expected {
				t.Fatalf("%d: delete: %d  actual: %v/%v  expected: %v/%v", i, k, value, found, expected, existed)
			}

		default:
			expected, existed := reference.Get(k)
			value, found := tree.Search(key.Int(k))
			if found != existed || value != expected {
				t.Fatalf("%d: search: %d  actual: %v/%v  expected: %v/%v", i, k, value, found, expected, existed)
			}
		}

		if 0 == i%1000 {
			if err := tree.Check(); nil != err {
				t.Fatalf("%d: inconsistent tree: %s", i, err)
			}
		}
	}

	assert.Nil(t, tree.Check(), "inconsistent tree")
	assert.Equal(t, reference.Size(), tree.Count(), "wrong count")

	keys := tree.Keys()
	expected := reference.Keys()
	if !assert.Equal(t, len(expected), len(keys), "wrong number of keys") {
		return
	}
	for i, k := range keys {
		assert.Equal(t, key.Int(expected[i].(int)), k, "[%d]: wrong key", i)
	}
}
