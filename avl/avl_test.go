// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package avl_test

import (
	"bytes"
	"crypto/rand"
	"encoding/binary"
	"fmt"
	"sort"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/bitmark-inc/bstree/avl"
	"github.com/bitmark-inc/bstree/key"
)

type stringItem struct {
	s string
}

func (s stringItem) String() string {
	return s.s
}

func (s stringItem) Compare(x interface{}) int {
	return strings.Compare(s.s, x.(stringItem).s)
}

func dump(tree *avl.Tree) string {
	buffer := &bytes.Buffer{}
	tree.Print(buffer)
	return buffer.String()
}

func TestListShort(t *testing.T) {
	addList := []stringItem{
		{"4201"}, {"1254"}, {"8608"}, {"1639"}, {"8950"},
		{"6740"},
	}
	doList(t, addList)
	doTraverse(t, addList)
}

// to make sure that lots of duplicates do not increment the node
// count incorrectly
func TestListDuplicates(t *testing.T) {
	addList := []stringItem{
		{"1720"}, {"0506"}, {"8382"}, {"6774"}, {"1247"},
		{"1250"}, {"1264"}, {"1258"}, {"1255"}, {"2247"},
		{"2004"}, {"2194"}, {"2644"}, {"2169"}, {"8133"},
		{"2136"}, {"9651"}, {"4079"}, {"1042"}, {"3579"},
		{"1720"}, {"0506"}, {"8382"}, {"6774"}, {"1042"},
		{"1042"}, {"1042"}, {"1042"}, {"1042"}, {"1042"},
	}
	doList(t, addList)
	doTraverse(t, addList)
}

func TestListLong(t *testing.T) {
	addList := make([]stringItem, 0, 240)
	for i := 0; i < 240; i += 1 {
		// a fixed scramble of 0000…9999
		addList = append(addList, stringItem{fmt.Sprintf("%04d", (i*7919+1237)%10000)})
	}
	doList(t, addList)
	doTraverse(t, addList)
}

// insert everything then delete a growing prefix of the list followed
// by the remainder, checking the tree after each phase
func doList(t *testing.T, addList []stringItem) {

	for i := 0; i < len(addList)+1; i += 1 {

		alreadyDeleted := make(map[stringItem]struct{})

		tree := avl.New()
		for _, key := range addList {
			tree.Insert(key, "data:"+key.String())
		}

		if err := tree.Check(); nil != err {
			t.Logf("tree: %s", dump(tree))
			t.Fatalf("add: inconsistent tree: %s", err)
		}

	delete_items:
		for _, key := range addList[:i] {
			if _, ok := alreadyDeleted[key]; ok {
				continue delete_items
			}
			alreadyDeleted[key] = struct{}{}
			dv, ok := tree.Delete(key)
			ev := "data:" + key.String()
			if !ok || dv != ev {
				t.Fatalf("delete returned: %q, %v  expected: %q", dv, ok, ev)
			}
		}

		if err := tree.Check(); nil != err {
			t.Logf("tree: %s", dump(tree))
			t.Fatalf("delete: inconsistent tree: %s", err)
		}

	delete_remainder:
		for _, key := range addList[i:] {
			if _, ok := alreadyDeleted[key]; ok {
				continue delete_remainder
			}
			alreadyDeleted[key] = struct{}{}
			dv, ok := tree.Delete(key)
			ev := "data:" + key.String()
			if !ok || dv != ev {
				t.Fatalf("delete returned: %q, %v  expected: %q", dv, ok, ev)
			}
		}
		if !tree.IsEmpty() {
			t.Logf("tree: %s", dump(tree))
			t.Fatal("remainder: remaining nodes")
		}
		if 0 != tree.Height() {
			t.Fatalf("empty tree height: %d", tree.Height())
		}
	}
}

// traverse the tree to check ordering and counts
func doTraverse(t *testing.T, addList []stringItem) {

	unique := make(map[string]struct{})
	tree := avl.New()
	for _, key := range addList {
		unique[key.String()] = struct{}{}
		tree.Insert(key, "data:"+key.String())
	}

	expected := make([]string, 0, len(unique))
	for key := range unique {
		expected = append(expected, key)
	}
	sort.Strings(expected)

	if len(expected) != tree.Count() {
		t.Fatalf("tree count: actual: %d  expected: %d", tree.Count(), len(expected))
	}

	n := 0
	tree.Traverse(func(k avl.Item, value interface{}) bool {
		if 0 != k.Compare(stringItem{expected[n]}) {
			t.Fatalf("next item: actual: %q  expected: %q", k, expected[n])
		}
		if "data:"+expected[n] != value {
			t.Fatalf("next value: actual: %q  expected: %q", value, "data:"+expected[n])
		}
		n += 1
		return true
	})
	if n != len(expected) {
		t.Fatalf("item count: actual: %d  expected: %d", n, len(expected))
	}

	keys := tree.Keys()
	if len(keys) != len(expected) {
		t.Fatalf("keys count: actual: %d  expected: %d", len(keys), len(expected))
	}

	// delete remainder
	for _, key := range expected {
		tree.Delete(stringItem{key})
	}

	if !tree.IsEmpty() {
		t.Logf("tree: %s", dump(tree))
		t.Fatalf("remaining nodes")
	}
	if 0 != tree.Count() {
		t.Fatalf("remaining count not zero: %d", tree.Count())
	}
}

func makeKey() stringItem {

	b := make([]byte, 4)
	_, err := rand.Read(b)
	if nil != err {
		panic("rand failed")
	}
	n := int(binary.BigEndian.Uint32(b))
	return stringItem{fmt.Sprintf("%04d", n%10000)}
}

func TestRandomTree(t *testing.T) {

	randomTree(t, 2200, 2000)
	randomTree(t, 3400, 2760)
	randomTree(t, 5467, 1234)

	for i := 0; i < 5; i += 1 {
		randomTree(t, 2100, 2000)
	}
}

func randomTree(t *testing.T, total int, toDelete int) {

	if toDelete > total {
		t.Fatalf("failed: total: %d  < deletions: %d", total, toDelete)
	}

	tree := avl.New()
	d := make([]stringItem, toDelete)

	for i := 0; i < total; i += 1 {
		key := makeKey()
		if i < len(d) {
			d[i] = key
		}
		tree.Insert(key, "data:"+key.String())
	}

	if err := tree.Check(); nil != err {
		t.Fatalf("inconsistent tree: %s", err)
	}

	for i, key := range d {
		tree.Delete(key)
		if 0 != i%100 {
			continue
		}
		if err := tree.Check(); nil != err {
			t.Fatalf("delete: %q  inconsistent tree: %s", key, err)
		}
	}

	// add back the test value
	testKey := stringItem{"500"}
	const testValue = "just testing data: test 500 value"
	tree.Insert(testKey, testValue)

	if err := tree.Check(); nil != err {
		t.Fatalf("inconsistent tree: %s", err)
	}

	doTraverse(t, d)

	// check that test value is searchable
	tv, ok := tree.Search(testKey)
	if !ok {
		t.Fatalf("could not find test key: %q", testKey)
	}
	if testValue != tv {
		t.Fatalf("test value mismatch: actual: %q  expected: %q", tv, testValue)
	}

	// delete the test value, and check it return the correct
	// value and is no longer in the tree
	value, ok := tree.Delete(testKey)
	if !ok || value != testValue {
		t.Fatalf("delete value mismatch: actual: %q  expected: %q", value, testValue)
	}
	tv, ok = tree.Search(testKey)
	if ok {
		t.Fatalf("test key not deleted and contains: %q", tv)
	}
}

// check that inserted nodes can be overwritten without changing the
// shape of the tree
func TestOverwrite(t *testing.T) {
	addList := []stringItem{
		{"01"}, {"02"}, {"03"}, {"04"}, {"05"},
		{"06"}, {"07"}, {"08"}, {"09"}, {"10"},
	}

	tree := avl.New()
	for _, key := range addList {
		added := tree.Insert(key, "data:"+key.String())
		assert.True(t, added, "key: %q not added", key)
	}
	before := dump(tree)

	oKey := stringItem{"05"}
	const newData = "new content for 05"
	added := tree.Insert(oKey, newData)
	assert.False(t, added, "overwrite added a node")
	assert.Equal(t, len(addList), tree.Count(), "count changed")
	assert.Equal(t, before, dump(tree), "shape changed")

	value, ok := tree.Search(oKey)
	assert.True(t, ok, "overwritten key missing")
	assert.Equal(t, newData, value, "value not overwritten")

	// delete a node so the overwritten entry may move
	_, ok = tree.Delete(stringItem{"06"})
	assert.True(t, ok, "delete failed")
	value, ok = tree.Search(oKey)
	assert.True(t, ok, "overwritten key missing after delete")
	assert.Equal(t, newData, value, "value lost after delete")
	assert.Nil(t, tree.Check(), "inconsistent tree")
}

func TestThreeKeysRotate(t *testing.T) {
	tree := avl.New()
	for _, k := range []int{1, 2, 3} {
		tree.Insert(key.Int(k), fmt.Sprintf("item%d", k))
	}
	expected := "Printing binary search tree\n\n" +
		"\t3[1,1]\n" +
		"2[2,3]\n" +
		"\t1[1,1]\n" +
		"\n"
	assert.Equal(t, expected, dump(tree), "wrong shape")
	assert.Equal(t, 2, tree.Height(), "wrong height")
}

func TestAscendingInsertStaysBalanced(t *testing.T) {
	tree := avl.New()
	for _, k := range []int{10, 20, 30, 40, 50} {
		tree.Insert(key.Int(k), k)
	}
	assert.Equal(t, 3, tree.Height(), "wrong height")
	assert.Nil(t, tree.Check(), "unbalanced tree")

	expected := "Printing binary search tree\n\n" +
		"\t\t50[1,1]\n" +
		"\t40[2,3]\n" +
		"\t\t30[1,1]\n" +
		"20[3,5]\n" +
		"\t10[1,1]\n" +
		"\n"
	assert.Equal(t, expected, dump(tree), "wrong shape")
}

func TestDeleteRootUsesSuccessor(t *testing.T) {
	tree := avl.New()
	for _, k := range []int{2, 1, 3} {
		tree.Insert(key.Int(k), fmt.Sprintf("item%d", k))
	}

	value, ok := tree.Delete(key.Int(2))
	assert.True(t, ok, "root not deleted")
	assert.Equal(t, "item2", value, "wrong deleted value")

	expected := "Printing binary search tree\n\n" +
		"3[2,2]\n" +
		"\t1[1,1]\n" +
		"\n"
	assert.Equal(t, expected, dump(tree), "wrong shape")
	assert.Equal(t, 2, tree.Height(), "wrong height")

	v3, ok := tree.Search(key.Int(3))
	assert.True(t, ok, "successor missing")
	assert.Equal(t, "item3", v3, "successor value not moved with key")
}

func TestDeleteDoubleRotation(t *testing.T) {
	tree := avl.New()
	for _, k := range []int{20, 10, 30, 25} {
		tree.Insert(key.Int(k), k)
	}

	// removing 10 leaves 30 with only a left child: RL case
	_, ok := tree.Delete(key.Int(10))
	assert.True(t, ok, "delete failed")
	assert.Nil(t, tree.Check(), "inconsistent tree")
	assert.Equal(t, 2, tree.Height(), "wrong height")
	assert.Equal(t, []avl.Item{key.Int(20), key.Int(25), key.Int(30)}, tree.Keys(), "wrong keys")

	expected := "Printing binary search tree\n\n" +
		"\t30[1,1]\n" +
		"25[2,3]\n" +
		"\t20[1,1]\n" +
		"\n"
	assert.Equal(t, expected, dump(tree), "wrong shape")
}

func TestEmptyTree(t *testing.T) {
	tree := avl.New()

	value, ok := tree.Search(key.Int(7))
	assert.False(t, ok, "found key in empty tree")
	assert.Nil(t, value, "value from empty tree")
	assert.True(t, tree.IsEmpty(), "search created a root")
	assert.Equal(t, 0, tree.Height(), "wrong height")

	value, ok = tree.Delete(key.Int(7))
	assert.False(t, ok, "deleted from empty tree")
	assert.Nil(t, value, "value from empty tree")
	assert.Nil(t, tree.Check(), "empty tree check")
}

func TestDeleteMissingKey(t *testing.T) {
	tree := avl.New()
	for _, k := range []int{5, 3, 8} {
		tree.Insert(key.Int(k), k)
	}
	before := dump(tree)

	_, ok := tree.Delete(key.Int(4))
	assert.False(t, ok, "missing key deleted")
	assert.Equal(t, 3, tree.Count(), "count changed")
	assert.Equal(t, before, dump(tree), "shape changed")
}

// sequential keys are the worst case for an unbalanced tree
func TestHeightBound(t *testing.T) {
	const n = 4095
	tree := avl.New()
	for i := 0; i < n; i += 1 {
		tree.Insert(key.Int(i), i)
	}
	assert.Nil(t, tree.Check(), "inconsistent tree")
	assert.Equal(t, n, tree.Count(), "wrong count")
	// AVL height is below 1.44·log2(n+2)
	assert.True(t, tree.Height() <= 17, "tree too high: %d", tree.Height())

	for i := 0; i < n; i += 2 {
		_, ok := tree.Delete(key.Int(i))
		assert.True(t, ok, "key: %d not deleted", i)
	}
	assert.Nil(t, tree.Check(), "inconsistent tree after delete")
	assert.Equal(t, n/2, tree.Count(), "wrong count after delete")
}
