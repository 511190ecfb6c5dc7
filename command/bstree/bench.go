// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"fmt"
	"io"
	"math/rand"
	"time"

	"github.com/bitmark-inc/logger"

	"github.com/bitmark-inc/bstree/fault"
	"github.com/bitmark-inc/bstree/key"
	"github.com/bitmark-inc/bstree/shell"
)

// largest tree that is printed by the benchmark
const benchPrintLimit = 16

type traverser interface {
	Traverse(func(key.Item, interface{}) bool)
}

// insert n random keys from [0, 2n) then search for all of them and
// count those in [n/4, 3n/4], a tree supporting delete is emptied at
// the end
func benchmark(w io.Writer, log *logger.L, tree string, n int, seed int64) error {

	dict, err := newDictionary(tree)
	if nil != err {
		return err
	}

	fmt.Fprintf(w, "benchmark %s tree\n", tree)
	fmt.Fprintf(w, "number of keys n = %d\n", n)

	r := rand.New(rand.NewSource(seed))
	keys := make([]key.Int, n)
	for i := range keys {
		keys[i] = key.Int(r.Intn(2 * n))
	}

	start := time.Now()
	for i, k := range keys {
		dict.Insert(k, fmt.Sprintf("item%d", i))
	}
	fmt.Fprintf(w, "construction time = %s\n", time.Since(start))
	log.Infof("inserted: %d  distinct: %d", n, dict.Count())

	if n <= benchPrintLimit {
		dict.Print(w)
	}
	fmt.Fprintf(w, "tree height = %d\n", dict.Height())

	missing := 0
	start = time.Now()
	for _, k := range keys {
		if _, found := dict.Search(k); !found {
			fmt.Fprintf(w, "key %d not found!\n", k)
			missing += 1
		}
	}
	fmt.Fprintf(w, "search time = %s\n", time.Since(start))
	if missing > 0 {
		log.Criticalf("missing keys: %d", missing)
		return fault.ErrMissingInsertedKey
	}

	if t, ok := dict.(traverser); ok {
		low := key.Int(n / 4)
		high := key.Int(3 * n / 4)
		inRange := 0
		t.Traverse(func(k key.Item, _ interface{}) bool {
			i := k.(key.Int)
			if i > high {
				return false
			}
			if i >= low {
				inRange += 1
			}
			return true
		})
		fmt.Fprintf(w, "keys in [%d, %d] = %d\n", low, high, inRange)
	}

	if err := dict.Check(); nil != err {
		log.Criticalf("check after insert: %s", err)
		return err
	}

	d, ok := dict.(shell.Deleter)
	if !ok {
		fmt.Fprintf(w, "check: ok\n")
		return nil
	}

	start = time.Now()
	for _, k := range keys {
		d.Delete(k)
	}
	fmt.Fprintf(w, "deletion time = %s\n", time.Since(start))

	if 0 != dict.Count() || 0 != dict.Height() {
		log.Criticalf("count: %d  height: %d after deleting all keys", dict.Count(), dict.Height())
		return fault.ErrTreeNotEmpty
	}
	if err := dict.Check(); nil != err {
		log.Criticalf("check after delete: %s", err)
		return err
	}
	fmt.Fprintf(w, "check: ok\n")
	return nil
}
