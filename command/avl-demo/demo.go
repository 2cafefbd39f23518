// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2019 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"fmt"
	"io"
	"math/rand/v2"
	"strings"

	"github.com/bitmark-inc/logger"

	"github.com/bitmark-inc/multiavl/avl"
	"github.com/bitmark-inc/multiavl/fault"
)

// between successive renderings
var separator = strings.Repeat("*", 100)

// build the configured tree, apply the deletions and print both
// stages, then the optional random tree
func runDemo(options *Configuration, log *logger.L, out io.Writer) error {

	tree, err := avl.New(options.Values...)
	if nil != err {
		return err
	}
	log.Infof("inserted: %d  distinct: %d  height: %d", tree.Total(), tree.Len(), tree.Height())

	if err := show(out, "initial", tree, options.Detailed); nil != err {
		return err
	}

	for _, d := range options.Deletes {
		err := tree.Delete(d.Value, d.All)
		if fault.IsErrNotFound(err) {
			log.Warnf("delete: %d  error: %s", d.Value, err)
			continue
		} else if nil != err {
			return err
		}
		log.Debugf("deleted: %d  all: %v  remaining count: %d", d.Value, d.All, tree.Count(d.Value))
	}

	if 0 != len(options.Deletes) {
		if tree.IsEmpty() {
			log.Warn("every value was deleted")
		}
		if err := show(out, "after deletes", tree, options.Detailed); nil != err {
			return err
		}
	}

	if err := verify(log, "configured", tree); nil != err {
		return err
	}

	if 0 == options.Random.Count {
		return nil
	}

	r := options.Random
	rng := rand.New(rand.NewPCG(r.Seed, r.Seed))
	values := make([]int, r.Count)
	for i := range values {
		values[i] = rng.IntN(r.Limit)
	}
	log.Debugf("random values: %v", values)

	random, err := avl.New(values...)
	if nil != err {
		return err
	}
	if err := show(out, "random", random, options.Detailed); nil != err {
		return err
	}
	return verify(log, "random", random)
}

// print one tree followed by the separator
func show(out io.Writer, title string, tree *avl.Tree[int], detailed bool) error {
	if _, err := fmt.Fprintf(out, "%s: values: %d  distinct: %d  height: %d\n", title, tree.Total(), tree.Len(), tree.Height()); nil != err {
		return err
	}
	if err := tree.Print(out, detailed); nil != err {
		return err
	}
	_, err := fmt.Fprintln(out, separator)
	return err
}

// run the consistency check and log the allocation statistics
func verify(log *logger.L, name string, tree *avl.Tree[int]) error {
	stats := tree.Stats()
	log.Infof("%s: allocated: %d  reused: %d  freed: %d  rotations: %d", name, stats.Allocated, stats.Reused, stats.Freed, stats.Rotations)

	if err := tree.Check(); nil != err {
		log.Criticalf("%s: check failed: %s", name, err)
		return err
	}
	return nil
}
