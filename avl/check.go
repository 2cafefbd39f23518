// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2019 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package avl

import (
	"fmt"

	"github.com/bitmark-inc/multiavl/fault"
)

// CheckUp - check the parent links for consistency
func (tree *Tree[T]) CheckUp() bool {
	return tree.checkup(tree.root, none)
}

// internal: parent link consistency checker
func (tree *Tree[T]) checkup(p ref, up ref) bool {
	if none == p {
		return true
	}
	if tree.nodes[p].parent != up {
		return false
	}
	return tree.checkup(tree.nodes[p].link[left], p) &&
		tree.checkup(tree.nodes[p].link[right], p)
}

// Check - verify every structural property of the tree
//
// returns a fault.InvalidError naming the first property found broken
// and the value of the node where it was detected
func (tree *Tree[T]) Check() error {
	if !tree.CheckUp() {
		return fault.ErrParentLink
	}
	distinct, total, err := tree.check(tree.root, none, none)
	if nil != err {
		return err
	}
	if distinct != tree.count || total != tree.total {
		return fmt.Errorf("%w: nodes: %d/%d  values: %d/%d", fault.ErrLengthMismatch, distinct, tree.count, total, tree.total)
	}
	return nil
}

// internal: every value below p must be greater than the value at
// lower and smaller than the value at upper (none for no bound)
//
// returns the number of nodes and the sum of their counts
func (tree *Tree[T]) check(p ref, lower ref, upper ref) (int, int, error) {
	if none == p {
		return 0, 0, nil
	}
	n := &tree.nodes[p]

	if n.count < 1 {
		return 0, 0, fmt.Errorf("%w: value: %v  count: %d", fault.ErrBadCount, n.value, n.count)
	}
	if none != lower && tree.compare(n.value, tree.nodes[lower].value) <= 0 {
		return 0, 0, fmt.Errorf("%w: value: %v  must exceed: %v", fault.ErrOrdering, n.value, tree.nodes[lower].value)
	}
	if none != upper && tree.compare(n.value, tree.nodes[upper].value) >= 0 {
		return 0, 0, fmt.Errorf("%w: value: %v  must be below: %v", fault.ErrOrdering, n.value, tree.nodes[upper].value)
	}

	h := 1 + max(tree.height(n.link[left]), tree.height(n.link[right]))
	if n.height != h {
		return 0, 0, fmt.Errorf("%w: value: %v  cached: %d  actual: %d", fault.ErrHeightMismatch, n.value, n.height, h)
	}
	if b := tree.balance(p); b < -1 || b > 1 {
		return 0, 0, fmt.Errorf("%w: value: %v  balance: %+d", fault.ErrUnbalanced, n.value, b)
	}

	// left holds greater values, so p is their lower bound
	ln, lt, err := tree.check(n.link[left], p, upper)
	if nil != err {
		return 0, 0, err
	}
	rn, rt, err := tree.check(n.link[right], lower, p)
	if nil != err {
		return 0, 0, err
	}
	return 1 + ln + rn, n.count + lt + rt, nil
}
