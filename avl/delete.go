// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2019 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package avl

import (
	"github.com/bitmark-inc/multiavl/fault"
)

// Delete - remove one occurrence of a value, or every occurrence if
// all is set
//
// returns fault.ErrValueNotFound if the value is not in the tree, in
// which case the tree is unchanged
func (tree *Tree[T]) Delete(value T, all bool) error {
	return tree.delete(value, tree.root, all)
}

// DeleteAll - remove a value regardless of its count
func (tree *Tree[T]) DeleteAll(value T) error {
	return tree.delete(value, tree.root, true)
}

// internal delete routine
func (tree *Tree[T]) delete(value T, p ref, all bool) error {
	if none == p { // value not in tree
		return fault.ErrValueNotFound
	}

	c := tree.compare(value, tree.nodes[p].value)
	if 0 != c {
		err := tree.delete(value, tree.nodes[p].link[sideOf(c)], all)
		if nil != err {
			return err
		}
		tree.updateHeight(p)
		tree.rebalance(p)
		return nil
	}

	// found
	n := &tree.nodes[p]
	if !all && n.count > 1 {
		n.count -= 1
		tree.total -= 1
		return nil
	}

	if none == n.link[left] || none == n.link[right] {
		tree.splice(p)
		return nil
	}

	// two children: exchange with the nearest value from the taller
	// side so that the node actually removed has at most one child
	s := right
	if tree.height(n.link[left]) > tree.height(n.link[right]) {
		s = left
	}
	q, _ := last(tree.spine(n.link[s], s.opposite()))

	a, b := &tree.nodes[p], &tree.nodes[q]
	a.value, b.value = b.value, a.value
	a.count, b.count = b.count, a.count

	// value is now at q, the extreme of that sub-tree on the side
	// facing p, so the search is bound to reach it
	if err := tree.delete(value, tree.nodes[p].link[s], true); nil != err {
		return err
	}
	tree.updateHeight(p)
	tree.rebalance(p)
	return nil
}

// splice - remove a node with at most one child, the child (or the
// sentinel) takes its place
func (tree *Tree[T]) splice(p ref) {
	n := &tree.nodes[p]
	child := n.link[left]
	if none == child {
		child = n.link[right]
	}

	tree.count -= 1
	tree.total -= n.count

	tree.replaceChild(p, child)
	if none != child {
		tree.updateHeight(child)
	}
	tree.freeNode(p) // return deleted node to pool
}
