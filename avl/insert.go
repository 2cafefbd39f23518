// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2019 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package avl

// Insert - add one occurrence of a value to the tree
//
// a value already present only has its count incremented
func (tree *Tree[T]) Insert(value T) {
	tree.total += 1
	if none == tree.root {
		tree.root = tree.newNode(value, none)
		tree.count += 1
		return
	}
	tree.insert(value, tree.root)
}

// internal routine for insert
//
// rebalancing may replace p in its parent, the link in the parent is
// updated by the rotation
func (tree *Tree[T]) insert(value T, p ref) {
	c := tree.compare(value, tree.nodes[p].value)
	if 0 == c {
		tree.nodes[p].count += 1
		return
	}

	s := sideOf(c)
	if child := tree.nodes[p].link[s]; none != child {
		tree.insert(value, child)
	} else {
		// newNode can grow the arena, so no node pointer is held here
		leaf := tree.newNode(value, p)
		tree.nodes[p].link[s] = leaf
		tree.count += 1
	}

	tree.updateHeight(p)
	tree.rebalance(p)
}
