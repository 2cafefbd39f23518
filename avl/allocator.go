// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2019 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package avl

// allocate a new leaf, reuses reclaimed slots if any are available
func (tree *Tree[T]) newNode(value T, up ref) ref {
	leaf := node[T]{
		value:  value,
		count:  1,
		height: 0,
		link:   [2]ref{none, none},
		parent: up,
	}
	if none == tree.pool {
		if 0 != tree.freeNodes {
			panic("pool corrupt")
		}
		tree.nodes = append(tree.nodes, leaf)
		tree.stats.Allocated += 1
		return ref(len(tree.nodes) - 1)
	}
	p := tree.pool
	tree.pool = tree.nodes[p].parent
	tree.nodes[p] = leaf
	tree.freeNodes -= 1
	tree.stats.Reused += 1
	return p
}

// reclaim a node and keep its slot in the pool
func (tree *Tree[T]) freeNode(p ref) {
	var zero T
	n := &tree.nodes[p]
	n.parent = tree.pool // use as free list pointer

	n.link = [2]ref{none, none}
	n.value = zero
	n.count = 0
	n.height = noneHeight
	tree.freeNodes += 1
	tree.stats.Freed += 1

	tree.pool = p
}
