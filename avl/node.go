// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2019 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package avl

// index of a node in the tree's arena
type ref int32

// the sentinel: absent child, absent parent or empty tree
const none ref = -1

// the height of the sentinel
const noneHeight = -1

// to select a child link
type side int

const (
	left  side = iota // greater values
	right side = iota // smaller values
)

func (s side) opposite() side {
	return 1 - s
}

// a node in the tree
type node[T any] struct {
	value  T      // ordering key
	count  int    // multiplicity of value, at least 1
	height int    // cached: 1 + max(height(left), height(right))
	link   [2]ref // children indexed by side
	parent ref    // none for the root, free list pointer when reclaimed
}

// Entry - read-only view of one node
type Entry[T any] struct {
	Value  T
	Count  int
	Height int
}

// internal: build the entry for a node
func (tree *Tree[T]) entry(p ref) Entry[T] {
	n := &tree.nodes[p]
	return Entry[T]{
		Value:  n.value,
		Count:  n.count,
		Height: n.height,
	}
}

// internal: height of a node, the sentinel is -1
func (tree *Tree[T]) height(p ref) int {
	if none == p {
		return noneHeight
	}
	return tree.nodes[p].height
}

// internal: height(right) - height(left)
func (tree *Tree[T]) balance(p ref) int {
	n := &tree.nodes[p]
	return tree.height(n.link[right]) - tree.height(n.link[left])
}

// internal: recompute a cached height from the children
func (tree *Tree[T]) updateHeight(p ref) {
	n := &tree.nodes[p]
	n.height = 1 + max(tree.height(n.link[left]), tree.height(n.link[right]))
}

// internal: the side of p on which a value with comparison c belongs
func sideOf(c int) side {
	if c > 0 {
		return left
	}
	return right
}
