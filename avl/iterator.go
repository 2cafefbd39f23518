// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package avl

import (
	"iter"
)

// All - preorder sequence of the tree: node, left sub-tree, right
// sub-tree
//
// the sequence is lazy and can be ranged over more than once; each
// step reads the tree as it is at that moment, so the tree must not be
// modified while a range is in progress
func (tree *Tree[T]) All() iter.Seq[Entry[T]] {
	return func(yield func(Entry[T]) bool) {
		tree.preorder(tree.root, yield)
	}
}

// internal: returns false once yield has asked to stop
func (tree *Tree[T]) preorder(p ref, yield func(Entry[T]) bool) bool {
	if none == p {
		return true
	}
	if !yield(tree.entry(p)) {
		return false
	}
	return tree.preorder(tree.nodes[p].link[left], yield) &&
		tree.preorder(tree.nodes[p].link[right], yield)
}

// Ascending - entries from the smallest value to the greatest
func (tree *Tree[T]) Ascending() iter.Seq[Entry[T]] {
	return func(yield func(Entry[T]) bool) {
		tree.inorder(tree.root, right, yield)
	}
}

// Descending - entries from the greatest value to the smallest
func (tree *Tree[T]) Descending() iter.Seq[Entry[T]] {
	return func(yield func(Entry[T]) bool) {
		tree.inorder(tree.root, left, yield)
	}
}

// internal: visit the first side, the node, then the other side
func (tree *Tree[T]) inorder(p ref, first side, yield func(Entry[T]) bool) bool {
	if none == p {
		return true
	}
	return tree.inorder(tree.nodes[p].link[first], first, yield) &&
		yield(tree.entry(p)) &&
		tree.inorder(tree.nodes[p].link[first.opposite()], first, yield)
}

// LeftSpine - the root followed by successive left children, i.e. ever
// greater values
func (tree *Tree[T]) LeftSpine() iter.Seq[Entry[T]] {
	return tree.entries(tree.spine(tree.root, left))
}

// RightSpine - the root followed by successive right children, i.e. ever
// smaller values
func (tree *Tree[T]) RightSpine() iter.Seq[Entry[T]] {
	return tree.entries(tree.spine(tree.root, right))
}

// Max - the entry with the greatest value
func (tree *Tree[T]) Max() (Entry[T], bool) {
	return last(tree.LeftSpine())
}

// Min - the entry with the smallest value
func (tree *Tree[T]) Min() (Entry[T], bool) {
	return last(tree.RightSpine())
}

// internal: p followed by its chain of children on side s
func (tree *Tree[T]) spine(p ref, s side) iter.Seq[ref] {
	return func(yield func(ref) bool) {
		for q := p; none != q; q = tree.nodes[q].link[s] {
			if !yield(q) {
				return
			}
		}
	}
}

// internal: map node references to entries
func (tree *Tree[T]) entries(refs iter.Seq[ref]) iter.Seq[Entry[T]] {
	return func(yield func(Entry[T]) bool) {
		for p := range refs {
			if !yield(tree.entry(p)) {
				return
			}
		}
	}
}

// internal: final item of a finite sequence
func last[V any](seq iter.Seq[V]) (V, bool) {
	var v V
	found := false
	for x := range seq {
		v = x
		found = true
	}
	return v, found
}
