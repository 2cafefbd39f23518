// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2019 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package avl

import (
	"cmp"

	"github.com/bitmark-inc/multiavl/fault"
)

// Tree - type to hold the arena and the root node of a tree
type Tree[T any] struct {
	compare   func(a, b T) int
	nodes     []node[T]
	root      ref
	pool      ref // linked list of reclaimed nodes
	freeNodes int // number of nodes in the pool
	count     int // distinct values
	total     int // sum of all node counts
	stats     Stats
}

// Stats - allocation and rotation totals over the life of a tree
type Stats struct {
	Allocated int // arena slots created
	Reused    int // slots taken from the free list
	Freed     int // slots returned to the free list
	Rotations int // single rotations, a double rotation counts two
}

// New - create a tree from a non-empty list of values using their
// natural ordering; the first value becomes the initial root
func New[T cmp.Ordered](values ...T) (*Tree[T], error) {
	return NewFunc(cmp.Compare[T], values...)
}

// NewFunc - create a tree from a non-empty list of values ordered by
// a three-way compare function: negative if a < b, zero if equal,
// positive if a > b
func NewFunc[T any](compare func(a, b T) int, values ...T) (*Tree[T], error) {
	if 0 == len(values) {
		return nil, fault.ErrEmptyValues
	}
	tree := &Tree[T]{
		compare: compare,
		nodes:   make([]node[T], 0, len(values)),
		root:    none,
		pool:    none,
	}
	for _, v := range values {
		tree.Insert(v)
	}
	return tree, nil
}

// IsEmpty - true if every value has been deleted
func (tree *Tree[T]) IsEmpty() bool {
	return none == tree.root
}

// Len - number of distinct values currently in the tree
func (tree *Tree[T]) Len() int {
	return tree.count
}

// Total - number of values including repeats
func (tree *Tree[T]) Total() int {
	return tree.total
}

// Height - height of the root, -1 for an empty tree
func (tree *Tree[T]) Height() int {
	return tree.height(tree.root)
}

// Root - the entry at the root of the tree
func (tree *Tree[T]) Root() (Entry[T], bool) {
	if none == tree.root {
		return Entry[T]{}, false
	}
	return tree.entry(tree.root), true
}

// Stats - return a copy of the counters
func (tree *Tree[T]) Stats() Stats {
	return tree.stats
}
