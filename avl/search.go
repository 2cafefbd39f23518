// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2019 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package avl

// Search - find the entry for a specific value
func (tree *Tree[T]) Search(value T) (Entry[T], bool) {
	p := tree.search(value)
	if none == p {
		return Entry[T]{}, false
	}
	return tree.entry(p), true
}

// Count - multiplicity of a value, zero if absent
func (tree *Tree[T]) Count(value T) int {
	p := tree.search(value)
	if none == p {
		return 0
	}
	return tree.nodes[p].count
}

// Contains - true if the value is in the tree
func (tree *Tree[T]) Contains(value T) bool {
	return none != tree.search(value)
}

func (tree *Tree[T]) search(value T) ref {
	p := tree.root
	for none != p {
		c := tree.compare(value, tree.nodes[p].value)
		if 0 == c {
			return p
		}
		p = tree.nodes[p].link[sideOf(c)]
	}
	return none
}
