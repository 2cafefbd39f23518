// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2019 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package avl

// rebalance - restore the AVL condition at p
//
// returns the root of the sub-tree now occupying p's position
//
//   balance(p)  balance(child)  action
//   < -1        <= 0            lift left
//   > +1        >= 0            lift right
//   < -1        > 0             lift left.right, then lift left
//   > +1        < 0             lift right.left, then lift right
//
// a zero child balance only arises after a delete and is corrected by
// the single rotation
func (tree *Tree[T]) rebalance(p ref) ref {
	b := tree.balance(p)
	switch {
	case b < -1:
		l := tree.nodes[p].link[left]
		if tree.balance(l) > 0 {
			tree.lift(l, right)
		}
		return tree.lift(p, left)

	case b > 1:
		r := tree.nodes[p].link[right]
		if tree.balance(r) < 0 {
			tree.lift(r, left)
		}
		return tree.lift(p, right)

	default:
		return p
	}
}

// lift - single rotation moving the child on side s of x into x's
// position, x becomes that child's opposite child
//
// returns the lifted node
func (tree *Tree[T]) lift(x ref, s side) ref {
	o := s.opposite()
	y := tree.nodes[x].link[s]

	tree.replaceChild(x, y)

	inner := tree.nodes[y].link[o]
	tree.nodes[x].link[s] = inner
	if none != inner {
		tree.nodes[inner].parent = x
	}
	tree.nodes[y].link[o] = x
	tree.nodes[x].parent = y

	// x is now below y
	tree.updateHeight(x)
	tree.updateHeight(y)

	tree.stats.Rotations += 1
	return y
}

// replaceChild - put n in the slot that holds p, either a child link
// of p's parent or the root; n inherits p's parent link
func (tree *Tree[T]) replaceChild(p ref, n ref) {
	up := tree.nodes[p].parent
	if none != n {
		tree.nodes[n].parent = up
	}
	if none == up {
		tree.root = n
		return
	}
	u := &tree.nodes[up]
	if u.link[left] == p {
		u.link[left] = n
	} else {
		u.link[right] = n
	}
}
