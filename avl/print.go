// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2019 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package avl

import (
	"fmt"
	"io"
	"iter"
	"strings"
	"unicode/utf8"
)

// separates a node from the child drawn to its right
const joiner = " - "

// Print - write a text graphic representation of the tree
//
// the root is in the first column; the left (greater) child follows
// on the same line and the right (smaller) child is drawn on the lines
// below, hanging from a "\" under its parent.  Every cell is centred
// in a column as wide as the widest cell.
//
// detailed cells show <value h:height b:balance c:count>
func (tree *Tree[T]) Print(w io.Writer, detailed bool) error {
	s := tree.render(detailed)
	if "" == s {
		return nil
	}
	_, err := io.WriteString(w, s+"\n")
	return err
}

// String - the plain rendering of the tree
func (tree *Tree[T]) String() string {
	return tree.render(false)
}

func (tree *Tree[T]) render(detailed bool) string {
	if none == tree.root {
		return ""
	}

	cell := func(p ref) string {
		return fmt.Sprint(tree.nodes[p].value)
	}
	if detailed {
		cell = func(p ref) string {
			n := &tree.nodes[p]
			return fmt.Sprintf("<%v h:%d b:%+d c:%d>", n.value, n.height, tree.balance(p), n.count)
		}
	}

	width := 0
	for p := range tree.preorderRefs() {
		width = max(width, utf8.RuneCountInString(cell(p)))
	}

	b := strings.Builder{}
	tree.draw(&b, tree.root, 0, width, cell)
	return b.String()
}

// internal: draw p whose cell starts in column index
func (tree *Tree[T]) draw(b *strings.Builder, p ref, index int, width int, cell func(ref) string) {
	b.WriteString(centre(cell(p), width))

	n := tree.nodes[p].link
	if none != n[left] {
		b.WriteString(joiner)
		tree.draw(b, n[left], index+1, width, cell)
	}
	if none != n[right] {
		pad := strings.Repeat(" ", index*(width+len(joiner))+width)
		b.WriteString("\n" + pad + "\\\n" + pad + joiner)
		tree.draw(b, n[right], index+1, width, cell)
	}
}

// internal: all node references in preorder
func (tree *Tree[T]) preorderRefs() iter.Seq[ref] {
	return func(yield func(ref) bool) {
		stack := []ref{}
		if none != tree.root {
			stack = append(stack, tree.root)
		}
		for len(stack) > 0 {
			p := stack[len(stack)-1]
			stack = stack[:len(stack)-1]
			if !yield(p) {
				return
			}
			n := tree.nodes[p].link
			if none != n[right] {
				stack = append(stack, n[right])
			}
			if none != n[left] {
				stack = append(stack, n[left])
			}
		}
	}
}

// internal: pad s with spaces to width, any odd space goes on the right
func centre(s string, width int) string {
	gap := width - utf8.RuneCountInString(s)
	if gap <= 0 {
		return s
	}
	l := gap / 2
	return strings.Repeat(" ", l) + s + strings.Repeat(" ", gap-l)
}
