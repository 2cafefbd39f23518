// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2019 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package avl - an AVL balanced tree holding a multiset of values,
// with parent links so that any node can find its way back to the
// root
//
// Note: an individual tree is not thread safe, so either access only
//       in a single go routine or use mutex/rwmutex to restrict
//       access.
//
// A value inserted more than once is kept in a single node with a
// count, so the balance guarantee is over the distinct values.
//
// Ordering is mirrored: for any node the left sub-tree holds the
// greater values and the right sub-tree the smaller values.  This
// matches the text rendering in Print, where the root is in the first
// column and the greatest values run along the first line.
//
// Nodes are kept in an arena owned by the tree and linked by index;
// the index "none" is the sentinel for an absent child or parent and
// has a height of -1.
package avl
