// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2019 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// avl-demo - build counted AVL trees from a Lua configuration file
// and print them
//
// Usage:
//   avl-demo --config-file=avl-demo.conf [--verbose]
//   avl-demo --config-file=avl-demo.conf show-config
//   avl-demo help|version
//
// The configuration lists the values to insert, in order, followed by
// the deletions to apply.  The tree is printed before and after the
// deletions; --verbose shows height, balance and count for each node.
// An optional random section builds a further tree from
// pseudo-random values.
package main
