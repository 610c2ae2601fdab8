// Package splay implements a generic self-adjusting ordered map.
//
// # Overview
//
// A [Tree] maps keys of any ordered type to values and keeps them in a binary
// search tree that is restructured on every access: the node that an operation
// finds (or, for a missing key, the neighbour it settles on) is rotated to the
// root. Keys that were touched recently, and keys close to them, become cheap
// to reach again. For float placement this is the common case, since each new
// float is usually placed near the previous one.
//
// Individual operations can cost O(n) but any sequence of m operations on a
// tree of n keys costs O((m + n) log n). Adversarial access orders still reach
// the quadratic worst case over short sequences; the structure does not
// rebalance itself the way a red-black tree would.
//
// # Splaying
//
// Splaying is top-down: the search path is cut into a left tree (keys below
// the target) and a right tree (keys above it) while descending, with zig-zig
// rotations applied on the way, and the three pieces are reassembled under
// the final node. Nodes keep no parent pointers and own their children
// exclusively.
//
// # Operations
//
//   - [Tree.Insert], [Tree.Remove], [Tree.Get]: point operations
//   - [Tree.Floor], [Tree.Ceiling], [Tree.Lower], [Tree.Higher]: neighbour search
//   - [Tree.Min], [Tree.Max]: extremes
//   - [Tree.Split], [Tree.Join]: cut a tree at a key and glue two trees together
//   - [Tree.All]: in-order iteration that leaves the shape untouched
//
// All searches leave the returned node at the root:
//
//	var t splay.Tree[int, string]
//	t.Insert(10, "a")
//	t.Insert(20, "b")
//	t.Floor(15)     // returns 10, "a", true
//	k, _ := t.Root() // k == 10
//
// A Tree is not safe for concurrent use; even read operations restructure it.
package splay
