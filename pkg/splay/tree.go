package splay

import (
	"cmp"
	"iter"
)

// Tree is an ordered map from K to V backed by a splay tree.
//
// The zero value is an empty tree ready to use. Every lookup changes the
// shape of the tree, so a Tree must not be shared between goroutines without
// external locking, and must not be copied after first use.
type Tree[K cmp.Ordered, V any] struct {
	root *node[K, V]
	work int
}

type node[K cmp.Ordered, V any] struct {
	key         K
	val         V
	left, right *node[K, V]
}

// direction steers a splay: negative descends left, positive descends right,
// zero stops at the current node.
type direction[K cmp.Ordered] func(key K) int

func toward[K cmp.Ordered](k K) direction[K] {
	return func(key K) int { return cmp.Compare(k, key) }
}

func leftmost[K cmp.Ordered](K) int  { return -1 }
func rightmost[K cmp.Ordered](K) int { return 1 }

// splay restructures the subtree rooted at n top-down and returns its new
// root: the node dir stops at, or the last node on the search path when the
// path runs out. The returned root's left subtree holds only keys dir would
// send right of, and its right subtree only keys dir would send left of.
func (t *Tree[K, V]) splay(n *node[K, V], dir direction[K]) *node[K, V] {
	if n == nil {
		return nil
	}
	var header node[K, V]
	l, r := &header, &header
	for {
		t.work++
		c := dir(n.key)
		if c < 0 {
			if n.left == nil {
				break
			}
			if dir(n.left.key) < 0 {
				// zig-zig: rotate right
				y := n.left
				n.left = y.right
				y.right = n
				n = y
				if n.left == nil {
					break
				}
			}
			r.left = n
			r = n
			n = n.left
		} else if c > 0 {
			if n.right == nil {
				break
			}
			if dir(n.right.key) > 0 {
				// zig-zig: rotate left
				y := n.right
				n.right = y.left
				y.left = n
				n = y
				if n.right == nil {
					break
				}
			}
			l.right = n
			l = n
			n = n.right
		} else {
			break
		}
	}
	l.right = n.left
	r.left = n.right
	n.left = header.right
	n.right = header.left
	return n
}

// Insert stores v under k, replacing any existing value. Afterwards k is the
// root of the tree.
func (t *Tree[K, V]) Insert(k K, v V) {
	if t.root == nil {
		t.root = &node[K, V]{key: k, val: v}
		return
	}
	t.root = t.splay(t.root, toward(k))
	switch c := cmp.Compare(k, t.root.key); {
	case c == 0:
		t.root.val = v
	case c < 0:
		n := &node[K, V]{key: k, val: v, left: t.root.left, right: t.root}
		t.root.left = nil
		t.root = n
	default:
		n := &node[K, V]{key: k, val: v, left: t.root, right: t.root.right}
		t.root.right = nil
		t.root = n
	}
}

// Remove deletes k and reports whether it was present. A missing key leaves
// the map unchanged, although the tree is still splayed around k.
func (t *Tree[K, V]) Remove(k K) bool {
	if t.root == nil {
		return false
	}
	t.root = t.splay(t.root, toward(k))
	if t.root.key != k {
		return false
	}
	left, right := t.root.left, t.root.right
	if left == nil {
		t.root = right
		return true
	}
	// Every key on the left is below every key on the right, so the left
	// maximum can adopt the right subtree whole.
	left = t.splay(left, rightmost[K])
	left.right = right
	t.root = left
	return true
}

// Get returns the value stored under k.
func (t *Tree[K, V]) Get(k K) (V, bool) {
	var zero V
	if t.root == nil {
		return zero, false
	}
	t.root = t.splay(t.root, toward(k))
	if t.root.key != k {
		return zero, false
	}
	return t.root.val, true
}

// Floor returns the entry with the greatest key less than or equal to k.
func (t *Tree[K, V]) Floor(k K) (K, V, bool) { return t.below(k, false) }

// Lower returns the entry with the greatest key strictly less than k.
func (t *Tree[K, V]) Lower(k K) (K, V, bool) { return t.below(k, true) }

// Ceiling returns the entry with the least key greater than or equal to k.
func (t *Tree[K, V]) Ceiling(k K) (K, V, bool) { return t.above(k, false) }

// Higher returns the entry with the least key strictly greater than k.
func (t *Tree[K, V]) Higher(k K) (K, V, bool) { return t.above(k, true) }

func (t *Tree[K, V]) below(k K, strict bool) (key K, val V, ok bool) {
	if t.root == nil {
		return key, val, false
	}
	t.root = t.splay(t.root, toward(k))
	if t.root.key < k || (!strict && t.root.key == k) {
		return t.root.key, t.root.val, true
	}
	if t.root.left == nil {
		return key, val, false
	}
	// The left subtree holds only keys below k; its maximum is the answer.
	pred := t.splay(t.root.left, rightmost[K])
	t.root.left = pred.right
	pred.right = t.root
	t.root = pred
	return pred.key, pred.val, true
}

func (t *Tree[K, V]) above(k K, strict bool) (key K, val V, ok bool) {
	if t.root == nil {
		return key, val, false
	}
	t.root = t.splay(t.root, toward(k))
	if t.root.key > k || (!strict && t.root.key == k) {
		return t.root.key, t.root.val, true
	}
	if t.root.right == nil {
		return key, val, false
	}
	succ := t.splay(t.root.right, leftmost[K])
	t.root.right = succ.left
	succ.left = t.root
	t.root = succ
	return succ.key, succ.val, true
}

// Min returns the entry with the smallest key.
func (t *Tree[K, V]) Min() (key K, val V, ok bool) {
	if t.root == nil {
		return key, val, false
	}
	t.root = t.splay(t.root, leftmost[K])
	return t.root.key, t.root.val, true
}

// Max returns the entry with the largest key.
func (t *Tree[K, V]) Max() (key K, val V, ok bool) {
	if t.root == nil {
		return key, val, false
	}
	t.root = t.splay(t.root, rightmost[K])
	return t.root.key, t.root.val, true
}

// Split moves every key greater than or equal to k into a new tree and
// returns it. The receiver keeps the keys below k.
func (t *Tree[K, V]) Split(k K) *Tree[K, V] {
	right := &Tree[K, V]{}
	if t.root == nil {
		return right
	}
	t.root = t.splay(t.root, toward(k))
	if t.root.key < k {
		right.root = t.root.right
		t.root.right = nil
		return right
	}
	right.root = t.root
	t.root = right.root.left
	right.root.left = nil
	return right
}

// Join moves every entry of right into t, leaving right empty. All keys in t
// must be strictly less than all keys in right; Join panics otherwise.
func (t *Tree[K, V]) Join(right *Tree[K, V]) {
	if right == nil || right.root == nil {
		return
	}
	if t.root == nil {
		t.root, right.root = right.root, nil
		return
	}
	t.root = t.splay(t.root, rightmost[K])
	first := t.splay(right.root, leftmost[K])
	if t.root.key >= first.key {
		panic("splay: Join requires every key of the receiver to precede the argument's keys")
	}
	first.left = t.root
	t.root = first
	right.root = nil
}

// Root returns the key currently at the root of the tree.
func (t *Tree[K, V]) Root() (key K, ok bool) {
	if t.root == nil {
		return key, false
	}
	return t.root.key, true
}

// Len returns the number of entries. It walks the whole tree.
func (t *Tree[K, V]) Len() int {
	n := 0
	for range t.All() {
		n++
	}
	return n
}

// Height returns the number of nodes on the longest root-to-leaf path.
func (t *Tree[K, V]) Height() int {
	return height(t.root)
}

func height[K cmp.Ordered, V any](n *node[K, V]) int {
	if n == nil {
		return 0
	}
	return 1 + max(height(n.left), height(n.right))
}

// Work returns the number of nodes visited by splay operations over the
// lifetime of the tree. Benchmarks and tests use it to measure amortised cost.
func (t *Tree[K, V]) Work() int { return t.work }

// All iterates over the entries in ascending key order without restructuring
// the tree. The tree must not be modified during iteration.
func (t *Tree[K, V]) All() iter.Seq2[K, V] {
	return func(yield func(K, V) bool) {
		var stack []*node[K, V]
		n := t.root
		for n != nil || len(stack) > 0 {
			for n != nil {
				stack = append(stack, n)
				n = n.left
			}
			n = stack[len(stack)-1]
			stack = stack[:len(stack)-1]
			if !yield(n.key, n.val) {
				return
			}
			n = n.right
		}
	}
}
