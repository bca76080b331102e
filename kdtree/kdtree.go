// Package kdtree implements a dynamic 2-d tree point set.
//
// Levels alternate their discriminator: nodes at even depth split on x and
// nodes at odd depth split on y. A point goes to the lo subtree when its
// coordinate on that axis is strictly smaller than the node's, otherwise to
// the hi subtree. The tree is never rebalanced, so insertion order fixes its
// shape.
//
// A PointSet is not safe for concurrent use.
package kdtree

import (
	"math"
)

// Node holds a single point and exclusively owns its two subtrees
type Node struct {
	val    Point
	lo, hi *Node
}

func (n *Node) Value() Point { return n.val }
func (n *Node) Lo() *Node    { return n.lo }
func (n *Node) Hi() *Node    { return n.hi }

// Returns the slot p descends into from n, where n sits at depth d
func (n *Node) slot(p Point, d int) **Node {
	if p.axis(d) < n.val.axis(d) {
		return &n.lo
	}
	return &n.hi
}

// Returns true if n or one of its children holds p
func (n *Node) holds(p Point) bool {
	return n.val == p ||
		(n.lo != nil && n.lo.val == p) ||
		(n.hi != nil && n.hi.val == p)
}

// PointSet is a set of distinct points stored in a 2-d tree. The zero value
// is an empty set ready to use.
type PointSet struct {
	root *Node
	size int
}

// New returns a set holding the given points. Duplicates are dropped
func New(points ...Point) *PointSet {
	s := &PointSet{}
	for _, p := range points {
		s.Put(p)
	}
	return s
}

func (s *PointSet) Empty() bool { return s.root == nil }

// Size returns the number of distinct points in the set
func (s *PointSet) Size() int { return s.size }

// Root returns the root node, or nil for an empty set
func (s *PointSet) Root() *Node { return s.root }

// locate walks from the root towards p and stops at the node that either
// holds p, is the parent of the node holding p, or has an empty slot where p
// belongs. It returns that node and its depth. The set must not be empty.
//
// Put and Contains both check the returned node plus its two children, so a
// match is found no matter which of the three positions it occupies.
func (s *PointSet) locate(p Point) (n *Node, d int) {
	n = s.root
	for n.val != p {
		next := *n.slot(p, d)
		if next == nil || next.val == p {
			return
		}
		n = next
		d++
	}
	return
}

// Put inserts p unless the set already holds it
func (s *PointSet) Put(p Point) {
	if s.root == nil {
		s.root = &Node{val: p}
		s.size++
		return
	}
	n, d := s.locate(p)
	if n.holds(p) {
		return
	}
	*n.slot(p, d) = &Node{val: p}
	s.size++
}

// Contains reports whether p is in the set. It costs one root to leaf walk
func (s *PointSet) Contains(p Point) bool {
	if s.root == nil {
		return false
	}
	n, _ := s.locate(p)
	return n.holds(p)
}

func height(n *Node) int {
	if n == nil {
		return 0
	}
	l, h := height(n.lo), height(n.hi)
	if l > h {
		return l + 1
	}
	return h + 1
}

// Height returns the number of levels in the tree; zero when empty
func (s *PointSet) Height() int {
	return height(s.root)
}

// Clone returns an independent copy built by re-inserting every point in
// traversal order. The copy has the same points but usually a different shape
func (s *PointSet) Clone() *PointSet {
	c := &PointSet{}
	for it := s.Begin(); !it.Done(); it.Next() {
		c.Put(it.Value())
	}
	return c
}

// Bounds returns the smallest rectangle holding every point. ok is false
// for an empty set
func (s *PointSet) Bounds() (r Rect, ok bool) {
	if s.root == nil {
		return
	}
	r = Rect{s.root.val, s.root.val}
	for it := s.Begin(); !it.Done(); it.Next() {
		p := it.Value()
		r.Min.X, r.Min.Y = math.Min(r.Min.X, p.X), math.Min(r.Min.Y, p.Y)
		r.Max.X, r.Max.Y = math.Max(r.Max.X, p.X), math.Max(r.Max.Y, p.Y)
	}
	return r, true
}

// Everywhere is the region covered by the root: the whole plane
var Everywhere = Rect{
	Point{math.Inf(-1), math.Inf(-1)},
	Point{math.Inf(1), math.Inf(1)},
}

func walk(n *Node, d int, region Rect, fn func(p Point, d int, region Rect)) {
	if n == nil {
		return
	}
	fn(n.val, d, region)
	lo, hi := region, region
	if d%2 == 0 {
		lo.Max.X, hi.Min.X = n.val.X, n.val.X
	} else {
		lo.Max.Y, hi.Min.Y = n.val.Y, n.val.Y
	}
	walk(n.lo, d+1, lo, fn)
	walk(n.hi, d+1, hi, fn)
}

// Walk visits every node in pre-order. fn receives the node's point, its
// depth, and the region of the plane its subtree covers, starting from
// Everywhere at the root. Walk never modifies the tree
func (s *PointSet) Walk(fn func(p Point, depth int, region Rect)) {
	walk(s.root, 0, Everywhere, fn)
}
