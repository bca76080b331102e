package kdtree

// Iterator is a forward cursor over a snapshot of points. It cannot be
// restarted; ask the set for a new one instead.
type Iterator struct {
	rest []Point
}

func inorder(n *Node, acc []Point) []Point {
	if n == nil {
		return acc
	}
	acc = inorder(n.lo, acc)
	acc = append(acc, n.val)
	return inorder(n.hi, acc)
}

// Begin returns a cursor on the first point of an in-order walk: lo
// subtree, node, hi subtree
func (s *PointSet) Begin() *Iterator {
	return &Iterator{inorder(s.root, make([]Point, 0, s.size))}
}

// End returns the exhausted cursor every finished iteration equals
func (s *PointSet) End() *Iterator {
	return &Iterator{}
}

// Points returns every point in traversal order
func (s *PointSet) Points() []Point {
	return s.Begin().rest
}

// Done reports whether the cursor is past the last point
func (it *Iterator) Done() bool {
	return len(it.rest) == 0
}

// Value returns the point under the cursor. Panics when Done
func (it *Iterator) Value() Point {
	if it.Done() {
		panic("kdtree: Value on exhausted iterator")
	}
	return it.rest[0]
}

// Next moves to the following point. Advancing past the end panics
func (it *Iterator) Next() {
	if it.Done() {
		panic("kdtree: Next on exhausted iterator")
	}
	it.rest = it.rest[1:]
}

// Len returns how many points are left
func (it *Iterator) Len() int {
	return len(it.rest)
}

// Equal reports whether both cursors have the same points left, in the same
// order
func (it *Iterator) Equal(o *Iterator) bool {
	if len(it.rest) != len(o.rest) {
		return false
	}
	for i := range it.rest {
		if it.rest[i] != o.rest[i] {
			return false
		}
	}
	return true
}
