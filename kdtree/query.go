package kdtree

import (
	"math"

	"github.com/tidwall/tinyqueue"
)

// Branch and bound search below n, which sits at depth d. Returns nil for
// an empty subtree
func nearest(n *Node, q Point, d int) *Node {
	if n == nil {
		return nil
	}
	near, far := n.lo, n.hi
	if q.axis(d) >= n.val.axis(d) {
		near, far = n.hi, n.lo
	}
	best := nearest(near, q, d+1)
	if best == nil || q.Distance(n.val) <= q.Distance(best.val) {
		best = n
	}
	// Every point across the split is at least this far from q
	split := math.Abs(q.axis(d) - n.val.axis(d))
	if q.Distance(best.val) > split {
		alt := nearest(far, q, d+1)
		if alt != nil && q.Distance(alt.val) < q.Distance(best.val) {
			best = alt
		}
	}
	return best
}

// Nearest returns the point closest to q. ok is false when the set is empty.
// Among equally close points the one met first by the search wins, which is
// deterministic for a given tree shape
func (s *PointSet) Nearest(q Point) (p Point, ok bool) {
	n := nearest(s.root, q, 0)
	if n == nil {
		return
	}
	return n.val, true
}

type queueItem struct {
	p    Point
	dist float64
}

// Farthest item first
func (item *queueItem) Less(b tinyqueue.Item) bool {
	return item.dist > b.(*queueItem).dist
}

// NearestK returns the k points closest to q ordered from nearest to
// farthest, or every point when the set holds fewer than k. Order among
// equally distant points is unspecified.
//
// All points are scanned while a queue of the k best so far is kept, so the
// cost is O(n log k).
func (s *PointSet) NearestK(q Point, k int) []Point {
	if k <= 0 || s.root == nil {
		return nil
	}
	queue := tinyqueue.New(nil)
	for it := s.Begin(); !it.Done(); it.Next() {
		p := it.Value()
		queue.Push(&queueItem{p, q.Distance(p)})
		if queue.Len() > k {
			queue.Pop()
		}
	}
	res := make([]Point, queue.Len())
	for i := len(res) - 1; i >= 0; i-- {
		res[i] = queue.Pop().(*queueItem).p
	}
	return res
}

// Range returns every point inside r, bounds inclusive, in traversal order.
// Each point is tested once, so the cost is O(n)
func (s *PointSet) Range(r Rect) []Point {
	var res []Point
	for it := s.Begin(); !it.Done(); it.Next() {
		if r.Contains(it.Value()) {
			res = append(res, it.Value())
		}
	}
	return res
}
