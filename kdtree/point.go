package kdtree

import (
	"math"
	"strconv"
)

// Point is an immutable 2-d coordinate. Equality is exact (==).
type Point struct {
	X, Y float64
}

// Euclidean distance between p and q
func (p Point) Distance(q Point) float64 {
	return math.Hypot(p.X-q.X, p.Y-q.Y)
}

// Less orders points by x, then by y
func (p Point) Less(q Point) bool {
	return p.X < q.X || (p.X == q.X && p.Y < q.Y)
}

// Coordinate on the discriminator axis of depth d. Even depths use x
func (p Point) axis(d int) float64 {
	if d%2 == 0 {
		return p.X
	}
	return p.Y
}

func (p Point) String() string {
	return "(" + strconv.FormatFloat(p.X, 'f', -1, 64) + "; " + strconv.FormatFloat(p.Y, 'f', -1, 64) + ")"
}

// Rect is an axis-aligned rectangle from Min (lower left) to Max (upper
// right). Min.X <= Max.X and Min.Y <= Max.Y is up to the caller.
type Rect struct {
	Min, Max Point
}

// NewRect returns the rectangle spanned by the lower left and upper right corners
func NewRect(lo, hi Point) Rect {
	return Rect{lo, hi}
}

func (r Rect) XMin() float64 { return r.Min.X }
func (r Rect) YMin() float64 { return r.Min.Y }
func (r Rect) XMax() float64 { return r.Max.X }
func (r Rect) YMax() float64 { return r.Max.Y }

// Contains reports whether p lies inside r. Bounds are inclusive
func (r Rect) Contains(p Point) bool {
	return r.Min.X <= p.X && p.X <= r.Max.X &&
		r.Min.Y <= p.Y && p.Y <= r.Max.Y
}

// Intersects reports whether r and o share at least one point. Touching edges count
func (r Rect) Intersects(o Rect) bool {
	return !(o.Max.Y < r.Min.Y || r.Max.Y < o.Min.Y ||
		o.Max.X < r.Min.X || r.Max.X < o.Min.X)
}

// Distance returns the shortest distance from p to r, which is zero when r
// contains p
func (r Rect) Distance(p Point) float64 {
	if r.Contains(p) {
		return 0
	}
	if r.Min.X <= p.X && p.X <= r.Max.X {
		return math.Min(math.Abs(p.Y-r.Max.Y), math.Abs(r.Min.Y-p.Y))
	}
	if r.Min.Y <= p.Y && p.Y <= r.Max.Y {
		return math.Min(math.Abs(p.X-r.Max.X), math.Abs(r.Min.X-p.X))
	}
	// Outside both slabs, so a corner is closest
	return math.Min(
		math.Min(p.Distance(r.Min), p.Distance(r.Max)),
		math.Min(p.Distance(Point{r.Max.X, r.Min.Y}), p.Distance(Point{r.Min.X, r.Max.Y})),
	)
}

func (r Rect) String() string {
	return "[" + r.Min.String() + ", " + r.Max.String() + "]"
}
