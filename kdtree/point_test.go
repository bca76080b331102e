package kdtree

import (
	"math"
	"testing"
)

func assert(t *testing.T, cond bool, err string) {
	if !cond {
		t.Fatalf("[FAILED] Test name: %v", err)
	}
}

func near(a, b float64) bool {
	return math.Abs(a-b) < 1e-9
}

func TestPointOrder(t *testing.T) {
	a, b := Point{1, 5}, Point{2, 0}
	assert(t, a.Less(b), "smaller x first")
	assert(t, !b.Less(a), "larger x after")
	assert(t, Point{1, 1}.Less(Point{1, 2}), "equal x then y")
	assert(t, !Point{1, 2}.Less(Point{1, 2}), "irreflexive")
	assert(t, Point{1, 2} == Point{1, 2}, "exact equality")
	assert(t, Point{1, 2} != Point{1, 2.0000001}, "no tolerance")
}

func TestPointDistance(t *testing.T) {
	assert(t, near(Point{0, 0}.Distance(Point{3, 4}), 5), "3-4-5")
	assert(t, Point{1, 1}.Distance(Point{1, 1}) == 0, "self")
	assert(t, Point{-1, 2}.Distance(Point{2, -2}) == Point{2, -2}.Distance(Point{-1, 2}), "symmetric")
}

func TestPointString(t *testing.T) {
	assert(t, Point{1, 2.5}.String() == "(1; 2.5)", "format")
	assert(t, Point{-0.25, 1e21}.String() == "(-0.25; 1000000000000000000000)", "format large")
}

func TestRectContains(t *testing.T) {
	r := NewRect(Point{0, 0}, Point{10, 5})
	assert(t, r.Contains(Point{0, 0}), "lower left corner")
	assert(t, r.Contains(Point{10, 5}), "upper right corner")
	assert(t, r.Contains(Point{5, 2}), "inside")
	assert(t, !r.Contains(Point{10.5, 2}), "right of")
	assert(t, !r.Contains(Point{5, -1}), "below")
	p := NewRect(Point{3, 3}, Point{3, 3})
	assert(t, p.Contains(Point{3, 3}), "degenerate point rect")
	assert(t, r.XMin() == 0 && r.YMin() == 0 && r.XMax() == 10 && r.YMax() == 5, "accessors")
}

func TestRectIntersects(t *testing.T) {
	// Same cases as the interval tests, in two dimensions
	a := NewRect(Point{0, 0}, Point{10, 10})
	assert(t, a.Intersects(a), "identity")
	assert(t, a.Intersects(NewRect(Point{2, 2}, Point{8, 8})), "subset")
	assert(t, NewRect(Point{2, 2}, Point{8, 8}).Intersects(a), "subset flipped")
	assert(t, a.Intersects(NewRect(Point{9, 9}, Point{20, 20})), "corner overlap")
	assert(t, a.Intersects(NewRect(Point{10, 0}, Point{20, 10})), "shared edge")
	assert(t, !a.Intersects(NewRect(Point{11, 0}, Point{20, 10})), "disjoint right")
	assert(t, !a.Intersects(NewRect(Point{0, -5}, Point{10, -1})), "disjoint below")
	assert(t, !a.Intersects(NewRect(Point{0, 11}, Point{3, 14})), "x overlap only")
}

func TestRectDistance(t *testing.T) {
	r := NewRect(Point{0, 0}, Point{4, 2})
	assert(t, r.Distance(Point{1, 1}) == 0, "inside")
	assert(t, r.Distance(Point{4, 2}) == 0, "on corner")
	assert(t, near(r.Distance(Point{2, 5}), 3), "above")
	assert(t, near(r.Distance(Point{2, -1}), 1), "below")
	assert(t, near(r.Distance(Point{7, 1}), 3), "right")
	assert(t, near(r.Distance(Point{-2, 1}), 2), "left")
	assert(t, near(r.Distance(Point{7, 6}), 5), "upper right corner")
	assert(t, near(r.Distance(Point{-3, -4}), 5), "lower left corner")
	assert(t, near(r.Distance(Point{7, -4}), 5), "lower right corner")
	assert(t, near(r.Distance(Point{-3, 6}), 5), "upper left corner")
}
