// Package render draws the partition of a kdtree point set: the split line
// of every node clipped to the region it divides, and a dot per point.
package render

import (
	"image"
	"math"

	"github.com/ughe/kdpoints/kdtree"
)

// Viewport maps a world rectangle onto an output canvas whose origin is the
// top left corner. World y grows up, canvas y grows down. The scale is the
// same on both axes and the world is centered inside the margin.
type Viewport struct {
	World  kdtree.Rect
	scale  float64
	x0, y0 float64 // Canvas position of the world's top left corner
}

// Widens a flat or empty extent by one unit on each side
func pad(r kdtree.Rect) kdtree.Rect {
	if !(r.Max.X > r.Min.X) {
		r.Min.X, r.Max.X = r.Min.X-1, r.Min.X+1
	}
	if !(r.Max.Y > r.Min.Y) {
		r.Min.Y, r.Max.Y = r.Min.Y-1, r.Min.Y+1
	}
	return r
}

// NewViewport fits world into a w by h canvas, leaving margin on every side
func NewViewport(world kdtree.Rect, w, h, margin float64) Viewport {
	world = pad(world)
	dx, dy := world.Max.X-world.Min.X, world.Max.Y-world.Min.Y
	iw, ih := w-2*margin, h-2*margin
	s := math.Min(iw/dx, ih/dy)
	return Viewport{
		World: world,
		scale: s,
		x0:    margin + (iw-s*dx)/2,
		y0:    margin + (ih-s*dy)/2,
	}
}

// Map returns the canvas position of p
func (v Viewport) Map(p kdtree.Point) (x, y float64) {
	return v.x0 + (p.X-v.World.Min.X)*v.scale, v.y0 + (v.World.Max.Y-p.Y)*v.scale
}

// Pixel is Map rounded to the nearest pixel
func (v Viewport) Pixel(p kdtree.Point) image.Point {
	x, y := v.Map(p)
	return image.Point{int(math.Round(x)), int(math.Round(y))}
}

// Clip returns the part of r inside the world. Infinite edges become the
// world's edges
func (v Viewport) Clip(r kdtree.Rect) kdtree.Rect {
	return kdtree.Rect{
		Min: kdtree.Point{X: math.Max(r.Min.X, v.World.Min.X), Y: math.Max(r.Min.Y, v.World.Min.Y)},
		Max: kdtree.Point{X: math.Min(r.Max.X, v.World.Max.X), Y: math.Min(r.Max.Y, v.World.Max.Y)},
	}
}

// Split returns the end points of the line p draws across region: vertical
// at even depth, horizontal at odd depth. The line is clipped to the world
func (v Viewport) Split(p kdtree.Point, depth int, region kdtree.Rect) (a, b kdtree.Point) {
	r := v.Clip(region)
	if depth%2 == 0 {
		return kdtree.Point{X: p.X, Y: r.Min.Y}, kdtree.Point{X: p.X, Y: r.Max.Y}
	}
	return kdtree.Point{X: r.Min.X, Y: p.Y}, kdtree.Point{X: r.Max.X, Y: p.Y}
}

// Options control the canvas. Zero fields take defaults
type Options struct {
	Size    int  // Width and height in pixels (PNG) or points (PDF)
	Margin  int  // Blank border around the world
	Radius  int  // Half-width of a point's dot
	Caption bool // Print the point count under the plot (PDF only)
}

const DefaultSize = 512

func (o Options) withDefaults() Options {
	if o.Size <= 0 {
		o.Size = DefaultSize
	}
	if o.Margin <= 0 {
		o.Margin = o.Size / 20
	}
	if o.Radius <= 0 {
		o.Radius = 2
	}
	return o
}

// World returns the region a plot of set covers: its bounding box, or the
// unit square around the origin for an empty set
func World(set *kdtree.PointSet) kdtree.Rect {
	if r, ok := set.Bounds(); ok {
		return r
	}
	return kdtree.Rect{Max: kdtree.Point{X: 1, Y: 1}}
}
