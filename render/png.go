package render

import (
	"image"
	"image/color"
	"image/draw"
	"image/png"
	"io"

	"github.com/ughe/kdpoints/kdtree"
)

var (
	red   = color.RGBA{255, 0, 0, 255}
	blue  = color.RGBA{0, 0, 255, 255}
	frame = color.RGBA{192, 192, 192, 255}
)

// Image draws the partition of set on a white square canvas
func Image(set *kdtree.PointSet, opts Options) *image.RGBA {
	opts = opts.withDefaults()
	img := image.NewRGBA(image.Rect(0, 0, opts.Size, opts.Size))
	draw.Draw(img, img.Bounds(), image.White, image.Point{}, draw.Src)

	size := float64(opts.Size)
	v := NewViewport(World(set), size, size, float64(opts.Margin))
	tl, br := v.Pixel(kdtree.Point{X: v.World.Min.X, Y: v.World.Max.Y}), v.Pixel(kdtree.Point{X: v.World.Max.X, Y: v.World.Min.Y})
	Frame(img, image.Rectangle{tl, br}, frame, 0)

	set.Walk(func(p kdtree.Point, depth int, region kdtree.Rect) {
		a, b := v.Split(p, depth, region)
		c := red
		if depth%2 == 1 {
			c = blue
		}
		Segment(img, v.Pixel(a), v.Pixel(b), c, 0)
	})
	// Dots go on top of every line
	set.Walk(func(p kdtree.Point, _ int, _ kdtree.Rect) {
		Dot(img, v.Pixel(p), color.Black, opts.Radius)
	})
	return img
}

// PNG encodes the partition plot of set to w
func PNG(w io.Writer, set *kdtree.PointSet, opts Options) error {
	return png.Encode(w, Image(set, opts))
}
