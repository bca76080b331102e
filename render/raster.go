package render

import (
	"image"
	"image/color"
	"image/draw"
)

// Paints r, clipped to the canvas
func fill(img draw.Image, r image.Rectangle, c color.Color) {
	r = r.Intersect(img.Bounds())
	if r.Empty() {
		return
	}
	draw.Draw(img, r, &image.Uniform{c}, image.Point{}, draw.Src)
}

// Dot fills the square of half-width size centered on p
func Dot(img draw.Image, p image.Point, c color.Color, size int) {
	fill(img, image.Rect(p.X-size, p.Y-size, p.X+size+1, p.Y+size+1), c)
}

// Segment paints from a to b inclusive, widened by weight pixels on every
// side. Split lines and frame edges share a row or a column; for any other
// pair the box between a and b is filled
func Segment(img draw.Image, a, b image.Point, c color.Color, weight int) {
	r := image.Rectangle{a, b}.Canon()
	fill(img, image.Rect(r.Min.X-weight, r.Min.Y-weight, r.Max.X+weight+1, r.Max.Y+weight+1), c)
}

// Frame outlines r, whose Max corner is drawn too
func Frame(img draw.Image, r image.Rectangle, c color.Color, weight int) {
	r = r.Canon()
	tr, bl := image.Point{r.Max.X, r.Min.Y}, image.Point{r.Min.X, r.Max.Y}
	Segment(img, r.Min, tr, c, weight)
	Segment(img, tr, r.Max, c, weight)
	Segment(img, bl, r.Max, c, weight)
	Segment(img, r.Min, bl, c, weight)
}
