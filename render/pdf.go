package render

import (
	"fmt"
	"io"

	"github.com/jung-kurt/gofpdf"

	"github.com/ughe/kdpoints/kdtree"
)

// PDF writes the partition plot of set as a single square page
func PDF(w io.Writer, set *kdtree.PointSet, opts Options) error {
	opts = opts.withDefaults()
	size, margin := float64(opts.Size), float64(opts.Margin)
	v := NewViewport(World(set), size, size, margin)

	pdf := gofpdf.New("P", "pt", "Letter", "")
	pdf.AddPageFormat("P", gofpdf.SizeType{Wd: size, Ht: size})
	pdf.SetLineWidth(0.5)

	x0, y0 := v.Map(kdtree.Point{X: v.World.Min.X, Y: v.World.Max.Y})
	x1, y1 := v.Map(kdtree.Point{X: v.World.Max.X, Y: v.World.Min.Y})
	pdf.SetDrawColor(int(frame.R), int(frame.G), int(frame.B))
	pdf.Rect(x0, y0, x1-x0, y1-y0, "D")

	set.Walk(func(p kdtree.Point, depth int, region kdtree.Rect) {
		if depth%2 == 0 {
			pdf.SetDrawColor(int(red.R), int(red.G), int(red.B))
		} else {
			pdf.SetDrawColor(int(blue.R), int(blue.G), int(blue.B))
		}
		a, b := v.Split(p, depth, region)
		ax, ay := v.Map(a)
		bx, by := v.Map(b)
		pdf.Line(ax, ay, bx, by)
	})
	pdf.SetFillColor(0, 0, 0)
	set.Walk(func(p kdtree.Point, _ int, _ kdtree.Rect) {
		x, y := v.Map(p)
		pdf.Circle(x, y, float64(opts.Radius), "F")
	})

	if opts.Caption {
		fontSize := margin / 2
		pdf.SetFont("Courier", "", fontSize)
		pdf.Text(margin, size-(margin-fontSize)/2, fmt.Sprintf("%d points, height %d", set.Size(), set.Height()))
	}
	return pdf.Output(w)
}
