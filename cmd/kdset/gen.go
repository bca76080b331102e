package main

import (
	"fmt"
	"math/rand"

	"github.com/ughe/kdpoints/kdtree"
	"github.com/ughe/kdpoints/pointio"
)

// Writes n uniform random points in [0, max) squared
func genCommand(dstFilename string, n int, seed int64, max float64) error {
	r := rand.New(rand.NewSource(seed))
	points := make([]kdtree.Point, n)
	for i := range points {
		points[i] = kdtree.Point{X: r.Float64() * max, Y: r.Float64() * max}
	}
	if err := pointio.WriteFile(dstFilename, points); err != nil {
		return err
	}
	fmt.Printf("[INFO] Generated %d points: %v\n", n, dstFilename)
	return nil
}
