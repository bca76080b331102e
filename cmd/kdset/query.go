package main

import (
	"fmt"
	"os"

	"github.com/ughe/kdpoints/kdtree"
	"github.com/ughe/kdpoints/pointio"
)

func containsCommand(loc string, cfg pointio.Config, p kdtree.Point) error {
	set, err := loadSet(loc, cfg)
	if err != nil {
		return err
	}
	fmt.Printf("%v\n", set.Contains(p))
	return nil
}

// Prints one "x y distance" line per neighbor, nearest first
func nearestCommand(loc string, cfg pointio.Config, q kdtree.Point, k int) error {
	set, err := loadSet(loc, cfg)
	if err != nil {
		return err
	}
	if k == 1 {
		p, ok := set.Nearest(q)
		if !ok {
			return fmt.Errorf("No points in: %v", loc)
		}
		fmt.Printf("%v %v %v\n", p.X, p.Y, p.Distance(q))
		return nil
	}
	for _, p := range set.NearestK(q, k) {
		fmt.Printf("%v %v %v\n", p.X, p.Y, p.Distance(q))
	}
	return nil
}

func rangeCommand(loc string, cfg pointio.Config, r kdtree.Rect) error {
	set, err := loadSet(loc, cfg)
	if err != nil {
		return err
	}
	inside := set.Range(r)
	fmt.Fprintf(os.Stderr, "[INFO] %d of %d points in %v\n", len(inside), set.Size(), r)
	for _, p := range inside {
		fmt.Printf("%v %v\n", p.X, p.Y)
	}
	return nil
}
