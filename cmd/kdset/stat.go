package main

import (
	"fmt"

	"github.com/ughe/kdpoints/pointio"
)

func statCommand(loc string, cfg pointio.Config) error {
	set, err := loadSet(loc, cfg)
	if err != nil {
		return err
	}
	fmt.Printf("size:   %d\n", set.Size())
	fmt.Printf("height: %d\n", set.Height())
	if r, ok := set.Bounds(); ok {
		fmt.Printf("bounds: %v\n", r)
	} else {
		fmt.Printf("bounds: none\n")
	}
	return nil
}
