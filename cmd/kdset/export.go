package main

import (
	"context"
	"fmt"

	"github.com/ughe/kdpoints/pointio"
)

// Appends the distinct points of loc to a sqlite table in traversal order
func exportCommand(loc string, cfg pointio.Config, dbFilename, table string) error {
	set, err := loadSet(loc, cfg)
	if err != nil {
		return err
	}
	if err := pointio.WriteSQLite(context.Background(), dbFilename, table, set.Points()); err != nil {
		return err
	}
	fmt.Printf("[INFO] Exported %d points: sqlite://%v?table=%v\n", set.Size(), dbFilename, table)
	return nil
}
