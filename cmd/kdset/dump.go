package main

import (
	"os"

	"github.com/ughe/kdpoints/pointio"
)

func dumpCommand(loc string, cfg pointio.Config) error {
	set, err := loadSet(loc, cfg)
	if err != nil {
		return err
	}
	return set.Dump(os.Stdout)
}
