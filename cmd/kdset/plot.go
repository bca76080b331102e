package main

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/ughe/kdpoints/pointio"
	"github.com/ughe/kdpoints/render"
)

func plotCommand(loc string, cfg pointio.Config, dstFilename string, size int, caption bool) error {
	set, err := loadSet(loc, cfg)
	if err != nil {
		return err
	}
	ext := strings.ToLower(filepath.Ext(dstFilename))
	if ext != ".png" && ext != ".pdf" {
		return fmt.Errorf("Expected (png|pdf). Found: %s", ext)
	}
	f, err := os.Create(dstFilename)
	if err != nil {
		return err
	}
	opts := render.Options{Size: size, Caption: caption}
	if ext == ".pdf" {
		err = render.PDF(f, set, opts)
	} else {
		err = render.PNG(f, set, opts)
	}
	if cerr := f.Close(); err == nil {
		err = cerr
	}
	if err != nil {
		return err
	}
	fmt.Printf("[INFO] Plotted %d points: %v\n", set.Size(), dstFilename)
	return nil
}
