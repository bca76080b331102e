package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"os"
	"os/user"
	"path"
	"strings"

	"github.com/joho/godotenv"

	"github.com/ughe/kdpoints/kdtree"
	"github.com/ughe/kdpoints/pointio"
)

// Reads every point from loc into a new set
func loadSet(loc string, cfg pointio.Config) (*kdtree.PointSet, error) {
	src, err := pointio.NewSource(loc, cfg)
	if err != nil {
		return nil, err
	}
	set := &kdtree.PointSet{}
	n, err := pointio.LoadFrom(context.Background(), set, src)
	if err != nil {
		return nil, fmt.Errorf("%v: %v", loc, err)
	}
	if n != set.Size() {
		fmt.Fprintf(os.Stderr, "[INFO] Read %d points, %d distinct\n", n, set.Size())
	}
	return set, nil
}

func main() {
	// A missing .env is fine. Flags and the environment still apply
	godotenv.Load()

	usr, err := user.Current()
	if err != nil {
		log.Fatalf("Failed to read user's directory: %v", err)
	}
	defaultKeys := os.Getenv("KDSET_KEYS")
	if defaultKeys == "" {
		defaultKeys = path.Join(usr.HomeDir, ".kdset")
	}
	src_help := "\n\nThe source is a text file, - for stdin, s3://bucket/key, gs://bucket/object,\nor sqlite:///path/to.db?table=points\n\n"
	keys_help := "Path to credentials directory. Key files: credentials config (AWS), gcp.json (GCP)"
	addKeys := func(fs *flag.FlagSet) (*string, *string) {
		keys := fs.String("keys", defaultKeys, keys_help)
		region := fs.String("region", os.Getenv("KDSET_REGION"), "AWS region if the shared config has none")
		return keys, region
	}

	// stat command
	statSet := flag.NewFlagSet("stat", flag.ExitOnError)
	statKeys, statRegion := addKeys(statSet)
	statSet.Usage = func() {
		fmt.Fprintf(os.Stderr, "usage: %s %s [-keys=~/keydir/] source"+src_help, os.Args[0], os.Args[1])
		statSet.PrintDefaults()
	}

	// contains command
	containsSet := flag.NewFlagSet("contains", flag.ExitOnError)
	containsKeys, containsRegion := addKeys(containsSet)
	cx := containsSet.Float64("x", 0, "X coordinate")
	cy := containsSet.Float64("y", 0, "Y coordinate")
	containsSet.Usage = func() {
		fmt.Fprintf(os.Stderr, "usage: %s %s -x X -y Y source"+src_help, os.Args[0], os.Args[1])
		containsSet.PrintDefaults()
	}

	// nearest command
	nearestSet := flag.NewFlagSet("nearest", flag.ExitOnError)
	nearestKeys, nearestRegion := addKeys(nearestSet)
	nx := nearestSet.Float64("x", 0, "X coordinate of the query")
	ny := nearestSet.Float64("y", 0, "Y coordinate of the query")
	nk := nearestSet.Int("k", 1, "Number of neighbors, nearest first")
	nearestSet.Usage = func() {
		fmt.Fprintf(os.Stderr, "usage: %s %s -x X -y Y [-k 1] source"+src_help, os.Args[0], os.Args[1])
		nearestSet.PrintDefaults()
	}

	// range command
	rangeSet := flag.NewFlagSet("range", flag.ExitOnError)
	rangeKeys, rangeRegion := addKeys(rangeSet)
	x0 := rangeSet.Float64("x0", 0, "Left edge")
	y0 := rangeSet.Float64("y0", 0, "Bottom edge")
	x1 := rangeSet.Float64("x1", 0, "Right edge")
	y1 := rangeSet.Float64("y1", 0, "Top edge")
	rangeSet.Usage = func() {
		fmt.Fprintf(os.Stderr, "usage: %s %s -x0 X -y0 Y -x1 X -y1 Y source"+src_help, os.Args[0], os.Args[1])
		rangeSet.PrintDefaults()
	}

	// dump command
	dumpSet := flag.NewFlagSet("dump", flag.ExitOnError)
	dumpKeys, dumpRegion := addKeys(dumpSet)
	dumpSet.Usage = func() {
		fmt.Fprintf(os.Stderr, "usage: %s %s source"+src_help, os.Args[0], os.Args[1])
		dumpSet.PrintDefaults()
	}

	// plot command
	plotSet := flag.NewFlagSet("plot", flag.ExitOnError)
	plotKeys, plotRegion := addKeys(plotSet)
	plotOut := plotSet.String("o", "kdset.png", "Output file. A .pdf extension writes a PDF")
	plotSize := plotSet.Int("size", 512, "Width and height in pixels (png) or points (pdf)")
	plotCaption := plotSet.Bool("caption", true, "Print the point count under a pdf plot")
	plotSet.Usage = func() {
		fmt.Fprintf(os.Stderr, "usage: %s %s [-o out.png|out.pdf] [-size 512] source"+src_help, os.Args[0], os.Args[1])
		plotSet.PrintDefaults()
	}

	// gen command
	genSet := flag.NewFlagSet("gen", flag.ExitOnError)
	genN := genSet.Int("n", 1000, "Number of points")
	genSeed := genSet.Int64("seed", 1, "Random seed")
	genMax := genSet.Float64("max", 1, "Coordinates are uniform in [0, max)")
	genSet.Usage = func() {
		fmt.Fprintf(os.Stderr, "usage: %s %s [-n 1000] [-seed 1] [-max 1] out.txt\n\n", os.Args[0], os.Args[1])
		genSet.PrintDefaults()
	}

	// export command
	exportSet := flag.NewFlagSet("export", flag.ExitOnError)
	exportKeys, exportRegion := addKeys(exportSet)
	exportTable := exportSet.String("table", pointio.DefaultTable, "Table to append the points to")
	exportSet.Usage = func() {
		fmt.Fprintf(os.Stderr, "usage: %s %s [-table points] source out.db"+src_help, os.Args[0], os.Args[1])
		exportSet.PrintDefaults()
	}

	flag.Usage = func() {
		fmt.Fprintf(os.Stderr, "usage: %s <command> [arguments]\n\nThe commands are:\n\n"+
			strings.Repeat("\t%v\n", 8)+"\n", os.Args[0],
			"stat    \t print size, height, and bounding box",
			"contains\t check whether a point is in the set",
			"nearest \t find the nearest point or k nearest points",
			"range   \t list the points inside a rectangle",
			"dump    \t print the tree sideways",
			"plot    \t draw the partition as png or pdf",
			"gen     \t write random points to a text file",
			"export  \t copy points into a sqlite table",
		)
		flag.PrintDefaults()
	}

	if len(os.Args) < 2 {
		flag.Usage()
		os.Exit(1)
	}

	// Every command but gen reads exactly one source as its first argument
	parse := func(fs *flag.FlagSet, nargs int, keys, region *string) (string, pointio.Config) {
		fs.Parse(os.Args[2:])
		if fs.NArg() != nargs {
			fs.Usage()
			os.Exit(1)
		}
		return fs.Arg(0), pointio.Config{CredentialsPath: *keys, Region: *region}
	}

	switch os.Args[1] {
	case "stat":
		loc, cfg := parse(statSet, 1, statKeys, statRegion)
		err = statCommand(loc, cfg)
	case "contains":
		loc, cfg := parse(containsSet, 1, containsKeys, containsRegion)
		err = containsCommand(loc, cfg, kdtree.Point{X: *cx, Y: *cy})
	case "nearest":
		loc, cfg := parse(nearestSet, 1, nearestKeys, nearestRegion)
		if *nk < 1 {
			fmt.Fprintf(os.Stderr, "Error: -k must be at least 1\n\n")
			nearestSet.Usage()
			os.Exit(1)
		}
		err = nearestCommand(loc, cfg, kdtree.Point{X: *nx, Y: *ny}, *nk)
	case "range":
		loc, cfg := parse(rangeSet, 1, rangeKeys, rangeRegion)
		if *x1 < *x0 || *y1 < *y0 {
			fmt.Fprintf(os.Stderr, "Error: expected x0 <= x1 and y0 <= y1\n\n")
			rangeSet.Usage()
			os.Exit(1)
		}
		r := kdtree.NewRect(kdtree.Point{X: *x0, Y: *y0}, kdtree.Point{X: *x1, Y: *y1})
		err = rangeCommand(loc, cfg, r)
	case "dump":
		loc, cfg := parse(dumpSet, 1, dumpKeys, dumpRegion)
		err = dumpCommand(loc, cfg)
	case "plot":
		loc, cfg := parse(plotSet, 1, plotKeys, plotRegion)
		err = plotCommand(loc, cfg, *plotOut, *plotSize, *plotCaption)
	case "gen":
		genSet.Parse(os.Args[2:])
		if genSet.NArg() != 1 || *genN < 0 || !(*genMax > 0) {
			genSet.Usage()
			os.Exit(1)
		}
		err = genCommand(genSet.Arg(0), *genN, *genSeed, *genMax)
	case "export":
		loc, cfg := parse(exportSet, 2, exportKeys, exportRegion)
		err = exportCommand(loc, cfg, exportSet.Arg(1), *exportTable)
	default:
		flag.Usage()
		os.Exit(1)
	}
	if err != nil {
		log.Fatal(err)
	}
}
