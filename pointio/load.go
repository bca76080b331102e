// Package pointio moves points between plain-text lists, storage services,
// and kdtree point sets.
//
// The text format is a stream of whitespace separated numbers read two at a
// time as x and y. Line breaks carry no meaning.
package pointio

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"math"
	"os"
	"strconv"

	"github.com/ughe/kdpoints/kdtree"
)

// ErrMalformed is returned when a token is not a finite number
var ErrMalformed = errors.New("malformed coordinate")

// Load puts every coordinate pair read from r into set and returns how many
// pairs it read. It stops at the first malformed token and returns
// ErrMalformed; points before it stay in the set. A trailing lone coordinate
// is ignored.
func Load(set *kdtree.PointSet, r io.Reader) (n int, err error) {
	sc := bufio.NewScanner(r)
	sc.Split(bufio.ScanWords)
	var xy [2]float64
	i := 0
	for sc.Scan() {
		v, e := strconv.ParseFloat(sc.Text(), 64)
		if e != nil || math.IsNaN(v) || math.IsInf(v, 0) {
			err = fmt.Errorf("%w: %q after %d points", ErrMalformed, sc.Text(), n)
			return
		}
		xy[i] = v
		i++
		if i == 2 {
			set.Put(kdtree.Point{X: xy[0], Y: xy[1]})
			n++
			i = 0
		}
	}
	err = sc.Err()
	return
}

// LoadFile returns a set loaded from the named text file. On error the
// returned set holds whatever was read before it, and is empty if the file
// could not be opened.
func LoadFile(name string) (*kdtree.PointSet, error) {
	set := &kdtree.PointSet{}
	f, err := os.Open(name)
	if err != nil {
		return set, err
	}
	defer f.Close()
	_, err = Load(set, bufio.NewReader(f))
	return set, err
}

func format(v float64) string {
	return strconv.FormatFloat(v, 'g', -1, 64)
}

// Write writes one "x y" line per point. Numbers use the shortest form that
// parses back to the same value, so Load restores the points exactly
func Write(w io.Writer, points []kdtree.Point) error {
	bw := bufio.NewWriter(w)
	for _, p := range points {
		bw.WriteString(format(p.X))
		bw.WriteByte(' ')
		bw.WriteString(format(p.Y))
		bw.WriteByte('\n')
	}
	return bw.Flush()
}

// WriteFile writes points to the named file, replacing it
func WriteFile(name string, points []kdtree.Point) error {
	f, err := os.Create(name)
	if err != nil {
		return err
	}
	err = Write(f, points)
	if cerr := f.Close(); err == nil {
		err = cerr
	}
	return err
}
