package pointio

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/ughe/kdpoints/kdtree"
)

func TestNewSource(t *testing.T) {
	cfg := Config{CredentialsPath: "/keys", Region: "us-east-1"}
	cases := []struct {
		loc  string
		want Source
	}{
		{"points.txt", FileSource{Name: "points.txt"}},
		{"-", FileSource{Name: "-"}},
		{"file:///tmp/points.txt", FileSource{Name: "/tmp/points.txt"}},
		{"s3://bucket/dir/points.txt", S3Source{Bucket: "bucket", Key: "dir/points.txt", CredentialsPath: "/keys", Region: "us-east-1"}},
		{"gs://bucket/points.txt", GCSSource{Bucket: "bucket", Object: "points.txt", CredentialsPath: "/keys"}},
		{"sqlite:///tmp/p.db?table=pts", SQLiteSource{Path: "/tmp/p.db", Table: "pts"}},
		{"sqlite://p.db", SQLiteSource{Path: "p.db", Table: DefaultTable}},
	}
	for _, c := range cases {
		got, err := NewSource(c.loc, cfg)
		if err != nil {
			t.Fatalf("NewSource(%q): %v", c.loc, err)
		}
		if got != c.want {
			t.Fatalf("NewSource(%q) = %#v, expected %#v", c.loc, got, c.want)
		}
	}
}

func TestNewSourceErrors(t *testing.T) {
	if _, err := NewSource("ftp://host/points.txt", Config{}); !errors.Is(err, ErrScheme) {
		t.Fatalf("Expected ErrScheme. Got: %v", err)
	}
	if _, err := NewSource("sqlite://p.db?table=x-y", Config{}); !errors.Is(err, ErrTable) {
		t.Fatalf("Expected ErrTable. Got: %v", err)
	}
	if _, err := NewSource("s3://bucket", Config{}); err == nil {
		t.Fatalf("Expected an error for an S3 location without a key")
	}
	if _, err := NewSource("gs:///object", Config{}); err == nil {
		t.Fatalf("Expected an error for a GCS location without a bucket")
	}
}

func TestSQLite(t *testing.T) {
	ctx := context.Background()
	db := filepath.Join(t.TempDir(), "points.db")
	points := []kdtree.Point{{X: 2, Y: 3}, {X: 4, Y: 2}, {X: 4, Y: 5}, {X: 1, Y: 1}, {X: 1, Y: 1}, {X: 0.1, Y: -7e-3}}
	if err := WriteSQLite(ctx, db, "pts", points); err != nil {
		t.Fatal(err)
	}

	src, err := NewSource("sqlite://"+db+"?table=pts", Config{})
	if err != nil {
		t.Fatal(err)
	}
	set := &kdtree.PointSet{}
	n, err := LoadFrom(ctx, set, src)
	if err != nil {
		t.Fatal(err)
	}
	if n != len(points) || set.Size() != len(points)-1 {
		t.Fatalf("Expected %d rows and %d points. Got: n=%d size=%d", len(points), len(points)-1, n, set.Size())
	}
	for _, p := range points {
		if !set.Contains(p) {
			t.Fatalf("Expected %v from the table", p)
		}
	}

	// Appending keeps earlier rows
	if err := WriteSQLite(ctx, db, "pts", []kdtree.Point{{X: 9, Y: 9}}); err != nil {
		t.Fatal(err)
	}
	set = &kdtree.PointSet{}
	if _, err := LoadFrom(ctx, set, src); err != nil {
		t.Fatal(err)
	}
	if set.Size() != len(points) {
		t.Fatalf("Expected %d points after append. Got: %d", len(points), set.Size())
	}

	// Sources never write
	if _, err := LoadFrom(ctx, &kdtree.PointSet{}, SQLiteSource{Path: db, Table: "missing"}); err == nil {
		t.Fatalf("Expected an error for a missing table")
	}
	if err := WriteSQLite(ctx, db, "bad name", points); !errors.Is(err, ErrTable) {
		t.Fatalf("Expected ErrTable. Got: %v", err)
	}

	// A mistyped path fails without leaving a file behind
	typo := filepath.Join(filepath.Dir(db), "typo.db")
	if _, err := LoadFrom(ctx, &kdtree.PointSet{}, SQLiteSource{Path: typo, Table: DefaultTable}); err == nil {
		t.Fatalf("Expected an error for a missing database")
	}
	if _, err := os.Stat(typo); !os.IsNotExist(err) {
		t.Fatalf("Expected %v not to be created. Stat: %v", typo, err)
	}
}
