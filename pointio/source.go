package pointio

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/url"
	"strings"

	"github.com/ughe/kdpoints/kdtree"
)

// ErrScheme is returned for a location whose scheme has no source
var ErrScheme = errors.New("unsupported location scheme")

// Source opens a stream of text coordinates
type Source interface {
	Open(ctx context.Context) (io.ReadCloser, error)
}

// Config holds what remote sources need to authenticate
type Config struct {
	// Directory holding "credentials" and "config" (AWS) and "gcp.json" (GCS)
	CredentialsPath string
	// AWS region used when the shared config does not name one
	Region string
}

// NewSource picks a source for loc:
//
//	points.txt, file:///abs/points.txt, -   local file or stdin
//	s3://bucket/key                        Amazon S3 object
//	gs://bucket/object                     Google Cloud Storage object
//	sqlite:///path/to.db?table=points      x, y columns of a SQLite table
func NewSource(loc string, cfg Config) (Source, error) {
	if loc == "-" || !strings.Contains(loc, "://") {
		return FileSource{Name: loc}, nil
	}
	u, err := url.Parse(loc)
	if err != nil {
		return nil, err
	}
	switch u.Scheme {
	case "file":
		return FileSource{Name: u.Host + u.Path}, nil
	case "s3":
		if u.Host == "" || len(u.Path) < 2 {
			return nil, fmt.Errorf("expected s3://bucket/key. Found: %v", loc)
		}
		return S3Source{
			Bucket:          u.Host,
			Key:             strings.TrimPrefix(u.Path, "/"),
			CredentialsPath: cfg.CredentialsPath,
			Region:          cfg.Region,
		}, nil
	case "gs":
		if u.Host == "" || len(u.Path) < 2 {
			return nil, fmt.Errorf("expected gs://bucket/object. Found: %v", loc)
		}
		return GCSSource{
			Bucket:          u.Host,
			Object:          strings.TrimPrefix(u.Path, "/"),
			CredentialsPath: cfg.CredentialsPath,
		}, nil
	case "sqlite":
		table := u.Query().Get("table")
		if table == "" {
			table = DefaultTable
		}
		if !validTable(table) {
			return nil, fmt.Errorf("%w: %q", ErrTable, table)
		}
		return SQLiteSource{Path: u.Host + u.Path, Table: table}, nil
	}
	return nil, fmt.Errorf("%w: %v", ErrScheme, u.Scheme)
}

// LoadFrom opens src and loads everything it yields into set
func LoadFrom(ctx context.Context, set *kdtree.PointSet, src Source) (n int, err error) {
	rc, err := src.Open(ctx)
	if err != nil {
		return
	}
	defer rc.Close()
	return Load(set, rc)
}
