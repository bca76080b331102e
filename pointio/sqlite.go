package pointio

import (
	"bytes"
	"context"
	"database/sql"
	"errors"
	"fmt"
	"io"
	"io/ioutil"
	"regexp"

	"github.com/mattn/go-sqlite3"

	"github.com/ughe/kdpoints/kdtree"
)

// DefaultTable is the table read and written when none is named
const DefaultTable = "points"

// ErrTable is returned for a table name that is not a plain identifier
var ErrTable = errors.New("invalid table name")

var tableRgxp = regexp.MustCompile(`^[A-Za-z_][A-Za-z0-9_]*$`)

func validTable(name string) bool {
	return tableRgxp.MatchString(name)
}

// SQLite3 that refuses writes, for sources
func init() {
	sql.Register("sqlite3_query_only",
		&sqlite3.SQLiteDriver{
			ConnectHook: func(conn *sqlite3.SQLiteConn) error {
				_, err := conn.Exec("PRAGMA query_only = ON", nil)
				return err
			},
		})
}

// SQLiteSource reads the x and y columns of a table in rowid order. The
// database is opened read-only and must already exist
type SQLiteSource struct {
	Path  string
	Table string
}

// Open renders the rows as text so they go through the same parser as files
func (s SQLiteSource) Open(ctx context.Context) (io.ReadCloser, error) {
	if !validTable(s.Table) {
		return nil, fmt.Errorf("%w: %q", ErrTable, s.Table)
	}
	db, err := sql.Open("sqlite3_query_only", "file:"+s.Path+"?mode=ro")
	if err != nil {
		return nil, err
	}
	defer db.Close()
	rows, err := db.QueryContext(ctx, fmt.Sprintf("SELECT x, y FROM %v ORDER BY rowid", s.Table))
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	buf := new(bytes.Buffer)
	for rows.Next() {
		var x, y float64
		if err := rows.Scan(&x, &y); err != nil {
			return nil, err
		}
		fmt.Fprintf(buf, "%v %v\n", format(x), format(y))
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return ioutil.NopCloser(buf), nil
}

// WriteSQLite stores points in the x and y columns of table, creating the
// database and table if needed. All rows go in as one transaction
func WriteSQLite(ctx context.Context, dbPath, table string, points []kdtree.Point) (err error) {
	if !validTable(table) {
		return fmt.Errorf("%w: %q", ErrTable, table)
	}
	db, err := sql.Open("sqlite3", dbPath)
	if err != nil {
		return
	}
	defer db.Close()
	_, err = db.ExecContext(ctx, fmt.Sprintf(`CREATE TABLE IF NOT EXISTS %v (
                x REAL NOT NULL,
                y REAL NOT NULL)`, table))
	if err != nil {
		return
	}
	tx, err := db.BeginTx(ctx, nil)
	if err != nil {
		return
	}
	defer tx.Rollback()
	stmt, err := tx.PrepareContext(ctx, fmt.Sprintf("INSERT INTO %v (x, y) VALUES ($1, $2)", table))
	if err != nil {
		return
	}
	defer stmt.Close()
	for _, p := range points {
		_, err = stmt.ExecContext(ctx, p.X, p.Y)
		if err != nil {
			return
		}
	}
	return tx.Commit()
}
