// Package postgis writes result arrays into a PostGIS table.
package postgis

import (
	"database/sql"
	"encoding/hex"
	"fmt"
	"strings"

	pq "github.com/lib/pq"
	"github.com/pkg/errors"

	"github.com/omniscale/vgeos/log"
	"github.com/omniscale/vgeos/vector"
)

var logger = log.New("postgis")

type SQLError struct {
	query         string
	originalError error
}

func (e *SQLError) Error() string {
	return fmt.Sprintf("SQL Error: %s in query %s", e.originalError.Error(), e.query)
}

type PostGIS struct {
	db     *sql.DB
	params string
	schema string
	table  string
	srid   int
}

// Open connects to the database. connection is either a postgres:// or
// postgis:// URL or a list of key=value parameters.
func Open(connection string) (*PostGIS, error) {
	params, err := connectionParams(connection)
	if err != nil {
		return nil, err
	}
	db, err := sql.Open("postgres", params)
	if err != nil {
		return nil, err
	}
	if err := db.Ping(); err != nil {
		db.Close()
		return nil, errors.Wrap(err, "connecting to database")
	}
	return &PostGIS{db: db, params: params}, nil
}

func connectionParams(connection string) (string, error) {
	if strings.HasPrefix(connection, "postgis://") {
		connection = strings.Replace(connection, "postgis", "postgres", 1)
	}
	params := connection
	if strings.HasPrefix(connection, "postgres://") || strings.HasPrefix(connection, "postgresql://") {
		var err error
		params, err = pq.ParseURL(connection)
		if err != nil {
			return "", errors.Wrap(err, "parsing connection url")
		}
	}
	return disableDefaultSslOnLocalhost(params), nil
}

// Init (re)creates schema.table with an index and a geometry column of srid.
// Existing data is dropped.
func (pg *PostGIS) Init(schema, table string, srid int) error {
	pg.schema, pg.table, pg.srid = schema, table, srid

	tx, err := pg.db.Begin()
	if err != nil {
		return err
	}
	defer rollbackIfTx(&tx)

	for _, stmt := range initSQL(schema, table, srid) {
		if _, err := tx.Exec(stmt); err != nil {
			return &SQLError{stmt, err}
		}
	}
	if err := tx.Commit(); err != nil {
		return err
	}
	tx = nil
	logger.Printf("[info] created table %s.%s", schema, table)
	return nil
}

func initSQL(schema, table string, srid int) []string {
	var stmts []string
	if schema != "public" {
		stmts = append(stmts, fmt.Sprintf("CREATE SCHEMA IF NOT EXISTS %s", pq.QuoteIdentifier(schema)))
	}
	name := tableName(schema, table)
	stmts = append(stmts,
		fmt.Sprintf("DROP TABLE IF EXISTS %s", name),
		fmt.Sprintf("CREATE TABLE %s (id SERIAL PRIMARY KEY, idx INTEGER NOT NULL, geometry geometry(Geometry, %d))", name, srid),
	)
	return stmts
}

func tableName(schema, table string) string {
	return pq.QuoteIdentifier(schema) + "." + pq.QuoteIdentifier(table)
}

// Insert copies wkbs into the table in one transaction. Each row stores its
// position in wkbs as idx.
func (pg *PostGIS) Insert(wkbs [][]byte) error {
	if pg.table == "" {
		return errors.New("table not initialized")
	}
	tx, err := pg.db.Begin()
	if err != nil {
		return err
	}
	defer rollbackIfTx(&tx)

	query := pq.CopyInSchema(pg.schema, pg.table, "idx", "geometry")
	stmt, err := tx.Prepare(query)
	if err != nil {
		return &SQLError{query, err}
	}
	for i, wkb := range wkbs {
		ewkb, err := withSRID(wkb, pg.srid)
		if err != nil {
			stmt.Close()
			return errors.Wrapf(err, "geometry %d", i)
		}
		if _, err := stmt.Exec(i, hex.EncodeToString(ewkb)); err != nil {
			stmt.Close()
			return &SQLError{query, err}
		}
	}
	if _, err := stmt.Exec(); err != nil {
		stmt.Close()
		return &SQLError{query, err}
	}
	if err := stmt.Close(); err != nil {
		return err
	}
	if err := tx.Commit(); err != nil {
		return err
	}
	tx = nil
	logger.Printf("[info] inserted %d rows into %s.%s", len(wkbs), pg.schema, pg.table)
	return nil
}

// InsertArray inserts all elements of a.
func (pg *PostGIS) InsertArray(e *vector.Engine, a *vector.Array) error {
	wkbs, err := e.ToWKB(a)
	if err != nil {
		return err
	}
	return pg.Insert(wkbs)
}

func (pg *PostGIS) Close() error {
	return pg.db.Close()
}
