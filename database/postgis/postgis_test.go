package postgis

import (
	"bytes"
	"encoding/binary"
	"os"
	"strings"
	"testing"

	"github.com/twpayne/go-geom"
	"github.com/twpayne/go-geom/encoding/ewkb"
	"github.com/twpayne/go-geom/encoding/wkb"

	"github.com/omniscale/vgeos/vector"
)

func TestConnectionParams(t *testing.T) {
	for _, tc := range []struct {
		conn string
		want []string
	}{
		{"postgis://user:pw@localhost/osm", []string{"host=localhost", "dbname=osm", "user=user", "sslmode=disable"}},
		{"postgres://example.org/osm?sslmode=require", []string{"host=example.org", "sslmode=require"}},
		{"host=localhost dbname=osm", []string{"host=localhost", "sslmode=disable"}},
		{"host=example.org dbname=osm", []string{"host=example.org"}},
	} {
		params, err := connectionParams(tc.conn)
		if err != nil {
			t.Fatal(tc.conn, err)
		}
		for _, w := range tc.want {
			if !strings.Contains(params, w) {
				t.Errorf("%q not in params %q of %s", w, params, tc.conn)
			}
		}
	}
	params, err := connectionParams("host=example.org")
	if err != nil {
		t.Fatal(err)
	}
	if strings.Contains(params, "sslmode") {
		t.Error("unexpected sslmode", params)
	}
}

func TestSplitTableName(t *testing.T) {
	if s, tbl := SplitTableName("import.result"); s != "import" || tbl != "result" {
		t.Error(s, tbl)
	}
	if s, tbl := SplitTableName("result"); s != "public" || tbl != "result" {
		t.Error(s, tbl)
	}
}

func TestInitSQL(t *testing.T) {
	stmts := initSQL("import", "result", 3857)
	if len(stmts) != 3 {
		t.Fatal(stmts)
	}
	if stmts[0] != `CREATE SCHEMA IF NOT EXISTS "import"` {
		t.Error(stmts[0])
	}
	if !strings.Contains(stmts[2], `"import"."result"`) || !strings.Contains(stmts[2], "geometry(Geometry, 3857)") {
		t.Error(stmts[2])
	}
	if stmts := initSQL("public", "result", 4326); len(stmts) != 2 {
		t.Error(stmts)
	}
}

func TestWithSRID(t *testing.T) {
	p := geom.NewPoint(geom.XY).MustSetCoords(geom.Coord{1, 2})
	for _, order := range []binary.ByteOrder{binary.LittleEndian, binary.BigEndian} {
		plain, err := wkb.Marshal(p, order)
		if err != nil {
			t.Fatal(err)
		}
		got, err := withSRID(plain, 4326)
		if err != nil {
			t.Fatal(err)
		}
		want, err := ewkb.Marshal(geom.NewPoint(geom.XY).MustSetCoords(geom.Coord{1, 2}).SetSRID(4326), order)
		if err != nil {
			t.Fatal(err)
		}
		if !bytes.Equal(want, got) {
			t.Errorf("%v: %x != %x", order, got, want)
		}
		again, err := withSRID(got, 3857)
		if err != nil {
			t.Fatal(err)
		}
		if !bytes.Equal(got, again) {
			t.Error("srid changed")
		}
	}
	if _, err := withSRID([]byte{1, 2}, 4326); err == nil {
		t.Error("expected error for short wkb")
	}
}

// Requires a PostGIS database in VGEOS_TEST_CONNECTION.
func TestInsert(t *testing.T) {
	conn := os.Getenv("VGEOS_TEST_CONNECTION")
	if conn == "" {
		t.Skip("VGEOS_TEST_CONNECTION not set")
	}
	pg, err := Open(conn)
	if err != nil {
		t.Fatal(err)
	}
	defer pg.Close()

	e := vector.NewEngine()
	defer e.Finish()
	a, err := e.PointsFromXY([]float64{1, 2, 3}, []float64{4, 5, 6})
	if err != nil {
		t.Fatal(err)
	}
	defer a.Release()

	if err := pg.Init("vgeos_test", "points", 4326); err != nil {
		t.Fatal(err)
	}
	if err := pg.InsertArray(e, a); err != nil {
		t.Fatal(err)
	}
	var n int
	if err := pg.db.QueryRow(`SELECT count(*) FROM "vgeos_test"."points" WHERE ST_SRID(geometry) = 4326`).Scan(&n); err != nil {
		t.Fatal(err)
	}
	if n != 3 {
		t.Errorf("expected 3 rows, got %d", n)
	}
}
