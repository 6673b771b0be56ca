package geos

import (
	"math"
	"testing"
)

func TestPoint(t *testing.T) {
	g := NewGeos()
	defer g.Finish()

	p, err := g.Point(3, 4)
	if err != nil {
		t.Fatal(err)
	}
	defer g.Destroy(p)

	x, err := g.Ordinate(p, 0, X)
	if err != nil {
		t.Fatal(err)
	}
	y, err := g.Ordinate(p, 0, Y)
	if err != nil {
		t.Fatal(err)
	}
	if x != 3 || y != 4 {
		t.Errorf("unexpected coords %f %f", x, y)
	}
	if id, _ := g.TypeID(p); id != PointType {
		t.Errorf("unexpected type %d", id)
	}
}

func TestLineString(t *testing.T) {
	g := NewGeos()
	defer g.Finish()

	l, err := g.LineString([]float64{0, 3, 3}, []float64{0, 4, 0})
	if err != nil {
		t.Fatal(err)
	}
	defer g.Destroy(l)
	if id, _ := g.TypeID(l); id != LineStringType {
		t.Errorf("unexpected type %d", id)
	}
	if length, _ := g.Length(l); length != 9 {
		t.Errorf("unexpected length %f", length)
	}
	if y, _ := g.Ordinate(l, 1, Y); y != 4 {
		t.Errorf("unexpected y %f", y)
	}
	if z, _ := g.Ordinate(l, 1, Z); !math.IsNaN(z) {
		t.Errorf("expected NaN z for 2D linestring, got %f", z)
	}

	if _, err := g.LineString([]float64{0, 1}, []float64{0}); err == nil {
		t.Error("expected error for length mismatch")
	}
}

func TestOrdinateWithoutCoordSeq(t *testing.T) {
	g := NewGeos()
	defer g.Finish()

	poly, err := g.FromWkt("POLYGON((0 0, 10 0, 10 10, 0 10, 0 0))")
	if err != nil {
		t.Fatal(err)
	}
	defer g.Destroy(poly)

	if _, err := g.Ordinate(poly, 0, X); err == nil {
		t.Error("expected error for polygon")
	}
}

func TestBuffer(t *testing.T) {
	g := NewGeos()
	defer g.Finish()

	p, err := g.Point(0, 0)
	if err != nil {
		t.Fatal(err)
	}
	defer g.Destroy(p)

	b, err := g.Buffer(p, 1.0)
	if err != nil {
		t.Fatal(err)
	}
	defer g.Destroy(b)

	area, err := g.Area(b)
	if err != nil {
		t.Fatal(err)
	}
	if math.Abs(area-math.Pi) > 0.01 {
		t.Errorf("buffer area is not ~pi: %f", area)
	}

	sq, err := g.BufferWithStyle(p, 1.0, 16, CapSquare, JoinMitre, 5.0)
	if err != nil {
		t.Fatal(err)
	}
	defer g.Destroy(sq)
	if area, _ := g.Area(sq); math.Abs(area-4.0) > 1e-9 {
		t.Errorf("square buffer area is not 4: %f", area)
	}
}

func TestPredicates(t *testing.T) {
	g := NewGeos()
	defer g.Finish()

	poly, _ := g.FromWkt("POLYGON((0 0, 10 0, 10 10, 0 10, 0 0))")
	defer g.Destroy(poly)
	inside, _ := g.Point(5, 5)
	defer g.Destroy(inside)
	outside, _ := g.Point(20, 20)
	defer g.Destroy(outside)

	for _, tc := range []struct {
		name string
		fn   func(a, b *Geom) (bool, error)
		a, b *Geom
		want bool
	}{
		{"contains", g.Contains, poly, inside, true},
		{"contains outside", g.Contains, poly, outside, false},
		{"within", g.Within, inside, poly, true},
		{"intersects", g.Intersects, poly, inside, true},
		{"disjoint", g.Disjoint, poly, outside, true},
		{"covers", g.Covers, poly, inside, true},
		{"coveredBy", g.CoveredBy, inside, poly, true},
		{"equals", g.Equals, poly, poly, true},
		{"touches", g.Touches, poly, inside, false},
		{"overlaps", g.Overlaps, poly, inside, false},
		{"crosses", g.Crosses, poly, inside, false},
	} {
		got, err := tc.fn(tc.a, tc.b)
		if err != nil {
			t.Fatal(tc.name, err)
		}
		if got != tc.want {
			t.Errorf("%s: got %v, want %v", tc.name, got, tc.want)
		}
	}
}

func TestPrepared(t *testing.T) {
	g := NewGeos()
	defer g.Finish()

	poly, _ := g.FromWkt("POLYGON((0 0, 10 0, 10 10, 0 10, 0 0))")
	defer g.Destroy(poly)
	prep, err := g.Prepare(poly)
	if err != nil {
		t.Fatal(err)
	}
	defer g.PreparedDestroy(prep)

	inside, _ := g.Point(5, 5)
	defer g.Destroy(inside)
	border, _ := g.Point(0, 5)
	defer g.Destroy(border)

	if ok, _ := g.PreparedContains(prep, inside); !ok {
		t.Error("inside not contained")
	}
	if ok, _ := g.PreparedContainsProperly(prep, border); ok {
		t.Error("border properly contained")
	}
	if ok, _ := g.PreparedCovers(prep, border); !ok {
		t.Error("border not covered")
	}
	if ok, _ := g.PreparedDisjoint(prep, inside); ok {
		t.Error("inside disjoint")
	}
}

func TestReleasePrepared(t *testing.T) {
	g := NewGeos()
	poly, _ := g.FromWkt("POLYGON((0 0, 10 0, 10 10, 0 10, 0 0))")
	prep, err := g.Prepare(poly)
	if err != nil {
		t.Fatal(err)
	}
	// the shared context does not depend on g
	g.Finish()

	ReleasePrepared(prep)
	if prep.v != nil {
		t.Error("prepared handle not released")
	}
	ReleasePrepared(prep)
	ReleasePrepared(nil)
	Release([]Geom{*poly})
}

func TestCloneAndRelease(t *testing.T) {
	g := NewGeos()
	defer g.Finish()

	p, _ := g.Point(1, 2)
	c, err := g.Clone(p)
	if err != nil {
		t.Fatal(err)
	}
	g.Destroy(p)

	// clone survives destruction of the source
	if x, _ := g.Ordinate(c, 0, X); x != 1 {
		t.Error("unexpected clone x", x)
	}

	geoms := []Geom{*c, {}}
	Release(geoms)
	for _, geom := range geoms {
		if !geom.IsNil() {
			t.Error("handle not released")
		}
	}
	// second release is a no-op
	Release(geoms)
	Teardown()
	Teardown()
}

func TestWkbRoundTrip(t *testing.T) {
	g := NewGeos()
	defer g.Finish()

	line, err := g.FromWkt("LINESTRING(0 0, 10 0)")
	if err != nil {
		t.Fatal(err)
	}
	defer g.Destroy(line)

	wkb, err := g.AsWkb(line)
	if err != nil {
		t.Fatal(err)
	}
	parsed, err := g.FromWkb(wkb)
	if err != nil {
		t.Fatal(err)
	}
	defer g.Destroy(parsed)
	if l, _ := g.Length(parsed); l != 10 {
		t.Error("unexpected length", l)
	}
	if _, err := g.FromWkb(nil); err == nil {
		t.Error("expected error for empty wkb")
	}
	if _, err := g.FromWkt("POINT("); err == nil {
		t.Error("expected error for invalid wkt")
	}
}
