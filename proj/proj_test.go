package proj

import (
	"math"
	"testing"

	"github.com/twpayne/go-geom"
)

func TestWgsToMerc(t *testing.T) {
	x, y := WgsToMerc(0, 0)
	if x != 0 || y != 0 {
		t.Fatalf("%v %v", x, y)
	}

	x, y = WgsToMerc(8, 53)
	if math.Abs(x-890555.9263461898) > 1e-6 || math.Abs(y-6982997.920389788) > 1e-6 {
		t.Fatalf("%v %v", x, y)
	}
}

func TestMercToWgs(t *testing.T) {
	long, lat := MercToWgs(0, 0)
	if long != 0 || lat != 0 {
		t.Fatalf("%v %v", long, lat)
	}
	long, lat = MercToWgs(890555.9263461898, 6982997.920389788)
	if math.Abs(long-8) > 1e-6 || math.Abs(lat-53) > 1e-6 {
		t.Fatalf("%v %v", long, lat)
	}
}

func TestGeomToMerc(t *testing.T) {
	g := geom.NewLineString(geom.XYZ).MustSetCoords([]geom.Coord{{0, 0, 5}, {8, 53, 7}})
	GeomToMerc(g)
	c := g.Coord(1)
	if math.Abs(c.X()-890555.9263461898) > 1e-6 || math.Abs(c.Y()-6982997.920389788) > 1e-6 {
		t.Fatalf("%v", c)
	}
	if g.Coord(0)[2] != 5 || c[2] != 7 {
		t.Fatalf("z changed %v", g.FlatCoords())
	}

	xs, ys := []float64{0, 8}, []float64{0, 53}
	CoordsToMerc(xs, ys)
	if xs[0] != 0 || ys[0] != 0 || math.Abs(xs[1]-890555.9263461898) > 1e-6 {
		t.Fatal(xs, ys)
	}
}
