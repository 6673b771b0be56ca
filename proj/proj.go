// Package proj converts WGS84 input coordinates into web mercator.
package proj

import (
	"math"

	"github.com/twpayne/go-geom"
)

const pole = 6378137 * math.Pi // 20037508.342789244

const (
	WGS84       = 4326
	WebMercator = 3857
)

func WgsToMerc(long, lat float64) (x, y float64) {
	x = long * pole / 180.0
	y = math.Log(math.Tan((90.0+lat)*math.Pi/360.0)) / math.Pi * pole
	return x, y
}

func MercToWgs(x, y float64) (long, lat float64) {
	long = 180.0 * x / pole
	lat = 180.0 / math.Pi * (2*math.Atan(math.Exp((y/pole)*math.Pi)) - math.Pi/2)
	return long, lat
}

// CoordsToMerc converts xs (longitudes) and ys (latitudes) in place.
func CoordsToMerc(xs, ys []float64) {
	for i := range xs {
		xs[i], ys[i] = WgsToMerc(xs[i], ys[i])
	}
}

// GeomToMerc converts the x/y ordinates of g in place. Other ordinates are
// kept.
func GeomToMerc(g geom.T) {
	flat := g.FlatCoords()
	stride := g.Stride()
	if stride < 2 {
		return
	}
	for i := 0; i+1 < len(flat); i += stride {
		flat[i], flat[i+1] = WgsToMerc(flat[i], flat[i+1])
	}
}
