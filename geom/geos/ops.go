package geos

/*
#cgo LDFLAGS: -lgeos_c
#include "geos_c.h"
#include <stdlib.h>
*/
import "C"

// Buffer cap and join styles, see BufferWithStyle.
const (
	CapRound  = int(C.GEOSBUF_CAP_ROUND)
	CapFlat   = int(C.GEOSBUF_CAP_FLAT)
	CapSquare = int(C.GEOSBUF_CAP_SQUARE)

	JoinRound = int(C.GEOSBUF_JOIN_ROUND)
	JoinMitre = int(C.GEOSBUF_JOIN_MITRE)
	JoinBevel = int(C.GEOSBUF_JOIN_BEVEL)
)

func newGeom(result *C.GEOSGeometry, name string) (*Geom, error) {
	if result == nil {
		return nil, CreateError("unable to create " + name)
	}
	return &Geom{result}, nil
}

func (g *Geos) Boundary(geom *Geom) (*Geom, error) {
	return newGeom(C.GEOSBoundary_r(g.v, geom.v), "boundary")
}

func (g *Geos) Centroid(geom *Geom) (*Geom, error) {
	return newGeom(C.GEOSGetCentroid_r(g.v, geom.v), "centroid")
}

func (g *Geos) ConvexHull(geom *Geom) (*Geom, error) {
	return newGeom(C.GEOSConvexHull_r(g.v, geom.v), "convex hull")
}

func (g *Geos) Envelope(geom *Geom) (*Geom, error) {
	return newGeom(C.GEOSEnvelope_r(g.v, geom.v), "envelope")
}

// PointOnSurface returns a point guaranteed to lie on geom.
func (g *Geos) PointOnSurface(geom *Geom) (*Geom, error) {
	return newGeom(C.GEOSPointOnSurface_r(g.v, geom.v), "point on surface")
}

func (g *Geos) Buffer(geom *Geom, size float64) (*Geom, error) {
	return g.BufferWithStyle(geom, size, 16, CapRound, JoinRound, 5.0)
}

// BufferWithStyle buffers geom. quadsegs is the number of segments per
// quarter circle. capStyle and joinStyle are not checked, GEOS rejects
// invalid values.
func (g *Geos) BufferWithStyle(geom *Geom, size float64, quadsegs int, capStyle, joinStyle int, mitreLimit float64) (*Geom, error) {
	buffered := C.GEOSBufferWithStyle_r(g.v, geom.v, C.double(size), C.int(quadsegs),
		C.int(capStyle), C.int(joinStyle), C.double(mitreLimit))
	return newGeom(buffered, "buffer")
}

func (g *Geos) Intersection(a, b *Geom) (*Geom, error) {
	return newGeom(C.GEOSIntersection_r(g.v, a.v, b.v), "intersection")
}

func (g *Geos) Union(a, b *Geom) (*Geom, error) {
	return newGeom(C.GEOSUnion_r(g.v, a.v, b.v), "union")
}

func (g *Geos) Difference(a, b *Geom) (*Geom, error) {
	return newGeom(C.GEOSDifference_r(g.v, a.v, b.v), "difference")
}

func (g *Geos) SymDifference(a, b *Geom) (*Geom, error) {
	return newGeom(C.GEOSSymDifference_r(g.v, a.v, b.v), "symmetric difference")
}

func (g *Geos) Contains(a, b *Geom) (bool, error) {
	return boolResult(C.GEOSContains_r(g.v, a.v, b.v), "contains")
}

func (g *Geos) Disjoint(a, b *Geom) (bool, error) {
	return boolResult(C.GEOSDisjoint_r(g.v, a.v, b.v), "disjoint")
}

func (g *Geos) Equals(a, b *Geom) (bool, error) {
	return boolResult(C.GEOSEquals_r(g.v, a.v, b.v), "equals")
}

func (g *Geos) Intersects(a, b *Geom) (bool, error) {
	return boolResult(C.GEOSIntersects_r(g.v, a.v, b.v), "intersects")
}

func (g *Geos) Touches(a, b *Geom) (bool, error) {
	return boolResult(C.GEOSTouches_r(g.v, a.v, b.v), "touches")
}

func (g *Geos) Crosses(a, b *Geom) (bool, error) {
	return boolResult(C.GEOSCrosses_r(g.v, a.v, b.v), "crosses")
}

func (g *Geos) Within(a, b *Geom) (bool, error) {
	return boolResult(C.GEOSWithin_r(g.v, a.v, b.v), "within")
}

func (g *Geos) Overlaps(a, b *Geom) (bool, error) {
	return boolResult(C.GEOSOverlaps_r(g.v, a.v, b.v), "overlaps")
}

func (g *Geos) Covers(a, b *Geom) (bool, error) {
	return boolResult(C.GEOSCovers_r(g.v, a.v, b.v), "covers")
}

func (g *Geos) CoveredBy(a, b *Geom) (bool, error) {
	return boolResult(C.GEOSCoveredBy_r(g.v, a.v, b.v), "coveredBy")
}
