package geos

/*
#cgo LDFLAGS: -lgeos_c
#include "geos_c.h"
#include <stdlib.h>
*/
import "C"

// PreparedGeom references the geometry it was prepared from. The source
// geometry needs to outlive the PreparedGeom.
type PreparedGeom struct {
	v *C.GEOSPreparedGeometry
}

func (g *Geos) Prepare(geom *Geom) (*PreparedGeom, error) {
	prep := C.GEOSPrepare_r(g.v, geom.v)
	if prep == nil {
		return nil, CreateError("unable to prepare geometry")
	}
	return &PreparedGeom{prep}, nil
}

func (g *Geos) PreparedContains(a *PreparedGeom, b *Geom) (bool, error) {
	return boolResult(C.GEOSPreparedContains_r(g.v, a.v, b.v), "prepared contains")
}

func (g *Geos) PreparedContainsProperly(a *PreparedGeom, b *Geom) (bool, error) {
	return boolResult(C.GEOSPreparedContainsProperly_r(g.v, a.v, b.v), "prepared containsProperly")
}

func (g *Geos) PreparedCoveredBy(a *PreparedGeom, b *Geom) (bool, error) {
	return boolResult(C.GEOSPreparedCoveredBy_r(g.v, a.v, b.v), "prepared coveredBy")
}

func (g *Geos) PreparedCovers(a *PreparedGeom, b *Geom) (bool, error) {
	return boolResult(C.GEOSPreparedCovers_r(g.v, a.v, b.v), "prepared covers")
}

func (g *Geos) PreparedCrosses(a *PreparedGeom, b *Geom) (bool, error) {
	return boolResult(C.GEOSPreparedCrosses_r(g.v, a.v, b.v), "prepared crosses")
}

func (g *Geos) PreparedDisjoint(a *PreparedGeom, b *Geom) (bool, error) {
	return boolResult(C.GEOSPreparedDisjoint_r(g.v, a.v, b.v), "prepared disjoint")
}

func (g *Geos) PreparedIntersects(a *PreparedGeom, b *Geom) (bool, error) {
	return boolResult(C.GEOSPreparedIntersects_r(g.v, a.v, b.v), "prepared intersects")
}

func (g *Geos) PreparedOverlaps(a *PreparedGeom, b *Geom) (bool, error) {
	return boolResult(C.GEOSPreparedOverlaps_r(g.v, a.v, b.v), "prepared overlaps")
}

func (g *Geos) PreparedTouches(a *PreparedGeom, b *Geom) (bool, error) {
	return boolResult(C.GEOSPreparedTouches_r(g.v, a.v, b.v), "prepared touches")
}

func (g *Geos) PreparedWithin(a *PreparedGeom, b *Geom) (bool, error) {
	return boolResult(C.GEOSPreparedWithin_r(g.v, a.v, b.v), "prepared within")
}

func (g *Geos) PreparedDestroy(geom *PreparedGeom) {
	if geom.v != nil {
		C.GEOSPreparedGeom_destroy_r(g.v, geom.v)
		geom.v = nil
	} else {
		logger.Printf("[warn] double free of prepared geometry?")
	}
}
